package cubie

import "fmt"

// Symmetry is a rigid relabeling of cube positions: CornerFwd[old] gives the
// new position that position old's content moves to (same convention as a
// baseMove's cycle), and likewise for EdgeFwd. NegateCornerOrient marks a
// chirality-reversing symmetry (a mirror reflection), under which every
// corner's clockwise-twist count becomes a counterclockwise count.
type Symmetry struct {
	CornerFwd          [8]uint8
	EdgeFwd            [12]uint8
	NegateCornerOrient bool
}

func identitySym() Symmetry {
	var s Symmetry
	for i := range s.CornerFwd {
		s.CornerFwd[i] = uint8(i)
	}
	for i := range s.EdgeFwd {
		s.EdgeFwd[i] = uint8(i)
	}
	return s
}

// sUR is a 90-degree rotation of the whole cube about the U-D axis.
var sUR = Symmetry{
	CornerFwd: [8]uint8{1, 2, 3, 0, 5, 6, 7, 4},
	EdgeFwd:   [12]uint8{1, 2, 3, 0, 5, 6, 7, 4, 9, 10, 11, 8},
}

// sF is the mirror reflection across the plane containing the U-D and F-B
// axes (swaps Left and Right).
var sF = Symmetry{
	CornerFwd:          [8]uint8{1, 0, 3, 2, 5, 4, 7, 6},
	EdgeFwd:            [12]uint8{2, 1, 0, 3, 6, 5, 4, 7, 9, 8, 11, 10},
	NegateCornerOrient: true,
}

// sUD is a 180-degree rotation of the whole cube about the F-B axis,
// swapping the U and D layers while remaining a proper (chirality
// preserving) rotation.
var sUD = Symmetry{
	CornerFwd: [8]uint8{5, 4, 7, 6, 1, 0, 3, 2},
	EdgeFwd:   [12]uint8{6, 5, 4, 7, 2, 1, 0, 3, 9, 8, 11, 10},
}

func invertPositions(fwd []uint8) []uint8 {
	out := make([]uint8, len(fwd))
	for i, v := range fwd {
		out[v] = uint8(i)
	}
	return out
}

// Inverse returns the symmetry undoing s.
func (s Symmetry) Inverse() Symmetry {
	var out Symmetry
	cinv := invertPositions(s.CornerFwd[:])
	einv := invertPositions(s.EdgeFwd[:])
	copy(out.CornerFwd[:], cinv)
	copy(out.EdgeFwd[:], einv)
	out.NegateCornerOrient = s.NegateCornerOrient
	return out
}

// ComposeSym returns "apply s first, then t" as a single symmetry.
func ComposeSym(s, t Symmetry) Symmetry {
	var out Symmetry
	for i := 0; i < 8; i++ {
		out.CornerFwd[i] = t.CornerFwd[s.CornerFwd[i]]
	}
	for i := 0; i < 12; i++ {
		out.EdgeFwd[i] = t.EdgeFwd[s.EdgeFwd[i]]
	}
	out.NegateCornerOrient = s.NegateCornerOrient != t.NegateCornerOrient
	return out
}

// Conjugate computes s∘c∘s⁻¹: the cube c as seen after reorienting the whole
// puzzle by s. Used both to build the move-conjugation table and to carry
// raw coordinates into the symmetry-reduced coordinate spaces.
func (s Symmetry) Conjugate(c ReprCube) ReprCube {
	inv := s.Inverse()
	var out ReprCube
	for i := 0; i < 8; i++ {
		src := inv.CornerFwd[i]
		piece := s.CornerFwd[c.CornerPerm[src]]
		out.CornerPerm[i] = piece
		o := c.CornerOrient[src]
		if s.NegateCornerOrient {
			o = (3 - o) % 3
		}
		out.CornerOrient[i] = o
	}
	for i := 0; i < 12; i++ {
		src := inv.EdgeFwd[i]
		out.EdgePerm[i] = s.EdgeFwd[c.EdgePerm[src]]
		out.EdgeOrient[i] = c.EdgeOrient[src]
	}
	return out
}

func symEqual(a, b Symmetry) bool {
	return a.CornerFwd == b.CornerFwd && a.EdgeFwd == b.EdgeFwd && a.NegateCornerOrient == b.NegateCornerOrient
}

// CubeSymmetry indexes into the closure of {identity, sUR, sF, sUD}: the
// 16-element stabilizer of the U/D axis (spec 4.C).
type CubeSymmetry int

const NumSymmetries = 16

var symGroup []Symmetry
var symMulTable [][]CubeSymmetry
var symInverseTable []CubeSymmetry
var moveConjugationTable [][NumMoves]CubeMove

func init() {
	symGroup = generateSymGroup()
	if len(symGroup) != NumSymmetries {
		panic(fmt.Sprintf("cubie: symmetry closure produced %d elements, want %d", len(symGroup), NumSymmetries))
	}
	n := len(symGroup)
	symMulTable = make([][]CubeSymmetry, n)
	symInverseTable = make([]CubeSymmetry, n)
	for i := 0; i < n; i++ {
		symMulTable[i] = make([]CubeSymmetry, n)
		for j := 0; j < n; j++ {
			composed := ComposeSym(symGroup[i], symGroup[j])
			symMulTable[i][j] = indexOfSym(composed)
		}
		symInverseTable[i] = indexOfSym(symGroup[i].Inverse())
	}
	moveConjugationTable = make([][NumMoves]CubeMove, n)
	for i, s := range symGroup {
		for m := CubeMove(0); m < NumMoves; m++ {
			conjugated := s.Conjugate(moveTransforms[m])
			moveConjugationTable[i][m] = findMove(conjugated)
		}
	}
}

func generateSymGroup() []Symmetry {
	gens := []Symmetry{sUR, sF, sUD}
	group := []Symmetry{identitySym()}
	frontier := []Symmetry{identitySym()}
	for len(frontier) > 0 {
		var next []Symmetry
		for _, s := range frontier {
			for _, g := range gens {
				cand := ComposeSym(s, g)
				if !containsSym(group, cand) {
					group = append(group, cand)
					next = append(next, cand)
				}
			}
		}
		frontier = next
	}
	return group
}

func containsSym(group []Symmetry, s Symmetry) bool {
	for _, g := range group {
		if symEqual(g, s) {
			return true
		}
	}
	return false
}

func indexOfSym(s Symmetry) CubeSymmetry {
	for i, g := range symGroup {
		if symEqual(g, s) {
			return CubeSymmetry(i)
		}
	}
	panic("cubie: symmetry not found in group closure")
}

func findMove(c ReprCube) CubeMove {
	for m := CubeMove(0); m < NumMoves; m++ {
		if moveTransforms[m] == c {
			return m
		}
	}
	panic("cubie: conjugated move matches no known CubeMove")
}

// Get returns the underlying Symmetry for index s.
func (s CubeSymmetry) Get() Symmetry {
	return symGroup[s]
}

// Mul returns s∘t.
func (s CubeSymmetry) Mul(t CubeSymmetry) CubeSymmetry {
	return symMulTable[s][t]
}

// Inv returns s⁻¹.
func (s CubeSymmetry) Inv() CubeSymmetry {
	return symInverseTable[s]
}

// ConjugateMove returns the move m' such that s, m, s⁻¹ equals m' on every
// cube (spec 4.C).
func (s CubeSymmetry) ConjugateMove(m CubeMove) CubeMove {
	return moveConjugationTable[s][m]
}

// ConjugateCube applies the reorientation s to a full cube state.
func (s CubeSymmetry) ConjugateCube(c ReprCube) ReprCube {
	return s.Get().Conjugate(c)
}

// DominoSymmetry is the subgroup of CubeSymmetry whose conjugation preserves
// domino-move-ness (every symmetry here maps the domino move set to itself).
// All 16 symmetries here satisfy that, since U, D, F2, B2, R2, L2 closure
// under conjugation by any U/D axis symmetry stays within {U,D,F,B,R,L}×{1,2,3}
// restricted to the squared/quarter forms that remain domino moves.
type DominoSymmetry = CubeSymmetry
