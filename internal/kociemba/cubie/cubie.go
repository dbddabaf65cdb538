// Package cubie implements the cubie-level cube representation: the 18 face
// moves, their action on corners and edges, and the full ReprCube invariant
// checks. Partial coordinate representations live in coords.go; the 16
// U/D-preserving symmetries live in symmetry.go.
package cubie

import (
	"fmt"

	"github.com/ehrlich-b/cubesolver/internal/kociemba/perm"
)

// ReprCube is the working cube: 8 corners each with a slot (which cubie
// occupies this position) and orientation, and 12 edges likewise.
type ReprCube struct {
	CornerPerm   [8]uint8
	CornerOrient [8]uint8 // 0..2, clockwise twists needed to restore reference facelet
	EdgePerm     [12]uint8
	EdgeOrient   [12]uint8 // 0..1
}

// Solved returns the identity cube.
func Solved() ReprCube {
	var c ReprCube
	for i := range c.CornerPerm {
		c.CornerPerm[i] = uint8(i)
	}
	for i := range c.EdgePerm {
		c.EdgePerm[i] = uint8(i)
	}
	return c
}

// IsSolved reports whether c is the identity cube.
func (c ReprCube) IsSolved() bool {
	return c == Solved()
}

// Corner position indices.
const (
	URF = iota
	UFL
	ULB
	UBR
	DFR
	DLF
	DBL
	DRB
)

// Edge position indices.
const (
	UR = iota
	UF
	UL
	UB
	DR
	DF
	DL
	DB
	FR
	FL
	BL
	BR
)

// baseMove describes a single quarter-turn's action: a 4-cycle of corner
// positions and a 4-cycle of edge positions (movement order: the piece
// at cycle[i] moves to cycle[i+1]), plus per-step orientation deltas.
type baseMove struct {
	cornerCycle [4]uint8
	cornerDelta [4]uint8 // added (mod 3) to the piece moving INTO cycle[i+1]
	edgeCycle   [4]uint8
	edgeDelta   [4]uint8 // added (mod 2) to the piece moving INTO cycle[i+1]
}

// The six quarter-turn generators, derived from the cube's geometry (each
// face's clockwise rotation viewed from outside that face).
var baseMoves = map[string]baseMove{
	"U": {
		cornerCycle: [4]uint8{URF, UFL, ULB, UBR},
		cornerDelta: [4]uint8{0, 0, 0, 0},
		edgeCycle:   [4]uint8{UR, UF, UL, UB},
		edgeDelta:   [4]uint8{0, 0, 0, 0},
	},
	"D": {
		cornerCycle: [4]uint8{DFR, DRB, DBL, DLF},
		cornerDelta: [4]uint8{0, 0, 0, 0},
		edgeCycle:   [4]uint8{DR, DB, DL, DF},
		edgeDelta:   [4]uint8{0, 0, 0, 0},
	},
	"F": {
		cornerCycle: [4]uint8{UFL, URF, DFR, DLF},
		cornerDelta: [4]uint8{1, 2, 1, 2},
		edgeCycle:   [4]uint8{UF, FR, DF, FL},
		edgeDelta:   [4]uint8{1, 1, 1, 1},
	},
	"B": {
		cornerCycle: [4]uint8{ULB, DBL, DRB, UBR},
		cornerDelta: [4]uint8{2, 1, 2, 1},
		edgeCycle:   [4]uint8{UB, BL, DB, BR},
		edgeDelta:   [4]uint8{1, 1, 1, 1},
	},
	"R": {
		cornerCycle: [4]uint8{URF, UBR, DRB, DFR},
		cornerDelta: [4]uint8{1, 2, 1, 2},
		edgeCycle:   [4]uint8{UR, BR, DR, FR},
		edgeDelta:   [4]uint8{1, 1, 1, 1},
	},
	"L": {
		cornerCycle: [4]uint8{UFL, DLF, DBL, ULB},
		cornerDelta: [4]uint8{2, 1, 2, 1},
		edgeCycle:   [4]uint8{UL, FL, DL, BL},
		edgeDelta:   [4]uint8{1, 1, 1, 1},
	},
}

// applyBase applies one quarter turn of base move m to c, returning the
// result; c is left unmodified.
func applyBase(c ReprCube, m baseMove) ReprCube {
	out := c
	for i := 0; i < 4; i++ {
		from := m.cornerCycle[i]
		to := m.cornerCycle[(i+1)%4]
		out.CornerPerm[to] = c.CornerPerm[from]
		out.CornerOrient[to] = (c.CornerOrient[from] + m.cornerDelta[i]) % 3
	}
	for i := 0; i < 4; i++ {
		from := m.edgeCycle[i]
		to := m.edgeCycle[(i+1)%4]
		out.EdgePerm[to] = c.EdgePerm[from]
		out.EdgeOrient[to] = (c.EdgeOrient[from] + m.edgeDelta[i]) % 2
	}
	return out
}

// CubeMove enumerates the 18 half-turn-metric face moves, ordered exactly as
// (U1,U2,U3,D1,D2,D3,F1,F2,F3,B1,B2,B3,R1,R2,R3,L1,L2,L3) where 1/2/3 means
// 90/180/270 degrees clockwise looking at the face.
type CubeMove int

const (
	U1 CubeMove = iota
	U2
	U3
	D1
	D2
	D3
	F1
	F2
	F3
	B1
	B2
	B3
	R1
	R2
	R3
	L1
	L2
	L3
	NumMoves = 18
)

var moveNames = [NumMoves]string{
	"U", "U2", "U'", "D", "D2", "D'", "F", "F2", "F'", "B", "B2", "B'", "R", "R2", "R'", "L", "L2", "L'",
}

func (m CubeMove) String() string {
	if m < 0 || int(m) >= NumMoves {
		return fmt.Sprintf("CubeMove(%d)", int(m))
	}
	return moveNames[m]
}

// Face returns the base face letter this move turns ("U","D","F","B","R","L").
func (m CubeMove) Face() string {
	return [6]string{"U", "D", "F", "B", "R", "L"}[int(m)/3]
}

// Quarters returns how many clockwise quarter turns this move represents (1,2,3).
func (m CubeMove) Quarters() int {
	return int(m)%3 + 1
}

// Inverse returns the move undoing m.
func (m CubeMove) Inverse() CubeMove {
	base := (int(m) / 3) * 3
	q := int(m) % 3
	return CubeMove(base + (2 - q))
}

var faceOrder = [6]string{"U", "D", "F", "B", "R", "L"}

var moveTransforms [NumMoves]ReprCube

func init() {
	for f, face := range faceOrder {
		base := baseMoves[face]
		q1 := applyBase(Solved(), base)
		q2 := applyMoveToCube(q1, q1) // composition via move-apply below once defined
		q3 := applyMoveToCube(q2, q1)
		moveTransforms[f*3+0] = q1
		moveTransforms[f*3+1] = q2
		moveTransforms[f*3+2] = q3
	}
}

// applyMoveToCube composes two ReprCube transforms: result represents "apply
// a then apply b" to a solved cube, used only at init time to build the
// 18-entry move-transform table from the 6 quarter-turn generators.
func applyMoveToCube(a, b ReprCube) ReprCube {
	var out ReprCube
	for i := 0; i < 8; i++ {
		out.CornerPerm[i] = a.CornerPerm[b.CornerPerm[i]]
		out.CornerOrient[i] = (a.CornerOrient[b.CornerPerm[i]] + b.CornerOrient[i]) % 3
	}
	for i := 0; i < 12; i++ {
		out.EdgePerm[i] = a.EdgePerm[b.EdgePerm[i]]
		out.EdgeOrient[i] = (a.EdgeOrient[b.EdgePerm[i]] + b.EdgeOrient[i]) % 2
	}
	return out
}

// Apply returns the cube resulting from performing move m on c.
func (c ReprCube) Apply(m CubeMove) ReprCube {
	return applyMoveToCube(c, moveTransforms[m])
}

// ApplyAll performs a sequence of moves in order, returning the final cube.
func (c ReprCube) ApplyAll(moves []CubeMove) ReprCube {
	for _, m := range moves {
		c = c.Apply(m)
	}
	return c
}

// Compose returns the cube resulting from performing c's sequence of
// transformations followed by other's (other applied on top of c), treating
// both as move-transforms rather than states reached from solved.
func (c ReprCube) Compose(other ReprCube) ReprCube {
	return applyMoveToCube(c, other)
}

// Inverse returns the cube transform undoing c (valid when c is itself a
// pure move-composition transform, i.e. reachable from Solved()).
func (c ReprCube) Inverse() ReprCube {
	var out ReprCube
	for i := 0; i < 8; i++ {
		out.CornerPerm[c.CornerPerm[i]] = uint8(i)
	}
	for i := 0; i < 8; i++ {
		j := out.CornerPerm[i]
		out.CornerOrient[i] = (3 - c.CornerOrient[j]) % 3
	}
	for i := 0; i < 12; i++ {
		out.EdgePerm[c.EdgePerm[i]] = uint8(i)
	}
	for i := 0; i < 12; i++ {
		j := out.EdgePerm[i]
		out.EdgeOrient[i] = c.EdgeOrient[j]
	}
	return out
}

// DominoMove enumerates the 10 moves of the domino subgroup
// <U,D,R2,L2,F2,B2>.
type DominoMove int

const (
	DU1 DominoMove = iota
	DU2
	DU3
	DD1
	DD2
	DD3
	DF2
	DB2
	DR2
	DL2
	NumDominoMoves = 10
)

// ToCubeMove maps a DominoMove to its CubeMove equivalent.
func (d DominoMove) ToCubeMove() CubeMove {
	return [NumDominoMoves]CubeMove{U1, U2, U3, D1, D2, D3, F2, B2, R2, L2}[d]
}

func (d DominoMove) String() string {
	return d.ToCubeMove().String()
}

// IsDomino reports whether m belongs to the domino subgroup's generating
// move set (identity component of Phase-2's move set).
func (m CubeMove) IsDomino() bool {
	switch m {
	case U1, U2, U3, D1, D2, D3, F2, B2, R2, L2:
		return true
	default:
		return false
	}
}

// FaceIndex returns 0..5 for U,D,F,B,R,L, used by search move-pruning to
// detect same-face and opposite-face redundancies.
func (m CubeMove) FaceIndex() int {
	return int(m) / 3
}

// oppositeFace maps U<->D, F<->B, R<->L.
var oppositeFace = [6]int{1, 0, 3, 2, 5, 4}

// OppositeFaceIndex returns the face index opposite m's face.
func (m CubeMove) OppositeFaceIndex() int {
	return oppositeFace[m.FaceIndex()]
}

// FaceOpposite returns the face index opposite the given one (U<->D, F<->B,
// R<->L), for search packages that only have a bare face index on hand.
func FaceOpposite(face int) int {
	return oppositeFace[face]
}

// ParseCubeMove parses WCA-style move notation ("U", "U2", "U'", ...) into
// a CubeMove, the cubie-level analog of the teacher's ParseMove in
// internal/cube/move_parser.go.
func ParseCubeMove(notation string) (CubeMove, error) {
	for m := CubeMove(0); m < NumMoves; m++ {
		if moveNames[m] == notation {
			return m, nil
		}
	}
	return 0, fmt.Errorf("cubie: invalid move notation %q", notation)
}

// Valid reports whether c satisfies the three ReprCube invariants (spec
// section 3): corner-orientation sum ≡ 0 (mod 3), edge-orientation sum ≡ 0
// (mod 2), and the corner and edge permutations have equal parity. Every
// reachable scrambled cube satisfies these; violating them indicates a
// malformed facelet decode rather than a legal physical cube.
func (c ReprCube) Valid() bool {
	cSum := 0
	for _, o := range c.CornerOrient {
		cSum += int(o)
	}
	if cSum%3 != 0 {
		return false
	}
	eSum := 0
	for _, o := range c.EdgeOrient {
		eSum += int(o)
	}
	if eSum%2 != 0 {
		return false
	}
	return perm.Parity(c.CornerPerm[:]) == perm.Parity(c.EdgePerm[:])
}
