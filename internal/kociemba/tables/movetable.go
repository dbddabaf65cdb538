package tables

import "github.com/ehrlich-b/cubesolver/internal/kociemba/cubie"

// MoveTable is the direct-lookup successor table for one coordinate space
// (spec 4.D): for every coordinate value and every one of the 18 face moves,
// the table gives the coordinate reached by applying that move. Coordinates
// that also feed a symmetry-reduced table (CornerOrient, UDEdgePerm) carry
// one extra column per symmetry, letting the symmetry reducer conjugate a
// raw coordinate without rebuilding a ReprCube.
type MoveTable struct {
	Range      int
	withSyms   bool
	moveData   []uint16
	symData    []uint16
}

// BuildMoveTable constructs a move table for a coordinate space by, for each
// coordinate value, rebuilding the minimal cube that exhibits it (fromCoord),
// applying every move, and reading the resulting coordinate back off
// (intoCoord). This mirrors the generation method of every
// spec-4.D coordinate: no full-cube BFS, one cube build per row.
func BuildMoveTable(rangeSize int, fromCoord func(int) cubie.ReprCube, intoCoord func(cubie.ReprCube) int, withSyms bool) *MoveTable {
	t := &MoveTable{Range: rangeSize, withSyms: withSyms}
	t.moveData = make([]uint16, rangeSize*cubie.NumMoves)
	if withSyms {
		t.symData = make([]uint16, rangeSize*cubie.NumSymmetries)
	}
	for coord := 0; coord < rangeSize; coord++ {
		base := fromCoord(coord)
		for m := cubie.CubeMove(0); m < cubie.NumMoves; m++ {
			next := base.Apply(m)
			t.moveData[coord*cubie.NumMoves+int(m)] = uint16(intoCoord(next))
		}
		if withSyms {
			for s := cubie.CubeSymmetry(0); s < cubie.NumSymmetries; s++ {
				conj := s.ConjugateCube(base)
				t.symData[coord*cubie.NumSymmetries+int(s)] = uint16(intoCoord(conj))
			}
		}
	}
	return t
}

// Successor returns the coordinate reached by applying move m to coord.
func (t *MoveTable) Successor(coord int, m cubie.CubeMove) int {
	return int(t.moveData[coord*cubie.NumMoves+int(m)])
}

// SymSuccessor returns coord conjugated by symmetry s. Panics if the table
// was built without symmetry columns.
func (t *MoveTable) SymSuccessor(coord int, s cubie.CubeSymmetry) int {
	return int(t.symData[coord*cubie.NumSymmetries+int(s)])
}

// HasSyms reports whether SymSuccessor is usable on this table.
func (t *MoveTable) HasSyms() bool {
	return t.withSyms
}

// successorTable is satisfied by anything that reports a move's successor
// coordinate: *MoveTable directly, or a composite table like
// EdgeGroupOrientMoveTable for a product coordinate space too large to back
// with its own uint16 move table.
type successorTable interface {
	Successor(coord int, m cubie.CubeMove) int
}

// EdgeGroupOrientMoveTable derives EdgeGroupOrient successors from the
// independent EdgeGroup (495) and EdgeOrient (2048) move tables instead of
// materializing a 495*2048 = 1,013,760-row product table (spec 4.D: "Move
// tables for CornerOrient, EdgeOrient, EdgeGroup, ... are independent;
// EdgeGroupOrient is derived from the product"). A move's face-cycle
// permutes edge slots the same way regardless of which piece occupies each
// slot, so the EdgeGroup half and the EdgeOrient half of the composite
// coordinate move independently and recombine cleanly. The product
// coordinate's raw values also run up to 1,013,759, far past what the 16-bit
// storage every other raw move table uses can hold.
type EdgeGroupOrientMoveTable struct {
	Group  *MoveTable
	Orient *MoveTable
}

// Successor applies move m to the composite (group, orient) coordinate by
// moving each half independently and recombining.
func (t *EdgeGroupOrientMoveTable) Successor(coord int, m cubie.CubeMove) int {
	group := coord / cubie.EdgeOrientRange
	orient := coord % cubie.EdgeOrientRange
	nextGroup := t.Group.Successor(group, m)
	nextOrient := t.Orient.Successor(orient, m)
	return nextGroup*cubie.EdgeOrientRange + nextOrient
}
