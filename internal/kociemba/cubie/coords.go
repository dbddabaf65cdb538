package cubie

import (
	"github.com/ehrlich-b/cubesolver/internal/kociemba/perm"
	"gonum.org/v1/gonum/stat/combin"
)

// Each partial representation coordinate (spec 3) is a bounded nonnegative
// integer bijective with one sub-state of a ReprCube. from*Coord rebuilds
// the minimal cube exhibiting that coordinate with every other field at its
// solved value (spec 4.D); *Coord extracts the coordinate from a full cube.

const (
	CornerOrientRange    = 2187
	EdgeOrientRange      = 2048
	EdgeGroupRange       = 495
	CornerPermRange      = 40320
	UDEdgePermRange      = 40320
	EEdgePermRange       = 24
	EdgeGroupOrientRange = EdgeGroupRange * EdgeOrientRange
)

// CornerOrientCoord extracts the CornerOrient coordinate: base-3 digits of
// the first 7 corners' orientations (the 8th is forced by the sum-mod-3
// invariant).
func CornerOrientCoord(c ReprCube) int {
	coord := 0
	for i := 0; i < 7; i++ {
		coord = coord*3 + int(c.CornerOrient[i])
	}
	return coord
}

// CornerOrientFromCoord rebuilds a cube (solved permutation, solved edges)
// exhibiting the given CornerOrient coordinate.
func CornerOrientFromCoord(coord int) ReprCube {
	c := Solved()
	sum := 0
	digits := [7]int{}
	for i := 6; i >= 0; i-- {
		digits[i] = coord % 3
		coord /= 3
	}
	for i := 0; i < 7; i++ {
		c.CornerOrient[i] = uint8(digits[i])
		sum += digits[i]
	}
	last := (3 - sum%3) % 3
	c.CornerOrient[7] = uint8(last)
	return c
}

// EdgeOrientCoord extracts the EdgeOrient coordinate: base-2 digits of the
// first 11 edges' orientations.
func EdgeOrientCoord(c ReprCube) int {
	coord := 0
	for i := 0; i < 11; i++ {
		coord = coord*2 + int(c.EdgeOrient[i])
	}
	return coord
}

// EdgeOrientFromCoord rebuilds a cube exhibiting the given EdgeOrient
// coordinate.
func EdgeOrientFromCoord(coord int) ReprCube {
	c := Solved()
	sum := 0
	digits := [11]int{}
	for i := 10; i >= 0; i-- {
		digits[i] = coord % 2
		coord /= 2
	}
	for i := 0; i < 11; i++ {
		c.EdgeOrient[i] = uint8(digits[i])
		sum += digits[i]
	}
	c.EdgeOrient[11] = uint8(sum % 2)
	return c
}

// isESliceEdge reports whether piece id p is one of the 4 E-slice edges
// (FR, FL, BL, BR = 8..11).
func isESliceEdge(p uint8) bool {
	return p >= 8
}

// binomOrZero wraps gonum's Binomial, which panics when n < k; the
// combinatorial number system relies on the conventional C(n,k) = 0 there.
func binomOrZero(n, k int) int {
	if n < k || n < 0 {
		return 0
	}
	return combin.Binomial(n, k)
}

// combRank ranks a strictly increasing slice of k positions (the
// combinatorial number system), matching gonum's Binomial for coefficients.
func combRank(positions []int) int {
	rank := 0
	for i, p := range positions {
		rank += binomOrZero(p, i+1)
	}
	return rank
}

// combUnrank inverts combRank for k positions out of n.
func combUnrank(rank, n, k int) []int {
	positions := make([]int, k)
	x := n - 1
	for i := k; i >= 1; i-- {
		for binomOrZero(x, i) > rank {
			x--
		}
		positions[i-1] = x
		rank -= binomOrZero(x, i)
	}
	return positions
}

// EdgeGroupCoord extracts which 4 of the 12 edge slots hold E-slice edges.
func EdgeGroupCoord(c ReprCube) int {
	var positions []int
	for pos, piece := range c.EdgePerm {
		if isESliceEdge(piece) {
			positions = append(positions, pos)
		}
	}
	return combRank(positions)
}

// EdgeGroupFromCoord rebuilds a cube (solved corners, solved orientations)
// whose edge slots at the coordinate's chosen 4 positions hold the E-slice
// edges (in identity sub-order) and whose remaining 8 slots hold the UD
// edges (in identity sub-order).
func EdgeGroupFromCoord(coord int) ReprCube {
	c := Solved()
	slicePositions := combUnrank(coord, 12, 4)
	inSlice := make(map[int]bool, 4)
	for _, p := range slicePositions {
		inSlice[p] = true
	}
	sliceIdx, udIdx := uint8(8), uint8(0)
	for pos := 0; pos < 12; pos++ {
		if inSlice[pos] {
			c.EdgePerm[pos] = sliceIdx
			sliceIdx++
		} else {
			c.EdgePerm[pos] = udIdx
			udIdx++
		}
	}
	return c
}

// CornerPermCoord is the Lehmer rank of the full 8-corner permutation.
func CornerPermCoord(c ReprCube) int {
	return perm.Rank(c.CornerPerm[:])
}

// CornerPermFromCoord rebuilds a cube (solved orientations, solved edges)
// with the given corner permutation.
func CornerPermFromCoord(coord int) ReprCube {
	c := Solved()
	copy(c.CornerPerm[:], perm.Unrank(coord, 8))
	return c
}

// udSlicePositions returns, in position order, which of the 12 edge slots
// currently hold UD edges (piece id < 8) versus E-slice edges.
func udSlicePositions(c ReprCube) (ud, slice []int) {
	for pos, piece := range c.EdgePerm {
		if isESliceEdge(piece) {
			slice = append(slice, pos)
		} else {
			ud = append(ud, pos)
		}
	}
	return
}

// UDEdgePermCoord is the Lehmer rank of the 8 UD edges' relative order among
// the slots that hold them. Only meaningful once the cube is in the domino
// subgroup (UD edges occupy exactly the 8 non-E-slice slots).
func UDEdgePermCoord(c ReprCube) int {
	udPositions, _ := udSlicePositions(c)
	syms := make([]uint8, len(udPositions))
	for i, pos := range udPositions {
		syms[i] = c.EdgePerm[pos]
	}
	return perm.Rank(syms)
}

// UDEdgePermFromCoord rebuilds a domino-subgroup cube (E-slice edges already
// in the E-slice, solved corners/orientations) with the given UD edge order.
func UDEdgePermFromCoord(coord int) ReprCube {
	c := Solved()
	p := perm.Unrank(coord, 8)
	for pos := 0; pos < 8; pos++ {
		c.EdgePerm[pos] = p[pos]
	}
	return c
}

// EEdgePermCoord is the Lehmer rank of the 4 E-slice edges' relative order
// among the slots that hold them.
func EEdgePermCoord(c ReprCube) int {
	_, slicePositions := udSlicePositions(c)
	syms := make([]uint8, len(slicePositions))
	for i, pos := range slicePositions {
		syms[i] = c.EdgePerm[pos] - 8
	}
	return perm.Rank(syms)
}

// EEdgePermFromCoord rebuilds a domino-subgroup cube with the given E-slice
// edge order.
func EEdgePermFromCoord(coord int) ReprCube {
	c := Solved()
	p := perm.Unrank(coord, 4)
	for i := 0; i < 4; i++ {
		c.EdgePerm[8+i] = p[i] + 8
	}
	return c
}

// EdgeGroupOrientCoord is (EdgeGroup * 2048) + EdgeOrient.
func EdgeGroupOrientCoord(c ReprCube) int {
	return EdgeGroupCoord(c)*EdgeOrientRange + EdgeOrientCoord(c)
}

// EdgeGroupOrientFromCoord rebuilds a cube exhibiting the combined
// EdgeGroupOrient coordinate.
func EdgeGroupOrientFromCoord(coord int) ReprCube {
	group := coord / EdgeOrientRange
	orient := coord % EdgeOrientRange
	c := EdgeGroupFromCoord(group)
	eo := EdgeOrientFromCoord(orient)
	c.EdgeOrient = eo.EdgeOrient
	return c
}

// SolvedCornerOrient, SolvedEdgeOrient, SolvedEdgeGroup, SolvedEdgeGroupOrient,
// SolvedCornerPerm, SolvedUDEdgePerm and SolvedEEdgePerm are the coordinate
// values of the solved cube, computed once rather than assumed to be zero
// (EdgeGroup's combinatorial-number-system convention does not place the
// identity combination at rank 0).
var (
	SolvedCornerOrient    = CornerOrientCoord(Solved())
	SolvedEdgeOrient      = EdgeOrientCoord(Solved())
	SolvedEdgeGroup       = EdgeGroupCoord(Solved())
	SolvedEdgeGroupOrient = EdgeGroupOrientCoord(Solved())
	SolvedCornerPerm      = CornerPermCoord(Solved())
	SolvedUDEdgePerm      = UDEdgePermCoord(Solved())
	SolvedEEdgePerm       = EEdgePermCoord(Solved())
)
