package tables

import (
	"testing"

	"github.com/ehrlich-b/cubesolver/internal/kociemba/cubie"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildSmallPruningFixture builds a self-contained (sym, move, pruning)
// triple over CornerOrientRange (2187 states) paired with itself, small
// enough to build inline in a test rather than the full ~64k/2187 or
// 2768/40320 production tables.
func buildSmallPruningFixture() (*SymTable, *MoveTable, *PruningTable, int) {
	symTable := BuildSymTable(cubie.CornerOrientRange, cubie.CornerOrientFromCoord, cubie.CornerOrientCoord)
	moveTable := BuildMoveTable(cubie.CornerOrientRange, cubie.CornerOrientFromCoord, cubie.CornerOrientCoord, true)
	solvedClass := int(symTable.RawToClass[cubie.SolvedCornerOrient])
	prun := BuildPruningTable(symTable, moveTable, moveTable, cubie.CornerOrientRange, AllMoves, solvedClass, cubie.SolvedCornerOrient)
	return symTable, moveTable, prun, solvedClass
}

func TestPruningTableSolvedStateIsZero(t *testing.T) {
	symTable, moveTable, prun, solvedClass := buildSmallPruningFixture()
	d := prun.ActualDistance(symTable, moveTable, moveTable, AllMoves, solvedClass, cubie.SolvedCornerOrient, solvedClass, cubie.SolvedCornerOrient)
	assert.Equal(t, 0, d)
}

func TestPruningTableOneMoveAwayIsDistanceOne(t *testing.T) {
	symTable, moveTable, prun, solvedClass := buildSmallPruningFixture()
	raw := cubie.CornerOrientCoord(cubie.Solved().Apply(cubie.R1))
	class := int(symTable.RawToClass[raw])
	d := prun.ActualDistance(symTable, moveTable, moveTable, AllMoves, solvedClass, cubie.SolvedCornerOrient, class, raw)
	assert.Equal(t, 1, d)
}

func TestPruningTableEveryReachableStateIsBounded(t *testing.T) {
	symTable, moveTable, prun, solvedClass := buildSmallPruningFixture()
	for raw := 0; raw < cubie.CornerOrientRange; raw += 53 {
		class := int(symTable.RawToClass[raw])
		d := prun.ActualDistance(symTable, moveTable, moveTable, AllMoves, solvedClass, cubie.SolvedCornerOrient, class, raw)
		require.GreaterOrEqualf(t, d, 0, "raw %d should be reachable from solved", raw)
		assert.LessOrEqual(t, d, 6, "corner orientation alone solves in a handful of moves")
	}
}
