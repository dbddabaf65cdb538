// Package search implements the two-phase IDA* engine (spec 4.G-4.I): the
// Phase-1 reduction into the domino subgroup, the Phase-2 completion within
// it, and the streaming driver that interleaves both to emit successively
// shorter solutions.
package search

import (
	"github.com/ehrlich-b/cubesolver/internal/kociemba/cubie"
	"github.com/ehrlich-b/cubesolver/internal/kociemba/tables"
)

// Phase1State tracks a Phase-1 search node: the two coordinates the Phase-1
// pruning table indexes (EdgeGroupOrient, CornerOrient), CornerPerm (carried
// through so a completion can seed Phase-2's CornerPermSym coordinate
// without rebuilding a cube), and the full ReprCube, needed once the domino
// subgroup is reached to extract the UD/E edge-permutation coordinates that
// are only meaningful inside that subgroup.
type Phase1State struct {
	EdgeGroupOrient int
	CornerOrient    int
	CornerPerm      int
	Cube            cubie.ReprCube
}

// NewPhase1State derives a Phase1State from a full cube.
func NewPhase1State(c cubie.ReprCube) Phase1State {
	return Phase1State{
		EdgeGroupOrient: cubie.EdgeGroupOrientCoord(c),
		CornerOrient:    cubie.CornerOrientCoord(c),
		CornerPerm:      cubie.CornerPermCoord(c),
		Cube:            c,
	}
}

func (s Phase1State) apply(tb *tables.Tables, m cubie.CubeMove) Phase1State {
	return Phase1State{
		EdgeGroupOrient: tb.EdgeGroupOrientMove.Successor(s.EdgeGroupOrient, m),
		CornerOrient:    tb.CornerOrientMove.Successor(s.CornerOrient, m),
		CornerPerm:      tb.CornerPermMove.Successor(s.CornerPerm, m),
		Cube:            s.Cube.Apply(m),
	}
}

func solvedEdgeGroupOrientClass(tb *tables.Tables) int {
	return int(tb.EdgeGroupOrientSym.RawToClass[cubie.SolvedEdgeGroupOrient])
}

// IsDominoSubgroup reports whether s lies in the domino subgroup: the
// EdgeGroupOrient representative is the solved representative and
// CornerOrient is 0 (spec 4.G's goal predicate).
func (s Phase1State) IsDominoSubgroup(tb *tables.Tables) bool {
	class := int(tb.EdgeGroupOrientSym.RawToClass[s.EdgeGroupOrient])
	return class == solvedEdgeGroupOrientClass(tb) && s.CornerOrient == cubie.SolvedCornerOrient
}

// heuristic returns the admissible Phase-1 lower bound: the recovered exact
// distance from the EdgeGroupOrientSym x CornerOrient pruning table (spec
// 4.G: "the maximum of the Phase-1 pruning lookup" — here that lookup alone,
// since a single product table already covers both sub-coordinates).
func (s Phase1State) heuristic(tb *tables.Tables) int {
	class := int(tb.EdgeGroupOrientSym.RawToClass[s.EdgeGroupOrient])
	sym := tb.EdgeGroupOrientSym.RawToSym[s.EdgeGroupOrient]
	conjCornerOrient := tb.CornerOrientMove.SymSuccessor(s.CornerOrient, cubie.CubeSymmetry(sym))
	d := tb.Phase1Pruning.ActualDistance(
		tb.EdgeGroupOrientSym, tb.EdgeGroupOrientMove, tb.CornerOrientMove,
		tables.AllMoves, solvedEdgeGroupOrientClass(tb), cubie.SolvedCornerOrient,
		class, conjCornerOrient,
	)
	if d < 0 {
		return 0
	}
	return d
}

// Phase1Completion is one Phase-1 prefix that reaches the domino subgroup.
type Phase1Completion struct {
	Moves []cubie.CubeMove
	Cube  cubie.ReprCube
}

// EnumerateCompletions performs depth-first search to exactly `depth` moves
// from start, calling emit for every move sequence that reaches the domino
// subgroup (spec 4.G: "enumerates every Phase-1 completion at the current
// bound, not just the first", since a longer prefix may admit a much
// shorter Phase-2 suffix). emit returning false stops the search
// immediately (cancellation).
func EnumerateCompletions(start cubie.ReprCube, tb *tables.Tables, depth int, emit func(Phase1Completion) bool) {
	root := NewPhase1State(start)
	if depth == 0 {
		if root.IsDominoSubgroup(tb) {
			emit(Phase1Completion{Cube: root.Cube})
		}
		return
	}

	path := make([]cubie.CubeMove, 0, depth)
	stop := false

	var dfs func(s Phase1State, remaining, prevFace int, hasPrev bool)
	dfs = func(s Phase1State, remaining, prevFace int, hasPrev bool) {
		if stop {
			return
		}
		if remaining == 0 {
			if s.IsDominoSubgroup(tb) {
				cp := append([]cubie.CubeMove(nil), path...)
				if !emit(Phase1Completion{Moves: cp, Cube: s.Cube}) {
					stop = true
				}
			}
			return
		}
		if s.heuristic(tb) > remaining {
			return
		}
		for m := cubie.CubeMove(0); m < cubie.NumMoves; m++ {
			face := m.FaceIndex()
			if !canonicalNext(prevFace, hasPrev, face) {
				continue
			}
			path = append(path, m)
			dfs(s.apply(tb, m), remaining-1, face, true)
			path = path[:len(path)-1]
			if stop {
				return
			}
		}
	}
	dfs(root, depth, 0, false)
}

// canonicalNext applies the face-pair redundancy pruning shared by both
// search phases (spec 4.G/4.H): reject a second consecutive move on the
// same face (it would combine into a single move), and on an opposite-face
// pair explore only the canonical low-index-first order (e.g. U before D),
// since the two orders commute and would otherwise be searched twice.
func canonicalNext(prevFace int, hasPrev bool, face int) bool {
	if !hasPrev {
		return true
	}
	if face == prevFace {
		return false
	}
	if face == cubie.FaceOpposite(prevFace) && face < prevFace {
		return false
	}
	return true
}
