package search

import (
	"github.com/ehrlich-b/cubesolver/internal/kociemba/cubie"
	"github.com/ehrlich-b/cubesolver/internal/kociemba/tables"
)

// Phase2State tracks the three domino-subgroup coordinates search 4.H
// solves over completely: CornerPerm, UDEdgePerm and EEdgePerm.
type Phase2State struct {
	CornerPerm int
	UDEdgePerm int
	EEdgePerm  int
}

// NewPhase2State derives a Phase2State from a cube already inside the
// domino subgroup (EdgeGroup solved, CornerOrient and EdgeOrient both 0);
// callers normally build this from a Phase1Completion's Cube.
func NewPhase2State(c cubie.ReprCube) Phase2State {
	return Phase2State{
		CornerPerm: cubie.CornerPermCoord(c),
		UDEdgePerm: cubie.UDEdgePermCoord(c),
		EEdgePerm:  cubie.EEdgePermCoord(c),
	}
}

func (s Phase2State) apply(tb *tables.Tables, m cubie.DominoMove) Phase2State {
	cm := m.ToCubeMove()
	return Phase2State{
		CornerPerm: tb.CornerPermMove.Successor(s.CornerPerm, cm),
		UDEdgePerm: tb.UDEdgePermMove.Successor(s.UDEdgePerm, cm),
		EEdgePerm:  tb.EEdgePermMove.Successor(s.EEdgePerm, cm),
	}
}

func (s Phase2State) isSolved() bool {
	return s.CornerPerm == cubie.SolvedCornerPerm &&
		s.UDEdgePerm == cubie.SolvedUDEdgePerm &&
		s.EEdgePerm == cubie.SolvedEEdgePerm
}

func solvedCornerPermClass(tb *tables.Tables) int {
	return int(tb.CornerPermSym.RawToClass[cubie.SolvedCornerPerm])
}

// heuristic is the admissible Phase-2 lower bound from the CornerPermSym x
// UDEdgePerm pruning table (spec 4.F/4.H). EEdgePerm has no dedicated
// pruning table (its 24-element range makes an exhaustive one unnecessary
// for correctness, only for speed) so it contributes to the goal check but
// not to the heuristic.
func (s Phase2State) heuristic(tb *tables.Tables) int {
	class := int(tb.CornerPermSym.RawToClass[s.CornerPerm])
	sym := tb.CornerPermSym.RawToSym[s.CornerPerm]
	conjUD := tb.UDEdgePermMove.SymSuccessor(s.UDEdgePerm, cubie.CubeSymmetry(sym))
	d := tb.Phase2Pruning.ActualDistance(
		tb.CornerPermSym, tb.CornerPermMove, tb.UDEdgePermMove,
		tables.DominoMoves, solvedCornerPermClass(tb), cubie.SolvedUDEdgePerm,
		class, conjUD,
	)
	if d < 0 {
		return 0
	}
	return d
}

// MinimumDepth is the admissible lower bound on the number of Phase-2 moves
// still needed to finish solving from c; the driver uses it to decide when
// no shorter total solution can still be found (spec 4.I).
func MinimumDepth(c cubie.ReprCube, tb *tables.Tables) int {
	return NewPhase2State(c).heuristic(tb)
}

// Phase2Solve runs Phase-2 IDA* over the 10 domino moves, returning the
// shortest move sequence solving c within maxMoves, or nil if the domino
// subgroup cannot be solved that quickly (spec 4.H). Move-set redundancy is
// pruned exactly as in Phase-1 (no repeated-face, canonical opposite-face
// order).
func Phase2Solve(c cubie.ReprCube, tb *tables.Tables, maxMoves int) []cubie.DominoMove {
	start := NewPhase2State(c)
	if maxMoves < 0 {
		return nil
	}
	h0 := start.heuristic(tb)
	if h0 > maxMoves {
		return nil
	}
	if start.isSolved() {
		return []cubie.DominoMove{}
	}

	path := make([]cubie.DominoMove, 0, maxMoves)
	var found []cubie.DominoMove

	var dfs func(s Phase2State, g, bound, prevFace int, hasPrev bool) bool
	dfs = func(s Phase2State, g, bound, prevFace int, hasPrev bool) bool {
		h := s.heuristic(tb)
		if g+h > bound {
			return false
		}
		if s.isSolved() {
			found = append([]cubie.DominoMove(nil), path...)
			return true
		}
		for d := cubie.DominoMove(0); d < cubie.NumDominoMoves; d++ {
			cm := d.ToCubeMove()
			face := cm.FaceIndex()
			if !canonicalNext(prevFace, hasPrev, face) {
				continue
			}
			path = append(path, d)
			if dfs(s.apply(tb, d), g+1, bound, face, true) {
				return true
			}
			path = path[:len(path)-1]
		}
		return false
	}

	for bound := h0; bound <= maxMoves; bound++ {
		if dfs(start, 0, bound, 0, false) {
			return found
		}
	}
	return nil
}
