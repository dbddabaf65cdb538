package search

import (
	"context"

	"github.com/ehrlich-b/cubesolver/internal/kociemba/cubie"
	"github.com/ehrlich-b/cubesolver/internal/kociemba/tables"
)

// Solution is one streamed two-phase solve result (spec 4.I): Moves is the
// concatenation of a Phase-1 prefix and a Phase-2 suffix.
type Solution struct {
	Moves []cubie.CubeMove
}

// noCap stands in for "no user-supplied length cap" (spec section 6:
// max_length defaults to infinity).
const noCap = 1 << 30

// Stream drives the two-phase search, sending successively shorter
// Solutions on the returned channel until no shorter solution can exist or
// ctx is cancelled (spec 4.I and 5's cooperative-producer model: suspension
// points are between Phase-1 depth iterations and after each emitted
// solution). The channel is closed when the search ends; the consumer
// simply stops ranging over it to cancel.
//
// maxLength <= 0 means no cap. searchInverse additionally searches
// start.Inverse() with the same tables and reports whichever track yields
// the shorter solution at each length, inverting the inverse track's
// moves (reverse order, invert each move) before reporting them — the
// search_inverse behavior the source left as an open question, resolved in
// DESIGN.md.
func Stream(ctx context.Context, start cubie.ReprCube, tb *tables.Tables, maxLength int, searchInverse bool) <-chan Solution {
	out := make(chan Solution)
	go func() {
		defer close(out)
		bestLen := maxLength
		if bestLen <= 0 {
			bestLen = noCap
		}
		emit := func(moves []cubie.CubeMove) bool {
			select {
			case out <- Solution{Moves: moves}:
				return true
			case <-ctx.Done():
				return false
			}
		}
		if !runTrack(ctx, start, tb, &bestLen, emit, false) {
			return
		}
		if searchInverse {
			runTrack(ctx, start.Inverse(), tb, &bestLen, emit, true)
		}
	}()
	return out
}

// runTrack drives one direction of the search to exhaustion (or
// cancellation), sharing bestLen with any other track in flight so that
// whichever direction finds the shorter solution at a given prefix depth
// wins. It returns false if the context was cancelled mid-search.
func runTrack(ctx context.Context, cube cubie.ReprCube, tb *tables.Tables, bestLen *int, emit func([]cubie.CubeMove) bool, invert bool) bool {
	for d1 := 0; d1 < *bestLen; d1++ {
		select {
		case <-ctx.Done():
			return false
		default:
		}

		cancelled := false
		EnumerateCompletions(cube, tb, d1, func(completion Phase1Completion) bool {
			select {
			case <-ctx.Done():
				cancelled = true
				return false
			default:
			}
			if d1 > 0 {
				last := completion.Moves[len(completion.Moves)-1]
				if last.IsDomino() {
					// A shorter-by-one prefix already reaches this cube.
					return true
				}
			}
			budget := *bestLen - d1 - 1
			if budget < 0 {
				return true
			}
			suffix := Phase2Solve(completion.Cube, tb, budget)
			if suffix == nil {
				return true
			}
			full := make([]cubie.CubeMove, 0, len(completion.Moves)+len(suffix))
			full = append(full, completion.Moves...)
			for _, d := range suffix {
				full = append(full, d.ToCubeMove())
			}
			if len(full) >= *bestLen {
				return true
			}
			if invert {
				full = invertSolution(full)
			}
			*bestLen = len(full)
			if !emit(full) {
				cancelled = true
				return false
			}
			return true
		})
		if cancelled {
			return false
		}
	}
	return true
}

// invertSolution builds the inverse of a move sequence: reverse the order
// and invert each move, so that applying the result undoes the original
// sequence exactly (supplemented feature: search_inverse, see DESIGN.md).
func invertSolution(moves []cubie.CubeMove) []cubie.CubeMove {
	out := make([]cubie.CubeMove, len(moves))
	for i, m := range moves {
		out[len(moves)-1-i] = m.Inverse()
	}
	return out
}
