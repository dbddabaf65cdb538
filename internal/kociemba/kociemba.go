// Package kociemba is the public façade over the two-phase solver: callers
// load or generate tables once, then stream solutions for any number of
// cubes without touching the cubie/tables/search packages directly (spec
// section 6).
package kociemba

import (
	"context"
	"errors"
	"fmt"

	"github.com/ehrlich-b/cubesolver/internal/kociemba/cubie"
	"github.com/ehrlich-b/cubesolver/internal/kociemba/search"
	"github.com/ehrlich-b/cubesolver/internal/kociemba/tables"
)

// Re-exported types so callers never need to import the internal
// cubie/tables/search packages directly.
type (
	CubeMove     = cubie.CubeMove
	ReprCube     = cubie.ReprCube
	Tables       = tables.Tables
	TableBackend = tables.TableBackend
	FileBackend  = tables.FileBackend
)

// Re-exported error sentinels (spec section 7).
var (
	ErrInvalidCube       = tables.ErrInvalidCube
	ErrTableIO           = tables.ErrTableIO
	ErrGenerationFailure = tables.ErrGenerationFailure
)

// LoadTables opens tables from backend, generating and persisting a fresh
// set on a cold cache (missing files, or ErrTableIO from a checksum
// mismatch). Any other error from Generate is reported as
// ErrGenerationFailure.
func LoadTables(backend TableBackend) (*Tables, error) {
	t, err := tables.Load(backend)
	if err == nil {
		return t, nil
	}
	if !errors.Is(err, ErrTableIO) {
		return nil, err
	}

	t, genErr := tables.Generate()
	if genErr != nil {
		return nil, fmt.Errorf("%w: %v", ErrGenerationFailure, genErr)
	}
	if saveErr := t.Save(backend); saveErr != nil {
		return nil, saveErr
	}
	return t, nil
}

// NewCube validates c against the three legal-cube invariants (spec
// section 3) before any search touches it.
func NewCube(c ReprCube) (ReprCube, error) {
	if !c.Valid() {
		return ReprCube{}, ErrInvalidCube
	}
	return c, nil
}

// GetIncrementalSolutionsStream streams successively shorter solutions for
// cube until none shorter can exist or ctx is cancelled (spec section 6's
// `get_incremental_solutions_stream`). maxLength <= 0 means no cap.
func GetIncrementalSolutionsStream(ctx context.Context, cube ReprCube, tabs *Tables, maxLength int, searchInverse bool) <-chan []CubeMove {
	out := make(chan []CubeMove)
	go func() {
		defer close(out)
		for sol := range search.Stream(ctx, cube, tabs, maxLength, searchInverse) {
			select {
			case out <- sol.Moves:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}

// Solve drains GetIncrementalSolutionsStream and returns the final
// (shortest) solution found within maxLength moves, or an error if the
// cube is invalid or no solution was found within the cap.
func Solve(cube ReprCube, tabs *Tables, maxLength int, searchInverse bool) ([]CubeMove, error) {
	if !cube.Valid() {
		return nil, ErrInvalidCube
	}
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var best []CubeMove
	for sol := range GetIncrementalSolutionsStream(ctx, cube, tabs, maxLength, searchInverse) {
		best = sol
	}
	if best == nil {
		return nil, fmt.Errorf("kociemba: no solution found within %d moves", maxLength)
	}
	return best, nil
}
