package kociemba

import (
	"context"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/ehrlich-b/cubesolver/internal/kociemba/cubie"
	"github.com/ehrlich-b/cubesolver/internal/kociemba/tables"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCubeRejectsInvalidCube(t *testing.T) {
	c := cubie.Solved()
	c.CornerOrient[0] = 1 // breaks the orientation-sum invariant
	_, err := NewCube(c)
	assert.ErrorIs(t, err, ErrInvalidCube)
}

func TestNewCubeAcceptsSolvedCube(t *testing.T) {
	got, err := NewCube(cubie.Solved())
	require.NoError(t, err)
	assert.Equal(t, cubie.Solved(), got)
}

// memBackend is an in-memory TableBackend, used so tests don't touch disk.
type memBackend struct {
	data map[string][]byte
}

func newMemBackend() *memBackend { return &memBackend{data: map[string][]byte{}} }

func (b *memBackend) Load(name string) ([]byte, error) {
	v, ok := b.data[name]
	if !ok {
		return nil, ErrTableIO
	}
	return v, nil
}

func (b *memBackend) Save(name string, data []byte) error {
	b.data[name] = append([]byte(nil), data...)
	return nil
}

func TestLoadTablesGeneratesOnColdBackendAndPersists(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping table-generation test in -short mode")
	}
	backend := newMemBackend()

	tb1, err := LoadTables(backend)
	require.NoError(t, err)
	require.NotNil(t, tb1)
	assert.NotEmpty(t, backend.data, "a cold LoadTables must persist the generated tables")

	tb2, err := tables.Load(backend)
	require.NoError(t, err)
	require.NotNil(t, tb2)
}

func TestSolveEndToEndOnSingleMoveScramble(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping end-to-end solve test in -short mode")
	}
	tb, err := tables.Generate()
	require.NoError(t, err)

	scrambled := cubie.Solved().Apply(cubie.R1)
	sol, err := Solve(scrambled, tb, 0, false)
	require.NoError(t, err)
	require.Len(t, sol, 1)
	assert.Equal(t, cubie.R3, sol[0])
}

func TestSolveRejectsInvalidCube(t *testing.T) {
	c := cubie.Solved()
	c.CornerOrient[0] = 1
	_, err := Solve(c, nil, 0, false)
	assert.ErrorIs(t, err, ErrInvalidCube)
}

func TestGetIncrementalSolutionsStreamStopsOnCancel(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping table-generation test in -short mode")
	}
	tb, err := tables.Generate()
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	scrambled := cubie.Solved().ApplyAll([]cubie.CubeMove{cubie.R1, cubie.U2, cubie.F3, cubie.D1, cubie.L2, cubie.B1})
	done := make(chan struct{})
	go func() {
		for range GetIncrementalSolutionsStream(ctx, scrambled, tb, 0, false) {
		}
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(10 * time.Second):
		t.Fatal("stream did not stop after cancellation")
	}
}

// TestSolveRandomCubeFromChaCha8StreamFindsShortSolution scrambles a solved
// cube with moves drawn from a seeded rand.ChaCha8 stream and checks the
// engine finds a solution of at most 20 moves — the length God's Number
// guarantees is always achievable from any legally reachable state.
func TestSolveRandomCubeFromChaCha8StreamFindsShortSolution(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping table-generation test in -short mode")
	}
	tb, err := tables.Generate()
	require.NoError(t, err)

	rng := rand.New(rand.NewChaCha8([32]byte{1}))
	scrambled := cubie.Solved()
	for i := 0; i < 25; i++ {
		scrambled = scrambled.Apply(cubie.CubeMove(rng.IntN(cubie.NumMoves)))
	}

	sol, err := Solve(scrambled, tb, 20, true)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(sol), 20)

	got := scrambled.ApplyAll(sol)
	assert.True(t, got.IsSolved(), "applying the found solution did not solve the scrambled cube")
}
