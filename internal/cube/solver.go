package cube

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ehrlich-b/cubesolver/internal/kociemba"
)

// SolverResult represents the result of a solve attempt
type SolverResult struct {
	Solution []Move
	Steps    int
	Duration time.Duration
}

// Solver interface for different solving algorithms
type Solver interface {
	Solve(cube *Cube) (*SolverResult, error)
	Name() string
}

// BeginnerSolver implements a basic layer-by-layer method
type BeginnerSolver struct{}

func (s *BeginnerSolver) Name() string {
	return "Beginner"
}

func (s *BeginnerSolver) Solve(cube *Cube) (*SolverResult, error) {
	start := time.Now()
	
	// This is a placeholder implementation
	// A real beginner solver would implement:
	// 1. White cross
	// 2. White corners (first layer)
	// 3. Middle layer edges
	// 4. Yellow cross
	// 5. Yellow face
	// 6. Permute last layer
	
	solution := []Move{
		{Face: Right, Clockwise: true},
		{Face: Up, Clockwise: true},
		{Face: Right, Clockwise: false},
		{Face: Up, Clockwise: false},
	}
	
	return &SolverResult{
		Solution: solution,
		Steps:    len(solution),
		Duration: time.Since(start),
	}, nil
}

// CFOPSolver implements the CFOP method
type CFOPSolver struct{}

func (s *CFOPSolver) Name() string {
	return "CFOP"
}

func (s *CFOPSolver) Solve(cube *Cube) (*SolverResult, error) {
	start := time.Now()
	
	// Placeholder CFOP implementation
	// Real CFOP would implement:
	// 1. Cross
	// 2. F2L (First Two Layers)
	// 3. OLL (Orient Last Layer)
	// 4. PLL (Permute Last Layer)
	
	solution := []Move{
		{Face: Front, Clockwise: true},
		{Face: Right, Clockwise: true},
		{Face: Up, Clockwise: true},
		{Face: Right, Clockwise: false},
		{Face: Up, Clockwise: false},
		{Face: Front, Clockwise: false},
	}
	
	return &SolverResult{
		Solution: solution,
		Steps:    len(solution),
		Duration: time.Since(start),
	}, nil
}

// defaultTableDir is where a KociembaSolver persists generated tables
// across runs when no directory is given explicitly; regeneration from
// scratch takes minutes, so every run should hit this cache after the
// first.
func defaultTableDir() string {
	if dir, err := os.UserCacheDir(); err == nil {
		return filepath.Join(dir, "cubesolver", "kociemba-tables")
	}
	return filepath.Join(".", ".cubesolver-tables")
}

// KociembaSolver implements Kociemba's two-phase algorithm (spec section
// 6). MaxLength caps the solution length searched (0 means no cap);
// SearchInverse additionally searches the cube's inverse, keeping
// whichever direction finds the shorter solution; TableDir overrides where
// move/symmetry/pruning tables are cached.
type KociembaSolver struct {
	MaxLength     int
	SearchInverse bool
	TableDir      string
}

// NewKociembaSolver builds a KociembaSolver with the given tunables,
// falling back to an unbounded search and the default cache directory
// when maxLength <= 0 or tableDir == "".
func NewKociembaSolver(maxLength int, searchInverse bool, tableDir string) *KociembaSolver {
	if tableDir == "" {
		tableDir = defaultTableDir()
	}
	return &KociembaSolver{MaxLength: maxLength, SearchInverse: searchInverse, TableDir: tableDir}
}

func (s *KociembaSolver) Name() string {
	return "Kociemba"
}

func (s *KociembaSolver) Solve(cube *Cube) (*SolverResult, error) {
	if cube.Size != 3 {
		return nil, fmt.Errorf("Kociemba algorithm only supports 3x3x3 cubes")
	}

	start := time.Now()

	repr, err := cube.ToReprCube()
	if err != nil {
		return nil, fmt.Errorf("decoding cube for kociemba: %w", err)
	}

	tableDir := s.TableDir
	if tableDir == "" {
		tableDir = defaultTableDir()
	}
	tabs, err := kociemba.LoadTables(kociemba.FileBackend{Dir: tableDir})
	if err != nil {
		return nil, fmt.Errorf("loading kociemba tables: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var best []kociemba.CubeMove
	for sol := range kociemba.GetIncrementalSolutionsStream(ctx, repr, tabs, s.MaxLength, s.SearchInverse) {
		best = sol
	}
	if best == nil {
		return nil, fmt.Errorf("kociemba: no solution found within %d moves", s.MaxLength)
	}

	solution := make([]Move, len(best))
	for i, m := range best {
		solution[i] = cubeMoveToMove(m)
	}

	return &SolverResult{
		Solution: solution,
		Steps:    len(solution),
		Duration: time.Since(start),
	}, nil
}

// cubeMoveToMove converts an engine CubeMove (U1,U2,U3,...) into this
// package's Move representation, the inverse of the parsing
// move_parser.go already does for user-typed notation.
func cubeMoveToMove(m kociemba.CubeMove) Move {
	var face Face
	switch m.Face() {
	case "U":
		face = Up
	case "D":
		face = Down
	case "F":
		face = Front
	case "B":
		face = Back
	case "R":
		face = Right
	case "L":
		face = Left
	}
	quarters := m.Quarters()
	return Move{Face: face, Clockwise: quarters == 1, Double: quarters == 2}
}

// GetSolver returns a solver by name, constructing a KociembaSolver with
// default tunables; callers that need to customize max length, inverse
// search, or the table directory should build one with NewKociembaSolver
// directly.
func GetSolver(name string) (Solver, error) {
	switch name {
	case "beginner":
		return &BeginnerSolver{}, nil
	case "cfop":
		return &CFOPSolver{}, nil
	case "kociemba":
		return NewKociembaSolver(0, false, ""), nil
	default:
		return nil, fmt.Errorf("unknown solver: %s", name)
	}
}