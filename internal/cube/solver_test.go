package cube

import "testing"

func TestGetSolverDispatch(t *testing.T) {
	tests := []struct {
		name      string
		algorithm string
		wantName  string
		wantErr   bool
	}{
		{"Beginner solver", "beginner", "Beginner", false},
		{"CFOP solver", "cfop", "CFOP", false},
		{"Kociemba solver", "kociemba", "Kociemba", false},
		{"Invalid solver", "invalid", "", true},
		{"Empty string", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			solver, err := GetSolver(tt.algorithm)
			if (err != nil) != tt.wantErr {
				t.Errorf("GetSolver(%q) error = %v, wantErr %v", tt.algorithm, err, tt.wantErr)
				return
			}
			if !tt.wantErr && solver.Name() != tt.wantName {
				t.Errorf("GetSolver(%q).Name() = %q, want %q", tt.algorithm, solver.Name(), tt.wantName)
			}
		})
	}
}

func TestKociembaSolver4x4Rejection(t *testing.T) {
	cube := NewCube(4)
	solver := NewKociembaSolver(0, false, t.TempDir())

	_, err := solver.Solve(cube)
	if err == nil {
		t.Error("KociembaSolver should reject 4x4x4 cubes")
	}
}

func TestKociembaSolverOnSolvedCubeReturnsEmptySolution(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping table-generation test in -short mode")
	}
	cube := NewCube(3)
	solver := NewKociembaSolver(0, false, t.TempDir())

	result, err := solver.Solve(cube)
	if err != nil {
		t.Fatalf("KociembaSolver.Solve() on solved cube: %v", err)
	}
	if len(result.Solution) != 0 {
		t.Errorf("solved cube should need 0 moves, got %d: %v", len(result.Solution), result.Solution)
	}
	if result.Steps != len(result.Solution) {
		t.Errorf("Steps (%d) should equal len(Solution) (%d)", result.Steps, len(result.Solution))
	}
}

func TestKociembaSolverUndoesSimpleScramble(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping table-generation test in -short mode")
	}
	cube := NewCube(3)
	moves, err := ParseScramble("R U R' U'")
	if err != nil {
		t.Fatalf("failed to parse scramble: %v", err)
	}
	cube.ApplyMoves(moves)

	solver := NewKociembaSolver(0, false, t.TempDir())
	result, err := solver.Solve(cube)
	if err != nil {
		t.Fatalf("KociembaSolver.Solve() error = %v", err)
	}
	if result.Duration < 0 {
		t.Error("Duration should not be negative")
	}
	if result.Steps != len(result.Solution) {
		t.Errorf("Steps (%d) != len(Solution) (%d)", result.Steps, len(result.Solution))
	}

	cube.ApplyMoves(result.Solution)
	if !cube.IsSolved() {
		t.Errorf("applying the returned solution did not solve the cube: %v", result.Solution)
	}
}
