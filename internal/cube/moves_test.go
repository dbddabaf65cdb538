package cube

import (
	"fmt"
	"math/rand/v2"
	"testing"
)

// TestMoveSystemMultiSize checks that a single R move affects the expected
// number of layers on each cube size: only the outermost right layer turns
// (deeper layers need a wide or numbered move), and every other column of
// the front face stays untouched.
func TestMoveSystemMultiSize(t *testing.T) {
	for _, size := range []int{2, 3, 4, 5, 6} {
		t.Run(fmt.Sprintf("%dx%dx%d", size, size, size), func(t *testing.T) {
			cube := NewCube(size)
			originalState := cube.String()

			origFrontColors := make([]Color, size)
			for col := 0; col < size; col++ {
				origFrontColors[col] = cube.Faces[Front][0][col]
			}

			cube.ApplyMove(Move{Face: Right, Clockwise: true})

			if cube.IsSolved() {
				t.Errorf("%dx%d cube should not be solved after R move", size, size)
			}
			if originalState == cube.String() {
				t.Errorf("%dx%d cube state should change after R move", size, size)
			}

			expectedLayers := 1
			for layer := 0; layer < expectedLayers; layer++ {
				col := size - 1 - layer
				if cube.Faces[Front][0][col] == origFrontColors[col] {
					t.Errorf("%dx%d cube: column %d should have changed after R move", size, size, col)
				}
			}
			for col := 0; col < size-expectedLayers; col++ {
				if cube.Faces[Front][0][col] != origFrontColors[col] {
					t.Errorf("%dx%d cube: column %d should NOT have changed after R move", size, size, col)
				}
			}
		})
	}
}

// TestCompleteMoveNotation verifies every base face move in every quarter
// turn parses and actually perturbs a solved cube.
func TestCompleteMoveNotation(t *testing.T) {
	notations := []string{
		"F", "F'", "F2",
		"B", "B'", "B2",
		"R", "R'", "R2",
		"L", "L'", "L2",
		"U", "U'", "U2",
		"D", "D'", "D2",
	}

	for _, notation := range notations {
		t.Run(notation, func(t *testing.T) {
			move, err := ParseMove(notation)
			if err != nil {
				t.Errorf("failed to parse %s: %v", notation, err)
			}

			cube := NewCube(3)
			originalState := cube.String()
			cube.ApplyMove(move)

			if originalState == cube.String() {
				t.Errorf("move %s should change cube state", notation)
			}
		})
	}
}

func TestMoveSequenceInverses(t *testing.T) {
	sequences := []struct {
		name     string
		sequence string
		inverse  string
	}{
		{"Single R move", "R", "R'"},
		{"Double move", "R2", "R2"},
		{"Simple sequence", "R U", "U' R'"},
		{"Sexy move", "R U R' U'", "U R U' R'"},
	}

	for _, seq := range sequences {
		t.Run(seq.name, func(t *testing.T) {
			cube := NewCube(3)
			originalState := cube.String()

			moves, err := ParseScramble(seq.sequence)
			if err != nil {
				t.Fatalf("failed to parse sequence %s: %v", seq.sequence, err)
			}
			cube.ApplyMoves(moves)

			inverseMoves, err := ParseScramble(seq.inverse)
			if err != nil {
				t.Fatalf("failed to parse inverse %s: %v", seq.inverse, err)
			}
			cube.ApplyMoves(inverseMoves)

			if cube.String() != originalState {
				t.Errorf("sequence %s followed by %s should return to original state", seq.sequence, seq.inverse)
			}
		})
	}
}

// TestMoveSequenceConsistency walks a long fixed sequence one move at a
// time and checks every intermediate state actually changes, then decodes
// the final state to a ReprCube to confirm the facelet grid never drifts
// into an invariant-violating configuration.
func TestMoveSequenceConsistency(t *testing.T) {
	cube := NewCube(3)

	longSequence := "R U R' U' R' F R F' R U R' U' R' F R F' R U R' U'"
	moves, err := ParseScramble(longSequence)
	if err != nil {
		t.Fatalf("failed to parse long sequence: %v", err)
	}

	for i, move := range moves {
		beforeState := cube.String()
		cube.ApplyMove(move)
		if beforeState == cube.String() {
			t.Errorf("move %d (%s) in sequence did not change cube state", i, move.String())
		}
	}

	if cube.IsSolved() {
		t.Error("cube should not be solved after long move sequence")
	}

	repr, err := cube.ToReprCube()
	if err != nil {
		t.Fatalf("ToReprCube() after long sequence: %v", err)
	}
	if !repr.Valid() {
		t.Errorf("ToReprCube() after long sequence produced invalid ReprCube: %+v", repr)
	}
}

func TestEmptyScramble(t *testing.T) {
	cube := NewCube(3)
	originalState := cube.String()

	moves, err := ParseScramble("")
	if err != nil {
		t.Fatalf("empty scramble should not error: %v", err)
	}
	cube.ApplyMoves(moves)

	if cube.String() != originalState {
		t.Error("empty scramble should not change cube state")
	}
	if !cube.IsSolved() {
		t.Error("cube should remain solved after empty scramble")
	}
}

func BenchmarkSingleMove(b *testing.B) {
	cube := NewCube(3)
	move := Move{Face: Right, Clockwise: true}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		cube.ApplyMove(move)
	}
}

func BenchmarkScrambleApplication(b *testing.B) {
	moves, _ := ParseScramble("R U R' U' R' F R F'")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		cube := NewCube(3)
		cube.ApplyMoves(moves)
	}
}

var quarterTurnNotations = []string{
	"R", "R'", "R2", "L", "L'", "L2", "U", "U'", "U2",
	"D", "D'", "D2", "F", "F'", "F2", "B", "B'", "B2",
}

// invertNotation inverts a single quarter/half-turn notation string: R<->R',
// R2 is its own inverse.
func invertNotation(move string) string {
	switch {
	case len(move) > 1 && move[len(move)-1] == '\'':
		return move[:len(move)-1]
	case len(move) > 1 && move[len(move)-1] == '2':
		return move
	default:
		return move + "'"
	}
}

// randomScramble draws n notations from rng and returns both the scramble
// and its exact inverse (reverse order, each move inverted).
func randomScramble(rng *rand.Rand, n int) (scramble, inverse []string) {
	scramble = make([]string, n)
	for i := range scramble {
		scramble[i] = quarterTurnNotations[rng.IntN(len(quarterTurnNotations))]
	}
	inverse = make([]string, n)
	for i := range inverse {
		inverse[i] = invertNotation(scramble[n-1-i])
	}
	return scramble, inverse
}

// TestMoveInversesFuzz applies a ChaCha8-seeded stream of random scrambles
// and their exact inverses, and checks every one returns the cube to
// solved on a 3x3 — a property that must hold regardless of which move
// sequence is drawn, so a single deterministic seed gives reproducible
// fuzzing without needing a corpus of fixed cases.
func TestMoveInversesFuzz(t *testing.T) {
	rng := rand.New(rand.NewChaCha8([32]byte{1}))

	const trials = 200
	failures := 0
	for i := 0; i < trials; i++ {
		length := 3 + rng.IntN(6)
		scramble, inverse := randomScramble(rng, length)

		cube := NewCube(3)

		scrambleMoves, err := ParseScramble(joinMoves(scramble))
		if err != nil {
			t.Fatalf("failed to parse scramble %v: %v", scramble, err)
		}
		cube.ApplyMoves(scrambleMoves)

		inverseMoves, err := ParseScramble(joinMoves(inverse))
		if err != nil {
			t.Fatalf("failed to parse inverse %v: %v", inverse, err)
		}
		cube.ApplyMoves(inverseMoves)

		if !cube.IsSolved() {
			failures++
			if failures <= 5 {
				t.Errorf("trial %d: scramble %v + inverse %v did not return to solved", i, scramble, inverse)
			}
		}
	}
	if failures > 0 {
		t.Errorf("%d/%d fuzz trials failed to return to solved", failures, trials)
	}
}

// TestMoveCircuitOrder checks that every random sequence has a finite cycle
// order under repeated application: the cube's move group is finite, so
// any fixed sequence applied enough times must return to solved. No element
// of the 3x3 cube group has order above 1260 (R U alone has order 105).
func TestMoveCircuitOrder(t *testing.T) {
	rng := rand.New(rand.NewChaCha8([32]byte{2}))

	const trials = 40
	const maxCycleLength = 1260

	for i := 0; i < trials; i++ {
		length := 3 + rng.IntN(6)
		scramble := make([]string, length)
		for j := range scramble {
			scramble[j] = quarterTurnNotations[rng.IntN(len(quarterTurnNotations))]
		}
		scrambleStr := joinMoves(scramble)

		cube := NewCube(3)
		originalState := cube.String()

		scrambleMoves, err := ParseScramble(scrambleStr)
		if err != nil {
			t.Fatalf("failed to parse sequence %s: %v", scrambleStr, err)
		}

		cycleFound := false
		for cycle := 1; cycle <= maxCycleLength; cycle++ {
			cube.ApplyMoves(scrambleMoves)
			if cube.String() == originalState {
				cycleFound = true
				break
			}
		}
		if !cycleFound {
			t.Errorf("sequence %q did not cycle back to solved within %d applications", scrambleStr, maxCycleLength)
		}
	}
}

func TestSpecificProblematicSequences(t *testing.T) {
	testCases := []struct {
		name     string
		scramble string
		inverse  string
	}{
		{"R U sequence", "R U", "U' R'"},
		{"U B sequence", "U B", "B' U'"},
		{"D B sequence", "D B", "B' D'"},
		{"R U R' U' sequence", "R U R' U'", "U R U' R'"},
		{"F R U sequence", "F R U", "U' R' F'"},
		{"Complex sequence", "R U F' D L", "L' D' F U' R'"},
		{"Back face issues", "U B F", "F' B' U'"},
		{"Multi-face", "R L U D F B", "B' F' D' U' L' R'"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cube := NewCube(3)

			scrambleMoves, err := ParseScramble(tc.scramble)
			if err != nil {
				t.Fatalf("failed to parse scramble %s: %v", tc.scramble, err)
			}
			cube.ApplyMoves(scrambleMoves)

			inverseMoves, err := ParseScramble(tc.inverse)
			if err != nil {
				t.Fatalf("failed to parse inverse %s: %v", tc.inverse, err)
			}
			cube.ApplyMoves(inverseMoves)

			if !cube.IsSolved() {
				t.Errorf("sequence %s + %s did not return to solved state", tc.scramble, tc.inverse)
			}
		})
	}
}

func TestSingleMoveFourFold(t *testing.T) {
	for _, moveStr := range []string{"R", "L", "U", "D", "F", "B"} {
		t.Run(moveStr+" move 4x", func(t *testing.T) {
			cube := NewCube(3)
			move, err := ParseMove(moveStr)
			if err != nil {
				t.Fatalf("failed to parse move %s: %v", moveStr, err)
			}
			for i := 0; i < 4; i++ {
				cube.ApplyMove(move)
			}
			if !cube.IsSolved() {
				t.Errorf("move %s applied 4 times did not return to solved state", moveStr)
			}
		})
	}
}

// TestTPerm checks the classic T-Perm algorithm's documented properties:
// it only disturbs the top layer, and three applications return to solved.
func TestTPerm(t *testing.T) {
	const tPerm = "R U R' F' R U R' U' R' F R2 U' R'"

	t.Run("order 3", func(t *testing.T) {
		cube := NewCube(3)
		for i := 0; i < 3; i++ {
			moves, err := ParseScramble(tPerm)
			if err != nil {
				t.Fatalf("failed to parse T-Perm: %v", err)
			}
			cube.ApplyMoves(moves)
		}
		if !cube.IsSolved() {
			t.Errorf("T-Perm applied 3 times should return to solved state")
		}
	})

	t.Run("leaves bottom face and lower rows untouched", func(t *testing.T) {
		cube := NewCube(3)
		var originalBottom [3][3]Color
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				originalBottom[i][j] = cube.Faces[Down][i][j]
			}
		}
		originalLowerRows := map[Face][2][3]Color{}
		for _, face := range []Face{Front, Back, Left, Right} {
			var rows [2][3]Color
			for i := 1; i < 3; i++ {
				for j := 0; j < 3; j++ {
					rows[i-1][j] = cube.Faces[face][i][j]
				}
			}
			originalLowerRows[face] = rows
		}

		moves, err := ParseScramble(tPerm)
		if err != nil {
			t.Fatalf("failed to parse T-Perm: %v", err)
		}
		cube.ApplyMoves(moves)

		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				if cube.Faces[Down][i][j] != originalBottom[i][j] {
					t.Errorf("T-Perm should not affect bottom face, position [%d][%d] changed", i, j)
				}
			}
		}
		for _, face := range []Face{Front, Back, Left, Right} {
			rows := originalLowerRows[face]
			for i := 1; i < 3; i++ {
				for j := 0; j < 3; j++ {
					if cube.Faces[face][i][j] != rows[i-1][j] {
						t.Errorf("T-Perm should not affect lower rows, %s position [%d][%d] changed", face, i, j)
					}
				}
			}
		}
	})
}

// joinMoves joins move notations with spaces for ParseScramble.
func joinMoves(moves []string) string {
	result := ""
	for i, move := range moves {
		if i > 0 {
			result += " "
		}
		result += move
	}
	return result
}
