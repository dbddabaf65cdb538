package cubie

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoveInverseRoundTrip(t *testing.T) {
	solved := Solved()
	for m := CubeMove(0); m < NumMoves; m++ {
		got := solved.Apply(m).Apply(m.Inverse())
		assert.Equalf(t, solved, got, "move %s then its inverse %s should return to solved", m, m.Inverse())
	}
}

func TestQuarterTurnAppliedFourTimesIsIdentity(t *testing.T) {
	solved := Solved()
	faces := []CubeMove{U1, D1, F1, B1, R1, L1}
	for _, base := range faces {
		c := solved
		for i := 0; i < 4; i++ {
			c = c.Apply(base)
		}
		assert.Equalf(t, solved, c, "%s applied 4 times should be identity", base)
	}
}

func TestHalfTurnIsTwoQuarters(t *testing.T) {
	solved := Solved()
	assert.Equal(t, solved.Apply(U1).Apply(U1), solved.Apply(U2))
	assert.Equal(t, solved.Apply(R1).Apply(R1), solved.Apply(R2))
}

func TestOrientationInvariantsHoldAfterScramble(t *testing.T) {
	c := Solved()
	scramble := []CubeMove{R1, U2, F3, D1, L2, B1, U1, R3}
	c = c.ApplyAll(scramble)

	cSum := 0
	for _, o := range c.CornerOrient {
		cSum += int(o)
	}
	assert.Equal(t, 0, cSum%3)

	eSum := 0
	for _, o := range c.EdgeOrient {
		eSum += int(o)
	}
	assert.Equal(t, 0, eSum%2)
}

func TestDominoMovesStayInDominoSubgroup(t *testing.T) {
	for d := DominoMove(0); d < NumDominoMoves; d++ {
		assert.True(t, d.ToCubeMove().IsDomino())
	}
}

func TestSymmetryGroupClosure(t *testing.T) {
	require.Len(t, symGroup, NumSymmetries)
	seen := make(map[Symmetry]bool)
	for _, s := range symGroup {
		seen[s] = true
	}
	assert.Len(t, seen, NumSymmetries, "all 16 symmetries must be distinct")
}

func TestSymmetryConjugationPreservesGroupAxioms(t *testing.T) {
	for s := CubeSymmetry(0); s < NumSymmetries; s++ {
		identityConj := s.Mul(s.Inv())
		assert.Equal(t, CubeSymmetry(0), identityConj, "s * s^-1 must be identity")
	}
}

func TestConjugateMoveStaysInMoveSet(t *testing.T) {
	for s := CubeSymmetry(0); s < NumSymmetries; s++ {
		for m := CubeMove(0); m < NumMoves; m++ {
			conj := s.ConjugateMove(m)
			assert.GreaterOrEqual(t, int(conj), 0)
			assert.Less(t, int(conj), NumMoves)
		}
	}
}

func TestSurConjugationFixesUMove(t *testing.T) {
	s := CubeSymmetry(indexOfSym(sUR))
	assert.Equal(t, U1, s.ConjugateMove(U1))
}

func TestSolvedCubeIsValid(t *testing.T) {
	assert.True(t, Solved().Valid())
}

func TestScrambledCubeStaysValid(t *testing.T) {
	c := Solved().ApplyAll([]CubeMove{R1, U2, F3, D1, L2, B1, U1, R3, D3, F1})
	assert.True(t, c.Valid())
}

func TestCubeWithBrokenOrientationParityIsInvalid(t *testing.T) {
	c := Solved()
	c.CornerOrient[0] = 1 // sum no longer ≡ 0 (mod 3)
	assert.False(t, c.Valid())
}

func TestCubeWithOddEdgeOrientSumIsInvalid(t *testing.T) {
	c := Solved()
	c.EdgeOrient[0] = 1 // sum no longer ≡ 0 (mod 2)
	assert.False(t, c.Valid())
}

func TestCubeWithMismatchedPermParityIsInvalid(t *testing.T) {
	c := Solved()
	c.CornerPerm[0], c.CornerPerm[1] = c.CornerPerm[1], c.CornerPerm[0]
	assert.False(t, c.Valid())
}

func TestFaceOppositeIsInvolution(t *testing.T) {
	for face := 0; face < 6; face++ {
		opp := FaceOpposite(face)
		assert.NotEqual(t, face, opp)
		assert.Equal(t, face, FaceOpposite(opp))
	}
}

func TestParseCubeMoveRoundTripsWithString(t *testing.T) {
	for m := CubeMove(0); m < NumMoves; m++ {
		got, err := ParseCubeMove(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}
}

func TestParseCubeMoveRejectsUnknownNotation(t *testing.T) {
	_, err := ParseCubeMove("Q")
	assert.Error(t, err)
}
