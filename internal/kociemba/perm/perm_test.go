package perm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankUnrankRoundTrip(t *testing.T) {
	for n := 1; n <= 8; n++ {
		n := n
		t.Run("", func(t *testing.T) {
			total := Factorial(n)
			for r := 0; r < total; r++ {
				p := Unrank(r, n)
				require.Len(t, p, n)
				got := Rank(p)
				assert.Equalf(t, r, got, "rank(unrank(%d, %d))", r, n)
			}
		})
	}
}

func TestUnrankProducesPermutation(t *testing.T) {
	for r := 0; r < Factorial(8); r += 37 {
		p := Unrank(r, 8)
		seen := make(map[uint8]bool)
		for _, v := range p {
			assert.False(t, seen[v], "duplicate symbol %d in unrank(%d,8)", v, r)
			seen[v] = true
		}
	}
}

func TestComposeInvert(t *testing.T) {
	identity := []uint8{0, 1, 2, 3, 4, 5, 6, 7}
	p := Unrank(12345, 8)
	inv := Invert(p)
	assert.Equal(t, identity, Compose(p, inv))
	assert.Equal(t, identity, Compose(inv, p))
}

func TestApplyMatchesCompose(t *testing.T) {
	p := Unrank(555, 8)
	q := Unrank(222, 8)
	arr := []uint8{0, 1, 2, 3, 4, 5, 6, 7}
	applied := Apply(p, Apply(q, arr))
	composed := Apply(Compose(q, p), arr)
	assert.Equal(t, composed, applied)
}

func TestParityOfIdentityIsEven(t *testing.T) {
	assert.Equal(t, 0, Parity([]uint8{0, 1, 2, 3, 4, 5, 6, 7}))
}

func TestParityOfSingleTranspositionIsOdd(t *testing.T) {
	assert.Equal(t, 1, Parity([]uint8{1, 0, 2, 3}))
}

func TestParityFlipsWithEachAdjacentSwap(t *testing.T) {
	p := []uint8{0, 1, 2, 3, 4, 5, 6, 7}
	want := 0
	for i := 0; i < len(p)-1; i++ {
		p[i], p[i+1] = p[i+1], p[i]
		want ^= 1
		assert.Equal(t, want, Parity(p), "after %d adjacent swaps", i+1)
	}
}

func TestParityMatchesComposedTranspositionCount(t *testing.T) {
	// A 3-cycle is two transpositions, so it must be even regardless of
	// which symbols it moves.
	threeCycle := []uint8{1, 2, 0, 3, 4, 5, 6, 7}
	assert.Equal(t, 0, Parity(threeCycle))
}
