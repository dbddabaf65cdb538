package cubie

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCornerOrientRoundTrip(t *testing.T) {
	for coord := 0; coord < CornerOrientRange; coord += 37 {
		c := CornerOrientFromCoord(coord)
		assert.Equal(t, coord, CornerOrientCoord(c))
	}
}

func TestEdgeOrientRoundTrip(t *testing.T) {
	for coord := 0; coord < EdgeOrientRange; coord++ {
		c := EdgeOrientFromCoord(coord)
		assert.Equal(t, coord, EdgeOrientCoord(c))
	}
}

func TestEdgeGroupRoundTrip(t *testing.T) {
	for coord := 0; coord < EdgeGroupRange; coord++ {
		c := EdgeGroupFromCoord(coord)
		assert.Equal(t, coord, EdgeGroupCoord(c))
	}
}

func TestCornerPermRoundTrip(t *testing.T) {
	for coord := 0; coord < CornerPermRange; coord += 571 {
		c := CornerPermFromCoord(coord)
		assert.Equal(t, coord, CornerPermCoord(c))
	}
}

func TestUDEdgePermRoundTrip(t *testing.T) {
	for coord := 0; coord < UDEdgePermRange; coord += 571 {
		c := UDEdgePermFromCoord(coord)
		assert.Equal(t, coord, UDEdgePermCoord(c))
	}
}

func TestEEdgePermRoundTrip(t *testing.T) {
	for coord := 0; coord < EEdgePermRange; coord++ {
		c := EEdgePermFromCoord(coord)
		assert.Equal(t, coord, EEdgePermCoord(c))
	}
}

func TestEdgeGroupOrientRoundTrip(t *testing.T) {
	for coord := 0; coord < EdgeGroupOrientRange; coord += 5003 {
		c := EdgeGroupOrientFromCoord(coord)
		assert.Equal(t, coord, EdgeGroupOrientCoord(c))
	}
}

func TestSolvedCoordsAreSelfConsistent(t *testing.T) {
	solved := Solved()
	assert.Equal(t, SolvedCornerOrient, CornerOrientCoord(solved))
	assert.Equal(t, SolvedEdgeOrient, EdgeOrientCoord(solved))
	assert.Equal(t, SolvedEdgeGroup, EdgeGroupCoord(solved))
	assert.Equal(t, SolvedCornerPerm, CornerPermCoord(solved))
	assert.Equal(t, SolvedUDEdgePerm, UDEdgePermCoord(solved))
	assert.Equal(t, SolvedEEdgePerm, EEdgePermCoord(solved))
}
