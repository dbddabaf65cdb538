package cube

import (
	"testing"

	"github.com/ehrlich-b/cubesolver/internal/kociemba/cubie"
)

func TestSolvedCubeDecodesToSolvedReprCube(t *testing.T) {
	c := NewCube(3)
	repr, err := c.ToReprCube()
	if err != nil {
		t.Fatalf("ToReprCube() on solved cube: %v", err)
	}
	if !repr.Valid() {
		t.Fatalf("solved cube decoded to invalid ReprCube: %+v", repr)
	}
	want := cubie.Solved()
	if repr != want {
		t.Fatalf("ToReprCube() on solved cube = %+v, want %+v", repr, want)
	}
}

func TestFromReprCubeOfSolvedIsSolved(t *testing.T) {
	c := FromReprCube(cubie.Solved())
	if !c.IsSolved() {
		t.Fatalf("FromReprCube(Solved()) should produce a solved cube")
	}
}

func TestToReprCubeFromReprCubeRoundTrip(t *testing.T) {
	c := NewCube(3)
	repr, err := c.ToReprCube()
	if err != nil {
		t.Fatalf("ToReprCube(): %v", err)
	}
	back := FromReprCube(repr)
	if !back.IsSolved() {
		t.Fatalf("round trip through ToReprCube/FromReprCube of a solved cube should stay solved")
	}
}

func TestToReprCubeRejectsNon3x3(t *testing.T) {
	c := NewCube(4)
	if _, err := c.ToReprCube(); err == nil {
		t.Fatalf("ToReprCube() on a 4x4x4 cube should fail, got nil error")
	}
}
