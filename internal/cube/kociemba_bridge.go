package cube

import (
	"fmt"

	"github.com/ehrlich-b/cubesolver/internal/kociemba"
)

// ToReprCube bridges this package's facelet-grid cube model into the
// cubie-level representation the two-phase engine searches over
// (supplemented feature: the distilled spec never names a facelet format,
// but a solver that cannot accept this repo's own scramble/display model
// would be unusable end to end). Center stickers never move under any face
// turn in this model, so each face's home color is fixed and read directly
// off NewCube's assignment rather than off the cube under test.
func (c *Cube) ToReprCube() (kociemba.ReprCube, error) {
	if c.Size != 3 {
		return kociemba.ReprCube{}, fmt.Errorf("%w: kociemba only solves 3x3x3 cubes", kociemba.ErrInvalidCube)
	}

	var out kociemba.ReprCube

	edgeMaps := Get3x3EdgeMappings()
	for slot, want := range edgeSlots {
		m := findEdgeMap(edgeMaps, want.faces)
		if m == nil {
			return kociemba.ReprCube{}, fmt.Errorf("%w: no edge mapping for slot %s", kociemba.ErrInvalidCube, want.name)
		}
		color1 := c.Faces[m.Face1][m.Row1][m.Col1]
		color2 := c.Faces[m.Face2][m.Row2][m.Col2]

		piece, ok := identifyEdge(color1, color2)
		if !ok {
			return kociemba.ReprCube{}, fmt.Errorf("%w: edge slot %s has no matching home piece", kociemba.ErrInvalidCube, want.name)
		}
		out.EdgePerm[slot] = uint8(piece)

		ref := edgeSlots[piece].referenceColor()
		if color1 == ref {
			out.EdgeOrient[slot] = 0
		} else {
			out.EdgeOrient[slot] = 1
		}
	}

	cornerMaps := Get3x3CornerMappings()
	for slot, want := range cornerSlots {
		m := findCornerMap(cornerMaps, want.faces)
		if m == nil {
			return kociemba.ReprCube{}, fmt.Errorf("%w: no corner mapping for slot %s", kociemba.ErrInvalidCube, want.name)
		}
		colors := [3]Color{
			c.Faces[m.Face1][m.Row1][m.Col1],
			c.Faces[m.Face2][m.Row2][m.Col2],
			c.Faces[m.Face3][m.Row3][m.Col3],
		}

		piece, ok := identifyCorner(colors)
		if !ok {
			return kociemba.ReprCube{}, fmt.Errorf("%w: corner slot %s has no matching home piece", kociemba.ErrInvalidCube, want.name)
		}
		out.CornerPerm[slot] = uint8(piece)

		ref := cornerSlots[piece].referenceColor()
		twist := 0
		for twist < 3 && colors[twist] != ref {
			twist++
		}
		if twist == 3 {
			return kociemba.ReprCube{}, fmt.Errorf("%w: corner slot %s reference color not found", kociemba.ErrInvalidCube, want.name)
		}
		out.CornerOrient[slot] = uint8(twist)
	}

	if !out.Valid() {
		return kociemba.ReprCube{}, kociemba.ErrInvalidCube
	}
	return out, nil
}

// FromReprCube renders a solved-sized cube.Cube with solved wired onto it,
// the inverse of ToReprCube, so solved results from the engine can reuse
// the existing display/verify commands without those commands knowing
// anything about cubie coordinates.
func FromReprCube(solved kociemba.ReprCube) *Cube {
	out := NewCube(3)

	edgeMaps := Get3x3EdgeMappings()
	for slot := range edgeSlots {
		m := findEdgeMap(edgeMaps, edgeSlots[slot].faces)
		piece := int(solved.EdgePerm[slot])
		ref := edgeSlots[piece].referenceColor()
		other := edgeSlots[piece].otherColor()
		if solved.EdgeOrient[slot] == 0 {
			out.Faces[m.Face1][m.Row1][m.Col1] = ref
			out.Faces[m.Face2][m.Row2][m.Col2] = other
		} else {
			out.Faces[m.Face1][m.Row1][m.Col1] = other
			out.Faces[m.Face2][m.Row2][m.Col2] = ref
		}
	}

	cornerMaps := Get3x3CornerMappings()
	for slot := range cornerSlots {
		m := findCornerMap(cornerMaps, cornerSlots[slot].faces)
		piece := int(solved.CornerPerm[slot])
		colors := cornerSlots[piece].cyclicColors()
		twist := int(solved.CornerOrient[slot])
		out.Faces[m.Face1][m.Row1][m.Col1] = colors[(3-twist)%3]
		out.Faces[m.Face2][m.Row2][m.Col2] = colors[(4-twist)%3]
		out.Faces[m.Face3][m.Row3][m.Col3] = colors[(5-twist)%3]
	}

	return out
}

// edgeSlotInfo names one of the 12 cubie edge positions (index matches
// cubie.UR..cubie.BR) by the pair of faces it spans; faces[0] is the
// orientation-reference face (U/D for the 8 outer edges, F/B for the 4
// E-slice edges), matching the convention EdgeMap.Face1 already uses.
type edgeSlotInfo struct {
	name  string
	faces [2]Face
}

func (e edgeSlotInfo) referenceColor() Color { return homeColor(e.faces[0]) }
func (e edgeSlotInfo) otherColor() Color     { return homeColor(e.faces[1]) }

var edgeSlots = [12]edgeSlotInfo{
	{"UR", [2]Face{Up, Right}},
	{"UF", [2]Face{Up, Front}},
	{"UL", [2]Face{Up, Left}},
	{"UB", [2]Face{Up, Back}},
	{"DR", [2]Face{Down, Right}},
	{"DF", [2]Face{Down, Front}},
	{"DL", [2]Face{Down, Left}},
	{"DB", [2]Face{Down, Back}},
	{"FR", [2]Face{Front, Right}},
	{"FL", [2]Face{Front, Left}},
	{"BL", [2]Face{Back, Left}},
	{"BR", [2]Face{Back, Right}},
}

// cornerSlotInfo names one of the 8 cubie corner positions (index matches
// cubie.URF..cubie.DRB) by its three faces in clockwise order, faces[0]
// always U/D (the orientation reference).
type cornerSlotInfo struct {
	name  string
	faces [3]Face
}

func (c cornerSlotInfo) referenceColor() Color { return homeColor(c.faces[0]) }

func (c cornerSlotInfo) cyclicColors() [3]Color {
	return [3]Color{homeColor(c.faces[0]), homeColor(c.faces[1]), homeColor(c.faces[2])}
}

var cornerSlots = [8]cornerSlotInfo{
	{"URF", [3]Face{Up, Right, Front}},
	{"UFL", [3]Face{Up, Front, Left}},
	{"ULB", [3]Face{Up, Left, Back}},
	{"UBR", [3]Face{Up, Back, Right}},
	{"DFR", [3]Face{Down, Front, Right}},
	{"DLF", [3]Face{Down, Left, Front}},
	{"DBL", [3]Face{Down, Back, Left}},
	{"DRB", [3]Face{Down, Right, Back}},
}

// homeColor is the sticker color face carries on a solved cube (fixed by
// NewCube's faceColors assignment: Front=White, Back=Yellow, Left=Red,
// Right=Orange, Up=Blue, Down=Green).
func homeColor(face Face) Color {
	return [6]Color{White, Yellow, Red, Orange, Blue, Green}[face]
}

func sameFaceSet2(a [2]Face, f1, f2 Face) bool {
	return (a[0] == f1 && a[1] == f2) || (a[0] == f2 && a[1] == f1)
}

func sameFaceSet3(a [3]Face, f1, f2, f3 Face) bool {
	want := map[Face]bool{f1: true, f2: true, f3: true}
	return len(want) == 3 && want[a[0]] && want[a[1]] && want[a[2]]
}

func findEdgeMap(maps []EdgeMap, faces [2]Face) *EdgeMap {
	for i := range maps {
		m := &maps[i]
		if sameFaceSet2([2]Face{m.Face1, m.Face2}, faces[0], faces[1]) {
			if m.Face1 == faces[0] {
				return m
			}
			flipped := EdgeMap{Face1: m.Face2, Row1: m.Row2, Col1: m.Col2, Face2: m.Face1, Row2: m.Row1, Col2: m.Col1}
			return &flipped
		}
	}
	return nil
}

func findCornerMap(maps []CornerMap, faces [3]Face) *CornerMap {
	for i := range maps {
		m := maps[i]
		all := [3]Face{m.Face1, m.Face2, m.Face3}
		if !sameFaceSet3(all, faces[0], faces[1], faces[2]) {
			continue
		}
		switch faces[0] {
		case m.Face2:
			m = CornerMap{
				Face1: m.Face2, Row1: m.Row2, Col1: m.Col2,
				Face2: m.Face3, Row2: m.Row3, Col2: m.Col3,
				Face3: m.Face1, Row3: m.Row1, Col3: m.Col1,
			}
		case m.Face3:
			m = CornerMap{
				Face1: m.Face3, Row1: m.Row3, Col1: m.Col3,
				Face2: m.Face1, Row2: m.Row1, Col2: m.Col1,
				Face3: m.Face2, Row3: m.Row2, Col3: m.Col2,
			}
		}
		if m.Face2 != faces[1] {
			m.Face2, m.Row2, m.Col2, m.Face3, m.Row3, m.Col3 = m.Face3, m.Row3, m.Col3, m.Face2, m.Row2, m.Col2
		}
		return &m
	}
	return nil
}

func identifyEdge(c1, c2 Color) (int, bool) {
	for i, s := range edgeSlots {
		a, b := s.referenceColor(), s.otherColor()
		if (c1 == a && c2 == b) || (c1 == b && c2 == a) {
			return i, true
		}
	}
	return 0, false
}

func identifyCorner(colors [3]Color) (int, bool) {
	want := map[Color]bool{colors[0]: true, colors[1]: true, colors[2]: true}
	if len(want) != 3 {
		return 0, false
	}
	for i, s := range cornerSlots {
		cols := s.cyclicColors()
		if want[cols[0]] && want[cols[1]] && want[cols[2]] {
			return i, true
		}
	}
	return 0, false
}
