package tables

import (
	"encoding/binary"

	"github.com/ehrlich-b/cubesolver/internal/kociemba/cubie"
)

// SymTable reduces a raw coordinate space to its orbits under the 16-element
// symmetry group (spec 4.E): EdgeGroupOrient's ~1,013,760 raw values collapse
// to roughly 64,000 classes, CornerPerm's 40,320 to roughly 2,768. Each class
// is named by the numerically smallest raw value in its orbit.
type SymTable struct {
	RawToClass []int32
	RawToSym   []uint8
	ClassToRaw []int32
	// ClassStabilizers[c] lists every symmetry fixing ClassToRaw[c]; used by
	// search to skip redundant moves at a symmetric state.
	ClassStabilizers [][]uint8
}

// NumClasses returns the number of orbits discovered.
func (t *SymTable) NumClasses() int {
	return len(t.ClassToRaw)
}

// BuildSymTable partitions [0, rawRange) into orbits under cubie's 16
// symmetries. For each unvisited raw value it rebuilds the cube it names
// (fromCoord), conjugates by every symmetry to enumerate the orbit
// (intoCoord), and records the lowest member as that orbit's representative.
func BuildSymTable(rawRange int, fromCoord func(int) cubie.ReprCube, intoCoord func(cubie.ReprCube) int) *SymTable {
	rawToClass := make([]int32, rawRange)
	rawToSym := make([]uint8, rawRange)
	for i := range rawToClass {
		rawToClass[i] = -1
	}
	var classToRaw []int32
	var stabilizers [][]uint8

	for raw := 0; raw < rawRange; raw++ {
		if rawToClass[raw] >= 0 {
			continue
		}
		base := fromCoord(raw)

		orbit := make(map[int]bool, cubie.NumSymmetries)
		for s := cubie.CubeSymmetry(0); s < cubie.NumSymmetries; s++ {
			orbit[intoCoord(s.ConjugateCube(base))] = true
		}
		rep := raw
		for v := range orbit {
			if v < rep {
				rep = v
			}
		}

		classID := int32(len(classToRaw))
		classToRaw = append(classToRaw, int32(rep))

		repCube := fromCoord(rep)
		var stab []uint8
		for s := cubie.CubeSymmetry(0); s < cubie.NumSymmetries; s++ {
			if intoCoord(s.ConjugateCube(repCube)) == rep {
				stab = append(stab, uint8(s))
			}
		}
		stabilizers = append(stabilizers, stab)

		for v := range orbit {
			if rawToClass[v] >= 0 {
				continue
			}
			rawToClass[v] = classID
			memberCube := fromCoord(v)
			for s := cubie.CubeSymmetry(0); s < cubie.NumSymmetries; s++ {
				if intoCoord(s.ConjugateCube(memberCube)) == rep {
					rawToSym[v] = uint8(s)
					break
				}
			}
		}
	}

	return &SymTable{
		RawToClass:       rawToClass,
		RawToSym:         rawToSym,
		ClassToRaw:       classToRaw,
		ClassStabilizers: stabilizers,
	}
}

// encodeSymTable serializes a SymTable: rawRange, numClasses, then
// RawToClass/RawToSym per raw value, ClassToRaw per class, then each
// class's stabilizer list prefixed by its length.
func encodeSymTable(t *SymTable) []byte {
	rawRange := len(t.RawToClass)
	numClasses := len(t.ClassToRaw)

	size := 4 + 4 + rawRange*4 + rawRange*1 + numClasses*4
	for _, stab := range t.ClassStabilizers {
		size += 1 + len(stab)
	}
	buf := make([]byte, size)
	off := 0
	binary.LittleEndian.PutUint32(buf[off:], uint32(rawRange))
	off += 4
	binary.LittleEndian.PutUint32(buf[off:], uint32(numClasses))
	off += 4
	for _, c := range t.RawToClass {
		binary.LittleEndian.PutUint32(buf[off:], uint32(c))
		off += 4
	}
	for _, s := range t.RawToSym {
		buf[off] = s
		off++
	}
	for _, r := range t.ClassToRaw {
		binary.LittleEndian.PutUint32(buf[off:], uint32(r))
		off += 4
	}
	for _, stab := range t.ClassStabilizers {
		buf[off] = byte(len(stab))
		off++
		copy(buf[off:], stab)
		off += len(stab)
	}
	return buf
}

func decodeSymTable(raw []byte) *SymTable {
	off := 0
	rawRange := int(binary.LittleEndian.Uint32(raw[off:]))
	off += 4
	numClasses := int(binary.LittleEndian.Uint32(raw[off:]))
	off += 4

	rawToClass := make([]int32, rawRange)
	for i := range rawToClass {
		rawToClass[i] = int32(binary.LittleEndian.Uint32(raw[off:]))
		off += 4
	}
	rawToSym := make([]uint8, rawRange)
	for i := range rawToSym {
		rawToSym[i] = raw[off]
		off++
	}
	classToRaw := make([]int32, numClasses)
	for i := range classToRaw {
		classToRaw[i] = int32(binary.LittleEndian.Uint32(raw[off:]))
		off += 4
	}
	stabilizers := make([][]uint8, numClasses)
	for i := range stabilizers {
		n := int(raw[off])
		off++
		stabilizers[i] = append([]uint8(nil), raw[off:off+n]...)
		off += n
	}

	return &SymTable{
		RawToClass:       rawToClass,
		RawToSym:         rawToSym,
		ClassToRaw:       classToRaw,
		ClassStabilizers: stabilizers,
	}
}
