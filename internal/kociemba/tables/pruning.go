package tables

import "github.com/ehrlich-b/cubesolver/internal/kociemba/cubie"

// PruningTable stores, for every (symmetry class, raw coordinate) pair, the
// BFS distance from the solved state modulo 3, packed two entries per byte
// (spec 4.F). Distance mod 3 is enough for IDA*: at search depth d with
// togo moves remaining, a stored value v rules out the branch unless some
// d' >= togo with d' ≡ v (mod 3) could still reach zero.
type PruningTable struct {
	Classes  int
	RawRange int
	packed   []byte
}

const unvisited = 3

func flatIndex(classID, raw, rawRange int) int {
	return classID*rawRange + raw
}

func (p *PruningTable) nibbleGet(i int) int {
	b := p.packed[i/2]
	if i%2 == 0 {
		return int(b & 0x0F)
	}
	return int(b >> 4)
}

func (p *PruningTable) nibbleSet(i, v int) {
	bi := i / 2
	if i%2 == 0 {
		p.packed[bi] = (p.packed[bi] &^ 0x0F) | byte(v&0x0F)
	} else {
		p.packed[bi] = (p.packed[bi] &^ 0xF0) | byte((v&0x0F)<<4)
	}
}

// Get returns the stored distance-mod-3 for (classID, raw), or -1 if the
// state was never reached by the generation BFS (should not happen for any
// legally reachable state within the relevant subgroup).
func (p *PruningTable) Get(classID, raw int) int {
	v := p.nibbleGet(flatIndex(classID, raw, p.RawRange))
	if v == unvisited {
		return -1
	}
	return v
}

// ActualDistance recovers the exact BFS distance for (classID, raw) from the
// mod-3 encoded table (spec 4.F: "the true distance is d iff neighbors
// include an entry whose stored value equals (d-1) mod 3"). Because
// BuildPruningTable is a genuine breadth-first wave, any two states joined
// by a move differ in true distance by at most 1, so three consecutive
// candidate distances (d-1, d, d+1) carry three distinct residues mod 3 —
// a neighbor whose residue matches (v-1) mod 3 is therefore necessarily
// exactly one move closer to solved, not merely congruent to it. Walking
// that neighbor chain back to the solved state recovers the exact value in
// O(true distance x branching factor) table lookups, using the identical
// successor computation BuildPruningTable itself used to discover the state.
func (p *PruningTable) ActualDistance(symTable *SymTable, symMoveTable successorTable, pairedTable *MoveTable, moves []cubie.CubeMove, solvedClass, solvedRaw, classID, raw int) int {
	dist := 0
	for !(classID == solvedClass && raw == solvedRaw) {
		v := p.Get(classID, raw)
		if v < 0 {
			return -1
		}
		target := (v + 2) % 3
		moved := false
		for _, m := range moves {
			repRaw := int(symTable.ClassToRaw[classID])
			movedRepRaw := symMoveTable.Successor(repRaw, m)
			nClass := int(symTable.RawToClass[movedRepRaw])
			s := symTable.RawToSym[movedRepRaw]
			movedRaw := pairedTable.Successor(raw, m)
			nRaw := pairedTable.SymSuccessor(movedRaw, cubie.CubeSymmetry(s))
			if p.Get(nClass, nRaw) == target {
				classID, raw = nClass, nRaw
				moved = true
				break
			}
		}
		if !moved {
			return -1
		}
		dist++
	}
	return dist
}

// BuildPruningTable runs a breadth-first wave out from the solved
// (classID, raw) pair over the given move set, writing each newly
// discovered state's wave depth mod 3 (spec 4.F). symMoveTable moves the
// symmetry class's representative coordinate directly; pairedTable moves
// the companion raw coordinate and then conjugates it by the symmetry that
// reduced the representative, keeping both coordinates in the same frame.
func BuildPruningTable(symTable *SymTable, symMoveTable successorTable, pairedTable *MoveTable, pairedRange int, moves []cubie.CubeMove, solvedClass, solvedRaw int) *PruningTable {
	classes := symTable.NumClasses()
	total := classes * pairedRange
	p := &PruningTable{Classes: classes, RawRange: pairedRange, packed: make([]byte, (total+1)/2)}
	for i := 0; i < total; i++ {
		p.nibbleSet(i, unvisited)
	}

	start := flatIndex(solvedClass, solvedRaw, pairedRange)
	p.nibbleSet(start, 0)
	frontier := []int{start}
	depth := 0
	for len(frontier) > 0 {
		depth++
		var next []int
		for _, cur := range frontier {
			classID := cur / pairedRange
			raw := cur % pairedRange
			repRaw := int(symTable.ClassToRaw[classID])
			for _, m := range moves {
				movedRepRaw := symMoveTable.Successor(repRaw, m)
				newClass := int(symTable.RawToClass[movedRepRaw])
				s := symTable.RawToSym[movedRepRaw]
				movedRaw := pairedTable.Successor(raw, m)
				newRaw := pairedTable.SymSuccessor(movedRaw, cubie.CubeSymmetry(s))
				ni := flatIndex(newClass, newRaw, pairedRange)
				if p.nibbleGet(ni) == unvisited {
					p.nibbleSet(ni, depth%3)
					next = append(next, ni)
				}
			}
		}
		frontier = next
	}
	return p
}
