package tables

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"os"
	"path/filepath"

	"github.com/ehrlich-b/cubesolver/internal/kociemba/cubie"
)

// TableBackend persists generated table bytes under a name. The default
// FileBackend writes one file per name under a base directory; tests and
// callers that want an in-memory round trip can substitute their own.
type TableBackend interface {
	Load(name string) ([]byte, error)
	Save(name string, data []byte) error
}

// FileBackend stores each table as <dir>/<name>.tbl, a CRC32 checksum
// followed by the raw payload. No serialization library in the retrieval
// pack covers fixed-width binary table encoding, so the on-disk format is
// hand-rolled with encoding/binary and hash/crc32 rather than adopting a
// general-purpose codec with no footprint in the examples.
type FileBackend struct {
	Dir string
}

func (b FileBackend) path(name string) string {
	return filepath.Join(b.Dir, name+".tbl")
}

func (b FileBackend) Load(name string) ([]byte, error) {
	raw, err := os.ReadFile(b.path(name))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrTableIO, name, err)
	}
	if len(raw) < 4 {
		return nil, fmt.Errorf("%w: %s: truncated file", ErrTableIO, name)
	}
	wantSum := binary.LittleEndian.Uint32(raw[:4])
	payload := raw[4:]
	if crc32.ChecksumIEEE(payload) != wantSum {
		return nil, fmt.Errorf("%w: %s: checksum mismatch", ErrTableIO, name)
	}
	return payload, nil
}

func (b FileBackend) Save(name string, data []byte) error {
	if err := os.MkdirAll(b.Dir, 0o755); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrTableIO, name, err)
	}
	var buf bytes.Buffer
	var sumBytes [4]byte
	binary.LittleEndian.PutUint32(sumBytes[:], crc32.ChecksumIEEE(data))
	buf.Write(sumBytes[:])
	buf.Write(data)
	if err := os.WriteFile(b.path(name), buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrTableIO, name, err)
	}
	return nil
}

func encodeUint16s(vals []uint16) []byte {
	out := make([]byte, len(vals)*2)
	for i, v := range vals {
		binary.LittleEndian.PutUint16(out[i*2:], v)
	}
	return out
}

func decodeUint16s(raw []byte) []uint16 {
	out := make([]uint16, len(raw)/2)
	for i := range out {
		out[i] = binary.LittleEndian.Uint16(raw[i*2:])
	}
	return out
}

// Tables is the full set of move, symmetry-reduction, and pruning tables
// the two-phase search needs (spec 4.D-4.F).
type Tables struct {
	CornerOrientMove    *MoveTable
	EdgeGroupMove       *MoveTable
	EdgeOrientMove      *MoveTable
	EdgeGroupOrientMove *EdgeGroupOrientMoveTable
	CornerPermMove      *MoveTable
	UDEdgePermMove      *MoveTable
	EEdgePermMove       *MoveTable

	EdgeGroupOrientSym *SymTable
	CornerPermSym      *SymTable

	Phase1Pruning *PruningTable
	Phase2Pruning *PruningTable
}

// AllMoves and DominoMoves are the move sets phase 1 and phase 2 search
// over; phase 2 never leaves the domino subgroup.
var AllMoves = func() []cubie.CubeMove {
	moves := make([]cubie.CubeMove, cubie.NumMoves)
	for m := range moves {
		moves[m] = cubie.CubeMove(m)
	}
	return moves
}()

var DominoMoves = func() []cubie.CubeMove {
	moves := make([]cubie.CubeMove, cubie.NumDominoMoves)
	for d := range moves {
		moves[d] = cubie.DominoMove(d).ToCubeMove()
	}
	return moves
}()

// Generate builds every table from scratch. This is the expensive path
// (spec 5's multi-minute, ~100MB table set); callers should prefer Load
// against a previously generated backend and fall back to Generate plus
// Save only on a cold cache.
func Generate() (*Tables, error) {
	t := &Tables{}

	t.CornerOrientMove = BuildMoveTable(cubie.CornerOrientRange, cubie.CornerOrientFromCoord, cubie.CornerOrientCoord, true)
	t.EdgeGroupMove = BuildMoveTable(cubie.EdgeGroupRange, cubie.EdgeGroupFromCoord, cubie.EdgeGroupCoord, false)
	t.EdgeOrientMove = BuildMoveTable(cubie.EdgeOrientRange, cubie.EdgeOrientFromCoord, cubie.EdgeOrientCoord, false)
	t.EdgeGroupOrientMove = &EdgeGroupOrientMoveTable{Group: t.EdgeGroupMove, Orient: t.EdgeOrientMove}
	t.CornerPermMove = BuildMoveTable(cubie.CornerPermRange, cubie.CornerPermFromCoord, cubie.CornerPermCoord, false)
	t.UDEdgePermMove = BuildMoveTable(cubie.UDEdgePermRange, cubie.UDEdgePermFromCoord, cubie.UDEdgePermCoord, true)
	t.EEdgePermMove = BuildMoveTable(cubie.EEdgePermRange, cubie.EEdgePermFromCoord, cubie.EEdgePermCoord, false)

	t.EdgeGroupOrientSym = BuildSymTable(cubie.EdgeGroupOrientRange, cubie.EdgeGroupOrientFromCoord, cubie.EdgeGroupOrientCoord)
	t.CornerPermSym = BuildSymTable(cubie.CornerPermRange, cubie.CornerPermFromCoord, cubie.CornerPermCoord)

	solvedClass1 := int(t.EdgeGroupOrientSym.RawToClass[cubie.SolvedEdgeGroupOrient])
	t.Phase1Pruning = BuildPruningTable(t.EdgeGroupOrientSym, t.EdgeGroupOrientMove, t.CornerOrientMove, cubie.CornerOrientRange, AllMoves, solvedClass1, cubie.SolvedCornerOrient)

	solvedClass2 := int(t.CornerPermSym.RawToClass[cubie.SolvedCornerPerm])
	t.Phase2Pruning = BuildPruningTable(t.CornerPermSym, t.CornerPermMove, t.UDEdgePermMove, cubie.UDEdgePermRange, DominoMoves, solvedClass2, cubie.SolvedUDEdgePerm)

	return t, nil
}

// Base names of the move-table files, in the order Load/Save touch them;
// saveMoveTable and loadMoveTable append "_move" (and "_sym" for tables with
// symmetry columns). The symmetry and pruning tables use their own names.
const (
	nameCornerOrientMove = "corner_orient_move"
	nameEdgeGroupMove    = "edge_group_move"
	nameEdgeOrientMove   = "edge_orient_move"
	nameCornerPermMove   = "corner_perm_move"
	nameUDEdgePermMove   = "ud_edge_perm_move"
	nameEEdgePermMove    = "e_edge_perm_move"
)

func saveMoveTable(backend TableBackend, name string, t *MoveTable) error {
	if err := backend.Save(name+"_move", encodeUint16s(t.moveData)); err != nil {
		return err
	}
	if t.withSyms {
		if err := backend.Save(name+"_sym", encodeUint16s(t.symData)); err != nil {
			return err
		}
	}
	return nil
}

func loadMoveTable(backend TableBackend, name string, rangeSize int, withSyms bool) (*MoveTable, error) {
	moveRaw, err := backend.Load(name + "_move")
	if err != nil {
		return nil, err
	}
	t := &MoveTable{Range: rangeSize, withSyms: withSyms, moveData: decodeUint16s(moveRaw)}
	if withSyms {
		symRaw, err := backend.Load(name + "_sym")
		if err != nil {
			return nil, err
		}
		t.symData = decodeUint16s(symRaw)
	}
	return t, nil
}

// Save persists every table to backend, for reuse by a later Load.
func (t *Tables) Save(backend TableBackend) error {
	if err := saveMoveTable(backend, nameCornerOrientMove, t.CornerOrientMove); err != nil {
		return err
	}
	if err := saveMoveTable(backend, nameEdgeGroupMove, t.EdgeGroupMove); err != nil {
		return err
	}
	if err := saveMoveTable(backend, nameEdgeOrientMove, t.EdgeOrientMove); err != nil {
		return err
	}
	if err := saveMoveTable(backend, nameCornerPermMove, t.CornerPermMove); err != nil {
		return err
	}
	if err := saveMoveTable(backend, nameUDEdgePermMove, t.UDEdgePermMove); err != nil {
		return err
	}
	if err := saveMoveTable(backend, nameEEdgePermMove, t.EEdgePermMove); err != nil {
		return err
	}

	if err := backend.Save("edge_group_orient_sym", encodeSymTable(t.EdgeGroupOrientSym)); err != nil {
		return err
	}
	if err := backend.Save("corner_perm_sym", encodeSymTable(t.CornerPermSym)); err != nil {
		return err
	}

	if err := backend.Save("phase1_pruning", t.Phase1Pruning.packed); err != nil {
		return err
	}
	if err := backend.Save("phase2_pruning", t.Phase2Pruning.packed); err != nil {
		return err
	}
	return nil
}

// Load reads every table back from backend, regenerating nothing. Callers
// should fall back to Generate (then Save) on ErrTableIO.
func Load(backend TableBackend) (*Tables, error) {
	t := &Tables{}
	var err error

	if t.CornerOrientMove, err = loadMoveTable(backend, nameCornerOrientMove, cubie.CornerOrientRange, true); err != nil {
		return nil, err
	}
	if t.EdgeGroupMove, err = loadMoveTable(backend, nameEdgeGroupMove, cubie.EdgeGroupRange, false); err != nil {
		return nil, err
	}
	if t.EdgeOrientMove, err = loadMoveTable(backend, nameEdgeOrientMove, cubie.EdgeOrientRange, false); err != nil {
		return nil, err
	}
	t.EdgeGroupOrientMove = &EdgeGroupOrientMoveTable{Group: t.EdgeGroupMove, Orient: t.EdgeOrientMove}
	if t.CornerPermMove, err = loadMoveTable(backend, nameCornerPermMove, cubie.CornerPermRange, false); err != nil {
		return nil, err
	}
	if t.UDEdgePermMove, err = loadMoveTable(backend, nameUDEdgePermMove, cubie.UDEdgePermRange, true); err != nil {
		return nil, err
	}
	if t.EEdgePermMove, err = loadMoveTable(backend, nameEEdgePermMove, cubie.EEdgePermRange, false); err != nil {
		return nil, err
	}

	symRaw, err := backend.Load("edge_group_orient_sym")
	if err != nil {
		return nil, err
	}
	t.EdgeGroupOrientSym = decodeSymTable(symRaw)

	symRaw2, err := backend.Load("corner_perm_sym")
	if err != nil {
		return nil, err
	}
	t.CornerPermSym = decodeSymTable(symRaw2)

	p1, err := backend.Load("phase1_pruning")
	if err != nil {
		return nil, err
	}
	t.Phase1Pruning = &PruningTable{Classes: t.EdgeGroupOrientSym.NumClasses(), RawRange: cubie.CornerOrientRange, packed: p1}

	p2, err := backend.Load("phase2_pruning")
	if err != nil {
		return nil, err
	}
	t.Phase2Pruning = &PruningTable{Classes: t.CornerPermSym.NumClasses(), RawRange: cubie.UDEdgePermRange, packed: p2}

	return t, nil
}
