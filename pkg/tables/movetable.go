// Package tables builds the lookup tables consumed by a two-phase solver:
// one move table per coordinate, the URtoUL/UBtoDF merge table and the
// phase-2 pruning table. Tables are immutable once built and safe for
// concurrent readers.
package tables

import (
	"fmt"

	"github.com/SeamusWaldron/gocube_twophase/pkg/cube"
	"github.com/SeamusWaldron/gocube_twophase/pkg/types"
)

// Kind identifies a coordinate with its own move table.
type Kind int

const (
	Twist Kind = iota
	Flip
	FRtoBR
	URFtoDLF
	URtoUL
	UBtoDF
	URtoDF
	Parity

	NumKinds
)

type kindInfo struct {
	name    string
	size    int
	corners bool
	set     func(*cube.Cube, int)
	get     func(*cube.Cube) int
}

var kinds = [NumKinds]kindInfo{
	Twist:    {"twist_move", cube.NTwist, true, (*cube.Cube).SetTwist, (*cube.Cube).Twist},
	Flip:     {"flip_move", cube.NFlip, false, (*cube.Cube).SetFlip, (*cube.Cube).Flip},
	FRtoBR:   {"fr_to_br_move", cube.NFRtoBR, false, (*cube.Cube).SetFRtoBR, (*cube.Cube).FRtoBR},
	URFtoDLF: {"urf_to_dlf_move", cube.NURFtoDLF, true, (*cube.Cube).SetURFtoDLF, (*cube.Cube).URFtoDLF},
	URtoUL:   {"ur_to_ul_move", cube.NURtoUL, false, (*cube.Cube).SetURtoUL, (*cube.Cube).URtoUL},
	UBtoDF:   {"ub_to_df_move", cube.NUBtoDF, false, (*cube.Cube).SetUBtoDF, (*cube.Cube).UBtoDF},
	URtoDF:   {"ur_to_df_move", cube.NURtoDF, false, (*cube.Cube).SetURtoDF, (*cube.Cube).URtoDF},
	Parity:   {"parity_move", cube.NParity, true, (*cube.Cube).SetCornerParity, (*cube.Cube).CornerParity},
}

// String returns the table name, also used as its cache file name.
func (k Kind) String() string {
	if k < 0 || k >= NumKinds {
		return fmt.Sprintf("kind(%d)", int(k))
	}
	return kinds[k].name
}

// Size returns the number of coordinate values covered by the table.
func (k Kind) Size() int {
	return kinds[k].size
}

// Limit returns the exclusive upper bound of Simulate(k, x, m). Only URtoDF
// can leave its table domain, and only under moves outside phase 2.
func (k Kind) Limit(m types.Move) int {
	if k == URtoDF && !m.Phase2() {
		return cube.NURtoDFAll
	}
	return k.Size()
}

// Simulate returns the coordinate reached from x by move m. It builds a
// synthetic cube with coordinate x, turns only the cubies the coordinate
// depends on and reads the coordinate back.
func Simulate(k Kind, x int, m types.Move) int {
	info := &kinds[k]
	c := cube.New()
	info.set(c, x)
	if info.corners {
		c.ApplyCorners(m)
	} else {
		c.ApplyEdges(m)
	}
	return info.get(c)
}

// MoveTable maps (coordinate, move) to coordinate. It is a dense
// Size()*18 array indexed by x*18 + move index.
type MoveTable struct {
	kind Kind
	data []uint32
}

// BuildMoveTable simulates every move on every coordinate value of k.
func BuildMoveTable(k Kind) *MoveTable {
	moves := types.AllMoves()
	t := &MoveTable{
		kind: k,
		data: make([]uint32, k.Size()*types.NumMoves),
	}
	for x := 0; x < k.Size(); x++ {
		row := t.data[x*types.NumMoves : (x+1)*types.NumMoves]
		for i, m := range moves {
			y := Simulate(k, x, m)
			if y < 0 || y >= k.Limit(m) {
				panic(fmt.Sprintf("tables: %s[%d][%s] = %d out of range", k, x, m, y))
			}
			row[i] = uint32(y)
		}
	}
	return t
}

// Kind returns the coordinate the table belongs to.
func (t *MoveTable) Kind() Kind {
	return t.kind
}

// Len returns the number of coordinate values (rows).
func (t *MoveTable) Len() int {
	return len(t.data) / types.NumMoves
}

// Next returns the coordinate reached from x by m.
func (t *MoveTable) Next(x int, m types.Move) int {
	return t.next(x, m.Index())
}

func (t *MoveTable) next(x, mi int) int {
	return int(t.data[x*types.NumMoves+mi])
}

// MarshalBinary encodes the table as a length-prefixed array.
func (t *MoveTable) MarshalBinary() ([]byte, error) {
	return encodeUint32s(t.data), nil
}

// UnmarshalBinary decodes a table previously produced by MarshalBinary. The
// receiver's Kind must already be set.
func (t *MoveTable) UnmarshalBinary(b []byte) error {
	data, err := decodeUint32s(b, t.kind.Size()*types.NumMoves)
	if err != nil {
		return fmt.Errorf("failed to decode %s: %w", t.kind, err)
	}
	for i, y := range data {
		if int(y) >= t.kind.Limit(types.MoveFromIndex(i%types.NumMoves)) {
			return fmt.Errorf("failed to decode %s: entry %d = %d: %w", t.kind, i, y, ErrBadPayload)
		}
	}
	t.data = data
	return nil
}
