package tables

import (
	"fmt"

	"github.com/SeamusWaldron/gocube_twophase/pkg/cube"
)

// Invalid marks a merge table entry whose two edge arrangements overlap.
const Invalid = -1

// MergeTable maps a (URtoUL, UBtoDF) pair of phase-2 coordinates, both below
// cube.NMerge, to the combined URtoDF coordinate.
type MergeTable struct {
	data []int16
}

// BuildMergeTable evaluates cube.MergeURtoDF on every pair.
func BuildMergeTable() *MergeTable {
	t := &MergeTable{data: make([]int16, cube.NMerge*cube.NMerge)}
	for a := 0; a < cube.NMerge; a++ {
		for b := 0; b < cube.NMerge; b++ {
			v, ok := cube.MergeURtoDF(a, b)
			if !ok {
				t.data[a*cube.NMerge+b] = Invalid
				continue
			}
			if v >= cube.NURtoDF {
				panic(fmt.Sprintf("tables: merge of %d and %d = %d out of range", a, b, v))
			}
			t.data[a*cube.NMerge+b] = int16(v)
		}
	}
	return t
}

// Lookup returns the URtoDF coordinate for the pair, or false when the pair
// is not a realizable arrangement.
func (t *MergeTable) Lookup(urToUL, ubToDF int) (int, bool) {
	if urToUL < 0 || urToUL >= cube.NMerge || ubToDF < 0 || ubToDF >= cube.NMerge {
		panic(fmt.Sprintf("tables: merge lookup (%d, %d) out of range", urToUL, ubToDF))
	}
	v := t.data[urToUL*cube.NMerge+ubToDF]
	if v == Invalid {
		return Invalid, false
	}
	return int(v), true
}

// MarshalBinary encodes the table as a length-prefixed array.
func (t *MergeTable) MarshalBinary() ([]byte, error) {
	return encodeInt16s(t.data), nil
}

// UnmarshalBinary decodes a table previously produced by MarshalBinary.
func (t *MergeTable) UnmarshalBinary(b []byte) error {
	data, err := decodeInt16s(b, cube.NMerge*cube.NMerge)
	if err != nil {
		return fmt.Errorf("failed to decode merge table: %w", err)
	}
	for i, v := range data {
		if v < Invalid || int(v) >= cube.NURtoDF {
			return fmt.Errorf("failed to decode merge table: entry %d = %d: %w", i, v, ErrBadPayload)
		}
	}
	t.data = data
	return nil
}
