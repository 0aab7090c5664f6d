package tables

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/SeamusWaldron/gocube_twophase/pkg/cube"
	"github.com/SeamusWaldron/gocube_twophase/pkg/types"
)

// PruningSize is the number of combined (URFtoDLF, slice, parity) states.
const PruningSize = cube.NSlice2 * cube.NURFtoDLF * cube.NParity

// PruningTable holds, for every phase-2 state projected onto corner
// permutation, slice permutation and parity, the minimum number of phase-2
// moves needed to solve that projection. It is an admissible heuristic.
type PruningTable struct {
	cells *Nibbles
}

// PruningIndex combines the three coordinates into a cell index. slice is
// an FRtoBR value below cube.NSlice2.
func PruningIndex(urfToDLF, slice, parity int) int {
	return (cube.NSlice2*urfToDLF+slice)*2 + parity
}

// phase2Moves lists the move indices allowed in phase 2.
func phase2Moves() []int {
	var idx []int
	for i, m := range types.AllMoves() {
		if m.Phase2() {
			idx = append(idx, i)
		}
	}
	return idx
}

// BuildPruningTable runs a layered breadth-first search from the solved
// state over phase-2 moves. Each layer rescans the whole table for cells at
// the current depth; there is no frontier queue.
func BuildPruningTable(frToBR, urfToDLF, parity *MoveTable) *PruningTable {
	cells := NewNibbles(PruningSize)
	cells.Set(0, 0)
	done := 1
	moves := phase2Moves()

	for depth := 0; done < PruningSize; depth++ {
		if depth+1 >= Unvisited {
			panic(fmt.Sprintf("tables: pruning depth %d does not fit a nibble", depth+1))
		}
		added := 0
		for x := 0; x < PruningSize; x++ {
			if int(cells.Get(x)) != depth {
				continue
			}
			par := x % 2
			urf := (x / 2) / cube.NSlice2
			slice := (x / 2) % cube.NSlice2
			for _, mi := range moves {
				next := PruningIndex(urfToDLF.next(urf, mi), frToBR.next(slice, mi), parity.next(par, mi))
				if cells.Get(next) == Unvisited {
					cells.Set(next, uint8(depth+1))
					added++
				}
			}
		}
		if added == 0 {
			panic(fmt.Sprintf("tables: pruning search stalled at depth %d with %d of %d cells", depth, done, PruningSize))
		}
		done += added
		log.Debug().Int("depth", depth+1).Int("added", added).Int("done", done).Msg("pruning-layer")
	}
	return &PruningTable{cells: cells}
}

// Depth returns the lower bound for the combined state.
func (p *PruningTable) Depth(urfToDLF, slice, parity int) int {
	return int(p.cells.Get(PruningIndex(urfToDLF, slice, parity)))
}

// At returns the value stored at a combined index.
func (p *PruningTable) At(i int) int {
	return int(p.cells.Get(i))
}

// Len returns the number of cells.
func (p *PruningTable) Len() int {
	return p.cells.Len()
}

// Histogram counts cells per stored value; index Unvisited counts cells the
// search never reached.
func (p *PruningTable) Histogram() [Unvisited + 1]int {
	var h [Unvisited + 1]int
	for i := 0; i < p.cells.Len(); i++ {
		h[p.cells.Get(i)]++
	}
	return h
}

// MaxDepth returns the largest distance in the table.
func (p *PruningTable) MaxDepth() int {
	h := p.Histogram()
	for d := Unvisited - 1; d >= 0; d-- {
		if h[d] > 0 {
			return d
		}
	}
	return 0
}

// MarshalBinary encodes the packed cells as a length-prefixed byte array.
func (p *PruningTable) MarshalBinary() ([]byte, error) {
	return encodeBytes(p.cells.Bytes()), nil
}

// UnmarshalBinary decodes a table previously produced by MarshalBinary.
func (p *PruningTable) UnmarshalBinary(b []byte) error {
	data, err := decodeBytes(b, (PruningSize+1)/2)
	if err != nil {
		return fmt.Errorf("failed to decode pruning table: %w", err)
	}
	cells := &Nibbles{data: data, n: PruningSize}
	if d := cells.Get(0); d != 0 {
		return fmt.Errorf("failed to decode pruning table: solved cell holds %d: %w", d, ErrBadPayload)
	}
	for i := 1; i < PruningSize; i++ {
		if d := cells.Get(i); d == 0 || d == Unvisited {
			return fmt.Errorf("failed to decode pruning table: cell %d holds %d: %w", i, d, ErrBadPayload)
		}
	}
	p.cells = cells
	return nil
}
