package tables

import "fmt"

// Unvisited is the nibble value of a cell that has no distance yet.
const Unvisited = 0x0F

// Nibbles is a fixed-length array of 4-bit values packed two per byte.
// Element i lives in the low nibble of byte i/2 when i is even and in the
// high nibble otherwise. New arrays are filled with Unvisited.
type Nibbles struct {
	data []byte
	n    int
}

// NewNibbles allocates n elements set to Unvisited.
func NewNibbles(n int) *Nibbles {
	data := make([]byte, (n+1)/2)
	for i := range data {
		data[i] = 0xFF
	}
	return &Nibbles{data: data, n: n}
}

// Len returns the number of elements.
func (p *Nibbles) Len() int {
	return p.n
}

// Get returns element i.
func (p *Nibbles) Get(i int) uint8 {
	p.check(i)
	b := p.data[i/2]
	if i&1 == 0 {
		return b & 0x0F
	}
	return b >> 4
}

// Set stores the low 4 bits of v in element i. The old value is cleared
// first, so any value may overwrite any other.
func (p *Nibbles) Set(i int, v uint8) {
	p.check(i)
	v &= 0x0F
	if i&1 == 0 {
		p.data[i/2] = p.data[i/2]&0xF0 | v
	} else {
		p.data[i/2] = p.data[i/2]&0x0F | v<<4
	}
}

// Bytes exposes the packed storage for serialization.
func (p *Nibbles) Bytes() []byte {
	return p.data
}

func (p *Nibbles) check(i int) {
	if i < 0 || i >= p.n {
		panic(fmt.Sprintf("tables: nibble index %d out of range [0,%d)", i, p.n))
	}
}
