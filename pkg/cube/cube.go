// Package cube provides a cubie-level 3x3 Rubik's cube model and the
// coordinate encodings used by the two-phase move and pruning tables.
package cube

import "github.com/SeamusWaldron/gocube_twophase/pkg/types"

// Cube represents a 3x3 Rubik's cube as two independent cubie arrangements.
// The zero value is not a valid cube; use New.
type Cube struct {
	Corners Corners
	Edges   Edges
}

// New creates a solved cube.
func New() *Cube {
	return &Cube{
		Corners: solvedCorners(),
		Edges:   solvedEdges(),
	}
}

// FromMoves builds a cube by applying moves to a solved cube.
func FromMoves(moves []types.Move) *Cube {
	c := New()
	c.ApplyMoves(moves)
	return c
}

// Clone creates a copy of the cube.
func (c *Cube) Clone() *Cube {
	clone := *c
	return &clone
}

// Equal reports whether both cubes have the same arrangement.
func (c *Cube) Equal(other *Cube) bool {
	return c.Corners == other.Corners && c.Edges == other.Edges
}

// IsSolved returns true if every cubie is home with zero orientation.
func (c *Cube) IsSolved() bool {
	return c.Corners == solvedCorners() && c.Edges == solvedEdges()
}

// Valid reports whether both permutations are bijections and the twist and
// flip sums satisfy the invariants of a physical cube. Cubes built from moves
// are always valid.
func (c *Cube) Valid() bool {
	return c.Corners.valid() && c.Edges.valid()
}
