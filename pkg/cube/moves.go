package cube

import "github.com/SeamusWaldron/gocube_twophase/pkg/types"

// Clockwise quarter turns of each face as cubie arrangements, in axis order
// U R F D L B. Applying a move multiplies the cube by one of these.
var basicCorners = [6]Corners{
	{ // U
		Perm:   [NumCorners]Corner{UBR, URF, UFL, ULB, DFR, DLF, DBL, DRB},
		Orient: [NumCorners]uint8{0, 0, 0, 0, 0, 0, 0, 0},
	},
	{ // R
		Perm:   [NumCorners]Corner{DFR, UFL, ULB, URF, DRB, DLF, DBL, UBR},
		Orient: [NumCorners]uint8{2, 0, 0, 1, 1, 0, 0, 2},
	},
	{ // F
		Perm:   [NumCorners]Corner{UFL, DLF, ULB, UBR, URF, DFR, DBL, DRB},
		Orient: [NumCorners]uint8{1, 2, 0, 0, 2, 1, 0, 0},
	},
	{ // D
		Perm:   [NumCorners]Corner{URF, UFL, ULB, UBR, DLF, DBL, DRB, DFR},
		Orient: [NumCorners]uint8{0, 0, 0, 0, 0, 0, 0, 0},
	},
	{ // L
		Perm:   [NumCorners]Corner{URF, ULB, DBL, UBR, DFR, UFL, DLF, DRB},
		Orient: [NumCorners]uint8{0, 1, 2, 0, 0, 2, 1, 0},
	},
	{ // B
		Perm:   [NumCorners]Corner{URF, UFL, UBR, DRB, DFR, DLF, ULB, DBL},
		Orient: [NumCorners]uint8{0, 0, 1, 2, 0, 0, 2, 1},
	},
}

var basicEdges = [6]Edges{
	{ // U
		Perm:   [NumEdges]Edge{UB, UR, UF, UL, DR, DF, DL, DB, FR, FL, BL, BR},
		Orient: [NumEdges]uint8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	},
	{ // R
		Perm:   [NumEdges]Edge{FR, UF, UL, UB, BR, DF, DL, DB, DR, FL, BL, UR},
		Orient: [NumEdges]uint8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	},
	{ // F
		Perm:   [NumEdges]Edge{UR, FL, UL, UB, DR, FR, DL, DB, UF, DF, BL, BR},
		Orient: [NumEdges]uint8{0, 1, 0, 0, 0, 1, 0, 0, 1, 1, 0, 0},
	},
	{ // D
		Perm:   [NumEdges]Edge{UR, UF, UL, UB, DF, DL, DB, DR, FR, FL, BL, BR},
		Orient: [NumEdges]uint8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	},
	{ // L
		Perm:   [NumEdges]Edge{UR, UF, BL, UB, DR, DF, FL, DB, FR, UL, DL, BR},
		Orient: [NumEdges]uint8{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	},
	{ // B
		Perm:   [NumEdges]Edge{UR, UF, UL, BR, DR, DF, DL, BL, FR, FL, UB, DB},
		Orient: [NumEdges]uint8{0, 0, 0, 1, 0, 0, 0, 1, 0, 0, 1, 1},
	},
}

// Apply applies a move to both cubie sets.
func (c *Cube) Apply(m types.Move) {
	c.ApplyCorners(m)
	c.ApplyEdges(m)
}

// ApplyMoves applies a sequence of moves in order.
func (c *Cube) ApplyMoves(moves []types.Move) {
	for _, m := range moves {
		c.Apply(m)
	}
}

// ApplyCorners applies a move to the corners only. Half turns are two
// quarter turns and inverse turns three.
func (c *Cube) ApplyCorners(m types.Move) {
	axis := m.Face.Axis()
	for i := m.Turn.Power(); i > 0; i-- {
		c.Corners.multiply(&basicCorners[axis])
	}
}

// ApplyEdges applies a move to the edges only.
func (c *Cube) ApplyEdges(m types.Move) {
	axis := m.Face.Axis()
	for i := m.Turn.Power(); i > 0; i-- {
		c.Edges.multiply(&basicEdges[axis])
	}
}
