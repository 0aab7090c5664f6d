package cube

// Corner identifies one of the 8 corner cubies, and equally one of the 8
// corner positions. The facelets of each corner are listed clockwise
// starting from the U or D sticker.
type Corner uint8

const (
	URF Corner = iota
	UFL
	ULB
	UBR
	DFR
	DLF
	DBL
	DRB
)

// NumCorners is the number of corner cubies.
const NumCorners = 8

var cornerNames = [NumCorners]string{"URF", "UFL", "ULB", "UBR", "DFR", "DLF", "DBL", "DRB"}

func (c Corner) String() string {
	if int(c) >= NumCorners {
		return "?"
	}
	return cornerNames[c]
}

// Index returns the dense array index of the corner in [0,8).
func (c Corner) Index() int {
	return int(c)
}

// Edge identifies one of the 12 edge cubies or positions. FR, FL, BL and BR
// are the middle slice (UD-slice) edges.
type Edge uint8

const (
	UR Edge = iota
	UF
	UL
	UB
	DR
	DF
	DL
	DB
	FR
	FL
	BL
	BR
)

// NumEdges is the number of edge cubies.
const NumEdges = 12

var edgeNames = [NumEdges]string{"UR", "UF", "UL", "UB", "DR", "DF", "DL", "DB", "FR", "FL", "BL", "BR"}

func (e Edge) String() string {
	if int(e) >= NumEdges {
		return "?"
	}
	return edgeNames[e]
}

// Index returns the dense array index of the edge in [0,12).
func (e Edge) Index() int {
	return int(e)
}

// Corners holds the corner arrangement. Perm[i] is the cubie sitting at
// position i and Orient[i] its clockwise twist (0..2) relative to home.
type Corners struct {
	Perm   [NumCorners]Corner
	Orient [NumCorners]uint8
}

// Edges holds the edge arrangement. Orient[i] is 1 when the cubie at
// position i is flipped.
type Edges struct {
	Perm   [NumEdges]Edge
	Orient [NumEdges]uint8
}

func solvedCorners() Corners {
	var c Corners
	for i := range c.Perm {
		c.Perm[i] = Corner(i)
	}
	return c
}

func solvedEdges() Edges {
	var e Edges
	for i := range e.Perm {
		e.Perm[i] = Edge(i)
	}
	return e
}

// multiply replaces c with the corner arrangement c*b, i.e. c followed by b.
func (c *Corners) multiply(b *Corners) {
	var perm [NumCorners]Corner
	var orient [NumCorners]uint8
	for i := 0; i < NumCorners; i++ {
		from := b.Perm[i]
		perm[i] = c.Perm[from]
		orient[i] = (c.Orient[from] + b.Orient[i]) % 3
	}
	c.Perm = perm
	c.Orient = orient
}

// multiply replaces e with the edge arrangement e*b.
func (e *Edges) multiply(b *Edges) {
	var perm [NumEdges]Edge
	var orient [NumEdges]uint8
	for i := 0; i < NumEdges; i++ {
		from := b.Perm[i]
		perm[i] = e.Perm[from]
		orient[i] = (e.Orient[from] + b.Orient[i]) % 2
	}
	e.Perm = perm
	e.Orient = orient
}

// valid reports whether the corner permutation is a bijection, all twists are
// in range and their sum is divisible by 3.
func (c *Corners) valid() bool {
	var seen [NumCorners]bool
	sum := 0
	for i := 0; i < NumCorners; i++ {
		p := c.Perm[i]
		if int(p) >= NumCorners || seen[p] || c.Orient[i] > 2 {
			return false
		}
		seen[p] = true
		sum += int(c.Orient[i])
	}
	return sum%3 == 0
}

func (e *Edges) valid() bool {
	var seen [NumEdges]bool
	sum := 0
	for i := 0; i < NumEdges; i++ {
		p := e.Perm[i]
		if int(p) >= NumEdges || seen[p] || e.Orient[i] > 1 {
			return false
		}
		seen[p] = true
		sum += int(e.Orient[i])
	}
	return sum%2 == 0
}
