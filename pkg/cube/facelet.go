package cube

import "strings"

// Color represents a sticker color.
type Color byte

const (
	White  Color = 0 // Up face when solved
	Yellow Color = 1 // Down face when solved
	Green  Color = 2 // Front face when solved
	Blue   Color = 3 // Back face when solved
	Red    Color = 4 // Right face when solved
	Orange Color = 5 // Left face when solved
)

func (c Color) String() string {
	switch c {
	case White:
		return "W"
	case Yellow:
		return "Y"
	case Green:
		return "G"
	case Blue:
		return "B"
	case Red:
		return "R"
	case Orange:
		return "O"
	default:
		return "?"
	}
}

// Face represents a cube face for rendering. It is not part of the solving
// state.
type Face int

const (
	U Face = 0 // Up (White)
	D Face = 1 // Down (Yellow)
	F Face = 2 // Front (Green)
	B Face = 3 // Back (Blue)
	R Face = 4 // Right (Red)
	L Face = 5 // Left (Orange)
)

func (f Face) String() string {
	switch f {
	case U:
		return "U"
	case D:
		return "D"
	case F:
		return "F"
	case B:
		return "B"
	case R:
		return "R"
	case L:
		return "L"
	default:
		return "?"
	}
}

// SolvedColor returns the color of a face when solved.
func (f Face) SolvedColor() Color {
	return Color(f)
}

// Facelets is a sticker net. Each face has 9 facelets indexed as:
//
//	0 1 2
//	3 4 5
//	6 7 8
//
// U is seen from above with B at the top, D from below with F at the top,
// the side faces from outside with U at the top.
type Facelets [6][9]Color

type facelet struct {
	face Face
	idx  int
}

// Sticker positions of each corner position, clockwise from the U/D sticker.
var cornerFacelets = [NumCorners][3]facelet{
	URF: {{U, 8}, {R, 0}, {F, 2}},
	UFL: {{U, 6}, {F, 0}, {L, 2}},
	ULB: {{U, 0}, {L, 0}, {B, 2}},
	UBR: {{U, 2}, {B, 0}, {R, 2}},
	DFR: {{D, 2}, {F, 8}, {R, 6}},
	DLF: {{D, 0}, {L, 8}, {F, 6}},
	DBL: {{D, 6}, {B, 8}, {L, 6}},
	DRB: {{D, 8}, {R, 8}, {B, 6}},
}

var cornerColors = [NumCorners][3]Face{
	URF: {U, R, F},
	UFL: {U, F, L},
	ULB: {U, L, B},
	UBR: {U, B, R},
	DFR: {D, F, R},
	DLF: {D, L, F},
	DBL: {D, B, L},
	DRB: {D, R, B},
}

var edgeFacelets = [NumEdges][2]facelet{
	UR: {{U, 5}, {R, 1}},
	UF: {{U, 7}, {F, 1}},
	UL: {{U, 3}, {L, 1}},
	UB: {{U, 1}, {B, 1}},
	DR: {{D, 5}, {R, 7}},
	DF: {{D, 1}, {F, 7}},
	DL: {{D, 3}, {L, 7}},
	DB: {{D, 7}, {B, 7}},
	FR: {{F, 5}, {R, 3}},
	FL: {{F, 3}, {L, 5}},
	BL: {{B, 5}, {L, 3}},
	BR: {{B, 3}, {R, 5}},
}

var edgeColors = [NumEdges][2]Face{
	UR: {U, R},
	UF: {U, F},
	UL: {U, L},
	UB: {U, B},
	DR: {D, R},
	DF: {D, F},
	DL: {D, L},
	DB: {D, B},
	FR: {F, R},
	FL: {F, L},
	BL: {B, L},
	BR: {B, R},
}

// Facelets projects the cubie state onto the sticker net.
func (c *Cube) Facelets() Facelets {
	var f Facelets
	for face := U; face <= L; face++ {
		f[face][4] = face.SolvedColor()
	}
	for i := 0; i < NumCorners; i++ {
		piece := c.Corners.Perm[i]
		ori := int(c.Corners.Orient[i])
		for n := 0; n < 3; n++ {
			pos := cornerFacelets[i][(n+ori)%3]
			f[pos.face][pos.idx] = cornerColors[piece][n].SolvedColor()
		}
	}
	for i := 0; i < NumEdges; i++ {
		piece := c.Edges.Perm[i]
		ori := int(c.Edges.Orient[i])
		for n := 0; n < 2; n++ {
			pos := edgeFacelets[i][(n+ori)%2]
			f[pos.face][pos.idx] = edgeColors[piece][n].SolvedColor()
		}
	}
	return f
}

// IsSolved returns true if every face shows a single color.
func (f *Facelets) IsSolved() bool {
	for face := U; face <= L; face++ {
		for i := 0; i < 9; i++ {
			if f[face][i] != face.SolvedColor() {
				return false
			}
		}
	}
	return true
}

// String returns a text representation of the net.
func (f *Facelets) String() string {
	var sb strings.Builder

	// U face (indented)
	for row := 0; row < 3; row++ {
		sb.WriteString("      ")
		for col := 0; col < 3; col++ {
			sb.WriteString(f[U][row*3+col].String() + " ")
		}
		sb.WriteString("\n")
	}

	// L, F, R, B faces (side by side)
	for row := 0; row < 3; row++ {
		for _, face := range []Face{L, F, R, B} {
			for col := 0; col < 3; col++ {
				sb.WriteString(f[face][row*3+col].String() + " ")
			}
		}
		sb.WriteString("\n")
	}

	// D face (indented)
	for row := 0; row < 3; row++ {
		sb.WriteString("      ")
		for col := 0; col < 3; col++ {
			sb.WriteString(f[D][row*3+col].String() + " ")
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// String returns the sticker net of the cube.
func (c *Cube) String() string {
	f := c.Facelets()
	return f.String()
}
