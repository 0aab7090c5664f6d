package cube

import "fmt"

// Coordinate domain sizes.
const (
	NTwist    = 2187  // 3^7 corner orientations
	NFlip     = 2048  // 2^11 edge orientations
	NParity   = 2     // corner permutation parity
	NFRtoBR   = 11880 // 12*11*10*9 placements of the slice edges
	NURFtoDLF = 20160 // 8*7*6*5*4*3 placements of corners URF..DLF
	NURtoUL   = 1320  // 12*11*10 placements of UR, UF, UL
	NUBtoDF   = 1320  // 12*11*10 placements of UB, DR, DF
	NURtoDF   = 20160 // placements of UR..DF inside the U and D layers
	NSlice2   = 24    // FRtoBR values with the slice edges inside the slice
	NMerge    = 336   // URtoUL/UBtoDF values inside the U and D layers

	// NURtoDFAll is the range of URtoDF over every cube, not only phase-2
	// cubes. Moves outside the phase-2 set can leave the NURtoDF domain.
	NURtoDFAll = 665280
)

// Coordinates is a snapshot of every coordinate of a cube.
type Coordinates struct {
	Twist    int
	Flip     int
	Parity   int
	FRtoBR   int
	URFtoDLF int
	URtoUL   int
	UBtoDF   int
	URtoDF   int
}

// Coordinates computes all coordinates of the cube.
func (c *Cube) Coordinates() Coordinates {
	return Coordinates{
		Twist:    c.Twist(),
		Flip:     c.Flip(),
		Parity:   c.CornerParity(),
		FRtoBR:   c.FRtoBR(),
		URFtoDLF: c.URFtoDLF(),
		URtoUL:   c.URtoUL(),
		UBtoDF:   c.UBtoDF(),
		URtoDF:   c.URtoDF(),
	}
}

// InPhase2 reports whether the cube belongs to the subgroup reachable with
// phase-2 moves: no twist, no flip, slice edges inside the slice.
func (c Coordinates) InPhase2() bool {
	return c.Twist == 0 && c.Flip == 0 && c.FRtoBR < NSlice2
}

func checkRange(name string, x, n int) {
	if x < 0 || x >= n {
		panic(fmt.Sprintf("cube: %s coordinate %d out of range [0,%d)", name, x, n))
	}
}

// Twist encodes the orientations of the first 7 corners in base 3. The
// eighth is implied by the twist invariant.
func (c *Cube) Twist() int {
	t := 0
	for i := URF; i < DRB; i++ {
		t = 3*t + int(c.Corners.Orient[i])
	}
	return t
}

// SetTwist forces the corner orientations to the given twist coordinate.
func (c *Cube) SetTwist(twist int) {
	checkRange("twist", twist, NTwist)
	sum := 0
	for i := int(DRB) - 1; i >= 0; i-- {
		o := twist % 3
		c.Corners.Orient[i] = uint8(o)
		sum += o
		twist /= 3
	}
	c.Corners.Orient[DRB] = uint8((3 - sum%3) % 3)
}

// Flip encodes the orientations of the first 11 edges in base 2.
func (c *Cube) Flip() int {
	f := 0
	for i := UR; i < BR; i++ {
		f = 2*f + int(c.Edges.Orient[i])
	}
	return f
}

// SetFlip forces the edge orientations to the given flip coordinate.
func (c *Cube) SetFlip(flip int) {
	checkRange("flip", flip, NFlip)
	sum := 0
	for i := int(BR) - 1; i >= 0; i-- {
		o := flip % 2
		c.Edges.Orient[i] = uint8(o)
		sum += o
		flip /= 2
	}
	c.Edges.Orient[BR] = uint8((2 - sum%2) % 2)
}

// CornerParity returns the parity of the corner permutation. On a cube built
// from moves it equals the parity of the edge permutation.
func (c *Cube) CornerParity() int {
	s := 0
	for i := NumCorners - 1; i > 0; i-- {
		for j := i - 1; j >= 0; j-- {
			if c.Corners.Perm[j] > c.Corners.Perm[i] {
				s++
			}
		}
	}
	return s % 2
}

// SetCornerParity resets the corner permutation to one with the given
// parity: the identity, or the identity with URF and UFL swapped.
func (c *Cube) SetCornerParity(parity int) {
	checkRange("parity", parity, NParity)
	c.Corners.Perm = solvedCorners().Perm
	if parity == 1 {
		c.Corners.Perm[URF], c.Corners.Perm[UFL] = UFL, URF
	}
}

// FRtoBR encodes where the four slice edges are and in which order. It is 0
// on a solved cube and below NSlice2 whenever the slice edges are inside the
// slice.
func (c *Cube) FRtoBR() int {
	a, x := 0, 0
	var edge4 [4]Edge
	for j := NumEdges - 1; j >= 0; j-- {
		if e := c.Edges.Perm[j]; e >= FR {
			a += cnk(NumEdges-1-j, x+1)
			edge4[3-x] = e
			x++
		}
	}
	return 24*a + permRank(edge4[:], FR)
}

// SetFRtoBR places the slice edges according to the coordinate and fills the
// remaining positions with UR..DB in order.
func (c *Cube) SetFRtoBR(idx int) {
	checkRange("FRtoBR", idx, NFRtoBR)
	slice := [4]Edge{FR, FL, BL, BR}
	permUnrank(slice[:], idx%24)
	a := idx / 24

	var placed [NumEdges]bool
	x := 3
	for j := 0; j < NumEdges && x >= 0; j++ {
		if v := cnk(NumEdges-1-j, x+1); a >= v {
			c.Edges.Perm[j] = slice[3-x]
			placed[j] = true
			a -= v
			x--
		}
	}
	fillRest(c.Edges.Perm[:], placed[:], FR, BR)
}

// URFtoDLF encodes the placement of the six corners URF..DLF.
func (c *Cube) URFtoDLF() int {
	var corner6 [6]Corner
	a := rankSubset(c.Corners.Perm[:], URF, DLF, corner6[:])
	return 720*a + permRank(corner6[:], URF)
}

// SetURFtoDLF places corners URF..DLF according to the coordinate; DBL and
// DRB take the free positions.
func (c *Cube) SetURFtoDLF(idx int) {
	checkRange("URFtoDLF", idx, NURFtoDLF)
	corner6 := [6]Corner{URF, UFL, ULB, UBR, DFR, DLF}
	permUnrank(corner6[:], idx%720)
	var placed [NumCorners]bool
	unrankSubset(c.Corners.Perm[:], idx/720, corner6[:], placed[:])
	fillRest(c.Corners.Perm[:], placed[:], URF, DLF)
}

// URtoDF encodes the placement of the six edges UR..DF. Values below
// NURtoDF mean all six sit in the U and D layers.
func (c *Cube) URtoDF() int {
	return urToDF(&c.Edges.Perm)
}

func urToDF(perm *[NumEdges]Edge) int {
	var edge6 [6]Edge
	a := rankSubset(perm[:], UR, DF, edge6[:])
	return 720*a + permRank(edge6[:], UR)
}

// SetURtoDF places edges UR..DF inside the U and D layers according to the
// coordinate.
func (c *Cube) SetURtoDF(idx int) {
	checkRange("URtoDF", idx, NURtoDF)
	edge6 := [6]Edge{UR, UF, UL, UB, DR, DF}
	permUnrank(edge6[:], idx%720)
	var placed [NumEdges]bool
	unrankSubset(c.Edges.Perm[:], idx/720, edge6[:], placed[:])
	fillRest(c.Edges.Perm[:], placed[:], UR, DF)
}

// URtoUL encodes the placement of edges UR, UF and UL.
func (c *Cube) URtoUL() int {
	var edge3 [3]Edge
	a := rankSubset(c.Edges.Perm[:], UR, UL, edge3[:])
	return 6*a + permRank(edge3[:], UR)
}

// SetURtoUL places edges UR, UF and UL according to the coordinate.
func (c *Cube) SetURtoUL(idx int) {
	checkRange("URtoUL", idx, NURtoUL)
	edge3 := [3]Edge{UR, UF, UL}
	permUnrank(edge3[:], idx%6)
	var placed [NumEdges]bool
	unrankSubset(c.Edges.Perm[:], idx/6, edge3[:], placed[:])
	fillRest(c.Edges.Perm[:], placed[:], UR, UL)
}

// UBtoDF encodes the placement of edges UB, DR and DF.
func (c *Cube) UBtoDF() int {
	var edge3 [3]Edge
	a := rankSubset(c.Edges.Perm[:], UB, DF, edge3[:])
	return 6*a + permRank(edge3[:], UB)
}

// SetUBtoDF places edges UB, DR and DF according to the coordinate.
func (c *Cube) SetUBtoDF(idx int) {
	checkRange("UBtoDF", idx, NUBtoDF)
	edge3 := [3]Edge{UB, DR, DF}
	permUnrank(edge3[:], idx%6)
	var placed [NumEdges]bool
	unrankSubset(c.Edges.Perm[:], idx/6, edge3[:], placed[:])
	fillRest(c.Edges.Perm[:], placed[:], UB, DF)
}

// MergeURtoDF combines a URtoUL and a UBtoDF coordinate into the URtoDF
// coordinate of a cube having both arrangements. It returns false when the
// two arrangements claim the same position.
func MergeURtoDF(urToUL, ubToDF int) (int, bool) {
	a := New()
	a.SetURtoUL(urToUL)
	b := New()
	b.SetUBtoDF(ubToDF)

	var perm [NumEdges]Edge
	for j := range perm {
		p, q := a.Edges.Perm[j], b.Edges.Perm[j]
		inA := p <= UL
		inB := q >= UB && q <= DF
		switch {
		case inA && inB:
			return -1, false
		case inA:
			perm[j] = p
		case inB:
			perm[j] = q
		default:
			perm[j] = BR
		}
	}
	return urToDF(&perm), true
}

// cnk returns the binomial coefficient n choose k, 0 when n < k.
func cnk(n, k int) int {
	if n < k {
		return 0
	}
	if k > n/2 {
		k = n - k
	}
	s := 1
	for i, j := n, 1; i != n-k; i, j = i-1, j+1 {
		s *= i
		s /= j
	}
	return s
}

func rotateLeft[T any](a []T, l, r int) {
	tmp := a[l]
	copy(a[l:r], a[l+1:r+1])
	a[r] = tmp
}

func rotateRight[T any](a []T, l, r int) {
	tmp := a[r]
	copy(a[l+1:r+1], a[l:r])
	a[l] = tmp
}

// permRank ranks the order of pieces, which must be a permutation of
// base..base+len(pieces)-1. pieces is scrambled in the process.
func permRank[T ~uint8](pieces []T, base T) int {
	b := 0
	for j := len(pieces) - 1; j > 0; j-- {
		k := 0
		for pieces[j] != base+T(j) {
			rotateLeft(pieces, 0, j)
			k++
		}
		b = (j+1)*b + k
	}
	return b
}

// permUnrank turns pieces, given in identity order, into the order with rank b.
func permUnrank[T any](pieces []T, b int) {
	for j := 1; j < len(pieces); j++ {
		k := b % (j + 1)
		b /= j + 1
		for ; k > 0; k-- {
			rotateRight(pieces, 0, j)
		}
	}
}

// rankSubset returns the combination rank of the positions holding pieces in
// [lo,hi] and copies those pieces, in position order, into pieces.
func rankSubset[T ~uint8](perm []T, lo, hi T, pieces []T) int {
	a, x := 0, 0
	for j, p := range perm {
		if p >= lo && p <= hi {
			a += cnk(j, x+1)
			pieces[x] = p
			x++
		}
	}
	return a
}

// unrankSubset writes pieces into the positions selected by combination rank a.
func unrankSubset[T any](perm []T, a int, pieces []T, placed []bool) {
	x := len(pieces) - 1
	for j := len(perm) - 1; j >= 0 && x >= 0; j-- {
		if v := cnk(j, x+1); a >= v {
			perm[j] = pieces[x]
			placed[j] = true
			a -= v
			x--
		}
	}
}

// fillRest puts every piece outside [lo,hi] into the unplaced positions, in
// ascending order, so perm stays a bijection.
func fillRest[T ~uint8](perm []T, placed []bool, lo, hi T) {
	var next T
	for j := range perm {
		if placed[j] {
			continue
		}
		for next >= lo && next <= hi {
			next++
		}
		perm[j] = next
		next++
	}
}
