package cube

import (
	"testing"

	"github.com/SeamusWaldron/gocube_twophase/pkg/types"
)

func TestNewCubeIsSolved(t *testing.T) {
	c := New()
	if !c.IsSolved() {
		t.Error("New cube should be solved")
	}
	if !c.Valid() {
		t.Error("New cube should be valid")
	}
}

func TestSingleMoveBreaksSolved(t *testing.T) {
	for _, m := range types.AllMoves() {
		c := New()
		c.Apply(m)
		if c.IsSolved() {
			t.Errorf("Cube should not be solved after %s", m)
		}
	}
}

func TestQuarterTurnX4_ReturnsToSolved_AllFaces(t *testing.T) {
	for axis := 0; axis < 6; axis++ {
		m := types.Move{Face: types.FaceFromAxis(axis), Turn: types.TurnCW}
		c := New()
		for i := 0; i < 4; i++ {
			c.Apply(m)
		}
		if !c.IsSolved() {
			t.Errorf("%s x 4 should return to solved", m)
			t.Log(c.String())
		}
	}
}

func TestMoveThenInverse_ReturnsToSolved(t *testing.T) {
	for _, m := range types.AllMoves() {
		c := New()
		c.Apply(m)
		c.Apply(m.Inverse())
		if !c.IsSolved() {
			t.Errorf("%s %s should return to solved", m, m.Inverse())
		}
	}
}

func TestHalfTurnIsTwoQuarters(t *testing.T) {
	for axis := 0; axis < 6; axis++ {
		face := types.FaceFromAxis(axis)
		a := New()
		a.Apply(types.Move{Face: face, Turn: types.Turn180})
		b := New()
		b.Apply(types.Move{Face: face, Turn: types.TurnCW})
		b.Apply(types.Move{Face: face, Turn: types.TurnCW})
		if !a.Equal(b) {
			t.Errorf("%s2 should equal %s %s", face, face, face)
		}
	}
}

func TestSexyMove_6Times_ReturnsToSolved(t *testing.T) {
	// (R U R' U') x 6 = identity
	c := New()
	for i := 0; i < 6; i++ {
		c.ApplyMoves([]types.Move{types.R, types.U, types.RPrime, types.UPrime})
	}
	if !c.IsSolved() {
		t.Error("Sexy move x 6 should return to solved")
		t.Log(c.String())
	}
}

func TestScrambleAndReverse(t *testing.T) {
	scramble := []types.Move{types.F, types.R2, types.UPrime}
	c := FromMoves(scramble)
	if c.IsSolved() {
		t.Fatal("Cube should be scrambled after F R2 U'")
	}

	c.ApplyMoves(types.InverseSequence(scramble))
	if !c.IsSolved() {
		t.Error("Cube should be solved after U R2 F'")
		t.Log(c.String())
	}

	got := c.Coordinates()
	want := Coordinates{UBtoDF: solvedUBtoDF}
	if got != want {
		t.Errorf("Solved cube coordinates = %+v, want %+v", got, want)
	}
}

func TestRandomSequencesKeepInvariants(t *testing.T) {
	for i := 0; i < 200; i++ {
		moves := types.RandomSequence(30)
		c := FromMoves(moves)

		twist := 0
		for _, o := range c.Corners.Orient {
			twist += int(o)
		}
		if twist%3 != 0 {
			t.Fatalf("corner twist sum %d not divisible by 3 after %v", twist, moves)
		}

		flip := 0
		for _, o := range c.Edges.Orient {
			flip += int(o)
		}
		if flip%2 != 0 {
			t.Fatalf("edge flip sum %d not even after %v", flip, moves)
		}

		if !c.Valid() {
			t.Fatalf("cube not valid after %v", moves)
		}

		c.ApplyMoves(types.InverseSequence(moves))
		if !c.IsSolved() {
			t.Fatalf("inverse of %v did not solve the cube", moves)
		}
	}
}

func TestCornerEdgeIndex(t *testing.T) {
	seen := map[int]bool{}
	for c := URF; c <= DRB; c++ {
		i := c.Index()
		if i < 0 || i >= NumCorners || seen[i] {
			t.Errorf("corner %s has bad index %d", c, i)
		}
		seen[i] = true
		if Corner(i) != c {
			t.Errorf("corner %s does not round-trip through %d", c, i)
		}
	}

	seen = map[int]bool{}
	for e := UR; e <= BR; e++ {
		i := e.Index()
		if i < 0 || i >= NumEdges || seen[i] {
			t.Errorf("edge %s has bad index %d", e, i)
		}
		seen[i] = true
		if Edge(i) != e {
			t.Errorf("edge %s does not round-trip through %d", e, i)
		}
	}
}

func TestParityLinked(t *testing.T) {
	c := New()
	c.Apply(types.R)
	if c.CornerParity() != 1 {
		t.Error("a quarter turn should make the corner permutation odd")
	}
	c.Apply(types.U2)
	if c.CornerParity() != 1 {
		t.Error("a half turn should keep the corner parity")
	}
}

func TestFaceletsSolved(t *testing.T) {
	c := New()
	f := c.Facelets()
	if !f.IsSolved() {
		t.Error("Solved cube should have solved facelets")
		t.Log(f.String())
	}

	c.Apply(types.R)
	f = c.Facelets()
	if f.IsSolved() {
		t.Error("Facelets should not be solved after R")
	}

	// R moves the F right column up to U.
	if f[U][2] != Green || f[U][5] != Green || f[U][8] != Green {
		t.Errorf("U right column should be green after R\n%s", f.String())
	}
	if f[U][0] != White {
		t.Errorf("U left column should stay white after R\n%s", f.String())
	}
}

func TestFaceletsColorCounts(t *testing.T) {
	c := FromMoves(types.RandomSequence(25))
	f := c.Facelets()
	counts := map[Color]int{}
	for face := U; face <= L; face++ {
		for i := 0; i < 9; i++ {
			counts[f[face][i]]++
		}
	}
	for color := White; color <= Orange; color++ {
		if counts[color] != 9 {
			t.Errorf("color %s appears %d times", color, counts[color])
		}
	}
}
