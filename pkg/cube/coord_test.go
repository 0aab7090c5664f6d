package cube

import (
	"testing"

	"github.com/SeamusWaldron/gocube_twophase/pkg/types"
)

// UB, DR and DF sit in positions 3, 4 and 5 on a solved cube.
const solvedUBtoDF = 114

type coordCase struct {
	name   string
	size   int
	set    func(*Cube, int)
	get    func(*Cube) int
	edges  bool
	orient bool
}

var coordCases = []coordCase{
	{"twist", NTwist, (*Cube).SetTwist, (*Cube).Twist, false, true},
	{"flip", NFlip, (*Cube).SetFlip, (*Cube).Flip, true, true},
	{"parity", NParity, (*Cube).SetCornerParity, (*Cube).CornerParity, false, false},
	{"FRtoBR", NFRtoBR, (*Cube).SetFRtoBR, (*Cube).FRtoBR, true, false},
	{"URFtoDLF", NURFtoDLF, (*Cube).SetURFtoDLF, (*Cube).URFtoDLF, false, false},
	{"URtoUL", NURtoUL, (*Cube).SetURtoUL, (*Cube).URtoUL, true, false},
	{"UBtoDF", NUBtoDF, (*Cube).SetUBtoDF, (*Cube).UBtoDF, true, false},
	{"URtoDF", NURtoDF, (*Cube).SetURtoDF, (*Cube).URtoDF, true, false},
}

func TestCoordinateRoundTrip(t *testing.T) {
	for _, tc := range coordCases {
		t.Run(tc.name, func(t *testing.T) {
			for x := 0; x < tc.size; x++ {
				c := New()
				tc.set(c, x)
				if got := tc.get(c); got != x {
					t.Fatalf("%s: set %d, got %d", tc.name, x, got)
				}
				if !c.Valid() {
					t.Fatalf("%s: synthetic cube for %d is not valid", tc.name, x)
				}
			}
		})
	}
}

func TestSolvedCoordinates(t *testing.T) {
	got := New().Coordinates()
	want := Coordinates{UBtoDF: solvedUBtoDF}
	if got != want {
		t.Errorf("solved coordinates = %+v, want %+v", got, want)
	}
	if !got.InPhase2() {
		t.Error("solved cube should be in phase 2")
	}
}

func TestCoordinatesStayInDomain(t *testing.T) {
	for i := 0; i < 100; i++ {
		c := FromMoves(types.RandomSequence(40))
		co := c.Coordinates()
		if co.Twist >= NTwist || co.Flip >= NFlip || co.FRtoBR >= NFRtoBR ||
			co.URFtoDLF >= NURFtoDLF || co.URtoUL >= NURtoUL || co.UBtoDF >= NUBtoDF ||
			co.URtoDF >= NURtoDFAll || co.Parity >= NParity {
			t.Fatalf("coordinate out of range: %+v", co)
		}
	}
}

func TestPhase2MovesKeepPhase2(t *testing.T) {
	var moves []types.Move
	for _, m := range types.AllMoves() {
		if m.Phase2() {
			moves = append(moves, m)
		}
	}

	c := New()
	for i := 0; i < 500; i++ {
		c.Apply(moves[i*7%len(moves)])
		co := c.Coordinates()
		if !co.InPhase2() {
			t.Fatalf("left phase 2 after %d moves: %+v", i+1, co)
		}
		if co.URtoDF >= NURtoDF {
			t.Fatalf("URtoDF %d outside phase-2 domain", co.URtoDF)
		}
	}
}

func TestQuarterTurnLeavesPhase2(t *testing.T) {
	c := FromMoves([]types.Move{types.R})
	if c.Coordinates().InPhase2() {
		t.Error("R should leave phase 2")
	}
}

func TestMergeURtoDF(t *testing.T) {
	for i := 0; i < 200; i++ {
		c := New()
		for _, m := range types.RandomSequence(30) {
			if m.Phase2() {
				c.Apply(m)
			}
		}
		co := c.Coordinates()
		if co.URtoUL >= NMerge || co.UBtoDF >= NMerge {
			t.Fatalf("phase-2 cube outside merge domain: %+v", co)
		}
		got, ok := MergeURtoDF(co.URtoUL, co.UBtoDF)
		if !ok {
			t.Fatalf("merge of %d and %d reported a collision", co.URtoUL, co.UBtoDF)
		}
		if got != co.URtoDF {
			t.Fatalf("merge of %d and %d = %d, want %d", co.URtoUL, co.UBtoDF, got, co.URtoDF)
		}
	}
}

func TestMergeURtoDFCollision(t *testing.T) {
	// URtoUL 0 puts UR, UF, UL in positions 0..2; UBtoDF 0 puts UB, DR, DF
	// there as well.
	if _, ok := MergeURtoDF(0, 0); ok {
		t.Error("overlapping arrangements should not merge")
	}
	got, ok := MergeURtoDF(0, solvedUBtoDF)
	if !ok || got != 0 {
		t.Errorf("solved arrangements should merge to 0, got %d (%v)", got, ok)
	}
}

func TestSetOutOfRangePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("SetTwist(NTwist) should panic")
		}
	}()
	New().SetTwist(NTwist)
}

func TestCnk(t *testing.T) {
	cases := []struct{ n, k, want int }{
		{12, 4, 495}, {8, 6, 28}, {12, 3, 220}, {3, 4, 0}, {5, 0, 1}, {7, 7, 1},
	}
	for _, tc := range cases {
		if got := cnk(tc.n, tc.k); got != tc.want {
			t.Errorf("cnk(%d, %d) = %d, want %d", tc.n, tc.k, got, tc.want)
		}
	}
}
