package notation

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/SeamusWaldron/gocube_twophase/pkg/types"
)

func TestParseNotation(t *testing.T) {
	tests := []struct {
		in   string
		want types.Move
		ok   bool
	}{
		{"R", types.R, true},
		{"R'", types.RPrime, true},
		{"R`", types.RPrime, true},
		{"R3", types.RPrime, true},
		{"U2", types.U2, true},
		{"U2'", types.U2, true},
		{" F ", types.F, true},
		{"B'", types.BPrime, true},
		{"", types.Move{}, false},
		{"X", types.Move{}, false},
		{"r", types.Move{}, false},
		{"R4", types.Move{}, false},
		{"RR", types.Move{}, false},
	}

	for _, tt := range tests {
		got, ok := ParseNotation(tt.in)
		if ok != tt.ok {
			t.Errorf("ParseNotation(%q) ok = %v, want %v", tt.in, ok, tt.ok)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseNotation(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseSequence(t *testing.T) {
	got, err := ParseSequence("R U R' U'\tF2  D")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []types.Move{types.R, types.U, types.RPrime, types.UPrime, types.F2, types.D}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ParseSequence mismatch (-want +got):\n%s", diff)
	}

	empty, err := ParseSequence("   ")
	if err != nil || len(empty) != 0 {
		t.Errorf("blank input = %v, %v; want empty sequence", empty, err)
	}
}

func TestParseSequenceRejectsBadToken(t *testing.T) {
	moves, err := ParseSequence("R U X2 D")
	if !errors.Is(err, ErrInvalidNotation) {
		t.Fatalf("expected ErrInvalidNotation, got %v", err)
	}
	if moves != nil {
		t.Errorf("expected no moves on error, got %v", moves)
	}
	t.Log(err)
}

func TestFormatSequenceRoundTrip(t *testing.T) {
	moves := types.RandomSequence(30)
	text := FormatSequence(moves)

	back, err := ParseSequence(text)
	if err != nil {
		t.Fatalf("failed to parse %q: %v", text, err)
	}
	if diff := cmp.Diff(moves, back); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}

	if s := FormatSequence(nil); s != "" {
		t.Errorf("FormatSequence(nil) = %q, want empty", s)
	}
}
