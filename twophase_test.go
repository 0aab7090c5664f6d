package twophase

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/SeamusWaldron/gocube_twophase/pkg/cube"
	"github.com/SeamusWaldron/gocube_twophase/pkg/tables"
	"github.com/SeamusWaldron/gocube_twophase/pkg/types"
)

func TestScramble(t *testing.T) {
	c, err := Scramble("R U R' U'")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.IsSolved() {
		t.Error("sexy move should not leave the cube solved")
	}

	if _, err := Scramble("R U Z"); !errors.Is(err, ErrInvalidNotation) {
		t.Errorf("expected ErrInvalidNotation, got %v", err)
	}
}

func TestSexyMoveOrder(t *testing.T) {
	c := cube.New()
	for i := 0; i < 6; i++ {
		c.ApplyMoves(SexyMove)
	}
	if !c.IsSolved() {
		t.Error("6x sexy move should return to solved")
	}

	c.ApplyMoves(SexyMove)
	c.ApplyMoves(InverseSexyMove)
	if !c.IsSolved() {
		t.Error("sexy move followed by its inverse should be the identity")
	}
}

func TestTPermStaysInPhase2(t *testing.T) {
	c := cube.FromMoves(TPerm)
	if !c.Coordinates().InPhase2() {
		t.Fatalf("T-perm result should be in phase 2, got %+v", c.Coordinates())
	}

	c.ApplyMoves(TPerm)
	if !c.IsSolved() {
		t.Error("T-perm twice should solve the cube")
	}
}

func TestParseFormatMoves(t *testing.T) {
	text := FormatMoves(TPerm)
	moves, err := ParseMoves(text)
	if err != nil {
		t.Fatalf("failed to parse %q: %v", text, err)
	}
	if FormatMoves(moves) != text {
		t.Errorf("round trip gave %q, want %q", FormatMoves(moves), text)
	}
}

type statusLog struct {
	mu     sync.Mutex
	counts map[tables.Status]int
}

func (l *statusLog) record(e tables.Event) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.counts == nil {
		l.counts = make(map[tables.Status]int)
	}
	l.counts[e.Status]++
}

func TestLoadCachesTables(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping table build in short mode")
	}
	dir := t.TempDir()
	n := len(tables.Names())

	var first statusLog
	tbl, err := Load(context.Background(), WithCacheDir(dir), WithProgress(first.record))
	if err != nil {
		t.Fatalf("failed to load tables: %v", err)
	}
	if first.counts[tables.StatusBuilt] != n {
		t.Errorf("first load built %d tables, want %d", first.counts[tables.StatusBuilt], n)
	}

	var second statusLog
	if _, err := Load(context.Background(), WithCacheDir(dir), WithProgress(second.record), WithParallel(false)); err != nil {
		t.Fatalf("failed to reload tables: %v", err)
	}
	if second.counts[tables.StatusLoaded] != n {
		t.Errorf("second load read %d tables from cache, want %d", second.counts[tables.StatusLoaded], n)
	}

	c := cube.FromMoves(TPerm)
	bound, err := tbl.Phase2Bound(c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if bound < 1 || bound > len(TPerm) {
		t.Errorf("T-perm bound = %d, want within [1, %d]", bound, len(TPerm))
	}
	t.Logf("T-perm phase-2 lower bound: %d", bound)

	merged, err := tbl.MergedURtoDF(c)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if merged != c.URtoDF() {
		t.Errorf("merged URtoDF = %d, want %d", merged, c.URtoDF())
	}

	r, _ := Scramble("R")
	if _, err := tbl.Phase2Bound(r); !errors.Is(err, ErrNotInPhase2) {
		t.Errorf("expected ErrNotInPhase2, got %v", err)
	}
	if _, err := tbl.MergedURtoDF(r); !errors.Is(err, ErrNotInPhase2) {
		t.Errorf("expected ErrNotInPhase2, got %v", err)
	}
}

func TestLoadSkipsUnusableCache(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping table build in short mode")
	}
	notDir := filepath.Join(t.TempDir(), "notadir")
	if err := os.WriteFile(notDir, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	var events statusLog
	tbl, err := Load(context.Background(), WithCacheDir(notDir), WithProgress(events.record))
	if err != nil {
		t.Fatalf("Load with an unusable cache dir failed: %v", err)
	}
	if n := len(tables.Names()); events.counts[tables.StatusBuilt] != n {
		t.Errorf("built %d tables, want %d", events.counts[tables.StatusBuilt], n)
	}

	bound, err := tbl.Phase2Bound(cube.FromMoves([]Move{types.U}))
	if err != nil || bound != 1 {
		t.Errorf("Phase2Bound(U) = %d, %v; want 1", bound, err)
	}
}

func TestLoadWithoutCache(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Load(ctx, WithCache(false)); !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
