// Package twophase builds the lookup tables used by a two-phase Rubik's Cube
// solver and answers phase-2 distance queries against them.
//
// # Quick Start
//
// Load (or build and cache) every table, then ask for the phase-2 lower
// bound of a cube:
//
//	ctx := context.Background()
//	t, err := twophase.Load(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	c, _ := twophase.Scramble("R2 U D' F2")
//	bound, err := t.Phase2Bound(c)
//	if errors.Is(err, twophase.ErrNotInPhase2) {
//	    // twisted corners, flipped edges or slice edges outside the slice
//	}
//	fmt.Println("at least", bound, "phase-2 moves")
//
// # Tables
//
// Building every table takes a few seconds. By default the serialized
// tables are kept under ~/.gocube_twophase/tables and reused on later runs;
// use WithCacheDir to move them or WithCache(false) to stay in memory.
//
// The individual tables are available through Set for solvers that need
// the move, merge and pruning tables directly.
package twophase

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/SeamusWaldron/gocube_twophase/internal/cache"
	"github.com/SeamusWaldron/gocube_twophase/pkg/cube"
	"github.com/SeamusWaldron/gocube_twophase/pkg/tables"
)

// Tables is a loaded set of solver tables.
type Tables struct {
	set *tables.Set
}

// Load builds every table, reading and writing the on-disk cache unless
// disabled. A cache that cannot be opened is logged and skipped.
func Load(ctx context.Context, opts ...Option) (*Tables, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	buildOpts := []tables.Option{tables.WithParallel(cfg.parallel)}
	if cfg.progress != nil {
		buildOpts = append(buildOpts, tables.WithProgress(cfg.progress))
	}

	if cfg.useCache {
		d, err := openCache(cfg.cacheDir)
		if err != nil {
			log.Warn().Err(err).Str("dir", cfg.cacheDir).Msg("cache-unavailable")
		} else {
			defer d.Close()
			buildOpts = append(buildOpts, tables.WithCache(d))
		}
	}

	set, err := tables.Build(ctx, buildOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to build tables: %w", err)
	}
	return &Tables{set: set}, nil
}

// openCache opens dir, or the default cache directory when dir is empty.
func openCache(dir string) (*cache.Dir, error) {
	if dir == "" {
		return cache.OpenDefault()
	}
	return cache.Open(dir)
}

// Set returns the underlying tables.
func (t *Tables) Set() *tables.Set {
	return t.set
}

// Phase2Bound returns a lower bound on the number of phase-2 moves needed to
// solve c. It returns ErrNotInPhase2 if c is outside the phase-2 subgroup.
func (t *Tables) Phase2Bound(c *cube.Cube) (int, error) {
	bound, ok := t.set.Phase2Bound(c.Coordinates())
	if !ok {
		return 0, ErrNotInPhase2
	}
	return bound, nil
}

// MergedURtoDF combines the URtoUL and UBtoDF coordinates of a phase-2 cube
// into its URtoDF coordinate using the merge table.
func (t *Tables) MergedURtoDF(c *cube.Cube) (int, error) {
	co := c.Coordinates()
	if !co.InPhase2() {
		return 0, ErrNotInPhase2
	}
	v, ok := t.set.Merge.Lookup(co.URtoUL, co.UBtoDF)
	if !ok {
		return 0, fmt.Errorf("merge of (%d, %d) has overlapping edges", co.URtoUL, co.UBtoDF)
	}
	return v, nil
}
