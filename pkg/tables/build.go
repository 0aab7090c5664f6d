package tables

import (
	"context"
	"encoding"
	"errors"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/SeamusWaldron/gocube_twophase/pkg/cube"
)

// Names of the tables that are not move tables.
const (
	MergeName   = "merge_ur_to_ul_and_ub_to_df"
	PruningName = "urf_to_dlf_parity_prun"
)

// ErrNotCached is returned by a Cache that has no entry for a table.
var ErrNotCached = errors.New("tables: table not cached")

// Cache persists serialized tables between runs. Implementations return
// ErrNotCached (possibly wrapped) for missing entries.
type Cache interface {
	Load(name string) ([]byte, error)
	Store(name string, payload []byte) error
}

// Status describes what happened to a table during Build.
type Status int

const (
	StatusBuilding Status = iota
	StatusBuilt
	StatusLoaded
)

func (s Status) String() string {
	switch s {
	case StatusBuilding:
		return "building"
	case StatusBuilt:
		return "built"
	case StatusLoaded:
		return "loaded"
	default:
		return "unknown"
	}
}

// Event reports progress on a single table.
type Event struct {
	Table  string
	Status Status
	Took   time.Duration
}

// Option configures Build.
type Option func(*config)

type config struct {
	cache    Cache
	progress func(Event)
	parallel bool
}

func defaultConfig() *config {
	return &config{
		parallel: true,
	}
}

// WithCache loads tables from c when possible and stores freshly built ones.
// Cache failures are logged and never fail the build.
func WithCache(c Cache) Option {
	return func(cfg *config) {
		cfg.cache = c
	}
}

// WithProgress registers a callback for table events. Move tables are built
// concurrently, so fn must be safe for concurrent use.
func WithProgress(fn func(Event)) Option {
	return func(cfg *config) {
		cfg.progress = fn
	}
}

// WithParallel enables or disables building the move tables concurrently.
// Enabled by default.
func WithParallel(enabled bool) Option {
	return func(cfg *config) {
		cfg.parallel = enabled
	}
}

// Set is the complete collection of tables handed to a solver.
type Set struct {
	Moves   [NumKinds]*MoveTable
	Merge   *MergeTable
	Pruning *PruningTable
}

// Move returns the move table of a coordinate.
func (s *Set) Move(k Kind) *MoveTable {
	return s.Moves[k]
}

// Phase2Bound returns the pruning lower bound for a cube in the phase-2
// subgroup, or false when the cube is outside it.
func (s *Set) Phase2Bound(co cube.Coordinates) (int, bool) {
	if !co.InPhase2() {
		return 0, false
	}
	return s.Pruning.Depth(co.URFtoDLF, co.FRtoBR, co.Parity), true
}

// Build produces every table. Move tables have no dependencies on each other
// and are built concurrently; the pruning table waits for them.
func Build(ctx context.Context, opts ...Option) (*Set, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	set := &Set{}
	g, gctx := errgroup.WithContext(ctx)
	if !cfg.parallel {
		g.SetLimit(1)
	}
	for k := Kind(0); k < NumKinds; k++ {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			t := &MoveTable{kind: k}
			cfg.obtain(k.String(), t, func() {
				*t = *BuildMoveTable(k)
			})
			set.Moves[k] = t
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	set.Merge = &MergeTable{}
	cfg.obtain(MergeName, set.Merge, func() {
		*set.Merge = *BuildMergeTable()
	})

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	set.Pruning = &PruningTable{}
	cfg.obtain(PruningName, set.Pruning, func() {
		*set.Pruning = *BuildPruningTable(set.Moves[FRtoBR], set.Moves[URFtoDLF], set.Moves[Parity])
	})

	return set, nil
}

type table interface {
	encoding.BinaryMarshaler
	encoding.BinaryUnmarshaler
}

// obtain fills t from the cache, or runs build and stores the result.
func (cfg *config) obtain(name string, t table, build func()) {
	start := time.Now()
	if cfg.cache != nil {
		payload, err := cfg.cache.Load(name)
		switch {
		case err == nil:
			if err := t.UnmarshalBinary(payload); err != nil {
				log.Warn().Err(err).Str("table", name).Msg("discarding-cached-table")
				break
			}
			took := time.Since(start)
			log.Debug().Str("table", name).Dur("took", took).Msg("loaded-table")
			cfg.emit(Event{Table: name, Status: StatusLoaded, Took: took})
			return
		case errors.Is(err, ErrNotCached):
			log.Debug().Str("table", name).Msg("table-not-cached")
		default:
			log.Warn().Err(err).Str("table", name).Msg("cache-load-failed")
		}
	}

	cfg.emit(Event{Table: name, Status: StatusBuilding})
	build()
	took := time.Since(start)
	log.Info().Str("table", name).Dur("took", took).Msg("built-table")
	cfg.emit(Event{Table: name, Status: StatusBuilt, Took: took})

	if cfg.cache == nil {
		return
	}
	payload, err := t.MarshalBinary()
	if err != nil {
		log.Warn().Err(err).Str("table", name).Msg("encode-table-failed")
		return
	}
	if err := cfg.cache.Store(name, payload); err != nil {
		log.Warn().Err(err).Str("table", name).Msg("cache-store-failed")
	}
}

func (cfg *config) emit(e Event) {
	if cfg.progress != nil {
		cfg.progress(e)
	}
}

// Names lists every table Build produces, in build order.
func Names() []string {
	names := make([]string, 0, NumKinds+2)
	for k := Kind(0); k < NumKinds; k++ {
		names = append(names, k.String())
	}
	return append(names, MergeName, PruningName)
}
