package twophase

import "github.com/SeamusWaldron/gocube_twophase/pkg/tables"

// Option configures Load.
type Option func(*config)

type config struct {
	cacheDir string
	useCache bool
	progress func(tables.Event)
	parallel bool
}

func defaultConfig() *config {
	return &config{
		useCache: true,
		parallel: true,
	}
}

// WithCacheDir stores tables in dir instead of ~/.gocube_twophase/tables.
func WithCacheDir(dir string) Option {
	return func(c *config) {
		c.cacheDir = dir
	}
}

// WithCache enables or disables the on-disk table cache.
// When disabled, every table is built in memory on each Load.
func WithCache(enabled bool) Option {
	return func(c *config) {
		c.useCache = enabled
	}
}

// WithProgress registers a callback fired as each table starts building,
// finishes building, or is loaded from the cache. It may be called from
// several goroutines at once.
func WithProgress(fn func(tables.Event)) Option {
	return func(c *config) {
		c.progress = fn
	}
}

// WithParallel enables or disables building move tables concurrently.
// Enabled by default.
func WithParallel(enabled bool) Option {
	return func(c *config) {
		c.parallel = enabled
	}
}
