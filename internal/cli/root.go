// Package cli implements the command-line interface for cubeprune.
package cli

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	twophase "github.com/SeamusWaldron/gocube_twophase"
	"github.com/SeamusWaldron/gocube_twophase/internal/cache"
	"github.com/SeamusWaldron/gocube_twophase/pkg/tables"
)

const version = "0.1.0"

var (
	// Global flags
	cacheDir string
	noCache  bool
	verbose  bool
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "cubeprune [moves]",
	Short: "Two-phase lookup tables for the 3x3x3 cube",
	Long: `cubeprune - Builds and inspects the coordinate move tables, the merge table
and the phase-2 pruning table used by a two-phase Rubik's Cube solver.

Given a move sequence such as "R U R' U'", it applies the moves to a solved
cube, prints the sticker net and every coordinate, and reports the phase-2
pruning lower bound when the result lies in the phase-2 subgroup.

Tables are cached under ~/.gocube_twophase/tables after the first build.`,
	Version:           version,
	Args:              cobra.MaximumNArgs(1),
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupLogging,
	RunE:              runInspect,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cacheDir, "cache-dir", "", "Table cache directory (default: ~/.gocube_twophase/tables)")
	rootCmd.PersistentFlags().BoolVar(&noCache, "no-cache", false, "Always build tables and never touch the cache")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
}

// setupLogging points the global logger at stderr.
func setupLogging(cmd *cobra.Command, _ []string) error {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr(), TimeFormat: time.Kitchen})
	return nil
}

// openCache opens the table cache selected by the flags. It returns nil
// when --no-cache is set.
func openCache() (*cache.Dir, error) {
	if noCache {
		return nil, nil
	}

	var (
		d   *cache.Dir
		err error
	)
	if cacheDir == "" {
		d, err = cache.OpenDefault()
	} else {
		d, err = cache.Open(cacheDir)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open table cache: %w", err)
	}
	log.Debug().Str("dir", d.Root()).Msg("opened-cache")
	return d, nil
}

// buildTables builds or loads every table, using the cache unless disabled.
func buildTables(ctx context.Context, opts ...twophase.Option) (*tables.Set, error) {
	opts = append(opts, twophase.WithCache(!noCache), twophase.WithCacheDir(cacheDir))
	t, err := twophase.Load(ctx, opts...)
	if err != nil {
		return nil, err
	}
	return t.Set(), nil
}
