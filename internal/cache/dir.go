// Package cache stores serialized lookup tables on disk between runs.
//
// Each table lives in its own read-only file inside the cache directory. A
// SQLite manifest next to the files records the size and SHA-256 of every
// stored table so that truncated or edited files are detected on load.
package cache

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"github.com/SeamusWaldron/gocube_twophase/pkg/tables"
)

var (
	// ErrMiss is returned by Load when a table has never been stored.
	ErrMiss = fmt.Errorf("cache: miss: %w", tables.ErrNotCached)

	// ErrCorrupt is returned by Load when a file does not match its manifest entry.
	ErrCorrupt = errors.New("cache: table file does not match manifest")
)

const tableExt = ".bin"

// Dir is a table cache rooted at a directory. It is safe for concurrent use.
type Dir struct {
	root   string
	db     *DB
	builds *BuildRepository
}

var _ tables.Cache = (*Dir)(nil)

// DefaultDir returns the default cache directory in the user's home directory.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".gocube_twophase", "tables"), nil
}

// Open opens (or creates) the cache rooted at root.
func Open(root string) (*Dir, error) {
	if err := os.MkdirAll(root, 0755); err != nil {
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}

	db, err := OpenDB(filepath.Join(root, manifestName))
	if err != nil {
		return nil, err
	}

	return &Dir{root: root, db: db, builds: NewBuildRepository(db)}, nil
}

// OpenDefault opens the cache at the default path.
func OpenDefault() (*Dir, error) {
	root, err := DefaultDir()
	if err != nil {
		return nil, err
	}
	return Open(root)
}

// Close closes the manifest.
func (d *Dir) Close() error {
	return d.db.Close()
}

// Root returns the cache directory.
func (d *Dir) Root() string {
	return d.root
}

// Path returns the file a table is stored in.
func (d *Dir) Path(name string) string {
	return filepath.Join(d.root, name+tableExt)
}

// Load reads a stored table and verifies it against the manifest.
func (d *Dir) Load(name string) ([]byte, error) {
	payload, err := os.ReadFile(d.Path(name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w", name, ErrMiss)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}

	b, err := d.builds.Latest(name)
	if err != nil {
		return nil, err
	}
	if b == nil {
		return nil, fmt.Errorf("%s has no manifest entry: %w", name, ErrCorrupt)
	}
	if int64(len(payload)) != b.Bytes {
		return nil, fmt.Errorf("%s is %d bytes, manifest says %d: %w", name, len(payload), b.Bytes, ErrCorrupt)
	}
	if sum := checksum(payload); sum != b.SHA256 {
		return nil, fmt.Errorf("%s checksum %s, manifest says %s: %w", name, sum, b.SHA256, ErrCorrupt)
	}

	return payload, nil
}

// Store writes a table file, marks it read-only and records it in the
// manifest. An existing file of the same name is replaced.
func (d *Dir) Store(name string, payload []byte) error {
	tmp, err := os.CreateTemp(d.root, name+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file for %s: %w", name, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(payload); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", name, err)
	}
	if err := os.Chmod(tmp.Name(), 0444); err != nil {
		return fmt.Errorf("failed to mark %s read-only: %w", name, err)
	}

	path := d.Path(name)
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to remove old %s: %w", name, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to install %s: %w", name, err)
	}

	id, err := d.builds.Record(name, int64(len(payload)), checksum(payload))
	if err != nil {
		return err
	}
	log.Debug().Str("table", name).Str("build_id", id).Int("bytes", len(payload)).Msg("stored-table")
	return nil
}

// Builds returns the latest manifest entry of every stored table.
func (d *Dir) Builds() ([]Build, error) {
	return d.builds.List()
}

// Clear removes every table file and manifest entry. The manifest rows are
// kept if any file cannot be removed.
func (d *Dir) Clear() error {
	matches, err := filepath.Glob(filepath.Join(d.root, "*"+tableExt))
	if err != nil {
		return fmt.Errorf("failed to list tables: %w", err)
	}

	return d.db.Transaction(func(tx *sql.Tx) error {
		if err := d.builds.DeleteAll(tx); err != nil {
			return err
		}
		for _, path := range matches {
			if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
				return fmt.Errorf("failed to remove %s: %w", filepath.Base(path), err)
			}
		}
		return nil
	})
}

func checksum(payload []byte) string {
	sum := sha256.Sum256(payload)
	return hex.EncodeToString(sum[:])
}
