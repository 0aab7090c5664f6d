package cache

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Build is one stored table as recorded in the manifest.
type Build struct {
	BuildID   string
	Name      string
	Bytes     int64
	SHA256    string
	CreatedAt time.Time
}

// BuildRepository provides access to the table_builds manifest.
type BuildRepository struct {
	db *DB
}

// NewBuildRepository creates a new build repository.
func NewBuildRepository(db *DB) *BuildRepository {
	return &BuildRepository{db: db}
}

// Record inserts a build and returns its ID.
func (r *BuildRepository) Record(name string, size int64, sum string) (string, error) {
	id := uuid.New().String()
	createdAt := time.Now().UTC()

	_, err := r.db.Exec(`
		INSERT INTO table_builds (build_id, name, bytes, sha256, created_at)
		VALUES (?, ?, ?, ?, ?)
	`, id, name, size, sum, createdAt.Format(time.RFC3339Nano))
	if err != nil {
		return "", fmt.Errorf("failed to record build: %w", err)
	}

	return id, nil
}

// Latest returns the most recent build of a table, or nil if none exists.
func (r *BuildRepository) Latest(name string) (*Build, error) {
	row := r.db.QueryRow(`
		SELECT build_id, name, bytes, sha256, created_at
		FROM table_builds
		WHERE name = ?
		ORDER BY rowid DESC
		LIMIT 1
	`, name)

	b, err := scanBuild(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get latest build of %s: %w", name, err)
	}
	return b, nil
}

// List returns the latest build of every table, ordered by name.
func (r *BuildRepository) List() ([]Build, error) {
	rows, err := r.db.Query(`
		SELECT build_id, name, bytes, sha256, created_at
		FROM table_builds b
		WHERE rowid = (
			SELECT rowid FROM table_builds
			WHERE name = b.name
			ORDER BY rowid DESC
			LIMIT 1
		)
		ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list builds: %w", err)
	}
	defer rows.Close()

	var builds []Build
	for rows.Next() {
		b, err := scanBuild(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan build: %w", err)
		}
		builds = append(builds, *b)
	}

	return builds, rows.Err()
}

// DeleteAll removes every manifest row within tx.
func (r *BuildRepository) DeleteAll(tx *sql.Tx) error {
	if _, err := tx.Exec("DELETE FROM table_builds"); err != nil {
		return fmt.Errorf("failed to delete builds: %w", err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanBuild(s scanner) (*Build, error) {
	var b Build
	var createdAt string
	if err := s.Scan(&b.BuildID, &b.Name, &b.Bytes, &b.SHA256, &createdAt); err != nil {
		return nil, err
	}
	t, err := time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse created_at %q: %w", createdAt, err)
	}
	b.CreatedAt = t
	return &b, nil
}
