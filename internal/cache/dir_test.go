package cache

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SeamusWaldron/gocube_twophase/pkg/tables"
)

func openTemp(t *testing.T) *Dir {
	t.Helper()
	d, err := Open(filepath.Join(t.TempDir(), "tables"))
	require.NoError(t, err)
	t.Cleanup(func() { d.Close() })
	return d
}

func TestStoreLoad(t *testing.T) {
	d := openTemp(t)
	payload := []byte("twist table payload")

	require.NoError(t, d.Store("twist_move", payload))

	got, err := d.Load("twist_move")
	require.NoError(t, err)
	assert.Equal(t, payload, got)

	info, err := os.Stat(d.Path("twist_move"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0444), info.Mode().Perm())
}

func TestLoadMiss(t *testing.T) {
	d := openTemp(t)

	_, err := d.Load("flip_move")
	assert.ErrorIs(t, err, ErrMiss)
	assert.ErrorIs(t, err, tables.ErrNotCached)
}

func TestStoreReplacesReadOnlyFile(t *testing.T) {
	d := openTemp(t)

	require.NoError(t, d.Store("parity_move", []byte{1, 2, 3}))
	require.NoError(t, d.Store("parity_move", []byte{4, 5}))

	got, err := d.Load("parity_move")
	require.NoError(t, err)
	assert.Equal(t, []byte{4, 5}, got)

	builds, err := d.Builds()
	require.NoError(t, err)
	require.Len(t, builds, 1)
	assert.Equal(t, int64(2), builds[0].Bytes)
	assert.NotEmpty(t, builds[0].BuildID)
}

func TestLoadDetectsTampering(t *testing.T) {
	d := openTemp(t)
	require.NoError(t, d.Store("merge", []byte("abcdef")))

	path := d.Path("merge")
	require.NoError(t, os.Chmod(path, 0644))

	// Same length, different content.
	require.NoError(t, os.WriteFile(path, []byte("abcdeX"), 0644))
	_, err := d.Load("merge")
	assert.ErrorIs(t, err, ErrCorrupt)

	// Truncated.
	require.NoError(t, os.WriteFile(path, []byte("abc"), 0644))
	_, err = d.Load("merge")
	assert.ErrorIs(t, err, ErrCorrupt)
	assert.NotErrorIs(t, err, tables.ErrNotCached)
}

func TestLoadWithoutManifestEntry(t *testing.T) {
	d := openTemp(t)
	require.NoError(t, os.WriteFile(d.Path("stray"), []byte("x"), 0644))

	_, err := d.Load("stray")
	assert.ErrorIs(t, err, ErrCorrupt)
}

func TestReopenKeepsManifest(t *testing.T) {
	root := filepath.Join(t.TempDir(), "tables")
	d, err := Open(root)
	require.NoError(t, err)
	require.NoError(t, d.Store("a", []byte("one")))
	require.NoError(t, d.Store("b", []byte("two")))
	require.NoError(t, d.Close())

	d, err = Open(root)
	require.NoError(t, err)
	defer d.Close()

	v, err := d.db.CurrentVersion()
	require.NoError(t, err)
	assert.Equal(t, len(migrations), v)

	got, err := d.Load("b")
	require.NoError(t, err)
	assert.Equal(t, []byte("two"), got)

	builds, err := d.Builds()
	require.NoError(t, err)
	require.Len(t, builds, 2)
	assert.Equal(t, "a", builds[0].Name)
	assert.Equal(t, "b", builds[1].Name)
}

func TestClear(t *testing.T) {
	d := openTemp(t)
	require.NoError(t, d.Store("a", []byte("one")))
	require.NoError(t, d.Clear())

	_, err := d.Load("a")
	assert.ErrorIs(t, err, ErrMiss)

	builds, err := d.Builds()
	require.NoError(t, err)
	assert.Empty(t, builds)

	_, err = os.Stat(filepath.Join(d.Root(), manifestName))
	assert.NoError(t, err)
}

func TestClearKeepsManifestWhenRemovalFails(t *testing.T) {
	d := openTemp(t)
	require.NoError(t, d.Store("a", []byte("one")))

	// A non-empty directory matching the table pattern cannot be removed.
	stuck := filepath.Join(d.Root(), "z"+tableExt)
	require.NoError(t, os.Mkdir(stuck, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(stuck, "keep"), nil, 0644))

	assert.Error(t, d.Clear())

	builds, err := d.Builds()
	require.NoError(t, err)
	require.Len(t, builds, 1)
	assert.Equal(t, "a", builds[0].Name)
}

func TestOpenDefault(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	d, err := OpenDefault()
	require.NoError(t, err)
	defer d.Close()

	assert.Equal(t, filepath.Join(home, ".gocube_twophase", "tables"), d.Root())
	assert.FileExists(t, filepath.Join(d.Root(), manifestName))
}
