package scanner

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("FINISH\n"), 0o644))
}

func TestScanFindsInputFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	touch(t, filepath.Join(dir, "frame.std"))
	touch(t, filepath.Join(dir, "nested", "tower.STD"))
	touch(t, filepath.Join(dir, "notes.txt"))
	touch(t, filepath.Join(dir, "readme.md"))

	files, err := New(dir).Scan()
	require.NoError(t, err)

	paths := make(map[string]bool, len(files))
	for _, f := range files {
		paths[f.Path] = true
		assert.Greater(t, f.Size, int64(0))
	}

	assert.Len(t, files, 3)
	assert.True(t, paths[filepath.Join(dir, "frame.std")])
	assert.True(t, paths[filepath.Join(dir, "nested", "tower.STD")])
	assert.True(t, paths[filepath.Join(dir, "notes.txt")])
	assert.False(t, paths[filepath.Join(dir, "readme.md")])
}

func TestScanCustomExtensions(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	touch(t, filepath.Join(dir, "frame.std"))
	touch(t, filepath.Join(dir, "model.dat"))

	files, err := New(dir, ".dat").Scan()
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, filepath.Join(dir, "model.dat"), files[0].Path)
}

func TestScanMissingRoot(t *testing.T) {
	t.Parallel()

	_, err := New("no-such-dir").Scan()
	assert.Error(t, err)
}
