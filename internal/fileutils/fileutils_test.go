package fileutils

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileExists(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.txt")
	assert.False(t, FileExists(path))

	require.NoError(t, os.WriteFile(path, []byte("x"), 0600))
	assert.True(t, FileExists(path))
	assert.False(t, FileExists(dir), "directories are not files")
}

func TestEnsureParentDir(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a", "b", "c.yaml")

	require.NoError(t, EnsureParentDir(path, 0750))
	info, err := os.Stat(filepath.Join(dir, "a", "b"))
	require.NoError(t, err)
	assert.True(t, info.IsDir())

	assert.NoError(t, EnsureParentDir("local.yaml", 0750))
}

func TestWriteFileAtomic(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data.yaml")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0600))

	require.NoError(t, WriteFileAtomic(path, []byte("new"), 0600))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))

	_, err = os.Stat(path + ".tmp")
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestWriteFileAtomic_MissingDir(t *testing.T) {
	err := WriteFileAtomic(filepath.Join(t.TempDir(), "nope", "x"), []byte("x"), 0600)
	assert.Error(t, err)
}
