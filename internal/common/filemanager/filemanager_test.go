package filemanager_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ron-layerx/sick-rats/internal/common/filemanager"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileManager_WriteFile(t *testing.T) {
	fm := filemanager.NewFileManager(zerolog.Nop())

	t.Run("atomic write creates file with no temp leftovers", func(t *testing.T) {
		dir := t.TempDir()
		path := filepath.Join(dir, "out.txt")

		require.NoError(t, fm.WriteFile(path, []byte("hello"), filemanager.DefaultFileWriteOptions()))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "hello", string(data))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.False(t, strings.Contains(entries[0].Name(), ".tmp-"))
	})

	t.Run("atomic write replaces existing content entirely", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.txt")
		require.NoError(t, os.WriteFile(path, []byte("previous longer content"), 0644))

		require.NoError(t, fm.WriteFile(path, []byte("new"), filemanager.DefaultFileWriteOptions()))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "new", string(data))
	})

	t.Run("creates parent directories", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "a", "b", "out.txt")

		require.NoError(t, fm.WriteFile(path, []byte("x"), filemanager.DefaultFileWriteOptions()))
		assert.FileExists(t, path)
	})
}

func TestFileManager_EnsureDirectory(t *testing.T) {
	fm := filemanager.NewFileManager(zerolog.Nop())

	t.Run("creates nested directories", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "x", "y", "z")
		require.NoError(t, fm.EnsureDirectory(dir, 0755))
		assert.DirExists(t, dir)
	})

	t.Run("existing directory is untouched", func(t *testing.T) {
		dir := t.TempDir()
		marker := filepath.Join(dir, "marker")
		require.NoError(t, os.WriteFile(marker, []byte("1"), 0644))

		require.NoError(t, fm.EnsureDirectory(dir, 0755))
		assert.FileExists(t, marker)
	})

	t.Run("path exists but is a file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "file")
		require.NoError(t, os.WriteFile(path, []byte("1"), 0644))

		assert.Error(t, fm.EnsureDirectory(path, 0755))
	})
}

func TestFileManager_ReadFile(t *testing.T) {
	fm := filemanager.NewFileManager(zerolog.Nop())

	t.Run("reads content", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "in.txt")
		require.NoError(t, os.WriteFile(path, []byte("content"), 0644))

		data, err := fm.ReadFile(path, filemanager.DefaultFileReadOptions())
		require.NoError(t, err)
		assert.Equal(t, "content", string(data))
	})

	t.Run("rejects files above max size", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "big.txt")
		require.NoError(t, os.WriteFile(path, []byte("0123456789"), 0644))

		opts := filemanager.FileReadOptions{MaxSize: 5}
		_, err := fm.ReadFile(path, opts)
		assert.Error(t, err)
	})

	t.Run("rejects directories", func(t *testing.T) {
		_, err := fm.ReadFile(t.TempDir(), filemanager.DefaultFileReadOptions())
		assert.Error(t, err)
	})
}
