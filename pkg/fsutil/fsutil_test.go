package fsutil_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/slidefilter/pkg/fsutil"
)

func TestReadFile(t *testing.T) {
	t.Parallel()

	t.Run("reads content and metadata", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "deck.md")
		require.NoError(t, os.WriteFile(path, []byte("# Title\n"), 0o640))

		content, info, err := fsutil.ReadFile(context.Background(), path)
		require.NoError(t, err)
		assert.Equal(t, "# Title\n", string(content))
		assert.Equal(t, path, info.Path)
		assert.Equal(t, int64(8), info.Size)
		assert.Equal(t, os.FileMode(0o640), info.Mode)
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, _, err := fsutil.ReadFile(context.Background(), filepath.Join(t.TempDir(), "nope.md"))
		require.ErrorIs(t, err, fsutil.ErrNotFound)
	})

	t.Run("directory", func(t *testing.T) {
		t.Parallel()

		_, _, err := fsutil.ReadFile(context.Background(), t.TempDir())
		require.ErrorIs(t, err, fsutil.ErrIsDirectory)
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, _, err := fsutil.ReadFile(ctx, "irrelevant.md")
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestReadAll(t *testing.T) {
	t.Parallel()

	content, err := fsutil.ReadAll(context.Background(), strings.NewReader("a\nb\n"))
	require.NoError(t, err)
	assert.Equal(t, "a\nb\n", string(content))

	_, err = fsutil.ReadAll(context.Background(), failingReader{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read input")
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("boom") }

func TestWriteAtomic(t *testing.T) {
	t.Parallel()

	t.Run("writes new file with default mode", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "out.md")
		require.NoError(t, fsutil.WriteAtomic(context.Background(), path, []byte("hello"), 0))

		got, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, "hello", string(got))

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, fsutil.DefaultFileMode, info.Mode().Perm())
	})

	t.Run("keeps mode of existing target", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "out.md")
		require.NoError(t, os.WriteFile(path, []byte("old"), 0o600))
		require.NoError(t, os.Chmod(path, 0o600))

		require.NoError(t, fsutil.WriteAtomic(context.Background(), path, []byte("new"), 0))

		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
	})

	t.Run("leaves no temp file behind", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "out.md")
		require.NoError(t, fsutil.WriteAtomic(context.Background(), path, []byte("x"), 0o644))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "out.md", entries[0].Name())
	})

	t.Run("missing directory", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "missing", "out.md")
		err := fsutil.WriteAtomic(context.Background(), path, []byte("x"), 0o644)
		require.ErrorIs(t, err, fsutil.ErrNotFound)
	})

	t.Run("target is a directory", func(t *testing.T) {
		t.Parallel()

		err := fsutil.WriteAtomic(context.Background(), t.TempDir(), []byte("x"), 0o644)
		require.ErrorIs(t, err, fsutil.ErrIsDirectory)
	})

	t.Run("cancelled context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		path := filepath.Join(t.TempDir(), "out.md")
		require.ErrorIs(t, fsutil.WriteAtomic(ctx, path, []byte("x"), 0o644), context.Canceled)
		assert.NoFileExists(t, path)
	})
}

func TestExistingMode(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	assert.Equal(t, os.FileMode(0), fsutil.ExistingMode(filepath.Join(dir, "none")))
	assert.Equal(t, os.FileMode(0), fsutil.ExistingMode(dir))
}
