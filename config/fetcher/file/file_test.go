package file

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name string, content []byte) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, content, 0o600))

	return path
}

func TestFetcher_Fetch_Success(t *testing.T) {
	t.Parallel()

	content := []byte("name: test-app\nversion: \"1.0\"\n")
	path := writeFile(t, "config.yaml", content)

	fetcher, err := NewFetcher(path)()
	require.NoError(t, err)
	assert.Equal(t, path, fetcher.Path())

	data, err := fetcher.Fetch()

	require.NoError(t, err)
	assert.Equal(t, content, data)
}

func TestFetcher_Fetch_EmptyFile(t *testing.T) {
	t.Parallel()

	fetcher, err := NewFetcher(writeFile(t, "empty.yaml", []byte{}))()
	require.NoError(t, err)

	data, err := fetcher.Fetch()

	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestNewFetcher_Errors(t *testing.T) {
	t.Parallel()

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		fetcher, err := NewFetcher(filepath.Join(t.TempDir(), "nonexistent.yaml"))()

		require.Error(t, err)
		assert.Nil(t, fetcher)
		require.ErrorIs(t, err, fs.ErrNotExist)
		assert.Contains(t, err.Error(), "nonexistent")
	})

	t.Run("directory", func(t *testing.T) {
		t.Parallel()

		fetcher, err := NewFetcher(t.TempDir())()

		require.Error(t, err)
		assert.Nil(t, fetcher)
		require.ErrorIs(t, err, ErrPathIsDirectory)
	})
}

func TestFetcher_Fetch_ReturnsCachedSnapshot(t *testing.T) {
	t.Parallel()

	original := []byte(`version: "1.0"`)
	path := writeFile(t, "config.yaml", original)

	fetcher, err := NewFetcher(path)()
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte(`version: "2.0"`), 0o600))

	data, err := fetcher.Fetch()
	require.NoError(t, err)
	assert.Equal(t, original, data, "Fetch should return the data read at construction")
}

func TestFetcher_Fetch_ReturnsCopy(t *testing.T) {
	t.Parallel()

	content := []byte(`original: value`)

	fetcher, err := NewFetcher(writeFile(t, "config.yaml", content))()
	require.NoError(t, err)

	first, err := fetcher.Fetch()
	require.NoError(t, err)

	first[0] = 'X'

	second, err := fetcher.Fetch()
	require.NoError(t, err)
	assert.Equal(t, content, second, "mutating a returned slice must not affect the cache")
}
