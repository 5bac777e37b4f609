package geotable

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileCache_Missing(t *testing.T) {
	cache := &FileCache{Path: filepath.Join(t.TempDir(), "plz.json")}

	raw, ok, err := cache.Load()
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, raw)
}

func TestFileCache_RoundTrip(t *testing.T) {
	cache := &FileCache{Path: filepath.Join(t.TempDir(), "plz.json")}
	payload := []byte(`{"elements":[{"tags":{"postal_code":"1010"},"center":{"lat":48.2,"lon":16.37}}]}`)

	require.NoError(t, cache.Store(payload))

	raw, ok, err := cache.Load()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, payload, raw)
}

func TestFileCache_UnreadablePath(t *testing.T) {
	// A directory in place of the cache file is a read error, not a miss.
	cache := &FileCache{Path: t.TempDir()}

	_, _, err := cache.Load()
	require.Error(t, err)
}
