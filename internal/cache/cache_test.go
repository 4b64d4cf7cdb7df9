package cache

import (
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/content-screener/pkg/types"
)

func newTestCache(t *testing.T) *Cache {
	t.Helper()
	c, err := New(types.CacheConfig{Dir: t.TempDir(), TTL: time.Hour}, io.Discard)
	require.NoError(t, err)
	return c
}

func sampleResults() []types.SearchResult {
	return []types.SearchResult{
		{Title: "Prompt guide", URL: "https://example.com/a", Content: "a guide", Engine: "duckduckgo", Score: 1.2},
		{Title: "Prompt tips", URL: "https://example.com/b", Content: "some tips", Engine: "bing", Score: 0.7},
	}
}

func TestKeyDeterministic(t *testing.T) {
	k1 := Key("prompt engineering", "general")
	k2 := Key("prompt engineering", "general")
	assert.Equal(t, k1, k2)
	assert.NotEqual(t, k1, Key("prompt engineering", "it"))
	assert.NotEqual(t, k1, Key("prompt design", "general"))
}

func TestRoundTrip(t *testing.T) {
	c := newTestCache(t)
	want := sampleResults()

	c.Put("prompt engineering", "general", want)

	entry, ok := c.Get("prompt engineering", "general")
	require.True(t, ok)
	assert.Equal(t, "prompt engineering", entry.Query)
	assert.Equal(t, want, entry.Results)
}

func TestMissOnUnknownQuery(t *testing.T) {
	c := newTestCache(t)
	_, ok := c.Get("never stored", "general")
	assert.False(t, ok)
}

func TestExpiredEntryRemoved(t *testing.T) {
	c := newTestCache(t)
	c.Put("stale query", "general", sampleResults())

	// Move the clock past the TTL.
	c.now = func() time.Time { return time.Now().Add(2 * time.Hour) }

	_, ok := c.Get("stale query", "general")
	assert.False(t, ok)

	// The expired file must be gone, not just skipped.
	_, err := os.Stat(c.path("stale query", "general"))
	assert.True(t, os.IsNotExist(err))

	// Subsequent lookups (with a fresh clock) still miss.
	c.now = time.Now
	_, ok = c.Get("stale query", "general")
	assert.False(t, ok)
}

func TestIdempotentWrites(t *testing.T) {
	c := newTestCache(t)
	fixed := time.Now()
	c.now = func() time.Time { return fixed }

	c.Put("same query", "general", sampleResults())
	first, err := os.ReadFile(c.path("same query", "general"))
	require.NoError(t, err)

	c.Put("same query", "general", sampleResults())
	second, err := os.ReadFile(c.path("same query", "general"))
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestCorruptEntryIsMiss(t *testing.T) {
	c := newTestCache(t)
	path := c.path("broken", "general")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, ok := c.Get("broken", "general")
	assert.False(t, ok)
}

func TestNewCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "cache")
	_, err := New(types.CacheConfig{Dir: dir}, io.Discard)
	require.NoError(t, err)
	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
