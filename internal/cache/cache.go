// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package cache persists search results as one JSON file per query, with
// TTL-based expiry. The cache is content-addressed: the key is a stable hash
// of (query, category), so repeated identical queries inside the TTL window
// never re-fetch.
package cache

import (
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/pdiddy/content-screener/pkg/types"
)

// DefaultTTL is how long a cached entry stays valid.
const DefaultTTL = 24 * time.Hour

// Cache is a file-backed TTL cache for search results. Expiry on read is the
// only deletion path; entries are never mutated in place.
type Cache struct {
	dir string
	ttl time.Duration

	// now is the clock, a field so tests can control expiry.
	now func() time.Time

	// warnings receive non-fatal read/write diagnostics.
	warnings io.Writer
}

// New creates the cache directory if needed and returns a Cache. A zero TTL
// falls back to DefaultTTL.
func New(cfg types.CacheConfig, warnings io.Writer) (*Cache, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating cache directory: %w", err)
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if warnings == nil {
		warnings = io.Discard
	}
	return &Cache{dir: cfg.Dir, ttl: ttl, now: time.Now, warnings: warnings}, nil
}

// Key returns the cache key for (query, category): the md5 hex digest of
// "query:category". It depends only on its inputs, never on call time.
func Key(query, category string) string {
	sum := md5.Sum([]byte(query + ":" + category))
	return hex.EncodeToString(sum[:])
}

// Get returns the cached entry for (query, category), or ok=false on a miss.
// An entry older than the TTL is treated as absent and removed as a side
// effect. A corrupt or unreadable file is a miss, never an error.
func (c *Cache) Get(query, category string) (types.CacheEntry, bool) {
	path := c.path(query, category)

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			fmt.Fprintf(c.warnings, "warning: cache read failed: %v\n", err)
		}
		return types.CacheEntry{}, false
	}

	var entry types.CacheEntry
	if err := json.Unmarshal(data, &entry); err != nil {
		fmt.Fprintf(c.warnings, "warning: cache entry unparsable, ignoring: %v\n", err)
		return types.CacheEntry{}, false
	}

	if c.now().Sub(entry.CreatedAt()) > c.ttl {
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			fmt.Fprintf(c.warnings, "warning: removing expired cache entry: %v\n", err)
		}
		return types.CacheEntry{}, false
	}

	return entry, true
}

// Put stores results for (query, category). Writes are idempotent: storing
// identical results for the same key twice leaves the cache observably
// equivalent to a single write. A failed write is logged, not fatal; the
// next lookup simply misses.
func (c *Cache) Put(query, category string, results []types.SearchResult) {
	entry := types.CacheEntry{
		Query:     query,
		Results:   results,
		Timestamp: c.now().UnixMilli(),
	}

	data, err := json.MarshalIndent(entry, "", "  ")
	if err != nil {
		fmt.Fprintf(c.warnings, "warning: cache encode failed: %v\n", err)
		return
	}
	if err := os.WriteFile(c.path(query, category), data, 0o644); err != nil {
		fmt.Fprintf(c.warnings, "warning: cache write failed: %v\n", err)
	}
}

func (c *Cache) path(query, category string) string {
	return filepath.Join(c.dir, Key(query, category)+".json")
}
