// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package search

import (
	"context"
	"fmt"
	"io"

	"golang.org/x/time/rate"

	"github.com/pdiddy/content-screener/internal/cache"
	"github.com/pdiddy/content-screener/internal/httputil"
	"github.com/pdiddy/content-screener/pkg/types"
)

// Gateway wraps a Provider with the result cache, bounded retries, and a
// polite outbound rate limit.
type Gateway struct {
	provider Provider
	cache    *cache.Cache
	retries  int
	limiter  *rate.Limiter
	warnings io.Writer
}

// NewGateway builds a Gateway from configuration. A nil warnings writer
// discards diagnostics.
func NewGateway(provider Provider, c *cache.Cache, cfg types.SearchConfig, warnings io.Writer) *Gateway {
	retries := cfg.Retries
	if retries < 0 {
		retries = 0
	}
	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = 2
	}
	if warnings == nil {
		warnings = io.Discard
	}
	return &Gateway{
		provider: provider,
		cache:    c,
		retries:  retries,
		limiter:  rate.NewLimiter(rate.Limit(rps), 1),
		warnings: warnings,
	}
}

// Search returns results for query, consulting the cache first. A cache hit
// is returned verbatim, with no re-ranking. On a miss the provider is called
// with up to g.retries additional attempts and a fixed backoff between them;
// once retries are exhausted the gateway degrades to whatever was obtained
// (possibly nothing). Callers treat empty results as "no evidence", never as
// an error.
func (g *Gateway) Search(ctx context.Context, query string, opts types.SearchOptions) []types.SearchResult {
	opts = opts.Normalize()

	if entry, ok := g.cache.Get(query, opts.Category); ok {
		return entry.Results
	}

	attempts := g.retries + 1
	for attempt := 1; attempt <= attempts; attempt++ {
		if err := g.limiter.Wait(ctx); err != nil {
			return nil
		}

		results, err := g.provider.Search(ctx, query, opts)
		if err == nil {
			g.cache.Put(query, opts.Category, results)
			return results
		}

		fmt.Fprintf(g.warnings, "warning: search attempt %d/%d failed: %v\n", attempt, attempts, err)
		if attempt < attempts {
			if backoffErr := httputil.Backoff(ctx); backoffErr != nil {
				return nil
			}
		}
	}
	return nil
}

// DedupByURL removes results whose URL was already seen, preserving order.
// Evidence gathered across multiple probe queries frequently overlaps.
func DedupByURL(results []types.SearchResult) []types.SearchResult {
	seen := make(map[string]struct{}, len(results))
	deduped := results[:0:0]
	for _, r := range results {
		if _, ok := seen[r.URL]; ok {
			continue
		}
		seen[r.URL] = struct{}{}
		deduped = append(deduped, r)
	}
	return deduped
}
