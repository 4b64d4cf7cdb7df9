// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines shared data structures for the content-screener pipeline:
// search results and cache entries, evaluation stage results, and the adaptive
// weight-controller records.
package types

import "time"

// SearchResult represents a single normalized result from the web search
// service. Results are immutable once produced; URL is unique within one
// result set.
type SearchResult struct {
	// Title is the result title as returned by the search service.
	Title string `json:"title" yaml:"title"`

	// URL is the result link, used as the dedup key across probe queries.
	URL string `json:"url" yaml:"url"`

	// Content is the snippet or summary text for the result.
	Content string `json:"content" yaml:"content"`

	// Engine identifies which upstream engine produced the result.
	Engine string `json:"engine" yaml:"engine"`

	// Score is the relevance score assigned by the search service (>= 0).
	Score float64 `json:"score" yaml:"score"`

	// Thumbnail is an optional preview image URL.
	Thumbnail string `json:"thumbnail,omitempty" yaml:"thumbnail,omitempty"`

	// PublishedDate is the publication timestamp, when the engine provides one.
	PublishedDate *time.Time `json:"publishedDate,omitempty" yaml:"published_date,omitempty"`
}

// CacheEntry is the on-disk representation of one cached query. The timestamp
// is milliseconds since the epoch, matching the cache file wire format.
type CacheEntry struct {
	Query     string         `json:"query"`
	Results   []SearchResult `json:"results"`
	Timestamp int64          `json:"timestamp"`
}

// CreatedAt returns the entry creation time.
func (e CacheEntry) CreatedAt() time.Time {
	return time.UnixMilli(e.Timestamp)
}

// SearchOptions holds per-call search parameters.
type SearchOptions struct {
	// ResultCount is the number of results to request.
	ResultCount int

	// Category is the search category (default "general").
	Category string

	// Language is the search language (default "auto").
	Language string

	// TimeRange restricts results by age ("day", "month", "year"); empty
	// means unrestricted.
	TimeRange string
}

// Normalize fills zero-valued options with defaults.
func (o SearchOptions) Normalize() SearchOptions {
	if o.ResultCount <= 0 {
		o.ResultCount = 8
	}
	if o.Category == "" {
		o.Category = "general"
	}
	if o.Language == "" {
		o.Language = "auto"
	}
	return o
}
