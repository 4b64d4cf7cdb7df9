// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package search issues probe queries to the external search service and
// returns normalized, cache-backed results.
package search

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/pdiddy/content-screener/pkg/types"
)

// Provider searches a single external service. The HTTP implementation talks
// to a SearXNG-compatible endpoint; tests substitute a stub.
type Provider interface {
	Name() string
	Search(ctx context.Context, query string, opts types.SearchOptions) ([]types.SearchResult, error)
}

// HTTPProvider queries a SearXNG-compatible search endpoint over HTTP GET.
type HTTPProvider struct {
	// BaseURL is the service root (e.g. "http://localhost:8080"). A field
	// rather than a constant so tests can point it at an httptest server.
	BaseURL string

	Client    *http.Client
	UserAgent string

	// APIKey, when set, is sent as a bearer token.
	APIKey string
}

// Name returns the provider identifier.
func (p *HTTPProvider) Name() string { return "searxng" }

// Search performs one GET against the /search endpoint and normalizes the
// response. A response without a "results" key means zero results, not an
// error. Transport failures, non-200 statuses, and undecodable bodies are
// returned as errors for the gateway to retry.
func (p *HTTPProvider) Search(ctx context.Context, query string, opts types.SearchOptions) ([]types.SearchResult, error) {
	opts = opts.Normalize()

	params := url.Values{
		"q":          {query},
		"format":     {"json"},
		"language":   {opts.Language},
		"categories": {opts.Category},
	}
	if opts.TimeRange != "" {
		params.Set("time_range", opts.TimeRange)
	}

	reqURL := p.BaseURL + "/search?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	if p.UserAgent != "" {
		req.Header.Set("User-Agent", p.UserAgent)
	}
	if p.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+p.APIKey)
	}

	resp, err := p.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search service returned HTTP %d", resp.StatusCode)
	}

	var body searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("parsing search response: %w", err)
	}

	results := make([]types.SearchResult, 0, len(body.Results))
	for _, raw := range body.Results {
		results = append(results, normalize(raw))
		if len(results) >= opts.ResultCount {
			break
		}
	}
	return results, nil
}

// normalize converts a raw service result into a SearchResult, substituting
// type-appropriate defaults for missing fields. Malformed evidence is never
// rejected.
func normalize(raw rawResult) types.SearchResult {
	r := types.SearchResult{
		Title:     raw.Title,
		URL:       raw.URL,
		Content:   raw.Content,
		Engine:    raw.Engine,
		Score:     raw.Score,
		Thumbnail: raw.Thumbnail,
	}
	if r.Engine == "" {
		r.Engine = "unknown"
	}
	if raw.PublishedDate != "" {
		for _, layout := range []string{time.RFC3339, "2006-01-02", "2006-01-02 15:04:05"} {
			if t, err := time.Parse(layout, raw.PublishedDate); err == nil {
				r.PublishedDate = &t
				break
			}
		}
	}
	return r
}

// Search service JSON structures.
type searchResponse struct {
	Results []rawResult `json:"results"`
}

type rawResult struct {
	Title         string  `json:"title"`
	URL           string  `json:"url"`
	Content       string  `json:"content"`
	Engine        string  `json:"engine"`
	Score         float64 `json:"score"`
	Thumbnail     string  `json:"thumbnail"`
	PublishedDate string  `json:"publishedDate"`
}
