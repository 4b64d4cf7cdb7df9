package search

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/content-screener/internal/cache"
	"github.com/pdiddy/content-screener/internal/httputil"
	"github.com/pdiddy/content-screener/pkg/types"
)

func init() {
	// Keep retry backoffs out of test wall time.
	httputil.RetryDelay = 1 * time.Millisecond
}

func testSearchCfg() types.SearchConfig {
	return types.SearchConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   10 * time.Second,
			UserAgent: "test/0.1",
		},
		Language:          "auto",
		Retries:           2,
		RequestsPerSecond: 1000,
	}
}

func newTestCache(t *testing.T) *cache.Cache {
	t.Helper()
	c, err := cache.New(types.CacheConfig{Dir: t.TempDir(), TTL: time.Hour}, io.Discard)
	require.NoError(t, err)
	return c
}

// --- provider ---

func TestProviderParsesResults(t *testing.T) {
	var gotQuery, gotFormat, gotCategories, gotTimeRange string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		gotQuery = q.Get("q")
		gotFormat = q.Get("format")
		gotCategories = q.Get("categories")
		gotTimeRange = q.Get("time_range")
		fmt.Fprint(w, `{"results":[
			{"title":"Guide","url":"https://a","content":"body","engine":"bing","score":1.5},
			{"url":"https://b","score":0.2}
		]}`)
	}))
	defer ts.Close()

	p := &HTTPProvider{BaseURL: ts.URL, Client: ts.Client(), UserAgent: "test/0.1"}
	results, err := p.Search(context.Background(), "prompt engineering", types.SearchOptions{ResultCount: 5, TimeRange: "month"})
	require.NoError(t, err)

	assert.Equal(t, "prompt engineering", gotQuery)
	assert.Equal(t, "json", gotFormat)
	assert.Equal(t, "general", gotCategories)
	assert.Equal(t, "month", gotTimeRange)

	require.Len(t, results, 2)
	assert.Equal(t, "Guide", results[0].Title)
	assert.Equal(t, "bing", results[0].Engine)

	// Missing fields get type-appropriate defaults, never a rejection.
	assert.Equal(t, "", results[1].Title)
	assert.Equal(t, "", results[1].Content)
	assert.Equal(t, "unknown", results[1].Engine)
}

func TestProviderAbsentResultsKeyIsEmpty(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{}`)
	}))
	defer ts.Close()

	p := &HTTPProvider{BaseURL: ts.URL, Client: ts.Client()}
	results, err := p.Search(context.Background(), "anything", types.SearchOptions{})
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestProviderTruncatesToResultCount(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"results":[{"url":"https://1"},{"url":"https://2"},{"url":"https://3"}]}`)
	}))
	defer ts.Close()

	p := &HTTPProvider{BaseURL: ts.URL, Client: ts.Client()}
	results, err := p.Search(context.Background(), "q", types.SearchOptions{ResultCount: 2})
	require.NoError(t, err)
	assert.Len(t, results, 2)
}

func TestProviderNon200IsError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer ts.Close()

	p := &HTTPProvider{BaseURL: ts.URL, Client: ts.Client()}
	_, err := p.Search(context.Background(), "q", types.SearchOptions{})
	assert.Error(t, err)
}

func TestProviderBadBodyIsError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, "<html>not json</html>")
	}))
	defer ts.Close()

	p := &HTTPProvider{BaseURL: ts.URL, Client: ts.Client()}
	_, err := p.Search(context.Background(), "q", types.SearchOptions{})
	assert.Error(t, err)
}

// --- gateway ---

type stubProvider struct {
	calls   int32
	results []types.SearchResult
	failFor int32 // fail the first N calls
}

func (s *stubProvider) Name() string { return "stub" }

func (s *stubProvider) Search(_ context.Context, _ string, _ types.SearchOptions) ([]types.SearchResult, error) {
	n := atomic.AddInt32(&s.calls, 1)
	if n <= s.failFor {
		return nil, fmt.Errorf("transient failure %d", n)
	}
	return s.results, nil
}

func TestGatewayCachesFetches(t *testing.T) {
	stub := &stubProvider{results: []types.SearchResult{{Title: "A", URL: "https://a"}}}
	g := NewGateway(stub, newTestCache(t), testSearchCfg(), io.Discard)

	first := g.Search(context.Background(), "same probe", types.SearchOptions{})
	second := g.Search(context.Background(), "same probe", types.SearchOptions{})

	assert.Equal(t, first, second)
	assert.Equal(t, int32(1), atomic.LoadInt32(&stub.calls), "second lookup must hit the cache")
}

func TestGatewayRetriesThenSucceeds(t *testing.T) {
	stub := &stubProvider{
		results: []types.SearchResult{{Title: "A", URL: "https://a"}},
		failFor: 2,
	}
	g := NewGateway(stub, newTestCache(t), testSearchCfg(), io.Discard)

	results := g.Search(context.Background(), "flaky probe", types.SearchOptions{})
	assert.Len(t, results, 1)
	assert.Equal(t, int32(3), atomic.LoadInt32(&stub.calls))
}

func TestGatewayDegradesToEmpty(t *testing.T) {
	stub := &stubProvider{failFor: 100}
	g := NewGateway(stub, newTestCache(t), testSearchCfg(), io.Discard)

	results := g.Search(context.Background(), "doomed probe", types.SearchOptions{})
	assert.Empty(t, results, "exhausted retries must degrade, not fail")
	assert.Equal(t, int32(3), atomic.LoadInt32(&stub.calls), "1 attempt + 2 retries")
}

func TestGatewayCancelledContext(t *testing.T) {
	stub := &stubProvider{failFor: 100}
	g := NewGateway(stub, newTestCache(t), testSearchCfg(), io.Discard)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	results := g.Search(ctx, "cancelled probe", types.SearchOptions{})
	assert.Empty(t, results)
}

func TestDedupByURL(t *testing.T) {
	in := []types.SearchResult{
		{Title: "A", URL: "https://a"},
		{Title: "B", URL: "https://b"},
		{Title: "A again", URL: "https://a"},
	}
	out := DedupByURL(in)
	require.Len(t, out, 2)
	assert.Equal(t, "A", out[0].Title)
	assert.Equal(t, "B", out[1].Title)
}
