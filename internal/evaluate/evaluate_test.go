package evaluate

import (
	"context"
	"io"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/content-screener/internal/cache"
	"github.com/pdiddy/content-screener/internal/search"
	"github.com/pdiddy/content-screener/pkg/types"
)

// stubProvider returns the same canned results for every probe query.
type stubProvider struct {
	calls   int32
	results []types.SearchResult
}

func (s *stubProvider) Name() string { return "stub" }

func (s *stubProvider) Search(_ context.Context, _ string, _ types.SearchOptions) ([]types.SearchResult, error) {
	atomic.AddInt32(&s.calls, 1)
	return s.results, nil
}

func newTestStages(t *testing.T, provider search.Provider) *Stages {
	t.Helper()
	c, err := cache.New(types.CacheConfig{Dir: t.TempDir(), TTL: time.Hour}, io.Discard)
	require.NoError(t, err)
	gw := search.NewGateway(provider, c, types.SearchConfig{
		Retries:           0,
		RequestsPerSecond: 1000,
	}, io.Discard)
	return NewStages(gw, types.StageConfig{}, io.Discard)
}

// --- originality ---

func TestCheckOriginalityDegenerateInput(t *testing.T) {
	stub := &stubProvider{}
	s := newTestStages(t, stub)

	got := s.CheckOriginality(context.Background(), "hi")

	assert.Equal(t, 50, got.OriginalityScore)
	assert.Equal(t, 0, got.SimilarityScore)
	assert.Equal(t, types.RecommendCaution, got.Recommendation)
	assert.Empty(t, got.SimilarContent)
	assert.Equal(t, int32(0), atomic.LoadInt32(&stub.calls), "degenerate input must not hit the network")
}

func TestCheckOriginalityNoEvidence(t *testing.T) {
	s := newTestStages(t, &stubProvider{})

	got := s.CheckOriginality(context.Background(), "Create stunning AI images with text prompts.")

	assert.Equal(t, 100, got.OriginalityScore)
	assert.Equal(t, 0, got.SimilarityScore)
	assert.Equal(t, types.RecommendProceed, got.Recommendation)
}

func TestCheckOriginalityIdenticalEvidence(t *testing.T) {
	content := "Generate beautiful artwork using diffusion models today."
	stub := &stubProvider{results: []types.SearchResult{
		{Title: content, URL: "https://copy", Content: content},
	}}
	s := newTestStages(t, stub)

	got := s.CheckOriginality(context.Background(), content)

	assert.Equal(t, 100, got.SimilarityScore)
	assert.Equal(t, 0, got.OriginalityScore)
	assert.Equal(t, types.RecommendSkip, got.Recommendation)
	require.Len(t, got.SimilarContent, 1)
	assert.Equal(t, "https://copy", got.SimilarContent[0].URL)
}

func TestCheckOriginalityPartialOverlapIsCaution(t *testing.T) {
	content := "alpha beta gamma delta epsilon"
	// Title matches exactly, content carries no signal: weighted similarity
	// is the 0.4 title factor, landing in the caution band.
	stub := &stubProvider{results: []types.SearchResult{
		{Title: "alpha beta gamma delta epsilon", URL: "https://partial", Content: ""},
	}}
	s := newTestStages(t, stub)

	got := s.CheckOriginality(context.Background(), content)

	assert.Equal(t, 40, got.SimilarityScore)
	assert.Equal(t, 60, got.OriginalityScore)
	assert.Equal(t, types.RecommendCaution, got.Recommendation)
}

// --- quality ---

func TestQualityAugmentFiltersAndAssesses(t *testing.T) {
	long := strings.Repeat("useful reference text ", 4) // > 50 chars, < 100
	stub := &stubProvider{results: []types.SearchResult{
		{Title: "Kept", URL: "https://kept", Content: long, Score: 0.5},
		{Title: "Too short", URL: "https://short", Content: "tiny", Score: 0.9},
		{Title: "Low relevance", URL: "https://low", Content: long, Score: 0.1},
	}}
	s := newTestStages(t, stub)

	got := s.QualityAugment(context.Background(), "prompt engineering")

	require.Len(t, got.BackgroundInfo, 1)
	require.Len(t, got.BestPractices, 1)

	require.Len(t, got.QualityAssessment, 3)
	assert.Contains(t, got.QualityAssessment[0], "Sufficient background")
	assert.Contains(t, got.QualityAssessment[1], "more best-practice examples")
	assert.Contains(t, got.QualityAssessment[2], "brief")
}

func TestQualityAugmentNoEvidence(t *testing.T) {
	s := newTestStages(t, &stubProvider{})

	got := s.QualityAugment(context.Background(), "some obscure topic")

	assert.Empty(t, got.BackgroundInfo)
	assert.Empty(t, got.BestPractices)
	require.Len(t, got.QualityAssessment, 2)
	assert.Contains(t, got.QualityAssessment[0], "No relevant background")
	assert.Contains(t, got.QualityAssessment[1], "research the topic further")
}

func TestQualityAugmentEmptyTopicNoIO(t *testing.T) {
	stub := &stubProvider{}
	s := newTestStages(t, stub)

	s.QualityAugment(context.Background(), "   ")
	assert.Equal(t, int32(0), atomic.LoadInt32(&stub.calls))
}

// --- duplicate ---

func TestCheckDuplicateNoEvidence(t *testing.T) {
	s := newTestStages(t, &stubProvider{})

	got := s.CheckDuplicate(context.Background(), "Image Generator Skill")

	assert.False(t, got.IsDuplicate)
	assert.Equal(t, 0, got.DuplicateRisk)
	require.NotEmpty(t, got.DifferentiationSuggestions)
	assert.Contains(t, got.DifferentiationSuggestions[0], "No similar skills found")
}

func TestCheckDuplicateIdenticalSkill(t *testing.T) {
	name := "Image Generator Skill"
	stub := &stubProvider{results: []types.SearchResult{
		{Title: name, URL: "https://dup", Content: name},
	}}
	s := newTestStages(t, stub)

	got := s.CheckDuplicate(context.Background(), name)

	assert.True(t, got.IsDuplicate)
	assert.Equal(t, 100, got.DuplicateRisk)
	require.Len(t, got.SimilarSkills, 1)

	// Every input keyword appears in the similar title, so no unique angle.
	assert.Contains(t, got.DifferentiationSuggestions[0], "more specific scenario")
}

func TestCheckDuplicateUniqueAngle(t *testing.T) {
	stub := &stubProvider{results: []types.SearchResult{
		{Title: "Image Generator Skill", URL: "https://near", Content: "generate images from prompts automatically"},
	}}
	s := newTestStages(t, stub)

	got := s.CheckDuplicate(context.Background(), "Image Generator Skill for watercolor portraits")

	require.NotEmpty(t, got.DifferentiationSuggestions)
	assert.Contains(t, got.DifferentiationSuggestions[0], "Unique angle")
	assert.Contains(t, got.DifferentiationSuggestions[0], "watercolor")
}

func TestCheckDuplicateBlankInputNoIO(t *testing.T) {
	stub := &stubProvider{}
	s := newTestStages(t, stub)

	got := s.CheckDuplicate(context.Background(), "  ")
	assert.False(t, got.IsDuplicate)
	assert.Equal(t, int32(0), atomic.LoadInt32(&stub.calls))
}

// --- pipeline ---

func TestRunPipelineZeroEvidence(t *testing.T) {
	s := newTestStages(t, &stubProvider{})

	got := s.RunPipeline(context.Background(), "Create stunning AI images with text prompts")

	assert.Equal(t, 100, got.Originality.OriginalityScore)
	assert.False(t, got.Duplicate.IsDuplicate)

	// 100*0.4 + 0*0.3 + 100*0.3 = 70: proceed on zero-evidence defaults.
	assert.Equal(t, 70, got.OverallScore)
	assert.Equal(t, types.RecommendProceed, got.Recommendation)
}

func TestOverallScore(t *testing.T) {
	quality := types.QualityAugmentResult{
		BackgroundInfo: make([]types.SearchResult, 4),
		BestPractices:  make([]types.SearchResult, 2),
	}

	tests := []struct {
		name string
		o    types.OriginalityResult
		q    types.QualityAugmentResult
		d    types.DuplicateResult
		want int
	}{
		{
			"mixed evidence",
			types.OriginalityResult{OriginalityScore: 80},
			quality, // 4*10 + 2*5 = 50
			types.DuplicateResult{DuplicateRisk: 20},
			int(80*0.4 + 50*0.3 + 80*0.3), // 71
		},
		{
			"quality capped at 100",
			types.OriginalityResult{OriginalityScore: 0},
			types.QualityAugmentResult{BackgroundInfo: make([]types.SearchResult, 20)},
			types.DuplicateResult{DuplicateRisk: 100},
			30,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, overallScore(tt.o, tt.q, tt.d))
		})
	}
}
