// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package evaluate

import (
	"context"
	"fmt"
	"math"

	"github.com/pdiddy/content-screener/internal/search"
	"github.com/pdiddy/content-screener/internal/similarity"
	"github.com/pdiddy/content-screener/pkg/types"
)

// Originality recommendation thresholds, applied to the similarity score.
const (
	originalityProceedBelow = 30
	originalitySkipFrom     = 60
)

// CheckOriginality searches for content overlapping the input and scores how
// original it is. Input too short to yield any probe phrase short-circuits to
// a neutral verdict without touching the network.
func (s *Stages) CheckOriginality(ctx context.Context, content string) types.OriginalityResult {
	phrases := similarity.KeyPhrases(content, 3)
	if len(phrases) == 0 {
		return types.OriginalityResult{
			OriginalityScore: 50,
			SimilarityScore:  0,
			Recommendation:   types.RecommendCaution,
		}
	}

	var evidence []types.SearchResult
	for _, phrase := range phrases {
		results := s.gw.Search(ctx, fmt.Sprintf("%q", phrase), types.SearchOptions{
			ResultCount: s.cfg.OriginalityResults,
			TimeRange:   "month",
		})
		evidence = append(evidence, results...)
	}
	evidence = search.DedupByURL(evidence)

	similarContent, maxSim := scoreEvidence(content, evidence, similarity.WeightedBlend)

	similarityScore := int(math.Round(maxSim * 100))
	originalityScore := 100 - similarityScore
	if originalityScore < 0 {
		originalityScore = 0
	}

	var recommendation types.Recommendation
	switch {
	case similarityScore < originalityProceedBelow:
		recommendation = types.RecommendProceed
	case similarityScore < originalitySkipFrom:
		recommendation = types.RecommendCaution
	default:
		recommendation = types.RecommendSkip
	}

	fmt.Fprintf(s.progress, "originality: %d probes, %d evidence items, similarity %d/100\n",
		len(phrases), len(evidence), similarityScore)

	return types.OriginalityResult{
		OriginalityScore: originalityScore,
		SimilarityScore:  similarityScore,
		SimilarContent:   similarContent,
		Recommendation:   recommendation,
	}
}
