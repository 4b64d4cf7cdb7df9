// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package evaluate

import (
	"context"
	"fmt"
	"math"
	"strings"
	"sync"

	"github.com/pdiddy/content-screener/internal/similarity"
	"github.com/pdiddy/content-screener/pkg/types"
)

// Overall score weights for the full pipeline. This aggregation is distinct
// from the per-item scoring weights managed by the weight controller; the two
// must not be conflated.
const (
	originalityWeight = 0.4
	qualityWeight     = 0.3
	uniquenessWeight  = 0.3
)

// Full-pipeline recommendation thresholds on the overall score.
const (
	proceedFrom = 70
	reviewFrom  = 50
)

// RunPipeline executes the three checks concurrently and aggregates them
// into one verdict. The stages are independent: each issues its own gateway
// calls under its own cache keys, so the fan-out shares no mutable state.
func (s *Stages) RunPipeline(ctx context.Context, content string) types.PipelineResult {
	topic := strings.Join(similarity.Keywords(content, 2), " ")

	var (
		originality types.OriginalityResult
		quality     types.QualityAugmentResult
		duplicate   types.DuplicateResult
	)

	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		originality = s.CheckOriginality(ctx, content)
	}()
	go func() {
		defer wg.Done()
		quality = s.QualityAugment(ctx, topic)
	}()
	go func() {
		defer wg.Done()
		duplicate = s.CheckDuplicate(ctx, content)
	}()
	wg.Wait()

	overall := overallScore(originality, quality, duplicate)

	var recommendation types.Recommendation
	switch {
	case overall >= proceedFrom:
		recommendation = types.RecommendProceed
	case overall >= reviewFrom:
		recommendation = types.RecommendReview
	default:
		recommendation = types.RecommendReject
	}

	fmt.Fprintf(s.progress, "pipeline: overall %d/100, recommendation %s\n", overall, recommendation)

	return types.PipelineResult{
		Originality:    originality,
		Quality:        quality,
		Duplicate:      duplicate,
		OverallScore:   overall,
		Recommendation: recommendation,
	}
}

// overallScore is the fixed weighted sum of the three stage scores. The
// quality contribution rewards evidence volume: 10 points per background
// item plus 5 per best practice, capped at 100.
func overallScore(o types.OriginalityResult, q types.QualityAugmentResult, d types.DuplicateResult) int {
	qualityScore := float64(10*len(q.BackgroundInfo) + 5*len(q.BestPractices))
	if qualityScore > 100 {
		qualityScore = 100
	}
	uniquenessScore := float64(100 - d.DuplicateRisk)

	return int(math.Round(
		float64(o.OriginalityScore)*originalityWeight +
			qualityScore*qualityWeight +
			uniquenessScore*uniquenessWeight,
	))
}
