// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package evaluate

import (
	"context"
	"fmt"
	"strings"

	"github.com/pdiddy/content-screener/pkg/types"
)

// minContentLen filters out evidence snippets too short to be useful.
const minContentLen = 50

// briefContentLen marks a background reference as too brief to rely on.
const briefContentLen = 100

// QualityAugment gathers background material and best practices for a topic
// and derives advisory strings from what was found. An empty topic yields an
// assessment over zero evidence without any network I/O.
func (s *Stages) QualityAugment(ctx context.Context, topic string) types.QualityAugmentResult {
	var background, practices []types.SearchResult

	if strings.TrimSpace(topic) != "" {
		opts := types.SearchOptions{
			ResultCount: s.cfg.QualityResults,
			TimeRange:   "year",
		}
		background = s.filterEvidence(s.gw.Search(ctx, topic+" guide tutorial best practices", opts))
		practices = s.filterEvidence(s.gw.Search(ctx, topic+" best practices examples", opts))
	}

	assessment := assessQuality(background, practices)

	fmt.Fprintf(s.progress, "quality: %d background, %d best-practice items\n",
		len(background), len(practices))

	return types.QualityAugmentResult{
		BackgroundInfo:    background,
		BestPractices:     practices,
		QualityAssessment: assessment,
	}
}

// filterEvidence drops results with trivial snippets or a relevance score
// below the configured minimum.
func (s *Stages) filterEvidence(results []types.SearchResult) []types.SearchResult {
	var kept []types.SearchResult
	for _, r := range results {
		if len(r.Content) > minContentLen && r.Score >= s.cfg.MinRelevance {
			kept = append(kept, r)
		}
	}
	return kept
}

// assessQuality applies the advisory rules in order; each rule appends
// independently.
func assessQuality(background, practices []types.SearchResult) []string {
	var advice []string

	if len(background) == 0 {
		advice = append(advice, "No relevant background information found; add supporting sources")
	} else {
		advice = append(advice, "Sufficient background information found")
	}

	switch {
	case len(practices) >= 3:
		advice = append(advice, "Multiple best-practice sources referenced; content quality looks solid")
	case len(practices) > 0:
		advice = append(advice, "Consider adding more best-practice examples")
	default:
		advice = append(advice, "No relevant best practices found; research the topic further")
	}

	for _, r := range background {
		if len(r.Content) < briefContentLen {
			advice = append(advice, "Some references are brief; look for more detailed sources")
			break
		}
	}

	return advice
}
