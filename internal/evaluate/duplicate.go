// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package evaluate

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/pdiddy/content-screener/internal/search"
	"github.com/pdiddy/content-screener/internal/similarity"
	"github.com/pdiddy/content-screener/pkg/types"
)

// keywordProbeResults is the result count for each keyword probe; the probes
// only widen the evidence pool, so they stay small.
const keywordProbeResults = 3

// CheckDuplicate searches for existing skills similar to the given name or
// description and estimates the duplicate risk. A blank input short-circuits
// to a no-risk verdict without network I/O.
func (s *Stages) CheckDuplicate(ctx context.Context, name string) types.DuplicateResult {
	if strings.TrimSpace(name) == "" {
		return types.DuplicateResult{
			DifferentiationSuggestions: []string{"No similar skills found; safe to continue"},
		}
	}

	evidence := s.gw.Search(ctx, name+" skill", types.SearchOptions{
		ResultCount: s.cfg.DuplicateResults,
	})

	keywords := similarity.Keywords(name, 3)
	for _, kw := range keywords {
		results := s.gw.Search(ctx, fmt.Sprintf("%q AI tool automation", kw), types.SearchOptions{
			ResultCount: keywordProbeResults,
		})
		evidence = append(evidence, results...)
	}
	evidence = search.DedupByURL(evidence)

	similarSkills, maxSim := scoreEvidence(name, evidence, similarity.MeanBlend)

	duplicateRisk := int(math.Round(maxSim * 100))
	isDuplicate := maxSim > s.cfg.SimilarityThreshold

	fmt.Fprintf(s.progress, "duplicate: %d evidence items, risk %d%%\n",
		len(evidence), duplicateRisk)

	return types.DuplicateResult{
		IsDuplicate:                isDuplicate,
		DuplicateRisk:              duplicateRisk,
		SimilarSkills:              similarSkills,
		DifferentiationSuggestions: differentiate(name, similarSkills),
	}
}

// differentiate derives suggestions by comparing the input's keywords with
// the keywords found across similar evidence titles. Input keywords absent
// from that union are surfaced as unique angles.
func differentiate(name string, similarSkills []types.SimilarItem) []string {
	if len(similarSkills) == 0 {
		return []string{"No similar skills found; safe to continue"}
	}

	existing := make(map[string]struct{})
	for _, item := range similarSkills {
		for _, kw := range similarity.Keywords(item.Title, 3) {
			existing[kw] = struct{}{}
		}
	}

	var unique []string
	for _, kw := range similarity.Keywords(name, 10) {
		if _, ok := existing[kw]; !ok {
			unique = append(unique, kw)
		}
	}

	var suggestions []string
	if len(unique) > 0 {
		if len(unique) > 3 {
			unique = unique[:3]
		}
		suggestions = append(suggestions, "Unique angle: "+strings.Join(unique, ", "))
	} else {
		suggestions = append(suggestions, "Consider targeting a more specific scenario or use case")
	}

	suggestions = append(suggestions,
		"Add more detailed steps or parameter guidance",
		"Provide worked examples or sample output",
	)
	return suggestions
}
