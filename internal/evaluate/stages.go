// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package evaluate runs the three content checks (originality, quality
// augmentation, duplicate detection) and aggregates them into a pipeline
// verdict. Each stage follows the same protocol: derive probe queries from
// the input, gather evidence through the search gateway, score the evidence
// by token overlap, and classify the headline score into a recommendation.
package evaluate

import (
	"io"
	"sort"

	"github.com/pdiddy/content-screener/internal/search"
	"github.com/pdiddy/content-screener/internal/similarity"
	"github.com/pdiddy/content-screener/pkg/types"
)

// minEvidenceSimilarity is the floor below which an evidence item carries no
// signal and is dropped from the scored list.
const minEvidenceSimilarity = 0.1

// topEvidence caps the similar-content list returned by a stage.
const topEvidence = 5

// Stages runs the three evaluation checks against one search gateway. The
// checks share no mutable state and may run concurrently; each issues its
// own gateway calls under its own cache keys.
type Stages struct {
	gw       *search.Gateway
	cfg      types.StageConfig
	progress io.Writer
}

// NewStages returns a Stages bound to the gateway. A nil progress writer
// discards progress lines.
func NewStages(gw *search.Gateway, cfg types.StageConfig, progress io.Writer) *Stages {
	if cfg.OriginalityResults <= 0 {
		cfg.OriginalityResults = 5
	}
	if cfg.QualityResults <= 0 {
		cfg.QualityResults = 8
	}
	if cfg.DuplicateResults <= 0 {
		cfg.DuplicateResults = 5
	}
	if cfg.MinRelevance <= 0 {
		cfg.MinRelevance = 0.3
	}
	if cfg.SimilarityThreshold <= 0 {
		cfg.SimilarityThreshold = 0.6
	}
	if progress == nil {
		progress = io.Discard
	}
	return &Stages{gw: gw, cfg: cfg, progress: progress}
}

// scoreEvidence computes a blended similarity between the input and each
// evidence item, drops items below the signal floor, and returns the top
// items by similarity (descending) together with the maximum similarity.
func scoreEvidence(input string, evidence []types.SearchResult, blend func(titleSim, contentSim float64) float64) ([]types.SimilarItem, float64) {
	var scored []types.SimilarItem
	maxSim := 0.0

	for _, item := range evidence {
		titleSim := similarity.Score(input, item.Title)
		contentSim := similarity.Score(input, item.Content)
		blended := blend(titleSim, contentSim)
		if blended <= minEvidenceSimilarity {
			continue
		}
		scored = append(scored, types.SimilarItem{
			Title:      item.Title,
			URL:        item.URL,
			Similarity: blended,
		})
		if blended > maxSim {
			maxSim = blended
		}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Similarity > scored[j].Similarity
	})
	if len(scored) > topEvidence {
		scored = scored[:topEvidence]
	}
	return scored, maxSim
}
