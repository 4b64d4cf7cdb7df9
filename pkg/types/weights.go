// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// Dimensions lists the five scoring dimensions in canonical order.
var Dimensions = []string{"utility", "innovation", "completeness", "engagement", "influence"}

// WeightConfig maps the five scoring dimensions to their weights. The weights
// are expected to sum to 1.0; downstream scoring assumes but does not verify
// this, so the controller warns when the sum drifts.
type WeightConfig struct {
	Utility      float64 `json:"utility" yaml:"utility"`
	Innovation   float64 `json:"innovation" yaml:"innovation"`
	Completeness float64 `json:"completeness" yaml:"completeness"`
	Engagement   float64 `json:"engagement" yaml:"engagement"`
	Influence    float64 `json:"influence" yaml:"influence"`
}

// Get returns the weight for a named dimension, or 0 for unknown names.
func (w WeightConfig) Get(dim string) float64 {
	switch dim {
	case "utility":
		return w.Utility
	case "innovation":
		return w.Innovation
	case "completeness":
		return w.Completeness
	case "engagement":
		return w.Engagement
	case "influence":
		return w.Influence
	}
	return 0
}

// Sum returns the total of all five weights.
func (w WeightConfig) Sum() float64 {
	return w.Utility + w.Innovation + w.Completeness + w.Engagement + w.Influence
}

// ItemScore is one element of a batch evaluation run: a total score plus its
// per-dimension sub-scores, all on a 0-100 scale.
type ItemScore struct {
	ID         string             `json:"id,omitempty"`
	TotalScore float64            `json:"totalScore"`
	Dimensions map[string]float64 `json:"scores"`
}

// AnalysisRecord summarizes the score distribution of one batch evaluation
// run. Produced once per run; immutable.
type AnalysisRecord struct {
	Timestamp time.Time `json:"timestamp"`

	// Total is the number of items in the batch.
	Total int `json:"total"`

	AverageScore float64 `json:"averageScore"`

	// GradeDistribution maps grade (A+ .. D) to item count.
	GradeDistribution map[string]int `json:"gradeDistribution"`

	// HighQualityCount is the number of items graded B+ or better.
	HighQualityCount int `json:"highQualityCount"`

	// HighQualityPercent is HighQualityCount as a percentage of Total.
	HighQualityPercent float64 `json:"highQualityPercent"`

	// DimensionAverages maps each dimension to its mean sub-score.
	DimensionAverages map[string]float64 `json:"dimensionAverages"`
}

// Decision records whether and why the controller chose to re-weight.
type Decision struct {
	ShouldAdjust bool `json:"shouldAdjust"`

	// Reasons lists every triggered condition, even when only the
	// first-matched strategy is applied.
	Reasons []string `json:"reasons"`

	// Strategy names the weight table selected ("default" when none).
	Strategy string `json:"strategy"`

	// Adjusted is true once the new weights were persisted.
	Adjusted bool `json:"adjusted"`
}

// WeightHistoryEntry is one line of the append-only weight-history ledger.
// Ledger line order equals chronological order; entries are never rewritten.
type WeightHistoryEntry struct {
	EntryID        string         `json:"entryId"`
	Timestamp      time.Time      `json:"timestamp"`
	Analysis       AnalysisRecord `json:"analysis"`
	CurrentWeights WeightConfig   `json:"currentWeights"`
	Decision       Decision       `json:"decision"`
	NewWeights     *WeightConfig  `json:"newWeights,omitempty"`
}
