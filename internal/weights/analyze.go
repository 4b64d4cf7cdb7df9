// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package weights implements the adaptive scoring feedback loop: it analyzes
// the score distribution of a batch evaluation run, decides whether the
// weighted scoring configuration should change, applies a named strategy, and
// records every cycle in an append-only history ledger.
package weights

import (
	"fmt"
	"math"
	"time"

	"github.com/pdiddy/content-screener/pkg/types"
)

// grades in descending cutoff order.
var gradeCutoffs = []struct {
	grade  string
	cutoff float64
}{
	{"A+", 90},
	{"A", 85},
	{"B+", 80},
	{"B", 70},
	{"C+", 60},
	{"C", 50},
}

// highQualityGrades are the buckets counted toward the high-quality share.
var highQualityGrades = map[string]struct{}{"A+": {}, "A": {}, "B+": {}}

// GradeFor buckets a score into a letter grade. The cutoffs form a total,
// non-overlapping partition of [0,100]: a score of exactly 85 is an A, and
// 89.999 stays an A rather than rounding up.
func GradeFor(score float64) string {
	for _, g := range gradeCutoffs {
		if score >= g.cutoff {
			return g.grade
		}
	}
	return "D"
}

// Analyze summarizes the score distribution of one batch. An empty batch is
// an error: there is nothing to decide from.
func Analyze(batch []types.ItemScore, now time.Time) (types.AnalysisRecord, error) {
	if len(batch) == 0 {
		return types.AnalysisRecord{}, fmt.Errorf("empty evaluation batch")
	}

	total := len(batch)
	sum := 0.0
	grades := make(map[string]int)
	highQuality := 0
	dimSums := make(map[string]float64, len(types.Dimensions))

	for _, item := range batch {
		sum += item.TotalScore

		grade := GradeFor(item.TotalScore)
		grades[grade]++
		if _, ok := highQualityGrades[grade]; ok {
			highQuality++
		}

		for _, dim := range types.Dimensions {
			dimSums[dim] += item.Dimensions[dim]
		}
	}

	dimAverages := make(map[string]float64, len(types.Dimensions))
	for _, dim := range types.Dimensions {
		dimAverages[dim] = round1(dimSums[dim] / float64(total))
	}

	return types.AnalysisRecord{
		Timestamp:          now,
		Total:              total,
		AverageScore:       round1(sum / float64(total)),
		GradeDistribution:  grades,
		HighQualityCount:   highQuality,
		HighQualityPercent: round1(float64(highQuality) / float64(total) * 100),
		DimensionAverages:  dimAverages,
	}, nil
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
