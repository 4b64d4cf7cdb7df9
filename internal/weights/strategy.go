// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package weights

import (
	"fmt"

	"github.com/pdiddy/content-screener/pkg/types"
)

// Strategy names.
const (
	StrategyLowAverage     = "lowAverage"
	StrategyHighAverage    = "highAverage"
	StrategyLowHighQuality = "lowHighQuality"
	StrategyDefault        = "default"
)

// strategies maps each strategy name to its target weight table.
var strategies = map[string]types.WeightConfig{
	// Average too low: shift weight toward utility.
	StrategyLowAverage: {
		Utility:      0.40,
		Innovation:   0.20,
		Completeness: 0.15,
		Engagement:   0.15,
		Influence:    0.10,
	},
	// Average too high: damp engagement, reward influence.
	StrategyHighAverage: {
		Utility:      0.35,
		Innovation:   0.20,
		Completeness: 0.20,
		Engagement:   0.10,
		Influence:    0.15,
	},
	// Too few high-quality items: boost utility and innovation.
	StrategyLowHighQuality: {
		Utility:      0.40,
		Innovation:   0.25,
		Completeness: 0.15,
		Engagement:   0.10,
		Influence:    0.10,
	},
	StrategyDefault: {
		Utility:      0.35,
		Innovation:   0.20,
		Completeness: 0.20,
		Engagement:   0.15,
		Influence:    0.10,
	},
}

// StrategyWeights returns the weight table for a named strategy.
func StrategyWeights(name string) (types.WeightConfig, error) {
	w, ok := strategies[name]
	if !ok {
		return types.WeightConfig{}, fmt.Errorf("unknown strategy %q", name)
	}
	return w, nil
}

// Decide evaluates the analysis against the thresholds and selects at most
// one strategy, in priority order: lowAverage, highAverage, lowHighQuality.
// Every triggered condition is recorded in Reasons, but only the
// first-matched strategy is applied. Simultaneous reasons do not compose;
// the selection is strictly priority-ordered and the ignored reason remains
// visible in the decision record and the report.
func Decide(a types.AnalysisRecord, th types.Thresholds) types.Decision {
	var reasons []string
	strategy := ""

	if a.AverageScore < th.MinAverage {
		reasons = append(reasons, fmt.Sprintf("average score too low (%.1f < %.0f)", a.AverageScore, th.MinAverage))
		strategy = StrategyLowAverage
	} else if a.AverageScore > th.MaxAverage {
		reasons = append(reasons, fmt.Sprintf("average score too high (%.1f > %.0f)", a.AverageScore, th.MaxAverage))
		strategy = StrategyHighAverage
	}

	if a.HighQualityPercent < th.MinHighQuality {
		reasons = append(reasons, fmt.Sprintf("high-quality share too low (%.1f%% < %.0f%%)", a.HighQualityPercent, th.MinHighQuality))
		if strategy == "" {
			strategy = StrategyLowHighQuality
		}
	}

	if strategy == "" {
		strategy = StrategyDefault
	}

	return types.Decision{
		ShouldAdjust: len(reasons) > 0,
		Reasons:      reasons,
		Strategy:     strategy,
	}
}
