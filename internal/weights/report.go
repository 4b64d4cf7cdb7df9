// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package weights

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pdiddy/content-screener/pkg/types"
)

// gradeRanges annotates the distribution table.
var gradeRanges = map[string]string{
	"A+": "90-100", "A": "85-89", "B+": "80-84", "B": "70-79",
	"C+": "60-69", "C": "50-59", "D": "0-49",
}

// reportGrades is the fixed row order of the distribution table.
var reportGrades = []string{"A+", "A", "B+", "B", "C+", "C", "D"}

// BuildReport renders the markdown run report: batch summary, current
// weights, grade distribution, targets versus actuals, dimension averages,
// and the adjustment decision with the full reasons list, even when only
// the first-matched strategy was applied.
func (c *Controller) BuildReport(analysis types.AnalysisRecord, current types.WeightConfig, decision types.Decision) string {
	var b strings.Builder
	th := c.cfg.Thresholds

	fmt.Fprintf(&b, "# Auto-Scoring Report\n\n")
	fmt.Fprintf(&b, "- Generated: %s\n", analysis.Timestamp.Format(time.RFC3339))
	fmt.Fprintf(&b, "- Items evaluated: %d\n", analysis.Total)
	fmt.Fprintf(&b, "- Average score: %.1f\n", analysis.AverageScore)
	fmt.Fprintf(&b, "- High quality (B+ and above): %.1f%% (%d items)\n\n", analysis.HighQualityPercent, analysis.HighQualityCount)

	fmt.Fprintf(&b, "## Current Weights\n\n")
	fmt.Fprintf(&b, "| Dimension | Weight |\n|---|---|\n")
	for _, dim := range types.Dimensions {
		fmt.Fprintf(&b, "| %s | %.0f%% |\n", dim, current.Get(dim)*100)
	}

	fmt.Fprintf(&b, "\n## Grade Distribution\n\n")
	fmt.Fprintf(&b, "| Grade | Range | Count | Share |\n|---|---|---|---|\n")
	for _, grade := range reportGrades {
		count := analysis.GradeDistribution[grade]
		share := float64(count) / float64(analysis.Total) * 100
		fmt.Fprintf(&b, "| %s | %s | %d | %.1f%% |\n", grade, gradeRanges[grade], count, share)
	}

	fmt.Fprintf(&b, "\n## Targets vs Actual\n\n")
	fmt.Fprintf(&b, "| Metric | Target | Actual | Status |\n|---|---|---|---|\n")
	avgOK := analysis.AverageScore >= th.MinAverage && analysis.AverageScore <= th.MaxAverage
	hqOK := analysis.HighQualityPercent >= th.MinHighQuality
	fmt.Fprintf(&b, "| Average score | %.0f | %.1f | %s |\n", th.TargetAverage, analysis.AverageScore, status(avgOK))
	fmt.Fprintf(&b, "| High-quality share | %.0f%% | %.1f%% | %s |\n", th.HighQualityTarget, analysis.HighQualityPercent, status(hqOK))

	fmt.Fprintf(&b, "\n## Dimension Averages\n\n")
	fmt.Fprintf(&b, "| Dimension | Average |\n|---|---|\n")
	for _, dim := range types.Dimensions {
		fmt.Fprintf(&b, "| %s | %.1f / 100 |\n", dim, analysis.DimensionAverages[dim])
	}

	fmt.Fprintf(&b, "\n## Adjustment Decision\n\n")
	if decision.ShouldAdjust {
		fmt.Fprintf(&b, "Weights adjusted using strategy `%s`.\n\nReasons:\n", decision.Strategy)
		for _, r := range decision.Reasons {
			fmt.Fprintf(&b, "- %s\n", r)
		}
		if target, err := StrategyWeights(decision.Strategy); err == nil {
			fmt.Fprintf(&b, "\nNew weights:\n")
			for _, dim := range types.Dimensions {
				delta := (target.Get(dim) - current.Get(dim)) * 100
				fmt.Fprintf(&b, "- %s: %.2f (%+.0f%%)\n", dim, target.Get(dim), delta)
			}
		}
	} else {
		fmt.Fprintf(&b, "Weights unchanged: average score within %.0f-%.0f and high-quality share at or above %.0f%%.\n",
			th.MinAverage, th.MaxAverage, th.MinHighQuality)
	}

	fmt.Fprintf(&b, "\n## Recent History\n\n")
	history, err := c.LoadHistory()
	if err != nil || len(history) == 0 {
		fmt.Fprintf(&b, "(no prior cycles)\n")
		return b.String()
	}
	if len(history) > 5 {
		history = history[len(history)-5:]
	}
	// Newest first.
	for i := len(history) - 1; i >= 0; i-- {
		entry := history[i]
		fmt.Fprintf(&b, "- %s: average %.1f, high quality %.1f%%",
			entry.Timestamp.Format(time.RFC3339), entry.Analysis.AverageScore, entry.Analysis.HighQualityPercent)
		if entry.Decision.Adjusted {
			fmt.Fprintf(&b, ", adjusted (%s)\n", entry.Decision.Strategy)
		} else {
			fmt.Fprintf(&b, ", unchanged\n")
		}
	}
	return b.String()
}

func status(ok bool) string {
	if ok {
		return "ok"
	}
	return "off target"
}

// writeReport renders and stores the run report under the reports directory.
func (c *Controller) writeReport(analysis types.AnalysisRecord, current types.WeightConfig, decision types.Decision) (string, error) {
	if err := os.MkdirAll(c.cfg.ReportsDir, 0o755); err != nil {
		return "", fmt.Errorf("creating reports directory: %w", err)
	}
	name := fmt.Sprintf("auto-scoring-report-%d.md", analysis.Timestamp.UnixMilli())
	path := filepath.Join(c.cfg.ReportsDir, name)

	report := c.BuildReport(analysis, current, decision)
	if err := os.WriteFile(path, []byte(report), 0o644); err != nil {
		return "", fmt.Errorf("writing report: %w", err)
	}
	c.log.WithField("path", path).Info("report written")
	return path, nil
}
