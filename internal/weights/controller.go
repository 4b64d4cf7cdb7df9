// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package weights

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/content-screener/pkg/types"
)

// Controller owns the live weight configuration and its history ledger. It
// is the only component allowed to mutate the WeightConfig; everything else
// treats the weights as read-only. Apply is single-writer: overlapping runs
// against the same files must be serialized externally.
type Controller struct {
	cfg types.ControllerConfig
	log *logrus.Logger
}

// NewController returns a Controller. A nil logger falls back to the logrus
// standard logger.
func NewController(cfg types.ControllerConfig, log *logrus.Logger) *Controller {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Controller{cfg: cfg, log: log}
}

// LoadWeights reads and validates the live weight file. An unparsable file
// or a missing dimension key is fatal: the run must abort before mutating
// anything, because partial weight state would silently corrupt future
// scoring. A weight sum away from 1.0 only warns; downstream scoring assumes
// but does not verify the invariant.
func (c *Controller) LoadWeights() (types.WeightConfig, error) {
	data, err := os.ReadFile(c.cfg.WeightsPath)
	if err != nil {
		return types.WeightConfig{}, fmt.Errorf("reading weight config: %w", err)
	}

	var raw map[string]float64
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return types.WeightConfig{}, fmt.Errorf("parsing weight config %s: %w", c.cfg.WeightsPath, err)
	}

	var w types.WeightConfig
	for _, dim := range types.Dimensions {
		v, ok := raw[dim]
		if !ok {
			return types.WeightConfig{}, fmt.Errorf("weight config %s missing key %q", c.cfg.WeightsPath, dim)
		}
		if v < 0 {
			return types.WeightConfig{}, fmt.Errorf("weight config %s: %s is negative", c.cfg.WeightsPath, dim)
		}
		switch dim {
		case "utility":
			w.Utility = v
		case "innovation":
			w.Innovation = v
		case "completeness":
			w.Completeness = v
		case "engagement":
			w.Engagement = v
		case "influence":
			w.Influence = v
		}
	}

	if sum := w.Sum(); math.Abs(sum-1.0) > 0.001 {
		c.log.WithField("sum", sum).Warn("weight sum drifts from 1.0; downstream scoring assumes it")
	}
	return w, nil
}

// saveWeights persists the config atomically: write to a temp file in the
// same directory, then rename over the live path. A crash mid-write leaves
// the previous config intact.
func (c *Controller) saveWeights(w types.WeightConfig) error {
	data, err := yaml.Marshal(w)
	if err != nil {
		return fmt.Errorf("encoding weight config: %w", err)
	}

	dir := filepath.Dir(c.cfg.WeightsPath)
	tmp, err := os.CreateTemp(dir, ".weights-*.yaml")
	if err != nil {
		return fmt.Errorf("creating temp weight file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("writing temp weight file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp weight file: %w", err)
	}
	if err := os.Rename(tmpPath, c.cfg.WeightsPath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replacing weight config: %w", err)
	}
	return nil
}

// Apply switches the live configuration to the named strategy's weight
// table. The current file is copied to a .backup path first; there is no
// rollback state, so reverting means restoring that backup.
func (c *Controller) Apply(strategy string) (types.WeightConfig, error) {
	w, err := StrategyWeights(strategy)
	if err != nil {
		return types.WeightConfig{}, err
	}

	if err := c.backupWeights(); err != nil {
		return types.WeightConfig{}, err
	}
	if err := c.saveWeights(w); err != nil {
		return types.WeightConfig{}, err
	}

	c.log.WithFields(logrus.Fields{
		"strategy": strategy,
		"weights":  w,
	}).Info("weights updated")
	return w, nil
}

func (c *Controller) backupWeights() error {
	data, err := os.ReadFile(c.cfg.WeightsPath)
	if err != nil {
		return fmt.Errorf("reading weight config for backup: %w", err)
	}
	backupPath := c.cfg.WeightsPath + ".backup"
	if err := os.WriteFile(backupPath, data, 0o644); err != nil {
		return fmt.Errorf("writing weight backup: %w", err)
	}
	c.log.WithField("path", backupPath).Info("weight config backed up")
	return nil
}

// RunSummary is the outcome of one controller cycle.
type RunSummary struct {
	Analysis   types.AnalysisRecord `json:"analysis"`
	Decision   types.Decision       `json:"decision"`
	NewWeights *types.WeightConfig  `json:"newWeights,omitempty"`
	ReportPath string               `json:"reportPath"`
}

// Run executes one full feedback cycle: load the batch scores, analyze the
// distribution, decide, apply the selected strategy when triggered, append
// the ledger entry, and write the markdown report. The decision is not
// treated as applied unless the ledger append succeeds, keeping the audit
// trail consistent with reality.
func (c *Controller) Run() (RunSummary, error) {
	batch, err := c.loadScores()
	if err != nil {
		return RunSummary{}, err
	}

	analysis, err := Analyze(batch, time.Now().UTC())
	if err != nil {
		return RunSummary{}, err
	}
	c.log.WithFields(logrus.Fields{
		"total":        analysis.Total,
		"average":      analysis.AverageScore,
		"high_quality": analysis.HighQualityPercent,
	}).Info("batch analysis complete")

	// Validate the live config before any mutation.
	current, err := c.LoadWeights()
	if err != nil {
		return RunSummary{}, err
	}

	decision := Decide(analysis, c.cfg.Thresholds)

	var newWeights *types.WeightConfig
	if decision.ShouldAdjust {
		c.log.WithField("reasons", decision.Reasons).Warn("weight adjustment triggered")
		applied, err := c.Apply(decision.Strategy)
		if err != nil {
			return RunSummary{}, err
		}
		decision.Adjusted = true
		newWeights = &applied
	} else {
		c.log.Info("weights performing well, no adjustment")
	}

	entry := types.WeightHistoryEntry{
		EntryID:        uuid.NewString(),
		Timestamp:      analysis.Timestamp,
		Analysis:       analysis,
		CurrentWeights: current,
		Decision:       decision,
		NewWeights:     newWeights,
	}
	if err := c.AppendHistory(entry); err != nil {
		return RunSummary{}, err
	}

	reportPath, err := c.writeReport(analysis, current, decision)
	if err != nil {
		return RunSummary{}, err
	}

	return RunSummary{
		Analysis:   analysis,
		Decision:   decision,
		NewWeights: newWeights,
		ReportPath: reportPath,
	}, nil
}

// loadScores reads the batch evaluation results consumed by a cycle.
func (c *Controller) loadScores() ([]types.ItemScore, error) {
	data, err := os.ReadFile(c.cfg.ScoresPath)
	if err != nil {
		return nil, fmt.Errorf("reading evaluation results: %w", err)
	}
	var batch []types.ItemScore
	if err := json.Unmarshal(data, &batch); err != nil {
		return nil, fmt.Errorf("parsing evaluation results %s: %w", c.cfg.ScoresPath, err)
	}
	return batch, nil
}
