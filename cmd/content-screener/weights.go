// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/pdiddy/content-screener/internal/weights"
	"github.com/pdiddy/content-screener/pkg/types"
)

var weightsCmd = &cobra.Command{
	Use:   "weights",
	Short: "Manage the adaptive scoring weights",
	Long: `Weights drives the scoring feedback loop. A run analyzes the latest batch
of evaluation scores, re-weights the scoring configuration when the score
distribution drifts outside its targets, and appends the cycle to the
weight-history ledger.`,
}

func newController() *weights.Controller {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006/01/02 15:04:05",
	})
	return weights.NewController(pipelineConfig().Controller, log)
}

// --- run subcommand ---

var weightsRunCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one full analyze-decide-apply-record cycle",
	Long: `Run reads the batch evaluation results, analyzes the score distribution,
applies a weight-adjustment strategy when a threshold is breached, appends the
cycle to the ledger, and writes a markdown report. Apply assumes a single
writer; serialize overlapping scheduled runs externally.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		summary, err := newController().Run()
		if err != nil {
			return err
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(summary)
	},
}

// --- analyze subcommand ---

var weightsAnalyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze the batch scores and print the decision without applying it",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := pipelineConfig().Controller

		data, err := os.ReadFile(cfg.ScoresPath)
		if err != nil {
			return fmt.Errorf("reading evaluation results: %w", err)
		}
		var batch []types.ItemScore
		if err := json.Unmarshal(data, &batch); err != nil {
			return fmt.Errorf("parsing evaluation results: %w", err)
		}

		analysis, err := weights.Analyze(batch, time.Now().UTC())
		if err != nil {
			return err
		}
		decision := weights.Decide(analysis, cfg.Thresholds)

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(struct {
			Analysis any `json:"analysis"`
			Decision any `json:"decision"`
		}{analysis, decision})
	},
}

// --- history subcommand ---

var weightsHistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "Print recent weight-history ledger entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		history, err := newController().LoadHistory()
		if err != nil {
			return err
		}
		if limit > 0 && len(history) > limit {
			history = history[len(history)-limit:]
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(history)
	},
}

// --- show subcommand ---

var weightsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the current weight configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		w, err := newController().LoadWeights()
		if err != nil {
			return err
		}

		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(w)
	},
}

func init() {
	weightsHistoryCmd.Flags().Int("limit", 5, "number of most recent entries to print")

	weightsCmd.AddCommand(weightsRunCmd, weightsAnalyzeCmd, weightsHistoryCmd, weightsShowCmd)
	rootCmd.AddCommand(weightsCmd)
}
