// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdiddy/content-screener/internal/evaluate"
)

// stageEnvelope is the JSON wrapper printed by every check command.
type stageEnvelope struct {
	Stage     string `json:"stage"`
	Timestamp string `json:"timestamp"`
	Input     string `json:"input"`
	Results   any    `json:"results"`
}

// outputResult prints the envelope as compact JSON, or indented when the
// format is "pretty".
func outputResult(stage, input string, results any, format string) error {
	env := stageEnvelope{
		Stage:     stage,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Input:     input,
		Results:   results,
	}

	var (
		data []byte
		err  error
	)
	switch format {
	case "pretty":
		data, err = json.MarshalIndent(env, "", "  ")
	case "json":
		data, err = json.Marshal(env)
	default:
		return fmt.Errorf("unknown output format %q (want json or pretty)", format)
	}
	if err != nil {
		return fmt.Errorf("encoding result: %w", err)
	}
	fmt.Fprintln(os.Stdout, string(data))
	return nil
}

// runCheck wires a stage function into a cobra RunE. Zero search results are
// not an error: the stage degrades to its no-evidence defaults and the
// command exits 0.
func runCheck(stage string, fn func(ctx context.Context, s *evaluate.Stages, input string) any) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		input := args[0]
		format, _ := cmd.Flags().GetString("output")

		stages, err := newStages(pipelineConfig())
		if err != nil {
			return err
		}

		return outputResult(stage, input, fn(cmd.Context(), stages, input), format)
	}
}

var checkOriginalityCmd = &cobra.Command{
	Use:   "check-originality <text>",
	Short: "Score how original a piece of content is",
	Long: `Check-originality derives probe phrases from the text, searches for
overlapping content published in the last month, and scores originality from
the highest weighted similarity found. Recommendations: proceed (similarity
below 30), caution (30-59), or skip (60 and above).`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck("check-originality", func(ctx context.Context, s *evaluate.Stages, input string) any {
		return s.CheckOriginality(ctx, input)
	}),
}

var qualityAugmentCmd = &cobra.Command{
	Use:   "quality-augment <topic>",
	Short: "Gather background material and best practices for a topic",
	Long: `Quality-augment searches for guides, tutorials, and best practices on the
topic, filters out low-relevance or trivial results, and emits advisory
strings describing how well supported the topic is.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck("quality-augment", func(ctx context.Context, s *evaluate.Stages, input string) any {
		return s.QualityAugment(ctx, input)
	}),
}

var checkDuplicateCmd = &cobra.Command{
	Use:   "check-duplicate <name>",
	Short: "Estimate the risk that a skill duplicates an existing one",
	Long: `Check-duplicate searches for existing skills similar to the given name or
description, scores the overlap, and suggests differentiation angles when the
risk is high.`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck("check-duplicate", func(ctx context.Context, s *evaluate.Stages, input string) any {
		return s.CheckDuplicate(ctx, input)
	}),
}

var fullPipelineCmd = &cobra.Command{
	Use:   "full-pipeline <content>",
	Short: "Run all three checks and aggregate a publish recommendation",
	Long: `Full-pipeline runs the originality, quality, and duplicate checks
concurrently and combines them into an overall score:
originality*0.4 + quality*0.3 + uniqueness*0.3. Recommendations: proceed
(70 and above), review (50-69), or reject (below 50).`,
	Args: cobra.ExactArgs(1),
	RunE: runCheck("full-pipeline", func(ctx context.Context, s *evaluate.Stages, input string) any {
		return s.RunPipeline(ctx, input)
	}),
}

func init() {
	for _, cmd := range []*cobra.Command{checkOriginalityCmd, qualityAugmentCmd, checkDuplicateCmd, fullPipelineCmd} {
		cmd.Flags().StringP("output", "o", "json", "output format: json or pretty")
		rootCmd.AddCommand(cmd)
	}
}
