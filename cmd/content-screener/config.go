// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/viper"

	"github.com/pdiddy/content-screener/internal/cache"
	"github.com/pdiddy/content-screener/internal/evaluate"
	"github.com/pdiddy/content-screener/internal/httputil"
	"github.com/pdiddy/content-screener/internal/search"
	"github.com/pdiddy/content-screener/pkg/types"
)

// pipelineConfig merges defaults with any values from the config file and
// environment.
func pipelineConfig() types.PipelineConfig {
	cfg := types.Defaults()

	if v := viper.GetString("search.base_url"); v != "" {
		cfg.Search.BaseURL = v
	}
	if v := viper.GetDuration("search.timeout"); v > 0 {
		cfg.Search.Timeout = v
	}
	if v := viper.GetString("search.user_agent"); v != "" {
		cfg.Search.UserAgent = v
	}
	if v := viper.GetString("search.language"); v != "" {
		cfg.Search.Language = v
	}
	if viper.IsSet("search.retries") {
		cfg.Search.Retries = viper.GetInt("search.retries")
	}
	if v := viper.GetFloat64("search.requests_per_second"); v > 0 {
		cfg.Search.RequestsPerSecond = v
	}
	cfg.Search.APIKey = secretDefault("search-api-key", viper.GetString("search.api_key"))

	if v := viper.GetString("cache.dir"); v != "" {
		cfg.Cache.Dir = v
	}
	if v := viper.GetDuration("cache.ttl"); v > 0 {
		cfg.Cache.TTL = v
	}

	if v := viper.GetInt("stages.originality_results"); v > 0 {
		cfg.Stages.OriginalityResults = v
	}
	if v := viper.GetInt("stages.quality_results"); v > 0 {
		cfg.Stages.QualityResults = v
	}
	if v := viper.GetInt("stages.duplicate_results"); v > 0 {
		cfg.Stages.DuplicateResults = v
	}
	if v := viper.GetFloat64("stages.min_relevance"); v > 0 {
		cfg.Stages.MinRelevance = v
	}
	if v := viper.GetFloat64("stages.similarity_threshold"); v > 0 {
		cfg.Stages.SimilarityThreshold = v
	}

	if v := viper.GetString("controller.weights_path"); v != "" {
		cfg.Controller.WeightsPath = v
	}
	if v := viper.GetString("controller.history_path"); v != "" {
		cfg.Controller.HistoryPath = v
	}
	if v := viper.GetString("controller.reports_dir"); v != "" {
		cfg.Controller.ReportsDir = v
	}
	if v := viper.GetString("controller.scores_path"); v != "" {
		cfg.Controller.ScoresPath = v
	}
	if v := viper.GetFloat64("controller.thresholds.min_average"); v > 0 {
		cfg.Controller.Thresholds.MinAverage = v
	}
	if v := viper.GetFloat64("controller.thresholds.max_average"); v > 0 {
		cfg.Controller.Thresholds.MaxAverage = v
	}
	if v := viper.GetFloat64("controller.thresholds.min_high_quality"); v > 0 {
		cfg.Controller.Thresholds.MinHighQuality = v
	}

	return cfg
}

// newStages wires the cache, provider, and gateway into a Stages instance.
// Progress lines go to stderr so stdout stays parseable.
func newStages(cfg types.PipelineConfig) (*evaluate.Stages, error) {
	c, err := cache.New(cfg.Cache, os.Stderr)
	if err != nil {
		return nil, fmt.Errorf("initializing cache: %w", err)
	}

	provider := &search.HTTPProvider{
		BaseURL:   cfg.Search.BaseURL,
		Client:    httputil.NewClient(cfg.Search.HTTPConfig),
		UserAgent: cfg.Search.UserAgent,
		APIKey:    cfg.Search.APIKey,
	}
	gw := search.NewGateway(provider, c, cfg.Search, os.Stderr)

	return evaluate.NewStages(gw, cfg.Stages, os.Stderr), nil
}
