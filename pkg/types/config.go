package types

import "time"

// HTTPConfig holds shared HTTP settings for components that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout (default 30s).
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "content-screener/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// SearchConfig holds settings for the search gateway.
type SearchConfig struct {
	HTTPConfig `yaml:",inline"`

	// BaseURL is the search service endpoint (e.g. "http://localhost:8080").
	BaseURL string `json:"base_url" yaml:"base_url"`

	// Language is the default search language (default "auto").
	Language string `json:"language" yaml:"language"`

	// Retries is the number of additional attempts after a failed fetch (default 2).
	Retries int `json:"retries" yaml:"retries"`

	// RequestsPerSecond caps the outbound request rate (default 2).
	RequestsPerSecond float64 `json:"requests_per_second" yaml:"requests_per_second"`

	// APIKey is an optional bearer token for the search service.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`
}

// CacheConfig holds settings for the search result cache.
type CacheConfig struct {
	// Dir is the cache directory; one JSON file per cache key.
	Dir string `json:"dir" yaml:"dir"`

	// TTL is how long a cached entry stays valid (default 24h).
	TTL time.Duration `json:"ttl" yaml:"ttl"`
}

// StageConfig holds tuning knobs for the three evaluation stages.
type StageConfig struct {
	// OriginalityResults is the result count per originality probe (default 5).
	OriginalityResults int `json:"originality_results" yaml:"originality_results"`

	// QualityResults is the result count per quality search (default 8).
	QualityResults int `json:"quality_results" yaml:"quality_results"`

	// DuplicateResults is the result count for the duplicate web search (default 5).
	DuplicateResults int `json:"duplicate_results" yaml:"duplicate_results"`

	// MinRelevance filters quality evidence below this score (default 0.3).
	MinRelevance float64 `json:"min_relevance" yaml:"min_relevance"`

	// SimilarityThreshold marks content as duplicate above this value (default 0.6).
	SimilarityThreshold float64 `json:"similarity_threshold" yaml:"similarity_threshold"`
}

// Thresholds holds the score-distribution targets that trigger re-weighting.
type Thresholds struct {
	// TargetAverage is the desired batch mean score (default 65).
	TargetAverage float64 `json:"target_average" yaml:"target_average"`

	// MinAverage triggers the lowAverage strategy below it (default 60).
	MinAverage float64 `json:"min_average" yaml:"min_average"`

	// MaxAverage triggers the highAverage strategy above it (default 75).
	MaxAverage float64 `json:"max_average" yaml:"max_average"`

	// HighQualityTarget is the desired share of B+-or-better items, in percent (default 15).
	HighQualityTarget float64 `json:"high_quality_target" yaml:"high_quality_target"`

	// MinHighQuality triggers the lowHighQuality strategy below it (default 10).
	MinHighQuality float64 `json:"min_high_quality" yaml:"min_high_quality"`

	// MaxHighQuality is the upper bound of the acceptable high-quality share (default 25).
	MaxHighQuality float64 `json:"max_high_quality" yaml:"max_high_quality"`
}

// ControllerConfig holds settings for the adaptive weight controller.
type ControllerConfig struct {
	// WeightsPath is the live YAML weight file, rewritten atomically on adjust.
	WeightsPath string `json:"weights_path" yaml:"weights_path"`

	// HistoryPath is the append-only JSONL weight-history ledger.
	HistoryPath string `json:"history_path" yaml:"history_path"`

	// ReportsDir receives the per-run markdown reports.
	ReportsDir string `json:"reports_dir" yaml:"reports_dir"`

	// ScoresPath is the batch evaluation results JSON consumed by a run.
	ScoresPath string `json:"scores_path" yaml:"scores_path"`

	Thresholds Thresholds `json:"thresholds" yaml:"thresholds"`
}

// PipelineConfig groups all component configurations.
type PipelineConfig struct {
	Search     SearchConfig     `json:"search" yaml:"search"`
	Cache      CacheConfig      `json:"cache" yaml:"cache"`
	Stages     StageConfig      `json:"stages" yaml:"stages"`
	Controller ControllerConfig `json:"controller" yaml:"controller"`
}

// Defaults returns a PipelineConfig with every knob at its default value.
func Defaults() PipelineConfig {
	return PipelineConfig{
		Search: SearchConfig{
			HTTPConfig: HTTPConfig{
				Timeout:   30 * time.Second,
				UserAgent: "content-screener/0.1",
			},
			BaseURL:           "http://localhost:8080",
			Language:          "auto",
			Retries:           2,
			RequestsPerSecond: 2,
		},
		Cache: CacheConfig{
			Dir: "data/search-cache",
			TTL: 24 * time.Hour,
		},
		Stages: StageConfig{
			OriginalityResults:  5,
			QualityResults:      8,
			DuplicateResults:    5,
			MinRelevance:        0.3,
			SimilarityThreshold: 0.6,
		},
		Controller: ControllerConfig{
			WeightsPath: "config/scoring-weights.yaml",
			HistoryPath: "reports/auto-scoring/history/weight-history.jsonl",
			ReportsDir:  "reports/auto-scoring",
			ScoresPath:  "reports/quality-evaluation-results.json",
			Thresholds: Thresholds{
				TargetAverage:     65,
				MinAverage:        60,
				MaxAverage:        75,
				HighQualityTarget: 15,
				MinHighQuality:    10,
				MaxHighQuality:    25,
			},
		},
	}
}
