// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Recommendation is the categorical verdict of an evaluation stage or of the
// full pipeline.
type Recommendation string

const (
	// RecommendProceed means the content looks publishable as-is.
	RecommendProceed Recommendation = "proceed"

	// RecommendCaution means the content overlaps existing material and
	// should be reviewed before publishing.
	RecommendCaution Recommendation = "caution"

	// RecommendSkip means the content is too close to existing material.
	RecommendSkip Recommendation = "skip"

	// RecommendReview is the mid-tier full-pipeline verdict.
	RecommendReview Recommendation = "review"

	// RecommendReject is the failing full-pipeline verdict.
	RecommendReject Recommendation = "reject"
)

// SimilarItem is an evidence item annotated with its similarity to the input.
type SimilarItem struct {
	Title      string  `json:"title"`
	URL        string  `json:"url"`
	Similarity float64 `json:"relevance"`
}

// OriginalityResult is the outcome of the originality check.
type OriginalityResult struct {
	// OriginalityScore is round(100 * (1 - maxSimilarity)), clamped to [0,100].
	OriginalityScore int `json:"originalityScore"`

	// SimilarityScore is round(100 * maxSimilarity).
	SimilarityScore int `json:"similarityScore"`

	// SimilarContent holds the top 5 evidence items by weighted similarity.
	SimilarContent []SimilarItem `json:"similarContent"`

	Recommendation Recommendation `json:"recommendation"`
}

// QualityAugmentResult is the outcome of the quality augmentation stage.
type QualityAugmentResult struct {
	// BackgroundInfo holds guide/tutorial results passing the quality filter.
	BackgroundInfo []SearchResult `json:"backgroundInfo"`

	// BestPractices holds best-practice results passing the quality filter.
	BestPractices []SearchResult `json:"bestPractices"`

	// QualityAssessment lists advisory strings derived from the evidence.
	QualityAssessment []string `json:"qualityAssessment"`
}

// DuplicateResult is the outcome of the duplicate check.
type DuplicateResult struct {
	// IsDuplicate is true when the duplicate risk exceeds the similarity
	// threshold.
	IsDuplicate bool `json:"isDuplicate"`

	// DuplicateRisk is round(100 * maxSimilarity).
	DuplicateRisk int `json:"duplicateRisk"`

	// SimilarSkills holds the top 5 evidence items by combined similarity.
	SimilarSkills []SimilarItem `json:"similarSkills"`

	DifferentiationSuggestions []string `json:"differentiationSuggestions"`
}

// PipelineResult aggregates the three stage results into one verdict.
type PipelineResult struct {
	Originality OriginalityResult    `json:"originality"`
	Quality     QualityAugmentResult `json:"quality"`
	Duplicate   DuplicateResult      `json:"duplicate"`

	// OverallScore is the weighted sum of the three stage scores.
	OverallScore int `json:"overallScore"`

	Recommendation Recommendation `json:"recommendation"`
}
