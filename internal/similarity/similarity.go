// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package similarity scores text-to-text overlap and extracts probe phrases
// and keywords from input content. All functions are pure and perform no I/O.
package similarity

import "strings"

// minTokenLen is the shortest token that participates in scoring. Shorter
// tokens are mostly articles and particles that inflate overlap.
const minTokenLen = 3

// Tokenize lowercases the text, splits it on whitespace, and returns the set
// of tokens longer than two characters.
func Tokenize(text string) map[string]struct{} {
	tokens := make(map[string]struct{})
	for _, w := range strings.Fields(strings.ToLower(text)) {
		if len(w) >= minTokenLen {
			tokens[w] = struct{}{}
		}
	}
	return tokens
}

// Score returns the Jaccard overlap of the two texts' token sets, a value in
// [0,1]. When either side has no qualifying tokens the score is 0, never NaN.
// Score is symmetric, and a non-degenerate text scores 1.0 against itself.
func Score(a, b string) float64 {
	setA := Tokenize(a)
	setB := Tokenize(b)
	if len(setA) == 0 || len(setB) == 0 {
		return 0
	}

	intersection := 0
	for tok := range setA {
		if _, ok := setB[tok]; ok {
			intersection++
		}
	}
	union := len(setA) + len(setB) - intersection
	return float64(intersection) / float64(union)
}

// Weight factors for blending title and content similarity in the
// originality check. Content carries more signal than the title.
const (
	ContentWeight = 0.6
	TitleWeight   = 0.4
)

// WeightedBlend combines title and content similarity using the originality
// weights (content 0.6, title 0.4).
func WeightedBlend(titleSim, contentSim float64) float64 {
	return titleSim*TitleWeight + contentSim*ContentWeight
}

// MeanBlend combines title and content similarity as a simple mean, used by
// the duplicate check.
func MeanBlend(titleSim, contentSim float64) float64 {
	return (titleSim + contentSim) / 2
}
