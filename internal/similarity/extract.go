// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package similarity

import "strings"

// Extraction limits for probe derivation.
const (
	// maxPhraseWords caps each key phrase at its sentence's first six words.
	maxPhraseWords = 6

	// minPhraseWords is the shortest word span that still makes a useful
	// search probe.
	minPhraseWords = 3

	// minSentenceLen skips sentence fragments too short to carry a phrase.
	minSentenceLen = 10

	// minKeywordLen is the shortest word treated as a keyword.
	minKeywordLen = 5
)

// stopwords are common words excluded from keyword extraction.
var stopwords = map[string]struct{}{
	"the": {}, "and": {}, "with": {}, "from": {}, "this": {}, "that": {}, "have": {},
}

// KeyPhrases extracts up to count sentence-leading word spans from text, for
// use as quoted search probes. Sentences are split on '.', '!' and '?';
// fragments of ten characters or fewer are skipped, and each phrase is the
// sentence's first six words (requiring at least three). A degenerate text
// yields an empty slice, which callers treat as "no probes, no I/O".
func KeyPhrases(text string, count int) []string {
	if count <= 0 {
		count = 3
	}

	var phrases []string
	for _, sentence := range splitSentences(text) {
		sentence = strings.TrimSpace(sentence)
		if len(sentence) <= minSentenceLen {
			continue
		}
		words := strings.Fields(sentence)
		if len(words) < minPhraseWords {
			continue
		}
		if len(words) > maxPhraseWords {
			words = words[:maxPhraseWords]
		}
		phrases = append(phrases, strings.Join(words, " "))
		if len(phrases) >= count {
			break
		}
	}
	return phrases
}

// Keywords extracts up to count distinct lowercase words longer than four
// characters, stopword-filtered, in first-seen order.
func Keywords(text string, count int) []string {
	if count <= 0 {
		count = 5
	}

	seen := make(map[string]struct{})
	var keywords []string
	for _, w := range strings.Fields(strings.ToLower(text)) {
		if len(w) < minKeywordLen {
			continue
		}
		if _, stop := stopwords[w]; stop {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		keywords = append(keywords, w)
		if len(keywords) >= count {
			break
		}
	}
	return keywords
}

// splitSentences breaks text on terminal punctuation. It deliberately keeps
// the rule simple: probe extraction only needs sentence-leading spans, not a
// full sentence segmenter.
func splitSentences(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	})
}
