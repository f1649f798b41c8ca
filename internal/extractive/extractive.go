// Package extractive implements the offline summarizer: frequency scored
// sentences picked from the source text, plus insights and keywords derived
// from the same pass.
//
// Every function here is pure and safe for concurrent use.
package extractive

import (
	"strings"

	"textdigest/internal/domain"
)

// Summarize builds a result from text. Negative limits are treated as zero.
func Summarize(text string, maxSentences int, insightsN int) domain.Result {
	maxSentences = max(maxSentences, 0)
	insightsN = max(insightsN, 0)

	sentences := SplitSentences(text)
	tokens := Tokenize(text)
	scores := WordScores(tokens)

	summary := SelectTopSentences(sentences, scores, maxSentences)

	return domain.Result{
		Summary:       strings.Join(summary, " "),
		KeyInsights:   ExtractInsights(sentences, summary, insightsN),
		TopKeywords:   ExtractKeywords(tokens, DefaultTopKeywords),
		SentenceCount: len(sentences),
		WordCount:     len(tokens),
	}
}
