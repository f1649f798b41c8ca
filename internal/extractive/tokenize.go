package extractive

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const minSentenceRunes = 2

var (
	wordRe = regexp.MustCompile(`[A-Za-z0-9']+`)

	// Input is whitespace-normalized before matching, so a single space is enough.
	sentenceBoundaryRe = regexp.MustCompile(`[.!?] `)
)

// Tokenize returns the lowercase word tokens of text in order of appearance.
func Tokenize(text string) []string {
	matches := wordRe.FindAllString(text, -1)
	tokens := make([]string, 0, len(matches))
	for _, m := range matches {
		tokens = append(tokens, strings.ToLower(m))
	}

	return tokens
}

// SplitSentences splits text at sentence-ending punctuation followed by whitespace.
// The punctuation stays with the preceding sentence and fragments shorter than
// two runes are dropped.
func SplitSentences(text string) []string {
	normalized := strings.Join(strings.Fields(text), " ")
	if normalized == "" {
		return []string{}
	}

	var sentences []string
	appendPiece := func(piece string) {
		piece = strings.TrimSpace(piece)
		if utf8.RuneCountInString(piece) < minSentenceRunes {
			return
		}
		sentences = append(sentences, piece)
	}

	start := 0
	for _, loc := range sentenceBoundaryRe.FindAllStringIndex(normalized, -1) {
		appendPiece(normalized[start : loc[0]+1])
		start = loc[1]
	}
	appendPiece(normalized[start:])

	if sentences == nil {
		return []string{}
	}

	return sentences
}
