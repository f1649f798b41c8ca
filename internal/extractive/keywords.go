package extractive

import (
	"cmp"
	"slices"
	"unicode/utf8"
)

const (
	DefaultTopKeywords = 10

	minKeywordRunes = 4
)

// ExtractKeywords returns up to topN of the most frequent tokens longer than
// three characters. Ties go to the token seen first.
func ExtractKeywords(tokens []string, topN int) []string {
	if topN <= 0 {
		return []string{}
	}

	type keyword struct {
		word  string
		count int
	}

	var ordered []keyword
	positions := make(map[string]int)
	for _, t := range tokens {
		if utf8.RuneCountInString(t) < minKeywordRunes {
			continue
		}

		if i, ok := positions[t]; ok {
			ordered[i].count++
			continue
		}

		positions[t] = len(ordered)
		ordered = append(ordered, keyword{word: t, count: 1})
	}

	slices.SortStableFunc(ordered, func(a, b keyword) int {
		return cmp.Compare(b.count, a.count)
	})

	keywords := make([]string, 0, min(topN, len(ordered)))
	for _, k := range ordered[:min(topN, len(ordered))] {
		keywords = append(keywords, k.word)
	}

	return keywords
}
