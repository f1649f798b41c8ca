package extractive

import (
	"cmp"
	"math"
	"slices"
)

// WordScores maps each distinct token to (1 + ln(1 + count)) / total.
func WordScores(tokens []string) map[string]float64 {
	freq := make(map[string]int, len(tokens))
	for _, t := range tokens {
		freq[t]++
	}

	total := float64(max(len(tokens), 1))

	scores := make(map[string]float64, len(freq))
	for w, c := range freq {
		scores[w] = (1 + math.Log1p(float64(c))) / total
	}

	return scores
}

func sentenceScore(sentence string, scores map[string]float64) float64 {
	tokens := Tokenize(sentence)
	if len(tokens) == 0 {
		return 0
	}

	var sum float64
	for _, t := range tokens {
		sum += scores[t]
	}

	return sum / math.Sqrt(float64(len(tokens)))
}

// SelectTopSentences picks the k highest scoring sentences and returns them in
// their original order. Equal scores keep their relative source order.
func SelectTopSentences(sentences []string, scores map[string]float64, k int) []string {
	selected := selectTopIndexes(sentences, scores, k)

	top := make([]string, 0, len(selected))
	for i, s := range sentences {
		if selected[i] {
			top = append(top, s)
		}
	}

	return top
}

func selectTopIndexes(sentences []string, scores map[string]float64, k int) map[int]bool {
	if k <= 0 || len(sentences) == 0 {
		return map[int]bool{}
	}

	type ranked struct {
		index int
		score float64
	}

	ranking := make([]ranked, len(sentences))
	for i, s := range sentences {
		ranking[i] = ranked{index: i, score: sentenceScore(s, scores)}
	}

	slices.SortStableFunc(ranking, func(a, b ranked) int {
		return cmp.Compare(b.score, a.score)
	})

	selected := make(map[int]bool, min(k, len(ranking)))
	for _, r := range ranking[:min(k, len(ranking))] {
		selected[r.index] = true
	}

	return selected
}
