package extractive

import (
	"math"
	"slices"
	"testing"
)

const scoreTolerance = 1e-12

func TestWordScores(t *testing.T) {
	scores := WordScores([]string{"a", "a", "b"})

	if len(scores) != 2 {
		t.Fatalf("expected 2 scored tokens, got %d", len(scores))
	}

	if want := (1 + math.Log(3)) / 3; math.Abs(scores["a"]-want) > scoreTolerance {
		t.Fatalf("unexpected score for a: got %v want %v", scores["a"], want)
	}

	if want := (1 + math.Log(2)) / 3; math.Abs(scores["b"]-want) > scoreTolerance {
		t.Fatalf("unexpected score for b: got %v want %v", scores["b"], want)
	}
}

func TestWordScoresEmpty(t *testing.T) {
	if scores := WordScores(nil); len(scores) != 0 {
		t.Fatalf("expected no scores, got %v", scores)
	}
}

func TestSentenceScoreNormalizesBySquareRootLength(t *testing.T) {
	scores := map[string]float64{"x": 1, "y": 1}

	if got := sentenceScore("x y x y", scores); math.Abs(got-2) > scoreTolerance {
		t.Fatalf("unexpected sentence score: %v", got)
	}

	if got := sentenceScore("...", scores); got != 0 {
		t.Fatalf("expected zero score for sentence without tokens, got %v", got)
	}

	if got := sentenceScore("unknown words", scores); got != 0 {
		t.Fatalf("expected zero score for unscored tokens, got %v", got)
	}
}

func TestSelectTopSentencesKeepsSourceOrder(t *testing.T) {
	sentences := []string{"alpha beta.", "gamma gamma gamma.", "delta."}
	scores := WordScores(Tokenize("alpha beta. gamma gamma gamma. delta."))

	got := SelectTopSentences(sentences, scores, 2)
	want := []string{"alpha beta.", "gamma gamma gamma."}
	if !slices.Equal(got, want) {
		t.Fatalf("unexpected selection: got %q want %q", got, want)
	}

	got = SelectTopSentences(sentences, scores, 1)
	if !slices.Equal(got, []string{"gamma gamma gamma."}) {
		t.Fatalf("unexpected top sentence: %q", got)
	}
}

func TestSelectTopSentencesTiesKeepEarlierSentences(t *testing.T) {
	sentences := []string{"A.", "B.", "C.", "D."}
	scores := WordScores(Tokenize("A. B. C. D."))

	got := SelectTopSentences(sentences, scores, 2)
	if !slices.Equal(got, []string{"A.", "B."}) {
		t.Fatalf("unexpected selection: %q", got)
	}
}

func TestSelectTopSentencesLimits(t *testing.T) {
	sentences := []string{"one.", "two."}
	scores := WordScores(Tokenize("one. two."))

	if got := SelectTopSentences(sentences, scores, 0); len(got) != 0 {
		t.Fatalf("expected no sentences for k=0, got %q", got)
	}

	if got := SelectTopSentences(sentences, scores, -3); len(got) != 0 {
		t.Fatalf("expected no sentences for negative k, got %q", got)
	}

	if got := SelectTopSentences(sentences, scores, 10); !slices.Equal(got, sentences) {
		t.Fatalf("expected every sentence when k exceeds count, got %q", got)
	}

	if got := SelectTopSentences(nil, scores, 3); len(got) != 0 {
		t.Fatalf("expected no sentences for empty input, got %q", got)
	}
}

func TestSelectTopSentencesSelectsByPosition(t *testing.T) {
	sentences := []string{"Same here.", "Other words here.", "Same here."}
	scores := WordScores(Tokenize("Same here. Other words here. Same here."))

	got := SelectTopSentences(sentences, scores, 1)
	if !slices.Equal(got, []string{"Same here."}) {
		t.Fatalf("expected a single occurrence, got %q", got)
	}

	got = SelectTopSentences(sentences, scores, 2)
	if !slices.Equal(got, []string{"Same here.", "Same here."}) {
		t.Fatalf("expected both duplicate occurrences, got %q", got)
	}
}
