package extractive

import (
	"slices"
	"testing"
)

func TestExtractInsightsPrefersSummaryAndDeduplicates(t *testing.T) {
	sentences := []string{"First point.", "Second point.", "first point.", "Third point."}
	summary := []string{"Second point."}

	got := ExtractInsights(sentences, summary, 3)
	want := []string{"Second point.", "First point.", "Third point."}
	if !slices.Equal(got, want) {
		t.Fatalf("unexpected insights: got %q want %q", got, want)
	}
}

func TestExtractInsightsLimits(t *testing.T) {
	sentences := []string{"One.", "Two.", "Three."}

	if got := ExtractInsights(sentences, nil, 0); len(got) != 0 {
		t.Fatalf("expected no insights for n=0, got %q", got)
	}

	if got := ExtractInsights(sentences, nil, -1); len(got) != 0 {
		t.Fatalf("expected no insights for negative n, got %q", got)
	}

	if got := ExtractInsights(sentences, nil, 10); !slices.Equal(got, sentences) {
		t.Fatalf("expected every sentence when n exceeds pool, got %q", got)
	}
}

func TestDistinctInsights(t *testing.T) {
	pool := []string{" Alpha ", "", "ALPHA", "Beta", "beta.", "Gamma"}

	if got, want := DistinctInsights(pool, 3), []string{"Alpha", "Beta", "beta."}; !slices.Equal(got, want) {
		t.Fatalf("unexpected insights: got %q want %q", got, want)
	}

	if got := DistinctInsights(nil, 2); got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
}
