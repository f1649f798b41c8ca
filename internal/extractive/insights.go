package extractive

import "strings"

// ExtractInsights walks the summary sentences and then the rest of the
// sentences in source order, keeping up to n case-insensitively distinct ones.
func ExtractInsights(sentences []string, summary []string, n int) []string {
	inSummary := make(map[string]struct{}, len(summary))
	for _, s := range summary {
		inSummary[s] = struct{}{}
	}

	pool := make([]string, 0, len(sentences)+len(summary))
	pool = append(pool, summary...)
	for _, s := range sentences {
		if _, ok := inSummary[s]; !ok {
			pool = append(pool, s)
		}
	}

	return DistinctInsights(pool, n)
}

// DistinctInsights trims points, drops empty ones and case-insensitive
// repeats, and keeps at most n of them in order.
func DistinctInsights(pool []string, n int) []string {
	insights := make([]string, 0, max(min(n, len(pool)), 0))
	seen := make(map[string]struct{}, len(pool))

	for _, s := range pool {
		if len(insights) >= n {
			break
		}

		point := strings.TrimSpace(s)
		if point == "" {
			continue
		}

		key := strings.ToLower(point)
		if _, ok := seen[key]; ok {
			continue
		}

		seen[key] = struct{}{}
		insights = append(insights, point)
	}

	return insights
}
