package summarizer

import (
	"strings"
)

// parseOutput splits model output into summary lines and bullet insights.
// Lines starting with "-" or "*" are insights and everything else is summary.
// Output without bullets uses the lines after the first one as insights.
func parseOutput(content string, maxSentences int, insightsN int) Output {
	var lines []string
	for _, line := range strings.FieldsFunc(content, isLineBreak) {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}

	var summaryLines []string
	insights := []string{}

	for _, line := range lines {
		if strings.HasPrefix(line, "-") || strings.HasPrefix(line, "*") {
			insights = append(insights, strings.TrimSpace(strings.TrimLeft(line, "-* ")))

			continue
		}
		summaryLines = append(summaryLines, line)
	}

	if len(insights) == 0 && len(lines) > 1 {
		insights = append(insights, lines[1:min(1+max(insightsN, 0), len(lines))]...)
	}

	return Output{
		Summary:     strings.Join(summaryLines[:min(max(maxSentences, 0), len(summaryLines))], " "),
		KeyInsights: insights[:min(max(insightsN, 0), len(insights))],
	}
}

// isLineBreak reports the runes that end a line in model output, including
// bare carriage returns, form feeds and the Unicode line separators.
func isLineBreak(r rune) bool {
	switch r {
	case '\n', '\r', '\v', '\f', '\x1c', '\x1d', '\x1e', '\u0085', '\u2028', '\u2029':
		return true
	default:
		return false
	}
}
