package summarizer

import (
	"context"
)

// Input describes the payload for a summary request.
type Input struct {
	// Text contains the original plain text to summarise.
	Text string
	// MaxSentences caps the number of sentences in the summary.
	MaxSentences int
	// InsightsN is the number of bullet-point insights to ask for.
	InsightsN int
}

// Output is the part of a result a remote summarizer can provide.
type Output struct {
	Summary     string
	KeyInsights []string
}

// Summarizer produces a summary and insights for a given input text.
type Summarizer interface {
	Summarize(ctx context.Context, input Input) (Output, error)
}
