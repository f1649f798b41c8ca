// Package digest turns a document into a report. It always runs the offline
// extractive pass and, when asked to and a remote summarizer is configured,
// replaces the summary and insights with the remote ones.
package digest

import (
	"context"
	"log/slog"
	"strings"

	"textdigest/internal/document"
	"textdigest/internal/domain"
	"textdigest/internal/extractive"
	"textdigest/internal/summarizer"
)

type Service struct {
	remote summarizer.Summarizer
	log    *slog.Logger
}

type Request struct {
	Document     domain.Document
	MaxSentences int
	InsightsN    int
	UseRemote    bool
}

// New builds a service. remote may be nil, in which case every request is
// answered offline.
func New(remote summarizer.Summarizer, log *slog.Logger) *Service {
	return &Service{remote: remote, log: log}
}

func (s *Service) Summarize(ctx context.Context, req Request) domain.Report {
	text := req.Document.Text
	result := extractive.Summarize(text, req.MaxSentences, req.InsightsN)
	engine := domain.EngineExtractive

	if req.UseRemote {
		if out, ok := s.trySummarize(ctx, req); ok {
			result.Summary = out.Summary
			result.KeyInsights = out.KeyInsights
			engine = domain.EngineOpenAI
		}
	}

	links := document.Links(text)

	return domain.Report{
		Source:        req.Document.Path,
		WordCount:     result.WordCount,
		SentenceCount: result.SentenceCount,
		Summary:       result.Summary,
		KeyInsights:   result.KeyInsights,
		TopKeywords:   result.TopKeywords,
		Links:         links,
		Engine:        engine,
	}
}

// trySummarize reports false instead of failing: a missing client, an error
// or an empty answer all mean the offline result stands.
func (s *Service) trySummarize(ctx context.Context, req Request) (summarizer.Output, bool) {
	if s.remote == nil {
		s.log.DebugContext(ctx, "Remote summarizer is not configured so fallback will be used",
			"source", req.Document.Path)

		return summarizer.Output{}, false
	}

	out, err := s.remote.Summarize(ctx, summarizer.Input{
		Text:         req.Document.Text,
		MaxSentences: max(req.MaxSentences, 0),
		InsightsN:    max(req.InsightsN, 0),
	})
	if err != nil {
		s.log.WarnContext(ctx, "Failed to summarize remotely so fallback will be used",
			"error", err,
			"source", req.Document.Path,
			"textLen", len(req.Document.Text))

		return summarizer.Output{}, false
	}

	out.Summary = strings.TrimSpace(out.Summary)
	if out.Summary == "" {
		s.log.WarnContext(ctx, "Remote summary is empty so fallback will be used",
			"source", req.Document.Path)

		return summarizer.Output{}, false
	}

	out.KeyInsights = extractive.DistinctInsights(out.KeyInsights, max(req.InsightsN, 0))

	return out, true
}
