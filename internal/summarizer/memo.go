package summarizer

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"slices"
	"strconv"
	"strings"
	"sync"

	"golang.org/x/sync/singleflight"
)

// MemoSummarizer remembers successful outputs of another summarizer for the
// lifetime of one run, so that identical inputs in a batch hit the API once.
// Concurrent calls for the same input share a single request.
type MemoSummarizer struct {
	next  Summarizer
	group singleflight.Group

	mu         sync.Mutex
	outputs    map[string]Output
	maxEntries int
}

// NewMemoSummarizer wraps next with a memo holding at most maxEntries outputs.
// It returns next unchanged when maxEntries disables memoization.
func NewMemoSummarizer(next Summarizer, maxEntries int) Summarizer {
	if next == nil || maxEntries <= 0 {
		return next
	}

	return &MemoSummarizer{
		next:       next,
		outputs:    make(map[string]Output, min(maxEntries, 16)),
		maxEntries: maxEntries,
	}
}

func (s *MemoSummarizer) Summarize(ctx context.Context, input Input) (Output, error) {
	key := memoKey(input)
	if key == "" {
		return s.next.Summarize(ctx, input)
	}

	if output, ok := s.lookup(key); ok {
		return output, nil
	}

	v, err, _ := s.group.Do(key, func() (any, error) {
		if output, ok := s.lookup(key); ok {
			return output, nil
		}

		output, err := s.next.Summarize(ctx, input)
		if err != nil {
			return Output{}, err
		}
		s.store(key, output)

		return output, nil
	})
	if err != nil {
		return Output{}, err
	}

	output, _ := v.(Output)

	return cloneOutput(output), nil
}

func (s *MemoSummarizer) lookup(key string) (Output, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	output, ok := s.outputs[key]
	if !ok {
		return Output{}, false
	}

	return cloneOutput(output), true
}

// store keeps the first maxEntries outputs; later ones are not remembered.
func (s *MemoSummarizer) store(key string, output Output) {
	if output.Summary == "" {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.outputs) >= s.maxEntries {
		return
	}
	s.outputs[key] = cloneOutput(output)
}

func cloneOutput(o Output) Output {
	return Output{Summary: o.Summary, KeyInsights: slices.Clone(o.KeyInsights)}
}

func memoKey(input Input) string {
	normalizedText := strings.TrimSpace(input.Text)
	if normalizedText == "" {
		return ""
	}

	hash := sha256.Sum256([]byte(normalizedText))

	return strconv.Itoa(input.MaxSentences) + "|" +
		strconv.Itoa(input.InsightsN) + "|" +
		hex.EncodeToString(hash[:])
}
