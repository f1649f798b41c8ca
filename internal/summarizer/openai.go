package summarizer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/responses"
	"github.com/openai/openai-go/v3/shared"
	"golang.org/x/time/rate"
)

const (
	DefaultModel = "gpt-4o-mini"

	baseMaxOutputTokens  int64 = 512
	limitMaxOutputTokens int64 = 2048

	temperature = 0.2

	systemPrompt = "You are a concise assistant."
)

// OpenAIConfig configures the OpenAI client. A zero Timeout or a negative
// MaxRetries keeps the client library default, and a zero RequestsPerSecond
// disables throttling.
type OpenAIConfig struct {
	APIKey            string
	BaseURL           string
	Model             string
	Timeout           time.Duration
	MaxRetries        int
	RequestsPerSecond float64
}

// OpenAISummarizer calls OpenAI's Responses API to produce summaries.
type OpenAISummarizer struct {
	client  openai.Client
	model   string
	limiter *rate.Limiter
}

// NewOpenAISummarizer builds a new summarizer instance.
func NewOpenAISummarizer(cfg OpenAIConfig) (*OpenAISummarizer, error) {
	apiKey := strings.TrimSpace(cfg.APIKey)
	if apiKey == "" {
		return nil, errors.New("API key is empty")
	}

	opts := []option.RequestOption{option.WithAPIKey(apiKey)}
	if baseURL := strings.TrimSpace(cfg.BaseURL); baseURL != "" {
		opts = append(opts, option.WithBaseURL(baseURL))
	}
	if cfg.Timeout > 0 {
		opts = append(opts, option.WithRequestTimeout(cfg.Timeout))
	}
	if cfg.MaxRetries >= 0 {
		opts = append(opts, option.WithMaxRetries(cfg.MaxRetries))
	}

	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = DefaultModel
	}

	limiter := rate.NewLimiter(rate.Inf, 1)
	if cfg.RequestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), 1)
	}

	return &OpenAISummarizer{
		client:  openai.NewClient(opts...),
		model:   model,
		limiter: limiter,
	}, nil
}

// Summarize asks the model for a short summary followed by bullet insights.
func (s *OpenAISummarizer) Summarize(
	ctx context.Context,
	input Input,
) (Output, error) {
	text := strings.TrimSpace(input.Text)
	if text == "" {
		return Output{}, errors.New("input is empty")
	}

	prompt := fmt.Sprintf(
		"Summarize the following text in up to %d sentences and provide %d bullet-point insights.\n\nText:\n%s\n",
		input.MaxSentences,
		input.InsightsN,
		input.Text,
	)

	maxOutputTokens := baseMaxOutputTokens
	for {
		if err := s.limiter.Wait(ctx); err != nil {
			return Output{}, fmt.Errorf("wait for rate limiter: %w", err)
		}

		resp, err := s.client.Responses.New(ctx, responses.ResponseNewParams{
			Model:           shared.ResponsesModel(s.model),
			MaxOutputTokens: openai.Int(maxOutputTokens),
			Temperature:     openai.Float(temperature),
			Instructions:    openai.String(systemPrompt),
			Input: responses.ResponseNewParamsInputUnion{
				OfString: openai.String(prompt),
			},
		})
		if err != nil {
			return Output{}, fmt.Errorf("do request: %w", err)
		}

		if resp.Status == "incomplete" {
			if resp.IncompleteDetails.Reason == "max_output_tokens" && maxOutputTokens < limitMaxOutputTokens {
				maxOutputTokens = min(maxOutputTokens*2, limitMaxOutputTokens)
				continue
			}
			return Output{}, fmt.Errorf(
				"response is incomplete (reason = %s, maxOutputTokens = %d)",
				resp.IncompleteDetails.Reason,
				maxOutputTokens,
			)
		}

		content := strings.TrimSpace(resp.OutputText())
		if content == "" {
			return Output{}, fmt.Errorf("output text is missing (status = %s)", resp.Status)
		}

		return parseOutput(content, input.MaxSentences, input.InsightsN), nil
	}
}
