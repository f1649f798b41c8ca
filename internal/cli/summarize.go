package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"textdigest/internal/digest"
	"textdigest/internal/document"
	"textdigest/internal/output"
	"textdigest/internal/summarizer"
)

const (
	defaultMaxSentences = 5
	defaultInsights     = 5
)

//nolint:gochecknoglobals // Caches struct metadata.
var validate = validator.New(validator.WithRequiredStructEnabled())

type summarizeOptions struct {
	Inputs       []string `validate:"required,min=1,dive,required"`
	OutDir       string   `validate:"required"`
	Model        string   `validate:"required"`
	MaxSentences int      `validate:"gte=0"`
	Insights     int      `validate:"gte=0"`
	UseOpenAI    bool
}

func (a *App) runSummarize(cmd *cobra.Command, opts summarizeOptions) error {
	ctx := cmd.Context()
	log := a.log.With("runID", uuid.NewString())
	start := time.Now()

	if err := validate.Struct(opts); err != nil {
		return fmt.Errorf("invalid arguments: %w", err)
	}

	stems, err := outputStems(opts.Inputs)
	if err != nil {
		return err
	}

	var remote summarizer.Summarizer
	if opts.UseOpenAI {
		remote = a.newRemote(ctx, opts.Model)
	}
	svc := digest.New(remote, log)

	paths := make([]output.Paths, len(opts.Inputs))
	errs := make([]error, len(opts.Inputs))

	g := errgroup.Group{}
	g.SetLimit(max(a.cfg.Parallelism, 1))

	for i, input := range opts.Inputs {
		g.Go(func() error {
			paths[i], errs[i] = a.processInput(ctx, log, svc, opts, input, stems[i])

			return nil
		})
	}
	_ = g.Wait()

	for i := range opts.Inputs {
		if errs[i] != nil {
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote JSON: %s\n", paths[i].JSON)
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote CSV:  %s\n", paths[i].CSV)
	}

	log.InfoContext(ctx, "Run is finished",
		"inputsCount", len(opts.Inputs),
		"useOpenAI", opts.UseOpenAI,
		"durationSeconds", time.Since(start).Seconds())

	return errors.Join(errs...)
}

func (a *App) processInput(
	ctx context.Context,
	log *slog.Logger,
	svc *digest.Service,
	opts summarizeOptions,
	input string,
	stem string,
) (output.Paths, error) {
	doc, err := document.Read(input)
	if err != nil {
		log.ErrorContext(ctx, "Failed to read input",
			"error", err,
			"input", input)

		return output.Paths{}, err
	}

	report := svc.Summarize(ctx, digest.Request{
		Document:     doc,
		MaxSentences: opts.MaxSentences,
		InsightsN:    opts.Insights,
		UseRemote:    opts.UseOpenAI,
	})

	paths, err := output.Write(opts.OutDir, stem, report)
	if err != nil {
		log.ErrorContext(ctx, "Failed to write outputs",
			"error", err,
			"input", input,
			"outDir", opts.OutDir)

		return output.Paths{}, fmt.Errorf("%s: %w", input, err)
	}

	log.InfoContext(ctx, "Input is summarized",
		"input", input,
		"engine", report.Engine,
		"sentenceCount", report.SentenceCount,
		"wordCount", report.WordCount,
		"insightsCount", len(report.KeyInsights))

	return paths, nil
}

// outputStems maps inputs to output file stems and rejects inputs that would
// overwrite each other's outputs.
func outputStems(inputs []string) ([]string, error) {
	stems := make([]string, len(inputs))
	owners := make(map[string]string, len(inputs))

	for i, input := range inputs {
		stem := document.Stem(input)
		if owner, ok := owners[stem]; ok {
			return nil, fmt.Errorf("inputs %q and %q write to the same outputs %q",
				owner, input, stem)
		}

		owners[stem] = filepath.Clean(input)
		stems[i] = stem
	}

	return stems, nil
}
