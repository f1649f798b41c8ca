// Package cli wires the textdigest command line: flag parsing, the optional
// OpenAI client, and per-file processing.
package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"textdigest/internal/config"
	"textdigest/internal/summarizer"
)

// version is overridden at build time with -ldflags "-X textdigest/internal/cli.version=...".
var version = "dev"

type App struct {
	cfg config.Config
	log *slog.Logger

	newRemote func(ctx context.Context, model string) summarizer.Summarizer
}

func New(cfg config.Config, log *slog.Logger) *App {
	a := &App{cfg: cfg, log: log}
	a.newRemote = a.initOpenAISummarizer

	return a
}

// RootCommand builds the command tree. Running the root command summarizes
// the files given with --input.
func (a *App) RootCommand() *cobra.Command {
	opts := summarizeOptions{
		OutDir:       a.cfg.OutDir,
		Model:        a.cfg.OpenAIModel,
		MaxSentences: defaultMaxSentences,
		Insights:     defaultInsights,
	}

	root := &cobra.Command{
		Use:           "textdigest",
		Short:         "Summarize a text file and extract key insights",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runSummarize(cmd, opts)
		},
	}

	flags := root.Flags()
	flags.StringArrayVarP(&opts.Inputs, "input", "i", nil, "Path to input .txt or .html file (repeatable)")
	flags.StringVarP(&opts.OutDir, "outdir", "o", opts.OutDir, "Directory to write outputs")
	flags.StringVar(&opts.Model, "model", opts.Model, "OpenAI model")
	flags.IntVar(&opts.MaxSentences, "max-sentences", opts.MaxSentences, "Max sentences in summary")
	flags.IntVar(&opts.Insights, "insights", opts.Insights, "Number of key insights to extract")
	flags.BoolVar(&opts.UseOpenAI, "use-openai", false, "Use OpenAI if OPENAI_API_KEY is set")
	_ = root.MarkFlagRequired("input")

	root.AddCommand(versionCommand())

	return root
}

func versionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "textdigest version %s\n", version)
		},
	}
}

func (a *App) initOpenAISummarizer(ctx context.Context, model string) summarizer.Summarizer {
	if a.cfg.OpenAIAPIKey == "" {
		a.log.WarnContext(ctx, "OPENAI_API_KEY is missing so fallback will be used",
			"envVar", "OPENAI_API_KEY")

		return nil
	}

	s, err := summarizer.NewOpenAISummarizer(summarizer.OpenAIConfig{
		APIKey:            a.cfg.OpenAIAPIKey,
		BaseURL:           a.cfg.OpenAIBaseURL,
		Model:             model,
		Timeout:           a.cfg.OpenAITimeout,
		MaxRetries:        a.cfg.OpenAIMaxRetries,
		RequestsPerSecond: a.cfg.OpenAIRequestsPerSecond,
	})
	if err != nil {
		a.log.ErrorContext(ctx, "Failed to create OpenAI summarizer so fallback will be used",
			"error", err,
			"envVar", "OPENAI_API_KEY")

		return nil
	}

	a.log.InfoContext(ctx, "OpenAI summarizer is initialized",
		"provider", "openai",
		"model", model)

	return summarizer.NewMemoSummarizer(s, a.cfg.MemoEntries)
}
