package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"textdigest/internal/cli"
	"textdigest/internal/config"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		slog.New(slog.NewJSONHandler(os.Stderr, nil)).ErrorContext(ctx, "Failed to load config",
			"error", err)

		return 1
	}

	log := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.LogLevel}))
	slog.SetDefault(log)

	if err = cli.New(cfg, log).RootCommand().ExecuteContext(ctx); err != nil {
		log.ErrorContext(ctx, "Command failed",
			"error", err)

		return 1
	}

	return 0
}
