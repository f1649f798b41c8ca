package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	OpenAIAPIKey            string        `env:"OPENAI_API_KEY"`
	OpenAIBaseURL           string        `env:"OPENAI_BASE_URL"`
	OpenAIModel             string        `env:"OPENAI_MODEL"               envDefault:"gpt-4o-mini"`
	OpenAITimeout           time.Duration `env:"OPENAI_TIMEOUT"             envDefault:"60s"`
	OpenAIMaxRetries        int           `env:"OPENAI_MAX_RETRIES"         envDefault:"2"`
	OpenAIRequestsPerSecond float64       `env:"OPENAI_REQUESTS_PER_SECOND" envDefault:"2"`
	OutDir                  string        `env:"TEXTDIGEST_OUTDIR"          envDefault:"out"`
	Parallelism             int           `env:"TEXTDIGEST_PARALLELISM"     envDefault:"4"`
	MemoEntries             int           `env:"TEXTDIGEST_MEMO_ENTRIES"    envDefault:"128"`
	LogLevel                slog.Level    `env:"LOG_LEVEL"                  envDefault:"INFO"`
}

// Load reads the configuration from the environment. A .env file in the
// working directory is applied first when present; variables that are already
// set win over it.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	return cfg, nil
}
