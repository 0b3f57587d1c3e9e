package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// ErrParsingConfig is returned when the environment cannot be parsed into Config.
var ErrParsingConfig = errors.New("failed to parse environment variables into config")

// Config drives the demo. Every field has a usable default.
type Config struct {
	DefaultTTL    time.Duration `env:"CACHE_DEFAULT_TTL" envDefault:"5m"`
	Capacity      int           `env:"CACHE_CAPACITY" envDefault:"-1"` // negative means unbounded
	SweepInterval time.Duration `env:"CACHE_SWEEP_INTERVAL" envDefault:"0"`

	LogLevel  slog.Level `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string     `env:"LOG_FORMAT" envDefault:"text"`

	MetricsNamespace string `env:"METRICS_NAMESPACE" envDefault:"simple_cacher"`
}

// loadConfig reads the given .env files (or ./.env when none are given)
// and then the process environment. Missing files are not an error, and
// variables already set in the environment win over file values.
func loadConfig(files ...string) (Config, error) {
	_ = godotenv.Load(files...)

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Join(ErrParsingConfig, err)
	}

	switch cfg.LogFormat {
	case "text", "json":
	default:
		return Config{}, errors.Join(ErrParsingConfig,
			fmt.Errorf("invalid log format %q: must be %q or %q", cfg.LogFormat, "json", "text"))
	}
	return cfg, nil
}

func newLogger(cfg Config, w io.Writer) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.LogLevel}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
