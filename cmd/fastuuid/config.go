package main

import (
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"
)

// config holds command defaults read from the environment. Flags override them.
type config struct {
	Version   int        `env:"FASTUUID_VERSION"   envDefault:"4"`
	Namespace string     `env:"FASTUUID_NAMESPACE" envDefault:"NAMESPACE_DNS"`
	Format    string     `env:"FASTUUID_FORMAT"    envDefault:"canonical"`
	Count     int        `env:"FASTUUID_COUNT"     envDefault:"1"`
	Output    string     `env:"FASTUUID_OUTPUT"    envDefault:"yaml"`
	LogLevel  slog.Level `env:"FASTUUID_LOG_LEVEL" envDefault:"INFO"`

	BenchIterations int `env:"FASTUUID_BENCH_ITERATIONS" envDefault:"100000"`
	BenchTrials     int `env:"FASTUUID_BENCH_TRIALS"     envDefault:"5"`
}

// loadConfig parses environment into a config. A nil environment means the
// process environment.
func loadConfig(environment map[string]string) (*config, error) {
	cfg := &config{}
	if err := env.ParseWithOptions(cfg, env.Options{Environment: environment}); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}
	return cfg, nil
}
