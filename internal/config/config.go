package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds the process configuration, sourced from the
// environment.
type Config struct {
	// Addr is the HTTP listen address.
	Addr string `env:"ADDR" envDefault:":8080"`
	// DBPath is the SQLite database file. Empty selects the in-memory
	// repository, which does not survive restarts.
	DBPath string `env:"DB_PATH"`
	// SweepInterval is how often the resolution sweeper runs.
	SweepInterval time.Duration `env:"SWEEP_INTERVAL" envDefault:"1m"`
	// LogLevel is the logrus level name.
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

// Load parses configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	if cfg.SweepInterval <= 0 {
		return Config{}, fmt.Errorf("sweep interval must be positive, got %s", cfg.SweepInterval)
	}
	return cfg, nil
}
