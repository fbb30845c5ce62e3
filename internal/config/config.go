// Package config loads runtime settings from the environment, with an
// optional .env file for local development.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds every tunable the binaries read. A zero seed means
// time-derived randomness.
type Config struct {
	Port        int    `env:"UNDERVAULT_PORT" envDefault:"2222"`
	HostKeyFile string `env:"UNDERVAULT_HOST_KEY" envDefault:"server_host_key"`
	FOVRadius   int    `env:"UNDERVAULT_FOV_RADIUS" envDefault:"8"`
	Seed        int64  `env:"UNDERVAULT_SEED" envDefault:"0"`
	Telemetry   bool   `env:"UNDERVAULT_TELEMETRY" envDefault:"false"`
}

// Load reads .env (if present) and parses the environment.
func Load() (Config, error) {
	// A missing .env is fine; explicit env vars win either way.
	_ = godotenv.Load()

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.FOVRadius < 1 {
		return Config{}, fmt.Errorf("UNDERVAULT_FOV_RADIUS must be positive, got %d", cfg.FOVRadius)
	}
	return cfg, nil
}
