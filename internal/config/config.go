// Package config loads server settings from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Storage backends
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// Server holds server configuration read from PROTOCOLS_* variables
type Server struct {
	Host            string        `env:"PROTOCOLS_HOST"`
	Port            int           `env:"PROTOCOLS_PORT" envDefault:"8080"`
	ReadTimeout     time.Duration `env:"PROTOCOLS_READ_TIMEOUT" envDefault:"15s"`
	WriteTimeout    time.Duration `env:"PROTOCOLS_WRITE_TIMEOUT" envDefault:"15s"`
	ShutdownTimeout time.Duration `env:"PROTOCOLS_SHUTDOWN_TIMEOUT" envDefault:"30s"`
	LogLevel        string        `env:"PROTOCOLS_LOG_LEVEL" envDefault:"info"`

	StorageType string        `env:"PROTOCOLS_STORAGE_TYPE" envDefault:"memory"`
	RedisURL    string        `env:"PROTOCOLS_REDIS_URL"`
	RollTTL     time.Duration `env:"PROTOCOLS_ROLL_TTL" envDefault:"24h"`

	// Seed fixes the dice generator sequence; zero seeds from crypto/rand
	Seed uint64 `env:"PROTOCOLS_SEED"`
}

// Load parses the server configuration from the environment
func Load() (Server, error) {
	var cfg Server
	if err := env.Parse(&cfg); err != nil {
		return Server{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Server{}, err
	}
	return cfg, nil
}

// Validate checks cross-field constraints
func (c Server) Validate() error {
	switch c.StorageType {
	case StorageTypeMemory:
	case StorageTypeRedis:
		if c.RedisURL == "" {
			return fmt.Errorf("PROTOCOLS_REDIS_URL required when PROTOCOLS_STORAGE_TYPE=%s", StorageTypeRedis)
		}
	default:
		return fmt.Errorf("invalid PROTOCOLS_STORAGE_TYPE %q: must be %q or %q", c.StorageType, StorageTypeMemory, StorageTypeRedis)
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid PROTOCOLS_PORT %d", c.Port)
	}
	return nil
}
