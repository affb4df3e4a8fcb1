// Package config loads the arena server settings from the environment
package config

import (
	"log/slog"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/KirkDiggler/rpg-arena/internal/errors"
)

// Config holds the server settings. Every field has an ARENA_ variable.
type Config struct {
	GRPCPort        int    `env:"ARENA_GRPC_PORT" envDefault:"50051"`
	RedisAddr       string `env:"ARENA_REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword   string `env:"ARENA_REDIS_PASSWORD"`
	RedisDB         int    `env:"ARENA_REDIS_DB" envDefault:"0"`
	SQLitePath      string `env:"ARENA_SQLITE_PATH" envDefault:"arena.db"`
	StartingCredits int64  `env:"ARENA_STARTING_CREDITS" envDefault:"1000"`
	LogLevel        string `env:"ARENA_LOG_LEVEL" envDefault:"info"`
	OTLPEndpoint    string `env:"ARENA_OTLP_ENDPOINT"`
	SeedUsers       bool   `env:"ARENA_SEED_USERS" envDefault:"true"`
}

// LoadInput controls where settings come from
type LoadInput struct {
	// EnvFiles are loaded before parsing when they exist. Variables already
	// set in the process environment win.
	EnvFiles []string
}

// Load reads the optional env files then parses and validates the environment
func Load(input *LoadInput) (*Config, error) {
	if input == nil {
		input = &LoadInput{}
	}

	for _, path := range input.EnvFiles {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			return nil, errors.Wrapf(err, "failed to load %s", path)
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the settings are usable
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.GRPCPort <= 0 || c.GRPCPort > 65535 {
		vb.InvalidField("ARENA_GRPC_PORT", "must be between 1 and 65535")
	}
	errors.ValidateRequired("ARENA_REDIS_ADDR", c.RedisAddr, vb)
	errors.ValidateRequired("ARENA_SQLITE_PATH", c.SQLitePath, vb)
	if c.StartingCredits < 0 {
		vb.InvalidField("ARENA_STARTING_CREDITS", "must not be negative")
	}
	if level := strings.ToLower(strings.TrimSpace(c.LogLevel)); level != "" {
		errors.ValidateEnum("ARENA_LOG_LEVEL", level, logLevels, vb)
	}

	return vb.Build()
}

// SlogLevel returns the configured log level
func (c *Config) SlogLevel() slog.Level {
	return parseLevel(c.LogLevel)
}

var logLevels = []string{"debug", "info", "warn", "warning", "error"}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "", "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
