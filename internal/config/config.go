package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// EnvPrefix is prepended to every variable name below.
const EnvPrefix = "UNDERCOVER_"

// Config holds runtime settings read from the environment.
type Config struct {
	// DBPath overrides the database location. Empty means the XDG default.
	DBPath string `env:"DB"`

	TelemetryURL      string        `env:"TELEMETRY_URL" envDefault:"https://ai-undercover-backend.onrender.com/comments"`
	TelemetryDisabled bool          `env:"TELEMETRY_DISABLED" envDefault:"false"`
	TelemetryTimeout  time.Duration `env:"TELEMETRY_TIMEOUT" envDefault:"10s"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	LogFile  string `env:"LOG_FILE"`

	CollectorAddr string `env:"COLLECT_ADDR" envDefault:"127.0.0.1:8787"`
}

// Load reads dotenv files (".env" when none are named) into the process
// environment, then parses Config. Missing dotenv files are ignored and
// variables already set win over dotenv values.
func Load(dotenv ...string) (Config, error) {
	_ = godotenv.Load(dotenv...)

	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// SlogLevel maps LogLevel to a slog level, defaulting to info.
func (c Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return slog.LevelInfo
	}
	return level
}
