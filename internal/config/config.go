// Package config reads game settings from the environment, optionally seeded
// from a .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/KirkDiggler/numguess/internal/models"
)

// ConfigError represents errors returned while loading configuration
type ConfigError string

func (e ConfigError) Error() string {
	return string(e)
}

const (
	ErrInvalidBackend   ConfigError = "unknown history backend"
	ErrInvalidTolerance ConfigError = "tolerance must be a finite, non-negative number"
	ErrInvalidDecimals  ConfigError = "target decimals must be between -1 and 15"
	ErrInvalidTTL       ConfigError = "history ttl must be positive"
	ErrInvalidLogLevel  ConfigError = "unknown log level"
	ErrInvalidTone      ConfigError = "unknown message tone"
)

// HistoryBackend selects where round history is kept
type HistoryBackend string

const (
	HistoryBackendMemory HistoryBackend = "memory"
	HistoryBackendRedis  HistoryBackend = "redis"
)

// Config holds every setting the game reads at startup
type Config struct {
	RangeLow       float64 `env:"GUESS_RANGE_LOW" envDefault:"1"`
	RangeHigh      float64 `env:"GUESS_RANGE_HIGH" envDefault:"100"`
	Seed           uint64  `env:"GUESS_SEED" envDefault:"0"`
	TargetDecimals int     `env:"GUESS_TARGET_DECIMALS" envDefault:"0"`
	Tolerance      float64 `env:"GUESS_TOLERANCE" envDefault:"0"`
	CountInvalid   bool    `env:"GUESS_COUNT_INVALID" envDefault:"false"`

	HistoryBackend HistoryBackend `env:"HISTORY_BACKEND" envDefault:"memory"`
	HistoryTTL     time.Duration  `env:"HISTORY_TTL" envDefault:"1h"`
	RedisAddr      string         `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword  string         `env:"REDIS_PASSWORD"`
	RedisDB        int            `env:"REDIS_DB" envDefault:"0"`

	// Tone fixes the tone of guess feedback; empty lets it follow the player's progress
	Tone string `env:"GUESS_TONE"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"warn"`
	NoColor  bool   `env:"NO_COLOR" envDefault:"false"`
}

// tones accepted by GUESS_TONE
var tones = map[string]bool{
	"":            true,
	"neutral":     true,
	"encouraging": true,
	"sarcastic":   true,
}

// Load reads the given .env files (".env" when none are named) into the
// process environment, then parses and validates the configuration. Missing
// .env files are ignored; variables already set win over file values.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}

	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", file, err)
		}
	}

	cfg := &Config{}
	if err := ParseEnv(cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Validate checks values the parser cannot
func (c *Config) Validate() error {
	if err := c.Range().Validate(); err != nil {
		return err
	}

	if c.TargetDecimals < -1 || c.TargetDecimals > 15 {
		return fmt.Errorf("%w: %d", ErrInvalidDecimals, c.TargetDecimals)
	}

	if math.IsNaN(c.Tolerance) || math.IsInf(c.Tolerance, 0) || c.Tolerance < 0 {
		return fmt.Errorf("%w: %v", ErrInvalidTolerance, c.Tolerance)
	}

	switch c.HistoryBackend {
	case HistoryBackendMemory, HistoryBackendRedis:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidBackend, c.HistoryBackend)
	}

	if c.HistoryTTL <= 0 {
		return fmt.Errorf("%w: %s", ErrInvalidTTL, c.HistoryTTL)
	}

	if !tones[c.Tone] {
		return fmt.Errorf("%w: %q", ErrInvalidTone, c.Tone)
	}

	if _, err := c.Level(); err != nil {
		return err
	}

	return nil
}

// Range is the range of the first round
func (c *Config) Range() models.Range {
	return models.Range{Low: c.RangeLow, High: c.RangeHigh}
}

// Level is the parsed LOG_LEVEL
func (c *Config) Level() (zerolog.Level, error) {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.LogLevel)
	}
	return level, nil
}
