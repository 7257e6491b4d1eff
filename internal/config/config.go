// Package config reads server settings from the environment.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Word sources selectable with WORD_SOURCE.
const (
	SourceAPI      = "api"
	SourceEmbedded = "embedded"
	SourceDaily    = "daily"
)

// HistoryOff disables the round history database when used as DB_PATH.
const HistoryOff = "off"

var ErrInvalid = errors.New("invalid config")

// Config holds every tunable of the server.
type Config struct {
	Port     string `env:"PORT"      envDefault:"5175"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	WordSource      string        `env:"WORD_SOURCE"            envDefault:"api"`
	WordAPIURL      string        `env:"WORD_API_URL"           envDefault:"https://random-word-api.herokuapp.com/word"`
	WordAPITimeout  time.Duration `env:"WORD_API_TIMEOUT"       envDefault:"5s"`
	WordAPIRetries  uint          `env:"WORD_API_RETRIES"       envDefault:"3"`
	OfflineFallback bool          `env:"WORDS_OFFLINE_FALLBACK" envDefault:"false"`
	DailySalt       string        `env:"DAILY_SALT"             envDefault:"hangman"`

	MaxWrongAttempts int           `env:"MAX_WRONG_ATTEMPTS" envDefault:"6"`
	SessionIdleTTL   time.Duration `env:"SESSION_IDLE_TTL"   envDefault:"2h"`

	DBPath string `env:"DB_PATH" envDefault:"./data/hangman.db"`

	JWTSecret    string        `env:"JWT_SECRET"    envDefault:"dev_secret_change_me"`
	TokenTTL     time.Duration `env:"TOKEN_TTL"     envDefault:"24h"`
	ClientOrigin string        `env:"CLIENT_ORIGIN" envDefault:"http://localhost:5173"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load parses and validates the environment.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks values the parser cannot.
func (c Config) Validate() error {
	switch c.WordSource {
	case SourceAPI, SourceEmbedded, SourceDaily:
	default:
		return fmt.Errorf("%w: WORD_SOURCE %q (want api, embedded or daily)", ErrInvalid, c.WordSource)
	}
	if c.WordAPIRetries == 0 {
		return fmt.Errorf("%w: WORD_API_RETRIES must be at least 1", ErrInvalid)
	}
	if c.MaxWrongAttempts < 1 {
		return fmt.Errorf("%w: MAX_WRONG_ATTEMPTS must be at least 1", ErrInvalid)
	}
	if c.TokenTTL <= 0 {
		return fmt.Errorf("%w: TOKEN_TTL must be positive", ErrInvalid)
	}
	if c.JWTSecret == "" {
		return fmt.Errorf("%w: JWT_SECRET is empty", ErrInvalid)
	}
	return nil
}

// HistoryEnabled reports whether rounds are written to DBPath.
func (c Config) HistoryEnabled() bool {
	return c.DBPath != "" && c.DBPath != HistoryOff
}
