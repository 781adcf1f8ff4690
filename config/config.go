// Package config loads litmap settings from the environment.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/fwojciec/litmap"
)

// Chat backends.
const (
	ChatBackend = "backend"
	ChatGemini  = "gemini"
)

// Config holds settings shared by every command.
type Config struct {
	BaseURL  string        `env:"LITMAP_BASE_URL"  envDefault:"http://localhost:8000"`
	DBPath   string        `env:"LITMAP_DB"`
	Timeout  time.Duration `env:"LITMAP_TIMEOUT"   envDefault:"60s"`
	Rate     float64       `env:"LITMAP_RATE"      envDefault:"0"`
	LogLevel slog.Level    `env:"LITMAP_LOG_LEVEL" envDefault:"warn"`
	Chat     string        `env:"LITMAP_CHAT"      envDefault:"backend"`
	TTS      string        `env:"LITMAP_TTS"`

	GeminiAPIKey string `env:"GEMINI_API_KEY"`
	GeminiModel  string `env:"LITMAP_GEMINI_MODEL" envDefault:"gemini-2.5-flash"`
}

// Load reads the configuration from the process environment.
func Load() (*Config, error) {
	return parse(env.Options{})
}

// LoadFrom reads the configuration from environ instead of the process
// environment.
func LoadFrom(environ map[string]string) (*Config, error) {
	return parse(env.Options{Environment: environ})
}

func parse(opts env.Options) (*Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.DBPath == "" {
		cfg.DBPath = DefaultDBPath()
	}
	return &cfg, nil
}

// Validate returns an error if a setting is out of range.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return litmap.Errorf(litmap.EINVALID, "LITMAP_BASE_URL must not be empty")
	}
	if c.Timeout <= 0 {
		return litmap.Errorf(litmap.EINVALID, "LITMAP_TIMEOUT must be positive")
	}
	if c.Rate < 0 {
		return litmap.Errorf(litmap.EINVALID, "LITMAP_RATE must not be negative")
	}
	switch c.Chat {
	case ChatBackend, ChatGemini:
	default:
		return litmap.Errorf(litmap.EINVALID, "LITMAP_CHAT must be %q or %q", ChatBackend, ChatGemini)
	}
	return nil
}

// DefaultDBPath returns ~/.litmap/litmap.db, creating the directory.
func DefaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "litmap.db"
	}
	dir := filepath.Join(home, ".litmap")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "litmap.db")
}
