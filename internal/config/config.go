package config

import (
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"
	"go.uber.org/zap/zapcore"
)

// Log formats understood by internal/logging.
const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Config is the process configuration.
type Config struct {
	// LogLevel is a zap level name: debug, info, warn, error.
	LogLevel string `env:"PATTERNS_LOG_LEVEL" envDefault:"info"`

	// LogFormat is "console" or "json".
	LogFormat string `env:"PATTERNS_LOG_FORMAT" envDefault:"console"`

	// Headers prints a "== name ==" line before each demo when several run.
	Headers bool `env:"PATTERNS_HEADERS" envDefault:"true"`
}

// Default returns the configuration used when no variables are set.
func Default() Config {
	return Config{LogLevel: "info", LogFormat: FormatConsole, Headers: true}
}

// LoadFromEnv parses and validates the PATTERNS_* variables.
func LoadFromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks field values.
func (c *Config) Validate() error {
	c.LogFormat = strings.ToLower(strings.TrimSpace(c.LogFormat))
	if c.LogFormat != FormatConsole && c.LogFormat != FormatJSON {
		return fmt.Errorf("PATTERNS_LOG_FORMAT must be %q or %q, got %q", FormatConsole, FormatJSON, c.LogFormat)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level returns LogLevel as a zap level.
func (c Config) Level() (zapcore.Level, error) {
	lvl, err := zapcore.ParseLevel(c.LogLevel)
	if err != nil {
		return zapcore.InfoLevel, fmt.Errorf("PATTERNS_LOG_LEVEL: %w", err)
	}
	return lvl, nil
}
