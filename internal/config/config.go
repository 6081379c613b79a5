// Package config loads the service configuration from the environment.
package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/kelseyhightower/envconfig"
	"golang.org/x/text/language"

	"github.com/gogpu/sukharik/numeric"
)

// Prefix is prepended to every variable name, e.g. SUKHARIK_PORT.
const Prefix = "sukharik"

// Config is the service configuration, read from SUKHARIK_* variables.
type Config struct {
	Port            int           `envconfig:"PORT" default:"8080"`
	LogLevel        string        `envconfig:"LOG_LEVEL" default:"info"`
	Locale          string        `envconfig:"LOCALE" default:""`
	DefaultName     string        `envconfig:"DEFAULT_NAME" default:"figure"`
	MaxCanvas       int           `envconfig:"MAX_CANVAS" default:"4096"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
}

// Load reads the configuration from the environment and validates it.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return nil, err
	}
	if _, err := cfg.Level(); err != nil {
		return nil, err
	}
	if _, err := cfg.Language(); err != nil {
		return nil, err
	}
	if cfg.MaxCanvas <= 0 {
		return nil, fmt.Errorf("config: MAX_CANVAS must be positive, got %d", cfg.MaxCanvas)
	}
	return &cfg, nil
}

// Level parses LogLevel ("debug", "info", "warn", "error").
func (c *Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("config: LOG_LEVEL: %w", err)
	}
	return l, nil
}

// Language parses Locale. An empty locale yields language.Und.
func (c *Config) Language() (language.Tag, error) {
	tag, err := numeric.ParseLocale(c.Locale)
	if err != nil {
		return language.Und, fmt.Errorf("config: LOCALE: %w", err)
	}
	return tag, nil
}
