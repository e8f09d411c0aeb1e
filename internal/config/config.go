// Package config loads the mstweight command's settings from the environment.
//
// Values come from MSTWEIGHT_* variables, optionally seeded from a .env file.
// Every default reproduces the plain behaviour: Prim from vertex 0, partial
// results on disconnected input, quiet logs, no metrics file.
package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Prefix is the environment variable prefix understood by Load.
const Prefix = "MSTWEIGHT"

// Config validation errors
var (
	ErrInvalidMethod    = errors.New("method must be 'prim' or 'kruskal'")
	ErrInvalidRoot      = errors.New("root must be non-negative")
	ErrInvalidLogLevel  = errors.New("log_level must be debug, info, warn, or error")
	ErrInvalidLogFormat = errors.New("log_format must be 'json', 'console' or 'text'")
)

// Config holds the command settings.
type Config struct {
	Method           string `envconfig:"METHOD" default:"prim"`
	Root             int    `envconfig:"ROOT" default:"0"`
	RequireConnected bool   `envconfig:"REQUIRE_CONNECTED" default:"false"`
	LogLevel         string `envconfig:"LOG_LEVEL" default:"warn"`
	LogFormat        string `envconfig:"LOG_FORMAT" default:"console"`
	MetricsFile      string `envconfig:"METRICS_FILE"`
}

// DefaultConfig returns a Config with default values
func DefaultConfig() Config {
	return Config{
		Method:           "prim",
		Root:             0,
		RequireConnected: false,
		LogLevel:         "warn",
		LogFormat:        "console",
		MetricsFile:      "",
	}
}

// Load reads the optional dotenv files (".env" when none are given), then
// processes MSTWEIGHT_* variables and validates the result. Variables already
// present in the environment win over dotenv entries.
func Load(dotenv ...string) (Config, error) {
	if len(dotenv) == 0 {
		dotenv = []string{".env"}
	}
	for _, path := range dotenv {
		if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("config: load %s: %w", path, err)
		}
	}

	var cfg Config
	if err := envconfig.Process(Prefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if err := ValidateConfig(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}

	return cfg, nil
}

// ValidateConfig validates the configuration and returns an error if invalid
func ValidateConfig(cfg *Config) error {
	if cfg.Method != "prim" && cfg.Method != "kruskal" {
		return ErrInvalidMethod
	}
	if cfg.Root < 0 {
		return ErrInvalidRoot
	}
	if cfg.LogLevel != "debug" && cfg.LogLevel != "info" && cfg.LogLevel != "warn" && cfg.LogLevel != "error" {
		return ErrInvalidLogLevel
	}
	if cfg.LogFormat != "json" && cfg.LogFormat != "console" && cfg.LogFormat != "text" {
		return ErrInvalidLogFormat
	}

	return nil
}
