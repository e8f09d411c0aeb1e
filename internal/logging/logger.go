// Package logging builds the zerolog loggers used by the mstweight command.
package logging

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// ErrInvalidLevel is returned for a level name zerolog does not know.
var ErrInvalidLevel = errors.New("logging: invalid log level")

// Config holds logger configuration options
type Config struct {
	// Format specifies the log output format: "json" or "console"
	Format string
	// Level specifies the minimum log level: "debug", "info", "warn", "error"
	Level string
	// Output specifies where logs are written (defaults to os.Stderr)
	Output io.Writer
}

// DefaultConfig returns the default logger configuration
func DefaultConfig() Config {
	return Config{
		Format: "console",
		Level:  "warn",
		Output: os.Stderr,
	}
}

// NewLogger creates a zerolog logger from cfg.
// Format "console" (or its alias "text") selects zerolog's ConsoleWriter;
// any other value, "json" included, falls back to JSON.
func NewLogger(cfg Config) (zerolog.Logger, error) {
	level, err := parseLevel(cfg.Level)
	if err != nil {
		return zerolog.Nop(), err
	}

	output := cfg.Output
	if output == nil {
		output = os.Stderr
	}

	if strings.ToLower(cfg.Format) == "console" || strings.ToLower(cfg.Format) == "text" {
		output = zerolog.ConsoleWriter{Out: output, TimeFormat: time.RFC3339, NoColor: true}
	}

	return zerolog.New(output).Level(level).With().Timestamp().Logger(), nil
}

// DiscardLogger returns a logger that drops everything.
func DiscardLogger() zerolog.Logger {
	return zerolog.Nop()
}

func parseLevel(level string) (zerolog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return zerolog.DebugLevel, nil
	case "", "info":
		return zerolog.InfoLevel, nil
	case "warn", "warning":
		return zerolog.WarnLevel, nil
	case "error":
		return zerolog.ErrorLevel, nil
	default:
		return zerolog.NoLevel, fmt.Errorf("%w: %q", ErrInvalidLevel, level)
	}
}
