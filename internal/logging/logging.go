// Package logging configures zerolog for the CLI and provides
// context-scoped loggers with trace IDs.
//
// The computation engines are pure and never log; loggers travel
// through context at orchestration points only.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Output formats.
const (
	// FormatConsole renders human-readable output to stderr.
	FormatConsole = "console"

	// FormatJSON renders one JSON object per line.
	FormatJSON = "json"
)

// Config controls logger construction.
type Config struct {
	// Level is a zerolog level name (trace, debug, info, warn, error).
	// Unparseable values fall back to info.
	Level string `yaml:"level" json:"level"`

	// Format selects console or json output.
	Format string `yaml:"format" json:"format"`

	// File, when set, appends logs to the given path instead of stderr.
	File string `yaml:"file,omitempty" json:"file,omitempty"`
}

// NewLogger builds a zerolog logger from the config. When a log file
// cannot be opened the logger falls back to stderr rather than failing
// the command; logging problems must never block a calculation.
func NewLogger(cfg Config) zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}

	var out io.Writer = os.Stderr
	if cfg.File != "" {
		if f, fileErr := os.OpenFile(cfg.File, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600); fileErr == nil {
			out = f
		}
	}

	if cfg.Format != FormatJSON {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339}
	}

	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

// ComponentLogger returns a child logger tagged with the component name.
func ComponentLogger(logger zerolog.Logger, component string) zerolog.Logger {
	return logger.With().Str("component", component).Logger()
}
