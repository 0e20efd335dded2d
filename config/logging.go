package config

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// NewLogger builds a zerolog logger writing to w. Format "json" emits raw
// JSON lines; anything else uses the human-readable console writer. An
// unparsable level falls back to info.
func NewLogger(w io.Writer, level, format string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}

	out := w
	if format != "json" {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}

	return zerolog.New(out).
		Level(lvl).
		With().
		Timestamp().
		Logger()
}

// InitLogger returns the application logger on stderr.
func InitLogger(cfg LogConfig) zerolog.Logger {
	return NewLogger(os.Stderr, cfg.Level, cfg.Format)
}

// ComponentLogger tags a logger with a component name.
func ComponentLogger(l zerolog.Logger, component string) zerolog.Logger {
	return l.With().Str("component", component).Logger()
}
