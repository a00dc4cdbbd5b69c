// Package logger holds the process-wide zerolog logger.
//
// LOG_LEVEL (debug, info, warn, error) and LOG_PRETTY (true for a console
// writer instead of JSON lines) are read once by Init. Logs go to stderr so
// they never mix with anything the dashboard prints.
package logger

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

var (
	root  zerolog.Logger
	ready bool
)

// Init builds the global logger from the environment.
func Init() {
	InitWriter(os.Stderr)
}

// InitWriter is Init writing to out.
func InitWriter(out io.Writer) {
	root = New(out, levelFromEnv(), strings.EqualFold(os.Getenv("LOG_PRETTY"), "true"))
	ready = true
}

// New returns a timestamped logger at level. With pretty set, entries are
// rendered for a terminal.
func New(out io.Writer, level zerolog.Level, pretty bool) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339Nano
	if pretty {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen}
	}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}

// L returns the global logger, initializing it on first use.
func L() *zerolog.Logger {
	if !ready {
		Init()
	}
	return &root
}

// Component returns a child logger tagged with the name of a subsystem.
func Component(name string) zerolog.Logger {
	return L().With().Str("component", name).Logger()
}

func levelFromEnv() zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(os.Getenv("LOG_LEVEL"))) {
	case "debug":
		return zerolog.DebugLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error", "err":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
