// Package logging provides structured logging for the sync pipeline on top
// of log/slog, with component-scoped child loggers so watcher, dispatcher,
// and render logs are distinguishable in one stream.
package logging

import (
	"io"
	"log/slog"
	"os"
	"strings"
)

// Config holds logger configuration.
type Config struct {
	Level  string // debug, info, warn, error
	Format string // text or json
	Output io.Writer
}

// Logger wraps slog.Logger with the error-first Warn/Error signatures used
// throughout the pipeline.
type Logger struct {
	sl *slog.Logger
}

// New creates a logger. A nil or zero Config yields an info-level text
// logger on stderr.
func New(cfg Config) *Logger {
	if cfg.Output == nil {
		cfg.Output = os.Stderr
	}

	var level slog.Level
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if strings.ToLower(cfg.Format) == "json" {
		handler = slog.NewJSONHandler(cfg.Output, opts)
	} else {
		handler = slog.NewTextHandler(cfg.Output, opts)
	}

	return &Logger{sl: slog.New(handler)}
}

// Discard returns a logger that drops everything. Used in tests.
func Discard() *Logger {
	return New(Config{Level: "error", Output: io.Discard})
}

// WithComponent returns a child logger tagged with a component name.
func (l *Logger) WithComponent(name string) *Logger {
	return &Logger{sl: l.sl.With("component", name)}
}

// With returns a child logger with extra key/value fields.
func (l *Logger) With(args ...any) *Logger {
	return &Logger{sl: l.sl.With(args...)}
}

// Debug logs a debug message.
func (l *Logger) Debug(msg string, args ...any) {
	l.sl.Debug(msg, args...)
}

// Info logs an info message.
func (l *Logger) Info(msg string, args ...any) {
	l.sl.Info(msg, args...)
}

// Warn logs a warning, attaching err when non-nil.
func (l *Logger) Warn(err error, msg string, args ...any) {
	if err != nil {
		args = append(args, "error", err)
	}
	l.sl.Warn(msg, args...)
}

// Error logs an error, attaching err when non-nil.
func (l *Logger) Error(err error, msg string, args ...any) {
	if err != nil {
		args = append(args, "error", err)
	}
	l.sl.Error(msg, args...)
}
