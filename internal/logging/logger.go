// Package logging wraps log/slog with bitmask-specific fields.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with bitmask-specific context.
// This provides structured logging with consistent field names.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a new Logger with the given handler.
// If handler is nil, uses default text handler to stderr.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewJSONLogger creates a Logger that writes JSON-formatted logs to w.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(w io.Writer, level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger that writes human-readable text logs to w.
func NewTextLogger(w io.Writer, level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return NewLogger(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	}))
}

// New builds a Logger from a level name ("debug", "info", "warn", "error")
// and a format ("text" or "json").
func New(w io.Writer, level, format string) (*Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}
	switch format {
	case "text":
		return NewTextLogger(w, lvl), nil
	case "json":
		return NewJSONLogger(w, lvl), nil
	default:
		return nil, fmt.Errorf("invalid log format %q", format)
	}
}

// WithWidth adds the storage word width to the logger.
func (l *Logger) WithWidth(width int) *Logger {
	return &Logger{
		Logger: l.Logger.With("width", width),
	}
}

// WithCodec adds the record codec name to the logger.
func (l *Logger) WithCodec(name string) *Logger {
	return &Logger{
		Logger: l.Logger.With("codec", name),
	}
}

// LogDecode logs the decoding of a record.
func (l *Logger) LogDecode(ctx context.Context, length uint, err error) {
	if err != nil {
		l.ErrorContext(ctx, "decode failed",
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "decode completed",
			"length", length,
		)
	}
}

// LogOp logs a mask operation and the length of its result.
func (l *Logger) LogOp(ctx context.Context, op string, length uint, err error) {
	if err != nil {
		l.ErrorContext(ctx, "operation failed",
			"op", op,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "operation completed",
			"op", op,
			"length", length,
		)
	}
}
