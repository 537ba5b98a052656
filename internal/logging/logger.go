// SPDX-License-Identifier: MIT

// Package logging provides the named key/value logger used by the CLI.
// Model packages never log; only cmd/ does.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Level represents log severity.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// String returns the string representation of the level.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	default:
		return "unknown"
	}
}

// ParseLevel maps "debug", "info", "warn"/"warning" and "error"
// (case-insensitive) to a Level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug, nil
	case "", "info":
		return LevelInfo, nil
	case "warn", "warning":
		return LevelWarn, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("logging: unknown level %q", s)
	}
}

func (l Level) toSlog() slog.Level {
	switch l {
	case LevelDebug:
		return slog.LevelDebug
	case LevelWarn:
		return slog.LevelWarn
	case LevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// LoggerConfig holds configuration for creating loggers.
type LoggerConfig struct {
	// Name is attached to every record as "logger".
	Name string

	// Level is the minimum severity emitted.
	Level Level

	// Format is "text" (default) or "json".
	Format string

	// Output defaults to os.Stderr so stdout stays reserved for results.
	Output io.Writer
}

// DefaultLoggerConfig returns an info-level text config writing to stderr.
func DefaultLoggerConfig(name string) LoggerConfig {
	return LoggerConfig{
		Name:   name,
		Level:  LevelInfo,
		Format: "text",
		Output: os.Stderr,
	}
}

// Logger is a named structured logger taking alternating key/value pairs.
type Logger struct {
	name  string
	level Level
	sl    *slog.Logger
}

// New creates a logger with DefaultLoggerConfig(name).
func New(name string) *Logger {
	return NewLogger(DefaultLoggerConfig(name))
}

// NewLogger creates a logger from cfg.
func NewLogger(cfg LoggerConfig) *Logger {
	out := cfg.Output
	if out == nil {
		out = os.Stderr
	}
	hopts := &slog.HandlerOptions{Level: cfg.Level.toSlog()}

	var h slog.Handler
	if strings.EqualFold(cfg.Format, "json") {
		h = slog.NewJSONHandler(out, hopts)
	} else {
		h = slog.NewTextHandler(out, hopts)
	}
	sl := slog.New(h)
	if cfg.Name != "" {
		sl = sl.With("logger", cfg.Name)
	}

	return &Logger{name: cfg.Name, level: cfg.Level, sl: sl}
}

// Name returns the logger name.
func (l *Logger) Name() string { return l.name }

// GetLevel returns the minimum severity emitted.
func (l *Logger) GetLevel() Level { return l.level }

// With returns a child logger carrying the given key/value pairs.
func (l *Logger) With(kv ...any) *Logger {
	return &Logger{name: l.name, level: l.level, sl: l.sl.With(kv...)}
}

// WithRequestID tags every record with request_id.
func (l *Logger) WithRequestID(id string) *Logger {
	return l.With("request_id", id)
}

func (l *Logger) Debug(msg string, kv ...any) { l.sl.Debug(msg, kv...) }
func (l *Logger) Info(msg string, kv ...any)  { l.sl.Info(msg, kv...) }
func (l *Logger) Warn(msg string, kv ...any)  { l.sl.Warn(msg, kv...) }
func (l *Logger) Error(msg string, kv ...any) { l.sl.Error(msg, kv...) }
