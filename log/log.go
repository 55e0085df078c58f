// Package log provides a concurrency-safe simplified logging interface over
// log/slog with functional-option configuration.
package log

import (
	"context"
	"io"
	"log/slog"
	"sync"
)

// Logger provides a simplified structured logging interface.
type Logger struct {
	*slog.Logger

	cfg config
}

// Make creates a new [Logger] that writes to the specified writer, or to
// stderr when w is nil. Optional configuration can be applied using
// functional options like [WithFormat] and [WithLevel].
func Make(w io.Writer, opts ...Option) Logger {
	cfg := defaultConfig()
	if w != nil {
		cfg.writer = w
	}

	cfg = apply(cfg, opts...)

	return Logger{
		cfg:    cfg,
		Logger: slog.New(cfg.handler()),
	}
}

// Wrap returns a new [Logger] based on the receiver's configuration with
// the provided options applied on top.
func (l Logger) Wrap(opts ...Option) Logger {
	cfg := apply(l.cfg, opts...)

	return Logger{
		cfg:    cfg,
		Logger: slog.New(cfg.handler()),
	}
}

// Package-level default logger, reconfigurable via [Config].
//
//nolint:gochecknoglobals
var (
	defaultMu     sync.RWMutex
	defaultLogger = Make(nil)
)

// Config reconfigures the package-level default logger.
func Config(opts ...Option) {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	defaultLogger = defaultLogger.Wrap(opts...)
}

// Default returns the package-level default logger.
func Default() Logger {
	defaultMu.RLock()
	defer defaultMu.RUnlock()

	return defaultLogger
}

// Debug logs at [LevelDebug] with the default logger.
func Debug(msg string, args ...any) { Default().Debug(msg, args...) }

// Info logs at [LevelInfo] with the default logger.
func Info(msg string, args ...any) { Default().Info(msg, args...) }

// Warn logs at [LevelWarn] with the default logger.
func Warn(msg string, args ...any) { Default().Warn(msg, args...) }

// Error logs at [LevelError] with the default logger.
func Error(msg string, args ...any) { Default().Error(msg, args...) }

// DebugContext logs at [LevelDebug] with the default logger.
func DebugContext(ctx context.Context, msg string, args ...any) {
	Default().DebugContext(ctx, msg, args...)
}

// InfoContext logs at [LevelInfo] with the default logger.
func InfoContext(ctx context.Context, msg string, args ...any) {
	Default().InfoContext(ctx, msg, args...)
}

// ErrorContext logs at [LevelError] with the default logger.
func ErrorContext(ctx context.Context, msg string, args ...any) {
	Default().ErrorContext(ctx, msg, args...)
}
