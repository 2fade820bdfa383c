package recallgo

import (
	"context"
	"log/slog"
	"os"
	"time"
)

// Logger wraps slog.Logger with recallgo-specific helpers.
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

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
// level sets the minimum log level (e.g., slog.LevelDebug, slog.LevelInfo).
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards all log output.
// Use this to disable logging entirely.
func NoopLogger() *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// LogIndexBuild logs the construction of the search index.
func (l *Logger) LogIndexBuild(ctx context.Context, backend string, count, dimension int, duration time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "index build failed",
			"backend", backend,
			"count", count,
			"dimension", dimension,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "index build completed",
			"backend", backend,
			"count", count,
			"dimension", dimension,
			"duration", duration,
		)
	}
}

// LogSearch logs the batch search phase.
func (l *Logger) LogSearch(ctx context.Context, queries, k int, duration time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "search failed",
			"queries", queries,
			"k", k,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "search completed",
			"queries", queries,
			"k", k,
			"duration", duration,
		)
	}
}

// LogEvaluate logs a completed evaluation.
func (l *Logger) LogEvaluate(ctx context.Context, label string, queries int, kValues []int, duration time.Duration, err error) {
	if err != nil {
		l.ErrorContext(ctx, "evaluation failed",
			"dataset", label,
			"queries", queries,
			"k_values", kValues,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "evaluation completed",
			"dataset", label,
			"queries", queries,
			"k_values", kValues,
			"duration", duration,
		)
	}
}
