package geoquad

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with geoquad-specific context.
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

// WithPrecision adds a precision field to the logger.
func (l *Logger) WithPrecision(p uint) *Logger {
	return &Logger{
		Logger: l.Logger.With("precision", p),
	}
}

// WithCode adds a code field to the logger.
func (l *Logger) WithCode(code Code) *Logger {
	return &Logger{
		Logger: l.Logger.With("code", code.String()),
	}
}

// LogNearby logs a ring expansion.
func (l *Logger) LogNearby(ctx context.Context, code Code, radius float64, cells int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "nearby failed",
			"code", code.String(),
			"radius", radius,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "nearby completed",
			"code", code.String(),
			"radius", radius,
			"cells", cells,
		)
	}
}

// LogBatchCreate logs a batch encode.
func (l *Logger) LogBatchCreate(ctx context.Context, count int, err error) {
	if err != nil {
		l.WarnContext(ctx, "batch create failed",
			"count", count,
			"error", err,
		)
	} else {
		l.InfoContext(ctx, "batch create completed",
			"count", count,
		)
	}
}
