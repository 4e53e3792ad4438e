package arrayx

import (
	"context"
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with arrayx-specific helpers.
// This keeps field names consistent across scans.
type Logger struct {
	*slog.Logger
}

// NewLogger creates a Logger for Finder scans on top of handler.
// A nil handler logs text to stderr at info level, which hides the
// per-scan debug records.
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

// NewJSONLogger creates a Logger writing JSON records to stderr.
// Pass slog.LevelDebug to see every completed scan; slog.LevelError only
// reports cancelled ones.
func NewJSONLogger(level slog.Level) *Logger {
	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NewTextLogger creates a Logger writing key=value records to stderr at level.
func NewTextLogger(level slog.Level) *Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})
	return &Logger{
		Logger: slog.New(handler),
	}
}

// NoopLogger creates a Logger that discards everything. Finders use it
// unless WithLogger is given.
func NoopLogger() *Logger {
	return &Logger{
		Logger: slog.New(slog.DiscardHandler),
	}
}

// WithCount adds an element count field to the logger.
func (l *Logger) WithCount(count int) *Logger {
	return &Logger{
		Logger: l.Logger.With("count", count),
	}
}

// WithChunks adds a chunk count field to the logger.
func (l *Logger) WithChunks(chunks int) *Logger {
	return &Logger{
		Logger: l.Logger.With("chunks", chunks),
	}
}

// LogScan logs the outcome of a scan. op names the operation
// ("min_index", "max_index").
func (l *Logger) LogScan(ctx context.Context, op string, count, chunks, index int, err error) {
	if err != nil {
		l.ErrorContext(ctx, "scan failed",
			"op", op,
			"count", count,
			"chunks", chunks,
			"error", err,
		)
	} else {
		l.DebugContext(ctx, "scan completed",
			"op", op,
			"count", count,
			"chunks", chunks,
			"index", index,
		)
	}
}
