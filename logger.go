package koaladb

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger with store-specific helpers.
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
	return &Logger{Logger: slog.New(handler)}
}

// NewJSONLogger creates a Logger that outputs JSON-formatted logs.
func NewJSONLogger(level slog.Level) *Logger {
	return &Logger{Logger: slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))}
}

// NewTextLogger creates a Logger that outputs human-readable text logs.
func NewTextLogger(level slog.Level) *Logger {
	return &Logger{Logger: slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))}
}

// NoopLogger creates a Logger that discards all log output.
func NoopLogger() *Logger {
	return &Logger{Logger: slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000), // Unreachable level
	}))}
}

// WithCollection adds a collection field to the logger.
func (l *Logger) WithCollection(name string) *Logger {
	return &Logger{Logger: l.Logger.With("collection", name)}
}

// LogCreate logs a document creation.
func (l *Logger) LogCreate(collection, id string, err error) {
	if err != nil {
		l.Error("create failed", "collection", collection, "id", id, "error", err)
	} else {
		l.Debug("document created", "collection", collection, "id", id)
	}
}

// LogUpdate logs a document update.
func (l *Logger) LogUpdate(collection, id string, err error) {
	if err != nil {
		l.Error("update failed", "collection", collection, "id", id, "error", err)
	} else {
		l.Debug("document updated", "collection", collection, "id", id)
	}
}

// LogDelete logs a document deletion.
func (l *Logger) LogDelete(collection, id string, err error) {
	if err != nil {
		l.Error("delete failed", "collection", collection, "id", id, "error", err)
	} else {
		l.Debug("document deleted", "collection", collection, "id", id)
	}
}

// LogPersist logs a backing-file rewrite.
func (l *Logger) LogPersist(collection string, docs int, err error) {
	if err != nil {
		l.Error("persist failed", "collection", collection, "documents", docs, "error", err)
	} else {
		l.Debug("collection persisted", "collection", collection, "documents", docs)
	}
}

// LogCleanup logs an age-based cleanup pass.
func (l *Logger) LogCleanup(collection string, removed int) {
	if removed > 0 {
		l.Info("old documents cleaned up", "collection", collection, "removed", removed)
	}
}
