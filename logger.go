package topogo

import (
	"log/slog"
	"os"
)

// Logger wraps slog.Logger so every pipeline emits structured records
// with consistent field names (pipeline, sample, workers, duration).
type Logger struct {
	*slog.Logger
}

// NewLogger creates a Logger backed by the given slog handler. A nil
// handler falls back to a text handler on stderr at Info level.
func NewLogger(handler slog.Handler) *Logger {
	if handler == nil {
		handler = slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		})
	}
	return &Logger{Logger: slog.New(handler)}
}

// NewJSONLogger creates a Logger emitting JSON records to stderr at
// the given minimum level.
func NewJSONLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NewTextLogger creates a Logger emitting human-readable records to
// stderr at the given minimum level.
func NewTextLogger(level slog.Level) *Logger {
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}

// NoopLogger creates a Logger that discards everything. Builders use
// it when no logger is configured.
func NoopLogger() *Logger {
	// A level no record reaches.
	return NewLogger(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.Level(1000),
	}))
}

// WithPipeline adds the pipeline-name field.
func (l *Logger) WithPipeline(name string) *Logger {
	return &Logger{Logger: l.Logger.With("pipeline", name)}
}

// WithSample adds the sample-index field.
func (l *Logger) WithSample(i int) *Logger {
	return &Logger{Logger: l.Logger.With("sample", i)}
}
