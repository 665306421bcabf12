package logging

import (
	"context"
	"log/slog"
)

// String, Int and Float64 build attributes without importing log/slog.
func String(key, value string) slog.Attr { return slog.String(key, value) }

func Int(key string, value int) slog.Attr { return slog.Int(key, value) }

func Float64(key string, value float64) slog.Attr { return slog.Float64(key, value) }

// NewNop returns a logger that discards everything.
func NewNop() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// NewComponentLogger tags logger with a component name. A nil logger yields
// a discarding one.
func NewComponentLogger(logger *slog.Logger, component string) *slog.Logger {
	if logger == nil {
		logger = NewNop()
	}
	return logger.With(slog.String(FieldComponent, component))
}

const defaultHint = "check logs for details"

// Warn logs an operator-facing warning classified by event. error_hint and
// impact get defaults when attrs do not set them.
func Warn(logger *slog.Logger, event, msg string, attrs ...slog.Attr) {
	logEvent(logger, slog.LevelWarn, event, msg, attrs, FieldErrorHint, FieldImpact)
}

// Error logs a failure classified by event. error_hint gets a default when
// attrs do not set it.
func Error(logger *slog.Logger, event, msg string, attrs ...slog.Attr) {
	logEvent(logger, slog.LevelError, event, msg, attrs, FieldErrorHint)
}

func logEvent(logger *slog.Logger, level slog.Level, event, msg string, attrs []slog.Attr, required ...string) {
	if logger == nil {
		return
	}
	present := make(map[string]bool, len(attrs))
	for _, a := range attrs {
		present[a.Key] = true
	}
	if !present[FieldEventType] {
		attrs = append(attrs, slog.String(FieldEventType, event))
	}
	for _, key := range required {
		if present[key] {
			continue
		}
		switch key {
		case FieldErrorHint:
			attrs = append(attrs, slog.String(key, defaultHint))
		case FieldImpact:
			attrs = append(attrs, slog.String(key, "run continues"))
		}
	}
	logger.LogAttrs(context.Background(), level, msg, attrs...)
}
