package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"petrenko/internal/config"
)

// LogFileName is the file written inside logging.dir.
const LogFileName = "petrenko.log"

// Options describes logger construction parameters.
type Options struct {
	Level  string
	Format string
	// File, when set, receives every record in addition to Writer.
	File string
	// Writer defaults to os.Stderr.
	Writer io.Writer
}

// New builds a logger. The returned close function releases the log file
// opened for Options.File and is safe to call when none was opened.
func New(opts Options) (*slog.Logger, func() error, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, nil, err
	}

	out := opts.Writer
	if out == nil {
		out = os.Stderr
	}
	closeFn := func() error { return nil }
	if path := strings.TrimSpace(opts.File); path != "" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, nil, fmt.Errorf("create log directory: %w", err)
		}
		file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file %s: %w", path, err)
		}
		out = io.MultiWriter(out, file)
		closeFn = file.Close
	}

	// Caller locations only help when chasing a single line at debug level.
	withSource := level <= slog.LevelDebug

	var handler slog.Handler
	switch strings.ToLower(strings.TrimSpace(opts.Format)) {
	case "", "console":
		handler = newConsoleHandler(out, level, withSource)
	case "json":
		handler = slog.NewJSONHandler(out, &slog.HandlerOptions{
			Level:       level,
			AddSource:   withSource,
			ReplaceAttr: renameJSONKeys,
		})
	default:
		_ = closeFn()
		return nil, nil, fmt.Errorf("log format: unsupported value %q", opts.Format)
	}
	return slog.New(handler), closeFn, nil
}

// NewFromConfig builds the CLI logger: console records go to w (stderr when
// nil) so stdout carries only reports, and logging.dir adds a log file.
func NewFromConfig(cfg *config.Config, w io.Writer) (*slog.Logger, func() error, error) {
	if cfg == nil {
		def := config.Default()
		cfg = &def
	}
	opts := Options{Level: cfg.Logging.Level, Format: cfg.Logging.Format, Writer: w}
	if dir := strings.TrimSpace(cfg.Logging.Dir); dir != "" {
		opts.File = filepath.Join(dir, LogFileName)
	}
	return New(opts)
}

// ParseLevel accepts debug, info, warn and error in any case. Empty means info.
func ParseLevel(value string) (slog.Level, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return slog.LevelInfo, nil
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(value)); err != nil {
		return 0, fmt.Errorf("log level: unsupported value %q", value)
	}
	return level, nil
}

func renameJSONKeys(groups []string, attr slog.Attr) slog.Attr {
	if len(groups) > 0 {
		return attr
	}
	switch attr.Key {
	case slog.TimeKey:
		attr.Key = "ts"
		attr.Value = slog.StringValue(attr.Value.Time().UTC().Format(time.RFC3339))
	case slog.LevelKey:
		attr.Value = slog.StringValue(strings.ToLower(attr.Value.String()))
	case slog.SourceKey:
		if src, ok := attr.Value.Any().(*slog.Source); ok && src != nil {
			attr.Value = slog.StringValue(fmt.Sprintf("%s:%d", filepath.Base(src.File), src.Line))
		}
	}
	return attr
}
