package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strconv"
	"sync"
	"time"
)

const consoleTimeLayout = "2006-01-02 15:04:05"

// consoleHandler renders one human-readable line per record. Attributes
// bound with WithAttrs are formatted once and reused.
type consoleHandler struct {
	mu         *sync.Mutex
	w          io.Writer
	level      slog.Leveler
	withSource bool

	component string
	file      string
	group     string // dotted prefix for attribute keys
	bound     []byte // preformatted " key=value" pairs
}

func newConsoleHandler(w io.Writer, level slog.Leveler, withSource bool) *consoleHandler {
	return &consoleHandler{mu: &sync.Mutex{}, w: w, level: level, withSource: withSource}
}

func (h *consoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *consoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	c := *h
	c.bound = append([]byte(nil), h.bound...)
	for _, a := range attrs {
		if c.group == "" && c.lift(a) {
			continue
		}
		c.bound = appendAttr(c.bound, c.group, a)
	}
	return &c
}

func (h *consoleHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	c := *h
	c.group = h.group + name + "."
	return &c
}

// lift moves the prefix fields out of the attribute list.
func (h *consoleHandler) lift(a slog.Attr) bool {
	switch a.Key {
	case FieldComponent:
		h.component = a.Value.Resolve().String()
	case FieldFile:
		h.file = filepath.Base(a.Value.Resolve().String())
	default:
		return false
	}
	return true
}

func (h *consoleHandler) Handle(_ context.Context, r slog.Record) error {
	rec := *h
	line := int64(-1)
	var tail []byte
	r.Attrs(func(a slog.Attr) bool {
		if rec.group == "" {
			if a.Key == FieldLine && a.Value.Kind() == slog.KindInt64 {
				line = a.Value.Int64()
				return true
			}
			if rec.lift(a) {
				return true
			}
		}
		tail = appendAttr(tail, rec.group, a)
		return true
	})

	ts := r.Time
	if ts.IsZero() {
		ts = time.Now()
	}
	buf := make([]byte, 0, 160+len(h.bound)+len(tail))
	buf = ts.In(time.Local).AppendFormat(buf, consoleTimeLayout)
	buf = fmt.Appendf(buf, " %-5s ", levelName(r.Level))
	if rec.component != "" {
		buf = append(buf, rec.component...)
		buf = append(buf, ": "...)
	}
	if r.Message == "" {
		buf = append(buf, "(no message)"...)
	} else {
		buf = append(buf, r.Message...)
	}
	buf = appendLocation(buf, rec.file, line)
	if h.withSource && r.PC != 0 {
		if src := r.Source(); src != nil {
			buf = fmt.Appendf(buf, " [%s:%d]", filepath.Base(src.File), src.Line)
		}
	}
	buf = append(buf, h.bound...)
	buf = append(buf, tail...)
	buf = append(buf, '\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.w.Write(buf)
	return err
}

// appendLocation writes " (file:line)", " (line N)" or " (file)".
func appendLocation(buf []byte, file string, line int64) []byte {
	switch {
	case file != "" && line >= 0:
		return fmt.Appendf(buf, " (%s:%d)", file, line)
	case line >= 0:
		return fmt.Appendf(buf, " (line %d)", line)
	case file != "":
		return fmt.Appendf(buf, " (%s)", file)
	}
	return buf
}

func appendAttr(buf []byte, group string, a slog.Attr) []byte {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return buf
	}
	if a.Value.Kind() == slog.KindGroup {
		if a.Key != "" {
			group += a.Key + "."
		}
		for _, g := range a.Value.Group() {
			buf = appendAttr(buf, group, g)
		}
		return buf
	}
	buf = append(buf, ' ')
	buf = append(buf, group...)
	buf = append(buf, a.Key...)
	buf = append(buf, '=')
	return appendValue(buf, a.Value)
}

// appendValue prints numbers the way reports do: scores such as 13.5 or 32
// keep their shortest exact form rather than exponent notation.
func appendValue(buf []byte, v slog.Value) []byte {
	switch v.Kind() {
	case slog.KindFloat64:
		return strconv.AppendFloat(buf, v.Float64(), 'f', -1, 64)
	case slog.KindInt64:
		return strconv.AppendInt(buf, v.Int64(), 10)
	case slog.KindUint64:
		return strconv.AppendUint(buf, v.Uint64(), 10)
	case slog.KindBool:
		return strconv.AppendBool(buf, v.Bool())
	case slog.KindDuration:
		return append(buf, v.Duration().String()...)
	case slog.KindTime:
		return v.Time().In(time.Local).AppendFormat(buf, consoleTimeLayout)
	}
	var s string
	if err, ok := v.Any().(error); ok && v.Kind() == slog.KindAny {
		s = err.Error()
	} else {
		s = v.String()
	}
	if needsQuoting(s) {
		return strconv.AppendQuote(buf, s)
	}
	return append(buf, s...)
}

func needsQuoting(s string) bool {
	if s == "" {
		return true
	}
	for _, r := range s {
		if r <= ' ' || r == '=' || r == '"' {
			return true
		}
	}
	return false
}

func levelName(level slog.Level) string {
	switch {
	case level >= slog.LevelError:
		return "ERROR"
	case level >= slog.LevelWarn:
		return "WARN"
	case level >= slog.LevelInfo:
		return "INFO"
	}
	return "DEBUG"
}
