// Package logging configures the process-wide slog logger.
package logging

import (
	"io"
	"log/slog"
	"strings"
	"time"
)

// ParseLevel maps a level name to a slog.Level. Unknown names fall back to
// info and report false.
func ParseLevel(name string) (slog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug, true
	case "info", "":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	}
	return slog.LevelInfo, false
}

// Setup installs a text handler writing to w as the slog default and returns
// the logger. Timestamps are rendered in UTC.
func Setup(w io.Writer, level string) *slog.Logger {
	lvl, ok := ParseLevel(level)

	h := slog.NewTextHandler(w, &slog.HandlerOptions{
		Level:     lvl,
		AddSource: lvl == slog.LevelDebug,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
				a.Value = slog.StringValue(a.Value.Time().UTC().Format(time.RFC3339Nano))
			}
			return a
		},
	})

	l := slog.New(h)
	slog.SetDefault(l)
	if !ok {
		l.Warn("logging: unknown level, using info", "level", level)
	}
	return l
}
