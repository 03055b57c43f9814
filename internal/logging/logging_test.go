package logging_test

import (
	"bytes"
	"log/slog"
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/go-ports/pnputil/internal/logging"
)

func TestParseLevel_HappyPath(t *testing.T) {
	c := qt.New(t)

	cases := []struct {
		in     string
		want   slog.Level
		wantOK bool
	}{
		{"debug", slog.LevelDebug, true},
		{"INFO", slog.LevelInfo, true},
		{"", slog.LevelInfo, true},
		{"warning", slog.LevelWarn, true},
		{" error ", slog.LevelError, true},
		{"verbose", slog.LevelInfo, false},
	}

	for _, tc := range cases {
		c.Run(tc.in, func(c *qt.C) {
			got, ok := logging.ParseLevel(tc.in)
			c.Assert(got, qt.Equals, tc.want)
			c.Assert(ok, qt.Equals, tc.wantOK)
		})
	}
}

func TestSetup_HappyPath(t *testing.T) {
	c := qt.New(t)

	prev := slog.Default()
	c.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	l := logging.Setup(&buf, "warn")
	l.Info("hidden")
	slog.Warn("shown", "k", "v")

	out := buf.String()
	c.Assert(out, qt.Not(qt.Contains), "hidden")
	c.Assert(out, qt.Contains, "msg=shown")
	c.Assert(out, qt.Contains, "k=v")
}

func TestSetup_UnknownLevel(t *testing.T) {
	c := qt.New(t)

	prev := slog.Default()
	c.Cleanup(func() { slog.SetDefault(prev) })

	var buf bytes.Buffer
	logging.Setup(&buf, "loud")
	c.Assert(buf.String(), qt.Contains, "unknown level")
}
