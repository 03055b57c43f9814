package mcp

// White-box testing required: pageContextFor and clamp are unexported
// helpers that shape tool arguments before they reach the kit. Their
// overlay and bounds rules are easier to pin down directly than through
// the full MCP round trip.

import (
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/go-ports/pnputil/internal/config"
)

// ---------------------------------------------------------------------------
// pageContextFor
// ---------------------------------------------------------------------------

func TestPageContextFor_HappyPath(t *testing.T) {
	c := qt.New(t)

	abs := "https://configured/web"
	cfg := config.Default()
	cfg.Page.WebAbsoluteURL = &abs

	c.Run("no overrides returns configured context", func(c *qt.C) {
		pc := pageContextFor(cfg, map[string]any{"url": "/x"})
		c.Assert(pc, qt.IsNotNil)
		c.Assert(*pc.WebAbsoluteURL, qt.Equals, abs)
		c.Assert(pc.WebServerRelativeURL, qt.IsNil)
	})

	c.Run("override replaces one field and keeps the other", func(c *qt.C) {
		pc := pageContextFor(cfg, map[string]any{"web_server_relative_url": "/rel"})
		c.Assert(*pc.WebAbsoluteURL, qt.Equals, abs)
		c.Assert(*pc.WebServerRelativeURL, qt.Equals, "/rel")
		c.Assert(cfg.Page.WebServerRelativeURL, qt.IsNil)
	})

	c.Run("override without configured context", func(c *qt.C) {
		pc := pageContextFor(config.Default(), map[string]any{"web_absolute_url": "https://arg"})
		c.Assert(*pc.WebAbsoluteURL, qt.Equals, "https://arg")
	})

	c.Run("nothing configured and no overrides", func(c *qt.C) {
		c.Assert(pageContextFor(config.Default(), nil), qt.IsNil)
	})

	c.Run("non-string override ignored", func(c *qt.C) {
		pc := pageContextFor(config.Default(), map[string]any{"web_absolute_url": 7})
		c.Assert(pc, qt.IsNil)
	})
}

// ---------------------------------------------------------------------------
// clamp
// ---------------------------------------------------------------------------

func TestClamp_HappyPath(t *testing.T) {
	c := qt.New(t)

	cases := []struct {
		name      string
		n, lo, hi int
		want      int
	}{
		{"inside", 5, 1, 10, 5},
		{"below", -3, 1, 10, 1},
		{"above", 500, 1, 100, 100},
		{"at bounds", 1, 1, 1, 1},
	}

	for _, tc := range cases {
		c.Run(tc.name, func(c *qt.C) {
			c.Assert(clamp(tc.n, tc.lo, tc.hi), qt.Equals, tc.want)
		})
	}
}
