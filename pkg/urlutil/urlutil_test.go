package urlutil_test

import (
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/go-ports/pnputil/pkg/urlutil"
)

func ptr(s string) *string { return &s }

func TestCombinePaths_HappyPath(t *testing.T) {
	c := qt.New(t)

	cases := []struct {
		name     string
		segments []string
		want     string
	}{
		{"strips one separator each side", []string{"/a/", "/b/", "c"}, "a/b/c"},
		{"no segments", nil, ""},
		{"single segment", []string{"/only/"}, "only"},
		{"back-slashes normalized", []string{`\a\`, `b\c`, `d\e`}, "a/b/c/d/e"},
		{"only one separator stripped", []string{"//a//", "b"}, "/a//b"},
		{"empty segment kept", []string{"a", "", "b"}, "a//b"},
		{"absolute base kept intact", []string{"https://h/root", "/site/page"}, "https://h/root/site/page"},
	}

	for _, tc := range cases {
		c.Run(tc.name, func(c *qt.C) {
			c.Assert(urlutil.CombinePaths(tc.segments...), qt.Equals, tc.want)
		})
	}
}

func TestIsAbsolute_HappyPath(t *testing.T) {
	c := qt.New(t)

	cases := []struct {
		url  string
		want bool
	}{
		{"http://example.com", true},
		{"https://example.com/x", true},
		{"HTTPS://EXAMPLE.COM", true},
		{"//cdn.example.com/x", true},
		{"/x", false},
		{"x/y", false},
		{"ftp://example.com", false},
		{"", false},
		{"see http://example.com", false},
	}

	for _, tc := range cases {
		c.Run(tc.url, func(c *qt.C) {
			c.Assert(urlutil.IsAbsolute(tc.url), qt.Equals, tc.want)
		})
	}
}

func TestMakeAbsolute_HappyPath(t *testing.T) {
	c := qt.New(t)

	cases := []struct {
		name string
		url  string
		ctx  *urlutil.PageContext
		want string
	}{
		{
			name: "absolute base",
			url:  "/site/page",
			ctx:  &urlutil.PageContext{WebAbsoluteURL: ptr("https://h/root")},
			want: "https://h/root/site/page",
		},
		{
			name: "absolute base preferred over server-relative",
			url:  "page",
			ctx: &urlutil.PageContext{
				WebAbsoluteURL:       ptr("https://h/root/"),
				WebServerRelativeURL: ptr("/root"),
			},
			want: "https://h/root/page",
		},
		{
			name: "server-relative fallback",
			url:  "lists/tasks",
			ctx:  &urlutil.PageContext{WebServerRelativeURL: ptr("/sites/dev")},
			want: "sites/dev/lists/tasks",
		},
		{
			name: "present but empty base still applies",
			url:  "/x",
			ctx:  &urlutil.PageContext{WebAbsoluteURL: ptr("")},
			want: "/x",
		},
		{
			name: "already absolute is unchanged",
			url:  "https://other/x",
			ctx:  &urlutil.PageContext{WebAbsoluteURL: ptr("https://h/root")},
			want: "https://other/x",
		},
		{
			name: "protocol-relative is unchanged",
			url:  "//cdn/x.js",
			ctx:  &urlutil.PageContext{WebAbsoluteURL: ptr("https://h/root")},
			want: "//cdn/x.js",
		},
		{
			name: "nil context is unchanged",
			url:  "/x",
			ctx:  nil,
			want: "/x",
		},
		{
			name: "context without bases is unchanged",
			url:  "/x",
			ctx:  &urlutil.PageContext{},
			want: "/x",
		},
	}

	for _, tc := range cases {
		c.Run(tc.name, func(c *qt.C) {
			c.Assert(urlutil.MakeAbsolute(tc.url, tc.ctx), qt.Equals, tc.want)
		})
	}
}

func TestResolve_ReportsApplied(t *testing.T) {
	c := qt.New(t)

	_, applied := urlutil.Resolve("/x", &urlutil.PageContext{})
	c.Assert(applied, qt.IsFalse)

	out, applied := urlutil.Resolve("/x", &urlutil.PageContext{WebServerRelativeURL: ptr("/web")})
	c.Assert(applied, qt.IsTrue)
	c.Assert(out, qt.Equals, "web/x")
}

func TestParsePageContext_HappyPath(t *testing.T) {
	c := qt.New(t)

	c.Run("both fields", func(c *qt.C) {
		ctx, err := urlutil.ParsePageContext([]byte(`{
			"webAbsoluteUrl": "https://contoso.example/sites/dev",
			"webServerRelativeUrl": "/sites/dev",
			"webTitle": "Dev"
		}`))
		c.Assert(err, qt.IsNil)
		c.Assert(ctx.WebAbsoluteURL, qt.IsNotNil)
		c.Assert(*ctx.WebAbsoluteURL, qt.Equals, "https://contoso.example/sites/dev")
		c.Assert(*ctx.WebServerRelativeURL, qt.Equals, "/sites/dev")
	})

	c.Run("missing and non-string fields are nil", func(c *qt.C) {
		ctx, err := urlutil.ParsePageContext([]byte(`{"webAbsoluteUrl": 7}`))
		c.Assert(err, qt.IsNil)
		c.Assert(ctx.WebAbsoluteURL, qt.IsNil)
		c.Assert(ctx.WebServerRelativeURL, qt.IsNil)
	})

	c.Run("empty string field is present", func(c *qt.C) {
		ctx, err := urlutil.ParsePageContext([]byte(`{"webServerRelativeUrl": ""}`))
		c.Assert(err, qt.IsNil)
		c.Assert(ctx.WebServerRelativeURL, qt.IsNotNil)
		c.Assert(*ctx.WebServerRelativeURL, qt.Equals, "")
	})
}

func TestParsePageContext_FailurePath(t *testing.T) {
	c := qt.New(t)

	for _, in := range []string{`not json`, `["a"]`, `"str"`} {
		c.Run(in, func(c *qt.C) {
			_, err := urlutil.ParsePageContext([]byte(in))
			c.Assert(err, qt.IsNotNil)
		})
	}
}
