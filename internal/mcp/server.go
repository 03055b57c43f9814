// Package mcp provides the stdio MCP server exposing the kit's helpers as
// tools.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/go-ports/pnputil/internal/buildinfo"
	"github.com/go-ports/pnputil/internal/config"
	"github.com/go-ports/pnputil/pkg/dateutil"
	"github.com/go-ports/pnputil/pkg/ident"
	"github.com/go-ports/pnputil/pkg/objutil"
	"github.com/go-ports/pnputil/pkg/query"
	"github.com/go-ports/pnputil/pkg/strutil"
	"github.com/go-ports/pnputil/pkg/stylesheet"
	"github.com/go-ports/pnputil/pkg/urlutil"
)

const (
	maxGUIDs        = 100
	maxRandomLength = 4096
)

var unitNames = func() []string {
	out := make([]string, len(dateutil.Units))
	for i, u := range dateutil.Units {
		out[i] = string(u)
	}
	return out
}()

// NewServer creates and registers all kit tools on a new MCP server.
// It is separate from Serve so that tests can obtain a configured server
// without committing to the stdio transport.
func NewServer(cfg *config.KitConfig) *mcpserver.MCPServer {
	if cfg == nil {
		cfg = config.Default()
	}
	s := mcpserver.NewMCPServer("pnputil", buildinfo.Version)
	registerTools(s, cfg)
	return s
}

// Serve starts the stdio MCP server, blocking until stdin closes.
func Serve(_ context.Context, cfg *config.KitConfig) error {
	return mcpserver.ServeStdio(NewServer(cfg))
}

// registerTools wires every kit tool into the server.
func registerTools(s *mcpserver.MCPServer, cfg *config.KitConfig) {
	s.AddTool(mcp.NewTool("kit_guid",
		mcp.WithDescription("Generate v4-shaped GUIDs for correlation. Not suitable as secrets."),
		mcp.WithNumber("count",
			mcp.Description("How many GUIDs to return (default 1, max 100)."),
		),
	), func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleGUID(req)
	})

	s.AddTool(mcp.NewTool("kit_random_string",
		mcp.WithDescription("Generate a random alphanumeric string of the given length."),
		mcp.WithNumber("length",
			mcp.Description("Number of characters (max 4096)."),
			mcp.Required(),
		),
	), func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleRandomString(req)
	})

	s.AddTool(mcp.NewTool("kit_date_add",
		mcp.WithDescription("Add a calendar interval to an RFC 3339 date."),
		mcp.WithString("date",
			mcp.Description("RFC 3339 timestamp, e.g. 2021-01-31T00:00:00Z."),
			mcp.Required(),
		),
		mcp.WithString("unit",
			mcp.Description("Interval unit."),
			mcp.Required(),
			mcp.Enum(unitNames...),
		),
		mcp.WithNumber("amount",
			mcp.Description("Amount to add; negative subtracts."),
			mcp.Required(),
		),
	), func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleDateAdd(req)
	})

	s.AddTool(mcp.NewTool("kit_combine_paths",
		mcp.WithDescription("Join path segments with single forward slashes."),
		mcp.WithArray("segments",
			mcp.Description("Path segments in order."),
			mcp.WithStringItems(),
		),
	), func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return jsonResult(map[string]any{
			"path": urlutil.CombinePaths(req.GetStringSlice("segments", nil)...),
		})
	})

	s.AddTool(mcp.NewTool("kit_make_absolute",
		mcp.WithDescription("Resolve a relative URL against the page context. Arguments override the configured context."),
		mcp.WithString("url",
			mcp.Description("URL to resolve."),
			mcp.Required(),
		),
		mcp.WithString("web_absolute_url",
			mcp.Description("Absolute base URL of the web."),
		),
		mcp.WithString("web_server_relative_url",
			mcp.Description("Server-relative base URL of the web."),
		),
	), func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleMakeAbsolute(cfg, req)
	})

	s.AddTool(mcp.NewTool("kit_query_param",
		mcp.WithDescription("Read a parameter from a query string (defaults to the configured query)."),
		mcp.WithString("name",
			mcp.Description("Parameter name, matched literally."),
			mcp.Required(),
		),
		mcp.WithString("query",
			mcp.Description("Query string such as ?a=1&b=2."),
		),
	), func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleQueryParam(cfg, req)
	})

	s.AddTool(mcp.NewTool("kit_insert",
		mcp.WithDescription("Insert a fragment into a string before the given rune index."),
		mcp.WithString("target", mcp.Required()),
		mcp.WithNumber("index", mcp.Required()),
		mcp.WithString("fragment", mcp.Required()),
	), func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return jsonResult(map[string]any{
			"value": strutil.InsertAt(req.GetString("target", ""), req.GetInt("index", 0), req.GetString("fragment", "")),
		})
	})

	s.AddTool(mcp.NewTool("kit_extend",
		mcp.WithDescription("Shallow-merge two JSON objects; source wins unless no_overwrite is set."),
		mcp.WithString("target",
			mcp.Description("Target JSON object."),
			mcp.Required(),
		),
		mcp.WithString("source",
			mcp.Description("Source JSON object."),
			mcp.Required(),
		),
		mcp.WithBoolean("no_overwrite",
			mcp.Description("Keep existing target keys."),
		),
	), func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleExtend(req)
	})

	s.AddTool(mcp.NewTool("kit_inject_stylesheet",
		mcp.WithDescription("Append a stylesheet link to the <head> of an HTML document."),
		mcp.WithString("html",
			mcp.Description("HTML document."),
			mcp.Required(),
		),
		mcp.WithString("href",
			mcp.Description("Stylesheet URL."),
			mcp.Required(),
		),
		mcp.WithBoolean("avoid_cache",
			mcp.Description("Append a timestamp query to defeat caching."),
		),
	), func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleInjectStylesheet(req)
	})
}

// ---------------------------------------------------------------------------
// Tool handlers
// ---------------------------------------------------------------------------

func handleGUID(req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	count := clamp(req.GetInt("count", 1), 1, maxGUIDs)
	guids := make([]string, count)
	for i := range guids {
		guids[i] = ident.GUID()
	}
	return jsonResult(map[string]any{"guids": guids})
}

func handleRandomString(req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	length := req.GetInt("length", 0)
	if length > maxRandomLength {
		return mcp.NewToolResultError(fmt.Sprintf("length must be at most %d", maxRandomLength)), nil
	}
	return jsonResult(map[string]any{"value": ident.RandomString(length)})
}

func handleDateAdd(req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	t, err := time.Parse(time.RFC3339, req.GetString("date", ""))
	if err != nil {
		return mcp.NewToolResultError("date: " + err.Error()), nil
	}
	name := req.GetString("unit", "")
	unit, ok := dateutil.ParseUnit(name)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("unrecognized unit %q (want one of %s)", name, strings.Join(unitNames, ", "))), nil
	}
	amount := req.GetInt("amount", 0)
	out, ok := dateutil.AddUnit(t, unit, amount)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("%d %s is out of range", amount, unit)), nil
	}
	return jsonResult(map[string]any{"date": out.Format(time.RFC3339)})
}

func handleMakeAbsolute(cfg *config.KitConfig, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	u := req.GetString("url", "")
	resolved, applied := urlutil.Resolve(u, pageContextFor(cfg, req.GetArguments()))
	if !applied && !urlutil.IsAbsolute(u) {
		slog.Debug("kit_make_absolute: no page context base, url unchanged", "url", u)
	}
	return jsonResult(map[string]any{
		"url":     resolved,
		"applied": applied,
	})
}

func handleQueryParam(cfg *config.KitConfig, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	params := cfg.Params()
	if q, ok := req.GetArguments()["query"].(string); ok {
		params = query.New(q)
	}
	name := req.GetString("name", "")
	return jsonResult(map[string]any{
		"exists": params.Exists(name),
		"value":  params.Get(name),
		"bool":   params.Bool(name),
	})
}

func handleExtend(req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	out, err := objutil.ExtendJSON(
		[]byte(req.GetString("target", "")),
		[]byte(req.GetString("source", "")),
		req.GetBool("no_overwrite", false),
	)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(out)), nil
}

func handleInjectStylesheet(req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var sb strings.Builder
	injected, err := stylesheet.InjectHTML(
		strings.NewReader(req.GetString("html", "")), &sb,
		req.GetString("href", ""), req.GetBool("avoid_cache", false),
	)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return jsonResult(map[string]any{
		"injected": injected,
		"html":     sb.String(),
	})
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// pageContextFor overlays per-call base URLs onto the configured context.
func pageContextFor(cfg *config.KitConfig, args map[string]any) *urlutil.PageContext {
	pc := cfg.PageContext()
	abs, hasAbs := args["web_absolute_url"].(string)
	rel, hasRel := args["web_server_relative_url"].(string)
	if !hasAbs && !hasRel {
		return pc
	}
	out := &urlutil.PageContext{}
	if pc != nil {
		*out = *pc
	}
	if hasAbs {
		out.WebAbsoluteURL = &abs
	}
	if hasRel {
		out.WebServerRelativeURL = &rel
	}
	return out
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(string(b)), nil
}

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}
