package urlutil

import (
	"encoding/json"
	"fmt"

	"github.com/yalp/jsonpath"
)

// PageContext carries the host page's base URLs. A nil field means the
// host did not expose it; a non-nil empty string is still "present".
type PageContext struct {
	WebAbsoluteURL       *string
	WebServerRelativeURL *string
}

const (
	webAbsolutePath       = "$.webAbsoluteUrl"
	webServerRelativePath = "$.webServerRelativeUrl"
)

// ParsePageContext decodes a JSON page-context object (for example a
// serialized _spPageContextInfo) and picks out its base URL fields.
// Fields that are missing or not strings are left nil.
func ParsePageContext(data []byte) (*PageContext, error) {
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("urlutil.ParsePageContext: decode: %w", err)
	}
	if _, ok := doc.(map[string]any); !ok {
		return nil, fmt.Errorf("urlutil.ParsePageContext: expected a JSON object, got %T", doc)
	}
	return &PageContext{
		WebAbsoluteURL:       stringAt(doc, webAbsolutePath),
		WebServerRelativeURL: stringAt(doc, webServerRelativePath),
	}, nil
}

func stringAt(doc any, path string) *string {
	v, err := jsonpath.Read(doc, path)
	if err != nil {
		return nil
	}
	s, ok := v.(string)
	if !ok {
		return nil
	}
	return &s
}

// Resolve makes u absolute against ctx. The absolute base wins over the
// server-relative one. The second result reports whether a base was
// applied; u is returned unchanged when it is already absolute, when ctx is
// nil, or when ctx exposes neither base.
func Resolve(u string, ctx *PageContext) (string, bool) {
	if IsAbsolute(u) || ctx == nil {
		return u, false
	}
	if ctx.WebAbsoluteURL != nil {
		return CombinePaths(*ctx.WebAbsoluteURL, u), true
	}
	if ctx.WebServerRelativeURL != nil {
		return CombinePaths(*ctx.WebServerRelativeURL, u), true
	}
	return u, false
}

// MakeAbsolute is Resolve without the applied flag.
func MakeAbsolute(u string, ctx *PageContext) string {
	out, _ := Resolve(u, ctx)
	return out
}
