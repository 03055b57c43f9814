// Package urlutil composes paths and resolves relative URLs against a page
// context supplied by the host.
package urlutil

import (
	"regexp"
	"strings"
)

var absoluteRe = regexp.MustCompile(`(?i)^https?://|^//`)

// CombinePaths joins segments with single forward slashes. One leading and
// one trailing separator ("/" or "\") is stripped from every segment, and
// remaining back-slashes become forward slashes. No segments yields "".
func CombinePaths(segments ...string) string {
	parts := make([]string, 0, len(segments))
	for _, s := range segments {
		parts = append(parts, trimOne(s))
	}
	return strings.ReplaceAll(strings.Join(parts, "/"), `\`, "/")
}

func trimOne(s string) string {
	if s != "" && isSep(s[0]) {
		s = s[1:]
	}
	if s != "" && isSep(s[len(s)-1]) {
		s = s[:len(s)-1]
	}
	return s
}

func isSep(b byte) bool { return b == '/' || b == '\\' }

// IsAbsolute reports whether u starts with http://, https:// (any case) or
// is protocol-relative ("//host/...").
func IsAbsolute(u string) bool {
	return absoluteRe.MatchString(u)
}
