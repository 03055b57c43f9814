// Package query reads parameters out of a raw query string.
//
// The query string is supplied explicitly by the host (a request URL, a
// configured value) instead of being read from a global location.
package query

import (
	"net/url"
	"regexp"
	"strings"
)

// Params wraps a single raw query string such as "?a=1&b=2".
// The zero value is an empty query string.
type Params struct {
	search string
}

// New returns Params for search. A missing leading "?" is added so the first
// pair is reachable by the "?" or "&" anchor.
func New(search string) Params {
	if search != "" && !strings.HasPrefix(search, "?") {
		search = "?" + search
	}
	return Params{search: search}
}

// FromURL returns Params for the raw query of u. A nil URL yields empty Params.
func FromURL(u *url.URL) Params {
	if u == nil {
		return Params{}
	}
	return New(u.RawQuery)
}

// String returns the normalized query string.
func (p Params) String() string { return p.search }

// Exists reports whether name appears as "name=" in the query string, even
// when its value is empty.
func (p Params) Exists(name string) bool {
	return pattern(name).MatchString(p.search)
}

// Get returns the decoded value of the first occurrence of name, with "+"
// read as a space. It returns "" when name is absent. A value that fails
// percent-decoding is returned with only the "+" substitution applied.
func (p Params) Get(name string) string {
	m := pattern(name).FindStringSubmatch(p.search)
	if m == nil {
		return ""
	}
	raw := strings.ReplaceAll(m[1], "+", " ")
	v, err := url.PathUnescape(raw)
	if err != nil {
		return raw
	}
	return v
}

// Bool returns false when the value of name is "", "0" or "false" in any
// case, and true for anything else. An absent parameter reads as false, so
// callers that must tell "absent" from "false" check Exists first.
func (p Params) Bool(name string) bool {
	v := p.Get(name)
	return v != "" && v != "0" && !strings.EqualFold(v, "false")
}

// pattern matches "?name=value" or "&name=value"; name is matched literally.
func pattern(name string) *regexp.Regexp {
	return regexp.MustCompile(`[?&]` + regexp.QuoteMeta(name) + `=([^&#]*)`)
}
