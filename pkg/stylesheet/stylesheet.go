// Package stylesheet appends stylesheet links to an HTML document.
package stylesheet

import (
	"fmt"
	"io"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// timeNow is swapped in tests to pin the cache-busting value.
var timeNow = time.Now

// Href returns href, with "?<unix-millis>" appended when avoidCache is set.
func Href(href string, avoidCache bool) string {
	if !avoidCache {
		return href
	}
	return href + "?" + url.QueryEscape(strconv.FormatInt(timeNow().UnixMilli(), 10))
}

// Inject appends <link type="text/css" rel="stylesheet" href="..."> to the
// first <head> element under doc. It reports false, changing nothing, when
// doc is nil or has no <head>.
func Inject(doc *html.Node, href string, avoidCache bool) bool {
	head := findHead(doc)
	if head == nil {
		return false
	}
	head.AppendChild(&html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Link,
		Data:     "link",
		Attr: []html.Attribute{
			{Key: "type", Val: "text/css"},
			{Key: "rel", Val: "stylesheet"},
			{Key: "href", Val: Href(href, avoidCache)},
		},
	})
	return true
}

// InjectHTML parses a document from r, injects the link and renders the
// result to w. The bool mirrors Inject; errors come only from parsing or
// writing.
func InjectHTML(r io.Reader, w io.Writer, href string, avoidCache bool) (bool, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return false, fmt.Errorf("stylesheet.InjectHTML: parse: %w", err)
	}
	ok := Inject(doc, href, avoidCache)
	if err := html.Render(w, doc); err != nil {
		return ok, fmt.Errorf("stylesheet.InjectHTML: render: %w", err)
	}
	return ok, nil
}

func findHead(n *html.Node) *html.Node {
	if n == nil {
		return nil
	}
	if n.Type == html.ElementNode && n.DataAtom == atom.Head {
		return n
	}
	for child := n.FirstChild; child != nil; child = child.NextSibling {
		if head := findHead(child); head != nil {
			return head
		}
	}
	return nil
}
