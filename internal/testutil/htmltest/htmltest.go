// Package htmltest parses rendered pages and reads back their composition
// tree from the data-layout, data-component and data-slot markers.
package htmltest

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

var markerAttrs = []string{"data-layout", "data-component", "data-slot"}

// Render renders c and returns the output.
func Render(t testing.TB, c templ.Component) string {
	t.Helper()

	var buf bytes.Buffer
	require.NoError(t, c.Render(context.Background(), &buf))
	return buf.String()
}

// Parse parses a full document or a fragment.
func Parse(t testing.TB, s string) *html.Node {
	t.Helper()

	doc, err := html.Parse(strings.NewReader(s))
	require.NoError(t, err)
	return doc
}

// Marker returns the composition marker of n, e.g. "component:header", or ""
// when n carries none.
func Marker(n *html.Node) string {
	if n == nil || n.Type != html.ElementNode {
		return ""
	}
	for _, a := range n.Attr {
		for _, name := range markerAttrs {
			if a.Key == name {
				return strings.TrimPrefix(name, "data-") + ":" + a.Val
			}
		}
	}
	return ""
}

// Find returns the first node in document order whose marker equals marker.
func Find(root *html.Node, marker string) *html.Node {
	if Marker(root) == marker {
		return root
	}
	for c := root.FirstChild; c != nil; c = c.NextSibling {
		if found := Find(c, marker); found != nil {
			return found
		}
	}
	return nil
}

// Children returns the markers of the nearest marked descendants of n in
// document order. Marked nodes are not descended into, so the result is one
// level of the composition tree.
func Children(n *html.Node) []string {
	var out []string
	var walk func(*html.Node)
	walk = func(p *html.Node) {
		for c := p.FirstChild; c != nil; c = c.NextSibling {
			if m := Marker(c); m != "" {
				out = append(out, m)
				continue
			}
			walk(c)
		}
	}
	walk(n)
	return out
}

// Attr returns the value of the named attribute of n.
func Attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

// FindAll returns every element with the given tag name in document order.
func FindAll(root *html.Node, tag string) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == tag {
			out = append(out, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(root)
	return out
}
