// Package xmlnode exposes parsed XML documents through the narrow node
// contract the extractors depend on: attribute lookup, child lookup by a
// relative XPath and text content.
package xmlnode

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/antchfx/xmlquery"
)

// Node is one element of a source document.
type Node interface {
	// Name returns the element's local name.
	Name() string
	// Attr returns the value of the named attribute and whether it is present.
	Attr(name string) (string, bool)
	// Child returns the first element matching a relative path.
	Child(path string) (Node, bool)
	// Children returns every element matching a relative path, in document order.
	Children(path string) []Node
	// Text returns the concatenated character data below the element.
	Text() string
	// HasElementChildren reports whether the element has at least one child element.
	HasElementChildren() bool
}

// Document is a fully materialized XML document.
type Document struct {
	root *xmlquery.Node
}

// Parse reads a whole document from r.
func Parse(r io.Reader) (*Document, error) {
	root, err := xmlquery.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse xml: %w", err)
	}
	return &Document{root: root}, nil
}

// ParseFile opens and parses the document at path.
func ParseFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	doc, err := Parse(bufio.NewReader(f))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Select evaluates an XPath expression against the document root.
func (d *Document) Select(expr string) ([]Node, error) {
	found, err := xmlquery.QueryAll(d.root, expr)
	if err != nil {
		return nil, fmt.Errorf("select %q: %w", expr, err)
	}
	return wrapAll(found), nil
}

type element struct {
	n *xmlquery.Node
}

func wrapAll(nodes []*xmlquery.Node) []Node {
	out := make([]Node, len(nodes))
	for i, n := range nodes {
		out[i] = element{n: n}
	}
	return out
}

func (e element) Name() string { return e.n.Data }

func (e element) Attr(name string) (string, bool) {
	for _, a := range e.n.Attr {
		if a.Name.Local == name {
			return a.Value, true
		}
	}
	return "", false
}

// Child panics on a malformed path; paths are compile-time constants.
func (e element) Child(path string) (Node, bool) {
	found := xmlquery.FindOne(e.n, path)
	if found == nil {
		return nil, false
	}
	return element{n: found}, true
}

func (e element) Children(path string) []Node {
	return wrapAll(xmlquery.Find(e.n, path))
}

func (e element) Text() string { return e.n.InnerText() }

func (e element) HasElementChildren() bool {
	for c := e.n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == xmlquery.ElementNode {
			return true
		}
	}
	return false
}
