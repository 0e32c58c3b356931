package dom

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/poiesic/locate/core"
)

// Document is a parsed HTML page. It is the root search context.
type Document struct {
	name string
	doc  *goquery.Document
}

var _ core.SearchContext = (*Document)(nil)

// NewDocument parses HTML from r. The name identifies the document in
// diagnostics, typically a URL or a snapshot name.
func NewDocument(name string, r io.Reader) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}
	return &Document{name: name, doc: doc}, nil
}

// ParseString parses an HTML string.
func ParseString(name, content string) (*Document, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyDocument
	}
	return NewDocument(name, strings.NewReader(content))
}

func (d *Document) String() string {
	return d.name
}

// Title returns the text of the document title.
func (d *Document) Title() string {
	return normalizeSpace(d.doc.Find("title").First().Text())
}

// Selection returns the goquery selection of the document root.
func (d *Document) Selection() *goquery.Selection {
	return d.doc.Selection
}

// Node is an element of a Document.
type Node struct {
	node *html.Node
}

var _ core.Element = (*Node)(nil)

// NewNode wraps an element node.
func NewNode(n *html.Node) *Node {
	return &Node{node: n}
}

// HTMLNode returns the underlying node. Two Nodes refer to the same element
// when their HTML nodes are identical.
func (n *Node) HTMLNode() *html.Node {
	return n.node
}

// TagName returns the lowercase tag name.
func (n *Node) TagName() string {
	return n.node.Data
}

// String describes the node in CSS shorthand, e.g. "div#main.card.wide".
func (n *Node) String() string {
	var b strings.Builder
	b.WriteString(n.node.Data)
	if id, ok := n.Attr("id"); ok && id != "" {
		b.WriteString("#")
		b.WriteString(id)
	}
	for _, class := range classes(n.node) {
		b.WriteString(".")
		b.WriteString(class)
	}
	return b.String()
}

// Attr returns the value of the named attribute.
func (n *Node) Attr(name string) (string, bool) {
	return attr(n.node, name)
}

// Text returns the text content with whitespace collapsed.
func (n *Node) Text() string {
	return normalizeSpace(n.Selection().Text())
}

// Selection returns a goquery selection rooted at the node.
func (n *Node) Selection() *goquery.Selection {
	return goquery.NewDocumentFromNode(n.node).Selection
}

// Displayed reports whether the node would be rendered.
func (n *Node) Displayed() bool {
	return Displayed(n.node)
}

// Enabled reports whether the node is not disabled.
func (n *Node) Enabled() bool {
	_, disabled := n.Attr("disabled")
	return !disabled
}

// Selected reports whether the node is a selected option or a checked input.
func (n *Node) Selected() bool {
	if _, ok := n.Attr("selected"); ok {
		return true
	}
	_, ok := n.Attr("checked")
	return ok
}

// selectionOf returns the selection searches inside sc start from.
func selectionOf(sc core.SearchContext) (*goquery.Selection, error) {
	switch c := sc.(type) {
	case *Document:
		return c.doc.Selection, nil
	case *Node:
		return c.Selection(), nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedContext, sc)
	}
}

func nodeOf(e core.Element) (*html.Node, error) {
	n, ok := e.(*Node)
	if !ok {
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedElement, e)
	}
	return n.node, nil
}

func attr(n *html.Node, name string) (string, bool) {
	for _, a := range n.Attr {
		if a.Namespace == "" && strings.EqualFold(a.Key, name) {
			return a.Val, true
		}
	}
	return "", false
}

func classes(n *html.Node) []string {
	v, _ := attr(n, "class")
	return strings.Fields(v)
}

func normalizeSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
