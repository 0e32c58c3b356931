package mock

import "github.com/poiesic/locate/core"

// Element is a named test element. It is also a search context.
type Element struct {
	Name     string
	Tag      string
	Children []*Element
}

var _ core.Element = (*Element)(nil)

// NewElement creates an element with the given name and tag "div".
func NewElement(name string, children ...*Element) *Element {
	return &Element{Name: name, Tag: "div", Children: children}
}

func (e *Element) String() string {
	return e.Name
}

// TagName returns the element tag.
func (e *Element) TagName() string {
	return e.Tag
}

// Context is a named root search context.
type Context struct {
	Name     string
	Children []*Element
}

var _ core.SearchContext = (*Context)(nil)

// NewContext creates a root context holding the given elements.
func NewContext(name string, children ...*Element) *Context {
	return &Context{Name: name, Children: children}
}

func (c *Context) String() string {
	return c.Name
}

// Elements converts test elements into a core.Element slice.
func Elements(elements ...*Element) []core.Element {
	out := make([]core.Element, len(elements))
	for i, e := range elements {
		out[i] = e
	}
	return out
}

// ChildrenSearch returns the direct children of
// the context, optionally restricted to those whose name is params.Value.
// An empty value matches every child.
func ChildrenSearch(sc core.SearchContext, params core.SearchParameters) []core.Element {
	var children []*Element
	switch c := sc.(type) {
	case *Context:
		children = c.Children
	case *Element:
		children = c.Children
	}
	var out []core.Element
	for _, child := range children {
		if params.Value == "" || child.Name == params.Value {
			out = append(out, child)
		}
	}
	return out
}
