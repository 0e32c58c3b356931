package dom

import (
	"strings"

	"golang.org/x/net/html"
)

// Elements never rendered, together with their content.
var hiddenTags = map[string]bool{
	"head": true, "script": true, "style": true, "template": true, "noscript": true,
}

// Displayed reports whether n would be rendered, judging from markup only.
//
// An element is not displayed when it or one of its ancestors carries the
// hidden attribute, aria-hidden="true", an inline display:none or
// visibility:hidden style, or is one of head, script, style, template and
// noscript. Hidden inputs are never displayed. Stylesheets are not evaluated.
func Displayed(n *html.Node) bool {
	if n == nil {
		return false
	}
	if n.Type == html.ElementNode && n.Data == "input" {
		if t, _ := attr(n, "type"); strings.EqualFold(t, "hidden") {
			return false
		}
	}
	for p := n; p != nil; p = p.Parent {
		if p.Type == html.ElementNode && hiddenElement(p) {
			return false
		}
	}
	return true
}

func hiddenElement(n *html.Node) bool {
	if hiddenTags[n.Data] {
		return true
	}
	if _, ok := attr(n, "hidden"); ok {
		return true
	}
	if v, _ := attr(n, "aria-hidden"); strings.EqualFold(strings.TrimSpace(v), "true") {
		return true
	}
	style, ok := attr(n, "style")
	if !ok {
		return false
	}
	style = strings.ToLower(strings.Join(strings.Fields(style), ""))
	for _, decl := range strings.Split(style, ";") {
		switch strings.TrimSuffix(decl, "!important") {
		case "display:none", "visibility:hidden":
			return true
		}
	}
	return false
}
