package dom

import (
	"context"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"

	"github.com/poiesic/locate/action"
	"github.com/poiesic/locate/core"
)

// Built-in action types.
var (
	ID                = core.NewActionType("Id", "ID", core.AsSearch())
	CSSSelector       = core.NewActionType("CSS selector", "CSS_SELECTOR", core.AsSearch())
	TagName           = core.NewActionType("Tag name", "TAG_NAME", core.AsSearch(), core.AsFilter())
	ClassName         = core.NewActionType("Class name", "CLASS_NAME", core.AsSearch(), core.AsFilter())
	Name              = core.NewActionType("Name", "NAME", core.AsSearch())
	LinkURL           = core.NewActionType("Link URL", "LINK_URL", core.AsSearch(), core.AsFilter())
	Attribute         = core.NewActionType("Attribute", "ATTRIBUTE", core.AsSearch(), core.AsFilter())
	State             = core.NewActionType("State", "STATE", core.AsFilter())
	Words             = core.NewActionType("Words", "WORDS", core.AsFilter())
	CaseSensitiveText = core.NewActionType("Case sensitive text", "CASE_SENSITIVE_TEXT", core.AsFilter(),
		core.CompetingWith("WORDS"))
	TextPart = core.NewActionType("Text part", "TEXT_PART", core.AsFilter(),
		core.CompetingWith("CASE_SENSITIVE_TEXT", "WORDS"))
	Text = core.NewActionType("Text", "TEXT", core.AsFilter(),
		core.CompetingWith("TEXT_PART", "CASE_SENSITIVE_TEXT", "WORDS"))
	LinkText = core.NewActionType("Link text", "LINK_TEXT", core.AsSearch(),
		core.CompetingWith("TEXT", "TEXT_PART", "CASE_SENSITIVE_TEXT", "WORDS"))
)

// predicate reports whether an element node matches.
type predicate func(n *html.Node) bool

// matchAction serves an action type through a predicate compiled from the
// search or filter value. It can be registered for search types, filter types
// and types that are both.
type matchAction struct {
	actionType *core.ActionType
	compile    func(value string) (predicate, error)
}

var (
	_ action.SearchAction = (*matchAction)(nil)
	_ action.FilterAction = (*matchAction)(nil)
)

func (a *matchAction) Type() *core.ActionType {
	return a.actionType
}

// Search returns the descendants of sc matching value and params.Visibility,
// in document order.
func (a *matchAction) Search(ctx context.Context, sc core.SearchContext, params core.SearchParameters) ([]core.Element, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	root, err := selectionOf(sc)
	if err != nil {
		return nil, err
	}
	match, err := a.compile(params.Value)
	if err != nil {
		return nil, err
	}

	found := root.FindMatcher(cascadia.Selector(func(n *html.Node) bool {
		return n.Type == html.ElementNode && match(n)
	}))
	elements := make([]core.Element, 0, found.Length())
	for _, n := range found.Nodes {
		if params.Visibility.Matches(Displayed(n)) {
			elements = append(elements, NewNode(n))
		}
	}
	return elements, nil
}

// Filter keeps the elements matching value.
func (a *matchAction) Filter(ctx context.Context, elements []core.Element, value string) ([]core.Element, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	match, err := a.compile(value)
	if err != nil {
		return nil, err
	}

	kept := make([]core.Element, 0, len(elements))
	for _, e := range elements {
		n, err := nodeOf(e)
		if err != nil {
			return nil, err
		}
		if match(n) {
			kept = append(kept, e)
		}
	}
	return kept, nil
}

// NewActions returns every built-in action.
func NewActions() []action.Action {
	return []action.Action{
		&matchAction{actionType: ID, compile: attrEquals("id")},
		&matchAction{actionType: CSSSelector, compile: cssSelector},
		&matchAction{actionType: TagName, compile: tagName},
		&matchAction{actionType: ClassName, compile: className},
		&matchAction{actionType: Name, compile: attrEquals("name")},
		&matchAction{actionType: LinkText, compile: linkText},
		&matchAction{actionType: LinkURL, compile: linkURL},
		&matchAction{actionType: Attribute, compile: attribute},
		&matchAction{actionType: Text, compile: text(false)},
		&matchAction{actionType: CaseSensitiveText, compile: text(true)},
		&matchAction{actionType: TextPart, compile: textPart},
		&matchAction{actionType: Words, compile: words},
		&matchAction{actionType: State, compile: state},
	}
}

// NewRegistry returns a registry holding every built-in action.
func NewRegistry() (*action.Registry, error) {
	return action.NewRegistry(NewActions()...)
}

func attrEquals(name string) func(string) (predicate, error) {
	return func(value string) (predicate, error) {
		return func(n *html.Node) bool {
			v, ok := attr(n, name)
			return ok && v == value
		}, nil
	}
}

func cssSelector(value string) (predicate, error) {
	sel, err := cascadia.Compile(value)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSelector, err)
	}
	return predicate(sel), nil
}

func tagName(value string) (predicate, error) {
	value = strings.TrimSpace(value)
	return func(n *html.Node) bool {
		return strings.EqualFold(n.Data, value)
	}, nil
}

// className matches elements carrying every class listed in value.
func className(value string) (predicate, error) {
	wanted := strings.Fields(value)
	return func(n *html.Node) bool {
		if len(wanted) == 0 {
			return false
		}
		present := classes(n)
		for _, w := range wanted {
			found := false
			for _, p := range present {
				if p == w {
					found = true
					break
				}
			}
			if !found {
				return false
			}
		}
		return true
	}, nil
}

func linkText(value string) (predicate, error) {
	return func(n *html.Node) bool {
		return n.Data == "a" && equalText(nodeText(n), value, true)
	}, nil
}

func linkURL(value string) (predicate, error) {
	return func(n *html.Node) bool {
		href, ok := attr(n, "href")
		return n.Data == "a" && ok && href == value
	}, nil
}

// attribute matches "name" (attribute present) or "name=value".
func attribute(value string) (predicate, error) {
	name, want, hasValue := strings.Cut(value, "=")
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAttribute, value)
	}
	return func(n *html.Node) bool {
		v, ok := attr(n, name)
		return ok && (!hasValue || v == want)
	}, nil
}

func text(caseSensitive bool) func(string) (predicate, error) {
	return func(value string) (predicate, error) {
		return func(n *html.Node) bool {
			return equalText(nodeText(n), value, caseSensitive)
		}, nil
	}
}

func textPart(value string) (predicate, error) {
	return func(n *html.Node) bool {
		return containsText(nodeText(n), value)
	}, nil
}

func words(value string) (predicate, error) {
	return func(n *html.Node) bool {
		return containsAllWords(nodeText(n), value)
	}, nil
}

// Element states understood by the state filter, by normalized name.
var states = map[string]predicate{
	"enabled":     func(n *html.Node) bool { return NewNode(n).Enabled() },
	"disabled":    func(n *html.Node) bool { return !NewNode(n).Enabled() },
	"selected":    func(n *html.Node) bool { return NewNode(n).Selected() },
	"notselected": func(n *html.Node) bool { return !NewNode(n).Selected() },
	"visible":     Displayed,
	"notvisible":  func(n *html.Node) bool { return !Displayed(n) },
}

func state(value string) (predicate, error) {
	match, ok := states[core.NormalizeKey(value)]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownState, value)
	}
	return match, nil
}

func nodeText(n *html.Node) string {
	return normalizeSpace(goquery.NewDocumentFromNode(n).Text())
}
