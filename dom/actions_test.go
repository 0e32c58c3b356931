package dom

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/locate/core"
)

const testPage = `<!DOCTYPE html>
<html>
<head><title> Sample   page </title><script>var hidden = true;</script></head>
<body>
  <div id="main" class="card wide">
    <h1 name="heading">Welcome to the shop</h1>
    <a id="home" href="/home">Home page</a>
    <a id="about" href="/about" class="nav">About  us</a>
    <a id="secret" href="/secret" hidden>Secret</a>
    <form name="login">
      <input id="user" name="user" type="text">
      <input id="token" name="token" type="hidden" value="x">
      <input id="remember" type="checkbox" checked>
      <button id="submit" disabled>Sign in</button>
    </form>
  </div>
  <div id="sidebar" class="card" style="display: none">
    <p class="note">Hidden note</p>
  </div>
  <div id="footer" class="card" aria-hidden="true"><span>Copyright</span></div>
  <ul id="list">
    <li class="item">Red apples</li>
    <li class="item selected" data-price="3">Green apples</li>
    <li class="item" data-price="5">Bananas</li>
  </ul>
</body>
</html>`

func parseTestPage(t *testing.T) *Document {
	t.Helper()
	doc, err := ParseString("test page", testPage)
	require.NoError(t, err)
	return doc
}

func findAction(t *testing.T, at *core.ActionType) *matchAction {
	t.Helper()
	for _, a := range NewActions() {
		if a.Type() == at {
			return a.(*matchAction)
		}
	}
	t.Fatalf("no action for %s", at.Name())
	return nil
}

func ids(elements []core.Element) []string {
	out := make([]string, 0, len(elements))
	for _, e := range elements {
		id, _ := e.(*Node).Attr("id")
		out = append(out, id)
	}
	return out
}

func TestNewRegistry(t *testing.T) {
	registry, err := NewRegistry()
	require.NoError(t, err)
	assert.Equal(t, len(NewActions()), registry.Len())

	for _, at := range []*core.ActionType{ID, CSSSelector, TagName, ClassName, Name, LinkText, LinkURL, Attribute} {
		_, ok := registry.FindSearch(at)
		assert.True(t, ok, at.Name())
	}
	for _, at := range []*core.ActionType{TagName, ClassName, LinkURL, Attribute, Text, TextPart, CaseSensitiveText, Words, State} {
		_, ok := registry.FindFilter(at)
		assert.True(t, ok, at.Name())
	}

	_, ok := registry.FindFilter(ID)
	assert.False(t, ok)
	_, ok = registry.FindSearch(Text)
	assert.False(t, ok)
}

func TestCompetingTypes(t *testing.T) {
	assert.True(t, Text.CompetesWith(TextPart))
	assert.True(t, TextPart.CompetesWith(Text))
	assert.True(t, CaseSensitiveText.CompetesWith(Words))
	assert.True(t, LinkText.CompetesWith(Text))
	assert.False(t, Text.CompetesWith(State))
	assert.False(t, Attribute.CompetesWith(ClassName))

	q := core.NewQuery(LinkText, "Home page")
	err := q.AddFilter(Text, "Home page")
	assert.ErrorIs(t, err, core.ErrCompetingAttributes)
	assert.Equal(t, "Competing attributes: 'Text' and 'Link text'", err.Error())
}

func TestSearchActions(t *testing.T) {
	doc := parseTestPage(t)
	ctx := context.Background()

	tests := []struct {
		name     string
		at       *core.ActionType
		params   core.SearchParameters
		expected []string
	}{
		{"id", ID, core.NewSearchParameters("about"), []string{"about"}},
		{"id is case sensitive", ID, core.NewSearchParameters("About"), []string{}},
		{"css selector", CSSSelector, core.NewSearchParameters("form > input"), []string{"user", "remember"}},
		{"tag name", TagName, core.NewSearchParameters("A"), []string{"home", "about"}},
		{"class name", ClassName, core.NewSearchParameters("card"), []string{"main"}},
		{"class name list", ClassName, core.NewSearchParameters("wide card"), []string{"main"}},
		{"name", Name, core.NewSearchParameters("user"), []string{"user"}},
		{"link text", LinkText, core.NewSearchParameters("About us"), []string{"about"}},
		{"link url", LinkURL, core.NewSearchParameters("/home"), []string{"home"}},
		{"attribute presence", Attribute, core.NewSearchParameters("checked"), []string{"remember"}},
		{"attribute value", Attribute, core.NewSearchParameters("type=text"), []string{"user"}},
		{"invisible", ID, core.SearchParameters{Value: "secret", Visibility: core.Invisible}, []string{"secret"}},
		{"invisible excludes visible", ID, core.SearchParameters{Value: "home", Visibility: core.Invisible}, []string{}},
		{"all", ClassName, core.SearchParameters{Value: "card", Visibility: core.All}, []string{"main", "sidebar", "footer"}},
		{"hidden input", Name, core.SearchParameters{Value: "token", Visibility: core.All}, []string{"token"}},
		{"hidden input is not visible", Name, core.NewSearchParameters("token"), []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			found, err := findAction(t, tt.at).Search(ctx, doc, tt.params)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, ids(found))
		})
	}
}

func TestSearch_ScopedToNode(t *testing.T) {
	doc := parseTestPage(t)
	ctx := context.Background()

	forms, err := findAction(t, TagName).Search(ctx, doc, core.NewSearchParameters("form"))
	require.NoError(t, err)
	require.Len(t, forms, 1)

	inputs, err := findAction(t, TagName).Search(ctx, forms[0], core.SearchParameters{Value: "input", Visibility: core.All})
	require.NoError(t, err)
	assert.Equal(t, []string{"user", "token", "remember"}, ids(inputs))

	// The scope itself is not part of the result.
	self, err := findAction(t, TagName).Search(ctx, forms[0], core.NewSearchParameters("form"))
	require.NoError(t, err)
	assert.Empty(t, self)
}

func TestSearch_Errors(t *testing.T) {
	doc := parseTestPage(t)

	t.Run("invalid selector", func(t *testing.T) {
		_, err := findAction(t, CSSSelector).Search(context.Background(), doc, core.NewSearchParameters("div[["))
		assert.ErrorIs(t, err, ErrInvalidSelector)
	})

	t.Run("invalid attribute", func(t *testing.T) {
		_, err := findAction(t, Attribute).Search(context.Background(), doc, core.NewSearchParameters("=x"))
		assert.ErrorIs(t, err, ErrInvalidAttribute)
	})

	t.Run("foreign context", func(t *testing.T) {
		_, err := findAction(t, ID).Search(context.Background(), foreignContext{}, core.NewSearchParameters("main"))
		assert.ErrorIs(t, err, ErrUnsupportedContext)
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := findAction(t, ID).Search(ctx, doc, core.NewSearchParameters("main"))
		assert.ErrorIs(t, err, context.Canceled)
	})
}

type foreignContext struct{}

func (foreignContext) String() string  { return "foreign" }
func (foreignContext) TagName() string { return "x" }

func TestFilterActions(t *testing.T) {
	doc := parseTestPage(t)
	ctx := context.Background()

	all, err := findAction(t, CSSSelector).Search(ctx, doc, core.SearchParameters{Value: "[id]", Visibility: core.All})
	require.NoError(t, err)
	items, err := findAction(t, ClassName).Search(ctx, doc, core.NewSearchParameters("item"))
	require.NoError(t, err)
	require.Len(t, items, 3)

	tests := []struct {
		name     string
		at       *core.ActionType
		input    []core.Element
		value    string
		expected int
	}{
		{"text ignores case and spacing", Text, items, "  red   APPLES ", 1},
		{"case sensitive text", CaseSensitiveText, items, "red apples", 0},
		{"case sensitive text exact", CaseSensitiveText, items, "Red apples", 1},
		{"text part", TextPart, items, "APPLES", 2},
		{"words ignore stop words and order", Words, items, "the apples green", 1},
		{"words made of stop words match nothing", Words, items, "the of", 0},
		{"class name", ClassName, items, "selected", 1},
		{"attribute", Attribute, items, "data-price", 2},
		{"attribute value", Attribute, items, "data-price=5", 1},
		{"tag name", TagName, all, "a", 3},
		{"link url", LinkURL, all, "/about", 1},
		{"state disabled", State, all, "DISABLED", 1},
		{"state selected", State, all, "selected", 1},
		{"state not visible", State, all, "NOT_VISIBLE", 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kept, err := findAction(t, tt.at).Filter(ctx, tt.input, tt.value)
			require.NoError(t, err)
			assert.Len(t, kept, tt.expected)
		})
	}

	t.Run("preserves order", func(t *testing.T) {
		kept, err := findAction(t, TextPart).Filter(ctx, items, "a")
		require.NoError(t, err)
		require.Len(t, kept, 3)
		for i := range kept {
			assert.Same(t, items[i], kept[i])
		}
	})

	t.Run("unknown state", func(t *testing.T) {
		_, err := findAction(t, State).Filter(ctx, items, "shiny")
		assert.ErrorIs(t, err, ErrUnknownState)
	})

	t.Run("foreign element", func(t *testing.T) {
		_, err := findAction(t, Text).Filter(ctx, []core.Element{foreignContext{}}, "x")
		assert.ErrorIs(t, err, ErrUnsupportedElement)
	})
}
