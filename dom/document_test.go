package dom

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func TestParseString(t *testing.T) {
	t.Run("valid document", func(t *testing.T) {
		doc := parseTestPage(t)
		assert.Equal(t, "test page", doc.String())
		assert.Equal(t, "Sample page", doc.Title())
		assert.NotNil(t, doc.Selection())
	})

	t.Run("empty content", func(t *testing.T) {
		_, err := ParseString("empty", "  \n ")
		assert.ErrorIs(t, err, ErrEmptyDocument)
	})

	t.Run("fragment", func(t *testing.T) {
		doc, err := NewDocument("fragment", strings.NewReader("<p>hi</p>"))
		require.NoError(t, err)
		assert.Equal(t, 1, doc.Selection().Find("p").Length())
	})
}

func TestNode(t *testing.T) {
	doc := parseTestPage(t)
	node := NewNode(doc.Selection().Find("#main").Nodes[0])

	assert.Equal(t, "div", node.TagName())
	assert.Equal(t, "div#main.card.wide", node.String())
	assert.True(t, node.Displayed())
	assert.True(t, strings.HasPrefix(node.Text(), "Welcome to the shop Home page About us"))

	v, ok := node.Attr("CLASS")
	assert.True(t, ok)
	assert.Equal(t, "card wide", v)
	_, ok = node.Attr("title")
	assert.False(t, ok)

	button := NewNode(doc.Selection().Find("#submit").Nodes[0])
	assert.False(t, button.Enabled())
	assert.Equal(t, "button#submit", button.String())

	checkbox := NewNode(doc.Selection().Find("#remember").Nodes[0])
	assert.True(t, checkbox.Enabled())
	assert.True(t, checkbox.Selected())
}

func TestDisplayed(t *testing.T) {
	doc := parseTestPage(t)
	node := func(selector string) *html.Node {
		nodes := doc.Selection().Find(selector).Nodes
		require.NotEmpty(t, nodes, selector)
		return nodes[0]
	}

	tests := []struct {
		selector string
		expected bool
	}{
		{"#main", true},
		{"#home", true},
		{"#secret", false},
		{"#token", false},
		{"#user", true},
		{"#sidebar", false},
		{"#sidebar .note", false},
		{"#footer span", false},
		{"title", false},
		{"script", false},
		{"li.selected", true},
	}

	for _, tt := range tests {
		t.Run(tt.selector, func(t *testing.T) {
			assert.Equal(t, tt.expected, Displayed(node(tt.selector)))
		})
	}

	assert.False(t, Displayed(nil))
}

func TestDisplayed_InlineStyles(t *testing.T) {
	doc, err := ParseString("styles", `<body>
		<div id="a" style="DISPLAY : none !important"></div>
		<div id="b" style="color: red; visibility:hidden"></div>
		<div id="c" style="display: block"></div>
		<div id="d" aria-hidden="false"></div>
	</body>`)
	require.NoError(t, err)

	displayed := func(id string) bool {
		return Displayed(doc.Selection().Find("#" + id).Nodes[0])
	}
	assert.False(t, displayed("a"))
	assert.False(t, displayed("b"))
	assert.True(t, displayed("c"))
	assert.True(t, displayed("d"))
}

func TestContainsAllWords(t *testing.T) {
	assert.True(t, containsAllWords("The quick brown fox.", "fox, quick!"))
	assert.False(t, containsAllWords("The quick brown fox", "quick dog"))
	assert.False(t, containsAllWords("The quick brown fox", "the"))
	assert.Equal(t, []string{"quick", "fox"}, tokenizeAndFilter("The QUICK, fox"))
}
