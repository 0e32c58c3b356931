package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeKey(t *testing.T) {
	assert.Equal(t, "cssselector", NormalizeKey("CSS_SELECTOR"))
	assert.Equal(t, "cssselector", NormalizeKey("css-selector"))
	assert.Equal(t, "cssselector", NormalizeKey("Css Selector"))
	assert.Equal(t, "search", NormalizeKey("SeArCH"))
}

func TestActionType(t *testing.T) {
	css := NewActionType("CSS selector", "CSS_SELECTOR", AsSearch())

	assert.Equal(t, "CSS selector", css.Name())
	assert.Equal(t, "CSS_SELECTOR", css.Key())
	assert.Equal(t, "cssselector", css.NormalizedKey())
	assert.True(t, css.Searchable())
	assert.False(t, css.Filterable())
	assert.True(t, css.Matches("cssSelector"))
	assert.True(t, css.Matches("CSSSELECTOR"))
	assert.False(t, css.Matches("css"))
	assert.Equal(t, "CSS selector", css.String())
}

func TestActionType_CompetesWith(t *testing.T) {
	assert.True(t, testCompetingFilter.CompetesWith(testFilter))
	assert.True(t, testFilter.CompetesWith(testCompetingFilter), "relation must be symmetric")
	assert.True(t, testSearch.CompetesWith(testCompetingFilter))
	assert.False(t, testFilter.CompetesWith(testAdditionalFilter))
	assert.False(t, testFilter.CompetesWith(nil))
}
