package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVisibility(t *testing.T) {
	tests := []struct {
		input string
		want  Visibility
	}{
		{"i", Invisible},
		{"invisible", Invisible},
		{"INVISIBLE", Invisible},
		{"all", All},
		{"a", All},
		{"v", Visible},
		{"visible", Visible},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseVisibility(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseVisibility_Illegal(t *testing.T) {
	for _, input := range []string{"", "x", "visibleonly"} {
		_, err := ParseVisibility(input)
		require.ErrorIs(t, err, ErrIllegalVisibility)
		assert.EqualError(t, err,
			"Illegal visibility type '"+input+"'. Expected one of [VISIBLE, INVISIBLE, ALL]")
	}
}

func TestVisibility_Matches(t *testing.T) {
	assert.True(t, Visible.Matches(true))
	assert.False(t, Visible.Matches(false))
	assert.True(t, Invisible.Matches(false))
	assert.False(t, Invisible.Matches(true))
	assert.True(t, All.Matches(true))
	assert.True(t, All.Matches(false))
}
