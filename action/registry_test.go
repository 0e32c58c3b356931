package action_test

import (
	"testing"

	"github.com/poiesic/locate/action"
	"github.com/poiesic/locate/action/mock"
	"github.com/poiesic/locate/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegistry(t *testing.T) {
	search := mock.NewMockSearch(mock.Search)
	filter := mock.NewMockFilter(mock.Filter)

	t.Run("valid registration", func(t *testing.T) {
		r, err := action.NewRegistry(search, filter)
		require.NoError(t, err)
		assert.Equal(t, 2, r.Len())
	})

	t.Run("duplicate type", func(t *testing.T) {
		_, err := action.NewRegistry(search, mock.NewMockSearch(mock.Search))
		assert.ErrorIs(t, err, action.ErrDuplicateActionType)
	})

	t.Run("nil action", func(t *testing.T) {
		_, err := action.NewRegistry(nil)
		assert.ErrorIs(t, err, action.ErrNilAction)
	})

	t.Run("search action for a filter type", func(t *testing.T) {
		_, err := action.NewRegistry(mock.NewMockSearch(mock.Filter))
		assert.ErrorIs(t, err, action.ErrNoCapability)
	})
}

func TestRegistry_Find(t *testing.T) {
	search := mock.NewMockSearch(mock.Search)
	filter := mock.NewMockFilter(mock.Filter)
	r, err := action.NewRegistry(search, filter)
	require.NoError(t, err)

	t.Run("present", func(t *testing.T) {
		a, ok := r.Find(mock.Search)
		require.True(t, ok)
		assert.Same(t, search, a)

		s, ok := r.FindSearch(mock.Search)
		require.True(t, ok)
		assert.Same(t, search, s)

		f, ok := r.FindFilter(mock.Filter)
		require.True(t, ok)
		assert.Same(t, filter, f)
	})

	t.Run("absent", func(t *testing.T) {
		_, ok := r.Find(mock.AdditionalSearch)
		assert.False(t, ok)

		_, ok = r.FindSearch(mock.Filter)
		assert.False(t, ok)

		_, ok = r.FindFilter(mock.Search)
		assert.False(t, ok)
	})

	t.Run("lookup is by token identity", func(t *testing.T) {
		lookalike := core.NewActionType("Search", "SEARCH", core.AsSearch())
		_, ok := r.Find(lookalike)
		assert.False(t, ok)
	})
}

func TestRegistry_TypeViews(t *testing.T) {
	r, err := action.NewRegistry(
		mock.NewMockSearch(mock.Search),
		mock.NewMockSearch(mock.AdditionalSearch),
		mock.NewMockFilter(mock.Filter),
		mock.NewMockFilter(mock.AdditionalFilter),
	)
	require.NoError(t, err)

	assert.Equal(t, []*core.ActionType{mock.AdditionalSearch, mock.Search}, r.SearchTypes())
	assert.Equal(t, []*core.ActionType{mock.AdditionalFilter, mock.Filter}, r.FilterTypes())

	views := r.SearchTypes()
	views[0] = nil
	assert.NotNil(t, r.SearchTypes()[0], "views must not expose internal state")
}
