package metrics

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/locate/action"
	"github.com/poiesic/locate/action/mock"
	"github.com/poiesic/locate/core"
	"github.com/poiesic/locate/search"
)

func TestNewMonitor(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewMonitor(reg)
	require.NoError(t, err)

	t.Run("duplicate registration", func(t *testing.T) {
		_, err := NewMonitor(reg)
		assert.Error(t, err)
	})
}

func TestMonitor_RecordsSearch(t *testing.T) {
	reg := prometheus.NewRegistry()
	monitor, err := NewMonitor(reg)
	require.NoError(t, err)

	s := mock.NewMockSearch(mock.Search)
	s.SearchFunc = func(_ context.Context, sc core.SearchContext, params core.SearchParameters) ([]core.Element, error) {
		return mock.ChildrenSearch(sc, params), nil
	}
	registry, err := action.NewRegistry(s, mock.NewMockFilter(mock.Filter))
	require.NoError(t, err)
	searcher, err := search.NewSearcher(registry, search.WithMonitor(monitor))
	require.NoError(t, err)

	root := mock.NewContext("root", mock.NewElement("e1", mock.NewElement("c1")), mock.NewElement("e2"))
	q := core.NewQuery(mock.Search, "").AddChild(core.NewQuery(mock.Search, "c1"))
	require.NoError(t, q.AddFilter(mock.Filter, "a"))
	require.NoError(t, q.AddFilter(mock.Filter, "b"))

	results, err := searcher.FindElements(context.Background(), root, q)
	require.NoError(t, err)
	require.Len(t, results, 1)

	assert.Equal(t, 3.0, testutil.ToFloat64(monitor.searches.WithLabelValues("SEARCH")))
	assert.Equal(t, 2.0, testutil.ToFloat64(monitor.filterApplied.WithLabelValues("FILTER")))
	assert.Equal(t, 1.0, testutil.ToFloat64(monitor.pruned.WithLabelValues("SEARCH")))
	assert.Equal(t, 1, testutil.CollectAndCount(monitor.results, "locate_search_results"))
}
