package search

import (
	"github.com/poiesic/locate/core"
)

// SearchMonitor provides hooks to observe the search process.
// Implement this interface to track intermediate steps and results during search.
// Nested child searches report through the same monitor.
type SearchMonitor interface {
	Start(q *core.Query, sc core.SearchContext)
	AfterPrimarySearch(q *core.Query, found []core.Element)
	AfterFilter(t *core.ActionType, value string, remaining []core.Element)
	Pruned(child *core.Query, element core.Element)
	Finish(q *core.Query, results []core.Element)
}

// noopMonitor is a no-op implementation of SearchMonitor
type noopMonitor struct{}

var _ SearchMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ *core.Query, _ core.SearchContext)                  {}
func (n *noopMonitor) AfterPrimarySearch(_ *core.Query, _ []core.Element)         {}
func (n *noopMonitor) AfterFilter(_ *core.ActionType, _ string, _ []core.Element) {}
func (n *noopMonitor) Pruned(_ *core.Query, _ core.Element)                       {}
func (n *noopMonitor) Finish(_ *core.Query, _ []core.Element)                     {}
