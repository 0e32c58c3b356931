package mock

import (
	"context"

	"github.com/poiesic/locate/action"
	"github.com/poiesic/locate/core"
)

// SearchCall records one invocation of MockSearch.
type SearchCall struct {
	Context    core.SearchContext
	Parameters core.SearchParameters
}

// MockSearch is a test double for action.SearchAction.
// It allows custom behavior injection via function fields.
type MockSearch struct {
	// SearchFunc is called by Search if set.
	// If nil, Search returns no elements.
	SearchFunc func(ctx context.Context, sc core.SearchContext, params core.SearchParameters) ([]core.Element, error)

	actionType *core.ActionType
	calls      []SearchCall
}

var _ action.SearchAction = (*MockSearch)(nil)

// NewMockSearch creates a mock search action for t.
func NewMockSearch(t *core.ActionType) *MockSearch {
	return &MockSearch{actionType: t}
}

// Type returns the type the mock was created for.
func (m *MockSearch) Type() *core.ActionType {
	return m.actionType
}

// Search records the call and delegates to SearchFunc.
func (m *MockSearch) Search(ctx context.Context, sc core.SearchContext, params core.SearchParameters) ([]core.Element, error) {
	m.calls = append(m.calls, SearchCall{Context: sc, Parameters: params})

	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, sc, params)
	}
	return nil, nil
}

// Calls returns the recorded invocations.
func (m *MockSearch) Calls() []SearchCall {
	return m.calls
}

// CallCount returns the number of times Search was called.
func (m *MockSearch) CallCount() int {
	return len(m.calls)
}

// FilterCall records one invocation of MockFilter.
type FilterCall struct {
	Elements []core.Element
	Value    string
}

// MockFilter is a test double for action.FilterAction.
type MockFilter struct {
	// FilterFunc is called by Filter if set.
	// If nil, Filter returns its input unchanged.
	FilterFunc func(ctx context.Context, elements []core.Element, value string) ([]core.Element, error)

	actionType *core.ActionType
	calls      []FilterCall
}

var _ action.FilterAction = (*MockFilter)(nil)

// NewMockFilter creates a mock filter action for t.
func NewMockFilter(t *core.ActionType) *MockFilter {
	return &MockFilter{actionType: t}
}

// Type returns the type the mock was created for.
func (m *MockFilter) Type() *core.ActionType {
	return m.actionType
}

// Filter records the call and delegates to FilterFunc.
func (m *MockFilter) Filter(ctx context.Context, elements []core.Element, value string) ([]core.Element, error) {
	m.calls = append(m.calls, FilterCall{Elements: elements, Value: value})

	if m.FilterFunc != nil {
		return m.FilterFunc(ctx, elements, value)
	}
	return elements, nil
}

// Calls returns the recorded invocations.
func (m *MockFilter) Calls() []FilterCall {
	return m.calls
}

// CallCount returns the number of times Filter was called.
func (m *MockFilter) CallCount() int {
	return len(m.calls)
}
