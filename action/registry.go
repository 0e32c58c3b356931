package action

import (
	"fmt"
	"slices"
	"strings"

	"github.com/poiesic/locate/core"
)

// Registry maps action types to their implementations.
type Registry struct {
	actions     map[*core.ActionType]Action
	searchTypes []*core.ActionType
	filterTypes []*core.ActionType
}

// NewRegistry registers every action under its own type.
//
// A search type must be served by a SearchAction and a filter type by a
// FilterAction; a type that is both may be served by an action implementing
// either or both.
func NewRegistry(actions ...Action) (*Registry, error) {
	r := &Registry{
		actions: make(map[*core.ActionType]Action, len(actions)),
	}
	for _, a := range actions {
		if err := r.register(a); err != nil {
			return nil, err
		}
	}
	byKey := func(a, b *core.ActionType) int {
		return strings.Compare(a.NormalizedKey(), b.NormalizedKey())
	}
	slices.SortFunc(r.searchTypes, byKey)
	slices.SortFunc(r.filterTypes, byKey)
	return r, nil
}

func (r *Registry) register(a Action) error {
	if a == nil || a.Type() == nil {
		return ErrNilAction
	}
	t := a.Type()
	if _, ok := r.actions[t]; ok {
		return fmt.Errorf("%w: %s", ErrDuplicateActionType, t.Name())
	}

	_, isSearch := a.(SearchAction)
	_, isFilter := a.(FilterAction)
	serves := false
	if t.Searchable() && isSearch {
		r.searchTypes = append(r.searchTypes, t)
		serves = true
	}
	if t.Filterable() && isFilter {
		r.filterTypes = append(r.filterTypes, t)
		serves = true
	}
	if !serves {
		return fmt.Errorf("%w: %s", ErrNoCapability, t.Name())
	}

	r.actions[t] = a
	return nil
}

// Find returns the action registered for t.
func (r *Registry) Find(t *core.ActionType) (Action, bool) {
	a, ok := r.actions[t]
	return a, ok
}

// FindSearch returns the search action registered for t.
func (r *Registry) FindSearch(t *core.ActionType) (SearchAction, bool) {
	if t == nil || !t.Searchable() {
		return nil, false
	}
	a, ok := r.actions[t].(SearchAction)
	return a, ok
}

// FindFilter returns the filter action registered for t.
func (r *Registry) FindFilter(t *core.ActionType) (FilterAction, bool) {
	if t == nil || !t.Filterable() {
		return nil, false
	}
	a, ok := r.actions[t].(FilterAction)
	return a, ok
}

// SearchTypes returns the registered types usable as primary search types,
// ordered by normalized key.
func (r *Registry) SearchTypes() []*core.ActionType {
	return slices.Clone(r.searchTypes)
}

// FilterTypes returns the registered types usable as filters, ordered by
// normalized key.
func (r *Registry) FilterTypes() []*core.ActionType {
	return slices.Clone(r.filterTypes)
}

// Len returns the number of registered actions.
func (r *Registry) Len() int {
	return len(r.actions)
}
