// Package mock provides test doubles for actions, elements and search contexts.
//
// The doubles allow engine and parser tests to run without a real document
// tree and enable controlled, deterministic behavior.
//
// # Usage in Tests
//
//	search := mock.NewMockSearch(mock.Search)
//	search.SearchFunc = func(ctx context.Context, sc core.SearchContext, p core.SearchParameters) ([]core.Element, error) {
//	    return []core.Element{mock.NewElement("e1")}, nil
//	}
//	registry, err := action.NewRegistry(search, mock.NewMockFilter(mock.Filter))
//
// # Default Behavior
//
//   - MockSearch: returns no elements
//   - MockFilter: returns its input unchanged
//   - Element: children can be attached and are returned by ChildrenSearch
package mock
