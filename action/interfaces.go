package action

import (
	"context"

	"github.com/poiesic/locate/core"
)

// Action is an implementation tagged with exactly one action type.
type Action interface {
	Type() *core.ActionType
}

// SearchAction performs the primary search of a query.
type SearchAction interface {
	Action

	// Search returns the elements under sc matching params, in document order.
	Search(ctx context.Context, sc core.SearchContext, params core.SearchParameters) ([]core.Element, error)
}

// FilterAction narrows a list of elements using a single string value.
type FilterAction interface {
	Action

	// Filter returns the subset of elements accepted for value. The relative
	// order of the input should be preserved.
	Filter(ctx context.Context, elements []core.Element, value string) ([]core.Element, error)
}
