package core

// SearchContext is a node of a hierarchical document that searches can be
// scoped to: a whole document or one of its elements.
type SearchContext interface {
	// String describes the context in log and error output.
	String() string
}

// Element is a node returned by a search. Elements are search contexts
// themselves so that child queries can be scoped to them.
type Element interface {
	SearchContext
	TagName() string
}
