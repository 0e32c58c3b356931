// Package dom implements searchable HTML documents and the built-in locator
// actions.
//
// A Document is parsed once with goquery and serves as the root search
// context. Every element returned by a search is a *Node, which is a search
// context itself so that child queries can be scoped to it.
//
// NewRegistry returns an action registry holding every built-in action:
//
//	registry, err := dom.NewRegistry()
//	parser, err := locator.NewParser(registry)
//	searcher, err := search.NewSearcher(registry)
//
// Visibility is evaluated statically from markup, see Displayed.
package dom
