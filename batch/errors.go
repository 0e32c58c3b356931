package batch

import "errors"

var (
	// ErrParserRequired is returned when a parser is not provided.
	ErrParserRequired = errors.New("parser required")

	// ErrSearcherRequired is returned when a searcher is not provided.
	ErrSearcherRequired = errors.New("searcher required")

	// ErrNoLocators is returned when a run is started without locators.
	ErrNoLocators = errors.New("no locators to evaluate")
)
