package locator

import (
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/poiesic/locate/core"
)

// Format is the expected locator grammar echoed by invalid format errors.
const Format = `(?:By\.)?([a-zA-Z]+)\((.+?)\):?([a-zA-Z]*)`

const filterSeparator = "->filter."

var (
	locatorPattern = regexp.MustCompile(`^(?:(?i:By)\.)?([a-zA-Z]+)\((.+?)\):?([a-zA-Z]*)$`)
	filterPattern  = regexp.MustCompile(`([a-zA-Z]+)\(([^()]*)\)`)
)

const (
	typeGroup       = 1
	valueGroup      = 2
	visibilityGroup = 3
)

// TypeSource provides the action types locators may refer to.
// *action.Registry satisfies it.
type TypeSource interface {
	SearchTypes() []*core.ActionType
	FilterTypes() []*core.ActionType
}

// Parser converts locator text into queries.
type Parser struct {
	searchTypes []*core.ActionType
	filterTypes []*core.ActionType
	cache       *lru.Cache[string, *core.Query]
	suggest     bool
	logger      *slog.Logger
}

// Option configures a Parser.
type Option func(*Parser) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Parser) error {
		if logger == nil {
			logger = slog.Default()
		}
		p.logger = logger
		return nil
	}
}

// WithCacheSize keeps up to size parsed locators in an LRU cache.
// A size of 0 disables caching, which is the default.
func WithCacheSize(size int) Option {
	return func(p *Parser) error {
		if size <= 0 {
			p.cache = nil
			return nil
		}
		cache, err := lru.New[string, *core.Query](size)
		if err != nil {
			return err
		}
		p.cache = cache
		return nil
	}
}

// WithSuggestions enables "did you mean" suggestions on unknown type names.
// Enabled by default.
func WithSuggestions(enabled bool) Option {
	return func(p *Parser) error {
		p.suggest = enabled
		return nil
	}
}

// NewParser creates a parser resolving type names against types.
func NewParser(types TypeSource, opts ...Option) (*Parser, error) {
	if types == nil {
		return nil, ErrTypeSourceRequired
	}

	p := &Parser{
		searchTypes: types.SearchTypes(),
		filterTypes: types.FilterTypes(),
		suggest:     true,
		logger:      slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(p); err != nil {
			return nil, err
		}
	}

	return p, nil
}

// Parse converts a single locator into a query.
func (p *Parser) Parse(locator string) (*core.Query, error) {
	if p.cache != nil {
		if q, ok := p.cache.Get(locator); ok {
			return q.Clone(), nil
		}
	}

	q, err := p.parse(locator)
	if err != nil {
		p.logger.Debug("locator rejected", "locator", locator, "err", err)
		return nil, err
	}

	if p.cache != nil {
		p.cache.Add(locator, q.Clone())
	}
	return q, nil
}

func (p *Parser) parse(locator string) (*core.Query, error) {
	head, filters, _ := strings.Cut(locator, filterSeparator)

	m := locatorPattern.FindStringSubmatch(head)
	if m == nil {
		return nil, &SyntaxError{
			Input:   locator,
			Literal: locator,
			kind:    core.ErrInvalidLocatorFormat,
			msg:     fmt.Sprintf("Invalid locator format. Expected matches [%s] Actual: [%s]", Format, locator),
		}
	}

	typeName := strings.ToLower(m[typeGroup])
	searchType, err := p.resolve(p.searchTypes, typeName, "locator", core.ErrUnsupportedLocatorType, locator)
	if err != nil {
		return nil, err
	}

	params := core.NewSearchParameters(m[valueGroup])
	if suffix := m[visibilityGroup]; suffix != "" {
		visibility, err := core.ParseVisibility(suffix)
		if err != nil {
			return nil, &SyntaxError{
				Input:   locator,
				Literal: suffix,
				kind:    core.ErrIllegalVisibility,
				msg:     err.Error(),
			}
		}
		params.Visibility = visibility
	}

	q := core.NewQueryWithParameters(searchType, params)
	for _, fm := range filterPattern.FindAllStringSubmatch(filters, -1) {
		filterType, err := p.resolve(p.filterTypes, fm[1], "filter", core.ErrUnsupportedFilterType, locator)
		if err != nil {
			return nil, err
		}
		if err := q.AddFilter(filterType, fm[2]); err != nil {
			return nil, err
		}
	}
	return q, nil
}

func (p *Parser) resolve(types []*core.ActionType, name, kind string, sentinel error, locator string) (*core.ActionType, error) {
	for _, t := range types {
		if t.Matches(name) {
			return t, nil
		}
	}
	e := &SyntaxError{
		Input:   locator,
		Literal: name,
		kind:    sentinel,
		msg:     fmt.Sprintf("Unsupported %s type: %s", kind, name),
	}
	if p.suggest {
		e.Suggestion = suggest(types, name)
	}
	return nil, e
}

// ParseSet converts a comma-separated list of locators into queries, dropping
// exact duplicates. The order of the returned queries is not significant.
func (p *Parser) ParseSet(locators string) ([]*core.Query, error) {
	var out []*core.Query
	for _, item := range splitTopLevel(locators) {
		q, err := p.Parse(item)
		if err != nil {
			return nil, err
		}
		if !containsQuery(out, q) {
			out = append(out, q)
		}
	}
	return out, nil
}

func containsQuery(queries []*core.Query, q *core.Query) bool {
	for _, existing := range queries {
		if existing.Equal(q) {
			return true
		}
	}
	return false
}

// splitTopLevel splits s on commas outside parentheses and trims each item.
// Empty items are dropped.
func splitTopLevel(s string) []string {
	var (
		items []string
		depth int
		start int
	)
	flush := func(end int) {
		if item := strings.TrimSpace(s[start:end]); item != "" {
			items = append(items, item)
		}
	}
	for i, r := range s {
		switch r {
		case '(':
			depth++
		case ')':
			if depth > 0 {
				depth--
			}
		case ',':
			if depth == 0 {
				flush(i)
				start = i + 1
			}
		}
	}
	flush(len(s))
	return items
}
