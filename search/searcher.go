package search

import (
	"context"
	"log/slog"

	"github.com/poiesic/locate/action"
	"github.com/poiesic/locate/core"
)

// Resolver maps action types to implementations.
// *action.Registry satisfies it.
type Resolver interface {
	FindSearch(t *core.ActionType) (action.SearchAction, bool)
	FindFilter(t *core.ActionType) (action.FilterAction, bool)
}

// Searcher executes queries against search contexts.
type Searcher struct {
	resolver Resolver
	scope    ScopeProvider
	monitor  SearchMonitor
	logger   *slog.Logger
}

// Option configures a Searcher.
type Option func(*Searcher) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Searcher) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// WithScope sets the provider used by scope based searches.
func WithScope(scope ScopeProvider) Option {
	return func(s *Searcher) error {
		s.scope = scope
		return nil
	}
}

// WithMonitor sets a monitor receiving callbacks at each stage of every search.
func WithMonitor(monitor SearchMonitor) Option {
	return func(s *Searcher) error {
		if monitor == nil {
			monitor = &noopMonitor{}
		}
		s.monitor = monitor
		return nil
	}
}

// NewSearcher creates a new searcher.
func NewSearcher(resolver Resolver, opts ...Option) (*Searcher, error) {
	if resolver == nil {
		return nil, ErrResolverRequired
	}

	s := &Searcher{
		resolver: resolver,
		monitor:  &noopMonitor{},
		logger:   slog.Default(),
	}

	// Apply options
	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// FindElements runs q inside sc and returns the matching elements in the
// order produced by the underlying actions.
func (s *Searcher) FindElements(ctx context.Context, sc core.SearchContext, q *core.Query) ([]core.Element, error) {
	s.monitor.Start(q, sc)

	// 1. Primary search
	searchAction, ok := s.resolver.FindSearch(q.Type())
	if !ok {
		return nil, &UnsupportedActionError{Type: q.Type()}
	}
	found, err := searchAction.Search(ctx, sc, q.Parameters())
	if err != nil {
		return nil, err
	}
	s.monitor.AfterPrimarySearch(q, found)
	s.logger.Debug("primary search done", "type", q.Type().Name(), "context", sc.String(), "found", len(found))

	// 2. Filters, each applied to the previous output
	for _, f := range q.Filters() {
		filterAction, ok := s.resolver.FindFilter(f.Type)
		if !ok {
			return nil, &UnsupportedActionError{Type: f.Type}
		}
		for _, value := range f.Values {
			found, err = filterAction.Filter(ctx, found, value)
			if err != nil {
				return nil, err
			}
			s.monitor.AfterFilter(f.Type, value, found)
		}
	}

	// 3. Keep only elements containing a match of every child query
	for _, child := range q.Children() {
		found, err = s.retainWithMatches(ctx, found, child)
		if err != nil {
			return nil, err
		}
	}

	s.monitor.Finish(q, found)
	return found, nil
}

// retainWithMatches returns the elements in which child finds at least one
// element. The input slice is not modified.
func (s *Searcher) retainWithMatches(ctx context.Context, elements []core.Element, child *core.Query) ([]core.Element, error) {
	kept := make([]core.Element, 0, len(elements))
	for _, element := range elements {
		matches, err := s.FindElements(ctx, element, child)
		if err != nil {
			return nil, err
		}
		if len(matches) == 0 {
			s.monitor.Pruned(child, element)
			s.logger.Debug("element pruned", "element", element.String(), "child", child.Type().Name())
			continue
		}
		kept = append(kept, element)
	}
	return kept, nil
}

// FindElementsInScope runs q inside the current scope.
func (s *Searcher) FindElementsInScope(ctx context.Context, q *core.Query) ([]core.Element, error) {
	sc, err := s.currentScope()
	if err != nil {
		return nil, err
	}
	return s.FindElements(ctx, sc, q)
}

// FindElement returns the first element q finds in the current scope.
// The boolean is false when nothing matched; that is not an error.
func (s *Searcher) FindElement(ctx context.Context, q *core.Query) (core.Element, bool, error) {
	sc, err := s.currentScope()
	if err != nil {
		return nil, false, err
	}
	return s.FindFirst(ctx, sc, q)
}

// FindFirst returns the first element q finds inside sc.
func (s *Searcher) FindFirst(ctx context.Context, sc core.SearchContext, q *core.Query) (core.Element, bool, error) {
	elements, err := s.FindElements(ctx, sc, q)
	if err != nil {
		return nil, false, err
	}
	if len(elements) == 0 {
		return nil, false, nil
	}
	return elements[0], true, nil
}

func (s *Searcher) currentScope() (core.SearchContext, error) {
	if s.scope == nil {
		return nil, ErrScopeRequired
	}
	sc := s.scope.SearchContext()
	if sc == nil {
		return nil, ErrScopeRequired
	}
	return sc, nil
}
