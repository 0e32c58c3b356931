package search

import (
	"sync"

	"github.com/poiesic/locate/core"
)

// ScopeProvider supplies the context scope based searches run in.
type ScopeProvider interface {
	// SearchContext returns the current scope, or nil if none is set.
	SearchContext() core.SearchContext
}

// Scope is a settable ScopeProvider shared by everything that searches
// "where we are now". It is safe for concurrent use; the searcher itself
// performs no synchronization.
type Scope struct {
	mu      sync.RWMutex
	current core.SearchContext
}

var _ ScopeProvider = (*Scope)(nil)

// NewScope creates a scope positioned at sc.
func NewScope(sc core.SearchContext) *Scope {
	return &Scope{current: sc}
}

// SearchContext returns the current scope.
func (s *Scope) SearchContext() core.SearchContext {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Set moves the scope to sc and returns the previous scope.
func (s *Scope) Set(sc core.SearchContext) core.SearchContext {
	s.mu.Lock()
	defer s.mu.Unlock()
	previous := s.current
	s.current = sc
	return previous
}

// Reset clears the scope.
func (s *Scope) Reset() {
	s.Set(nil)
}
