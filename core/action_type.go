package core

import "strings"

// ActionType identifies a search or filter capability.
//
// Types are compared by identity: two tokens declared with the same key are
// still different types. The normalized key is only used to resolve textual
// type names written in locators.
type ActionType struct {
	name       string
	key        string
	normalized string
	searchable bool
	filterable bool
	competing  map[string]struct{}
}

// ActionTypeOption configures an ActionType at declaration time.
type ActionTypeOption func(*ActionType)

// AsSearch marks the type as usable as a primary search type.
func AsSearch() ActionTypeOption {
	return func(t *ActionType) {
		t.searchable = true
	}
}

// AsFilter marks the type as usable as a filter type.
func AsFilter() ActionTypeOption {
	return func(t *ActionType) {
		t.filterable = true
	}
}

// CompetingWith declares the keys of types this type cannot be combined with.
// The relation is symmetric: declaring it on either side is enough.
func CompetingWith(keys ...string) ActionTypeOption {
	return func(t *ActionType) {
		for _, k := range keys {
			t.competing[NormalizeKey(k)] = struct{}{}
		}
	}
}

// NewActionType declares a new action type token.
func NewActionType(name, key string, opts ...ActionTypeOption) *ActionType {
	t := &ActionType{
		name:       name,
		key:        key,
		normalized: NormalizeKey(key),
		competing:  make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Name returns the human readable name used in messages.
func (t *ActionType) Name() string {
	return t.name
}

// Key returns the declared key, e.g. "CSS_SELECTOR".
func (t *ActionType) Key() string {
	return t.key
}

// NormalizedKey returns the key lowercased with separators stripped.
func (t *ActionType) NormalizedKey() string {
	return t.normalized
}

// Searchable reports whether the type can drive a primary search.
func (t *ActionType) Searchable() bool {
	return t.searchable
}

// Filterable reports whether the type can be used as a filter.
func (t *ActionType) Filterable() bool {
	return t.filterable
}

// CompetesWith reports whether t and other are mutually exclusive.
func (t *ActionType) CompetesWith(other *ActionType) bool {
	if t == nil || other == nil {
		return false
	}
	if _, ok := t.competing[other.normalized]; ok {
		return true
	}
	_, ok := other.competing[t.normalized]
	return ok
}

// Matches reports whether a textual type name written in a locator resolves
// to this type.
func (t *ActionType) Matches(name string) bool {
	return t.normalized == NormalizeKey(name)
}

func (t *ActionType) String() string {
	return t.name
}

// NormalizeKey lowercases s and strips '_', '-' and spaces.
func NormalizeKey(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		switch r {
		case '_', '-', ' ':
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
