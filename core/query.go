package core

import (
	"slices"
	"strings"
)

// SearchParameters holds the runtime value of a primary search and its
// visibility qualifier.
type SearchParameters struct {
	Value      string
	Visibility Visibility
}

// NewSearchParameters returns parameters that match visible elements only.
func NewSearchParameters(value string) SearchParameters {
	return SearchParameters{Value: value, Visibility: Visible}
}

// FilterValues is one entry of a query's filter chain: a filter type and the
// values it is applied with, in order.
type FilterValues struct {
	Type   *ActionType
	Values []string
}

// Query describes what to search for, how to narrow the result and which
// descendants each result must contain.
//
// A Query is built once through NewQuery, AddFilter and AddChild and must not
// be modified after it is handed to a searcher.
type Query struct {
	searchType *ActionType
	params     SearchParameters
	filters    []FilterValues
	children   []*Query
}

// NewQuery creates a query for visible elements matched by t with value.
func NewQuery(t *ActionType, value string) *Query {
	return NewQueryWithParameters(t, NewSearchParameters(value))
}

// NewQueryWithParameters creates a query with explicit search parameters.
func NewQueryWithParameters(t *ActionType, params SearchParameters) *Query {
	return &Query{
		searchType: t,
		params:     params,
	}
}

// Type returns the primary search type.
func (q *Query) Type() *ActionType {
	return q.searchType
}

// Parameters returns the primary search parameters.
func (q *Query) Parameters() SearchParameters {
	return q.params
}

// AddFilter appends value to the chain of filter type t.
//
// Filters of the same type accumulate their values in call order. The call
// fails, leaving q untouched, when t is not a filter type or competes with a
// filter type already present or with the primary type.
func (q *Query) AddFilter(t *ActionType, value string) error {
	if !t.Filterable() {
		return newError(ErrFilterNotSupported, "Filter by attribute '%s' is not supported", t.Key())
	}
	for i := range q.filters {
		existing := q.filters[i].Type
		if existing == t {
			q.filters[i].Values = append(q.filters[i].Values, value)
			return nil
		}
		if t.CompetesWith(existing) {
			return competing(t, existing)
		}
	}
	if t.CompetesWith(q.searchType) {
		return competing(t, q.searchType)
	}
	q.filters = append(q.filters, FilterValues{Type: t, Values: []string{value}})
	return nil
}

func competing(added, existing *ActionType) error {
	return newError(ErrCompetingAttributes, "Competing attributes: '%s' and '%s'", added.Name(), existing.Name())
}

// AddChild appends a child query. Every element found by q must contain at
// least one match of child, otherwise it is dropped from the result.
func (q *Query) AddChild(child *Query) *Query {
	q.children = append(q.children, child)
	return q
}

// Filters returns the filter chain in application order.
func (q *Query) Filters() []FilterValues {
	out := make([]FilterValues, len(q.filters))
	for i, f := range q.filters {
		out[i] = FilterValues{Type: f.Type, Values: slices.Clone(f.Values)}
	}
	return out
}

// Children returns the child queries in declaration order.
func (q *Query) Children() []*Query {
	return slices.Clone(q.children)
}

// Equal reports whether q and other describe the same search. The order of
// distinct filter types is ignored; the order of values within one type and
// the order of children are not.
func (q *Query) Equal(other *Query) bool {
	if q == other {
		return true
	}
	if q == nil || other == nil {
		return false
	}
	if q.searchType != other.searchType || q.params != other.params {
		return false
	}
	if len(q.filters) != len(other.filters) {
		return false
	}
	for _, f := range q.filters {
		values, ok := other.filterValues(f.Type)
		if !ok || !slices.Equal(f.Values, values) {
			return false
		}
	}
	return slices.EqualFunc(q.children, other.children, (*Query).Equal)
}

func (q *Query) filterValues(t *ActionType) ([]string, bool) {
	for _, f := range q.filters {
		if f.Type == t {
			return f.Values, true
		}
	}
	return nil, false
}

// Clone returns a deep copy of q.
func (q *Query) Clone() *Query {
	c := &Query{
		searchType: q.searchType,
		params:     q.params,
		filters:    q.Filters(),
	}
	for _, child := range q.children {
		c.children = append(c.children, child.Clone())
	}
	return c
}

// String renders q for diagnostics, e.g. " Search: 'value'; Visibility: VISIBLE;".
func (q *Query) String() string {
	var b strings.Builder
	q.writeTo(&b)
	return b.String()
}

func (q *Query) writeTo(b *strings.Builder) {
	b.WriteString(" ")
	b.WriteString(q.searchType.Name())
	b.WriteString(": '")
	b.WriteString(q.params.Value)
	b.WriteString("'; Visibility: ")
	b.WriteString(q.params.Visibility.String())
	b.WriteString(";")
	for _, f := range q.filters {
		b.WriteString(" Filter ")
		b.WriteString(f.Type.Name())
		b.WriteString(": '")
		b.WriteString(strings.Join(f.Values, "', '"))
		b.WriteString("';")
	}
	for _, child := range q.children {
		b.WriteString(" Child:")
		child.writeTo(b)
	}
}
