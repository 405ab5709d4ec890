// Package listview implements the generic filterable list pattern shared by
// the leads, sales and commissions pages: filter state, composable
// predicates, the table/empty-state decision and tabular rendering.
package listview

import (
	"maps"
	"slices"
	"strings"
	"time"
)

// All is the sentinel selection that imposes no constraint on a dimension.
const All = "Todos"

// Dimension names a categorical filter axis.
type Dimension string

// Filter dimensions.
const (
	DimensionStatus Dimension = "status"
	DimensionType   Dimension = "type"
	DimensionPeriod Dimension = "period"
)

// State is the set of active filter selections of one view. It is treated as
// a value: every mutation returns a new State, so copies never alias.
type State struct {
	selections map[Dimension]string
	Query      string
}

// NewState creates a state with the given query and selections.
func NewState(query string, selections map[Dimension]string) State {
	return State{
		Query:      query,
		selections: maps.Clone(selections),
	}
}

// Selection returns the current value of a dimension. Dimensions that were
// never selected read as All.
func (s State) Selection(d Dimension) string {
	if v, ok := s.selections[d]; ok {
		return v
	}
	return All
}

// WithSelection returns a copy of the state with one dimension changed.
func (s State) WithSelection(d Dimension, value string) State {
	next := maps.Clone(s.selections)
	if next == nil {
		next = make(map[Dimension]string, 1)
	}
	next[d] = value
	return State{Query: s.Query, selections: next}
}

// WithQuery returns a copy of the state with a new text query.
func (s State) WithQuery(q string) State {
	return State{Query: q, selections: maps.Clone(s.selections)}
}

// Predicate decides whether a record is included under a filter state.
// Predicates must be pure.
type Predicate[T any] func(record T, state State) bool

// TextPredicate matches when the query is a case-insensitive substring of
// any of the given fields. An empty query matches everything.
func TextPredicate[T any](fields ...func(T) string) Predicate[T] {
	return func(record T, state State) bool {
		if state.Query == "" {
			return true
		}
		query := strings.ToLower(state.Query)
		for _, field := range fields {
			if strings.Contains(strings.ToLower(field(record)), query) {
				return true
			}
		}
		return false
	}
}

// CategoryPredicate matches when the record's field equals the selection of
// the dimension. All matches everything; a selection outside options matches
// nothing.
func CategoryPredicate[T any](d Dimension, options []string, field func(T) string) Predicate[T] {
	return func(record T, state State) bool {
		selection := state.Selection(d)
		if selection == All {
			return true
		}
		if !slices.Contains(options, selection) {
			return false
		}
		return field(record) == selection
	}
}

// PeriodPredicate matches when the record's date falls inside the window
// named by the dimension's selection, evaluated against now. All matches
// everything; an unknown period matches nothing.
func PeriodPredicate[T any](d Dimension, now func() time.Time, date func(T) time.Time) Predicate[T] {
	return func(record T, state State) bool {
		selection := state.Selection(d)
		if selection == All {
			return true
		}
		window, ok := WindowFor(Period(selection), now())
		if !ok {
			return false
		}
		return window.Contains(date(record))
	}
}

// Match reports whether a record satisfies every predicate.
func Match[T any](record T, state State, predicates []Predicate[T]) bool {
	for _, p := range predicates {
		if !p(record, state) {
			return false
		}
	}
	return true
}

// Apply returns the records that satisfy every predicate, preserving their
// relative order. The input slice is never modified.
func Apply[T any](records []T, state State, predicates []Predicate[T]) []T {
	filtered := make([]T, 0, len(records))
	for _, r := range records {
		if Match(r, state, predicates) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}
