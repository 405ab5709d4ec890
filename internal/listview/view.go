package listview

import "slices"

// Record is anything a list view can show. Identifiers must be unique within
// a record set.
type Record interface {
	RecordID() int64
}

// DimensionSpec declares a categorical selector of a view.
type DimensionSpec struct {
	Dimension Dimension
	Label     string
	Default   string
	Options   []string
}

// EmptyState holds the copy shown when a view has no rows to display.
type EmptyState struct {
	NoRecords string
	NoMatches string
}

// Definition parameterizes a list view for one record type.
type Definition[T Record] struct {
	Name              string
	Title             string
	Subtitle          string
	SearchPlaceholder string
	Empty             EmptyState
	Columns           []Column[T]
	Predicates        []Predicate[T]
	Dimensions        []DimensionSpec
	// Searchable enables the free-text query.
	Searchable bool
}

// Dimension returns the spec of a dimension, if the view declares it.
func (d Definition[T]) Dimension(dim Dimension) (DimensionSpec, bool) {
	for _, spec := range d.Dimensions {
		if spec.Dimension == dim {
			return spec, true
		}
	}
	return DimensionSpec{}, false
}

// DefaultState returns the initial filter state of the view.
func (d Definition[T]) DefaultState() State {
	selections := make(map[Dimension]string, len(d.Dimensions))
	for _, spec := range d.Dimensions {
		def := spec.Default
		if def == "" {
			def = All
		}
		selections[spec.Dimension] = def
	}
	return NewState("", selections)
}

// Branch is the render branch chosen by a view.
type Branch int

// Render branches.
const (
	BranchTable Branch = iota
	BranchEmpty
)

// EmptyReason tells why a view has nothing to show.
type EmptyReason int

// Empty reasons.
const (
	ReasonNone EmptyReason = iota
	ReasonNoRecords
	ReasonNoMatches
)

// Result is what a view hands to its renderer.
type Result[T Record] struct {
	Message string
	Records []T
	Table   Table
	Branch  Branch
	Reason  EmptyReason
}

// View owns the filter state of one list page over a read-only record set.
type View[T Record] struct {
	def     Definition[T]
	state   State
	records []T
}

// NewView creates a view over records in its default state.
func NewView[T Record](def Definition[T], records []T) View[T] {
	return View[T]{
		def:     def,
		records: records,
		state:   def.DefaultState(),
	}
}

// Activate replaces the record set and resets the filters, as happens every
// time the page is (re)opened.
func (v *View[T]) Activate(records []T) {
	v.records = records
	v.Reset()
}

// Reset restores every filter to its default.
func (v *View[T]) Reset() {
	v.state = v.def.DefaultState()
}

// SetQuery updates the text query. It is ignored on views without search.
func (v *View[T]) SetQuery(q string) {
	if !v.def.Searchable {
		return
	}
	v.state = v.state.WithQuery(q)
}

// Select sets a dimension to a value. Values outside the declared options
// are stored as given and simply match nothing.
func (v *View[T]) Select(d Dimension, value string) {
	v.state = v.state.WithSelection(d, value)
}

// Cycle moves a dimension to the next (delta > 0) or previous option and
// returns the new selection. Undeclared dimensions are left untouched.
func (v *View[T]) Cycle(d Dimension, delta int) string {
	spec, ok := v.def.Dimension(d)
	if !ok || len(spec.Options) == 0 {
		return v.state.Selection(d)
	}

	idx := slices.Index(spec.Options, v.state.Selection(d))
	if idx < 0 {
		idx = 0
	} else {
		n := len(spec.Options)
		idx = ((idx+delta)%n + n) % n
	}

	v.state = v.state.WithSelection(d, spec.Options[idx])
	return spec.Options[idx]
}

// State returns the current filter state.
func (v View[T]) State() State {
	return v.state
}

// Definition returns the view's definition.
func (v View[T]) Definition() Definition[T] {
	return v.def
}

// Records returns the unfiltered record set.
func (v View[T]) Records() []T {
	return v.records
}

// Filtered returns the records that pass every predicate, in store order.
func (v View[T]) Filtered() []T {
	return Apply(v.records, v.state, v.def.Predicates)
}

// Result computes the filtered rows and picks the render branch. The empty
// branch is chosen if and only if no record passes the filters.
func (v View[T]) Result() Result[T] {
	filtered := v.Filtered()
	if len(filtered) > 0 {
		return Result[T]{
			Branch:  BranchTable,
			Reason:  ReasonNone,
			Records: filtered,
			Table:   Render(filtered, v.def.Columns),
		}
	}

	reason := ReasonNoMatches
	message := v.def.Empty.NoMatches
	if len(v.records) == 0 {
		reason = ReasonNoRecords
		message = v.def.Empty.NoRecords
	}
	if message == "" {
		message = v.def.Empty.NoRecords
	}

	return Result[T]{
		Branch:  BranchEmpty,
		Reason:  reason,
		Records: filtered,
		Message: message,
	}
}
