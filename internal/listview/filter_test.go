package listview

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestState_SelectionDefaultsToAll(t *testing.T) {
	var s State
	assert.Equal(t, All, s.Selection(DimensionStatus))
	assert.Equal(t, "", s.Query)
}

func TestState_CopiesDoNotAlias(t *testing.T) {
	base := NewState("", map[Dimension]string{DimensionType: "a"})
	changed := base.WithSelection(DimensionType, "b")
	queried := base.WithQuery("x")

	assert.Equal(t, "a", base.Selection(DimensionType))
	assert.Equal(t, "b", changed.Selection(DimensionType))
	assert.Equal(t, "a", queried.Selection(DimensionType))
	assert.Equal(t, "", base.Query)
	assert.Equal(t, "x", queried.Query)
}

func TestTextPredicate(t *testing.T) {
	p := TextPredicate(
		func(i item) string { return i.name },
		func(i item) string { return i.group },
	)

	tests := []struct {
		name  string
		query string
		item  item
		want  bool
	}{
		{name: "empty query matches", query: "", item: item{name: "x"}, want: true},
		{name: "case insensitive", query: "ALPHA", item: item{name: "Alpha Ltda"}, want: true},
		{name: "substring", query: "pha l", item: item{name: "Alpha Ltda"}, want: true},
		{name: "second field", query: "grp", item: item{name: "x", group: "my-grp"}, want: true},
		{name: "accented lower case", query: "joão", item: item{name: "João da Silva"}, want: true},
		{name: "accented upper case", query: "JOÃO", item: item{name: "João da Silva"}, want: true},
		{name: "no match", query: "zzz", item: item{name: "Alpha", group: "a"}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p(tt.item, State{Query: tt.query}))
		})
	}
}

func TestCategoryPredicate(t *testing.T) {
	p := CategoryPredicate(DimensionType, groups, func(i item) string { return i.group })

	tests := []struct {
		name      string
		selection string
		group     string
		want      bool
	}{
		{name: "sentinel matches everything", selection: All, group: "a", want: true},
		{name: "sentinel matches unknown values", selection: All, group: "zzz", want: true},
		{name: "exact match", selection: "b", group: "b", want: true},
		{name: "different value", selection: "b", group: "a", want: false},
		{name: "malformed selection matches nothing", selection: "z", group: "z", want: false},
		{name: "case sensitive", selection: "A", group: "A", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := State{}.WithSelection(DimensionType, tt.selection)
			assert.Equal(t, tt.want, p(item{group: tt.group}, state))
		})
	}
}

func TestPeriodPredicate(t *testing.T) {
	now := time.Date(2025, time.July, 20, 15, 30, 0, 0, time.UTC)
	p := PeriodPredicate(DimensionPeriod, func() time.Time { return now }, func(i item) time.Time { return i.date })

	tests := []struct {
		name      string
		selection string
		date      string
		want      bool
	}{
		{name: "all", selection: All, date: "1999-01-01", want: true},
		{name: "current month", selection: string(PeriodCurrentMonth), date: "2025-07-01", want: true},
		{name: "current month excludes june", selection: string(PeriodCurrentMonth), date: "2025-06-30", want: false},
		{name: "previous month", selection: string(PeriodPreviousMonth), date: "2025-06-28", want: true},
		{name: "previous month excludes july", selection: string(PeriodPreviousMonth), date: "2025-07-01", want: false},
		{name: "last 30 days includes today", selection: string(PeriodLast30Days), date: "2025-07-20", want: true},
		{name: "last 30 days boundary", selection: string(PeriodLast30Days), date: "2025-06-21", want: true},
		{name: "last 30 days excludes older", selection: string(PeriodLast30Days), date: "2025-06-20", want: false},
		{name: "last 30 days excludes future", selection: string(PeriodLast30Days), date: "2025-07-21", want: false},
		{name: "last 3 months", selection: string(PeriodLast3Months), date: "2025-04-20", want: true},
		{name: "last 6 months", selection: string(PeriodLast6Months), date: "2025-01-19", want: false},
		{name: "current year", selection: string(PeriodCurrentYear), date: "2025-01-01", want: true},
		{name: "current year excludes last year", selection: string(PeriodCurrentYear), date: "2024-12-31", want: false},
		{name: "unknown period matches nothing", selection: "Semana passada", date: "2025-07-20", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := State{}.WithSelection(DimensionPeriod, tt.selection)
			assert.Equal(t, tt.want, p(item{date: day(tt.date)}, state))
		})
	}
}

func TestApply_StableSubset(t *testing.T) {
	records := testItems()
	preds := testDefinition(time.Now()).Predicates

	states := []State{
		{},
		{Query: "a"},
		State{}.WithSelection(DimensionType, "a"),
		State{Query: "ALPHA"}.WithSelection(DimensionType, "c"),
		State{}.WithSelection(DimensionType, "nope"),
	}

	for _, s := range states {
		got := Apply(records, s, preds)
		// every result is in the source, in source order
		last := -1
		for _, r := range got {
			idx := -1
			for i, src := range records {
				if src.id == r.id {
					idx = i
				}
			}
			assert.Greater(t, idx, last)
			last = idx
		}
	}
}

func TestApply_DoesNotModifyInput(t *testing.T) {
	records := testItems()
	before := ids(records)
	_ = Apply(records, State{}.WithSelection(DimensionType, "b"), testDefinition(time.Now()).Predicates)
	assert.Equal(t, before, ids(records))
}

func TestApply_Deterministic(t *testing.T) {
	records := testItems()
	preds := testDefinition(time.Now()).Predicates
	s := State{Query: "a"}.WithSelection(DimensionType, "a")

	first := Apply(records, s, preds)
	second := Apply(records, s, preds)
	assert.Equal(t, ids(first), ids(second))
}

func TestApply_EmptyQueryEqualsCategoryAlone(t *testing.T) {
	records := testItems()
	preds := testDefinition(time.Now()).Predicates

	for _, g := range append([]string{All}, groups...) {
		categoryOnly := Apply(records, State{}.WithSelection(DimensionType, g), preds)
		withEmptyQuery := Apply(records, State{Query: ""}.WithSelection(DimensionType, g), preds)
		assert.Equal(t, ids(categoryOnly), ids(withEmptyQuery), "group %s", g)
	}
}

func TestApply_AllSentinelsYieldFullStore(t *testing.T) {
	records := testItems()
	s := NewState("", map[Dimension]string{DimensionType: All, DimensionPeriod: All})
	got := Apply(records, s, testDefinition(time.Now()).Predicates)
	assert.Equal(t, ids(records), ids(got))
}

func TestApply_AndComposition(t *testing.T) {
	records := testItems()
	s := State{Query: "alpha"}.WithSelection(DimensionType, "a")
	got := Apply(records, s, testDefinition(time.Now()).Predicates)
	// "alphabet" matches the query but is in group c
	assert.Equal(t, []int64{1}, ids(got))
}

func TestApply_NoPredicates(t *testing.T) {
	records := testItems()
	got := Apply(records, State{Query: "zzz"}, nil)
	assert.Equal(t, ids(records), ids(got))
}
