package listview

import (
	"time"
)

type item struct {
	date   time.Time
	name   string
	group  string
	status string
	id     int64
}

func (i item) RecordID() int64 { return i.id }

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

var groups = []string{"a", "b", "c"}

func testItems() []item {
	return []item{
		{id: 1, name: "Alpha Ltda", group: "a", status: "ok", date: day("2025-07-15")},
		{id: 2, name: "Beta SA", group: "b", status: "late", date: day("2025-07-01")},
		{id: 3, name: "Gamma ME", group: "a", status: "ok", date: day("2025-06-28")},
		{id: 4, name: "alphabet", group: "c", status: "lost", date: day("2025-01-02")},
		{id: 5, name: "Delta", group: "b", status: "weird", date: day("2024-12-31")},
	}
}

func testDefinition(now time.Time) Definition[item] {
	return Definition[item]{
		Name:       "items",
		Searchable: true,
		Columns: []Column[item]{
			{Header: "Name", Value: func(i item) any { return i.name }},
			{Header: "Group", Value: func(i item) any { return i.group }},
			{
				Header: "Status",
				Value:  func(i item) any { return i.status },
				Classify: func(raw string) Category {
					switch raw {
					case "ok":
						return CategoryPositive
					case "late":
						return CategoryWarning
					case "lost":
						return CategoryNegative
					default:
						return CategoryNeutral
					}
				},
			},
		},
		Predicates: []Predicate[item]{
			TextPredicate(func(i item) string { return i.name }),
			CategoryPredicate(DimensionType, groups, func(i item) string { return i.group }),
			PeriodPredicate(DimensionPeriod, func() time.Time { return now }, func(i item) time.Time { return i.date }),
		},
		Dimensions: []DimensionSpec{
			{Dimension: DimensionType, Label: "Group", Default: All, Options: []string{All, "a", "b", "c"}},
			{Dimension: DimensionPeriod, Label: "Period", Default: All, Options: []string{All, string(PeriodCurrentMonth), string(PeriodCurrentYear)}},
		},
		Empty: EmptyState{NoRecords: "nothing yet", NoMatches: "no matches"},
	}
}

func ids(items []item) []int64 {
	out := make([]int64, len(items))
	for i, it := range items {
		out[i] = it.id
	}
	return out
}
