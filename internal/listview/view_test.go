package listview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestView_DefaultsShowEverything(t *testing.T) {
	v := NewView(testDefinition(day("2025-07-20")), testItems())

	res := v.Result()
	assert.Equal(t, BranchTable, res.Branch)
	assert.Equal(t, ReasonNone, res.Reason)
	assert.Equal(t, ids(testItems()), res.Table.IDs())
	assert.Equal(t, "", v.State().Query)
	assert.Equal(t, All, v.State().Selection(DimensionType))
}

func TestView_EmptyBranchIffNoRows(t *testing.T) {
	v := NewView(testDefinition(day("2025-07-20")), testItems())

	v.SetQuery("xyz-no-match")
	res := v.Result()
	assert.Equal(t, BranchEmpty, res.Branch)
	assert.Equal(t, ReasonNoMatches, res.Reason)
	assert.Equal(t, "no matches", res.Message)
	assert.Empty(t, res.Records)
	assert.Empty(t, res.Table.Rows)

	v.SetQuery("beta")
	res = v.Result()
	assert.Equal(t, BranchTable, res.Branch)
	assert.Equal(t, []int64{2}, res.Table.IDs())
}

func TestView_NoRecords(t *testing.T) {
	v := NewView(testDefinition(day("2025-07-20")), nil)
	res := v.Result()
	assert.Equal(t, BranchEmpty, res.Branch)
	assert.Equal(t, ReasonNoRecords, res.Reason)
	assert.Equal(t, "nothing yet", res.Message)
}

func TestView_NoMatchesFallsBackToNoRecordsCopy(t *testing.T) {
	def := testDefinition(day("2025-07-20"))
	def.Empty = EmptyState{NoRecords: "only message"}
	v := NewView(def, testItems())
	v.Select(DimensionType, "zzz")

	res := v.Result()
	assert.Equal(t, BranchEmpty, res.Branch)
	assert.Equal(t, ReasonNoMatches, res.Reason)
	assert.Equal(t, "only message", res.Message)
}

func TestView_ActivateResetsFilters(t *testing.T) {
	v := NewView(testDefinition(day("2025-07-20")), testItems())
	v.SetQuery("alpha")
	v.Select(DimensionType, "a")
	require.Len(t, v.Filtered(), 1)

	v.Activate(testItems())
	assert.Equal(t, "", v.State().Query)
	assert.Equal(t, All, v.State().Selection(DimensionType))
	assert.Len(t, v.Filtered(), len(testItems()))
}

func TestView_SetQueryIgnoredWhenNotSearchable(t *testing.T) {
	def := testDefinition(day("2025-07-20"))
	def.Searchable = false
	v := NewView(def, testItems())
	v.SetQuery("beta")
	assert.Equal(t, "", v.State().Query)
	assert.Len(t, v.Filtered(), len(testItems()))
}

func TestView_Cycle(t *testing.T) {
	v := NewView(testDefinition(day("2025-07-20")), testItems())

	assert.Equal(t, "a", v.Cycle(DimensionType, 1))
	assert.Equal(t, "b", v.Cycle(DimensionType, 1))
	assert.Equal(t, "c", v.Cycle(DimensionType, 1))
	assert.Equal(t, All, v.Cycle(DimensionType, 1))
	assert.Equal(t, "c", v.Cycle(DimensionType, -1))

	// unknown dimensions are untouched
	assert.Equal(t, All, v.Cycle(DimensionStatus, 1))

	// values outside the options restart at the first option
	v.Select(DimensionType, "zzz")
	assert.Equal(t, All, v.Cycle(DimensionType, 1))
}

func TestView_DefaultSelections(t *testing.T) {
	def := testDefinition(day("2025-07-20"))
	def.Dimensions[1].Default = string(PeriodCurrentMonth)
	v := NewView(def, testItems())

	assert.Equal(t, string(PeriodCurrentMonth), v.State().Selection(DimensionPeriod))
	assert.Equal(t, []int64{1, 2}, v.Result().Table.IDs())

	v.Select(DimensionPeriod, All)
	v.Reset()
	assert.Equal(t, string(PeriodCurrentMonth), v.State().Selection(DimensionPeriod))
}

func TestView_RecordsNotMutated(t *testing.T) {
	records := testItems()
	v := NewView(testDefinition(day("2025-07-20")), records)
	v.Select(DimensionType, "b")
	_ = v.Result()
	assert.Equal(t, ids(testItems()), ids(v.Records()))
}
