package listview

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	def := testDefinition(day("2025-07-20"))
	records := testItems()

	table := Render(records, def.Columns)

	assert.Equal(t, []string{"Name", "Group", "Status"}, table.Headers)
	require.Len(t, table.Rows, len(records))
	assert.Equal(t, ids(records), table.IDs())

	first := table.Rows[0]
	assert.Equal(t, "Alpha Ltda", first.Cells[0].Text)
	assert.False(t, first.Cells[0].Badge)
	assert.True(t, first.Cells[2].Badge)
	assert.Equal(t, CategoryPositive, first.Cells[2].Category)
}

func TestRender_UnknownStatusIsNeutral(t *testing.T) {
	def := testDefinition(day("2025-07-20"))
	table := Render([]item{{id: 9, status: "nonsense"}, {id: 10, status: ""}}, def.Columns)

	for _, row := range table.Rows {
		assert.Equal(t, CategoryNeutral, row.Cells[2].Category)
		assert.True(t, row.Cells[2].Badge)
	}
	assert.Equal(t, "nonsense", table.Rows[0].Cells[2].Text)
}

func TestRender_Empty(t *testing.T) {
	def := testDefinition(day("2025-07-20"))
	table := Render(nil, def.Columns)
	assert.Len(t, table.Headers, 3)
	assert.Empty(t, table.Rows)
	assert.Empty(t, table.Strings())
}

func TestRender_Formatter(t *testing.T) {
	cols := []Column[item]{
		{
			Header: "Name",
			Value:  func(i item) any { return i.name },
			Format: FormatAs(strings.ToUpper),
		},
		{
			Header: "ID",
			Value:  func(i item) any { return i.id },
			// wrong type falls back to the default string form
			Format: FormatAs(strings.ToUpper),
		},
	}

	table := Render([]item{{id: 7, name: "abc"}}, cols)
	assert.Equal(t, [][]string{{"ABC", "7"}}, table.Strings())
}

func TestCategory_String(t *testing.T) {
	tests := []struct {
		c    Category
		want string
	}{
		{CategoryNeutral, "neutral"},
		{CategoryInfo, "info"},
		{CategoryAccent, "accent"},
		{CategoryWarning, "warning"},
		{CategoryPositive, "positive"},
		{CategoryNegative, "negative"},
		{Category(42), "Unknown(42)"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.c.String())
	}
}
