package listview

import "fmt"

// Formatter turns an accessor value into display text.
type Formatter func(value any) string

// FormatAs adapts a typed formatting function. Values of another type fall
// back to their default string form.
func FormatAs[V any](f func(V) string) Formatter {
	return func(value any) string {
		if v, ok := value.(V); ok {
			return f(v)
		}
		return fmt.Sprint(value)
	}
}

// Column describes one column of a rendered table.
type Column[T any] struct {
	// Value reads the raw field from a record.
	Value func(T) any
	// Format is optional; the default is fmt.Sprint.
	Format Formatter
	// Classify marks the column as a status badge.
	Classify Classifier
	Header   string
	// Weight is the relative width share used by terminal layouts.
	Weight float64
	// MinWidth is the smallest width the column may be given.
	MinWidth int
}

// Cell is a formatted table cell. Value keeps the accessor result so
// exports can write typed data.
type Cell struct {
	Value    any
	Text     string
	Category Category
	Badge    bool
}

// Row is one rendered record.
type Row struct {
	Cells []Cell
	ID    int64
}

// Table is the rendered output of a list view.
type Table struct {
	Headers []string
	Rows    []Row
}

// Strings returns the rows as plain text cells.
func (t Table) Strings() [][]string {
	out := make([][]string, 0, len(t.Rows))
	for _, row := range t.Rows {
		cells := make([]string, len(row.Cells))
		for i, c := range row.Cells {
			cells[i] = c.Text
		}
		out = append(out, cells)
	}
	return out
}

// IDs returns the row identifiers in order.
func (t Table) IDs() []int64 {
	ids := make([]int64, len(t.Rows))
	for i, row := range t.Rows {
		ids[i] = row.ID
	}
	return ids
}

// Render formats records into rows, one per record, in the given order.
func Render[T Record](records []T, columns []Column[T]) Table {
	headers := make([]string, len(columns))
	for i, col := range columns {
		headers[i] = col.Header
	}

	rows := make([]Row, 0, len(records))
	for _, r := range records {
		cells := make([]Cell, len(columns))
		for i, col := range columns {
			cells[i] = renderCell(r, col)
		}
		rows = append(rows, Row{ID: r.RecordID(), Cells: cells})
	}

	return Table{Headers: headers, Rows: rows}
}

func renderCell[T any](record T, col Column[T]) Cell {
	value := col.Value(record)

	text := ""
	if col.Format != nil {
		text = col.Format(value)
	} else {
		text = fmt.Sprint(value)
	}

	cell := Cell{Value: value, Text: text}
	if col.Classify != nil {
		cell.Badge = true
		cell.Category = col.Classify(fmt.Sprint(value))
	}
	return cell
}
