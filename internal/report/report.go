// Package report exports the rows currently shown by a list page to a
// spreadsheet, either a local xlsx file or Google Sheets.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/Veraticus/parceiro/internal/common"
	"github.com/Veraticus/parceiro/internal/listview"
)

// Kind identifies which page a report was generated from.
type Kind string

// Report kinds. Values match the list view names.
const (
	KindLeads       Kind = "leads"
	KindSales       Kind = "vendas"
	KindCommissions Kind = "comissoes"
)

// Title returns the human readable report title.
func (k Kind) Title() string {
	switch k {
	case KindLeads:
		return "Relatório de Leads"
	case KindSales:
		return "Relatório de Vendas"
	case KindCommissions:
		return "Extrato de Comissões"
	default:
		return string(k)
	}
}

// ParseKind validates a report kind.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(s); k {
	case KindLeads, KindSales, KindCommissions:
		return k, nil
	default:
		return "", fmt.Errorf("%w: %q", common.ErrUnknownReport, s)
	}
}

// Report is a snapshot of a rendered table ready to be written out.
type Report struct {
	GeneratedAt time.Time
	Kind        Kind
	Title       string
	Table       listview.Table
}

// New builds a report of the given kind from a rendered table.
func New(kind Kind, table listview.Table, at time.Time) (Report, error) {
	if _, err := ParseKind(string(kind)); err != nil {
		return Report{}, err
	}
	return Report{
		Kind:        kind,
		Title:       kind.Title(),
		Table:       table,
		GeneratedAt: at,
	}, nil
}

// Values returns the header row followed by every data row.
func (r Report) Values() [][]any {
	values := make([][]any, 0, len(r.Table.Rows)+1)

	header := make([]any, len(r.Table.Headers))
	for i, h := range r.Table.Headers {
		header[i] = h
	}
	values = append(values, header)

	for _, row := range r.Table.Strings() {
		cells := make([]any, len(row))
		for i, c := range row {
			cells[i] = c
		}
		values = append(values, cells)
	}
	return values
}

// Result describes a finished export.
type Result struct {
	// ID uniquely identifies the export.
	ID string
	// Location is a file path or spreadsheet URL.
	Location string
	Rows     int
}

// ProgressFunc is called as rows are written.
type ProgressFunc func(done, total int)

// Exporter writes reports somewhere the partner can open them.
type Exporter interface {
	Export(ctx context.Context, r Report) (Result, error)
}
