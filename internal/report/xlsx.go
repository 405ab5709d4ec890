package report

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/Veraticus/parceiro/internal/common"
	"github.com/Veraticus/parceiro/internal/listview"
	"github.com/Veraticus/parceiro/internal/model"
	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
)

// maxSheetName is the longest sheet name Excel accepts.
const maxSheetName = 31

// XLSXExporter writes reports as xlsx files into a directory.
type XLSXExporter struct {
	logger     *slog.Logger
	onProgress ProgressFunc
	dir        string
}

// XLSXOption configures an XLSXExporter.
type XLSXOption func(*XLSXExporter)

// WithProgress reports row progress while writing.
func WithProgress(fn ProgressFunc) XLSXOption {
	return func(e *XLSXExporter) {
		e.onProgress = fn
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) XLSXOption {
	return func(e *XLSXExporter) {
		e.logger = logger
	}
}

// NewXLSXExporter creates an exporter writing into dir.
func NewXLSXExporter(dir string, opts ...XLSXOption) *XLSXExporter {
	e := &XLSXExporter{
		dir:    dir,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Export implements Exporter.
func (e *XLSXExporter) Export(ctx context.Context, r Report) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	id := uuid.NewString()

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			e.logger.Warn("failed to close workbook", "error", err)
		}
	}()

	sheet := sheetName(r.Title)
	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return Result{}, fmt.Errorf("%w: %w", common.ErrExportFailed, err)
	}

	if err := f.SetDocProps(&excelize.DocProperties{
		Title:      r.Title,
		Creator:    "parceiro",
		Identifier: id,
		Created:    r.GeneratedAt.Format("2006-01-02T15:04:05Z07:00"),
	}); err != nil {
		e.logger.Warn("failed to set workbook properties", "error", err)
	}

	if err := e.writeRows(f, sheet, r); err != nil {
		return Result{}, fmt.Errorf("%w: %w", common.ErrExportFailed, err)
	}

	if err := os.MkdirAll(e.dir, 0o750); err != nil {
		return Result{}, fmt.Errorf("%w: failed to create export directory: %w", common.ErrExportFailed, err)
	}

	path := filepath.Join(e.dir, FileName(r, id))
	if err := f.SaveAs(path); err != nil {
		return Result{}, fmt.Errorf("%w: %w", common.ErrExportFailed, err)
	}

	e.logger.Info("report exported",
		"kind", r.Kind,
		"rows", len(r.Table.Rows),
		"path", path)

	return Result{ID: id, Location: path, Rows: len(r.Table.Rows)}, nil
}

// Number formats for typed cells.
const (
	currencyFormat = `"R$" #,##0.00`
	dateFormat     = "dd/mm/yyyy"
)

// cellStyles holds the style ids of a workbook.
type cellStyles struct {
	header   int
	currency int
	date     int
}

func newCellStyles(f *excelize.File) (cellStyles, error) {
	var s cellStyles
	var err error
	if s.header, err = f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}}); err != nil {
		return s, err
	}
	currency := currencyFormat
	if s.currency, err = f.NewStyle(&excelize.Style{CustomNumFmt: &currency}); err != nil {
		return s, err
	}
	date := dateFormat
	if s.date, err = f.NewStyle(&excelize.Style{CustomNumFmt: &date}); err != nil {
		return s, err
	}
	return s, nil
}

func (e *XLSXExporter) writeRows(f *excelize.File, sheet string, r Report) error {
	styles, err := newCellStyles(f)
	if err != nil {
		return err
	}

	for colIdx, h := range r.Table.Headers {
		cell, err := excelize.CoordinatesToCellName(colIdx+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return err
		}
	}
	if len(r.Table.Headers) > 0 {
		last, err := excelize.CoordinatesToCellName(len(r.Table.Headers), 1)
		if err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, "A1", last, styles.header); err != nil {
			return err
		}
	}

	total := len(r.Table.Rows)
	for rowIdx, row := range r.Table.Rows {
		for colIdx, c := range row.Cells {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			if err != nil {
				return err
			}
			if err := writeCell(f, sheet, cell, c, styles); err != nil {
				return err
			}
		}

		if e.onProgress != nil {
			e.onProgress(rowIdx+1, total)
		}
	}

	return nil
}

// writeCell stores amounts and dates as numbers so the sheet can sum and
// sort them. Everything else is written as its display text.
func writeCell(f *excelize.File, sheet, cell string, c listview.Cell, styles cellStyles) error {
	switch v := c.Value.(type) {
	case model.Money:
		if err := f.SetCellFloat(sheet, cell, v.Reais(), 2, 64); err != nil {
			return err
		}
		return f.SetCellStyle(sheet, cell, cell, styles.currency)
	case time.Time:
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return err
		}
		return f.SetCellStyle(sheet, cell, cell, styles.date)
	default:
		return f.SetCellValue(sheet, cell, c.Text)
	}
}

// FileName returns the name of the file a report is saved under.
func FileName(r Report, id string) string {
	short := id
	if len(short) > 8 {
		short = short[:8]
	}
	return fmt.Sprintf("%s-%s-%s.xlsx", r.Kind, r.GeneratedAt.Format("20060102-150405"), short)
}

func sheetName(title string) string {
	runes := []rune(title)
	if len(runes) > maxSheetName {
		runes = runes[:maxSheetName]
	}
	if len(runes) == 0 {
		return "Sheet1"
	}
	return string(runes)
}
