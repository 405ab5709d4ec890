package report

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Veraticus/parceiro/internal/common"
	"github.com/Veraticus/parceiro/internal/fixtures"
	"github.com/Veraticus/parceiro/internal/listview"
	"github.com/Veraticus/parceiro/internal/views"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"google.golang.org/api/googleapi"
)

var generatedAt = time.Date(2025, time.July, 20, 9, 30, 0, 0, time.UTC)

func leadsReport(t *testing.T) Report {
	t.Helper()
	table := listview.Render(fixtures.Leads(), views.Leads().Columns)
	r, err := New(KindLeads, table, generatedAt)
	require.NoError(t, err)
	return r
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		in      string
		want    Kind
		wantErr bool
	}{
		{in: "leads", want: KindLeads},
		{in: "vendas", want: KindSales},
		{in: "comissoes", want: KindCommissions},
		{in: "materiais", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseKind(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, common.ErrUnknownReport)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestKindMatchesViewNames(t *testing.T) {
	assert.Equal(t, views.NameLeads, string(KindLeads))
	assert.Equal(t, views.NameSales, string(KindSales))
	assert.Equal(t, views.NameCommissions, string(KindCommissions))
}

func TestKind_Title(t *testing.T) {
	assert.Equal(t, "Relatório de Leads", KindLeads.Title())
	assert.Equal(t, "Extrato de Comissões", KindCommissions.Title())
}

func TestReport_Values(t *testing.T) {
	r := leadsReport(t)
	values := r.Values()

	require.Len(t, values, 6)
	assert.Equal(t, "Nome do Lead", values[0][0])
	assert.Equal(t, "João da Silva", values[1][0])
	assert.Equal(t, "15/07/2025", values[1][2])
}

func TestFileName(t *testing.T) {
	r := leadsReport(t)
	assert.Equal(t, "leads-20250720-093000-12345678.xlsx", FileName(r, "12345678-aaaa-bbbb"))
	assert.Equal(t, "leads-20250720-093000-abc.xlsx", FileName(r, "abc"))
}

func TestSheetName(t *testing.T) {
	assert.Equal(t, "Sheet1", sheetName(""))
	assert.Equal(t, "Extrato de Comissões", sheetName("Extrato de Comissões"))
	assert.Len(t, []rune(sheetName(strings.Repeat("ã", 40))), maxSheetName)
}

func TestXLSXExporter_Export(t *testing.T) {
	dir := t.TempDir()

	var progress []int
	exporter := NewXLSXExporter(dir, WithProgress(func(done, total int) {
		assert.Equal(t, 5, total)
		progress = append(progress, done)
	}))

	res, err := exporter.Export(context.Background(), leadsReport(t))
	require.NoError(t, err)

	assert.Equal(t, 5, res.Rows)
	assert.NotEmpty(t, res.ID)
	assert.Equal(t, dir, filepath.Dir(res.Location))
	assert.Equal(t, []int{1, 2, 3, 4, 5}, progress)

	f, err := excelize.OpenFile(res.Location)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows("Relatório de Leads")
	require.NoError(t, err)
	require.Len(t, rows, 6)
	assert.Equal(t, "Status Atual", rows[0][3])
	assert.Equal(t, "Perdido", rows[5][3])

	props, err := f.GetDocProps()
	require.NoError(t, err)
	assert.Equal(t, res.ID, props.Identifier)
}

func TestXLSXExporter_TypedCells(t *testing.T) {
	table := listview.Render(fixtures.Commissions(), views.Commissions(nil).Columns)
	r, err := New(KindCommissions, table, generatedAt)
	require.NoError(t, err)

	res, err := NewXLSXExporter(t.TempDir()).Export(context.Background(), r)
	require.NoError(t, err)

	f, err := excelize.OpenFile(res.Location)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	sheet := sheetName(r.Title)
	raw := excelize.Options{RawCellValue: true}

	tests := []struct {
		cell string
		want string
	}{
		{cell: "E2", want: "50"},
		{cell: "E3", want: "200"},
		{cell: "E5", want: "300"},
	}
	for _, tt := range tests {
		t.Run(tt.cell, func(t *testing.T) {
			got, err := f.GetCellValue(sheet, tt.cell, raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	date, err := f.GetCellValue(sheet, "A2")
	require.NoError(t, err)
	assert.Equal(t, "15/07/2025", date)

	require.NoError(t, f.SetCellFormula(sheet, "E7", "SUM(E2:E6)"))
	sum, err := f.CalcCellValue(sheet, "E7", raw)
	require.NoError(t, err)
	assert.Equal(t, "615", sum)

	status, err := f.GetCellValue(sheet, "F6")
	require.NoError(t, err)
	assert.Equal(t, "Cancelado", status)
}

func TestXLSXExporter_EmptyTable(t *testing.T) {
	dir := t.TempDir()
	r, err := New(KindSales, listview.Render(nil, views.Sales(nil).Columns), generatedAt)
	require.NoError(t, err)

	res, err := NewXLSXExporter(dir).Export(context.Background(), r)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Rows)
}

func TestXLSXExporter_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewXLSXExporter(t.TempDir()).Export(ctx, leadsReport(t))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestSheetsConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*SheetsConfig)
		wantErr error
	}{
		{
			name:    "no auth",
			mutate:  func(*SheetsConfig) {},
			wantErr: common.ErrMissingConfig,
		},
		{
			name: "service account",
			mutate: func(c *SheetsConfig) {
				c.ServiceAccountPath = "/tmp/key.json"
			},
		},
		{
			name: "oauth",
			mutate: func(c *SheetsConfig) {
				c.ClientID, c.ClientSecret, c.RefreshToken = "id", "secret", "token"
			},
		},
		{
			name: "both",
			mutate: func(c *SheetsConfig) {
				c.ServiceAccountPath = "/tmp/key.json"
				c.ClientID, c.ClientSecret, c.RefreshToken = "id", "secret", "token"
			},
			wantErr: common.ErrInvalidConfig,
		},
		{
			name: "negative retries",
			mutate: func(c *SheetsConfig) {
				c.ServiceAccountPath = "/tmp/key.json"
				c.RetryAttempts = -1
			},
			wantErr: common.ErrInvalidConfig,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultSheetsConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestClassifyAPIError(t *testing.T) {
	assert.NoError(t, classifyAPIError(nil))

	rateLimited := classifyAPIError(fmt.Errorf("write: %w", &googleapi.Error{Code: http.StatusTooManyRequests}))
	assert.True(t, common.IsRetryable(rateLimited))

	serverErr := classifyAPIError(&googleapi.Error{Code: http.StatusServiceUnavailable})
	assert.True(t, common.IsRetryable(serverErr))

	forbidden := classifyAPIError(&googleapi.Error{Code: http.StatusForbidden})
	assert.False(t, common.IsRetryable(forbidden))

	plain := errors.New("boom")
	assert.Equal(t, plain, classifyAPIError(plain))
}
