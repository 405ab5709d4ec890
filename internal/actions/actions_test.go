package actions

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/Veraticus/parceiro/internal/browser"
	"github.com/Veraticus/parceiro/internal/clipboard"
	"github.com/Veraticus/parceiro/internal/common"
	"github.com/Veraticus/parceiro/internal/fixtures"
	"github.com/Veraticus/parceiro/internal/listview"
	"github.com/Veraticus/parceiro/internal/model"
	"github.com/Veraticus/parceiro/internal/notify"
	"github.com/Veraticus/parceiro/internal/report"
	"github.com/Veraticus/parceiro/internal/views"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const link = "https://seuagente.ai/parceria?ref=GS123456"

type fakeExporter struct {
	err     error
	reports []report.Report
}

func (f *fakeExporter) Export(_ context.Context, r report.Report) (report.Result, error) {
	if f.err != nil {
		return report.Result{}, f.err
	}
	f.reports = append(f.reports, r)
	return report.Result{ID: "id", Location: "/tmp/x.xlsx", Rows: len(r.Table.Rows)}, nil
}

type harness struct {
	svc      *Service
	notes    *notify.Recorder
	clip     *clipboard.Memory
	nav      *browser.Recorder
	exporter *fakeExporter
}

func newHarness() harness {
	h := harness{
		notes:    &notify.Recorder{},
		clip:     &clipboard.Memory{},
		nav:      &browser.Recorder{},
		exporter: &fakeExporter{},
	}
	h.svc = New(h.notes, h.clip, h.nav, h.exporter, WithClock(func() time.Time {
		return time.Date(2025, time.July, 20, 0, 0, 0, 0, time.UTC)
	}))
	return h
}

func TestCopyReferralLink(t *testing.T) {
	h := newHarness()
	require.NoError(t, h.svc.CopyReferralLink(context.Background(), link))

	assert.Equal(t, link, h.clip.Text())
	assert.Equal(t, []notify.Notification{LinkCopied}, h.notes.All())
}

func TestCopyReferralLink_Failure(t *testing.T) {
	h := newHarness()
	h.clip.Err = common.ErrClipboardUnavailable

	err := h.svc.CopyReferralLink(context.Background(), link)
	assert.ErrorIs(t, err, common.ErrClipboardUnavailable)

	notes := h.notes.All()
	require.Len(t, notes, 1)
	assert.Equal(t, "Erro ao copiar", notes[0].Title)
	assert.Equal(t, notify.SeverityDestructive, notes[0].Severity)
}

func TestOpenLink(t *testing.T) {
	h := newHarness()
	require.NoError(t, h.svc.OpenLink(link))
	assert.Equal(t, []string{link}, h.nav.Opened())
	assert.Empty(t, h.notes.All())

	h.nav.Err = errors.New("no display")
	assert.Error(t, h.svc.OpenLink(link))
	last, _ := h.notes.Last()
	assert.Equal(t, OpenFailed, last)
}

func TestExportReport(t *testing.T) {
	tests := []struct {
		name string
		kind report.Kind
		want notify.Notification
	}{
		{"leads", report.KindLeads, ReportGenerated},
		{"sales", report.KindSales, ReportGenerated},
		{"commissions", report.KindCommissions, StatementGenerated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness()
			table := listview.Render(fixtures.Leads(), views.Leads().Columns)

			res, err := h.svc.ExportReport(context.Background(), tt.kind, table)
			require.NoError(t, err)
			assert.Equal(t, 5, res.Rows)
			require.Len(t, h.exporter.reports, 1)
			assert.Equal(t, tt.kind, h.exporter.reports[0].Kind)
			assert.Equal(t, 2025, h.exporter.reports[0].GeneratedAt.Year())
			assert.Equal(t, []notify.Notification{tt.want}, h.notes.All())
		})
	}
}

func TestExportReport_Failures(t *testing.T) {
	h := newHarness()
	_, err := h.svc.ExportReport(context.Background(), report.Kind("materiais"), listview.Table{})
	assert.ErrorIs(t, err, common.ErrUnknownReport)

	h.exporter.err = common.ErrExportFailed
	_, err = h.svc.ExportReport(context.Background(), report.KindLeads, listview.Table{})
	assert.ErrorIs(t, err, common.ErrExportFailed)

	assert.Equal(t, []notify.Notification{ExportFailed, ExportFailed}, h.notes.All())
}

func TestDownloadMaterial(t *testing.T) {
	h := newHarness()
	m := fixtures.Materials()[0]

	require.NoError(t, h.svc.DownloadMaterial(m))
	last, ok := h.notes.Last()
	require.True(t, ok)
	assert.Equal(t, "Download iniciado!", last.Title)
	assert.Equal(t, "Baixando Apresentação SeuAgente.ai...", last.Description)
	assert.Empty(t, h.nav.Opened())

	m.DownloadURL = "https://cdn.example.com/a.pdf"
	require.NoError(t, h.svc.DownloadMaterial(m))
	assert.Equal(t, []string{"https://cdn.example.com/a.pdf"}, h.nav.Opened())
}

func TestPreviewMaterial(t *testing.T) {
	h := newHarness()
	materials := fixtures.Materials()

	err := h.svc.PreviewMaterial(materials[0])
	assert.ErrorIs(t, err, common.ErrNoPreview)
	last, _ := h.notes.Last()
	assert.Equal(t, NoPreview, last)

	require.NoError(t, h.svc.PreviewMaterial(materials[3]))
	assert.Equal(t, []string{"https://example.com/video"}, h.nav.Opened())
	assert.Len(t, h.notes.All(), 1)
}

func TestSaveProfile(t *testing.T) {
	blank := fixtures.Profile()
	blank.Phone = "  "

	tests := []struct {
		name    string
		profile model.Profile
	}{
		{name: "complete", profile: fixtures.Profile()},
		{name: "blank phone", profile: blank},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness()
			require.NoError(t, h.svc.SaveProfile(tt.profile))
			assert.Equal(t, []notify.Notification{ProfileSaved}, h.notes.All())
		})
	}
}

func TestSavePaymentInfo(t *testing.T) {
	tests := []struct {
		name string
		info model.PaymentInfo
	}{
		{name: "complete", info: fixtures.Profile().Payment},
		{name: "blank pix key", info: model.PaymentInfo{AccountType: model.AccountPixEmail, HolderName: "x", HolderCPF: "y"}},
		{name: "blank bank fields", info: model.PaymentInfo{AccountType: model.AccountChecking, HolderName: "x", HolderCPF: "y"}},
		{name: "no account type", info: model.PaymentInfo{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness()
			require.NoError(t, h.svc.SavePaymentInfo(tt.info))
			assert.Equal(t, []notify.Notification{PaymentSaved}, h.notes.All())
		})
	}
}

func TestMissingPaymentFields(t *testing.T) {
	tests := []struct {
		name string
		info model.PaymentInfo
		want []string
	}{
		{
			name: "complete pix",
			info: fixtures.Profile().Payment,
		},
		{
			name: "pix without key",
			info: model.PaymentInfo{AccountType: model.AccountPixCPF, HolderName: "a", HolderCPF: "b"},
			want: []string{"Chave PIX"},
		},
		{
			name: "complete bank",
			info: model.PaymentInfo{AccountType: model.AccountSavings, Bank: "1", Agency: "2", Account: "3", HolderName: "a", HolderCPF: "b"},
		},
		{
			name: "no type",
			info: model.PaymentInfo{},
			want: []string{"Tipo de Conta", "Nome Completo do Titular", "CPF do Titular"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MissingPaymentFields(tt.info))
		})
	}
}
