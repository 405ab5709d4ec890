// Package actions runs the dashboard's side effects (clipboard, browser,
// export) and reports every outcome as a notification.
package actions

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/Veraticus/parceiro/internal/browser"
	"github.com/Veraticus/parceiro/internal/clipboard"
	"github.com/Veraticus/parceiro/internal/common"
	"github.com/Veraticus/parceiro/internal/listview"
	"github.com/Veraticus/parceiro/internal/model"
	"github.com/Veraticus/parceiro/internal/notify"
	"github.com/Veraticus/parceiro/internal/report"
)

// Notifications shown by the service.
var (
	LinkCopied = notify.Notification{
		Title:       "Link copiado!",
		Description: "O link foi copiado para a área de transferência.",
	}
	CopyFailed = notify.Notification{
		Title:       "Erro ao copiar",
		Description: "Não foi possível copiar o link.",
		Severity:    notify.SeverityDestructive,
	}
	ReportGenerated = notify.Notification{
		Title:       "Relatório gerado!",
		Description: "O arquivo será baixado em instantes.",
	}
	StatementGenerated = notify.Notification{
		Title:       "Extrato gerado!",
		Description: "O arquivo será baixado em instantes.",
	}
	ExportFailed = notify.Notification{
		Title:       "Erro ao gerar relatório",
		Description: "Não foi possível gerar o arquivo.",
		Severity:    notify.SeverityDestructive,
	}
	OpenFailed = notify.Notification{
		Title:       "Erro ao abrir link",
		Description: "Não foi possível abrir o navegador.",
		Severity:    notify.SeverityDestructive,
	}
	NoPreview = notify.Notification{
		Title:       "Preview não disponível",
		Description: "Este material não possui preview online.",
		Severity:    notify.SeverityDestructive,
	}
	ProfileSaved = notify.Notification{
		Title:       "Perfil atualizado!",
		Description: "Suas informações foram salvas com sucesso.",
	}
	PaymentSaved = notify.Notification{
		Title:       "Informações de pagamento salvas!",
		Description: "Seus dados foram atualizados com sucesso.",
	}
)

// Service performs side effects on behalf of the pages. None of its
// operations retry; each one notifies exactly once.
type Service struct {
	notifier  notify.Notifier
	clipboard clipboard.Clipboard
	navigator browser.Navigator
	exporter  report.Exporter
	now       func() time.Time
}

// Option configures a Service.
type Option func(*Service)

// WithClock overrides the time source used to stamp reports.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// New creates a Service.
func New(n notify.Notifier, cb clipboard.Clipboard, nav browser.Navigator, exp report.Exporter, opts ...Option) *Service {
	s := &Service{
		notifier:  n,
		clipboard: cb,
		navigator: nav,
		exporter:  exp,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// CopyReferralLink places the referral link on the clipboard.
func (s *Service) CopyReferralLink(ctx context.Context, link string) error {
	if err := s.clipboard.Write(ctx, link); err != nil {
		common.LogDebug("clipboard write failed", common.Fields{"error": err.Error()})
		s.notifier.Notify(CopyFailed)
		return err
	}
	s.notifier.Notify(LinkCopied)
	return nil
}

// OpenLink opens the referral link in the browser. Success is silent.
func (s *Service) OpenLink(link string) error {
	if err := s.navigator.Open(link); err != nil {
		common.LogDebug("open link failed", common.Fields{"url": link, "error": err.Error()})
		s.notifier.Notify(OpenFailed)
		return err
	}
	return nil
}

// ExportReport writes the rows currently shown by a list page.
func (s *Service) ExportReport(ctx context.Context, kind report.Kind, table listview.Table) (report.Result, error) {
	r, err := report.New(kind, table, s.now())
	if err != nil {
		s.notifier.Notify(ExportFailed)
		return report.Result{}, err
	}

	res, err := s.exporter.Export(ctx, r)
	if err != nil {
		common.LogError(err, "export failed", common.Fields{"kind": string(kind)})
		s.notifier.Notify(ExportFailed)
		return report.Result{}, err
	}

	if kind == report.KindCommissions {
		s.notifier.Notify(StatementGenerated)
	} else {
		s.notifier.Notify(ReportGenerated)
	}
	slog.Debug("report ready", "kind", kind, "location", res.Location)
	return res, nil
}

// DownloadMaterial starts the download of a support material. Materials
// without a download URL only acknowledge the request.
func (s *Service) DownloadMaterial(m model.Material) error {
	if m.DownloadURL != "" {
		if err := s.navigator.Open(m.DownloadURL); err != nil {
			s.notifier.Notify(OpenFailed)
			return err
		}
	}
	s.notifier.Notify(notify.Notification{
		Title:       "Download iniciado!",
		Description: fmt.Sprintf("Baixando %s...", m.Title),
	})
	return nil
}

// PreviewMaterial opens a material's online preview.
func (s *Service) PreviewMaterial(m model.Material) error {
	if !m.HasPreview() {
		s.notifier.Notify(NoPreview)
		return common.ErrNoPreview
	}
	if err := s.navigator.Open(m.PreviewURL); err != nil {
		s.notifier.Notify(OpenFailed)
		return err
	}
	return nil
}

// SaveProfile accepts edits to the partner's contact data. Nothing is
// persisted; the partner only gets the confirmation.
func (s *Service) SaveProfile(_ model.Profile) error {
	s.notifier.Notify(ProfileSaved)
	return nil
}

// SavePaymentInfo accepts where commissions should be paid. Blank fields
// never block the save; the profile command lists them instead.
func (s *Service) SavePaymentInfo(info model.PaymentInfo) error {
	if missing := MissingPaymentFields(info); len(missing) > 0 {
		slog.Debug("Payment info saved with blank fields", "missing", missing)
	}
	s.notifier.Notify(PaymentSaved)
	return nil
}

// MissingPaymentFields lists the labels of blank required fields for the
// selected account type.
func MissingPaymentFields(info model.PaymentInfo) []string {
	var missing []string
	blank := func(v string) bool { return strings.TrimSpace(v) == "" }

	switch {
	case info.AccountType.IsPix():
		if blank(info.PixKey) {
			missing = append(missing, "Chave PIX")
		}
	case info.AccountType.IsBankAccount():
		if blank(info.Bank) {
			missing = append(missing, "Banco")
		}
		if blank(info.Agency) {
			missing = append(missing, "Agência")
		}
		if blank(info.Account) {
			missing = append(missing, "Conta com Dígito")
		}
	default:
		missing = append(missing, "Tipo de Conta")
	}

	if blank(info.HolderName) {
		missing = append(missing, "Nome Completo do Titular")
	}
	if blank(info.HolderCPF) {
		missing = append(missing, "CPF do Titular")
	}
	return missing
}
