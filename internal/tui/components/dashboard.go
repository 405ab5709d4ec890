package components

import (
	"fmt"
	"strings"

	"github.com/Veraticus/parceiro/internal/format"
	"github.com/Veraticus/parceiro/internal/model"
	"github.com/Veraticus/parceiro/internal/tui/themes"
	"github.com/Veraticus/parceiro/internal/views"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// DashboardModel shows the metric cards, the referral link and recent
// activity.
type DashboardModel struct {
	theme      themes.Theme
	link       string
	activities []model.Activity
	summary    views.Summary
	width      int
	height     int
	compact    bool
}

// NewDashboardModel creates the dashboard page.
func NewDashboardModel(theme themes.Theme, link string) DashboardModel {
	return DashboardModel{
		theme:  theme,
		link:   link,
		width:  80,
		height: 24,
	}
}

// SetData replaces the metrics and the activity feed.
func (m *DashboardModel) SetData(summary views.Summary, activities []model.Activity) {
	m.summary = summary
	m.activities = activities
}

// Summary returns the metrics on screen.
func (m DashboardModel) Summary() views.Summary {
	return m.summary
}

// Update handles messages.
func (m DashboardModel) Update(msg tea.Msg) (DashboardModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "c":
			return m, func() tea.Msg { return CopyLinkRequestMsg{} }
		case "o":
			return m, func() tea.Msg { return OpenLinkRequestMsg{} }
		}

	case tea.WindowSizeMsg:
		m.Resize(msg.Width, msg.Height)
	}

	return m, nil
}

// View renders the dashboard.
func (m DashboardModel) View() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.theme.Title.Render("Dashboard do Gestor"),
		m.theme.Subtitle.Render("Visão geral da sua performance"),
		m.renderMetrics(),
		m.renderReferral(),
		m.renderActivity(),
	)
}

func (m DashboardModel) renderMetrics() string {
	cards := []SummaryCard{
		{Title: "Leads Qualificados no Mês", Value: fmt.Sprint(m.summary.QualifiedLeads)},
		{Title: "Vendas Fechadas no Mês", Value: fmt.Sprint(m.summary.ActiveSales)},
		{Title: "Comissão Estimada no Mês", Value: format.Currency(m.summary.PendingCommission)},
	}

	if m.compact {
		parts := make([]string, len(cards))
		for i, c := range cards {
			parts[i] = c.Title + ": " + m.theme.Bold.Render(c.Value)
		}
		return strings.Join(parts, "\n")
	}
	return renderCards(m.theme, cards, m.width)
}

func (m DashboardModel) renderReferral() string {
	hints := lipgloss.NewStyle().Foreground(m.theme.Muted).Render("[c] Copiar Link  [o] Testar Link")

	return m.theme.Card.Width(max(30, m.width-6)).Render(lipgloss.JoinVertical(
		lipgloss.Left,
		m.theme.Bold.Render("Meu Link de Indicação"),
		lipgloss.NewStyle().Foreground(m.theme.Subtle).Render("Compartilhe para Começar a Vender!"),
		"Use seu link exclusivo para direcionar clientes potenciais para nossa página de qualificação automatizada.",
		m.theme.Code.Render(m.link),
		hints,
	))
}

func (m DashboardModel) renderActivity() string {
	lines := []string{m.theme.Bold.Render("Atividade Recente")}
	for _, a := range m.activities {
		lines = append(lines, fmt.Sprintf("%s %s  %s  %s",
			m.activityIcon(a.Kind),
			lipgloss.NewStyle().Foreground(m.theme.Muted).Render(format.Date(a.Date)),
			m.theme.Bold.Render(a.Client),
			a.Event,
		))
	}
	if len(m.activities) == 0 {
		lines = append(lines, m.theme.Italic.Render("Nenhuma atividade recente."))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m DashboardModel) activityIcon(kind model.ActivityKind) string {
	switch kind {
	case model.ActivitySale:
		return m.theme.StatusSuccess.Render("$")
	case model.ActivityAppointment:
		return m.theme.StatusInfo.Render("◷")
	default:
		return m.theme.StatusWarning.Render("●")
	}
}

// Resize updates the component size.
func (m *DashboardModel) Resize(width, height int) {
	m.width = width
	m.height = height
	m.compact = width < 90
}
