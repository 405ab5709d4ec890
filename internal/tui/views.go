package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Veraticus/parceiro/internal/common"
	"github.com/Veraticus/parceiro/internal/model"
	"github.com/charmbracelet/lipgloss"
)

// renderLoading renders the loading screen.
func (m Model) renderLoading() string {
	content := lipgloss.JoinVertical(
		lipgloss.Center,
		m.theme.Title.Render("Parceiro"),
		lipgloss.NewStyle().Foreground(m.theme.Muted).Render("Carregando seus dados..."),
	)

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// renderLoadError is shown when the first load fails.
func (m Model) renderLoadError() string {
	message := common.UserMessage(m.lastError)
	if errors.Is(m.lastError, common.ErrNotFound) {
		message = "Nenhum dado encontrado. Execute 'parceiro seed' para carregar os dados de demonstração."
	}

	content := lipgloss.JoinVertical(
		lipgloss.Left,
		m.theme.StatusError.Render("Não foi possível carregar o painel"),
		"",
		m.theme.Normal.Render(message),
		"",
		lipgloss.NewStyle().Foreground(m.theme.Muted).Render("Ctrl+R tentar novamente  q sair"),
	)

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		m.theme.BorderedBox.Width(min(70, max(m.width-4, 30))).Render(content),
	)
}

// renderFullView renders the sidebar layout.
func (m Model) renderFullView() string {
	body := lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.sidebar.View(),
		" ",
		m.renderContent(),
	)

	return m.wrapWithBorder(lipgloss.JoinVertical(lipgloss.Left, m.renderHeader(), body))
}

// renderCompactView renders the layout for narrow terminals. The menu is
// reduced to the name of the current page.
func (m Model) renderCompactView() string {
	nav := lipgloss.NewStyle().Foreground(m.theme.Primary).Bold(true).
		Render(fmt.Sprintf("‹ %d/%d %s ›", int(m.page)+1, len(pageTitles), m.page))

	return m.wrapWithBorder(lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderHeader(),
		nav,
		m.renderContent(),
	))
}

// renderContent renders the active page, or the help screen.
func (m Model) renderContent() string {
	if m.showHelp {
		return m.renderHelp()
	}

	switch m.page {
	case PageLeads:
		return m.leads.View()
	case PageSales:
		return m.sales.View()
	case PageCommissions:
		return m.commissions.View()
	case PageMaterials:
		return m.materials.View()
	case PageProfile:
		return m.profile.View()
	default:
		return m.dashboard.View()
	}
}

// renderHeader renders the greeting and, when present, the toast.
func (m Model) renderHeader() string {
	name := m.partnerName
	if name == "" {
		name = "Parceiro"
	}

	brand := m.theme.Bold.Foreground(m.theme.Primary).Render("Parceiro")
	greeting := m.theme.Avatar.Render(model.Initials(name)) + " " + m.theme.Normal.Render("Olá, "+name)

	width := max(m.width-4, lipgloss.Width(brand)+lipgloss.Width(greeting)+1)
	gap := strings.Repeat(" ", max(1, width-lipgloss.Width(brand)-lipgloss.Width(greeting)))
	header := brand + gap + greeting

	if toast := m.toast.View(); toast != "" {
		return lipgloss.JoinVertical(
			lipgloss.Left,
			header,
			lipgloss.PlaceHorizontal(width, lipgloss.Right, toast),
		)
	}
	return lipgloss.JoinVertical(lipgloss.Left, header, "")
}

// renderHelp renders the key bindings.
func (m Model) renderHelp() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.theme.Title.Render("Atalhos"),
		m.help.View(m.keymap),
		"",
		lipgloss.NewStyle().Foreground(m.theme.Muted).Render("Pressione ? ou Esc para fechar"),
	)
}

// wrapWithBorder adds the status bar and a border around content.
func (m Model) wrapWithBorder(content string) string {
	full := lipgloss.JoinVertical(
		lipgloss.Left,
		content,
		m.renderStatusBar(),
	)

	return m.theme.BorderedBox.
		Padding(0, 1).
		Width(m.width).
		Height(m.height).
		MaxHeight(m.height).
		Render(full)
}

// renderStatusBar shows the last action result and the help hint.
func (m Model) renderStatusBar() string {
	left := m.theme.StatusInfo.Render(m.page.String())

	center := ""
	switch {
	case m.lastError != nil:
		center = m.theme.StatusError.Render(common.UserMessage(m.lastError))
	case m.status != "":
		center = m.theme.Normal.Render(m.status)
	}

	right := lipgloss.NewStyle().Foreground(m.theme.Muted).Render(m.help.ShortHelpView(m.keymap.ShortHelp()))

	totalWidth := max(m.width-4, 0)
	spacing := max(totalWidth-lipgloss.Width(left)-lipgloss.Width(center)-lipgloss.Width(right), 2)
	leftPad := spacing / 2

	return lipgloss.NewStyle().
		MaxWidth(totalWidth).
		Render(left + strings.Repeat(" ", leftPad) + center + strings.Repeat(" ", spacing-leftPad) + right)
}
