package components

import (
	"github.com/Veraticus/parceiro/internal/format"
	"github.com/Veraticus/parceiro/internal/model"
	"github.com/Veraticus/parceiro/internal/tui/themes"
	"github.com/Veraticus/parceiro/internal/views"
	"github.com/charmbracelet/lipgloss"
)

// summaryHeight is the rendered height of a row of cards.
const summaryHeight = 4

// SummaryCard is one metric shown in a bordered card.
type SummaryCard struct {
	Title string
	Value string
}

// CommissionCards summarizes the whole ledger.
func CommissionCards(entries []model.CommissionEntry) []SummaryCard {
	totals := views.TotalCommissions(entries)
	return []SummaryCard{
		{Title: "Comissão a Receber", Value: format.Currency(totals.Receivable)},
		{Title: "Total Recebido (Histórico)", Value: format.Currency(totals.Received)},
	}
}

// renderCards lays cards out side by side, sharing width.
func renderCards(theme themes.Theme, cards []SummaryCard, width int) string {
	cardWidth := max(24, (width-8)/len(cards))
	rendered := make([]string, len(cards))
	for i, c := range cards {
		rendered[i] = theme.Card.Width(cardWidth).Render(lipgloss.JoinVertical(
			lipgloss.Left,
			lipgloss.NewStyle().Foreground(theme.Muted).Render(c.Title),
			lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(c.Value),
		))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}
