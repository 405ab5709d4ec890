package components

import (
	"fmt"

	"github.com/Veraticus/parceiro/internal/tui/themes"
	"github.com/charmbracelet/lipgloss"
)

// SidebarModel is the navigation menu.
type SidebarModel struct {
	theme  themes.Theme
	items  []string
	active int
	height int
}

// NewSidebarModel creates a menu with the given entries.
func NewSidebarModel(theme themes.Theme, items []string) SidebarModel {
	return SidebarModel{theme: theme, items: items}
}

// SetActive highlights an entry. Out of range values are ignored.
func (m *SidebarModel) SetActive(i int) {
	if i >= 0 && i < len(m.items) {
		m.active = i
	}
}

// Active returns the highlighted entry.
func (m SidebarModel) Active() int {
	return m.active
}

// View renders the menu. Entries are numbered for quick access.
func (m SidebarModel) View() string {
	lines := make([]string, 0, len(m.items))
	for i, item := range m.items {
		label := fmt.Sprintf("%d %s", i+1, item)
		if i == m.active {
			lines = append(lines, m.theme.MenuActive.Render(label))
			continue
		}
		lines = append(lines, m.theme.MenuItem.Render(label))
	}

	lines = append(lines, "", m.theme.MenuItem.Foreground(m.theme.Error).Render("q Sair"))

	return lipgloss.NewStyle().
		Width(m.Width()).
		Height(max(m.height, len(lines))).
		Border(lipgloss.NormalBorder(), false, true, false, false).
		BorderForeground(m.theme.Border).
		Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// Width is the fixed width of the menu.
func (m SidebarModel) Width() int {
	return 24
}

// Resize updates the component height.
func (m *SidebarModel) Resize(height int) {
	m.height = height
}
