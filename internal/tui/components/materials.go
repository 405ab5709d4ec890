package components

import (
	"github.com/Veraticus/parceiro/internal/model"
	"github.com/Veraticus/parceiro/internal/tui/themes"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// MaterialsEmptyMessage is shown when there is nothing to download.
const MaterialsEmptyMessage = "Nenhum material de apoio disponível no momento."

// MaterialsModel lists the support materials.
type MaterialsModel struct {
	theme     themes.Theme
	materials []model.Material
	cursor    int
	width     int
	height    int
}

// NewMaterialsModel creates the materials page.
func NewMaterialsModel(theme themes.Theme) MaterialsModel {
	return MaterialsModel{theme: theme, width: 80, height: 24}
}

// SetMaterials replaces the materials and moves the cursor to the top.
func (m *MaterialsModel) SetMaterials(materials []model.Material) {
	m.materials = materials
	m.cursor = 0
}

// Selected returns the material under the cursor.
func (m MaterialsModel) Selected() (model.Material, bool) {
	if m.cursor < 0 || m.cursor >= len(m.materials) {
		return model.Material{}, false
	}
	return m.materials[m.cursor], true
}

// Update handles messages.
func (m MaterialsModel) Update(msg tea.Msg) (MaterialsModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "j", "down":
			m.cursor = min(m.cursor+1, max(len(m.materials)-1, 0))
		case "k", "up":
			m.cursor = max(m.cursor-1, 0)
		case "d", "enter":
			if sel, ok := m.Selected(); ok {
				return m, func() tea.Msg { return DownloadRequestMsg{Material: sel} }
			}
		case "v":
			// Materials without a preview still ask, so the partner is told why.
			if sel, ok := m.Selected(); ok {
				return m, func() tea.Msg { return PreviewRequestMsg{Material: sel} }
			}
		}

	case tea.WindowSizeMsg:
		m.Resize(msg.Width, msg.Height)
	}

	return m, nil
}

// View renders the materials page.
func (m MaterialsModel) View() string {
	sections := []string{
		m.theme.Title.Render("Materiais de Apoio"),
		m.theme.Subtitle.Render("Recursos para impulsionar suas vendas"),
	}

	if len(m.materials) == 0 {
		sections = append(sections, m.theme.RoundedBox.Render(m.theme.Italic.Render(MaterialsEmptyMessage)))
		return lipgloss.JoinVertical(lipgloss.Left, sections...)
	}

	width := max(30, m.width-6)
	for i, mat := range m.materials {
		card := m.theme.Card.Width(width)
		if i == m.cursor {
			card = card.BorderForeground(m.theme.Primary)
		}

		actions := "[d] Baixar"
		if mat.HasPreview() {
			actions += "  [v] Ver"
		}

		sections = append(sections, card.Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.theme.Bold.Render(mat.Title)+"  "+lipgloss.NewStyle().Foreground(m.theme.Muted).Render(string(mat.Kind)),
			lipgloss.NewStyle().Foreground(m.theme.Subtle).Render(mat.Description),
			lipgloss.NewStyle().Foreground(m.theme.Primary).Render(actions),
		)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// Resize updates the component size.
func (m *MaterialsModel) Resize(width, height int) {
	m.width = width
	m.height = height
}
