package components

import (
	"testing"

	"github.com/Veraticus/parceiro/internal/fixtures"
	"github.com/Veraticus/parceiro/internal/notify"
	tuitest "github.com/Veraticus/parceiro/internal/tui/testing"
	"github.com/Veraticus/parceiro/internal/tui/themes"
	"github.com/Veraticus/parceiro/internal/views"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardModel(t *testing.T) {
	m := NewDashboardModel(themes.Default, "https://seuagente.ai/parceria?ref=GS123456")
	m.Resize(120, 40)
	m.SetData(views.Summarize(fixtures.Leads(), fixtures.Sales(), fixtures.Commissions()), fixtures.Activities())

	view := m.View()
	assert.Contains(t, view, "Leads Qualificados no Mês")
	assert.Contains(t, view, "R$ 250,00")
	assert.Contains(t, view, "ref=GS123456")
	assert.Contains(t, view, "Barbearia Cortes & Estilos")
	assert.Contains(t, view, "15/07/2025")

	tests := []struct {
		want tea.Msg
		key  string
	}{
		{key: "c", want: CopyLinkRequestMsg{}},
		{key: "o", want: OpenLinkRequestMsg{}},
	}
	for _, tt := range tests {
		_, cmd := m.Update(tuitest.KeyPress(tt.key))
		require.NotNil(t, cmd, tt.key)
		assert.Equal(t, tt.want, cmd())
	}

	_, cmd := m.Update(tuitest.KeyPress("x"))
	assert.Nil(t, cmd)
}

func TestDashboardModel_Compact(t *testing.T) {
	m := NewDashboardModel(themes.Default, "link")
	m.Resize(60, 30)
	m.SetData(views.Summary{QualifiedLeads: 3}, nil)

	view := m.View()
	assert.Contains(t, view, "Leads Qualificados no Mês: ")
	assert.Contains(t, view, "Nenhuma atividade recente.")
}

func TestMaterialsModel(t *testing.T) {
	m := NewMaterialsModel(themes.Default)
	m.SetMaterials(fixtures.Materials())

	view := m.View()
	assert.Contains(t, view, "Materiais de Apoio")
	assert.Contains(t, view, "Vídeo Demonstrativo")
	assert.Contains(t, view, "[v] Ver")

	for range 3 {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	}
	sel, ok := m.Selected()
	require.True(t, ok)
	assert.Equal(t, int64(4), sel.ID)

	_, cmd := m.Update(tuitest.KeyPress("v"))
	require.NotNil(t, cmd)
	assert.Equal(t, PreviewRequestMsg{Material: sel}, cmd())

	_, cmd = m.Update(tuitest.KeyPress("d"))
	require.NotNil(t, cmd)
	assert.Equal(t, DownloadRequestMsg{Material: sel}, cmd())

	for range 10 {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	}
	sel, _ = m.Selected()
	assert.Equal(t, int64(6), sel.ID)
}

func TestMaterialsModel_Empty(t *testing.T) {
	m := NewMaterialsModel(themes.Default)
	assert.Contains(t, m.View(), MaterialsEmptyMessage)

	m, cmd := m.Update(tuitest.KeyPress("d"))
	assert.Nil(t, cmd)
	_, ok := m.Selected()
	assert.False(t, ok)
}

func TestToastModel(t *testing.T) {
	m := NewToastModel(themes.Default)
	assert.Empty(t, m.View())

	first := m.Show(notify.Notification{Title: "Link copiado!"})
	require.NotNil(t, first)
	cmd := m.Show(notify.Notification{
		Title:       "Erro ao copiar",
		Description: "Não foi possível copiar o link.",
		Severity:    notify.SeverityDestructive,
	})
	require.NotNil(t, cmd)

	n, visible := m.Current()
	require.True(t, visible)
	assert.Equal(t, "Erro ao copiar", n.Title)
	assert.Contains(t, m.View(), "Não foi possível copiar o link.")

	m, _ = m.Update(ToastExpiredMsg{ID: 1})
	_, visible = m.Current()
	assert.True(t, visible, "expiry of a replaced toast must be ignored")

	m, _ = m.Update(ToastExpiredMsg{ID: 2})
	_, visible = m.Current()
	assert.False(t, visible)
	assert.Empty(t, m.View())
}

func TestSidebarModel(t *testing.T) {
	m := NewSidebarModel(themes.Default, []string{"Dashboard", "Meus Leads"})
	m.SetActive(1)
	assert.Equal(t, 1, m.Active())

	m.SetActive(7)
	assert.Equal(t, 1, m.Active())

	view := m.View()
	assert.Contains(t, view, "1 Dashboard")
	assert.Contains(t, view, "2 Meus Leads")
	assert.Contains(t, view, "Sair")
}
