package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keyboard shortcuts.
type KeyMap struct {
	// Navigation
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	NextPage key.Binding
	PrevPage key.Binding
	GoToPage key.Binding

	// Lists
	Search      key.Binding
	CycleStatus key.Binding
	CycleType   key.Binding
	CyclePeriod key.Binding
	Reset       key.Binding
	Export      key.Binding

	// Page actions
	CopyLink    key.Binding
	OpenLink    key.Binding
	Download    key.Binding
	Preview     key.Binding
	EditProfile key.Binding
	SavePayment key.Binding

	// Application
	Refresh     key.Binding
	Help        key.Binding
	Quit        key.Binding
	ForceQuit   key.Binding
	ClearScreen key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", "subir"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", "descer"),
		),
		Left: key.NewBinding(
			key.WithKeys("h", "left"),
			key.WithHelp("←/h", "opção anterior"),
		),
		Right: key.NewBinding(
			key.WithKeys("l", "right"),
			key.WithHelp("→/l", "próxima opção"),
		),
		NextPage: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("Tab", "próxima página"),
		),
		PrevPage: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("Shift+Tab", "página anterior"),
		),
		GoToPage: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6"),
			key.WithHelp("1-6", "ir para página"),
		),

		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "buscar"),
		),
		CycleStatus: key.NewBinding(
			key.WithKeys("s", "S"),
			key.WithHelp("s/S", "filtrar status"),
		),
		CycleType: key.NewBinding(
			key.WithKeys("t", "T"),
			key.WithHelp("t/T", "filtrar tipo"),
		),
		CyclePeriod: key.NewBinding(
			key.WithKeys("p", "P"),
			key.WithHelp("p/P", "filtrar período"),
		),
		Reset: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "limpar filtros"),
		),
		Export: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "baixar relatório"),
		),

		CopyLink: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "copiar link"),
		),
		OpenLink: key.NewBinding(
			key.WithKeys("o"),
			key.WithHelp("o", "testar link"),
		),
		Download: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "baixar material"),
		),
		Preview: key.NewBinding(
			key.WithKeys("v"),
			key.WithHelp("v", "ver material"),
		),
		EditProfile: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "editar perfil"),
		),
		SavePayment: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("Ctrl+S", "salvar pagamento"),
		),

		Refresh: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("Ctrl+R", "recarregar"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "ajuda"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "sair"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("Ctrl+C", "forçar saída"),
		),
		ClearScreen: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("Ctrl+L", "limpar tela"),
		),
	}
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextPage, k.GoToPage, k.Help, k.Quit}
}

// FullHelp returns all key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right, k.NextPage, k.PrevPage, k.GoToPage},
		{k.Search, k.CycleStatus, k.CycleType, k.CyclePeriod, k.Reset, k.Export},
		{k.CopyLink, k.OpenLink, k.Download, k.Preview, k.EditProfile, k.SavePayment},
		{k.Refresh, k.Help, k.Quit, k.ForceQuit, k.ClearScreen},
	}
}
