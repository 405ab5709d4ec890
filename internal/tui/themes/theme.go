// Package themes holds the color palettes and lipgloss styles of the TUI.
package themes

import (
	"github.com/Veraticus/parceiro/internal/listview"
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the visual style for the TUI.
type Theme struct {
	Title       lipgloss.Style
	Subtitle    lipgloss.Style
	Normal      lipgloss.Style
	Bold        lipgloss.Style
	Italic      lipgloss.Style
	Code        lipgloss.Style
	Selected    lipgloss.Style
	Highlighted lipgloss.Style
	Box         lipgloss.Style
	BorderedBox lipgloss.Style
	RoundedBox  lipgloss.Style
	Card        lipgloss.Style
	Avatar      lipgloss.Style
	MenuItem    lipgloss.Style
	MenuActive  lipgloss.Style

	StatusSuccess lipgloss.Style
	StatusWarning lipgloss.Style
	StatusError   lipgloss.Style
	StatusInfo    lipgloss.Style
	StatusPending lipgloss.Style

	ToastDefault     lipgloss.Style
	ToastDestructive lipgloss.Style

	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Accent     lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Error      lipgloss.Color
	Info       lipgloss.Color
	Background lipgloss.Color
	Foreground lipgloss.Color
	Subtle     lipgloss.Color
	Border     lipgloss.Color
	Muted      lipgloss.Color
	Surface    lipgloss.Color
}

type palette struct {
	primary, secondary, accent         lipgloss.Color
	success, warning, danger, info     lipgloss.Color
	background, foreground, subtle     lipgloss.Color
	border, muted, surface, onSelected lipgloss.Color
}

func newTheme(p palette) Theme {
	badge := func(c lipgloss.Color) lipgloss.Style {
		return lipgloss.NewStyle().Foreground(c).Bold(true)
	}
	toast := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(0, 1).
		Width(42)

	return Theme{
		Primary:    p.primary,
		Secondary:  p.secondary,
		Accent:     p.accent,
		Success:    p.success,
		Warning:    p.warning,
		Error:      p.danger,
		Info:       p.info,
		Background: p.background,
		Foreground: p.foreground,
		Subtle:     p.subtle,
		Border:     p.border,
		Muted:      p.muted,
		Surface:    p.surface,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(p.foreground).
			MarginBottom(1),
		Subtitle: lipgloss.NewStyle().
			Foreground(p.subtle).
			MarginBottom(1),
		Normal: lipgloss.NewStyle().Foreground(p.foreground),
		Bold:   lipgloss.NewStyle().Bold(true).Foreground(p.foreground),
		Italic: lipgloss.NewStyle().Italic(true).Foreground(p.foreground),
		Code: lipgloss.NewStyle().
			Background(p.surface).
			Foreground(p.foreground).
			Padding(0, 1),
		Selected: lipgloss.NewStyle().
			Background(p.primary).
			Foreground(p.onSelected).
			Bold(true),
		Highlighted: lipgloss.NewStyle().
			Background(p.border).
			Foreground(p.foreground),

		Box: lipgloss.NewStyle().Padding(1, 2),
		BorderedBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(p.border).
			Padding(1, 2),
		RoundedBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.border).
			Padding(1, 2),
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.border).
			Padding(0, 1),
		Avatar: lipgloss.NewStyle().
			Background(p.primary).
			Foreground(p.onSelected).
			Bold(true).
			Padding(0, 1),
		MenuItem: lipgloss.NewStyle().
			Foreground(p.subtle).
			PaddingLeft(1),
		MenuActive: lipgloss.NewStyle().
			Foreground(p.primary).
			Bold(true).
			Border(lipgloss.ThickBorder(), false, false, false, true).
			BorderForeground(p.primary),

		StatusSuccess: badge(p.success),
		StatusWarning: badge(p.warning),
		StatusError:   badge(p.danger),
		StatusInfo:    badge(p.info),
		StatusPending: lipgloss.NewStyle().Foreground(p.muted).Italic(true),

		ToastDefault:     toast.BorderForeground(p.success),
		ToastDestructive: toast.BorderForeground(p.danger).Foreground(p.danger),
	}
}

// Badge returns the style of a status badge of the given category.
func (t Theme) Badge(c listview.Category) lipgloss.Style {
	switch c {
	case listview.CategoryInfo:
		return t.StatusInfo
	case listview.CategoryAccent:
		return lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	case listview.CategoryWarning:
		return t.StatusWarning
	case listview.CategoryPositive:
		return t.StatusSuccess
	case listview.CategoryNegative:
		return t.StatusError
	default:
		return lipgloss.NewStyle().Foreground(t.Muted)
	}
}

// Default is the default theme.
var Default = newTheme(palette{
	primary:    lipgloss.Color("#7c3aed"),
	secondary:  lipgloss.Color("#a78bfa"),
	accent:     lipgloss.Color("#a855f7"),
	success:    lipgloss.Color("#10b981"),
	warning:    lipgloss.Color("#f59e0b"),
	danger:     lipgloss.Color("#ef4444"),
	info:       lipgloss.Color("#3b82f6"),
	background: lipgloss.Color("#1a1a1a"),
	foreground: lipgloss.Color("#fafafa"),
	subtle:     lipgloss.Color("#a3a3a3"),
	border:     lipgloss.Color("#404040"),
	muted:      lipgloss.Color("#737373"),
	surface:    lipgloss.Color("#262626"),
	onSelected: lipgloss.Color("#fafafa"),
})

// CatppuccinMocha is the Catppuccin Mocha theme.
var CatppuccinMocha = newTheme(palette{
	primary:    lipgloss.Color("#cba6f7"),
	secondary:  lipgloss.Color("#f5c2e7"),
	accent:     lipgloss.Color("#b4befe"),
	success:    lipgloss.Color("#a6e3a1"),
	warning:    lipgloss.Color("#f9e2af"),
	danger:     lipgloss.Color("#f38ba8"),
	info:       lipgloss.Color("#89dceb"),
	background: lipgloss.Color("#1e1e2e"),
	foreground: lipgloss.Color("#cdd6f4"),
	subtle:     lipgloss.Color("#a6adc8"),
	border:     lipgloss.Color("#45475a"),
	muted:      lipgloss.Color("#6c7086"),
	surface:    lipgloss.Color("#313244"),
	onSelected: lipgloss.Color("#1e1e2e"),
})

// Names lists the selectable theme names.
var Names = []string{"default", "catppuccin-mocha"}

// GetTheme returns a theme by name.
func GetTheme(name string) Theme {
	switch name {
	case "catppuccin-mocha":
		return CatppuccinMocha
	default:
		return Default
	}
}
