package components

import (
	"time"

	"github.com/Veraticus/parceiro/internal/notify"
	"github.com/Veraticus/parceiro/internal/tui/themes"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ToastDuration is how long a notification stays on screen.
const ToastDuration = 4 * time.Second

// ToastExpiredMsg hides the toast it was scheduled for.
type ToastExpiredMsg struct {
	ID int
}

// ToastModel shows one notification at a time. A newer notification
// replaces the current one.
type ToastModel struct {
	theme   themes.Theme
	current notify.Notification
	seq     int
	visible bool
}

// NewToastModel creates a hidden toast.
func NewToastModel(theme themes.Theme) ToastModel {
	return ToastModel{theme: theme}
}

// Show displays a notification and schedules its dismissal.
func (m *ToastModel) Show(n notify.Notification) tea.Cmd {
	m.seq++
	m.current = n
	m.visible = true

	id := m.seq
	return tea.Tick(ToastDuration, func(time.Time) tea.Msg {
		return ToastExpiredMsg{ID: id}
	})
}

// Current returns the notification on screen.
func (m ToastModel) Current() (notify.Notification, bool) {
	return m.current, m.visible
}

// ID returns the sequence number of the latest notification.
func (m ToastModel) ID() int {
	return m.seq
}

// Update handles messages.
func (m ToastModel) Update(msg tea.Msg) (ToastModel, tea.Cmd) {
	// Timers of replaced notifications are ignored.
	if msg, ok := msg.(ToastExpiredMsg); ok && msg.ID == m.seq {
		m.visible = false
	}
	return m, nil
}

// View renders the toast, or nothing when hidden.
func (m ToastModel) View() string {
	if !m.visible {
		return ""
	}

	style := m.theme.ToastDefault
	if m.current.Severity == notify.SeverityDestructive {
		style = m.theme.ToastDestructive
	}

	body := lipgloss.JoinVertical(
		lipgloss.Left,
		lipgloss.NewStyle().Bold(true).Render(m.current.Title),
		m.current.Description,
	)
	return style.Render(body)
}
