package components

import (
	"slices"
	"strings"

	"github.com/Veraticus/parceiro/internal/model"
	"github.com/Veraticus/parceiro/internal/tui/themes"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ProfileField identifies a focusable row of the profile page.
type ProfileField int

// Profile fields in display order.
const (
	FieldPhone ProfileField = iota
	FieldAccountType
	FieldPixKey
	FieldBank
	FieldAgency
	FieldAccount
	FieldHolderName
	FieldHolderCPF
)

var fieldLabels = map[ProfileField]string{
	FieldPhone:       "Telefone",
	FieldAccountType: "Tipo de Conta",
	FieldPixKey:      "Chave PIX",
	FieldBank:        "Banco",
	FieldAgency:      "Agência",
	FieldAccount:     "Conta com Dígito",
	FieldHolderName:  "Nome Completo do Titular",
	FieldHolderCPF:   "CPF do Titular",
}

// ProfileModel is the profile and payment form. Edits live only in the
// form; saving hands them to the caller.
type ProfileModel struct {
	theme        themes.Theme
	inputs       map[ProfileField]*textinput.Model
	profile      model.Profile
	accountType  model.AccountType
	focus        ProfileField
	width        int
	height       int
	editingPhone bool
	inserting    bool
}

// NewProfileModel creates the profile page.
func NewProfileModel(theme themes.Theme) ProfileModel {
	placeholders := map[ProfileField]string{
		FieldPhone:      "(00) 00000-0000",
		FieldPixKey:     "Digite sua chave PIX",
		FieldBank:       "Nome do banco",
		FieldAgency:     "0000",
		FieldAccount:    "00000-0",
		FieldHolderName: "Nome completo conforme documento",
		FieldHolderCPF:  "000.000.000-00",
	}

	inputs := make(map[ProfileField]*textinput.Model, len(placeholders))
	for field, ph := range placeholders {
		ti := textinput.New()
		ti.Placeholder = ph
		ti.CharLimit = 120
		ti.Prompt = ""
		inputs[field] = &ti
	}

	return ProfileModel{
		theme:  theme,
		inputs: inputs,
		focus:  FieldAccountType,
		width:  80,
		height: 24,
	}
}

// SetProfile loads the stored profile into the form, discarding edits.
func (m *ProfileModel) SetProfile(p model.Profile) {
	m.profile = p
	m.accountType = p.Payment.AccountType
	m.editingPhone = false
	m.inserting = false
	m.focus = FieldAccountType

	values := map[ProfileField]string{
		FieldPhone:      p.Phone,
		FieldPixKey:     p.Payment.PixKey,
		FieldBank:       p.Payment.Bank,
		FieldAgency:     p.Payment.Agency,
		FieldAccount:    p.Payment.Account,
		FieldHolderName: p.Payment.HolderName,
		FieldHolderCPF:  p.Payment.HolderCPF,
	}
	for field, in := range m.inputs {
		in.SetValue(values[field])
		in.Blur()
	}
}

// Profile returns the personal data as edited.
func (m ProfileModel) Profile() model.Profile {
	p := m.profile
	p.Phone = strings.TrimSpace(m.inputs[FieldPhone].Value())
	p.Payment = m.Payment()
	return p
}

// Payment returns the payment data as edited. Fields hidden by the account
// type are left blank.
func (m ProfileModel) Payment() model.PaymentInfo {
	value := func(f ProfileField) string {
		return strings.TrimSpace(m.inputs[f].Value())
	}

	info := model.PaymentInfo{
		AccountType: m.accountType,
		HolderName:  value(FieldHolderName),
		HolderCPF:   value(FieldHolderCPF),
	}
	switch {
	case m.accountType.IsPix():
		info.PixKey = value(FieldPixKey)
	case m.accountType.IsBankAccount():
		info.Bank = value(FieldBank)
		info.Agency = value(FieldAgency)
		info.Account = value(FieldAccount)
	}
	return info
}

// Capturing reports whether keystrokes are going into a text field.
func (m ProfileModel) Capturing() bool {
	return m.inserting
}

// EditingPhone reports whether the personal data form is unlocked.
func (m ProfileModel) EditingPhone() bool {
	return m.editingPhone
}

// Focus returns the focused field.
func (m ProfileModel) Focus() ProfileField {
	return m.focus
}

// VisibleFields returns the focusable fields for the current state.
func (m ProfileModel) VisibleFields() []ProfileField {
	var fields []ProfileField
	if m.editingPhone {
		fields = append(fields, FieldPhone)
	}
	fields = append(fields, FieldAccountType)
	switch {
	case m.accountType.IsPix():
		fields = append(fields, FieldPixKey)
	case m.accountType.IsBankAccount():
		fields = append(fields, FieldBank, FieldAgency, FieldAccount)
	}
	return append(fields, FieldHolderName, FieldHolderCPF)
}

// Update handles messages.
func (m ProfileModel) Update(msg tea.Msg) (ProfileModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+s" {
			m.stopInserting()
			info := m.Payment()
			return m, func() tea.Msg { return SavePaymentRequestMsg{Payment: info} }
		}
		if m.inserting {
			return m, m.handleInsertMode(msg)
		}
		return m, m.handleNormalMode(msg)

	case tea.WindowSizeMsg:
		m.Resize(msg.Width, msg.Height)
	}

	return m, nil
}

func (m *ProfileModel) handleNormalMode(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "j", "down":
		m.moveFocus(1)
	case "k", "up":
		m.moveFocus(-1)

	case "e":
		if m.editingPhone {
			m.editingPhone = false
			m.moveFocus(0)
			p := m.Profile()
			return func() tea.Msg { return SaveProfileRequestMsg{Profile: p} }
		}
		m.editingPhone = true
		m.focus = FieldPhone
		return m.startInserting()

	case "h", "left":
		if m.focus == FieldAccountType {
			m.cycleAccountType(-1)
		}
	case "l", "right", " ":
		if m.focus == FieldAccountType {
			m.cycleAccountType(1)
		}

	case "enter", "i":
		if m.focus == FieldAccountType {
			m.cycleAccountType(1)
			return nil
		}
		return m.startInserting()
	}
	return nil
}

func (m *ProfileModel) handleInsertMode(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "esc", "enter":
		m.stopInserting()
		return nil
	case "tab":
		m.stopInserting()
		m.moveFocus(1)
		return m.startInserting()
	}

	in := m.inputs[m.focus]
	updated, cmd := in.Update(msg)
	*in = updated
	return cmd
}

func (m *ProfileModel) startInserting() tea.Cmd {
	in, ok := m.inputs[m.focus]
	if !ok {
		return nil
	}
	m.inserting = true
	return in.Focus()
}

func (m *ProfileModel) stopInserting() {
	m.inserting = false
	for _, in := range m.inputs {
		in.Blur()
	}
}

// moveFocus steps through the visible fields. A delta of zero only makes
// sure the focus is on a visible field.
func (m *ProfileModel) moveFocus(delta int) {
	fields := m.VisibleFields()
	idx := slices.Index(fields, m.focus)
	if idx < 0 {
		m.focus = FieldAccountType
		return
	}
	idx = max(0, min(idx+delta, len(fields)-1))
	m.focus = fields[idx]
}

func (m *ProfileModel) cycleAccountType(delta int) {
	types := model.AccountTypes
	idx := slices.Index(types, m.accountType)
	n := len(types)
	if idx < 0 {
		idx = 0
	} else {
		idx = ((idx+delta)%n + n) % n
	}
	m.accountType = types[idx]
}

// View renders the profile page.
func (m ProfileModel) View() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.theme.Title.Render("Meu Perfil"),
		m.theme.Subtitle.Render("Gerencie suas informações de cadastro"),
		m.renderPersonal(),
		m.renderPayment(),
		m.renderFooter(),
	)
}

func (m ProfileModel) renderPersonal() string {
	button := "[e] Editar Perfil"
	if m.editingPhone {
		button = "[e] Salvar Alterações"
	}

	return m.theme.Card.Width(max(30, m.width-6)).Render(lipgloss.JoinVertical(
		lipgloss.Left,
		m.theme.Bold.Render("Informações Pessoais"),
		m.renderReadOnly("Nome Completo", m.profile.FullName),
		m.renderReadOnly("E-mail", m.profile.Email),
		m.renderInput(FieldPhone, !m.editingPhone),
		lipgloss.NewStyle().Foreground(m.theme.Primary).Render(button),
	))
}

func (m ProfileModel) renderPayment() string {
	rows := []string{
		m.theme.Bold.Render("Informações de Pagamento (Comissão)"),
		lipgloss.NewStyle().Foreground(m.theme.Subtle).Render("Para receber suas comissões, por favor, preencha seus dados bancários ou chave PIX."),
	}

	accountType := string(m.accountType)
	if accountType == "" {
		accountType = "Selecione o tipo de conta"
	}
	rows = append(rows, m.renderRow(FieldAccountType, "‹ "+accountType+" ›"))

	for _, f := range m.VisibleFields() {
		if f == FieldPhone || f == FieldAccountType {
			continue
		}
		rows = append(rows, m.renderInput(f, false))
	}
	rows = append(rows, lipgloss.NewStyle().Foreground(m.theme.Primary).Render("[ctrl+s] Salvar Informações de Pagamento"))

	return m.theme.Card.Width(max(30, m.width-6)).Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

func (m ProfileModel) renderReadOnly(label, value string) string {
	return lipgloss.NewStyle().Foreground(m.theme.Muted).Render(label+": ") +
		lipgloss.NewStyle().Foreground(m.theme.Muted).Render(value)
}

func (m ProfileModel) renderInput(f ProfileField, disabled bool) string {
	in := m.inputs[f]
	if disabled {
		return m.renderReadOnly(fieldLabels[f], in.Value())
	}
	return m.renderRow(f, in.View())
}

func (m ProfileModel) renderRow(f ProfileField, value string) string {
	label := fieldLabels[f] + ": "
	if f == m.focus {
		return lipgloss.NewStyle().Foreground(m.theme.Primary).Bold(true).Render("› "+label) + value
	}
	return "  " + label + value
}

func (m ProfileModel) renderFooter() string {
	hints := "[↑↓] Campo  [Enter] Editar  [←→] Tipo de Conta"
	if m.inserting {
		hints = "[Enter/Esc] Concluir  [Tab] Próximo campo"
	}
	return lipgloss.NewStyle().Foreground(m.theme.Muted).Render(hints)
}

// Resize updates the component size.
func (m *ProfileModel) Resize(width, height int) {
	m.width = width
	m.height = height
}
