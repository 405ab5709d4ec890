package components

import (
	"testing"

	"github.com/Veraticus/parceiro/internal/actions"
	"github.com/Veraticus/parceiro/internal/fixtures"
	"github.com/Veraticus/parceiro/internal/model"
	tuitest "github.com/Veraticus/parceiro/internal/tui/testing"
	"github.com/Veraticus/parceiro/internal/tui/themes"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProfile() ProfileModel {
	m := NewProfileModel(themes.Default)
	m.SetProfile(fixtures.Profile())
	return m
}

func TestProfileModel_Loaded(t *testing.T) {
	m := newProfile()

	assert.Equal(t, fixtures.Profile(), m.Profile())
	assert.Equal(t, FieldAccountType, m.Focus())
	assert.False(t, m.Capturing())
	assert.False(t, m.EditingPhone())
	assert.Equal(t, []ProfileField{FieldAccountType, FieldPixKey, FieldHolderName, FieldHolderCPF}, m.VisibleFields())

	view := m.View()
	assert.Contains(t, view, "Meu Perfil")
	assert.Contains(t, view, "joao.silva@email.com")
	assert.Contains(t, view, "PIX - Chave E-mail")
	assert.Contains(t, view, "Editar Perfil")
}

func TestProfileModel_AccountTypeFields(t *testing.T) {
	tests := []struct {
		name string
		keys []string
		want model.AccountType
		show []ProfileField
	}{
		{
			name: "next is random key",
			keys: []string{"l"},
			want: model.AccountPixRandom,
			show: []ProfileField{FieldAccountType, FieldPixKey, FieldHolderName, FieldHolderCPF},
		},
		{
			name: "wraps to checking account",
			keys: []string{"l", "l"},
			want: model.AccountChecking,
			show: []ProfileField{FieldAccountType, FieldBank, FieldAgency, FieldAccount, FieldHolderName, FieldHolderCPF},
		},
		{
			name: "previous is CNPJ key",
			keys: []string{"h"},
			want: model.AccountPixCNPJ,
			show: []ProfileField{FieldAccountType, FieldPixKey, FieldHolderName, FieldHolderCPF},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newProfile()
			for _, k := range tt.keys {
				m, _ = m.Update(tuitest.KeyPress(k))
			}
			assert.Equal(t, tt.want, m.Payment().AccountType)
			assert.Equal(t, tt.show, m.VisibleFields())
		})
	}
}

func TestProfileModel_SwitchingToBankDropsPixKey(t *testing.T) {
	m := newProfile()
	m, _ = m.Update(tuitest.KeyPress("l"))
	m, _ = m.Update(tuitest.KeyPress("l"))

	info := m.Payment()
	assert.Equal(t, model.AccountChecking, info.AccountType)
	assert.Empty(t, info.PixKey)
	assert.Equal(t, []string{"Banco", "Agência", "Conta com Dígito"}, actions.MissingPaymentFields(info))
}

func TestProfileModel_EditField(t *testing.T) {
	m := newProfile()

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	require.Equal(t, FieldPixKey, m.Focus())

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, m.Capturing())

	// Typed keys go into the field, not to page shortcuts.
	m, _ = m.Update(tuitest.KeyPress("e"))
	assert.False(t, m.EditingPhone())
	assert.Equal(t, "joao.silva@email.come", m.Payment().PixKey)

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.Capturing())
}

func TestProfileModel_EditPhone(t *testing.T) {
	m := newProfile()

	m, _ = m.Update(tuitest.KeyPress("e"))
	require.True(t, m.EditingPhone())
	require.True(t, m.Capturing())
	assert.Equal(t, FieldPhone, m.Focus())
	assert.Contains(t, m.View(), "Salvar Alterações")

	m, _ = m.Update(tuitest.KeyPress("9"))
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})

	m, cmd := m.Update(tuitest.KeyPress("e"))
	require.NotNil(t, cmd)
	msg, ok := cmd().(SaveProfileRequestMsg)
	require.True(t, ok)
	assert.Equal(t, "(11) 98765-43219", msg.Profile.Phone)
	assert.False(t, m.EditingPhone())
	assert.Equal(t, FieldAccountType, m.Focus())
}

func TestProfileModel_SavePayment(t *testing.T) {
	m := newProfile()
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, m.Capturing())

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlS})
	assert.False(t, m.Capturing())
	require.NotNil(t, cmd)
	msg, ok := cmd().(SavePaymentRequestMsg)
	require.True(t, ok)
	assert.Equal(t, fixtures.Profile().Payment, msg.Payment)
}

func TestProfileModel_SetProfileDiscardsEdits(t *testing.T) {
	m := newProfile()
	m, _ = m.Update(tuitest.KeyPress("l"))
	m, _ = m.Update(tuitest.KeyPress("e"))
	m, _ = m.Update(tuitest.KeyPress("1"))

	m.SetProfile(fixtures.Profile())
	assert.Equal(t, fixtures.Profile(), m.Profile())
	assert.False(t, m.EditingPhone())
	assert.False(t, m.Capturing())
}

func TestProfileModel_FocusStaysInRange(t *testing.T) {
	m := newProfile()
	for range 10 {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	}
	assert.Equal(t, FieldHolderCPF, m.Focus())

	for range 10 {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	}
	assert.Equal(t, FieldAccountType, m.Focus())
}
