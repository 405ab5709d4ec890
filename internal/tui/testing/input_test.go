package testing

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

type pingMsg int

func TestDrain(t *testing.T) {
	ping := func(n int) tea.Cmd {
		return func() tea.Msg { return pingMsg(n) }
	}

	tests := []struct {
		name string
		cmd  tea.Cmd
		want []tea.Msg
	}{
		{name: "nil command", cmd: nil, want: nil},
		{name: "single", cmd: ping(1), want: []tea.Msg{pingMsg(1)}},
		{name: "batch", cmd: tea.Batch(ping(1), nil, ping(2)), want: []tea.Msg{pingMsg(1), pingMsg(2)}},
		{name: "nil message", cmd: func() tea.Msg { return nil }, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Drain(tt.cmd))
		})
	}
}

func TestType(t *testing.T) {
	keys := Type("ana")
	assert.Len(t, keys, 3)
	assert.Equal(t, "n", keys[1].String())
}

func TestStripANSI(t *testing.T) {
	assert.Equal(t, "Meus Leads", StripANSI("\x1b[1;35mMeus Leads\x1b[0m"))
	assert.True(t, ContainsInOrder("Nome Status Data", "Nome", "Data"))
	assert.False(t, ContainsInOrder("Nome Status Data", "Data", "Nome"))
}
