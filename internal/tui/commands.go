package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/Veraticus/parceiro/internal/common"
	"github.com/Veraticus/parceiro/internal/notify"
	"github.com/Veraticus/parceiro/internal/service"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	loadTimeout   = 30 * time.Second
	actionTimeout = 2 * time.Minute
)

// loadSnapshot loads every page's records from the store.
func (m Model) loadSnapshot() tea.Cmd {
	store := m.store
	return func() tea.Msg {
		if store == nil {
			return snapshotLoadedMsg{err: fmt.Errorf("record store not configured")}
		}

		ctx, cancel := context.WithTimeout(context.Background(), loadTimeout)
		defer cancel()

		snap, err := service.LoadSnapshot(ctx, store)
		if err != nil {
			common.LogError(err, "failed to load records", nil)
			return snapshotLoadedMsg{err: err}
		}
		return snapshotLoadedMsg{snapshot: snap}
	}
}

// waitForNotification delivers the next notification raised by an action.
// It is re-armed after every delivery.
func waitForNotification(ch *notify.Channel) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		n, ok := <-ch.C()
		if !ok {
			return nil
		}
		return notificationMsg{notification: n}
	}
}

// runAction runs a side effect off the event loop.
func runAction(action string, fn func(ctx context.Context) (string, error)) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), actionTimeout)
		defer cancel()

		detail, err := fn(ctx)
		if err != nil {
			common.LogDebug("action failed", common.Fields{"action": action, "error": err.Error()})
		}
		return actionDoneMsg{action: action, detail: detail, err: err}
	}
}

func switchPage(p Page) tea.Cmd {
	return func() tea.Msg {
		return switchPageMsg{page: p}
	}
}
