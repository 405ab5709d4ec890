package tui

import (
	"github.com/Veraticus/parceiro/internal/notify"
	"github.com/Veraticus/parceiro/internal/service"
)

// Data loading messages.
type snapshotLoadedMsg struct {
	err      error
	snapshot *service.Snapshot
}

// notificationMsg carries a notification raised by an action.
type notificationMsg struct {
	notification notify.Notification
}

// actionDoneMsg reports the end of a side effect. Failures have already
// been notified; the error is kept for the status bar.
type actionDoneMsg struct {
	err    error
	action string
	detail string
}

// Page switching.
type switchPageMsg struct {
	page Page
}
