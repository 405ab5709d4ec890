package notify

import "log/slog"

// Channel hands notifications to a single consumer, usually the TUI event
// loop. When the buffer is full new notifications are dropped.
type Channel struct {
	ch chan Notification
}

// NewChannel creates a channel notifier with the given buffer size.
func NewChannel(size int) *Channel {
	if size <= 0 {
		size = 16
	}
	return &Channel{ch: make(chan Notification, size)}
}

// Notify implements Notifier.
func (c *Channel) Notify(n Notification) {
	select {
	case c.ch <- n:
	default:
		slog.Debug("notification dropped", "title", n.Title)
	}
}

// C returns the receive side.
func (c *Channel) C() <-chan Notification {
	return c.ch
}
