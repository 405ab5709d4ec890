// Package notify delivers transient toast notifications to whatever surface
// is showing the dashboard.
package notify

import (
	"sync"
)

// Severity controls how a notification is styled.
type Severity int

// Notification severities.
const (
	SeverityDefault Severity = iota
	SeverityDestructive
)

// String returns a string representation of the severity.
func (s Severity) String() string {
	if s == SeverityDestructive {
		return "destructive"
	}
	return "default"
}

// Notification is a title plus a description.
type Notification struct {
	Title       string
	Description string
	Severity    Severity
}

// Notifier accepts notifications. Implementations must not block the caller
// for long and must be safe for concurrent use.
type Notifier interface {
	Notify(n Notification)
}

// Func adapts a function to the Notifier interface.
type Func func(Notification)

// Notify implements Notifier.
func (f Func) Notify(n Notification) {
	f(n)
}

// Recorder keeps every notification it receives.
type Recorder struct {
	items []Notification
	mu    sync.Mutex
}

// Notify implements Notifier.
func (r *Recorder) Notify(n Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, n)
}

// All returns a copy of the recorded notifications.
func (r *Recorder) All() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Notification, len(r.items))
	copy(out, r.items)
	return out
}

// Last returns the most recent notification.
func (r *Recorder) Last() (Notification, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.items) == 0 {
		return Notification{}, false
	}
	return r.items[len(r.items)-1], true
}
