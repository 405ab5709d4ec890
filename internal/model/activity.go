package model

import "time"

// ActivityKind groups recent activity events.
type ActivityKind string

// Activity kinds.
const (
	ActivityLead        ActivityKind = "lead"
	ActivitySale        ActivityKind = "venda"
	ActivityAppointment ActivityKind = "agendamento"
)

// Activity is an entry of the dashboard's recent activity feed.
type Activity struct {
	Date   time.Time
	Client string
	Event  string
	Kind   ActivityKind
}
