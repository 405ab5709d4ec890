// Package model defines the core domain models used throughout the application.
package model

import "time"

// LeadStatus is the pipeline stage of a referred lead.
type LeadStatus string

// Lead status constants.
const (
	LeadQualified   LeadStatus = "Qualificado"
	LeadScheduled   LeadStatus = "Agendado"
	LeadNegotiating LeadStatus = "Em Negociação"
	LeadClosed      LeadStatus = "Fechado"
	LeadLost        LeadStatus = "Perdido"
)

// LeadStatuses lists every known lead status in display order.
var LeadStatuses = []LeadStatus{
	LeadQualified,
	LeadScheduled,
	LeadNegotiating,
	LeadClosed,
	LeadLost,
}

// Lead is a potential client referred by the partner.
type Lead struct {
	ReferralDate time.Time
	Name         string
	Company      string
	Status       LeadStatus
	NextStep     string
	ID           int64
}

// RecordID returns the unique identifier of the lead.
func (l Lead) RecordID() int64 {
	return l.ID
}
