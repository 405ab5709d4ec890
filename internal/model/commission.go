package model

import "time"

// CommissionType describes what generated a commission.
type CommissionType string

// Commission type constants.
const (
	CommissionQualifiedAppointment CommissionType = "Agendamento Qualificado"
	CommissionClosedSale           CommissionType = "Venda Fechada"
	CommissionMonthlyRecurrence    CommissionType = "Recorrência Mensal"
)

// CommissionTypes lists every known commission type.
var CommissionTypes = []CommissionType{
	CommissionQualifiedAppointment,
	CommissionClosedSale,
	CommissionMonthlyRecurrence,
}

// PaymentStatus is the payout state of a commission entry.
type PaymentStatus string

// Payment status constants.
const (
	PaymentPending   PaymentStatus = "Pendente"
	PaymentPaid      PaymentStatus = "Pago"
	PaymentCancelled PaymentStatus = "Cancelado"
)

// PaymentStatuses lists every known payment status.
var PaymentStatuses = []PaymentStatus{
	PaymentPending,
	PaymentPaid,
	PaymentCancelled,
}

// CommissionEntry is a single line of the partner's commission ledger.
type CommissionEntry struct {
	Date          time.Time
	Type          CommissionType
	ClientName    string
	Description   string
	PaymentStatus PaymentStatus
	ID            int64
	Amount        Money
}

// RecordID returns the unique identifier of the entry.
func (c CommissionEntry) RecordID() int64 {
	return c.ID
}
