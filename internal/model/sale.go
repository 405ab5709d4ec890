package model

import "time"

// ContractStatus is the state of a closed sale's contract.
type ContractStatus string

// Contract status constants.
const (
	ContractActive    ContractStatus = "Ativo"
	ContractCancelled ContractStatus = "Cancelado"
)

// ContractStatuses lists every known contract status.
var ContractStatuses = []ContractStatus{
	ContractActive,
	ContractCancelled,
}

// Sale is a client that closed a deal through the partner's referral.
type Sale struct {
	ClosingDate     time.Time
	ClientName      string
	Company         string
	ContractStatus  ContractStatus
	ID              int64
	SaleValue       Money
	MonthlyFeeValue Money
}

// RecordID returns the unique identifier of the sale.
func (s Sale) RecordID() int64 {
	return s.ID
}
