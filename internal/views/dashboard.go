package views

import (
	"github.com/Veraticus/parceiro/internal/model"
)

// Summary holds the dashboard metric cards.
type Summary struct {
	QualifiedLeads    int
	ActiveSales       int
	PendingCommission model.Money
}

// Summarize computes the dashboard metrics over the whole record store.
func Summarize(leads []model.Lead, sales []model.Sale, commissions []model.CommissionEntry) Summary {
	var s Summary
	for _, l := range leads {
		if l.Status == model.LeadQualified {
			s.QualifiedLeads++
		}
	}
	for _, sale := range sales {
		if sale.ContractStatus == model.ContractActive {
			s.ActiveSales++
		}
	}
	s.PendingCommission = TotalCommissions(commissions).Receivable
	return s
}
