package views

import (
	"github.com/Veraticus/parceiro/internal/listview"
	"github.com/Veraticus/parceiro/internal/model"
)

// ClassifyLead maps a lead status to its badge category.
func ClassifyLead(raw string) listview.Category {
	switch model.LeadStatus(raw) {
	case model.LeadQualified:
		return listview.CategoryInfo
	case model.LeadScheduled:
		return listview.CategoryAccent
	case model.LeadNegotiating:
		return listview.CategoryWarning
	case model.LeadClosed:
		return listview.CategoryPositive
	case model.LeadLost:
		return listview.CategoryNegative
	default:
		return listview.CategoryNeutral
	}
}

// ClassifyContract maps a contract status to its badge category.
func ClassifyContract(raw string) listview.Category {
	switch model.ContractStatus(raw) {
	case model.ContractActive:
		return listview.CategoryPositive
	case model.ContractCancelled:
		return listview.CategoryNegative
	default:
		return listview.CategoryNeutral
	}
}

// ClassifyPayment maps a commission payment status to its badge category.
func ClassifyPayment(raw string) listview.Category {
	switch model.PaymentStatus(raw) {
	case model.PaymentPaid:
		return listview.CategoryPositive
	case model.PaymentPending:
		return listview.CategoryWarning
	case model.PaymentCancelled:
		return listview.CategoryNegative
	default:
		return listview.CategoryNeutral
	}
}
