package views

import (
	"github.com/Veraticus/parceiro/internal/listview"
	"github.com/Veraticus/parceiro/internal/model"
)

// LeadsEmptyMessage is shown when no lead passes the filters.
const LeadsEmptyMessage = "Nenhum lead encontrado. Compartilhe seu link de indicação para começar!"

// Leads returns the "Meus Leads" page definition.
func Leads() listview.Definition[model.Lead] {
	statuses := asStrings(model.LeadStatuses)

	return listview.Definition[model.Lead]{
		Name:              NameLeads,
		Title:             "Meus Leads",
		Subtitle:          "Gerencie seus clientes potenciais",
		SearchPlaceholder: "Buscar por nome ou empresa...",
		Searchable:        true,
		Empty: listview.EmptyState{
			NoRecords: LeadsEmptyMessage,
			NoMatches: LeadsEmptyMessage,
		},
		Columns: []listview.Column[model.Lead]{
			{Header: "Nome do Lead", Value: func(l model.Lead) any { return l.Name }, Weight: 2, MinWidth: 14},
			{Header: "Empresa", Value: func(l model.Lead) any { return l.Company }, Weight: 2, MinWidth: 14},
			{Header: "Data da Indicação", Value: func(l model.Lead) any { return l.ReferralDate }, Format: dateColumn, Weight: 1, MinWidth: 10},
			{Header: "Status Atual", Value: func(l model.Lead) any { return string(l.Status) }, Classify: ClassifyLead, Weight: 1, MinWidth: 13},
			{Header: "Próximo Passo", Value: func(l model.Lead) any { return l.NextStep }, Weight: 3, MinWidth: 16},
		},
		Predicates: []listview.Predicate[model.Lead]{
			listview.TextPredicate(
				func(l model.Lead) string { return l.Name },
				func(l model.Lead) string { return l.Company },
			),
			listview.CategoryPredicate(listview.DimensionStatus, statuses, func(l model.Lead) string { return string(l.Status) }),
		},
		Dimensions: []listview.DimensionSpec{
			{Dimension: listview.DimensionStatus, Label: "Status", Default: listview.All, Options: withAll(statuses)},
		},
	}
}
