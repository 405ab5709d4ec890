package views

import (
	"time"

	"github.com/Veraticus/parceiro/internal/listview"
	"github.com/Veraticus/parceiro/internal/model"
)

// SalesEmptyMessage is shown when no sale passes the filters.
const SalesEmptyMessage = "Nenhuma venda fechada ainda. Continue prospectando!"

// SalesPeriods are the period options of the sales page.
var SalesPeriods = []string{
	listview.All,
	string(listview.PeriodLast30Days),
	string(listview.PeriodCurrentMonth),
	string(listview.PeriodPreviousMonth),
	string(listview.PeriodLast6Months),
	string(listview.PeriodCurrentYear),
}

// Sales returns the "Minhas Vendas" page definition.
func Sales(now Clock) listview.Definition[model.Sale] {
	now = clockOrNow(now)

	return listview.Definition[model.Sale]{
		Name:              NameSales,
		Title:             "Minhas Vendas",
		Subtitle:          "Clientes que fecharam negócio",
		SearchPlaceholder: "Buscar por nome do cliente ou empresa...",
		Searchable:        true,
		Empty: listview.EmptyState{
			NoRecords: SalesEmptyMessage,
			NoMatches: SalesEmptyMessage,
		},
		Columns: []listview.Column[model.Sale]{
			{Header: "Nome do Cliente", Value: func(s model.Sale) any { return s.ClientName }, Weight: 2, MinWidth: 14},
			{Header: "Empresa", Value: func(s model.Sale) any { return s.Company }, Weight: 2, MinWidth: 14},
			{Header: "Data do Fechamento", Value: func(s model.Sale) any { return s.ClosingDate }, Format: dateColumn, Weight: 1, MinWidth: 10},
			{Header: "Valor da Venda", Value: func(s model.Sale) any { return s.SaleValue }, Format: moneyColumn, Weight: 1, MinWidth: 12},
			{Header: "Valor da Mensalidade", Value: func(s model.Sale) any { return s.MonthlyFeeValue }, Format: moneyColumn, Weight: 1, MinWidth: 12},
			{Header: "Status do Contrato", Value: func(s model.Sale) any { return string(s.ContractStatus) }, Classify: ClassifyContract, Weight: 1, MinWidth: 10},
		},
		Predicates: []listview.Predicate[model.Sale]{
			listview.TextPredicate(
				func(s model.Sale) string { return s.ClientName },
				func(s model.Sale) string { return s.Company },
			),
			listview.PeriodPredicate(listview.DimensionPeriod, now, func(s model.Sale) time.Time { return s.ClosingDate }),
		},
		Dimensions: []listview.DimensionSpec{
			{Dimension: listview.DimensionPeriod, Label: "Período", Default: listview.All, Options: SalesPeriods},
		},
	}
}
