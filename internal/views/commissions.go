package views

import (
	"time"

	"github.com/Veraticus/parceiro/internal/listview"
	"github.com/Veraticus/parceiro/internal/model"
)

// CommissionsEmptyMessage is shown when no ledger entry passes the filters.
const CommissionsEmptyMessage = "Nenhuma comissão registrada ainda. Comece a vender para ver seus ganhos!"

// CommissionPeriods are the period options of the commission ledger.
var CommissionPeriods = []string{
	string(listview.PeriodCurrentMonth),
	string(listview.PeriodPreviousMonth),
	string(listview.PeriodLast3Months),
	string(listview.PeriodCurrentYear),
	listview.All,
}

// Commissions returns the "Minhas Comissões" page definition. The ledger
// has no text search.
func Commissions(now Clock) listview.Definition[model.CommissionEntry] {
	now = clockOrNow(now)
	types := asStrings(model.CommissionTypes)

	return listview.Definition[model.CommissionEntry]{
		Name:     NameCommissions,
		Title:    "Minhas Comissões",
		Subtitle: "Acompanhe seus ganhos em tempo real",
		Empty: listview.EmptyState{
			NoRecords: CommissionsEmptyMessage,
			NoMatches: CommissionsEmptyMessage,
		},
		Columns: []listview.Column[model.CommissionEntry]{
			{Header: "Data", Value: func(c model.CommissionEntry) any { return c.Date }, Format: dateColumn, Weight: 1, MinWidth: 10},
			{Header: "Tipo de Comissão", Value: func(c model.CommissionEntry) any { return string(c.Type) }, Weight: 2, MinWidth: 14},
			{Header: "Cliente", Value: func(c model.CommissionEntry) any { return c.ClientName }, Weight: 2, MinWidth: 12},
			{Header: "Descrição", Value: func(c model.CommissionEntry) any { return c.Description }, Weight: 3, MinWidth: 16},
			{Header: "Valor", Value: func(c model.CommissionEntry) any { return c.Amount }, Format: moneyColumn, Weight: 1, MinWidth: 10},
			{Header: "Status do Pagamento", Value: func(c model.CommissionEntry) any { return string(c.PaymentStatus) }, Classify: ClassifyPayment, Weight: 1, MinWidth: 10},
		},
		Predicates: []listview.Predicate[model.CommissionEntry]{
			listview.CategoryPredicate(listview.DimensionType, types, func(c model.CommissionEntry) string { return string(c.Type) }),
			listview.PeriodPredicate(listview.DimensionPeriod, now, func(c model.CommissionEntry) time.Time { return c.Date }),
		},
		Dimensions: []listview.DimensionSpec{
			{Dimension: listview.DimensionType, Label: "Tipo", Default: listview.All, Options: withAll(types)},
			{Dimension: listview.DimensionPeriod, Label: "Período", Default: listview.All, Options: CommissionPeriods},
		},
	}
}

// CommissionTotals summarizes the ledger.
type CommissionTotals struct {
	// Receivable is the sum of pending entries.
	Receivable model.Money
	// Received is the sum of paid entries.
	Received model.Money
}

// TotalCommissions sums pending and paid entries. Cancelled and unknown
// statuses count toward neither.
func TotalCommissions(entries []model.CommissionEntry) CommissionTotals {
	var totals CommissionTotals
	for _, e := range entries {
		switch e.PaymentStatus {
		case model.PaymentPending:
			totals.Receivable += e.Amount
		case model.PaymentPaid:
			totals.Received += e.Amount
		}
	}
	return totals
}
