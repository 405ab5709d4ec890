// Package views declares the concrete list pages of the partner dashboard:
// which columns they show, how they filter and what they say when empty.
package views

import (
	"time"

	"github.com/Veraticus/parceiro/internal/format"
	"github.com/Veraticus/parceiro/internal/listview"
)

// Clock returns the current time. Period filters are evaluated against it.
type Clock func() time.Time

// View names, also used as report kinds.
const (
	NameLeads       = "leads"
	NameSales       = "vendas"
	NameCommissions = "comissoes"
)

var (
	dateColumn  = listview.FormatAs(format.Date)
	moneyColumn = listview.FormatAs(format.Currency)
)

func asStrings[S ~string](values []S) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}

func withAll(options []string) []string {
	return append([]string{listview.All}, options...)
}

func clockOrNow(now Clock) Clock {
	if now == nil {
		return time.Now
	}
	return now
}
