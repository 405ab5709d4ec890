// Package format renders currency amounts and calendar dates for display in
// the partner's locale (pt-BR).
package format

import (
	"time"

	"github.com/Veraticus/parceiro/internal/model"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// DisplayDateLayout is the pt-BR calendar date layout.
const DisplayDateLayout = "02/01/2006"

// Locale formats values for one language.
type Locale struct {
	printer *message.Printer
	symbol  string
}

// BrazilianPortuguese is the default display locale.
var BrazilianPortuguese = NewLocale(language.BrazilianPortuguese, "R$")

// NewLocale creates a locale for the given language tag and currency symbol.
func NewLocale(tag language.Tag, symbol string) Locale {
	return Locale{
		printer: message.NewPrinter(tag),
		symbol:  symbol,
	}
}

// Currency formats an amount with locale grouping and exactly two fraction digits.
func (l Locale) Currency(m model.Money) string {
	return l.symbol + " " + l.Number(m.Reais())
}

// Number formats a decimal with locale grouping and exactly two fraction digits.
func (l Locale) Number(v float64) string {
	return l.printer.Sprintf("%v", number.Decimal(v, number.Scale(2)))
}

// Count formats an integer with locale grouping.
func (l Locale) Count(n int) string {
	return l.printer.Sprintf("%v", number.Decimal(n))
}

// Currency formats an amount as pt-BR reais, e.g. "R$ 1.500,00".
func Currency(m model.Money) string {
	return BrazilianPortuguese.Currency(m)
}

// Date formats a calendar date as dd/mm/yyyy without touching the value.
func Date(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format(DisplayDateLayout)
}
