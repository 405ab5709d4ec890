package format

import (
	"testing"
	"time"

	"github.com/Veraticus/parceiro/internal/model"
	"github.com/stretchr/testify/assert"
)

func TestCurrency(t *testing.T) {
	tests := []struct {
		name  string
		want  string
		money model.Money
	}{
		{name: "grouping and cents", money: model.MustMoney(1500), want: "R$ 1.500,00"},
		{name: "small amount", money: model.MustMoney(15), want: "R$ 15,00"},
		{name: "fraction", money: model.Money(5050), want: "R$ 50,50"},
		{name: "zero", money: 0, want: "R$ 0,00"},
		{name: "millions", money: model.MustMoney(1234567.89), want: "R$ 1.234.567,89"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Currency(tt.money))
		})
	}
}

func TestDate(t *testing.T) {
	d := model.MustDate("2025-07-15")
	assert.Equal(t, "15/07/2025", Date(d))
	// formatting must not mutate the record's value
	assert.Equal(t, "2025-07-15", d.Format(model.DateLayout))
	assert.Equal(t, "-", Date(time.Time{}))
}

func TestLocale_Count(t *testing.T) {
	assert.Equal(t, "25", BrazilianPortuguese.Count(25))
	assert.Equal(t, "1.000", BrazilianPortuguese.Count(1000))
}
