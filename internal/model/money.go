package model

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// DateLayout is the wire format of every date field (ISO 8601, no time).
const DateLayout = "2006-01-02"

// ErrNegativeAmount is returned when a currency amount is below zero.
var ErrNegativeAmount = errors.New("amount cannot be negative")

// Money is a non-negative amount of Brazilian reais expressed in centavos.
type Money int64

// NewMoney converts a decimal amount of reais into Money, rounding to the
// nearest centavo.
func NewMoney(reais float64) (Money, error) {
	if reais < 0 {
		return 0, fmt.Errorf("%w: %.2f", ErrNegativeAmount, reais)
	}
	return Money(math.Round(reais * 100)), nil
}

// MustMoney is like NewMoney but panics on invalid input. Intended for fixtures.
func MustMoney(reais float64) Money {
	m, err := NewMoney(reais)
	if err != nil {
		panic(err)
	}
	return m
}

// Reais returns the amount as a decimal number of reais.
func (m Money) Reais() float64 {
	return float64(m) / 100
}

// ParseDate parses an ISO 8601 calendar date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

// MustDate is like ParseDate but panics on invalid input. Intended for fixtures.
func MustDate(s string) time.Time {
	t, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return t
}
