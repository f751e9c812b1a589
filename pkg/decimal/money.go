package decimal

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Money represents a monetary amount with proper financial precision
type Money struct {
	decimal.Decimal
}

// NewMoney creates a new Money instance from a float64
func NewMoney(value float64) Money {
	return Money{decimal.NewFromFloat(value)}
}

// NewMoneyFromDecimal creates a new Money instance from a decimal.Decimal
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// NewMoneyFromString creates a new Money instance from a string
func NewMoneyFromString(value string) (Money, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Money{}, err
	}
	return Money{d}, nil
}

// Round rounds the money amount to cents
func (m Money) Round() Money {
	return Money{m.Decimal.Round(2)}
}

// PerUnit divides the amount across a quantity (cost per ton, per acre).
// A zero quantity yields zero.
func (m Money) PerUnit(qty decimal.Decimal) Money {
	if qty.IsZero() {
		return Zero()
	}
	return Money{m.Decimal.Div(qty)}
}

// Zero returns a zero Money amount
func Zero() Money {
	return Money{decimal.Zero}
}

// String returns the amount with two decimals and no grouping
func (m Money) String() string {
	return m.Decimal.StringFixed(2)
}

// Format renders the amount as currency with thousands separators,
// e.g. "-$1,234.57".
func (m Money) Format() string {
	s := Grouped(m.Decimal.Abs(), 2)
	if m.Decimal.Round(2).IsNegative() {
		return "-$" + s
	}
	return "$" + s
}

// Grouped renders d with the given decimal places and comma-grouped
// integer digits. The sign is preserved. Rounding happens in decimal first
// so half-away-from-zero holds; the grouped print goes through float64 and
// is exact up to 15 significant digits.
func Grouped(d decimal.Decimal, places int32) string {
	p := message.NewPrinter(language.English)
	return p.Sprintf(fmt.Sprintf("%%.%df", places), d.Round(places).InexactFloat64())
}
