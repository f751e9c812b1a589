package output

import (
	"fmt"

	"github.com/cdimurro/bamboo-forecast-app/internal/domain"
	pkgdecimal "github.com/cdimurro/bamboo-forecast-app/pkg/decimal"
	"github.com/shopspring/decimal"
)

// FormatCurrency formats a decimal as USD with thousands separators and 2 decimals.
func FormatCurrency(amount decimal.Decimal) string {
	return pkgdecimal.NewMoneyFromDecimal(amount).Format()
}

// FormatPercentage formats a decimal as a percentage with 2 decimals.
func FormatPercentage(amount decimal.Decimal) string { return amount.StringFixed(2) + "%" }

// FormatRate formats a fractional rate (0.08) as a percentage ("8.00%").
func FormatRate(rate decimal.Decimal) string { return FormatPercentage(rate.Mul(decimalHundred)) }

// FormatQuantity formats tons or acres with one decimal.
func FormatQuantity(q decimal.Decimal) string { return pkgdecimal.Grouped(q, 1) }

// FormatIRR renders a solved IRR as a percentage and an undefined one as "n/a".
func FormatIRR(irr domain.IRR) string {
	if !irr.Defined {
		return "n/a"
	}
	return FormatPercentage(irr.Percent())
}

// FormatPayback renders the fractional payback time.
func FormatPayback(p domain.PaybackPeriod) string {
	if !p.Reached {
		return "not reached"
	}
	return fmt.Sprintf("%s years (year %d)", p.Years.StringFixed(2), p.Year)
}

// FormatYear renders a year index, with 0 meaning "never".
func FormatYear(year int) string {
	if year == 0 {
		return "never"
	}
	return fmt.Sprintf("year %d", year)
}
