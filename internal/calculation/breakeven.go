package calculation

import (
	"github.com/cdimurro/bamboo-forecast-app/internal/domain"
	"github.com/shopspring/decimal"
)

// BreakEvenYear returns the first year with positive net income, or 0 if
// the projection never turns a profit.
func BreakEvenYear(table domain.ProjectionTable) int {
	for _, rec := range table {
		if rec.Year > 0 && rec.NetIncome.IsPositive() {
			return rec.Year
		}
	}
	return 0
}

// CalculatePayback finds the first point where cumulative cash crosses from
// negative to non-negative. The crossing is interpolated linearly inside the
// year whose free cash flow closes the gap. A projection whose cumulative
// cash never goes negative pays back at year 0.
func CalculatePayback(table domain.ProjectionTable) domain.PaybackPeriod {
	if len(table) == 0 {
		return domain.PaybackPeriod{}
	}
	if !table[0].CumulativeCash.IsNegative() {
		return domain.PaybackPeriod{Reached: true, Year: 0, Fraction: decimal.Zero, Years: decimal.Zero}
	}

	for i := 1; i < len(table); i++ {
		prev := table[i-1].CumulativeCash
		curr := table[i].CumulativeCash
		if !prev.IsNegative() || curr.IsNegative() {
			continue
		}
		// cum(t) = prev + t*fcf, solve cum(t) = 0
		fcf := table[i].FreeCashFlow
		t := one
		if fcf.IsPositive() {
			t = prev.Neg().Div(fcf)
		}
		if t.GreaterThan(one) {
			t = one
		}
		year := table[i].Year
		return domain.PaybackPeriod{
			Reached:  true,
			Year:     year,
			Fraction: t,
			Years:    decimal.NewFromInt(int64(year - 1)).Add(t),
		}
	}
	return domain.PaybackPeriod{Reached: false, Fraction: decimal.Zero, Years: decimal.Zero}
}

// PeakFunding is the deepest cumulative cash deficit, reported as a
// non-negative amount (0 when cumulative cash never dips below zero).
func PeakFunding(table domain.ProjectionTable) decimal.Decimal {
	low := decimal.Zero
	for _, rec := range table {
		low = decimal.Min(low, rec.CumulativeCash)
	}
	return low.Neg()
}
