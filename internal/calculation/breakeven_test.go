package calculation

import (
	"testing"

	"github.com/cdimurro/bamboo-forecast-app/internal/domain"
	"github.com/shopspring/decimal"
)

func cumulativeTable(fcf ...float64) domain.ProjectionTable {
	table := make(domain.ProjectionTable, len(fcf))
	cum := decimal.Zero
	for i, v := range fcf {
		cum = cum.Add(d(v))
		table[i] = domain.YearRecord{Year: i, FreeCashFlow: d(v), CumulativeCash: cum}
	}
	return table
}

// Crossing exactly at a year end
func TestCalculatePayback_ExactYear(t *testing.T) {
	res := CalculatePayback(cumulativeTable(-100, 50, 50, 50))
	if !res.Reached {
		t.Fatalf("expected payback, got none")
	}
	if res.Year != 2 {
		t.Fatalf("expected year 2, got %d", res.Year)
	}
	if !res.Years.Equal(decimal.NewFromInt(2)) {
		t.Fatalf("expected 2 years, got %s", res.Years.String())
	}
}

// Crossing inside a year
func TestCalculatePayback_Interpolation(t *testing.T) {
	// cumulative after year 1 is -40, year 2 adds 60: t = 40/60
	res := CalculatePayback(cumulativeTable(-100, 60, 60))
	if !res.Reached || res.Year != 2 {
		t.Fatalf("expected payback in year 2, got %+v", res)
	}
	if diff := res.Years.Sub(decimal.RequireFromString("1.6666666666666667")).Abs(); diff.GreaterThan(d(1e-9)) {
		t.Fatalf("expected ~1.6667 years, got %s", res.Years.String())
	}
}

func TestCalculatePayback_NeverAndImmediate(t *testing.T) {
	if res := CalculatePayback(cumulativeTable(-100, 10, 10)); res.Reached {
		t.Fatalf("expected no payback, got %+v", res)
	}
	res := CalculatePayback(cumulativeTable(100, -10, 10))
	if !res.Reached || res.Year != 0 {
		t.Fatalf("expected immediate payback, got %+v", res)
	}
	if res := CalculatePayback(nil); res.Reached {
		t.Fatalf("empty table cannot pay back")
	}
}

func TestBreakEvenYearAndPeakFunding(t *testing.T) {
	table := cumulativeTable(-100, -20, 30, 80)
	table[1].NetIncome = d(-20)
	table[2].NetIncome = d(30)
	table[3].NetIncome = d(80)

	if got := BreakEvenYear(table); got != 2 {
		t.Fatalf("expected break-even year 2, got %d", got)
	}
	if got := PeakFunding(table); !got.Equal(d(120)) {
		t.Fatalf("expected peak funding 120, got %s", got.String())
	}
	if got := BreakEvenYear(cumulativeTable(-1, -1)); got != 0 {
		t.Fatalf("expected no break-even, got %d", got)
	}
}

func TestColumnTotals(t *testing.T) {
	table := GenerateProjection(plantation())
	totals := ColumnTotals(table)
	// eight producing years of 15000 revenue
	if !totals.TotalRevenue.Equal(d(120000)) {
		t.Fatalf("expected total revenue 120000, got %s", totals.TotalRevenue.String())
	}
	if totals.Year != 10 || !totals.CumulativeCash.Equal(table[10].CumulativeCash) {
		t.Fatalf("stock columns should carry the final year, got %+v", totals)
	}
}
