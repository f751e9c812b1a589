package integration

import (
	"context"
	"testing"

	"github.com/cdimurro/bamboo-forecast-app/internal/calculation"
	"github.com/cdimurro/bamboo-forecast-app/internal/config"
	"github.com/cdimurro/bamboo-forecast-app/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, path string) (*domain.AssumptionSet, *domain.ProjectionResult) {
	t.Helper()
	parser := config.NewInputParser()
	a, err := parser.LoadAssumptions(path)
	require.NoError(t, err)

	engine := calculation.NewCalculationEngine()
	res, err := engine.Run(context.Background(), a)
	require.NoError(t, err)
	return a, res
}

func TestEndToEnd_ExampleScenario(t *testing.T) {
	a, res := run(t, "../testdata/example_scenario.yaml")
	require.Len(t, res.Table, a.ProjectionYears+1)

	// year 0 on the financing basis: 225,000 raised against 236,000 spent
	assert.True(t, res.Table[0].FreeCashFlow.Equal(decimal.NewFromInt(-11000)), "year 0 fcf %s", res.Table[0].FreeCashFlow)
	assert.True(t, res.Table[0].Capex.Equal(decimal.NewFromInt(215000)))

	for _, rec := range res.Table[1:] {
		assert.False(t, rec.RemainingDebt.IsNegative(), "year %d", rec.Year)
		if rec.Year < a.MaturityYears {
			assert.True(t, rec.TotalRevenue.IsZero(), "year %d is pre-maturity", rec.Year)
		}
		if !rec.EBT.IsPositive() {
			assert.True(t, rec.Taxes.IsZero(), "year %d", rec.Year)
		}
	}
	assert.True(t, res.Table[10].RemainingDebt.IsZero())
	assert.True(t, res.Table[11].DebtService.IsZero())

	// expansion lands in year 6
	assert.True(t, res.Table[6].LandAcres.Equal(decimal.NewFromInt(30)))
	assert.True(t, res.Table[6].Capex.Equal(decimal.NewFromInt(55000)))
	assert.True(t, res.Table[6].CapacityTons.GreaterThan(res.Table[5].CapacityTons))

	assert.True(t, res.Valuation.NPV.Equal(calculation.NPV(a.DiscountRate, res.Table.FreeCashFlows())))
	assert.NotEmpty(t, res.Assumptions)
}

func TestEndToEnd_SimplePlantationWithLoan(t *testing.T) {
	_, res := run(t, "../testdata/simple_plantation.toml")

	assert.True(t, res.Table[1].TotalRevenue.IsZero())
	assert.True(t, res.Table[3].TotalRevenue.Equal(decimal.NewFromInt(15000)), "year 3 revenue %s", res.Table[3].TotalRevenue)

	payment := calculation.AnnuityPayment(decimal.NewFromInt(50000), decimal.NewFromFloat(0.08), 15)
	assert.InDelta(t, 5841.477246801, payment.InexactFloat64(), 0.01)
	assert.True(t, res.Summary.AnnualDebtPmt.Equal(payment))

	principal := decimal.Zero
	for _, rec := range res.Table[1:] {
		principal = principal.Add(rec.PrincipalPayment)
		assert.InDelta(t, payment.InexactFloat64(), rec.DebtService.InexactFloat64(), 0.01, "year %d", rec.Year)
	}
	assert.True(t, principal.Equal(decimal.NewFromInt(50000)), "total principal %s", principal)
	assert.True(t, res.Table[15].RemainingDebt.IsZero())

	// equity basis: the investor puts in 10,000 at year 0
	assert.True(t, res.Table[0].FreeCashFlow.Equal(decimal.NewFromInt(-10000)))
	require.True(t, res.Valuation.IRR.Defined)
	assert.InDelta(t, 0, calculation.NPV(res.Valuation.IRR.Rate, res.Table.FreeCashFlows()).InexactFloat64(), 1e-3)
}
