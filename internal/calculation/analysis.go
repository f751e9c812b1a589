package calculation

import (
	"github.com/cdimurro/bamboo-forecast-app/internal/domain"
)

// ColumnTotals sums every flow column of the table. Stock columns take the
// value of the final year.
func ColumnTotals(table domain.ProjectionTable) domain.YearRecord {
	var t domain.YearRecord
	for _, r := range table {
		t.BambooTons = t.BambooTons.Add(r.BambooTons)
		t.BiocharTons = t.BiocharTons.Add(r.BiocharTons)
		t.FeedstockTons = t.FeedstockTons.Add(r.FeedstockTons)

		t.BambooRevenue = t.BambooRevenue.Add(r.BambooRevenue)
		t.BiocharRevenue = t.BiocharRevenue.Add(r.BiocharRevenue)
		t.CarbonCreditRevenue = t.CarbonCreditRevenue.Add(r.CarbonCreditRevenue)
		t.ByproductRevenue = t.ByproductRevenue.Add(r.ByproductRevenue)
		t.TotalRevenue = t.TotalRevenue.Add(r.TotalRevenue)

		t.Costs.Fixed = t.Costs.Fixed.Add(r.Costs.Fixed)
		t.Costs.LandBased = t.Costs.LandBased.Add(r.Costs.LandBased)
		t.Costs.Harvest = t.Costs.Harvest.Add(r.Costs.Harvest)
		t.Costs.Conversion = t.Costs.Conversion.Add(r.Costs.Conversion)
		t.Costs.Transport = t.Costs.Transport.Add(r.Costs.Transport)
		t.Costs.Marketing = t.Costs.Marketing.Add(r.Costs.Marketing)
		t.OperatingCost = t.OperatingCost.Add(r.OperatingCost)

		t.EBITDA = t.EBITDA.Add(r.EBITDA)
		t.Depreciation = t.Depreciation.Add(r.Depreciation)
		t.EBIT = t.EBIT.Add(r.EBIT)
		t.Interest = t.Interest.Add(r.Interest)
		t.EBT = t.EBT.Add(r.EBT)
		t.Taxes = t.Taxes.Add(r.Taxes)
		t.NetIncome = t.NetIncome.Add(r.NetIncome)

		t.OperatingCashFlow = t.OperatingCashFlow.Add(r.OperatingCashFlow)
		t.Capex = t.Capex.Add(r.Capex)
		t.PrincipalPayment = t.PrincipalPayment.Add(r.PrincipalPayment)
		t.DebtService = t.DebtService.Add(r.DebtService)
		t.FreeCashFlow = t.FreeCashFlow.Add(r.FreeCashFlow)
	}
	if n := len(table); n > 0 {
		last := table[n-1]
		t.Year = last.Year
		t.LandAcres = last.LandAcres
		t.CapacityTons = last.CapacityTons
		t.RemainingDebt = last.RemainingDebt
		t.CumulativeCash = last.CumulativeCash
	}
	return t
}

// Summarize derives the display figures for a finished projection.
func Summarize(a *domain.AssumptionSet, table domain.ProjectionTable) domain.ProjectionSummary {
	return domain.ProjectionSummary{
		Totals:        ColumnTotals(table),
		BreakEvenYear: BreakEvenYear(table),
		Payback:       CalculatePayback(table),
		PeakFunding:   PeakFunding(table),
		InitialCapex:  a.InitialCapex(),
		InitialOutlay: a.InitialOutlay(),
		AnnualDebtPmt: AnnuityPayment(a.LoanAmount, a.LoanInterestRate, a.LoanTermYears),
		CashFlowBasis: a.CashFlowBasis,
	}
}
