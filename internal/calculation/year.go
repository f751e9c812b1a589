package calculation

import (
	"github.com/cdimurro/bamboo-forecast-app/internal/domain"
	"github.com/shopspring/decimal"
)

// runningState is everything a year needs from the years before it.
type runningState struct {
	Loan           LoanState
	LandAcres      decimal.Decimal
	CumulativeCash decimal.Decimal
}

// production is one year's volume outcome.
type production struct {
	capacity  decimal.Decimal // raw harvest ceiling
	bamboo    decimal.Decimal
	biochar   decimal.Decimal
	feedstock decimal.Decimal
}

// harvestCeiling is the raw tonnage the land can physically yield in a year.
func harvestCeiling(a *domain.AssumptionSet, land decimal.Decimal) decimal.Decimal {
	return land.Mul(a.YieldPerAcre).Mul(a.CapacityUtilization).Mul(a.HarvestsPerYear)
}

// productCeilings splits the raw ceiling between raw bamboo sales and kiln
// output, applying the processing-capacity cap to biochar.
func productCeilings(a *domain.AssumptionSet, raw decimal.Decimal) (bamboo, biochar decimal.Decimal) {
	bamboo = raw.Mul(a.PrimaryAllocation)
	biochar = a.ProcessingCapacity.Apply(raw.Mul(a.FeedstockAllocation).Mul(a.BiocharYieldRatio))
	return bamboo, biochar
}

// produce applies the maturity ramp and the demand-vs-capacity cap.
func produce(year int, a *domain.AssumptionSet, land decimal.Decimal) production {
	out := production{
		capacity:  harvestCeiling(a, land),
		bamboo:    decimal.Zero,
		biochar:   decimal.Zero,
		feedstock: decimal.Zero,
	}
	if year < a.MaturityYears {
		return out
	}
	bambooCap, biocharCap := productCeilings(a, out.capacity)
	growth := compound(a.SalesGrowthRate, year-a.MaturityYears)
	out.bamboo = a.BambooBaseSales.Scale(growth).Apply(bambooCap)
	out.biochar = a.BiocharBaseSales.Scale(growth).Apply(biocharCap)
	if a.BiocharYieldRatio.IsPositive() {
		out.feedstock = out.biochar.Div(a.BiocharYieldRatio)
	}
	return out
}

// operatingCosts prices every cost bucket for the year. inflation is the
// cost-inflation factor; marketing follows revenue and is not inflated.
func operatingCosts(a *domain.AssumptionSet, land decimal.Decimal, p production, revenue, inflation decimal.Decimal) domain.CostBreakdown {
	fixed := a.AdminCost.Add(a.InsuranceCost).Add(a.MaintenanceCost).Add(a.ComplianceCost)
	perAcre := a.MaintenancePerAcre.Add(a.FertilizerPerAcre).Add(a.PestControlPerAcre).Add(a.WeedControlPerAcre)
	conversion := p.biochar.Mul(a.BiocharCostPerTon).Add(p.feedstock.Mul(a.ProcessingCostPerFeedstockTon))

	return domain.CostBreakdown{
		Fixed:      fixed.Mul(inflation),
		LandBased:  perAcre.Mul(land).Mul(inflation),
		Harvest:    p.bamboo.Mul(a.HarvestCostPerTon).Mul(inflation),
		Conversion: conversion.Mul(inflation),
		Transport:  p.bamboo.Add(p.biochar).Mul(a.TransportCostPerTon).Mul(inflation),
		Marketing:  revenue.Mul(a.MarketingRate),
	}
}

// buildYear computes one year's record from the assumptions and the state
// left by the previous year, returning the state for the next year.
func buildYear(year int, a *domain.AssumptionSet, depreciation decimal.Decimal, st runningState) (domain.YearRecord, runningState) {
	rec := domain.YearRecord{Year: year}

	// Staged land: capex this year, larger land base from now on
	rec.Capex = decimal.Zero
	if added := a.ExpansionAcres(year); added.IsPositive() {
		rec.Capex = added.Mul(a.LandCostBasis())
		st.LandAcres = st.LandAcres.Add(added)
	}
	rec.LandAcres = st.LandAcres

	p := produce(year, a, st.LandAcres)
	rec.CapacityTons = p.capacity
	rec.BambooTons = p.bamboo
	rec.BiocharTons = p.biochar
	rec.FeedstockTons = p.feedstock

	priceFactor := compound(a.RevenueInflation, year-1)
	rec.BambooRevenue = p.bamboo.Mul(a.BambooPrice).Mul(priceFactor)
	rec.BiocharRevenue = p.biochar.Mul(a.BiocharPrice).Mul(priceFactor)
	rec.CarbonCreditRevenue = p.biochar.Mul(a.CarbonCreditPerTon).Mul(priceFactor)
	rec.ByproductRevenue = p.feedstock.Mul(a.ByproductPerFeedstockTon).Mul(priceFactor)
	rec.TotalRevenue = rec.BambooRevenue.Add(rec.BiocharRevenue).Add(rec.CarbonCreditRevenue).Add(rec.ByproductRevenue)

	rec.Costs = operatingCosts(a, st.LandAcres, p, rec.TotalRevenue, compound(a.CostInflation, year-1))
	rec.OperatingCost = rec.Costs.Total()

	rec.EBITDA = rec.TotalRevenue.Sub(rec.OperatingCost)
	rec.Depreciation = depreciation
	rec.EBIT = rec.EBITDA.Sub(depreciation)

	service, loan := st.Loan.Service(year)
	rec.Interest = service.Interest
	rec.EBT = rec.EBIT.Sub(service.Interest)
	rec.Taxes = decimal.Max(decimal.Zero, rec.EBT).Mul(a.TaxRate)
	rec.NetIncome = rec.EBT.Sub(rec.Taxes)
	rec.OperatingCashFlow = rec.NetIncome.Add(depreciation)

	rec.PrincipalPayment = service.Principal
	rec.DebtService = service.Payment
	rec.RemainingDebt = loan.Balance
	st.Loan = loan

	rec.FreeCashFlow = rec.OperatingCashFlow.Sub(rec.Capex).Sub(rec.PrincipalPayment)
	st.CumulativeCash = st.CumulativeCash.Add(rec.FreeCashFlow)
	rec.CumulativeCash = st.CumulativeCash

	return rec, st
}
