package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// CashFlowBasis selects how the year-0 cash position is formed.
type CashFlowBasis string

const (
	// BasisFinancing treats equity and loan drawdown as year-0 inflows netted
	// against the initial outlay (project-level cash position).
	BasisFinancing CashFlowBasis = "financing"
	// BasisEquity treats the equity contribution as the only year-0 flow, so
	// IRR is measured on the investor's levered cash flows.
	BasisEquity CashFlowBasis = "equity"
)

// ParseCashFlowBasis resolves a basis name; the empty string selects BasisFinancing.
func ParseCashFlowBasis(s string) (CashFlowBasis, error) {
	switch CashFlowBasis(s) {
	case "", BasisFinancing:
		return BasisFinancing, nil
	case BasisEquity:
		return BasisEquity, nil
	}
	return "", fmt.Errorf("unknown cash flow basis %q (want %q or %q)", s, BasisFinancing, BasisEquity)
}

// VolumeLimit is a resolved optional ceiling on an annual tonnage.
// An Unbounded limit imposes no cap; a bounded zero limit caps volume at zero.
type VolumeLimit struct {
	Tons      decimal.Decimal `json:"tons"`
	Unbounded bool            `json:"unbounded"`
}

// Unbounded returns a limit that never binds.
func Unbounded() VolumeLimit { return VolumeLimit{Unbounded: true} }

// LimitOf returns a bounded limit of the given tonnage.
func LimitOf(tons decimal.Decimal) VolumeLimit { return VolumeLimit{Tons: tons} }

// Apply caps v at the limit.
func (l VolumeLimit) Apply(v decimal.Decimal) decimal.Decimal {
	if l.Unbounded {
		return v
	}
	return decimal.Min(v, l.Tons)
}

// Scale multiplies a bounded limit by f; unbounded limits stay unbounded.
func (l VolumeLimit) Scale(f decimal.Decimal) VolumeLimit {
	if l.Unbounded {
		return l
	}
	return VolumeLimit{Tons: l.Tons.Mul(f)}
}

// LandExpansion adds acreage (and its acquisition, preparation and planting
// cost) in a given projection year.
type LandExpansion struct {
	Year  int             `json:"year"`
	Acres decimal.Decimal `json:"acres"`
}

// AssumptionSet is the fully resolved input to one projection run. Rates are
// fractions, money is in currency units, volumes are tons.
type AssumptionSet struct {
	Name string `json:"name"`

	// Land and initial capital
	Acres                  decimal.Decimal `json:"acres"`
	LandCostPerAcre        decimal.Decimal `json:"land_cost_per_acre"`
	PreparationCostPerAcre decimal.Decimal `json:"preparation_cost_per_acre"`
	PlantingCostPerAcre    decimal.Decimal `json:"planting_cost_per_acre"`
	EquipmentCost          decimal.Decimal `json:"equipment_cost"`
	FacilityCost           decimal.Decimal `json:"facility_cost"`
	WorkingCapitalReserve  decimal.Decimal `json:"working_capital_reserve"`
	RegulatoryCost         decimal.Decimal `json:"regulatory_cost"`

	// Production
	MaturityYears       int             `json:"maturity_years"`
	YieldPerAcre        decimal.Decimal `json:"yield_per_acre"`
	HarvestsPerYear     decimal.Decimal `json:"harvests_per_year"`
	CapacityUtilization decimal.Decimal `json:"capacity_utilization"`
	PrimaryAllocation   decimal.Decimal `json:"primary_allocation"`
	FeedstockAllocation decimal.Decimal `json:"feedstock_allocation"`
	BiocharYieldRatio   decimal.Decimal `json:"biochar_yield_ratio"`
	ProcessingCapacity  VolumeLimit     `json:"processing_capacity"`
	BambooBaseSales     VolumeLimit     `json:"bamboo_base_sales"`
	BiocharBaseSales    VolumeLimit     `json:"biochar_base_sales"`
	SalesGrowthRate     decimal.Decimal `json:"sales_growth_rate"`

	// Prices
	BambooPrice              decimal.Decimal `json:"bamboo_price"`
	BiocharPrice             decimal.Decimal `json:"biochar_price"`
	CarbonCreditPerTon       decimal.Decimal `json:"carbon_credit_per_ton"`
	ByproductPerFeedstockTon decimal.Decimal `json:"byproduct_per_feedstock_ton"`
	RevenueInflation         decimal.Decimal `json:"revenue_inflation"`

	// Operating costs
	AdminCost                     decimal.Decimal `json:"admin_cost"`
	InsuranceCost                 decimal.Decimal `json:"insurance_cost"`
	MaintenanceCost               decimal.Decimal `json:"maintenance_cost"`
	ComplianceCost                decimal.Decimal `json:"compliance_cost"`
	MaintenancePerAcre            decimal.Decimal `json:"maintenance_per_acre"`
	FertilizerPerAcre             decimal.Decimal `json:"fertilizer_per_acre"`
	PestControlPerAcre            decimal.Decimal `json:"pest_control_per_acre"`
	WeedControlPerAcre            decimal.Decimal `json:"weed_control_per_acre"`
	HarvestCostPerTon             decimal.Decimal `json:"harvest_cost_per_ton"`
	BiocharCostPerTon             decimal.Decimal `json:"biochar_cost_per_ton"`
	ProcessingCostPerFeedstockTon decimal.Decimal `json:"processing_cost_per_feedstock_ton"`
	TransportCostPerTon           decimal.Decimal `json:"transport_cost_per_ton"`
	MarketingRate                 decimal.Decimal `json:"marketing_rate"`
	CostInflation                 decimal.Decimal `json:"cost_inflation"`

	// Financing and tax
	EquityInvestment   decimal.Decimal `json:"equity_investment"`
	LoanAmount         decimal.Decimal `json:"loan_amount"`
	LoanInterestRate   decimal.Decimal `json:"loan_interest_rate"`
	LoanTermYears      int             `json:"loan_term_years"`
	OriginationFeeRate decimal.Decimal `json:"origination_fee_rate"`
	TaxRate            decimal.Decimal `json:"tax_rate"`
	DepreciationRate   decimal.Decimal `json:"depreciation_rate"`
	DiscountRate       decimal.Decimal `json:"discount_rate"`
	CashFlowBasis      CashFlowBasis   `json:"cash_flow_basis"`

	ProjectionYears int             `json:"projection_years"`
	Expansions      []LandExpansion `json:"expansions,omitempty"`
}

// LandCostBasis is the all-in cost of bringing one acre into production.
func (a *AssumptionSet) LandCostBasis() decimal.Decimal {
	return a.LandCostPerAcre.Add(a.PreparationCostPerAcre).Add(a.PlantingCostPerAcre)
}

// InitialCapex is the total capital expenditure made in year 0.
func (a *AssumptionSet) InitialCapex() decimal.Decimal {
	return a.Acres.Mul(a.LandCostBasis()).Add(a.EquipmentCost).Add(a.FacilityCost)
}

// OriginationFee is the one-time fee charged on the loan drawdown.
func (a *AssumptionSet) OriginationFee() decimal.Decimal {
	return a.LoanAmount.Mul(a.OriginationFeeRate)
}

// InitialOutlay is every year-0 use of cash: capex, working capital,
// regulatory setup and the loan origination fee.
func (a *AssumptionSet) InitialOutlay() decimal.Decimal {
	return a.InitialCapex().Add(a.WorkingCapitalReserve).Add(a.RegulatoryCost).Add(a.OriginationFee())
}

// FinancingInflow is the cash contributed at year 0 by equity and debt.
func (a *AssumptionSet) FinancingInflow() decimal.Decimal {
	return a.EquityInvestment.Add(a.LoanAmount)
}

// ExpansionAcres returns the acreage added in the given year.
func (a *AssumptionSet) ExpansionAcres(year int) decimal.Decimal {
	total := decimal.Zero
	for _, e := range a.Expansions {
		if e.Year == year {
			total = total.Add(e.Acres)
		}
	}
	return total
}

// HasSecondaryProduct reports whether any harvest is routed to biochar conversion.
func (a *AssumptionSet) HasSecondaryProduct() bool {
	return a.FeedstockAllocation.IsPositive() && a.BiocharYieldRatio.IsPositive()
}

var hundred = decimal.NewFromInt(100)

func pct(d decimal.Decimal) string { return d.Mul(hundred).StringFixed(1) + "%" }

// KeyAssumptions lists the modeling assumptions rendered alongside a report.
func (a *AssumptionSet) KeyAssumptions() []string {
	lines := []string{
		fmt.Sprintf("Land: %s acres, production starts in year %d", a.Acres.StringFixed(1), a.MaturityYears),
		fmt.Sprintf("Yield: %s t/acre x %s harvests/yr at %s utilization", a.YieldPerAcre.StringFixed(1), a.HarvestsPerYear.StringFixed(1), pct(a.CapacityUtilization)),
		fmt.Sprintf("Sales growth %s, price inflation %s, cost inflation %s annually", pct(a.SalesGrowthRate), pct(a.RevenueInflation), pct(a.CostInflation)),
	}
	if a.HasSecondaryProduct() {
		capacity := "unlimited"
		if !a.ProcessingCapacity.Unbounded {
			capacity = a.ProcessingCapacity.Tons.StringFixed(1) + " t/yr"
		}
		lines = append(lines, fmt.Sprintf("Biochar: %s of harvest to kiln at %s yield, processing capacity %s", pct(a.FeedstockAllocation), pct(a.BiocharYieldRatio), capacity))
	}
	if a.LoanAmount.IsPositive() {
		lines = append(lines, fmt.Sprintf("Loan: $%s at %s over %d years", a.LoanAmount.StringFixed(2), pct(a.LoanInterestRate), a.LoanTermYears))
	}
	lines = append(lines,
		fmt.Sprintf("Tax %s on positive EBT only (no loss carryforward)", pct(a.TaxRate)),
		fmt.Sprintf("Straight-line depreciation %s of initial capex per year", pct(a.DepreciationRate)),
		fmt.Sprintf("Discount rate %s, year-0 cash flow basis: %s", pct(a.DiscountRate), a.CashFlowBasis),
	)
	for _, e := range a.Expansions {
		lines = append(lines, fmt.Sprintf("Land expansion: +%s acres in year %d", e.Acres.StringFixed(1), e.Year))
	}
	return lines
}
