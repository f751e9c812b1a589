package domain

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// CostBreakdown splits a year's operating cost into its buckets.
type CostBreakdown struct {
	Fixed      decimal.Decimal `json:"fixed"`
	LandBased  decimal.Decimal `json:"land_based"`
	Harvest    decimal.Decimal `json:"harvest"`
	Conversion decimal.Decimal `json:"conversion"`
	Transport  decimal.Decimal `json:"transport"`
	Marketing  decimal.Decimal `json:"marketing"`
}

// Total sums all cost buckets.
func (c CostBreakdown) Total() decimal.Decimal {
	return c.Fixed.Add(c.LandBased).Add(c.Harvest).Add(c.Conversion).Add(c.Transport).Add(c.Marketing)
}

// YearRecord is one row of the projection. Year 0 carries only the initial
// investment and financing position.
type YearRecord struct {
	Year int `json:"year"`

	// Production
	LandAcres     decimal.Decimal `json:"land_acres"`
	CapacityTons  decimal.Decimal `json:"capacity_tons"` // raw harvest ceiling
	BambooTons    decimal.Decimal `json:"bamboo_tons"`
	BiocharTons   decimal.Decimal `json:"biochar_tons"`
	FeedstockTons decimal.Decimal `json:"feedstock_tons"`

	// Revenue
	BambooRevenue       decimal.Decimal `json:"bamboo_revenue"`
	BiocharRevenue      decimal.Decimal `json:"biochar_revenue"`
	CarbonCreditRevenue decimal.Decimal `json:"carbon_credit_revenue"`
	ByproductRevenue    decimal.Decimal `json:"byproduct_revenue"`
	TotalRevenue        decimal.Decimal `json:"total_revenue"`

	// Income statement
	Costs         CostBreakdown   `json:"costs"`
	OperatingCost decimal.Decimal `json:"operating_cost"`
	EBITDA        decimal.Decimal `json:"ebitda"`
	Depreciation  decimal.Decimal `json:"depreciation"`
	EBIT          decimal.Decimal `json:"ebit"`
	Interest      decimal.Decimal `json:"interest"`
	EBT           decimal.Decimal `json:"ebt"`
	Taxes         decimal.Decimal `json:"taxes"`
	NetIncome     decimal.Decimal `json:"net_income"`

	// Cash flow
	OperatingCashFlow decimal.Decimal `json:"operating_cash_flow"`
	Capex             decimal.Decimal `json:"capex"`
	PrincipalPayment  decimal.Decimal `json:"principal_payment"`
	DebtService       decimal.Decimal `json:"debt_service"`
	RemainingDebt     decimal.Decimal `json:"remaining_debt"`
	FreeCashFlow      decimal.Decimal `json:"free_cash_flow"`
	CumulativeCash    decimal.Decimal `json:"cumulative_cash"`
}

// ProjectionTable is the ordered sequence of year records, index == year.
type ProjectionTable []YearRecord

// FreeCashFlows returns the free cash flow column in year order.
func (t ProjectionTable) FreeCashFlows() []decimal.Decimal {
	flows := make([]decimal.Decimal, len(t))
	for i, r := range t {
		flows[i] = r.FreeCashFlow
	}
	return flows
}

// Horizon is the last projected year.
func (t ProjectionTable) Horizon() int {
	if len(t) == 0 {
		return 0
	}
	return t[len(t)-1].Year
}

// IRR is an internal rate of return that may be undefined when the cash flow
// sequence has no real root or the solver does not converge.
type IRR struct {
	Rate    decimal.Decimal // fraction, e.g. 0.12
	Defined bool
}

// UndefinedIRR is the result for sequences without a usable root.
func UndefinedIRR() IRR { return IRR{} }

// DefinedIRR wraps a solved rate.
func DefinedIRR(rate decimal.Decimal) IRR { return IRR{Rate: rate, Defined: true} }

// Percent returns the rate on a percentage scale (12.0 for 0.12).
func (i IRR) Percent() decimal.Decimal { return i.Rate.Mul(decimal.NewFromInt(100)) }

// MarshalJSON renders a percentage, or null when undefined.
func (i IRR) MarshalJSON() ([]byte, error) {
	if !i.Defined {
		return []byte("null"), nil
	}
	return json.Marshal(i.Percent().Round(4))
}

// ValuationResult holds the two headline metrics of a projection.
type ValuationResult struct {
	DiscountRate decimal.Decimal `json:"discount_rate"`
	NPV          decimal.Decimal `json:"npv"`
	IRR          IRR             `json:"irr_percent"`
}

// PaybackPeriod describes when cumulative cash first turns non-negative.
type PaybackPeriod struct {
	Reached bool `json:"reached"`
	// Year whose end (or interior) contains the crossing
	Year int `json:"year"`
	// Fraction (0..1] of Year elapsed at the crossing
	Fraction decimal.Decimal `json:"fraction_of_year"`
	// Years is the fractional payback time measured from year 0
	Years decimal.Decimal `json:"years"`
}

// ProjectionSummary carries derived, display-oriented figures.
type ProjectionSummary struct {
	// Totals sums flow columns across years 0..N; stock columns (land,
	// capacity, remaining debt, cumulative cash) hold end-of-horizon values.
	Totals        YearRecord      `json:"totals"`
	BreakEvenYear int             `json:"break_even_year"` // first year with positive net income, 0 if never
	Payback       PaybackPeriod   `json:"payback"`
	PeakFunding   decimal.Decimal `json:"peak_funding"` // most negative cumulative cash, 0 if never negative
	InitialCapex  decimal.Decimal `json:"initial_capex"`
	InitialOutlay decimal.Decimal `json:"initial_outlay"`
	AnnualDebtPmt decimal.Decimal `json:"annual_debt_payment"`
	CashFlowBasis CashFlowBasis   `json:"cash_flow_basis"`
}

// ProjectionResult is the terminal output of one engine run.
type ProjectionResult struct {
	Name        string            `json:"name"`
	Assumptions []string          `json:"assumptions"`
	Table       ProjectionTable   `json:"table"`
	Valuation   ValuationResult   `json:"valuation"`
	Summary     ProjectionSummary `json:"summary"`
}
