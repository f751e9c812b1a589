package output

import (
	"github.com/cdimurro/bamboo-forecast-app/internal/domain"
	"github.com/shopspring/decimal"
)

type columnKind int

const (
	kindMoney columnKind = iota
	kindTons
	kindAcres
)

// column is one projected series, shared by every tabular formatter.
type column struct {
	Header string
	Short  string // console/PDF header
	Kind   columnKind
	Value  func(r domain.YearRecord) decimal.Decimal
}

var yearColumns = []column{
	{"Land Acres", "Acres", kindAcres, func(r domain.YearRecord) decimal.Decimal { return r.LandAcres }},
	{"Capacity Tons", "Capacity", kindTons, func(r domain.YearRecord) decimal.Decimal { return r.CapacityTons }},
	{"Bamboo Tons", "Bamboo t", kindTons, func(r domain.YearRecord) decimal.Decimal { return r.BambooTons }},
	{"Biochar Tons", "Biochar t", kindTons, func(r domain.YearRecord) decimal.Decimal { return r.BiocharTons }},
	{"Feedstock Tons", "Feedstock t", kindTons, func(r domain.YearRecord) decimal.Decimal { return r.FeedstockTons }},
	{"Bamboo Revenue", "Bamboo $", kindMoney, func(r domain.YearRecord) decimal.Decimal { return r.BambooRevenue }},
	{"Biochar Revenue", "Biochar $", kindMoney, func(r domain.YearRecord) decimal.Decimal { return r.BiocharRevenue }},
	{"Carbon Credit Revenue", "Carbon $", kindMoney, func(r domain.YearRecord) decimal.Decimal { return r.CarbonCreditRevenue }},
	{"Byproduct Revenue", "Byproduct $", kindMoney, func(r domain.YearRecord) decimal.Decimal { return r.ByproductRevenue }},
	{"Total Revenue", "Revenue", kindMoney, func(r domain.YearRecord) decimal.Decimal { return r.TotalRevenue }},
	{"Fixed Costs", "Fixed", kindMoney, func(r domain.YearRecord) decimal.Decimal { return r.Costs.Fixed }},
	{"Land Costs", "Land", kindMoney, func(r domain.YearRecord) decimal.Decimal { return r.Costs.LandBased }},
	{"Harvest Costs", "Harvest", kindMoney, func(r domain.YearRecord) decimal.Decimal { return r.Costs.Harvest }},
	{"Conversion Costs", "Conversion", kindMoney, func(r domain.YearRecord) decimal.Decimal { return r.Costs.Conversion }},
	{"Transport Costs", "Transport", kindMoney, func(r domain.YearRecord) decimal.Decimal { return r.Costs.Transport }},
	{"Marketing Costs", "Marketing", kindMoney, func(r domain.YearRecord) decimal.Decimal { return r.Costs.Marketing }},
	{"Operating Costs", "OpEx", kindMoney, func(r domain.YearRecord) decimal.Decimal { return r.OperatingCost }},
	{"EBITDA", "EBITDA", kindMoney, func(r domain.YearRecord) decimal.Decimal { return r.EBITDA }},
	{"Depreciation", "Depr.", kindMoney, func(r domain.YearRecord) decimal.Decimal { return r.Depreciation }},
	{"EBIT", "EBIT", kindMoney, func(r domain.YearRecord) decimal.Decimal { return r.EBIT }},
	{"Interest", "Interest", kindMoney, func(r domain.YearRecord) decimal.Decimal { return r.Interest }},
	{"EBT", "EBT", kindMoney, func(r domain.YearRecord) decimal.Decimal { return r.EBT }},
	{"Taxes", "Taxes", kindMoney, func(r domain.YearRecord) decimal.Decimal { return r.Taxes }},
	{"Net Income", "Net Income", kindMoney, func(r domain.YearRecord) decimal.Decimal { return r.NetIncome }},
	{"Operating Cash Flow", "CFO", kindMoney, func(r domain.YearRecord) decimal.Decimal { return r.OperatingCashFlow }},
	{"Capex", "Capex", kindMoney, func(r domain.YearRecord) decimal.Decimal { return r.Capex }},
	{"Principal Payment", "Principal", kindMoney, func(r domain.YearRecord) decimal.Decimal { return r.PrincipalPayment }},
	{"Debt Service", "Debt Svc", kindMoney, func(r domain.YearRecord) decimal.Decimal { return r.DebtService }},
	{"Remaining Debt", "Debt", kindMoney, func(r domain.YearRecord) decimal.Decimal { return r.RemainingDebt }},
	{"Free Cash Flow", "FCF", kindMoney, func(r domain.YearRecord) decimal.Decimal { return r.FreeCashFlow }},
	{"Cumulative Cash", "Cumulative", kindMoney, func(r domain.YearRecord) decimal.Decimal { return r.CumulativeCash }},
}

// consoleColumns is the narrower set that fits a terminal or a PDF page.
var consoleColumns = pick("Bamboo Tons", "Biochar Tons", "Total Revenue", "Operating Costs", "EBITDA",
	"Net Income", "Debt Service", "Free Cash Flow", "Cumulative Cash")

func pick(headers ...string) []column {
	out := make([]column, 0, len(headers))
	for _, h := range headers {
		for _, c := range yearColumns {
			if c.Header == h {
				out = append(out, c)
			}
		}
	}
	return out
}

// display renders a cell for human-facing output.
func (c column) display(r domain.YearRecord) string {
	v := c.Value(r)
	switch c.Kind {
	case kindTons, kindAcres:
		return FormatQuantity(v)
	default:
		return FormatCurrency(v)
	}
}
