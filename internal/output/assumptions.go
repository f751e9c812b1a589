package output

import (
	"github.com/cdimurro/bamboo-forecast-app/internal/domain"
	"github.com/shopspring/decimal"
)

// DefaultAssumptions lists the modeling conventions that hold for every
// projection. They are rendered after the scenario's own key assumptions.
var DefaultAssumptions = []string{
	"Annual periods; all flows occur at year end, year 0 is the investment date",
	"Production is zero before the maturity year, then limited by demand and harvest capacity",
	"Free cash flow = net income + depreciation - capex - loan principal",
	"Losses are not carried forward; taxes apply to positive EBT only",
}

// reportAssumptions combines scenario-specific lines with the defaults.
func reportAssumptions(result *domain.ProjectionResult) []string {
	out := make([]string, 0, len(result.Assumptions)+len(DefaultAssumptions))
	out = append(out, result.Assumptions...)
	return append(out, DefaultAssumptions...)
}

var decimalHundred = decimal.NewFromInt(100)
