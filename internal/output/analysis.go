package output

import (
	"fmt"

	"github.com/cdimurro/bamboo-forecast-app/internal/domain"
	pkgdecimal "github.com/cdimurro/bamboo-forecast-app/pkg/decimal"
)

// Highlights are the headline figures every human-facing report leads with.
type Highlights struct {
	NPV            string
	IRR            string
	DiscountRate   string
	BreakEven      string
	Payback        string
	PeakFunding    string
	InitialCapex   string
	InitialOutlay  string
	AnnualDebtPmt  string
	TotalRevenue   string
	TotalNetIncome string
	EndingCash     string
	CostPerTon     string
	Verdict        string
}

// AnalyzeProjection derives the display highlights for a projection.
func AnalyzeProjection(result *domain.ProjectionResult) Highlights {
	v, s := result.Valuation, result.Summary
	tons := s.Totals.BambooTons.Add(s.Totals.BiocharTons)

	h := Highlights{
		NPV:            FormatCurrency(v.NPV),
		IRR:            FormatIRR(v.IRR),
		DiscountRate:   FormatRate(v.DiscountRate),
		BreakEven:      FormatYear(s.BreakEvenYear),
		Payback:        FormatPayback(s.Payback),
		PeakFunding:    FormatCurrency(s.PeakFunding),
		InitialCapex:   FormatCurrency(s.InitialCapex),
		InitialOutlay:  FormatCurrency(s.InitialOutlay),
		AnnualDebtPmt:  FormatCurrency(s.AnnualDebtPmt),
		TotalRevenue:   FormatCurrency(s.Totals.TotalRevenue),
		TotalNetIncome: FormatCurrency(s.Totals.NetIncome),
		EndingCash:     FormatCurrency(s.Totals.CumulativeCash),
		CostPerTon:     pkgdecimal.NewMoneyFromDecimal(s.Totals.OperatingCost).PerUnit(tons).Format(),
	}

	switch {
	case v.NPV.IsPositive() && v.IRR.Defined:
		h.Verdict = fmt.Sprintf("Creates value: NPV %s at %s, IRR %s", h.NPV, h.DiscountRate, h.IRR)
	case v.NPV.IsPositive():
		h.Verdict = fmt.Sprintf("Positive NPV %s at %s; IRR undefined", h.NPV, h.DiscountRate)
	default:
		h.Verdict = fmt.Sprintf("Does not clear the %s hurdle: NPV %s", h.DiscountRate, h.NPV)
	}
	return h
}
