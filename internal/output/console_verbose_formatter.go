package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/cdimurro/bamboo-forecast-app/internal/domain"
)

// SummaryFormatter renders the investment summary: headline metrics,
// column totals and the assumptions behind them.
type SummaryFormatter struct{}

func (s SummaryFormatter) Name() string { return "summary" }

func (s SummaryFormatter) Format(result *domain.ProjectionResult) ([]byte, error) {
	var buf bytes.Buffer
	h := AnalyzeProjection(result)
	totals := result.Summary.Totals

	fmt.Fprintln(&buf, "=================================================================================")
	fmt.Fprintf(&buf, "BAMBOO & BIOCHAR INVESTMENT SUMMARY: %s\n", result.Name)
	fmt.Fprintln(&buf, "=================================================================================")
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "KEY ASSUMPTIONS:")
	for _, a := range reportAssumptions(result) {
		fmt.Fprintf(&buf, "• %s\n", a)
	}
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "VALUATION")
	fmt.Fprintln(&buf, strings.Repeat("-", 40))
	fmt.Fprintf(&buf, "  NPV @ %-8s %s\n", h.DiscountRate+":", h.NPV)
	fmt.Fprintf(&buf, "  IRR:            %s\n", h.IRR)
	fmt.Fprintf(&buf, "  Break-even:     %s\n", h.BreakEven)
	fmt.Fprintf(&buf, "  Payback:        %s\n", h.Payback)
	fmt.Fprintf(&buf, "  Peak funding:   %s\n", h.PeakFunding)
	fmt.Fprintf(&buf, "  %s\n", h.Verdict)
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "INVESTMENT & FINANCING")
	fmt.Fprintln(&buf, strings.Repeat("-", 40))
	fmt.Fprintf(&buf, "  Initial capex:       %s\n", h.InitialCapex)
	fmt.Fprintf(&buf, "  Initial outlay:      %s\n", h.InitialOutlay)
	fmt.Fprintf(&buf, "  Annual debt payment: %s\n", h.AnnualDebtPmt)
	fmt.Fprintf(&buf, "  Year-0 basis:        %s\n", result.Summary.CashFlowBasis)
	fmt.Fprintln(&buf)

	fmt.Fprintf(&buf, "TOTALS OVER %d YEARS\n", result.Table.Horizon())
	fmt.Fprintln(&buf, strings.Repeat("-", 40))
	fmt.Fprintf(&buf, "  Bamboo sold:         %s t\n", FormatQuantity(totals.BambooTons))
	fmt.Fprintf(&buf, "  Biochar sold:        %s t\n", FormatQuantity(totals.BiocharTons))
	fmt.Fprintf(&buf, "  Revenue:             %s\n", h.TotalRevenue)
	fmt.Fprintf(&buf, "  Operating costs:     %s (%s per ton sold)\n", FormatCurrency(totals.OperatingCost), h.CostPerTon)
	fmt.Fprintf(&buf, "  EBITDA:              %s\n", FormatCurrency(totals.EBITDA))
	fmt.Fprintf(&buf, "  Interest:            %s\n", FormatCurrency(totals.Interest))
	fmt.Fprintf(&buf, "  Taxes:               %s\n", FormatCurrency(totals.Taxes))
	fmt.Fprintf(&buf, "  Net income:          %s\n", h.TotalNetIncome)
	fmt.Fprintf(&buf, "  Ending cash:         %s\n", h.EndingCash)
	fmt.Fprintf(&buf, "  Ending debt:         %s\n", FormatCurrency(totals.RemainingDebt))
	return buf.Bytes(), nil
}
