package calculation

import (
	"github.com/cdimurro/bamboo-forecast-app/internal/domain"
	"github.com/shopspring/decimal"
)

// GenerateProjection runs the year recurrence over the horizon and returns
// the table for years 0..ProjectionYears. The caller guarantees a validated
// assumption set.
func GenerateProjection(a *domain.AssumptionSet) domain.ProjectionTable {
	table := make(domain.ProjectionTable, 0, a.ProjectionYears+1)

	year0 := initialYear(a)
	table = append(table, year0)

	depreciation := a.InitialCapex().Mul(a.DepreciationRate)
	st := runningState{
		Loan:           NewLoanState(a),
		LandAcres:      a.Acres,
		CumulativeCash: year0.CumulativeCash,
	}

	for year := 1; year <= a.ProjectionYears; year++ {
		var rec domain.YearRecord
		rec, st = buildYear(year, a, depreciation, st)
		table = append(table, rec)
	}
	return table
}

// initialYear synthesizes the year-0 record: no operations, initial capex,
// and the opening cash position on the configured basis.
func initialYear(a *domain.AssumptionSet) domain.YearRecord {
	position := InitialCashPosition(a)
	return domain.YearRecord{
		Year:              0,
		LandAcres:         a.Acres,
		Capex:             a.InitialCapex(),
		RemainingDebt:     a.LoanAmount,
		OperatingCashFlow: position,
		FreeCashFlow:      position,
		CumulativeCash:    position,
	}
}

// InitialCashPosition is the year-0 free cash flow.
//
// On BasisFinancing it is (equity + loan) - (capex + working capital +
// regulatory cost + origination fee). On BasisEquity it is the negated
// equity contribution.
func InitialCashPosition(a *domain.AssumptionSet) decimal.Decimal {
	if a.CashFlowBasis == domain.BasisEquity {
		return a.EquityInvestment.Neg()
	}
	return a.FinancingInflow().Sub(a.InitialOutlay())
}
