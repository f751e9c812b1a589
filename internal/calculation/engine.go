package calculation

import (
	"context"
	"errors"
	"fmt"

	"github.com/cdimurro/bamboo-forecast-app/internal/domain"
)

// ErrInvalidHorizon is returned when the projection horizon is shorter than one year.
var ErrInvalidHorizon = errors.New("projection horizon must be at least one year")

// CalculationEngine runs bamboo and biochar projections.
type CalculationEngine struct {
	Logger Logger
}

// NewCalculationEngine creates a new calculation engine with a no-op logger.
func NewCalculationEngine() *CalculationEngine {
	return &CalculationEngine{Logger: NopLogger{}}
}

// SetLogger sets the logger for the calculation engine. If nil is provided, a no-op logger is used.
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

// Run projects the assumption set over its horizon and values the result.
// The assumption set is expected to have passed config validation; Run only
// re-checks what would make the recurrence meaningless.
func (ce *CalculationEngine) Run(ctx context.Context, a *domain.AssumptionSet) (*domain.ProjectionResult, error) {
	if a == nil {
		return nil, fmt.Errorf("assumption set is nil")
	}
	if a.ProjectionYears < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidHorizon, a.ProjectionYears)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ce.Logger.Infof("projecting %q over %d years (%s basis)", a.Name, a.ProjectionYears, a.CashFlowBasis)

	table := GenerateProjection(a)
	for _, rec := range table {
		ce.Logger.Debugf("year %d: revenue=%s net_income=%s fcf=%s cumulative=%s debt=%s",
			rec.Year, rec.TotalRevenue.StringFixed(2), rec.NetIncome.StringFixed(2),
			rec.FreeCashFlow.StringFixed(2), rec.CumulativeCash.StringFixed(2), rec.RemainingDebt.StringFixed(2))
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	valuation := Valuate(table, a.DiscountRate)
	if valuation.IRR.Defined {
		ce.Logger.Infof("NPV at %s: %s, IRR %s%%", a.DiscountRate.String(), valuation.NPV.StringFixed(2), valuation.IRR.Percent().StringFixed(2))
	} else {
		ce.Logger.Warnf("IRR undefined for %q: cash flows have no usable root", a.Name)
	}

	return &domain.ProjectionResult{
		Name:        a.Name,
		Assumptions: a.KeyAssumptions(),
		Table:       table,
		Valuation:   valuation,
		Summary:     Summarize(a, table),
	}, nil
}
