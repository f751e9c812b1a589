package calculation

import (
	"math"

	"github.com/cdimurro/bamboo-forecast-app/internal/domain"
	"github.com/shopspring/decimal"
)

// IRR solver limits.
const (
	irrInitialGuess  = 0.10
	irrTolerance     = 1e-9
	irrMaxNewton     = 100
	irrMaxBisection  = 200
	irrLowerBound    = -0.9999
	irrUpperBound    = 1e6
	irrBracketPoints = 512
)

// NPV discounts cashFlows[t] by (1+rate)^t; year 0 is undiscounted.
func NPV(rate decimal.Decimal, cashFlows []decimal.Decimal) decimal.Decimal {
	base := one.Add(rate)
	factor := one
	total := decimal.Zero
	for t, cf := range cashFlows {
		if t > 0 {
			factor = factor.Mul(base)
		}
		if factor.Equal(one) {
			total = total.Add(cf)
			continue
		}
		total = total.Add(cf.Div(factor))
	}
	return total
}

// IRR finds the rate at which NPV is zero. Sequences without both a
// positive and a negative flow, or for which neither Newton's method nor
// bisection converges within their iteration caps, yield an undefined IRR.
func IRR(cashFlows []decimal.Decimal) domain.IRR {
	flows := make([]float64, len(cashFlows))
	var pos, neg bool
	for i, cf := range cashFlows {
		flows[i] = cf.InexactFloat64()
		pos = pos || flows[i] > 0
		neg = neg || flows[i] < 0
	}
	if !pos || !neg {
		return domain.UndefinedIRR()
	}
	if r, ok := newtonIRR(flows); ok {
		return domain.DefinedIRR(decimal.NewFromFloat(r))
	}
	if r, ok := bisectIRR(flows); ok {
		return domain.DefinedIRR(decimal.NewFromFloat(r))
	}
	return domain.UndefinedIRR()
}

// Valuate computes both headline metrics for a table.
func Valuate(table domain.ProjectionTable, discountRate decimal.Decimal) domain.ValuationResult {
	flows := table.FreeCashFlows()
	return domain.ValuationResult{
		DiscountRate: discountRate,
		NPV:          NPV(discountRate, flows),
		IRR:          IRR(flows),
	}
}

// npvFloat returns NPV and its derivative with respect to rate.
func npvFloat(rate float64, flows []float64) (value, deriv float64) {
	base := 1 + rate
	for t, cf := range flows {
		ft := float64(t)
		d := math.Pow(base, ft)
		value += cf / d
		if t > 0 {
			deriv -= ft * cf / (d * base)
		}
	}
	return value, deriv
}

// tolerance scales with the magnitude of the flows so large projects and
// small test sequences converge alike.
func tolerance(flows []float64) float64 {
	scale := 0.0
	for _, cf := range flows {
		scale = math.Max(scale, math.Abs(cf))
	}
	return math.Max(scale, 1) * irrTolerance
}

func newtonIRR(flows []float64) (float64, bool) {
	tol := tolerance(flows)
	r := irrInitialGuess
	for i := 0; i < irrMaxNewton; i++ {
		v, d := npvFloat(r, flows)
		if math.Abs(v) < tol {
			return r, true
		}
		if d == 0 || math.IsNaN(d) || math.IsInf(d, 0) {
			return 0, false
		}
		next := r - v/d
		if next <= irrLowerBound || next > irrUpperBound || math.IsNaN(next) {
			return 0, false
		}
		r = next
	}
	return 0, false
}

// bisectIRR scans for the first sign change of NPV above the lower bound
// and bisects inside it. Scan points are spaced geometrically in 1+rate.
func bisectIRR(flows []float64) (float64, bool) {
	tol := tolerance(flows)
	lo := irrLowerBound
	vlo, _ := npvFloat(lo, flows)
	growth := math.Pow((1+irrUpperBound)/(1+irrLowerBound), 1.0/irrBracketPoints)
	hi := math.NaN()
	for i := 1; i <= irrBracketPoints; i++ {
		x := (1+irrLowerBound)*math.Pow(growth, float64(i)) - 1
		vx, _ := npvFloat(x, flows)
		if math.Signbit(vx) != math.Signbit(vlo) {
			hi = x
			break
		}
		lo, vlo = x, vx
	}
	if math.IsNaN(hi) {
		return 0, false
	}
	for i := 0; i < irrMaxBisection; i++ {
		mid := (lo + hi) / 2
		vm, _ := npvFloat(mid, flows)
		if math.Abs(vm) < tol {
			return mid, true
		}
		if math.Signbit(vm) == math.Signbit(vlo) {
			lo, vlo = mid, vm
		} else {
			hi = mid
		}
	}
	return 0, false
}
