package calculation

import (
	"github.com/cdimurro/bamboo-forecast-app/internal/domain"
	"github.com/shopspring/decimal"
)

var one = decimal.NewFromInt(1)

// AnnuityPayment returns the fixed annual payment that fully amortizes
// principal over termYears at annualRate. A zero principal, term or rate
// yields zero (no amortizing payment).
func AnnuityPayment(principal, annualRate decimal.Decimal, termYears int) decimal.Decimal {
	if principal.IsZero() || termYears <= 0 || annualRate.IsZero() {
		return decimal.Zero
	}
	growth := compound(annualRate, termYears)
	return principal.Mul(annualRate.Mul(growth)).Div(growth.Sub(one))
}

// SplitPayment divides one year's payment into interest and principal.
// Principal is clamped to [0, balance] so a final-year payoff never drives
// the balance negative.
func SplitPayment(balance, annualRate, fixedPayment decimal.Decimal) (interest, principal, actual decimal.Decimal) {
	interest = balance.Mul(annualRate)
	principal = fixedPayment.Sub(interest)
	if principal.GreaterThan(balance) {
		principal = balance
	}
	if principal.IsNegative() {
		principal = decimal.Zero
	}
	return interest, principal, interest.Add(principal)
}

// LoanState is the engine-internal debt position carried between years.
type LoanState struct {
	Balance   decimal.Decimal
	Payment   decimal.Decimal
	Rate      decimal.Decimal
	TermYears int
}

// NewLoanState draws the financed amount and fixes the annual payment.
func NewLoanState(a *domain.AssumptionSet) LoanState {
	return LoanState{
		Balance:   a.LoanAmount,
		Payment:   AnnuityPayment(a.LoanAmount, a.LoanInterestRate, a.LoanTermYears),
		Rate:      a.LoanInterestRate,
		TermYears: a.LoanTermYears,
	}
}

// LoanService is one year of debt service.
type LoanService struct {
	Interest  decimal.Decimal
	Principal decimal.Decimal
	Payment   decimal.Decimal
}

// Service computes the given year's debt service against the pre-year
// balance and returns the updated state. Past the term or once repaid every
// component is zero. In the final term year any residual balance is swept,
// so a zero-rate loan (zero annuity payment) is repaid as a bullet at term.
func (l LoanState) Service(year int) (LoanService, LoanState) {
	if year > l.TermYears || !l.Balance.IsPositive() {
		return LoanService{Interest: decimal.Zero, Principal: decimal.Zero, Payment: decimal.Zero}, l
	}
	interest, principal, payment := SplitPayment(l.Balance, l.Rate, l.Payment)
	if year == l.TermYears {
		principal = l.Balance
		payment = interest.Add(principal)
	}
	next := l
	next.Balance = l.Balance.Sub(principal)
	if next.Balance.IsNegative() {
		next.Balance = decimal.Zero
	}
	return LoanService{Interest: interest, Principal: principal, Payment: payment}, next
}

// compound returns (1+rate)^n for n >= 0.
func compound(rate decimal.Decimal, n int) decimal.Decimal {
	if n <= 0 {
		return one
	}
	return one.Add(rate).Pow(decimal.NewFromInt(int64(n)))
}
