package calculation

import (
	"github.com/shopspring/decimal"
)

var (
	one     = decimal.NewFromInt(1)
	twelve  = decimal.NewFromInt(12)
	hundred = decimal.NewFromInt(100)
)

// LevelMortgagePayment returns the fixed monthly payment that fully amortizes
// loanAmount over termYears at annualRatePct, per the standard annuity
// formula. A zero rate degenerates to a straight division across the payment
// count. No loan means no payment.
func LevelMortgagePayment(loanAmount decimal.Decimal, termYears int, annualRatePct decimal.Decimal) decimal.Decimal {
	if !loanAmount.IsPositive() || termYears <= 0 {
		return decimal.Zero
	}
	payments := decimal.NewFromInt(int64(termYears) * 12)
	if annualRatePct.IsZero() {
		return loanAmount.Div(payments)
	}
	monthlyRate := annualRatePct.Div(hundred).Div(twelve)
	// loan * r * (1+r)^n / ((1+r)^n - 1), the negative-exponent form
	// rearranged so the compounding exponent stays a positive integer.
	compound := one.Add(monthlyRate).Pow(payments)
	return loanAmount.Mul(monthlyRate).Mul(compound).Div(compound.Sub(one))
}
