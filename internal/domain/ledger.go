package domain

import (
	"github.com/shopspring/decimal"
)

// LedgerRow is one year of the projection. Income and expense figures are
// floored to whole currency units; CumulativeBalance keeps full precision so
// that consecutive rows chain exactly.
type LedgerRow struct {
	Age int `json:"age"`

	// Income
	SalaryIncome     decimal.Decimal `json:"salary_income"`
	InvestmentIncome decimal.Decimal `json:"investment_income"`
	PensionIncome    decimal.Decimal `json:"pension_income"`
	TotalIncome      decimal.Decimal `json:"total_income"`

	// Expenses. LivingExpense and HousingExpense are shown in today's money;
	// TotalExpense carries the inflation adjustment for the year.
	LivingExpense  decimal.Decimal `json:"living_expense"`
	HousingExpense decimal.Decimal `json:"housing_expense"`
	OneTimeExpense decimal.Decimal `json:"one_time_expense"`
	TotalExpense   decimal.Decimal `json:"total_expense"`

	// Balance
	AnnualBalance     decimal.Decimal `json:"annual_balance"`
	CumulativeBalance decimal.Decimal `json:"cumulative_balance"`
}

// ProjectionSummary provides the headline metrics of a projection.
type ProjectionSummary struct {
	// MonthlyMortgagePayment is the level payment for buy-mode plans with a
	// loan, zero otherwise.
	MonthlyMortgagePayment decimal.Decimal `json:"monthly_mortgage_payment"`
	TerminalBalance        decimal.Decimal `json:"terminal_balance"`
	// DepletionAge is the first age whose cumulative balance is negative,
	// nil when the balance never goes negative.
	DepletionAge   *int            `json:"depletion_age,omitempty"`
	PeakBalance    decimal.Decimal `json:"peak_balance"`
	PeakBalanceAge int             `json:"peak_balance_age"`
}

// Projection is the full result of one engine run: one row per age from
// current age through expected lifespan, ascending, plus summary metrics.
type Projection struct {
	Rows    []LedgerRow       `json:"rows"`
	Summary ProjectionSummary `json:"summary"`
}
