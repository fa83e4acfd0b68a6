package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/retirecast/retirecast/internal/domain"
)

// Engine produces annual cashflow projections. It holds no state between
// runs; concurrent Project calls on the same Engine are independent.
type Engine struct {
	Logger Logger
}

// NewEngine creates a projection engine with a no-op logger.
func NewEngine() *Engine {
	return &Engine{Logger: NopLogger{}}
}

// SetLogger sets the logger for the engine. If nil is provided, a no-op
// logger is used.
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = l
}

// Project computes the full year-by-year ledger for the given parameters.
// Parameters are validated before any row is produced; a validation failure
// is returned to the caller and nothing is computed. The returned rows cover
// every age from current age through expected lifespan, ascending.
func (e *Engine) Project(params *domain.PlanningParameters) (*domain.Projection, error) {
	if err := params.Validate(); err != nil {
		return nil, fmt.Errorf("invalid planning parameters: %w", err)
	}

	var monthlyPayment decimal.Decimal
	if params.Housing.Mode == domain.HousingBuy {
		monthlyPayment = LevelMortgagePayment(params.Housing.LoanAmount, params.Housing.LoanTermYears, params.Housing.LoanAnnualRatePct)
	}

	rows := e.generateLedger(params, monthlyPayment)
	e.Logger.Debugf("projected %d years, ages %d-%d", len(rows), params.CurrentAge, params.ExpectedLifespan)

	return &domain.Projection{
		Rows:    rows,
		Summary: summarize(rows, monthlyPayment),
	}, nil
}

func summarize(rows []domain.LedgerRow, monthlyPayment decimal.Decimal) domain.ProjectionSummary {
	summary := domain.ProjectionSummary{
		MonthlyMortgagePayment: monthlyPayment.Round(2),
	}
	for i, row := range rows {
		if i == 0 || row.CumulativeBalance.GreaterThan(summary.PeakBalance) {
			summary.PeakBalance = row.CumulativeBalance
			summary.PeakBalanceAge = row.Age
		}
		if summary.DepletionAge == nil && row.CumulativeBalance.IsNegative() {
			age := row.Age
			summary.DepletionAge = &age
		}
	}
	if len(rows) > 0 {
		summary.TerminalBalance = rows[len(rows)-1].CumulativeBalance
	}
	return summary
}
