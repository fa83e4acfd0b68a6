package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/retirecast/retirecast/internal/domain"
)

// Axis names for RateSensitivity.Varied.
const (
	VariedInvestmentReturn = "investment_return"
	VariedInflation        = "inflation"
)

// RateSensitivity is one re-run of the projection with a single rate
// perturbed from the base plan.
type RateSensitivity struct {
	Varied                  string          `json:"varied"`
	InvestmentReturnRatePct decimal.Decimal `json:"investment_return_rate_pct"`
	InflationRatePct        decimal.Decimal `json:"inflation_rate_pct"`
	TerminalBalance         decimal.Decimal `json:"terminal_balance"`
	DepletionAge            *int            `json:"depletion_age,omitempty"`
}

// DefaultRateOffsets are the percentage-point perturbations applied per axis
// when the caller does not supply its own.
var DefaultRateOffsets = []decimal.Decimal{
	decimal.NewFromInt(-2),
	decimal.NewFromInt(-1),
	decimal.Zero,
	decimal.NewFromInt(1),
	decimal.NewFromInt(2),
}

// SweepRates re-runs the projection across perturbed investment-return and
// inflation rates, varying one axis at a time while the other stays at its
// base value. The result feeds comparative tables and charts.
func (e *Engine) SweepRates(params *domain.PlanningParameters, offsets []decimal.Decimal) ([]RateSensitivity, error) {
	if len(offsets) == 0 {
		offsets = DefaultRateOffsets
	}
	results := make([]RateSensitivity, 0, 2*len(offsets))

	for _, offset := range offsets {
		perturbed := *params
		perturbed.InvestmentReturnRatePct = params.InvestmentReturnRatePct.Add(offset)
		projection, err := e.Project(&perturbed)
		if err != nil {
			return nil, fmt.Errorf("sweep at investment return %s%%: %w", perturbed.InvestmentReturnRatePct, err)
		}
		results = append(results, RateSensitivity{
			Varied:                  VariedInvestmentReturn,
			InvestmentReturnRatePct: perturbed.InvestmentReturnRatePct,
			InflationRatePct:        perturbed.InflationRatePct,
			TerminalBalance:         projection.Summary.TerminalBalance,
			DepletionAge:            projection.Summary.DepletionAge,
		})
	}

	for _, offset := range offsets {
		perturbed := *params
		perturbed.InflationRatePct = params.InflationRatePct.Add(offset)
		projection, err := e.Project(&perturbed)
		if err != nil {
			return nil, fmt.Errorf("sweep at inflation %s%%: %w", perturbed.InflationRatePct, err)
		}
		results = append(results, RateSensitivity{
			Varied:                  VariedInflation,
			InvestmentReturnRatePct: perturbed.InvestmentReturnRatePct,
			InflationRatePct:        perturbed.InflationRatePct,
			TerminalBalance:         projection.Summary.TerminalBalance,
			DepletionAge:            projection.Summary.DepletionAge,
		})
	}

	return results, nil
}
