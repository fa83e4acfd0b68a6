package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/retirecast/retirecast/internal/domain"
)

// InputParser handles parsing of plan files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads planning parameters from a YAML file
func (ip *InputParser) LoadFromFile(filename string) (*domain.PlanningParameters, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes and validates a YAML plan document
func (ip *InputParser) Parse(data []byte) (*domain.PlanningParameters, error) {
	var params domain.PlanningParameters
	if err := yaml.Unmarshal(data, &params); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateParameters(&params); err != nil {
		return nil, fmt.Errorf("plan validation failed: %w", err)
	}

	return &params, nil
}

// ValidateParameters validates the loaded plan. The engine re-checks its own
// hard preconditions; the extra bounds here catch obvious data-entry slips in
// plan files before they reach a projection.
func (ip *InputParser) ValidateParameters(params *domain.PlanningParameters) error {
	if err := params.Validate(); err != nil {
		return err
	}

	if params.ExpectedLifespan > 130 {
		return fmt.Errorf("expected lifespan %d is not plausible", params.ExpectedLifespan)
	}
	if params.SalaryGrowthRatePct.GreaterThan(decimal.NewFromInt(50)) {
		return fmt.Errorf("salary growth rate above 50%% is not plausible")
	}
	if params.InvestmentReturnRatePct.GreaterThan(decimal.NewFromInt(50)) {
		return fmt.Errorf("investment return rate above 50%% is not plausible")
	}
	if params.InflationRatePct.GreaterThan(decimal.NewFromInt(50)) {
		return fmt.Errorf("inflation rate above 50%% is not plausible")
	}

	if params.Housing.Mode == domain.HousingBuy {
		if err := ip.validateHomePurchase(&params.Housing); err != nil {
			return fmt.Errorf("home purchase validation failed: %w", err)
		}
	}

	// One-time expense entries are normalized by the engine, never rejected;
	// the interactive entry flow allows partial rows.
	return nil
}

func (ip *InputParser) validateHomePurchase(housing *domain.HousingPlan) error {
	if housing.HomePrice.IsNegative() {
		return fmt.Errorf("home price cannot be negative")
	}
	if housing.HomePrice.IsPositive() && housing.DownPayment.GreaterThan(housing.HomePrice) {
		return fmt.Errorf("down payment cannot exceed the home price")
	}
	if housing.LoanTermYears > 50 {
		return fmt.Errorf("loan term %d years is not plausible", housing.LoanTermYears)
	}
	if housing.LoanAnnualRatePct.GreaterThan(decimal.NewFromInt(30)) {
		return fmt.Errorf("loan rate above 30%% is not plausible")
	}
	return nil
}
