package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func validRentParams() PlanningParameters {
	return PlanningParameters{
		CurrentAge:              45,
		RetirementAge:           65,
		ExpectedLifespan:        95,
		MonthlyExpense:          decimal.NewFromInt(25000),
		AnnualSalary:            decimal.NewFromInt(800000),
		InvestableAssets:        decimal.NewFromInt(500000),
		InvestmentReturnRatePct: decimal.NewFromFloat(4.0),
		InflationRatePct:        decimal.NewFromFloat(2.0),
		Housing: HousingPlan{
			Mode:        HousingRent,
			MonthlyRent: decimal.NewFromInt(18000),
		},
	}
}

func TestPlanningParametersValidate(t *testing.T) {
	p := validRentParams()
	assert.NoError(t, p.Validate())
}

func TestPlanningParametersValidateAgeOrdering(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*PlanningParameters)
	}{
		{"zero current age", func(p *PlanningParameters) { p.CurrentAge = 0 }},
		{"retirement equals current", func(p *PlanningParameters) { p.RetirementAge = p.CurrentAge }},
		{"retirement before current", func(p *PlanningParameters) { p.RetirementAge = p.CurrentAge - 5 }},
		{"lifespan before retirement", func(p *PlanningParameters) { p.ExpectedLifespan = p.RetirementAge - 1 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validRentParams()
			tt.mutate(&p)
			assert.Error(t, p.Validate())
		})
	}
}

func TestPlanningParametersValidateRetirementAtLifespan(t *testing.T) {
	// retirement_age == expected_lifespan is allowed.
	p := validRentParams()
	p.RetirementAge = 95
	p.ExpectedLifespan = 95
	assert.NoError(t, p.Validate())
}

func TestHousingPlanValidate(t *testing.T) {
	p := validRentParams()
	p.Housing = HousingPlan{
		Mode:          HousingBuy,
		PurchaseAge:   50,
		HomePrice:     decimal.NewFromInt(12000000),
		DownPayment:   decimal.NewFromInt(3000000),
		LoanAmount:    decimal.NewFromInt(9000000),
		LoanTermYears: 30,
	}
	assert.NoError(t, p.Validate(), "zero loan rate is a valid degenerate case")

	p.Housing.LoanTermYears = 0
	assert.Error(t, p.Validate(), "a loan needs a term")

	p.Housing.LoanTermYears = 30
	p.Housing.Mode = "own"
	assert.Error(t, p.Validate(), "unknown housing mode")
}

func TestPlanningParametersUnmarshalYAML(t *testing.T) {
	doc := `current_age: 40
retirement_age: 60
expected_lifespan: 100
monthly_expense: 30000
annual_salary: 1000000
salary_growth_rate_pct: 2.5
housing:
  mode: buy
  purchase_age: 48
  down_payment: 2000000
  loan_amount: 8000000
  loan_term_years: 20
one_time_expenses:
  - age: 55
    amount: 120000.5
`
	var p PlanningParameters
	require.NoError(t, yaml.Unmarshal([]byte(doc), &p))

	assert.Equal(t, 40, p.CurrentAge)
	assert.True(t, p.MonthlyExpense.Equal(decimal.NewFromInt(30000)))
	assert.True(t, p.SalaryGrowthRatePct.Equal(decimal.NewFromFloat(2.5)))
	assert.Equal(t, HousingBuy, p.Housing.Mode)
	assert.Equal(t, 20, p.Housing.LoanTermYears)
	assert.True(t, p.Housing.LoanAmount.Equal(decimal.NewFromInt(8000000)))
	require.Len(t, p.OneTimeExpenses, 1)
	assert.True(t, p.OneTimeExpenses[0].Amount.Equal(decimal.NewFromFloat(120000.5)))
}

func TestValidateExtremeRates(t *testing.T) {
	p := validRentParams()
	p.InflationRatePct = decimal.NewFromInt(-100)
	assert.Error(t, p.Validate(), "inflation at -100% would zero the price level")

	p = validRentParams()
	p.InvestmentReturnRatePct = decimal.NewFromInt(-100)
	assert.Error(t, p.Validate())
}
