package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/retirecast/retirecast/internal/domain"
)

const rentPlanYAML = `current_age: 40
retirement_age: 60
expected_lifespan: 100
monthly_expense: 30000
annual_salary: 1000000
salary_growth_rate_pct: 2.0
retirement_pension_per_month: 20000
investable_assets: 1000000
investment_return_rate_pct: 5.0
inflation_rate_pct: 2.0
housing:
  mode: rent
  monthly_rent: 20000
one_time_expenses:
  - age: 50
    amount: 500000
  - age: 50
    amount: 200000
`

const buyPlanYAML = `current_age: 40
retirement_age: 60
expected_lifespan: 100
monthly_expense: 30000
annual_salary: 1000000
investable_assets: 1000000
investment_return_rate_pct: 5.0
inflation_rate_pct: 2.0
housing:
  mode: buy
  purchase_age: 48
  home_price: 15000000
  down_payment: 4500000
  loan_amount: 10500000
  loan_term_years: 30
  loan_annual_rate_pct: 3.0
  rent_before_purchase: 15000
`

func writeTempPlan(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "plan.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadFromFileRentPlan(t *testing.T) {
	parser := NewInputParser()
	params, err := parser.LoadFromFile(writeTempPlan(t, rentPlanYAML))
	require.NoError(t, err)

	assert.Equal(t, 40, params.CurrentAge)
	assert.Equal(t, 60, params.RetirementAge)
	assert.Equal(t, 100, params.ExpectedLifespan)
	assert.True(t, params.AnnualSalary.Equal(decimal.NewFromInt(1000000)))
	assert.True(t, params.SalaryGrowthRatePct.Equal(decimal.NewFromFloat(2.0)))
	assert.Equal(t, domain.HousingRent, params.Housing.Mode)
	assert.True(t, params.Housing.MonthlyRent.Equal(decimal.NewFromInt(20000)))

	require.Len(t, params.OneTimeExpenses, 2)
	assert.Equal(t, 50, params.OneTimeExpenses[0].Age)
	assert.True(t, params.OneTimeExpenses[1].Amount.Equal(decimal.NewFromInt(200000)))
}

func TestLoadFromFileBuyPlan(t *testing.T) {
	parser := NewInputParser()
	params, err := parser.LoadFromFile(writeTempPlan(t, buyPlanYAML))
	require.NoError(t, err)

	assert.Equal(t, domain.HousingBuy, params.Housing.Mode)
	assert.Equal(t, 48, params.Housing.PurchaseAge)
	assert.Equal(t, 30, params.Housing.LoanTermYears)
	assert.True(t, params.Housing.LoanAmount.Equal(decimal.NewFromInt(10500000)))
	assert.True(t, params.Housing.RentBeforePurchase.Equal(decimal.NewFromInt(15000)))
}

func TestLoadFromFileMissing(t *testing.T) {
	_, err := NewInputParser().LoadFromFile(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestParseMalformedYAML(t *testing.T) {
	_, err := NewInputParser().Parse([]byte("current_age: [not a number"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestValidateParametersRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.PlanningParameters)
		want   string
	}{
		{
			name:   "retirement not after current age",
			mutate: func(p *domain.PlanningParameters) { p.RetirementAge = 40 },
			want:   "retirement age",
		},
		{
			name:   "implausible lifespan",
			mutate: func(p *domain.PlanningParameters) { p.ExpectedLifespan = 180 },
			want:   "not plausible",
		},
		{
			name:   "implausible return rate",
			mutate: func(p *domain.PlanningParameters) { p.InvestmentReturnRatePct = decimal.NewFromInt(80) },
			want:   "not plausible",
		},
		{
			name: "down payment above home price",
			mutate: func(p *domain.PlanningParameters) {
				p.Housing = domain.HousingPlan{
					Mode:          domain.HousingBuy,
					PurchaseAge:   48,
					HomePrice:     decimal.NewFromInt(1000000),
					DownPayment:   decimal.NewFromInt(2000000),
					LoanAmount:    decimal.NewFromInt(500000),
					LoanTermYears: 20,
				}
			},
			want: "down payment",
		},
	}

	parser := NewInputParser()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params, err := parser.Parse([]byte(rentPlanYAML))
			require.NoError(t, err)
			tt.mutate(params)
			err = parser.ValidateParameters(params)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestValidateParametersKeepsPartialOneTimeEntries(t *testing.T) {
	// Incomplete interactive rows are filtered by the engine, not rejected here.
	params, err := NewInputParser().Parse([]byte(rentPlanYAML))
	require.NoError(t, err)

	params.OneTimeExpenses = append(params.OneTimeExpenses,
		domain.OneTimeExpense{Age: 20, Amount: decimal.NewFromInt(100)},
		domain.OneTimeExpense{Age: 70, Amount: decimal.NewFromInt(-5)},
	)
	assert.NoError(t, NewInputParser().ValidateParameters(params))
}
