package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// HousingMode selects how housing costs are modeled over the projection.
type HousingMode string

const (
	HousingRent HousingMode = "rent"
	HousingBuy  HousingMode = "buy"
)

// HousingPlan describes either a rental arrangement or a home purchase with a
// level-payment mortgage. In buy mode the purchase may predate the current
// age; the loan clock still runs from PurchaseAge.
type HousingPlan struct {
	Mode HousingMode `yaml:"mode" json:"mode"`

	// Rent mode
	MonthlyRent decimal.Decimal `yaml:"monthly_rent,omitempty" json:"monthly_rent"`

	// Buy mode
	PurchaseAge       int             `yaml:"purchase_age,omitempty" json:"purchase_age"`
	HomePrice         decimal.Decimal `yaml:"home_price,omitempty" json:"home_price"`
	DownPayment       decimal.Decimal `yaml:"down_payment,omitempty" json:"down_payment"`
	LoanAmount        decimal.Decimal `yaml:"loan_amount,omitempty" json:"loan_amount"`
	LoanTermYears     int             `yaml:"loan_term_years,omitempty" json:"loan_term_years"`
	LoanAnnualRatePct decimal.Decimal `yaml:"loan_annual_rate_pct,omitempty" json:"loan_annual_rate_pct"`

	// Monthly rent paid for ages before PurchaseAge. Zero when not supplied.
	RentBeforePurchase decimal.Decimal `yaml:"rent_before_purchase,omitempty" json:"rent_before_purchase"`
}

// OneTimeExpense is a non-recurring expense tied to a specific age. Multiple
// entries at the same age are summed. Entries before the current age or with
// a non-positive amount are dropped before projection, not rejected.
type OneTimeExpense struct {
	Age    int             `yaml:"age" json:"age"`
	Amount decimal.Decimal `yaml:"amount" json:"amount"`
}

// PlanningParameters is the complete, immutable input set for one projection.
type PlanningParameters struct {
	CurrentAge       int `yaml:"current_age" json:"current_age"`
	RetirementAge    int `yaml:"retirement_age" json:"retirement_age"`
	ExpectedLifespan int `yaml:"expected_lifespan" json:"expected_lifespan"`

	MonthlyExpense            decimal.Decimal `yaml:"monthly_expense" json:"monthly_expense"`
	AnnualSalary              decimal.Decimal `yaml:"annual_salary" json:"annual_salary"`
	SalaryGrowthRatePct       decimal.Decimal `yaml:"salary_growth_rate_pct" json:"salary_growth_rate_pct"`
	RetirementPensionPerMonth decimal.Decimal `yaml:"retirement_pension_per_month" json:"retirement_pension_per_month"`

	InvestableAssets        decimal.Decimal `yaml:"investable_assets" json:"investable_assets"`
	InvestmentReturnRatePct decimal.Decimal `yaml:"investment_return_rate_pct" json:"investment_return_rate_pct"`
	InflationRatePct        decimal.Decimal `yaml:"inflation_rate_pct" json:"inflation_rate_pct"`

	Housing HousingPlan `yaml:"housing" json:"housing"`

	OneTimeExpenses []OneTimeExpense `yaml:"one_time_expenses,omitempty" json:"one_time_expenses,omitempty"`
}

// UnmarshalYAML implements custom YAML unmarshaling for PlanningParameters.
// Plan files carry money amounts and rates as plain numbers; they are decoded
// through an alias struct and converted to decimals explicitly.
func (p *PlanningParameters) UnmarshalYAML(value *yaml.Node) error {
	type Alias struct {
		CurrentAge                int              `yaml:"current_age"`
		RetirementAge             int              `yaml:"retirement_age"`
		ExpectedLifespan          int              `yaml:"expected_lifespan"`
		MonthlyExpense            float64          `yaml:"monthly_expense"`
		AnnualSalary              float64          `yaml:"annual_salary"`
		SalaryGrowthRatePct       float64          `yaml:"salary_growth_rate_pct"`
		RetirementPensionPerMonth float64          `yaml:"retirement_pension_per_month"`
		InvestableAssets          float64          `yaml:"investable_assets"`
		InvestmentReturnRatePct   float64          `yaml:"investment_return_rate_pct"`
		InflationRatePct          float64          `yaml:"inflation_rate_pct"`
		Housing                   HousingPlan      `yaml:"housing"`
		OneTimeExpenses           []OneTimeExpense `yaml:"one_time_expenses"`
	}

	var aux Alias
	if err := value.Decode(&aux); err != nil {
		return err
	}

	p.CurrentAge = aux.CurrentAge
	p.RetirementAge = aux.RetirementAge
	p.ExpectedLifespan = aux.ExpectedLifespan
	p.MonthlyExpense = decimal.NewFromFloat(aux.MonthlyExpense)
	p.AnnualSalary = decimal.NewFromFloat(aux.AnnualSalary)
	p.SalaryGrowthRatePct = decimal.NewFromFloat(aux.SalaryGrowthRatePct)
	p.RetirementPensionPerMonth = decimal.NewFromFloat(aux.RetirementPensionPerMonth)
	p.InvestableAssets = decimal.NewFromFloat(aux.InvestableAssets)
	p.InvestmentReturnRatePct = decimal.NewFromFloat(aux.InvestmentReturnRatePct)
	p.InflationRatePct = decimal.NewFromFloat(aux.InflationRatePct)
	p.Housing = aux.Housing
	p.OneTimeExpenses = aux.OneTimeExpenses
	return nil
}

// UnmarshalYAML implements custom YAML unmarshaling for HousingPlan.
func (h *HousingPlan) UnmarshalYAML(value *yaml.Node) error {
	type Alias struct {
		Mode               HousingMode `yaml:"mode"`
		MonthlyRent        float64     `yaml:"monthly_rent"`
		PurchaseAge        int         `yaml:"purchase_age"`
		HomePrice          float64     `yaml:"home_price"`
		DownPayment        float64     `yaml:"down_payment"`
		LoanAmount         float64     `yaml:"loan_amount"`
		LoanTermYears      int         `yaml:"loan_term_years"`
		LoanAnnualRatePct  float64     `yaml:"loan_annual_rate_pct"`
		RentBeforePurchase float64     `yaml:"rent_before_purchase"`
	}

	var aux Alias
	if err := value.Decode(&aux); err != nil {
		return err
	}

	h.Mode = aux.Mode
	h.MonthlyRent = decimal.NewFromFloat(aux.MonthlyRent)
	h.PurchaseAge = aux.PurchaseAge
	h.HomePrice = decimal.NewFromFloat(aux.HomePrice)
	h.DownPayment = decimal.NewFromFloat(aux.DownPayment)
	h.LoanAmount = decimal.NewFromFloat(aux.LoanAmount)
	h.LoanTermYears = aux.LoanTermYears
	h.LoanAnnualRatePct = decimal.NewFromFloat(aux.LoanAnnualRatePct)
	h.RentBeforePurchase = decimal.NewFromFloat(aux.RentBeforePurchase)
	return nil
}

// UnmarshalYAML implements custom YAML unmarshaling for OneTimeExpense.
func (o *OneTimeExpense) UnmarshalYAML(value *yaml.Node) error {
	type Alias struct {
		Age    int     `yaml:"age"`
		Amount float64 `yaml:"amount"`
	}

	var aux Alias
	if err := value.Decode(&aux); err != nil {
		return err
	}

	o.Age = aux.Age
	o.Amount = decimal.NewFromFloat(aux.Amount)
	return nil
}

// Validate checks the hard preconditions that must hold before any ledger row
// is produced. One-time expense entries are deliberately not validated here;
// invalid entries are filtered during projection.
func (p *PlanningParameters) Validate() error {
	if p.CurrentAge <= 0 {
		return fmt.Errorf("current age must be positive, got %d", p.CurrentAge)
	}
	if p.CurrentAge >= p.RetirementAge {
		return fmt.Errorf("retirement age (%d) must be greater than current age (%d)", p.RetirementAge, p.CurrentAge)
	}
	if p.RetirementAge > p.ExpectedLifespan {
		return fmt.Errorf("expected lifespan (%d) must be at least retirement age (%d)", p.ExpectedLifespan, p.RetirementAge)
	}
	if p.MonthlyExpense.IsNegative() {
		return fmt.Errorf("monthly expense cannot be negative")
	}
	if p.AnnualSalary.IsNegative() {
		return fmt.Errorf("annual salary cannot be negative")
	}
	if p.RetirementPensionPerMonth.IsNegative() {
		return fmt.Errorf("retirement pension cannot be negative")
	}
	if p.InvestableAssets.IsNegative() {
		return fmt.Errorf("investable assets cannot be negative")
	}
	if p.InflationRatePct.LessThanOrEqual(decimal.NewFromInt(-100)) {
		return fmt.Errorf("inflation rate must be greater than -100%%")
	}
	if p.InvestmentReturnRatePct.LessThanOrEqual(decimal.NewFromInt(-100)) {
		return fmt.Errorf("investment return rate must be greater than -100%%")
	}
	return p.Housing.validate(p.CurrentAge)
}

func (h *HousingPlan) validate(currentAge int) error {
	switch h.Mode {
	case HousingRent:
		if h.MonthlyRent.IsNegative() {
			return fmt.Errorf("monthly rent cannot be negative")
		}
	case HousingBuy:
		if h.PurchaseAge <= 0 {
			return fmt.Errorf("purchase age must be positive, got %d", h.PurchaseAge)
		}
		if h.DownPayment.IsNegative() {
			return fmt.Errorf("down payment cannot be negative")
		}
		if h.LoanAmount.IsNegative() {
			return fmt.Errorf("loan amount cannot be negative")
		}
		if h.LoanAmount.IsPositive() && h.LoanTermYears <= 0 {
			return fmt.Errorf("loan term must be positive when a loan amount is set")
		}
		if h.LoanAnnualRatePct.IsNegative() {
			return fmt.Errorf("loan rate cannot be negative")
		}
		if h.RentBeforePurchase.IsNegative() {
			return fmt.Errorf("rent before purchase cannot be negative")
		}
	default:
		return fmt.Errorf("housing mode must be %q or %q, got %q", HousingRent, HousingBuy, h.Mode)
	}
	return nil
}
