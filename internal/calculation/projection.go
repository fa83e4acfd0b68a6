package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/retirecast/retirecast/internal/domain"
	"github.com/retirecast/retirecast/pkg/money"
)

// generateLedger runs the per-age loop. Iteration order matters: each year
// consumes the salary and asset balance left behind by the previous one, so
// the loop cannot be split or reordered.
func (e *Engine) generateLedger(p *domain.PlanningParameters, monthlyPayment decimal.Decimal) []domain.LedgerRow {
	years := p.ExpectedLifespan - p.CurrentAge + 1
	rows := make([]domain.LedgerRow, 0, years)

	oneTimeByAge := normalizeOneTimeExpenses(p.OneTimeExpenses, p.CurrentAge)

	salaryGrowth := rateFactor(p.SalaryGrowthRatePct)
	returnFactor := rateFactor(p.InvestmentReturnRatePct)
	inflationFactor := rateFactor(p.InflationRatePct)
	returnRate := p.InvestmentReturnRatePct.Div(hundred)

	livingAnnual := money.FromDecimal(p.MonthlyExpense).Annual().Whole().Decimal
	pensionAnnual := money.FromDecimal(p.RetirementPensionPerMonth).Annual().Whole().Decimal

	// Working state mutated across iterations.
	salary := p.AnnualSalary
	remaining := p.InvestableAssets
	priceLevel := one // (1 + inflation)^i, compounded per year

	for age := p.CurrentAge; age <= p.ExpectedLifespan; age++ {
		salaryIncome := decimal.Zero
		if age <= p.RetirementAge {
			salaryIncome = salary.Floor()
		}
		if age < p.RetirementAge {
			// Growth applies at the end of each working year.
			salary = salary.Mul(salaryGrowth)
		}

		// Notional yield on the pre-update principal; no income is imputed
		// on a deficit. Asset compounding itself happens in the balance
		// update below.
		investmentIncome := decimal.Zero
		if remaining.IsPositive() {
			investmentIncome = remaining.Mul(returnRate).Floor()
		}

		pensionIncome := decimal.Zero
		if age > p.RetirementAge {
			pensionIncome = pensionAnnual
		}

		totalIncome := salaryIncome.Add(investmentIncome).Add(pensionIncome)

		housingAnnual := housingExpense(&p.Housing, age, monthlyPayment).Floor()
		oneTime := oneTimeByAge[age].Floor()

		// Recurring expenses compound with inflation; one-time entries are
		// applied at face value.
		totalExpense := livingAnnual.Add(housingAnnual).Mul(priceLevel).Floor().Add(oneTime)

		annualBalance := totalIncome.Sub(totalExpense)

		// Apply the year's net cashflow, grow by the nominal return, then
		// deflate so the reported balance stays in today's money.
		remaining = remaining.Add(annualBalance).Mul(returnFactor).Div(inflationFactor)

		rows = append(rows, domain.LedgerRow{
			Age:               age,
			SalaryIncome:      salaryIncome,
			InvestmentIncome:  investmentIncome,
			PensionIncome:     pensionIncome,
			TotalIncome:       totalIncome,
			LivingExpense:     livingAnnual,
			HousingExpense:    housingAnnual,
			OneTimeExpense:    oneTime,
			TotalExpense:      totalExpense,
			AnnualBalance:     annualBalance,
			CumulativeBalance: remaining,
		})

		priceLevel = priceLevel.Mul(inflationFactor)
	}

	return rows
}

// housingExpense returns the nominal housing cost for one year. In buy mode
// the plan moves through four phases relative to the purchase age: renting
// before the purchase, the purchase year (down payment plus a first year of
// mortgage payments), the amortizing years, and owned outright. The purchase
// age may predate the current age; the loan clock still runs from it.
func housingExpense(h *domain.HousingPlan, age int, monthlyPayment decimal.Decimal) decimal.Decimal {
	if h.Mode == domain.HousingRent {
		return h.MonthlyRent.Mul(twelve)
	}
	offset := age - h.PurchaseAge
	switch {
	case offset < 0:
		return h.RentBeforePurchase.Mul(twelve)
	case offset == 0:
		return h.DownPayment.Add(monthlyPayment.Mul(twelve))
	case offset < h.LoanTermYears:
		return monthlyPayment.Mul(twelve)
	default:
		return decimal.Zero
	}
}

// normalizeOneTimeExpenses collapses the entry list into a per-age total.
// Entries before the current age or with a non-positive amount come from
// partially filled interactive rows and are dropped, not rejected.
func normalizeOneTimeExpenses(entries []domain.OneTimeExpense, currentAge int) map[int]decimal.Decimal {
	if len(entries) == 0 {
		return nil
	}
	byAge := make(map[int]decimal.Decimal, len(entries))
	for _, entry := range entries {
		if entry.Age < currentAge || !entry.Amount.IsPositive() {
			continue
		}
		byAge[entry.Age] = byAge[entry.Age].Add(entry.Amount)
	}
	return byAge
}

// rateFactor converts a percentage rate into a growth multiplier, 2.5 -> 1.025.
func rateFactor(pct decimal.Decimal) decimal.Decimal {
	return one.Add(pct.Div(hundred))
}
