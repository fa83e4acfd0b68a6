package output

import (
	"github.com/shopspring/decimal"

	"github.com/retirecast/retirecast/pkg/money"
)

// FormatCurrency formats a decimal as currency with 2 decimals.
// Kept here so it can be reused by multiple formatters and unit tested in isolation.
func FormatCurrency(amount decimal.Decimal) string { return money.FromDecimal(amount).Format() }

// FormatPercentage formats a decimal as a percentage with 2 decimals.
func FormatPercentage(amount decimal.Decimal) string { return amount.StringFixed(2) + "%" }

// FormatWhole renders an amount floored to whole currency units, the way the
// ledger table displays money.
func FormatWhole(amount decimal.Decimal) string {
	return amount.Floor().StringFixed(0)
}
