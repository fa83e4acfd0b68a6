package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/retirecast/retirecast/internal/calculation"
	"github.com/retirecast/retirecast/internal/domain"
)

// CSVFormatter exports the ledger, one row per age. Column order is fixed:
// age, the income columns, the expense columns, then the balance columns.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }
func (c CSVFormatter) Ext() string  { return "csv" }

func (c CSVFormatter) Format(projection *domain.Projection) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Age", "SalaryIncome", "InvestmentIncome", "PensionIncome", "TotalIncome", "LivingExpense", "HousingExpense", "OneTimeExpense", "TotalExpense", "AnnualBalance", "CumulativeBalance"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, row := range projection.Rows {
		record := []string{
			strconv.Itoa(row.Age),
			row.SalaryIncome.StringFixed(2),
			row.InvestmentIncome.StringFixed(2),
			row.PensionIncome.StringFixed(2),
			row.TotalIncome.StringFixed(2),
			row.LivingExpense.StringFixed(2),
			row.HousingExpense.StringFixed(2),
			row.OneTimeExpense.StringFixed(2),
			row.TotalExpense.StringFixed(2),
			row.AnnualBalance.StringFixed(2),
			row.CumulativeBalance.StringFixed(2),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// SensitivityCSV exports a rate sweep for comparative charting, one row per
// perturbed run.
func SensitivityCSV(points []calculation.RateSensitivity) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Varied", "InvestmentReturnRatePct", "InflationRatePct", "TerminalBalance", "DepletionAge"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, pt := range points {
		depletion := ""
		if pt.DepletionAge != nil {
			depletion = strconv.Itoa(*pt.DepletionAge)
		}
		record := []string{
			pt.Varied,
			pt.InvestmentReturnRatePct.StringFixed(2),
			pt.InflationRatePct.StringFixed(2),
			pt.TerminalBalance.StringFixed(2),
			depletion,
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
