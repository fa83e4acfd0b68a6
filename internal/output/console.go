package output

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/retirecast/retirecast/internal/calculation"
	"github.com/retirecast/retirecast/internal/domain"
)

// Theme colors (Flexoki Dark)
var (
	colorBorder  = lipgloss.Color("#282726")
	colorTextDim = lipgloss.Color("#575653")
	colorText    = lipgloss.Color("#FFFCF0")
	colorAccent  = lipgloss.Color("#3AA99F")
	colorRed     = lipgloss.Color("#D14D41")
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorText)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent)

	dimStyle = lipgloss.NewStyle().
			Foreground(colorTextDim)

	negativeStyle = lipgloss.NewStyle().
			Foreground(colorRed)
)

// ConsoleFormatter renders the ledger as a bordered table, one row per age,
// with income, expense and balance column groups. Negative annual and
// cumulative balances are shown in red.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }
func (c ConsoleFormatter) Ext() string  { return "txt" }

var ledgerHeaders = []string{"Age", "Salary", "Invest", "Pension", "Income", "Living", "Housing", "One-time", "Expense", "Balance", "Cumulative"}

func (c ConsoleFormatter) Format(projection *domain.Projection) ([]byte, error) {
	var b strings.Builder

	b.WriteString(titleStyle.Render("CASHFLOW PROJECTION"))
	b.WriteString("\n\n")
	writeSummary(&b, &projection.Summary)
	b.WriteString("\n")

	rows := make([][]string, 0, len(projection.Rows))
	for _, row := range projection.Rows {
		rows = append(rows, []string{
			fmt.Sprintf("%d", row.Age),
			FormatWhole(row.SalaryIncome),
			FormatWhole(row.InvestmentIncome),
			FormatWhole(row.PensionIncome),
			FormatWhole(row.TotalIncome),
			FormatWhole(row.LivingExpense),
			FormatWhole(row.HousingExpense),
			FormatWhole(row.OneTimeExpense),
			FormatWhole(row.TotalExpense),
			FormatWhole(row.AnnualBalance),
			FormatWhole(row.CumulativeBalance),
		})
	}
	b.WriteString(renderLedgerTable(ledgerHeaders, rows))

	return []byte(b.String()), nil
}

func writeSummary(b *strings.Builder, summary *domain.ProjectionSummary) {
	if summary.MonthlyMortgagePayment.IsPositive() {
		fmt.Fprintf(b, "%s %s\n", headerStyle.Render("Monthly mortgage:"), FormatCurrency(summary.MonthlyMortgagePayment))
	}
	terminal := FormatCurrency(summary.TerminalBalance)
	if summary.TerminalBalance.IsNegative() {
		terminal = negativeStyle.Render(terminal)
	}
	fmt.Fprintf(b, "%s %s\n", headerStyle.Render("Terminal balance:"), terminal)
	fmt.Fprintf(b, "%s %s at age %d\n", headerStyle.Render("Peak balance:"), FormatCurrency(summary.PeakBalance), summary.PeakBalanceAge)
	if summary.DepletionAge != nil {
		fmt.Fprintf(b, "%s %s\n", headerStyle.Render("Assets depleted:"), negativeStyle.Render(fmt.Sprintf("age %d", *summary.DepletionAge)))
	}
}

// renderLedgerTable renders a bordered table. The last two columns hold the
// balances; negative cells there are styled red.
func renderLedgerTable(headers []string, rows [][]string) string {
	numCols := len(headers)
	widths := make([]int, numCols)
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < numCols && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	var b strings.Builder

	border := func(left, mid, right string) {
		b.WriteString(dimStyle.Render(left))
		for i, w := range widths {
			b.WriteString(dimStyle.Render(strings.Repeat("─", w+2)))
			if i < numCols-1 {
				b.WriteString(dimStyle.Render(mid))
			}
		}
		b.WriteString(dimStyle.Render(right))
		b.WriteString("\n")
	}

	border("╭", "┬", "╮")

	b.WriteString(dimStyle.Render("│"))
	for i, h := range headers {
		b.WriteString(headerStyle.Render(fmt.Sprintf(" %*s ", widths[i], h)))
		b.WriteString(dimStyle.Render("│"))
	}
	b.WriteString("\n")
	border("├", "┼", "┤")

	for _, row := range rows {
		b.WriteString(dimStyle.Render("│"))
		for i, cell := range row {
			padded := fmt.Sprintf(" %*s ", widths[i], cell)
			if i >= numCols-2 && strings.HasPrefix(cell, "-") {
				padded = negativeStyle.Render(padded)
			}
			b.WriteString(padded)
			b.WriteString(dimStyle.Render("│"))
		}
		b.WriteString("\n")
	}

	border("╰", "┴", "╯")
	return b.String()
}

// RenderSweepTable renders rate-sweep points as a compact comparison table
// for the terminal.
func RenderSweepTable(points []calculation.RateSensitivity) string {
	headers := []string{"Varied", "Return%", "Inflation%", "Terminal", "Depleted"}
	rows := make([][]string, 0, len(points))
	for _, pt := range points {
		depleted := "-"
		if pt.DepletionAge != nil {
			depleted = fmt.Sprintf("age %d", *pt.DepletionAge)
		}
		rows = append(rows, []string{
			pt.Varied,
			pt.InvestmentReturnRatePct.StringFixed(1),
			pt.InflationRatePct.StringFixed(1),
			FormatWhole(pt.TerminalBalance),
			depleted,
		})
	}
	return renderLedgerTable(headers, rows)
}
