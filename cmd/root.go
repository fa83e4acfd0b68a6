package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var flagVerbose bool

var rootCmd = &cobra.Command{
	Use:   "retirecast",
	Short: "Household retirement cashflow projector",
	Long:  "Project a household's year-by-year finances from today to end of life: salary, investments, pension, housing, one-time expenses, inflation.",
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")
}
