package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/retirecast/retirecast/internal/calculation"
	"github.com/retirecast/retirecast/internal/config"
	"github.com/retirecast/retirecast/internal/logging"
	"github.com/retirecast/retirecast/internal/output"
)

var (
	flagInput  string
	flagFormat string
	flagOutput string
	flagSweep  bool
)

var projectCmd = &cobra.Command{
	Use:   "project",
	Short: "Run a cashflow projection from a plan file",
	RunE:  runProject,
}

func init() {
	projectCmd.Flags().StringVarP(&flagInput, "input", "i", "", "Plan file (YAML)")
	projectCmd.Flags().StringVarP(&flagFormat, "format", "f", "console", "Output format: console, csv, json")
	projectCmd.Flags().StringVarP(&flagOutput, "output", "o", "", "Write to file instead of stdout")
	projectCmd.Flags().BoolVar(&flagSweep, "sweep", false, "Also run a rate sensitivity sweep")
	_ = projectCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(projectCmd)
}

func runProject(cmd *cobra.Command, args []string) error {
	log := logging.New(flagVerbose)

	params, err := config.NewInputParser().LoadFromFile(flagInput)
	if err != nil {
		return err
	}

	engine := calculation.NewEngine()
	engine.SetLogger(logging.EngineLogger{L: log})

	projection, err := engine.Project(params)
	if err != nil {
		return err
	}

	formatter := output.GetFormatterByName(flagFormat)
	if formatter == nil {
		return fmt.Errorf("unknown format %q, available: %v", flagFormat, output.AvailableFormatterNames())
	}

	if flagOutput != "" {
		path, err := output.WriteFormatted(formatter, projection, flagOutput)
		if err != nil {
			return err
		}
		log.Info().Str("path", path).Str("format", formatter.Name()).Msg("projection written")
	} else {
		data, err := formatter.Format(projection)
		if err != nil {
			return err
		}
		if _, err := os.Stdout.Write(data); err != nil {
			return err
		}
	}

	if flagSweep {
		points, err := engine.SweepRates(params, nil)
		if err != nil {
			return err
		}
		fmt.Println()
		fmt.Println(output.RenderSweepTable(points))
	}

	return nil
}
