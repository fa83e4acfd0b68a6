package cmd

import (
	"github.com/spf13/cobra"

	"github.com/retirecast/retirecast/internal/calculation"
	"github.com/retirecast/retirecast/internal/logging"
	"github.com/retirecast/retirecast/internal/server"
)

var flagPort string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve projections over HTTP",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVarP(&flagPort, "port", "p", "8080", "Listen port")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	log := logging.New(flagVerbose)

	engine := calculation.NewEngine()
	engine.SetLogger(logging.EngineLogger{L: log})

	return server.New(engine, log).ListenAndServe(flagPort)
}
