package main

import (
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/mwolczyk/copilot-meter/internal/version"
)

func main() {
	if os.Getenv("COPILOT_METER_DEBUG") != "" {
		log.SetOutput(os.Stderr)
	} else {
		log.SetOutput(io.Discard)
	}

	root := cobra.Command{
		Use:     "copilot-meter",
		Short:   "copilot-meter is a terminal dashboard for the GitHub Copilot premium request quota.",
		Version: version.String(),
		Run: func(_ *cobra.Command, _ []string) {
			runDashboard()
		},
	}

	root.AddCommand(newStatusCommand())
	root.AddCommand(newResetCommand())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
