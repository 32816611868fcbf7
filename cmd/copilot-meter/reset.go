package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mwolczyk/copilot-meter/internal/config"
)

func newResetCommand() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete the saved quota configuration",
		RunE: func(_ *cobra.Command, _ []string) error {
			store := config.DefaultStore()
			if !store.Exists() {
				fmt.Println("no configuration to delete")
				return nil
			}
			if !yes {
				fmt.Printf("would delete %s, re-run with --yes to confirm\n", store.Path())
				return nil
			}
			if err := store.Delete(); err != nil {
				return err
			}
			fmt.Println("configuration deleted, the next start runs setup again")
			return nil
		},
	}
	cmd.Flags().BoolVar(&yes, "yes", false, "skip the confirmation")
	return cmd
}
