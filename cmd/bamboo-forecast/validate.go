package main

import (
	"fmt"

	"github.com/cdimurro/bamboo-forecast-app/internal/config"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate [scenario file]",
	Short: "Check a scenario file without running it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		scenario, err := config.NewInputParser().LoadFromFile(args[0])
		if err != nil {
			return err
		}
		if _, err := scenario.ToAssumptions(); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: valid (%q, %d years)\n", args[0], scenario.Name, scenario.ProjectionYears)
		return nil
	},
}
