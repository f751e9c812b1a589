package main

import (
	"fmt"
	"os"

	"github.com/cdimurro/bamboo-forecast-app/internal/config"
	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write an example scenario file",
	Long:  `Write an example scenario (YAML, or TOML when the path ends in .toml). Defaults to scenario.yaml.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "scenario.yaml"
		if len(args) == 1 {
			path = args[0]
		}
		if _, err := os.Stat(path); err == nil && !initForce {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
		parser := config.NewInputParser()
		if err := parser.SaveScenario(parser.CreateExampleScenario(), path); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Example scenario written to %s\n", path)
		return nil
	},
}

var initForce bool

func initFlags() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing file")
}

func init() { initFlags() }
