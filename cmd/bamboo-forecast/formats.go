package main

import (
	"fmt"

	"github.com/cdimurro/bamboo-forecast-app/internal/output"
	"github.com/spf13/cobra"
)

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List output formats and aliases",
	Run: func(cmd *cobra.Command, args []string) {
		w := cmd.OutOrStdout()
		fmt.Fprintln(w, "Formats:")
		for _, name := range output.AvailableFormatterNames() {
			fmt.Fprintf(w, "  %-8s (.%s)\n", name, output.Extension(name))
		}
		fmt.Fprintln(w, "Aliases:")
		for _, alias := range output.AvailableFormatAliases() {
			fmt.Fprintf(w, "  %-12s -> %s\n", alias, output.AliasTarget(alias))
		}
	},
}
