// Command bamboo-forecast projects the finances of a bamboo plantation with
// optional biochar conversion and reports NPV and IRR.
package main

import (
	"fmt"
	"os"

	"github.com/cdimurro/bamboo-forecast-app/internal/logging"
	"github.com/spf13/cobra"
)

var (
	logLevel string
	logger   *logging.Console
)

var rootCmd = &cobra.Command{
	Use:           "bamboo-forecast",
	Short:         "Bamboo and biochar financial projections",
	Long:          `Project year-by-year production, income, cash flow and debt for a bamboo plantation with optional biochar conversion, then value it with NPV and IRR.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level, err := logging.ParseLevel(logLevel)
		if err != nil {
			return err
		}
		logger = logging.NewConsole(cmd.ErrOrStderr(), level)
		return nil
	},
}

func rootFlags() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level: debug, info, warn or error")
}

func init() {
	rootFlags()
	rootCmd.AddCommand(projectCmd, initCmd, validateCmd, formatsCmd, versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
