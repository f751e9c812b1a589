package main

import (
	"fmt"

	"github.com/cdimurro/bamboo-forecast-app/internal/calculation"
	"github.com/cdimurro/bamboo-forecast-app/internal/config"
	"github.com/cdimurro/bamboo-forecast-app/internal/output"
	"github.com/spf13/cobra"
)

var projectCmd = &cobra.Command{
	Use:   "project [scenario file]",
	Short: "Run a projection and render reports",
	Long: `Load a YAML, JSON or TOML scenario, run the projection and render it.
Without --output-dir every format is written to stdout; with it each format
is written to a timestamped file.`,
	Args: cobra.ExactArgs(1),
	RunE: runProject,
}

var (
	projectFormats   []string
	projectOutputDir string
)

func projectFlags() {
	projectCmd.Flags().StringSliceVarP(&projectFormats, "format", "f", []string{"summary"}, "Output format (repeatable): table, summary, csv, json, html, pdf, all")
	projectCmd.Flags().StringVarP(&projectOutputDir, "output-dir", "o", "", "Write reports to files in this directory")
}

func init() { projectFlags() }

func runProject(cmd *cobra.Command, args []string) error {
	parser := config.NewInputParser()
	assumptions, err := parser.LoadAssumptions(args[0])
	if err != nil {
		return err
	}

	engine := calculation.NewCalculationEngine()
	engine.SetLogger(logger)
	result, err := engine.Run(cmd.Context(), assumptions)
	if err != nil {
		return fmt.Errorf("projection failed: %w", err)
	}

	for _, format := range projectFormats {
		if projectOutputDir != "" {
			paths, err := output.GenerateReport(result, format, projectOutputDir)
			if err != nil {
				return err
			}
			for _, p := range paths {
				logger.Infof("wrote %s", p)
				fmt.Fprintln(cmd.OutOrStdout(), p)
			}
			continue
		}

		f := output.GetFormatterByName(format)
		if f == nil {
			return fmt.Errorf("%w: %q (run 'bamboo-forecast formats')", output.ErrUnsupportedFormat, format)
		}
		if f.Name() == "pdf" {
			return fmt.Errorf("pdf output needs --output-dir")
		}
		data, err := f.Format(result)
		if err != nil {
			return fmt.Errorf("format %s: %w", f.Name(), err)
		}
		if _, err := cmd.OutOrStdout().Write(data); err != nil {
			return err
		}
	}
	return nil
}
