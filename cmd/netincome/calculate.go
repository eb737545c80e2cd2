package main

import (
	"fmt"
	"strings"

	"github.com/rgehrsitz/netincome/internal/config"
	"github.com/rgehrsitz/netincome/internal/domain"
	"github.com/rgehrsitz/netincome/internal/output"
	"github.com/rgehrsitz/netincome/internal/solver"
	"github.com/spf13/cobra"
)

func calculateCmd() *cobra.Command {
	var (
		in         inputFlags
		year       int
		configFile string
		format     string
		outputFile string
		save       bool
	)

	cmd := &cobra.Command{
		Use:   "calculate",
		Short: "Calculate the net income (or the gross income with --reverse)",
		Example: `  netincome calculate --income 80000
  netincome calculate --income 80000 --expenses 5300 --married --year 2024
  netincome calculate --income 44970 --expenses 5300 --reverse --format verbose`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			formatter := output.GetFormatterByName(format)
			if formatter == nil {
				return fmt.Errorf("unsupported format %q (available: %s)", format, strings.Join(output.FormatterNames(), ", "))
			}
			if save && outputFile != "" {
				return fmt.Errorf("--save and --output cannot be combined")
			}

			cfg, err := loadTable(year, configFile)
			if err != nil {
				return err
			}
			overrides, err := in.overrides()
			if err != nil {
				return err
			}
			if !overrides.IsEmpty() {
				if cfg, err = overrides.Apply(cfg); err != nil {
					return err
				}
			}

			input := in.taxInput(cmd)
			engine := newEngine()
			log.Debugf("calculating %+v for year %d (reverse: %t)", input, cfg.Year, in.reverse)

			var outcome *domain.TaxOutcome
			iterations := 0
			if in.reverse {
				result, err := solver.NewDefaultSolver(engine).Solve(cmd.Context(), cfg, input)
				if err != nil {
					return err
				}
				outcome, iterations = result.Outcome, result.Iterations
				log.Debugf("solver finished after %d iterations using %s", result.Iterations, result.Method)
			} else {
				if outcome, err = engine.NetIncome(cfg, input); err != nil {
					return err
				}
			}

			report, err := output.NewReport(cfg, input, outcome, in.reverse)
			if err != nil {
				return err
			}
			report.Iterations = iterations

			if save {
				filename, err := output.WriteFormatted(formatter, report, output.FileExtension(formatter))
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", filename)
				return nil
			}

			if outputFile != "" {
				if err := output.WriteFile(formatter, report, outputFile); err != nil {
					return err
				}
				log.Infof("report written to %s", outputFile)
				return nil
			}

			data, err := formatter.Format(report)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	in.register(cmd)
	cmd.Flags().IntVarP(&year, "year", "y", config.DefaultYear, "For which year the taxes should be calculated")
	cmd.Flags().StringVarP(&configFile, "config", "c", "", "Year table file replacing the built-in table of --year")
	cmd.Flags().StringVar(&format, "format", "console", "Output format (console, verbose, json, csv, pdf)")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Write the report to a file instead of stdout")
	cmd.Flags().BoolVar(&save, "save", false, "Write the report to a time-stamped file in the working directory")

	return cmd
}

// loadTable returns the built-in table of the year, or the table of the file when given
func loadTable(year int, configFile string) (*domain.TaxYearConfig, error) {
	if configFile != "" {
		log.Debugf("loading year table from %s", configFile)
		return config.NewTableParser().LoadFromFile(configFile)
	}
	return config.ForYear(year)
}
