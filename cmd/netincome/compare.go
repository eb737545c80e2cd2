package main

import (
	"fmt"

	"github.com/rgehrsitz/netincome/internal/compare"
	"github.com/rgehrsitz/netincome/internal/config"
	"github.com/spf13/cobra"
)

func compareCmd() *cobra.Command {
	var (
		in     inputFlags
		years  []int
		format string
	)

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare the calculation across tax years",
		Long: `Runs the calculation for the same input in several tax years. The first
year is the base all other years are compared against.`,
		Example: `  netincome compare --income 80000 --years 2024,2025
  netincome compare --income 44970 --reverse --format csv`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			overrides, err := in.overrides()
			if err != nil {
				return err
			}

			engine := compare.NewCompareEngine(newEngine())
			compSet, err := engine.CompareYears(cmd.Context(), in.taxInput(cmd), years, compare.CompareOptions{
				Reverse:   in.reverse,
				Overrides: overrides,
			})
			if err != nil {
				return err
			}

			var out string
			switch format {
			case "table":
				out = (&compare.TableFormatter{}).Format(compSet)
			case "compact":
				out = (&compare.TableFormatter{}).FormatCompact(compSet) + "\n"
			case "csv":
				out, err = (&compare.CSVFormatter{}).Format(compSet)
			case "json":
				out, err = (&compare.JSONFormatter{Pretty: true}).Format(compSet)
				out += "\n"
			default:
				return fmt.Errorf("unsupported format %q (available: table, compact, csv, json)", format)
			}
			if err != nil {
				return err
			}

			_, err = fmt.Fprint(cmd.OutOrStdout(), out)
			return err
		},
	}

	in.register(cmd)
	cmd.Flags().IntSliceVar(&years, "years", config.SupportedYears(), "Comma-separated list of years to compare")
	cmd.Flags().StringVar(&format, "format", "table", "Output format (table, compact, csv, json)")

	return cmd
}
