package main

import (
	"fmt"

	"github.com/rgehrsitz/netincome/internal/config"
	"github.com/spf13/cobra"
)

func yearsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "years",
		Short: "List the years with built-in tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, year := range config.SupportedYears() {
				suffix := ""
				if year == config.DefaultYear {
					suffix = " (default)"
				}
				if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%d%s\n", year, suffix); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

func tablesCmd() *cobra.Command {
	var year int

	cmd := &cobra.Command{
		Use:   "tables",
		Short: "Print the built-in table of a year as YAML",
		Long: `Prints the built-in table of a year. The output can be adapted and passed
to calculate with --config.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.ForYear(year)
			if err != nil {
				return err
			}
			data, err := config.Marshal(cfg)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	cmd.Flags().IntVarP(&year, "year", "y", config.DefaultYear, "Year of the table")
	return cmd
}
