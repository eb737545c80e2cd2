package main

import (
	"fmt"

	"github.com/rgehrsitz/netincome/internal/config"
	"github.com/rgehrsitz/netincome/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
)

// inputFlags holds the flags describing the person and the year table adaptions
type inputFlags struct {
	income           uint32
	expenses         uint32
	fixedRetirement  uint32
	selfEmployed     bool
	married          bool
	reverse          bool
	healthAdditional string
	nursingSurcharge string
}

func (f *inputFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.Uint32VarP(&f.income, "income", "i", 0, "Annual income before taxes, social security and tax-deductible expenses (or net income in case of --reverse)")
	flags.Uint32VarP(&f.expenses, "expenses", "e", 0, "Tax-deductible expenses")
	flags.Uint32VarP(&f.fixedRetirement, "fixed-retirement", "f", 0, "Fixed monthly retirement premium (percentage will be calculated if not set)")
	flags.BoolVarP(&f.selfEmployed, "self-employed", "s", false, "Calculate social security and income taxes for a self-employed person")
	flags.BoolVarP(&f.married, "married", "m", false, "Calculate with tax splitting for a married couple")
	flags.BoolVarP(&f.reverse, "reverse", "r", false, "Interpret the income as net income and calculate the gross income from it")
	flags.StringVar(&f.healthAdditional, "health-additional", "", "Additional health insurance premium of the insurer (e.g. 0.025)")
	flags.StringVar(&f.nursingSurcharge, "nursing-surcharge", "", "Nursing care surcharge (e.g. 0 for persons with children)")
	_ = cmd.MarkFlagRequired("income")
}

func (f *inputFlags) taxInput(cmd *cobra.Command) domain.TaxInput {
	input := domain.TaxInput{
		Income:   f.income,
		Expenses: f.expenses,
	}
	if cmd.Flags().Changed("fixed-retirement") {
		fixed := f.fixedRetirement
		input.FixedRetirementMonthly = &fixed
	}
	if f.selfEmployed {
		input.Employment = domain.SelfEmployed
	}
	if f.married {
		input.Marital = domain.Married
	}
	return input
}

func (f *inputFlags) overrides() (config.Overrides, error) {
	var o config.Overrides
	var err error
	if o.HealthAdditional, err = parseRate("health-additional", f.healthAdditional); err != nil {
		return o, err
	}
	if o.NursingSurcharge, err = parseRate("nursing-surcharge", f.nursingSurcharge); err != nil {
		return o, err
	}
	return o, nil
}

func parseRate(flag, value string) (*decimal.Decimal, error) {
	if value == "" {
		return nil, nil
	}
	rate, err := decimal.NewFromString(value)
	if err != nil {
		return nil, fmt.Errorf("invalid --%s %q: %w", flag, value, err)
	}
	return &rate, nil
}
