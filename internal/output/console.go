package output

import (
	"bytes"
	"fmt"
	"strings"
)

// ConsoleFormatter renders the one line summary
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(report *Report) ([]byte, error) {
	return []byte(report.SummaryLine() + "\n"), nil
}

// ConsoleVerboseFormatter renders the summary with the premium breakdown
type ConsoleVerboseFormatter struct{}

func (c ConsoleVerboseFormatter) Name() string { return "verbose" }

func (c ConsoleVerboseFormatter) Format(report *Report) ([]byte, error) {
	var buf bytes.Buffer
	o := report.Outcome

	fmt.Fprintln(&buf, strings.Repeat("=", 60))
	fmt.Fprintf(&buf, "NET INCOME CALCULATION %d\n", report.Year)
	fmt.Fprintln(&buf, strings.Repeat("=", 60))
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "INPUT:")
	if report.Reverse {
		fmt.Fprintf(&buf, "  Target Net Income:      %s\n", FormatCurrency(amount(report.Input.Income)))
	} else {
		fmt.Fprintf(&buf, "  Gross Income:           %s\n", FormatCurrency(amount(report.Input.Income)))
	}
	fmt.Fprintf(&buf, "  Deductible Expenses:    %s\n", FormatCurrency(amount(report.Input.Expenses)))
	fmt.Fprintf(&buf, "  Employment:             %s\n", report.Input.Employment)
	fmt.Fprintf(&buf, "  Marital Status:         %s\n", report.Input.Marital)
	if report.Input.FixedRetirementMonthly != nil {
		fmt.Fprintf(&buf, "  Fixed Retirement:       %s / month\n", FormatCurrency(amount(*report.Input.FixedRetirementMonthly)))
	}
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "SOCIAL INSURANCE:")
	fmt.Fprintf(&buf, "  Health & Nursing Care:  %s\n", FormatCurrency(report.Breakdown.Health))
	fmt.Fprintf(&buf, "  Retirement:             %s\n", FormatCurrency(report.Breakdown.Retirement))
	fmt.Fprintf(&buf, "  Unemployment:           %s\n", FormatCurrency(report.Breakdown.Unemployment))
	fmt.Fprintf(&buf, "  TOTAL:                  %s\n", FormatCurrency(amount(o.SocialInsurance)))
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "INCOME TAX:")
	fmt.Fprintf(&buf, "  Taxable Income:         %s\n", FormatCurrency(amount(report.TaxableIncome)))
	fmt.Fprintf(&buf, "  Marginal Rate:          %s\n", FormatPercentage(report.MarginalRate))
	fmt.Fprintf(&buf, "  Income Tax incl. Surtax: %s\n", FormatCurrency(amount(o.IncomeTax)))
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "RESULT:")
	fmt.Fprintf(&buf, "  Gross Income:           %s\n", FormatCurrency(amount(o.GrossIncome)))
	fmt.Fprintf(&buf, "  Net Income:             %s\n", FormatCurrency(amount(o.NetIncome)))
	fmt.Fprintf(&buf, "  Monthly Net Income:     %s\n", FormatCurrency(amount(o.NetIncome).Div(amount(uint32(12)))))
	fmt.Fprintf(&buf, "  Net Ratio:              %s\n", FormatPercentage(o.NetRatio()))
	if report.Reverse {
		fmt.Fprintf(&buf, "  Solver Iterations:      %d\n", report.Iterations)
	}

	return buf.Bytes(), nil
}
