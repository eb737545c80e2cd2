package compare

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// TableFormatter formats comparison results as a console table
type TableFormatter struct{}

// Format generates a formatted table comparing the years
func (tf *TableFormatter) Format(compSet *ComparisonSet) string {
	var sb strings.Builder

	sb.WriteString("TAX YEAR COMPARISON\n")
	sb.WriteString(strings.Repeat("=", 72) + "\n")
	mode := "gross income"
	if compSet.Reverse {
		mode = "target net income"
	}
	sb.WriteString(fmt.Sprintf("Input: %s %d, expenses %d, %s, %s\n",
		mode, compSet.Input.Income, compSet.Input.Expenses, compSet.Input.Employment, compSet.Input.Marital))
	sb.WriteString(fmt.Sprintf("Base Year: %d\n", compSet.BaseYear))
	sb.WriteString("\n")

	yearWidth := 12
	numWidth := 14

	sb.WriteString(fmt.Sprintf("%-*s %*s %*s %*s %*s\n",
		yearWidth, "Year",
		numWidth, "Gross Income",
		numWidth, "Social Ins.",
		numWidth, "Income Tax",
		numWidth, "Net Income"))
	sb.WriteString(strings.Repeat("-", 72) + "\n")

	if compSet.BaseResult != nil {
		sb.WriteString(tf.formatRow(compSet.BaseResult, yearWidth, numWidth, true))
	}
	for _, alt := range compSet.AlternativeResults {
		sb.WriteString(tf.formatRow(&alt, yearWidth, numWidth, false))
	}

	sb.WriteString(strings.Repeat("=", 72) + "\n")

	if len(compSet.AlternativeResults) > 0 {
		sb.WriteString("\nCOMPARISON TO BASE\n")
		sb.WriteString(strings.Repeat("-", 72) + "\n")

		for _, alt := range compSet.AlternativeResults {
			sb.WriteString(fmt.Sprintf("\n%d:\n", alt.Year))
			if compSet.Reverse {
				sb.WriteString(fmt.Sprintf("  Gross Income:     %s\n", signed(alt.GrossDiffFromBase)))
			} else {
				sb.WriteString(fmt.Sprintf("  Net Income:       %s (%s%%)\n",
					signed(alt.NetDiffFromBase), signedPct(alt.NetPctFromBase)))
			}
			sb.WriteString(fmt.Sprintf("  Social Insurance: %s\n", signed(alt.SocialDiffFromBase)))
			sb.WriteString(fmt.Sprintf("  Income Tax:       %s\n", signed(alt.TaxDiffFromBase)))
		}
		sb.WriteString("\n")
	}

	if len(compSet.Recommendations) > 0 {
		sb.WriteString("\nRECOMMENDATIONS\n")
		sb.WriteString(strings.Repeat("-", 72) + "\n")
		for _, rec := range compSet.Recommendations {
			sb.WriteString(fmt.Sprintf("• %s\n", rec))
		}
		sb.WriteString("\n")
	}

	return sb.String()
}

// formatRow formats a single year row
func (tf *TableFormatter) formatRow(result *YearResult, yearWidth, numWidth int, isBase bool) string {
	name := fmt.Sprintf("%d", result.Year)
	if isBase {
		name += " (base)"
	}

	return fmt.Sprintf("%-*s %*d %*d %*d %*d\n",
		yearWidth, name,
		numWidth, result.Outcome.GrossIncome,
		numWidth, result.Outcome.SocialInsurance,
		numWidth, result.Outcome.IncomeTax,
		numWidth, result.Outcome.NetIncome)
}

// FormatCompact creates a compact single-line summary of the net income per year
func (tf *TableFormatter) FormatCompact(compSet *ComparisonSet) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Base: %d", compSet.BaseYear))

	for _, alt := range compSet.AlternativeResults {
		change := "="
		delta := alt.NetDiffFromBase
		if compSet.Reverse {
			delta = alt.GrossDiffFromBase
		}
		if delta != 0 {
			change = signed(delta)
		}
		sb.WriteString(fmt.Sprintf(" | %d: %s", alt.Year, change))
	}

	return sb.String()
}

func signed(v int64) string {
	if v > 0 {
		return fmt.Sprintf("+%d", v)
	}
	return fmt.Sprintf("%d", v)
}

func signedPct(d decimal.Decimal) string {
	if d.IsPositive() {
		return "+" + d.StringFixed(2)
	}
	return d.StringFixed(2)
}
