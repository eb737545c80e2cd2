package compare

import (
	"encoding/csv"
	"strconv"
	"strings"
)

// CSVFormatter formats comparison results as CSV
type CSVFormatter struct{}

// Format generates CSV output for comparison results
func (cf *CSVFormatter) Format(compSet *ComparisonSet) (string, error) {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	header := []string{
		"Year",
		"Type",
		"Gross Income",
		"Social Insurance",
		"Income Tax",
		"Net Income",
		"Gross Diff from Base",
		"Net Diff from Base",
		"Net % Change",
		"Social Diff from Base",
		"Tax Diff from Base",
	}
	if err := writer.Write(header); err != nil {
		return "", err
	}

	if compSet.BaseResult != nil {
		if err := writer.Write(cf.formatRow(compSet.BaseResult, "base")); err != nil {
			return "", err
		}
	}

	for _, alt := range compSet.AlternativeResults {
		if err := writer.Write(cf.formatRow(&alt, "alternative")); err != nil {
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}

	return sb.String(), nil
}

// formatRow formats a year result as a CSV row
func (cf *CSVFormatter) formatRow(result *YearResult, rowType string) []string {
	return []string{
		strconv.Itoa(result.Year),
		rowType,
		strconv.FormatUint(uint64(result.Outcome.GrossIncome), 10),
		strconv.FormatUint(uint64(result.Outcome.SocialInsurance), 10),
		strconv.FormatUint(uint64(result.Outcome.IncomeTax), 10),
		strconv.FormatInt(int64(result.Outcome.NetIncome), 10),
		strconv.FormatInt(result.GrossDiffFromBase, 10),
		strconv.FormatInt(result.NetDiffFromBase, 10),
		result.NetPctFromBase.StringFixed(2),
		strconv.FormatInt(result.SocialDiffFromBase, 10),
		strconv.FormatInt(result.TaxDiffFromBase, 10),
	}
}
