package output

import (
	"bytes"
	"encoding/csv"
	"strconv"
)

// CSVFormatter renders the report as a header and a single data row
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(report *Report) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)

	header := []string{"Year", "Reverse", "Employment", "Marital", "Expenses", "GrossIncome", "SocialInsurance", "HealthInsurance", "RetirementInsurance", "UnemploymentInsurance", "TaxableIncome", "IncomeTax", "NetIncome", "NetRatio"}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	o := report.Outcome
	row := []string{
		strconv.Itoa(report.Year),
		strconv.FormatBool(report.Reverse),
		report.Input.Employment.String(),
		report.Input.Marital.String(),
		strconv.FormatUint(uint64(report.Input.Expenses), 10),
		strconv.FormatUint(uint64(o.GrossIncome), 10),
		strconv.FormatUint(uint64(o.SocialInsurance), 10),
		report.Breakdown.Health.StringFixed(2),
		report.Breakdown.Retirement.StringFixed(2),
		report.Breakdown.Unemployment.StringFixed(2),
		strconv.FormatUint(uint64(report.TaxableIncome), 10),
		strconv.FormatUint(uint64(o.IncomeTax), 10),
		strconv.FormatInt(int64(o.NetIncome), 10),
		o.NetRatio().StringFixed(4),
	}
	if err := w.Write(row); err != nil {
		return nil, err
	}

	w.Flush()
	return buf.Bytes(), w.Error()
}
