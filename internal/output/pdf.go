package output

import (
	"bytes"
	"fmt"
	"time"

	"github.com/go-pdf/fpdf"
)

const (
	pageWidth    = 210.0
	marginLeft   = 20.0
	marginRight  = 20.0
	marginTop    = 20.0
	contentWidth = pageWidth - marginLeft - marginRight
	labelWidth   = 100.0
)

// PDFFormatter renders a one page summary
type PDFFormatter struct{}

func (p PDFFormatter) Name() string { return "pdf" }

func (p PDFFormatter) Format(report *Report) ([]byte, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(marginLeft, marginTop, marginRight)
	pdf.SetAutoPageBreak(true, marginTop)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.AddPage()
	pdf.SetFont("Arial", "B", 20)
	pdf.SetTextColor(0, 51, 102)
	pdf.CellFormat(contentWidth, 12, fmt.Sprintf("Net Income %d", report.Year), "", 1, "L", false, 0, "")

	pdf.SetFont("Arial", "I", 10)
	pdf.SetTextColor(120, 120, 120)
	pdf.CellFormat(contentWidth, 6, fmt.Sprintf("Generated: %s", time.Now().Format("2 January 2006")), "", 1, "L", false, 0, "")
	pdf.Ln(6)

	o := report.Outcome
	section := func(title string, rows [][2]string) {
		pdf.SetFont("Arial", "B", 12)
		pdf.SetTextColor(0, 51, 102)
		pdf.SetFillColor(245, 247, 250)
		pdf.SetDrawColor(200, 200, 200)
		pdf.CellFormat(contentWidth, 8, tr(title), "1", 1, "L", true, 0, "")

		pdf.SetFont("Arial", "", 11)
		pdf.SetTextColor(50, 50, 50)
		for _, row := range rows {
			pdf.CellFormat(labelWidth, 7, tr(row[0]), "LB", 0, "L", false, 0, "")
			pdf.CellFormat(contentWidth-labelWidth, 7, tr(row[1]), "RB", 1, "R", false, 0, "")
		}
		pdf.Ln(5)
	}

	incomeLabel := "Gross income"
	if report.Reverse {
		incomeLabel = "Target net income"
	}
	section("Input", [][2]string{
		{incomeLabel, FormatCurrency(amount(report.Input.Income))},
		{"Deductible expenses", FormatCurrency(amount(report.Input.Expenses))},
		{"Employment", report.Input.Employment.String()},
		{"Marital status", report.Input.Marital.String()},
	})

	section("Social insurance", [][2]string{
		{"Health & nursing care", FormatCurrency(report.Breakdown.Health)},
		{"Retirement", FormatCurrency(report.Breakdown.Retirement)},
		{"Unemployment", FormatCurrency(report.Breakdown.Unemployment)},
		{"Total", FormatCurrency(amount(o.SocialInsurance))},
	})

	section("Income tax", [][2]string{
		{"Taxable income", FormatCurrency(amount(report.TaxableIncome))},
		{"Marginal rate", FormatPercentage(report.MarginalRate)},
		{"Income tax incl. surtax", FormatCurrency(amount(o.IncomeTax))},
	})

	section("Result", [][2]string{
		{"Gross income", FormatCurrency(amount(o.GrossIncome))},
		{"Net income", FormatCurrency(amount(o.NetIncome))},
		{"Net ratio", FormatPercentage(o.NetRatio())},
	})

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
