package output

import (
	"fmt"

	"github.com/rgehrsitz/netincome/internal/calculation"
	"github.com/rgehrsitz/netincome/internal/domain"
	"github.com/shopspring/decimal"
)

// Report bundles everything the formatters render for one calculation
type Report struct {
	Year    int                `json:"year"`
	Reverse bool               `json:"reverse"`
	Input   domain.TaxInput    `json:"input"`
	Outcome *domain.TaxOutcome `json:"outcome"`

	Breakdown     domain.SocialInsuranceBreakdown `json:"social_insurance_breakdown"`
	TaxableIncome uint32                          `json:"taxable_income"`
	MarginalRate  decimal.Decimal                 `json:"marginal_rate"`
	Iterations    int                             `json:"iterations,omitempty"`
}

// NewReport derives the details of a report from the outcome. The outcome's
// gross income is used, so reverse calculations get the breakdown of the
// gross income found.
func NewReport(cfg *domain.TaxYearConfig, input domain.TaxInput, outcome *domain.TaxOutcome, reverse bool) (*Report, error) {
	if cfg == nil || outcome == nil {
		return nil, fmt.Errorf("configuration and outcome are required")
	}

	gross := input.WithIncome(outcome.GrossIncome)
	breakdown, err := calculation.SocialInsuranceDetail(cfg.Health, cfg.Retirement, cfg.Unemployment, gross)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate social insurance breakdown: %w", err)
	}

	var taxable uint32
	if deductions := uint64(breakdown.Total) + uint64(input.Expenses); deductions < uint64(outcome.GrossIncome) {
		taxable = outcome.GrossIncome - uint32(deductions)
	}

	return &Report{
		Year:          cfg.Year,
		Reverse:       reverse,
		Input:         input,
		Outcome:       outcome,
		Breakdown:     breakdown,
		TaxableIncome: taxable,
		MarginalRate:  calculation.MarginalRate(cfg.IncomeTax, taxable, input.IsMarried()),
	}, nil
}

// SummaryLine returns the one line result of the command line tool
func (r *Report) SummaryLine() string {
	return fmt.Sprintf("Gross income: %d, net income: %d, social security taxes: %d, income taxes: %d, net ratio: %s",
		r.Outcome.GrossIncome,
		r.Outcome.NetIncome,
		r.Outcome.SocialInsurance,
		r.Outcome.IncomeTax,
		r.Outcome.NetRatio().StringFixed(4))
}

// FormatCurrency formats a decimal as currency
func FormatCurrency(amount decimal.Decimal) string {
	return amount.StringFixed(2) + " €"
}

// FormatPercentage formats a fraction as percentage
func FormatPercentage(fraction decimal.Decimal) string {
	return fraction.Mul(decimal.NewFromInt(100)).StringFixed(2) + "%"
}

func amount[T ~int32 | ~uint32](v T) decimal.Decimal {
	return decimal.NewFromInt(int64(v))
}
