package compare

import (
	"fmt"

	"github.com/rgehrsitz/netincome/internal/domain"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// YearResult represents the calculation for a single tax year with deltas to the base year
type YearResult struct {
	Year       int                `json:"year"`
	Outcome    *domain.TaxOutcome `json:"outcome"`
	Iterations int                `json:"iterations,omitempty"` // reverse calculations only

	// Comparison to base
	GrossDiffFromBase  int64           `json:"gross_diff_from_base"`
	NetDiffFromBase    int64           `json:"net_diff_from_base"`
	NetPctFromBase     decimal.Decimal `json:"net_pct_from_base"`
	SocialDiffFromBase int64           `json:"social_diff_from_base"`
	TaxDiffFromBase    int64           `json:"tax_diff_from_base"`
}

// Taxes returns social insurance and income tax combined
func (r YearResult) Taxes() int64 {
	return int64(r.Outcome.SocialInsurance) + int64(r.Outcome.IncomeTax)
}

// ComparisonSet represents the results for all compared years; the first year is the base
type ComparisonSet struct {
	Input              domain.TaxInput `json:"input"`
	Reverse            bool            `json:"reverse"`
	BaseYear           int             `json:"base_year"`
	BaseResult         *YearResult     `json:"base_result"`
	AlternativeResults []YearResult    `json:"alternative_results"`
	Recommendations    []string        `json:"recommendations"`
}

// Years returns the compared years in input order
func (cs *ComparisonSet) Years() []int {
	years := []int{cs.BaseYear}
	return append(years, lo.Map(cs.AlternativeResults, func(r YearResult, _ int) int { return r.Year })...)
}

// CalculateComparison computes the deltas of a year against the base year
func CalculateComparison(year, base YearResult) YearResult {
	year.GrossDiffFromBase = int64(year.Outcome.GrossIncome) - int64(base.Outcome.GrossIncome)
	year.NetDiffFromBase = int64(year.Outcome.NetIncome) - int64(base.Outcome.NetIncome)
	year.SocialDiffFromBase = int64(year.Outcome.SocialInsurance) - int64(base.Outcome.SocialInsurance)
	year.TaxDiffFromBase = int64(year.Outcome.IncomeTax) - int64(base.Outcome.IncomeTax)

	year.NetPctFromBase = decimal.Zero
	if base.Outcome.NetIncome != 0 {
		year.NetPctFromBase = decimal.NewFromInt(year.NetDiffFromBase).
			Div(decimal.NewFromInt(int64(base.Outcome.NetIncome)).Abs()).
			Mul(decimal.NewFromInt(100))
	}

	return year
}

// GenerateRecommendations summarizes which year is the most favorable
func GenerateRecommendations(compSet *ComparisonSet) []string {
	recommendations := []string{}

	if compSet.BaseResult == nil || len(compSet.AlternativeResults) == 0 {
		return recommendations
	}

	all := append([]YearResult{*compSet.BaseResult}, compSet.AlternativeResults...)

	if compSet.Reverse {
		// the net income is fixed; the required gross income differs
		cheapest := lo.MinBy(all, func(a, b YearResult) bool {
			return a.Outcome.GrossIncome < b.Outcome.GrossIncome
		})
		if cheapest.Year != compSet.BaseYear {
			recommendations = append(recommendations,
				fmt.Sprintf("Lowest gross income: %d requires %d less than %d",
					cheapest.Year, -cheapest.GrossDiffFromBase, compSet.BaseYear))
		}
	} else {
		best := lo.MaxBy(all, func(a, b YearResult) bool {
			return a.Outcome.NetIncome > b.Outcome.NetIncome
		})
		if best.Year != compSet.BaseYear {
			recommendations = append(recommendations,
				fmt.Sprintf("Highest net income: %d provides %d more than %d",
					best.Year, best.NetDiffFromBase, compSet.BaseYear))
		}
	}

	lowest := lo.MinBy(all, func(a, b YearResult) bool {
		return a.Taxes() < b.Taxes()
	})
	if lowest.Year != compSet.BaseYear {
		recommendations = append(recommendations,
			fmt.Sprintf("Lowest deductions: %d saves %d in taxes and social insurance compared to %d",
				lowest.Year, compSet.BaseResult.Taxes()-lowest.Taxes(), compSet.BaseYear))
	}

	return recommendations
}
