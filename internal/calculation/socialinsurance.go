package calculation

import (
	"fmt"

	"github.com/rgehrsitz/netincome/internal/domain"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// SocialInsurance calculates the yearly social insurance premiums paid by the
// person (health incl. nursing care, retirement and unemployment insurance).
func SocialInsurance(
	health domain.HealthInsuranceConfig,
	retirement domain.RetirementInsuranceConfig,
	unemployment domain.UnemploymentInsuranceConfig,
	input domain.TaxInput,
) (uint32, error) {
	breakdown, err := SocialInsuranceDetail(health, retirement, unemployment, input)
	if err != nil {
		return 0, err
	}
	return breakdown.Total, nil
}

// SocialInsuranceDetail calculates the premium per scheme. The per scheme
// values are not truncated; only the total is.
func SocialInsuranceDetail(
	health domain.HealthInsuranceConfig,
	retirement domain.RetirementInsuranceConfig,
	unemployment domain.UnemploymentInsuranceConfig,
	input domain.TaxInput,
) (domain.SocialInsuranceBreakdown, error) {
	var breakdown domain.SocialInsuranceBreakdown

	healthRate, err := healthInsuranceRate(health, input.Employment)
	if err != nil {
		return breakdown, err
	}
	retirementRate, err := retirementInsuranceRate(retirement, input.Employment)
	if err != nil {
		return breakdown, err
	}

	income := amount(input.Income)

	// self-employed persons pay at least the premium of the minimum income
	healthIncome := income
	if input.IsSelfEmployed() {
		minIncome := health.MinIncome.Mul(twelve).Truncate(0)
		healthIncome = decimal.Max(income, minIncome)
	}
	breakdown.Health = schemePremium(healthIncome, healthRate, health.MaxIncome)

	if input.FixedRetirementMonthly != nil {
		breakdown.Retirement = decimal.NewFromInt(int64(*input.FixedRetirementMonthly)).Mul(twelve)
	} else {
		breakdown.Retirement = schemePremium(income, retirementRate, retirement.MaxIncome)
	}

	// the unemployment insurance does not apply to self-employed persons
	breakdown.Unemployment = decimal.Zero
	if !input.IsSelfEmployed() {
		breakdown.Unemployment = schemePremium(income, unemployment.Premium.Div(two), unemployment.MaxIncome)
	}

	total := lo.Reduce(
		[]decimal.Decimal{breakdown.Health, breakdown.Retirement, breakdown.Unemployment},
		func(sum decimal.Decimal, premium decimal.Decimal, _ int) decimal.Decimal { return sum.Add(premium) },
		decimal.Zero,
	)

	var ok bool
	breakdown.Total, ok = amountOf(total)
	if !ok {
		return breakdown, fmt.Errorf("%w: %s", ErrInputRange, total.StringFixed(2))
	}
	return breakdown, nil
}

// schemePremium applies the premium rate on the yearly income, limited by the monthly income cap
func schemePremium(yearlyIncome, rate, maxMonthlyIncome decimal.Decimal) decimal.Decimal {
	effectiveIncome := decimal.Min(yearlyIncome, maxMonthlyIncome.Mul(twelve))
	return effectiveIncome.Mul(rate)
}

// healthInsuranceRate returns the share of the income paid by the person.
// Self-employed persons pay the reduced general rate without an employer share.
// Employees pay half of the shared rates; the nursing surcharge for childless
// persons is never shared with the employer.
func healthInsuranceRate(cfg domain.HealthInsuranceConfig, status domain.EmploymentStatus) (decimal.Decimal, error) {
	switch status {
	case domain.SelfEmployed:
		return cfg.PremiumGeneralReduced.
			Add(cfg.PremiumAdditional).
			Add(cfg.PremiumNursing).
			Add(cfg.PremiumNursingSurcharge), nil
	case domain.Employed:
		shared := cfg.PremiumGeneral.Add(cfg.PremiumAdditional).Add(cfg.PremiumNursing)
		return shared.Div(two).Add(cfg.PremiumNursingSurcharge), nil
	default:
		return decimal.Zero, fmt.Errorf("unsupported employment status: %s", status)
	}
}

// retirementInsuranceRate returns the share of the retirement premium paid by the person
func retirementInsuranceRate(cfg domain.RetirementInsuranceConfig, status domain.EmploymentStatus) (decimal.Decimal, error) {
	switch status {
	case domain.SelfEmployed:
		return cfg.Premium, nil
	case domain.Employed:
		// the employer pays the other half
		return cfg.Premium.Div(two), nil
	default:
		return decimal.Zero, fmt.Errorf("unsupported employment status: %s", status)
	}
}
