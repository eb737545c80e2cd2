package calculation

import (
	"github.com/rgehrsitz/netincome/internal/domain"
	"github.com/shopspring/decimal"
)

// IncomeTax calculates the base income tax on the taxable income using the
// progressive brackets. With split set the tax is calculated on half of the
// income and doubled afterwards (joint filing).
func IncomeTax(cfg domain.IncomeTaxConfig, taxableIncome uint32, split bool) uint32 {
	income := taxableIncome
	if split {
		income /= 2
	}

	sum := decimal.Zero
	for _, bracket := range cfg.Brackets {
		sum = sum.Add(bracketTax(income, bracket))
	}

	tax := truncateAmount(sum)
	if split {
		// half of the income always yields less than half of the amount range
		return tax * 2
	}
	return tax
}

// bracketTax returns the untruncated tax contributed by a single bracket
func bracketTax(income uint32, bracket domain.TaxBracket) decimal.Decimal {
	if income <= bracket.LowerLimit || bracket.Width() == 0 {
		return decimal.Zero
	}

	taxed := min(income-bracket.LowerLimit, bracket.Width())
	taxedIncome := amount(taxed)

	// taxed * (rate_min + taxed/width * (rate_max-rate_min) / 2), with a single division
	rateDiff := bracket.RateMax.Sub(bracket.RateMin)
	progression := taxedIncome.Mul(taxedIncome).Mul(rateDiff).Div(amount(bracket.Width()).Mul(two))

	return taxedIncome.Mul(bracket.RateMin).Add(progression)
}

// MarginalRate returns the marginal income tax rate at the given taxable income,
// surtax excluded. With split set the rate applies to half of the income.
func MarginalRate(cfg domain.IncomeTaxConfig, taxableIncome uint32, split bool) decimal.Decimal {
	if split {
		taxableIncome /= 2
	}
	for _, bracket := range cfg.Brackets {
		if taxableIncome >= bracket.UpperLimit || bracket.Width() == 0 {
			continue
		}
		if taxableIncome < bracket.LowerLimit {
			break
		}
		position := amount(taxableIncome - bracket.LowerLimit).Div(amount(bracket.Width()))
		return bracket.RateMin.Add(bracket.RateMax.Sub(bracket.RateMin).Mul(position))
	}
	if n := len(cfg.Brackets); n > 0 {
		return cfg.Brackets[n-1].RateMax
	}
	return decimal.Zero
}
