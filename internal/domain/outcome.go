package domain

import "github.com/shopspring/decimal"

// TaxOutcome is the result of one net income calculation
type TaxOutcome struct {
	GrossIncome     uint32 `json:"gross_income"`
	NetIncome       int32  `json:"net_income"` // negative when expenses exceed the income
	SocialInsurance uint32 `json:"social_insurance"`
	IncomeTax       uint32 `json:"income_tax"` // including the surtax
}

// TaxRatio returns which share of the income is spent on social insurance and income tax
func (o TaxOutcome) TaxRatio() decimal.Decimal {
	taxes := decimal.NewFromInt(int64(o.SocialInsurance) + int64(o.IncomeTax))
	base := decimal.NewFromInt(int64(o.NetIncome)).Add(taxes)
	if base.IsZero() {
		return decimal.Zero
	}
	return taxes.Div(base)
}

// NetRatio returns the share of the income that remains after insurance and tax
func (o TaxOutcome) NetRatio() decimal.Decimal {
	return decimal.NewFromInt(1).Sub(o.TaxRatio())
}

// SocialInsuranceBreakdown contains the yearly premium per scheme before truncation
type SocialInsuranceBreakdown struct {
	Health       decimal.Decimal `json:"health"`
	Retirement   decimal.Decimal `json:"retirement"`
	Unemployment decimal.Decimal `json:"unemployment"`
	Total        uint32          `json:"total"`
}
