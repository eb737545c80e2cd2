package domain

import (
	"math"

	"github.com/shopspring/decimal"
)

// UnboundedLimit is the upper limit of the last tax bracket.
const UnboundedLimit uint32 = math.MaxUint32

// TaxYearConfig contains all tax and social insurance tables for one calendar year.
// It is loaded from the yearly YAML tables and treated as read-only by the calculators.
type TaxYearConfig struct {
	Year         int                         `yaml:"year" json:"year"`
	Metadata     TaxYearMetadata             `yaml:"metadata" json:"metadata"`
	IncomeTax    IncomeTaxConfig             `yaml:"income_tax" json:"income_tax"`
	Health       HealthInsuranceConfig       `yaml:"health_insurance" json:"health_insurance"`
	Retirement   RetirementInsuranceConfig   `yaml:"retirement_insurance" json:"retirement_insurance"`
	Unemployment UnemploymentInsuranceConfig `yaml:"unemployment_insurance" json:"unemployment_insurance"`
}

// TaxYearMetadata describes where the values of a year table come from
type TaxYearMetadata struct {
	Description string `yaml:"description" json:"description"`
	Source      string `yaml:"source" json:"source"`
	LastUpdated string `yaml:"last_updated" json:"last_updated"`
}

// IncomeTaxConfig contains the progressive brackets and the surtax rules
type IncomeTaxConfig struct {
	Brackets []TaxBracket `yaml:"brackets" json:"brackets"`
	Surtax   SurtaxConfig `yaml:"surtax" json:"surtax"`
}

// TaxBracket is one progressive income range. Within the range the marginal
// rate rises linearly from RateMin to RateMax.
type TaxBracket struct {
	LowerLimit uint32          `yaml:"lower_limit" json:"lower_limit"`
	UpperLimit uint32          `yaml:"upper_limit" json:"upper_limit"`
	RateMin    decimal.Decimal `yaml:"rate_min" json:"rate_min"`
	RateMax    decimal.Decimal `yaml:"rate_max" json:"rate_max"`
}

// Width returns the size of the income range covered by the bracket
func (b TaxBracket) Width() uint32 {
	return b.UpperLimit - b.LowerLimit
}

// SurtaxConfig contains the solidarity surcharge rules applied on the income tax
type SurtaxConfig struct {
	// ExemptionLevel is the tax amount below which no surtax applies (doubled for joint filing)
	ExemptionLevel uint32 `yaml:"exemption_level" json:"exemption_level"`
	// Rate is applied on the whole tax amount
	Rate decimal.Decimal `yaml:"rate" json:"rate"`
	// MaxPercentage caps the surtax as a fraction of the tax above the exemption level
	MaxPercentage decimal.Decimal `yaml:"max_percentage" json:"max_percentage"`
}

// HealthInsuranceConfig contains the statutory health and nursing care insurance rules.
// Income bounds are monthly values.
type HealthInsuranceConfig struct {
	PremiumGeneral          decimal.Decimal `yaml:"premium_general" json:"premium_general"`
	PremiumGeneralReduced   decimal.Decimal `yaml:"premium_general_reduced" json:"premium_general_reduced"`
	PremiumAdditional       decimal.Decimal `yaml:"premium_additional" json:"premium_additional"`
	PremiumNursing          decimal.Decimal `yaml:"premium_nursing" json:"premium_nursing"`
	PremiumNursingSurcharge decimal.Decimal `yaml:"premium_nursing_surcharge" json:"premium_nursing_surcharge"`
	MinIncome               decimal.Decimal `yaml:"min_income" json:"min_income"` // only applies to self-employed persons
	MaxIncome               decimal.Decimal `yaml:"max_income" json:"max_income"`
}

// RetirementInsuranceConfig contains the statutory pension insurance rules
type RetirementInsuranceConfig struct {
	Premium   decimal.Decimal `yaml:"premium" json:"premium"`
	MaxIncome decimal.Decimal `yaml:"max_income" json:"max_income"`
}

// UnemploymentInsuranceConfig contains the unemployment insurance rules
type UnemploymentInsuranceConfig struct {
	Premium   decimal.Decimal `yaml:"premium" json:"premium"`
	MaxIncome decimal.Decimal `yaml:"max_income" json:"max_income"`
}

// Clone returns a deep copy so callers can adjust single values without
// touching a shared table.
func (c *TaxYearConfig) Clone() *TaxYearConfig {
	if c == nil {
		return nil
	}
	clone := *c
	clone.IncomeTax.Brackets = append([]TaxBracket(nil), c.IncomeTax.Brackets...)
	return &clone
}
