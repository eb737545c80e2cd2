package config

import (
	"fmt"
	"os"

	"github.com/rgehrsitz/netincome/internal/domain"
	"github.com/shopspring/decimal"
)

// TableParser loads user supplied year tables
type TableParser struct{}

// NewTableParser creates a new table parser
func NewTableParser() *TableParser {
	return &TableParser{}
}

// LoadFromFile loads a year table from a YAML or JSON file
func (tp *TableParser) LoadFromFile(filename string) (*domain.TaxYearConfig, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	cfg, err := parseTable(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return cfg, nil
}

// ValidationError describes an invalid value of a year table
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

var one = decimal.NewFromInt(1)

// Validate checks that a year table is structurally usable by the calculators
func Validate(cfg *domain.TaxYearConfig) error {
	if cfg == nil {
		return &ValidationError{Field: "config", Message: "is required"}
	}
	if cfg.Year <= 0 {
		return &ValidationError{Field: "year", Message: "must be positive"}
	}
	if err := validateIncomeTax(&cfg.IncomeTax); err != nil {
		return err
	}
	if err := validateHealthInsurance(&cfg.Health); err != nil {
		return err
	}
	if err := validateScheme("retirement_insurance", cfg.Retirement.Premium, cfg.Retirement.MaxIncome); err != nil {
		return err
	}
	if err := validateScheme("unemployment_insurance", cfg.Unemployment.Premium, cfg.Unemployment.MaxIncome); err != nil {
		return err
	}
	return nil
}

func validateIncomeTax(cfg *domain.IncomeTaxConfig) error {
	if len(cfg.Brackets) == 0 {
		return &ValidationError{Field: "income_tax.brackets", Message: "at least one bracket is required"}
	}
	if cfg.Brackets[0].LowerLimit != 0 {
		return &ValidationError{Field: "income_tax.brackets[0].lower_limit", Message: "must be 0"}
	}
	for i, b := range cfg.Brackets {
		field := fmt.Sprintf("income_tax.brackets[%d]", i)
		if b.UpperLimit <= b.LowerLimit {
			return &ValidationError{Field: field, Message: "upper limit must be above lower limit"}
		}
		if i > 0 && cfg.Brackets[i-1].UpperLimit != b.LowerLimit {
			return &ValidationError{Field: field, Message: fmt.Sprintf("lower limit %d does not continue previous upper limit %d", b.LowerLimit, cfg.Brackets[i-1].UpperLimit)}
		}
		if err := validateRate(field+".rate_min", b.RateMin); err != nil {
			return err
		}
		if err := validateRate(field+".rate_max", b.RateMax); err != nil {
			return err
		}
		if b.RateMin.GreaterThan(b.RateMax) {
			return &ValidationError{Field: field, Message: "rate_min cannot be greater than rate_max"}
		}
	}
	if last := cfg.Brackets[len(cfg.Brackets)-1]; last.UpperLimit != domain.UnboundedLimit {
		return &ValidationError{Field: "income_tax.brackets", Message: fmt.Sprintf("last bracket must be unbounded (%d)", domain.UnboundedLimit)}
	}

	if err := validateRate("income_tax.surtax.rate", cfg.Surtax.Rate); err != nil {
		return err
	}
	return validateRate("income_tax.surtax.max_percentage", cfg.Surtax.MaxPercentage)
}

func validateHealthInsurance(cfg *domain.HealthInsuranceConfig) error {
	rates := []struct {
		field string
		value decimal.Decimal
	}{
		{"health_insurance.premium_general", cfg.PremiumGeneral},
		{"health_insurance.premium_general_reduced", cfg.PremiumGeneralReduced},
		{"health_insurance.premium_additional", cfg.PremiumAdditional},
		{"health_insurance.premium_nursing", cfg.PremiumNursing},
		{"health_insurance.premium_nursing_surcharge", cfg.PremiumNursingSurcharge},
	}
	for _, r := range rates {
		if err := validateRate(r.field, r.value); err != nil {
			return err
		}
	}
	if cfg.MinIncome.LessThan(decimal.Zero) {
		return &ValidationError{Field: "health_insurance.min_income", Message: "cannot be negative"}
	}
	if !cfg.MaxIncome.IsPositive() {
		return &ValidationError{Field: "health_insurance.max_income", Message: "must be positive"}
	}
	if cfg.MinIncome.GreaterThan(cfg.MaxIncome) {
		return &ValidationError{Field: "health_insurance.min_income", Message: "cannot be greater than max_income"}
	}
	return nil
}

func validateScheme(name string, premium, maxIncome decimal.Decimal) error {
	if err := validateRate(name+".premium", premium); err != nil {
		return err
	}
	if !maxIncome.IsPositive() {
		return &ValidationError{Field: name + ".max_income", Message: "must be positive"}
	}
	return nil
}

func validateRate(field string, rate decimal.Decimal) error {
	if rate.LessThan(decimal.Zero) || rate.GreaterThan(one) {
		return &ValidationError{Field: field, Message: fmt.Sprintf("rate %s must be between 0 and 1", rate.String())}
	}
	return nil
}

// Overrides adjusts the insurer and family specific values of a year table.
// The shipped tables use the additional premium of Techniker Krankenkasse and
// the nursing surcharge for childless persons.
type Overrides struct {
	HealthAdditional *decimal.Decimal `yaml:"health_additional,omitempty"`
	NursingSurcharge *decimal.Decimal `yaml:"nursing_surcharge,omitempty"`
}

// IsEmpty reports whether no override is set
func (o Overrides) IsEmpty() bool {
	return o.HealthAdditional == nil && o.NursingSurcharge == nil
}

// Apply returns a copy of cfg with the overrides applied
func (o Overrides) Apply(cfg *domain.TaxYearConfig) (*domain.TaxYearConfig, error) {
	adjusted := cfg.Clone()
	if o.HealthAdditional != nil {
		adjusted.Health.PremiumAdditional = *o.HealthAdditional
	}
	if o.NursingSurcharge != nil {
		adjusted.Health.PremiumNursingSurcharge = *o.NursingSurcharge
	}
	if err := Validate(adjusted); err != nil {
		return nil, fmt.Errorf("invalid overrides: %w", err)
	}
	return adjusted, nil
}
