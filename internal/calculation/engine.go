package calculation

import (
	"fmt"
	"math"

	"github.com/rgehrsitz/netincome/internal/domain"
)

// CalculationEngine orchestrates the social insurance and income tax
// calculations into the net income. It holds no calculation state and can be
// shared between goroutines.
type CalculationEngine struct {
	Logger Logger
}

// NewCalculationEngine creates a new calculation engine with a no-op logger
func NewCalculationEngine() *CalculationEngine {
	return &CalculationEngine{Logger: NopLogger{}}
}

// SetLogger sets the logger; nil resets it to the no-op logger
func (ce *CalculationEngine) SetLogger(logger Logger) {
	if logger == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = logger
}

func (ce *CalculationEngine) logger() Logger {
	if ce == nil || ce.Logger == nil {
		return NopLogger{}
	}
	return ce.Logger
}

// NetIncome calculates social insurance and income tax for the gross income
// of the input and returns the remaining net income.
func (ce *CalculationEngine) NetIncome(cfg *domain.TaxYearConfig, input domain.TaxInput) (*domain.TaxOutcome, error) {
	log := ce.logger()

	if cfg == nil {
		return nil, ErrMissingConfig
	}

	if input.Expenses < input.Income && input.Income-input.Expenses > math.MaxInt32 {
		log.Warnf("rejecting income %d with expenses %d", input.Income, input.Expenses)
		return nil, ErrInputTooLarge
	}

	social, err := SocialInsurance(cfg.Health, cfg.Retirement, cfg.Unemployment, input)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate social insurance: %w", err)
	}

	// insurance premiums and expenses are deducted before the income tax
	deductions := uint64(social) + uint64(input.Expenses)
	var taxableIncome uint32
	if deductions < uint64(input.Income) {
		taxableIncome = input.Income - uint32(deductions)
	}

	tax := TotalIncomeTax(cfg.IncomeTax, taxableIncome, input.Marital)

	net := int64(input.Income) - int64(input.Expenses) - int64(social) - int64(tax)
	if net < math.MinInt32 {
		log.Warnf("net income %d is below the signed output range", net)
		return nil, ErrInputTooLarge
	}

	log.Debugf("year %d: gross=%d expenses=%d social=%d taxable=%d tax=%d net=%d",
		cfg.Year, input.Income, input.Expenses, social, taxableIncome, tax, net)

	return &domain.TaxOutcome{
		GrossIncome:     input.Income,
		NetIncome:       int32(net),
		SocialInsurance: social,
		IncomeTax:       tax,
	}, nil
}

// NetIncome calculates the net income without logging
func NetIncome(cfg *domain.TaxYearConfig, input domain.TaxInput) (*domain.TaxOutcome, error) {
	return NewCalculationEngine().NetIncome(cfg, input)
}
