package calculation

import (
	"github.com/rgehrsitz/netincome/internal/domain"
	"github.com/shopspring/decimal"
)

// Surtax calculates the solidarity surcharge on the given income tax.
// Below the exemption level (doubled for joint filing) nothing is due; above
// it the surcharge is the full rate on the tax, limited by MaxPercentage of
// the tax exceeding the exemption level.
func Surtax(tax uint32, marital domain.MaritalStatus, cfg domain.SurtaxConfig) uint32 {
	exemption := uint64(cfg.ExemptionLevel)
	if marital == domain.Married {
		exemption *= 2
	}

	if uint64(tax) < exemption {
		return 0
	}

	limit := decimal.NewFromInt(int64(uint64(tax) - exemption)).Mul(cfg.MaxPercentage)
	full := amount(tax).Mul(cfg.Rate)

	return truncateAmount(decimal.Min(full, limit))
}

// TotalIncomeTax calculates the income tax including the surtax
func TotalIncomeTax(cfg domain.IncomeTaxConfig, taxableIncome uint32, marital domain.MaritalStatus) uint32 {
	tax := IncomeTax(cfg, taxableIncome, marital == domain.Married)
	surtax := Surtax(tax, marital, cfg.Surtax)

	total := uint64(tax) + uint64(surtax)
	if total > uint64(^uint32(0)) {
		return ^uint32(0)
	}
	return uint32(total)
}
