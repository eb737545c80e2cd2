package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rgehrsitz/netincome/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSupportedYears(t *testing.T) {
	assert.Equal(t, []int{2024, 2025}, SupportedYears())
	assert.Contains(t, SupportedYears(), DefaultYear)
}

func TestForYear(t *testing.T) {
	cfg, err := ForYear(2025)
	require.NoError(t, err)

	assert.Equal(t, 2025, cfg.Year)
	require.Len(t, cfg.IncomeTax.Brackets, 5)
	assert.Equal(t, uint32(12096), cfg.IncomeTax.Brackets[0].UpperLimit)
	assert.Equal(t, domain.UnboundedLimit, cfg.IncomeTax.Brackets[4].UpperLimit)
	assert.True(t, cfg.IncomeTax.Brackets[1].RateMax.Equal(decimal.RequireFromString("0.2397")))
	assert.Equal(t, uint32(19950), cfg.IncomeTax.Surtax.ExemptionLevel)
	assert.True(t, cfg.Health.PremiumAdditional.Equal(decimal.RequireFromString("0.0245")))
	assert.True(t, cfg.Health.MinIncome.Equal(decimal.RequireFromString("1248.32")))
	assert.True(t, cfg.Retirement.MaxIncome.Equal(decimal.NewFromInt(8050)))
	assert.True(t, cfg.Unemployment.Premium.Equal(decimal.RequireFromString("0.026")))

	cfg2024, err := ForYear(2024)
	require.NoError(t, err)
	assert.Equal(t, uint32(11784), cfg2024.IncomeTax.Brackets[0].UpperLimit)
	assert.True(t, cfg2024.Health.MaxIncome.Equal(decimal.NewFromInt(5175)))
}

func TestForYear_ReturnsFreshCopies(t *testing.T) {
	first := MustForYear(2025)
	first.Health.PremiumAdditional = decimal.Zero
	first.IncomeTax.Brackets[0].UpperLimit = 1

	second := MustForYear(2025)
	assert.True(t, second.Health.PremiumAdditional.Equal(decimal.RequireFromString("0.0245")))
	assert.Equal(t, uint32(12096), second.IncomeTax.Brackets[0].UpperLimit)
}

func TestForYear_Unsupported(t *testing.T) {
	cfg, err := ForYear(2000)

	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsupportedYear))
	assert.Contains(t, err.Error(), "no configuration available for given year")
}

func TestMarshalRoundTrip(t *testing.T) {
	cfg := MustForYear(2024)

	data, err := Marshal(cfg)
	require.NoError(t, err)
	assert.Contains(t, string(data), "exemption_level: 18130")

	back, err := parseTable(data)
	require.NoError(t, err)
	assert.Equal(t, cfg.Year, back.Year)
	require.Len(t, back.IncomeTax.Brackets, len(cfg.IncomeTax.Brackets))
	for i := range cfg.IncomeTax.Brackets {
		assert.Equal(t, cfg.IncomeTax.Brackets[i].LowerLimit, back.IncomeTax.Brackets[i].LowerLimit)
		assert.True(t, cfg.IncomeTax.Brackets[i].RateMax.Equal(back.IncomeTax.Brackets[i].RateMax))
	}
	assert.True(t, cfg.Health.MinIncome.Equal(back.Health.MinIncome))
}

func TestTableParser_LoadFromFile(t *testing.T) {
	dir := t.TempDir()

	data, err := Marshal(MustForYear(2025))
	require.NoError(t, err)
	good := filepath.Join(dir, "2026.yaml")
	require.NoError(t, os.WriteFile(good, data, 0o600))

	parser := NewTableParser()
	cfg, err := parser.LoadFromFile(good)
	require.NoError(t, err)
	assert.Equal(t, 2025, cfg.Year)

	_, err = parser.LoadFromFile(filepath.Join(dir, "missing.yaml"))
	assert.ErrorContains(t, err, "failed to read file")

	broken := filepath.Join(dir, "broken.yaml")
	require.NoError(t, os.WriteFile(broken, []byte("year: 2025\nincome_tax: [\n"), 0o600))
	_, err = parser.LoadFromFile(broken)
	assert.ErrorContains(t, err, "failed to parse YAML")

	unknown := filepath.Join(dir, "unknown.yaml")
	require.NoError(t, os.WriteFile(unknown, append(data, []byte("church_tax: 0.09\n")...), 0o600))
	_, err = parser.LoadFromFile(unknown)
	assert.Error(t, err, "unknown fields must be rejected")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(cfg *domain.TaxYearConfig)
		field  string
	}{
		{"valid", func(cfg *domain.TaxYearConfig) {}, ""},
		{"no brackets", func(cfg *domain.TaxYearConfig) { cfg.IncomeTax.Brackets = nil }, "income_tax.brackets"},
		{"first bracket not at zero", func(cfg *domain.TaxYearConfig) { cfg.IncomeTax.Brackets[0].LowerLimit = 5 }, "income_tax.brackets[0].lower_limit"},
		{"gap between brackets", func(cfg *domain.TaxYearConfig) { cfg.IncomeTax.Brackets[2].LowerLimit++ }, "income_tax.brackets[2]"},
		{"bounded top bracket", func(cfg *domain.TaxYearConfig) { cfg.IncomeTax.Brackets[4].UpperLimit = 1_000_000 }, "income_tax.brackets"},
		{"rate above one", func(cfg *domain.TaxYearConfig) { cfg.IncomeTax.Brackets[1].RateMax = decimal.NewFromFloat(1.5) }, "income_tax.brackets[1].rate_max"},
		{"decreasing rate", func(cfg *domain.TaxYearConfig) {
			cfg.IncomeTax.Brackets[2].RateMin = decimal.NewFromFloat(0.5)
		}, "income_tax.brackets[2]"},
		{"negative surtax", func(cfg *domain.TaxYearConfig) { cfg.IncomeTax.Surtax.Rate = decimal.NewFromFloat(-0.1) }, "income_tax.surtax.rate"},
		{"negative health rate", func(cfg *domain.TaxYearConfig) { cfg.Health.PremiumNursing = decimal.NewFromFloat(-0.01) }, "health_insurance.premium_nursing"},
		{"zero health cap", func(cfg *domain.TaxYearConfig) { cfg.Health.MaxIncome = decimal.Zero }, "health_insurance.max_income"},
		{"floor above cap", func(cfg *domain.TaxYearConfig) { cfg.Health.MinIncome = decimal.NewFromInt(9000) }, "health_insurance.min_income"},
		{"zero retirement cap", func(cfg *domain.TaxYearConfig) { cfg.Retirement.MaxIncome = decimal.Zero }, "retirement_insurance.max_income"},
		{"unemployment rate", func(cfg *domain.TaxYearConfig) { cfg.Unemployment.Premium = decimal.NewFromInt(2) }, "unemployment_insurance.premium"},
		{"missing year", func(cfg *domain.TaxYearConfig) { cfg.Year = 0 }, "year"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := MustForYear(2025)
			tc.modify(cfg)

			err := Validate(cfg)
			if tc.field == "" {
				assert.NoError(t, err)
				return
			}
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tc.field, verr.Field)
		})
	}

	assert.Error(t, Validate(nil))
}

func TestOverrides_Apply(t *testing.T) {
	base := MustForYear(2025)

	assert.True(t, Overrides{}.IsEmpty())

	additional := decimal.RequireFromString("0.0025")
	surcharge := decimal.Zero
	overrides := Overrides{HealthAdditional: &additional, NursingSurcharge: &surcharge}
	assert.False(t, overrides.IsEmpty())

	adjusted, err := overrides.Apply(base)
	require.NoError(t, err)
	assert.True(t, adjusted.Health.PremiumAdditional.Equal(additional))
	assert.True(t, adjusted.Health.PremiumNursingSurcharge.IsZero())
	assert.True(t, base.Health.PremiumAdditional.Equal(decimal.RequireFromString("0.0245")), "base must not change")

	invalid := decimal.NewFromInt(3)
	_, err = Overrides{HealthAdditional: &invalid}.Apply(base)
	assert.ErrorContains(t, err, "invalid overrides")
}
