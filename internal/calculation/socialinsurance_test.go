package calculation

import (
	"math"
	"testing"

	"github.com/rgehrsitz/netincome/internal/config"
	"github.com/rgehrsitz/netincome/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func socialInsuranceFor(t *testing.T, year int, input domain.TaxInput) uint32 {
	t.Helper()
	cfg := config.MustForYear(year)
	premium, err := SocialInsurance(cfg.Health, cfg.Retirement, cfg.Unemployment, input)
	require.NoError(t, err)
	return premium
}

func TestSocialInsurance_Employed2024(t *testing.T) {
	tests := []struct {
		income   uint32
		expected uint32
	}{
		{0, 0},
		{12000, 2496},
		{25132, 5227},
		{62100, 12916},
		{90600, 15937},
		{99999, 15937},
	}

	for _, tc := range tests {
		input := domain.TaxInput{Income: tc.income, Employment: domain.Employed}
		assert.Equal(t, tc.expected, socialInsuranceFor(t, 2024, input), "income %d", tc.income)
	}
}

func TestSocialInsurance_SelfEmployed2025(t *testing.T) {
	zero := uint32(0)

	tests := []struct {
		income   uint32
		expected uint32
	}{
		{0, 3093},
		{12000, 3093},
		{25128, 5188},
		{62100, 12823},
		{66150, 13659},
		{99999, 13659},
	}

	for _, tc := range tests {
		input := domain.TaxInput{
			Income:                 tc.income,
			Employment:             domain.SelfEmployed,
			FixedRetirementMonthly: &zero,
		}
		assert.Equal(t, tc.expected, socialInsuranceFor(t, 2025, input), "income %d", tc.income)
	}
}

func TestSocialInsurance_SelfEmployedWithoutFixedRetirement(t *testing.T) {
	input := domain.TaxInput{Income: 12000, Employment: domain.SelfEmployed}
	assert.Equal(t, uint32(4946), socialInsuranceFor(t, 2024, input))
}

func TestSocialInsurance_Employed2025(t *testing.T) {
	assert.Equal(t, uint32(2583), socialInsuranceFor(t, 2025, domain.TaxInput{Income: 12000}))
	assert.Equal(t, uint32(17466), socialInsuranceFor(t, 2025, domain.TaxInput{Income: math.MaxUint32}))
}

func TestSocialInsurance_CappedAboveMaxIncome(t *testing.T) {
	for _, status := range []domain.EmploymentStatus{domain.Employed, domain.SelfEmployed} {
		capped := socialInsuranceFor(t, 2025, domain.TaxInput{Income: 200000, Employment: status})
		assert.Equal(t, capped, socialInsuranceFor(t, 2025, domain.TaxInput{Income: math.MaxUint32, Employment: status}), "status %s", status)
	}
}

func TestSocialInsurance_Monotonic(t *testing.T) {
	for _, status := range []domain.EmploymentStatus{domain.Employed, domain.SelfEmployed} {
		previous := uint32(0)
		for income := uint32(0); income <= 150000; income += 250 {
			premium := socialInsuranceFor(t, 2025, domain.TaxInput{Income: income, Employment: status})
			assert.GreaterOrEqual(t, premium, previous, "income %d (%s)", income, status)
			previous = premium
		}
	}
}

func TestSocialInsuranceDetail(t *testing.T) {
	cfg := config.MustForYear(2025)
	fixed := uint32(800)

	t.Run("self-employed pays no unemployment insurance", func(t *testing.T) {
		breakdown, err := SocialInsuranceDetail(cfg.Health, cfg.Retirement, cfg.Unemployment, domain.TaxInput{
			Income:     50000,
			Employment: domain.SelfEmployed,
		})
		require.NoError(t, err)
		assert.True(t, breakdown.Unemployment.IsZero())
		assert.True(t, breakdown.Retirement.IsPositive())
	})

	t.Run("fixed retirement premium replaces percentage", func(t *testing.T) {
		breakdown, err := SocialInsuranceDetail(cfg.Health, cfg.Retirement, cfg.Unemployment, domain.TaxInput{
			Income:                 80000,
			Employment:             domain.SelfEmployed,
			FixedRetirementMonthly: &fixed,
		})
		require.NoError(t, err)
		assert.Equal(t, "9600", breakdown.Retirement.String())
		assert.Equal(t, uint32(23259), breakdown.Total)
	})

	t.Run("total is truncated once after summing", func(t *testing.T) {
		breakdown, err := SocialInsuranceDetail(cfg.Health, cfg.Retirement, cfg.Unemployment, domain.TaxInput{Income: 12345})
		require.NoError(t, err)
		sum := breakdown.Health.Add(breakdown.Retirement).Add(breakdown.Unemployment)
		assert.Equal(t, uint32(sum.IntPart()), breakdown.Total)
	})
}

func TestSocialInsurance_UnknownEmploymentStatus(t *testing.T) {
	cfg := config.MustForYear(2025)
	_, err := SocialInsurance(cfg.Health, cfg.Retirement, cfg.Unemployment, domain.TaxInput{
		Income:     1000,
		Employment: domain.EmploymentStatus(42),
	})
	assert.Error(t, err)
}

func TestSocialInsurance_FixedRetirementOverflow(t *testing.T) {
	cfg := config.MustForYear(2025)
	fixed := uint32(math.MaxUint32)
	_, err := SocialInsurance(cfg.Health, cfg.Retirement, cfg.Unemployment, domain.TaxInput{
		Income:                 1000,
		Employment:             domain.SelfEmployed,
		FixedRetirementMonthly: &fixed,
	})
	assert.ErrorIs(t, err, ErrInputRange)
}
