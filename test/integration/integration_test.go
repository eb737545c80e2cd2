package integration

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgehrsitz/netincome/internal/calculation"
	"github.com/rgehrsitz/netincome/internal/compare"
	"github.com/rgehrsitz/netincome/internal/config"
	"github.com/rgehrsitz/netincome/internal/domain"
	"github.com/rgehrsitz/netincome/internal/output"
	"github.com/rgehrsitz/netincome/internal/solver"
)

var employee = domain.TaxInput{Income: 80000, Expenses: 5300}

// writeTable stores the shipped table of a year in a user table file
func writeTable(t *testing.T, year int, adjust func(*domain.TaxYearConfig)) string {
	t.Helper()
	cfg := config.MustForYear(year)
	if adjust != nil {
		adjust(cfg)
	}
	data, err := config.Marshal(cfg)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "table.yaml")
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

func TestIntegrationSmokeTest(t *testing.T) {
	engine := calculation.NewCalculationEngine()

	t.Run("basic_calculation", func(t *testing.T) {
		outcome, err := engine.NetIncome(config.MustForYear(2025), employee)
		require.NoError(t, err)
		assert.Equal(t, int32(44970), outcome.NetIncome)
	})

	t.Run("basic_output_generation", func(t *testing.T) {
		cfg := config.MustForYear(2025)
		outcome, err := engine.NetIncome(cfg, employee)
		require.NoError(t, err)
		report, err := output.NewReport(cfg, employee, outcome, false)
		require.NoError(t, err)

		for _, name := range output.FormatterNames() {
			f := output.GetFormatterByName(name)
			require.NotNil(t, f, name)
			data, err := f.Format(report)
			assert.NoError(t, err, name)
			assert.NotEmpty(t, data, name)
		}
	})
}

func TestUserTableFile(t *testing.T) {
	engine := calculation.NewCalculationEngine()
	parser := config.NewTableParser()

	t.Run("round_trip_matches_shipped_table", func(t *testing.T) {
		for _, year := range config.SupportedYears() {
			cfg, err := parser.LoadFromFile(writeTable(t, year, nil))
			require.NoError(t, err)

			fromFile, err := engine.NetIncome(cfg, employee)
			require.NoError(t, err)
			shipped, err := engine.NetIncome(config.MustForYear(year), employee)
			require.NoError(t, err)
			assert.Equal(t, shipped, fromFile, "year %d", year)
		}
	})

	t.Run("adjusted_table", func(t *testing.T) {
		path := writeTable(t, 2025, func(cfg *domain.TaxYearConfig) {
			cfg.IncomeTax.Surtax.Rate = decimal.Zero
		})
		cfg, err := parser.LoadFromFile(path)
		require.NoError(t, err)

		outcome, err := engine.NetIncome(cfg, domain.TaxInput{Income: 200000})
		require.NoError(t, err)
		shipped, err := engine.NetIncome(config.MustForYear(2025), domain.TaxInput{Income: 200000})
		require.NoError(t, err)
		assert.Less(t, outcome.IncomeTax, shipped.IncomeTax)
	})

	t.Run("invalid_table", func(t *testing.T) {
		path := writeTable(t, 2025, func(cfg *domain.TaxYearConfig) {
			cfg.IncomeTax.Brackets = nil
		})
		_, err := parser.LoadFromFile(path)
		var validationErr *config.ValidationError
		assert.ErrorAs(t, err, &validationErr)
	})
}

func TestForwardAndReverseAgree(t *testing.T) {
	engine := calculation.NewCalculationEngine()
	s := solver.NewDefaultSolver(engine)

	inputs := []domain.TaxInput{
		employee,
		{Income: 30000},
		{Income: 150000, Marital: domain.Married},
		{Income: 60000, Employment: domain.SelfEmployed},
	}

	for _, year := range config.SupportedYears() {
		cfg := config.MustForYear(year)
		for _, input := range inputs {
			forward, err := engine.NetIncome(cfg, input)
			require.NoError(t, err)

			target := input
			target.Income = uint32(forward.NetIncome)
			result, err := s.Solve(context.Background(), cfg, target)
			require.NoError(t, err, "year %d input %+v", year, input)

			assert.Equal(t, forward.NetIncome, result.Outcome.NetIncome)
			assert.InDelta(t, float64(input.Income), float64(result.Outcome.GrossIncome), 5)
		}
	}
}

func TestCompareYearsConsistency(t *testing.T) {
	engine := calculation.NewCalculationEngine()
	ce := compare.NewCompareEngine(engine)

	set, err := ce.CompareYears(context.Background(), employee, config.SupportedYears(), compare.CompareOptions{})
	require.NoError(t, err)

	for _, result := range append([]compare.YearResult{*set.BaseResult}, set.AlternativeResults...) {
		outcome, err := engine.NetIncome(config.MustForYear(result.Year), employee)
		require.NoError(t, err)
		assert.Equal(t, *outcome, *result.Outcome, "year %d", result.Year)
	}

	data, err := (&compare.JSONFormatter{Pretty: true}).Format(set)
	require.NoError(t, err)
	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(data), &decoded))
	assert.EqualValues(t, set.BaseYear, decoded["base_year"])
}

func TestErrorHandling(t *testing.T) {
	engine := calculation.NewCalculationEngine()

	t.Run("input_too_large", func(t *testing.T) {
		_, err := engine.NetIncome(config.MustForYear(2025), domain.TaxInput{Income: 1<<32 - 1})
		assert.ErrorIs(t, err, calculation.ErrInputTooLarge)
	})

	t.Run("unsupported_year", func(t *testing.T) {
		_, err := config.ForYear(1999)
		assert.ErrorIs(t, err, config.ErrUnsupportedYear)
	})

	t.Run("invalid_overrides", func(t *testing.T) {
		rate := decimal.NewFromInt(2)
		_, err := config.Overrides{HealthAdditional: &rate}.Apply(config.MustForYear(2025))
		require.Error(t, err)
		assert.True(t, strings.HasPrefix(err.Error(), "invalid overrides"))
	})
}
