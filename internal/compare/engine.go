package compare

import (
	"context"
	"fmt"
	"sync"

	"github.com/rgehrsitz/netincome/internal/calculation"
	"github.com/rgehrsitz/netincome/internal/config"
	"github.com/rgehrsitz/netincome/internal/domain"
	"github.com/rgehrsitz/netincome/internal/solver"
	"github.com/samber/lo"
)

// CompareEngine orchestrates year-over-year comparisons
type CompareEngine struct {
	CalcEngine *calculation.CalculationEngine
	Solver     *solver.Solver
}

// NewCompareEngine creates a new comparison engine
func NewCompareEngine(calcEngine *calculation.CalculationEngine) *CompareEngine {
	if calcEngine == nil {
		calcEngine = calculation.NewCalculationEngine()
	}
	return &CompareEngine{
		CalcEngine: calcEngine,
		Solver:     solver.NewDefaultSolver(calcEngine),
	}
}

// CompareOptions configures comparison behavior
type CompareOptions struct {
	Reverse   bool             // input income is the target net income
	Overrides config.Overrides // applied to every year
}

// CompareYears runs the calculation for the input in every year. The first
// year is the base all other years are compared against. Years are
// calculated concurrently; the year tables are independent copies.
func (ce *CompareEngine) CompareYears(
	ctx context.Context,
	input domain.TaxInput,
	years []int,
	options CompareOptions,
) (*ComparisonSet, error) {
	if len(years) == 0 {
		return nil, fmt.Errorf("at least one year is required")
	}
	if dup := lo.FindDuplicates(years); len(dup) > 0 {
		return nil, fmt.Errorf("year %d given more than once", dup[0])
	}

	results := make([]YearResult, len(years))
	errs := make([]error, len(years))

	var wg sync.WaitGroup
	for i, year := range years {
		wg.Add(1)
		go func(i, year int) {
			defer wg.Done()
			results[i], errs[i] = ce.calculateYear(ctx, input, year, options)
		}(i, year)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("failed to calculate year %d: %w", years[i], err)
		}
	}

	base := results[0]
	alternatives := lo.Map(results[1:], func(r YearResult, _ int) YearResult {
		return CalculateComparison(r, base)
	})

	compSet := &ComparisonSet{
		Input:              input,
		Reverse:            options.Reverse,
		BaseYear:           base.Year,
		BaseResult:         &base,
		AlternativeResults: alternatives,
	}
	compSet.Recommendations = GenerateRecommendations(compSet)

	return compSet, nil
}

func (ce *CompareEngine) calculateYear(ctx context.Context, input domain.TaxInput, year int, options CompareOptions) (YearResult, error) {
	cfg, err := config.ForYear(year)
	if err != nil {
		return YearResult{}, err
	}
	if !options.Overrides.IsEmpty() {
		if cfg, err = options.Overrides.Apply(cfg); err != nil {
			return YearResult{}, err
		}
	}

	if options.Reverse {
		result, err := ce.Solver.Solve(ctx, cfg, input)
		if err != nil {
			return YearResult{}, err
		}
		return YearResult{Year: year, Outcome: result.Outcome, Iterations: result.Iterations}, nil
	}

	outcome, err := ce.CalcEngine.NetIncome(cfg, input)
	if err != nil {
		return YearResult{}, err
	}
	return YearResult{Year: year, Outcome: outcome}, nil
}
