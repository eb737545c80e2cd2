package solver

import (
	"context"
	"fmt"
	"math"

	"github.com/rgehrsitz/netincome/internal/calculation"
	"github.com/rgehrsitz/netincome/internal/domain"
	"github.com/shopspring/decimal"
)

var (
	initialFactor = decimal.RequireFromString("1.5")
	maxGross      = decimal.NewFromInt(math.MaxUint32)
)

// Solver recovers the gross income for a target net income by inverting the
// forward net income calculation
type Solver struct {
	CalcEngine *calculation.CalculationEngine
	Options    Options
}

// NewSolver creates a new gross income solver
func NewSolver(calcEngine *calculation.CalculationEngine, options Options) *Solver {
	if calcEngine == nil {
		calcEngine = calculation.NewCalculationEngine()
	}
	return &Solver{
		CalcEngine: calcEngine,
		Options:    options,
	}
}

// NewDefaultSolver creates a solver with default options
func NewDefaultSolver(calcEngine *calculation.CalculationEngine) *Solver {
	return NewSolver(calcEngine, DefaultOptions())
}

// SolveGrossIncome searches the gross income for the net income given as
// input income using the default options
func SolveGrossIncome(cfg *domain.TaxYearConfig, input domain.TaxInput) (*domain.TaxOutcome, error) {
	result, err := NewDefaultSolver(nil).Solve(context.Background(), cfg, input)
	if err != nil {
		return nil, err
	}
	return result.Outcome, nil
}

// forwardFunc calculates the outcome for a gross income
type forwardFunc func(gross uint32) (*domain.TaxOutcome, error)

// Solve treats the input income as the target net income and returns the
// outcome of a gross income whose net income matches it exactly.
func (s *Solver) Solve(ctx context.Context, cfg *domain.TaxYearConfig, input domain.TaxInput) (*Result, error) {
	if cfg == nil {
		return nil, &SolveError{Operation: "solve", Message: "invalid configuration", Cause: calculation.ErrMissingConfig}
	}

	engine := s.CalcEngine
	if engine == nil {
		engine = calculation.NewCalculationEngine()
	}

	forward := func(gross uint32) (*domain.TaxOutcome, error) {
		return engine.NetIncome(cfg, input.WithIncome(gross))
	}

	maxIterations := s.Options.MaxIterations
	if maxIterations <= 0 {
		maxIterations = DefaultOptions().MaxIterations
	}

	result, err := search(ctx, int64(input.Income), maxIterations, forward, engine.Logger)
	if err != nil {
		return nil, err
	}

	if engine.Logger != nil {
		engine.Logger.Debugf("target net %d: gross %d after %d iterations (%s)",
			input.Income, result.Outcome.GrossIncome, result.Iterations, result.Method)
	}
	return result, nil
}

// search runs the fixed-point iteration `estimate -= net - target` starting at
// 1.5 times the target. Revisiting a gross income means the iteration cycles;
// the search then bisects between the closest gross incomes observed below
// and above the target.
func search(ctx context.Context, target int64, maxIterations int, forward forwardFunc, log calculation.Logger) (*Result, error) {
	if log == nil {
		log = calculation.NopLogger{}
	}

	targetNet := decimal.NewFromInt(target)
	estimate := targetNet.Mul(initialFactor)

	visited := make(map[uint32]struct{})
	b := bracket{}
	iterations := 0

	for iterations < maxIterations {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		gross := clampGross(estimate)
		if _, seen := visited[gross]; seen {
			log.Debugf("gross %d evaluated before, switching to bisection", gross)
			return bisect(ctx, target, maxIterations, iterations, b, forward)
		}
		visited[gross] = struct{}{}

		iterations++
		outcome, err := forward(gross)
		if err != nil {
			return nil, &SolveError{
				Operation:  "solve",
				Message:    fmt.Sprintf("failed to calculate net income for gross %d", gross),
				Iterations: iterations,
				Cause:      err,
			}
		}

		difference := int64(outcome.NetIncome) - target
		if difference == 0 {
			return &Result{Outcome: outcome, Iterations: iterations, Method: MethodFixedPoint}, nil
		}
		b.observe(gross, difference)

		// estimate * (1 - difference/estimate)
		estimate = estimate.Sub(decimal.NewFromInt(difference))
	}

	return nil, noConvergence(iterations, fmt.Sprintf("no exact match within %d iterations", maxIterations))
}

// bisect searches between the bracket bounds; each evaluation counts against
// the remaining iteration budget
func bisect(ctx context.Context, target int64, maxIterations, iterations int, b bracket, forward forwardFunc) (*Result, error) {
	if !b.valid() {
		return nil, noConvergence(iterations, "iteration cycles without enclosing the target")
	}

	low, high := b.low, b.high
	for iterations < maxIterations {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if high-low <= 1 {
			return nil, noConvergence(iterations, fmt.Sprintf("no gross income between %d and %d matches", low, high))
		}

		mid := low + (high-low)/2

		iterations++
		outcome, err := forward(mid)
		if err != nil {
			return nil, &SolveError{
				Operation:  "bisect",
				Message:    fmt.Sprintf("failed to calculate net income for gross %d", mid),
				Iterations: iterations,
				Cause:      err,
			}
		}

		difference := int64(outcome.NetIncome) - target
		switch {
		case difference == 0:
			return &Result{Outcome: outcome, Iterations: iterations, Method: MethodBisection}, nil
		case difference < 0:
			low = mid
		default:
			high = mid
		}
	}

	return nil, noConvergence(iterations, fmt.Sprintf("no exact match within %d iterations", maxIterations))
}

// bracket tracks the largest gross income below and the smallest above the target
type bracket struct {
	low, high       uint32
	hasLow, hasHigh bool
}

func (b *bracket) observe(gross uint32, difference int64) {
	if difference < 0 {
		if !b.hasLow || gross > b.low {
			b.low, b.hasLow = gross, true
		}
		return
	}
	if !b.hasHigh || gross < b.high {
		b.high, b.hasHigh = gross, true
	}
}

func (b bracket) valid() bool {
	return b.hasLow && b.hasHigh && b.low < b.high
}

func clampGross(estimate decimal.Decimal) uint32 {
	if estimate.Sign() <= 0 {
		return 0
	}
	t := estimate.Truncate(0)
	if t.GreaterThan(maxGross) {
		return math.MaxUint32
	}
	return uint32(t.IntPart())
}

func noConvergence(iterations int, message string) error {
	return &SolveError{
		Operation:  "solve",
		Message:    message,
		Iterations: iterations,
		Cause:      ErrNoConvergence,
	}
}
