package solver

import (
	"errors"
	"fmt"

	"github.com/rgehrsitz/netincome/internal/domain"
)

// ErrNoConvergence is returned when no gross income reproducing the target
// net income was found within the iteration budget
var ErrNoConvergence = errors.New("gross income search did not converge")

// Method names the search strategy that produced a result
type Method string

const (
	MethodFixedPoint Method = "fixed_point"
	MethodBisection  Method = "bisection"
)

// Options configures the search
type Options struct {
	MaxIterations int // evaluations of the forward calculation, bisection included
}

// DefaultOptions returns the default solver configuration
func DefaultOptions() Options {
	return Options{
		MaxIterations: 200,
	}
}

// Result contains the outcome for the gross income found by the search
type Result struct {
	Outcome    *domain.TaxOutcome `json:"outcome"`
	Iterations int                `json:"iterations"`
	Method     Method             `json:"method"`
}

// SolveError represents errors from the gross income solver
type SolveError struct {
	Operation  string
	Message    string
	Iterations int
	Cause      error
}

func (e *SolveError) Error() string {
	msg := fmt.Sprintf("%s: %s (after %d iterations)", e.Operation, e.Message, e.Iterations)
	if e.Cause != nil {
		return msg + ": " + e.Cause.Error()
	}
	return msg
}

func (e *SolveError) Unwrap() error {
	return e.Cause
}
