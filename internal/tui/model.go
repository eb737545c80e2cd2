package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rgehrsitz/netincome/internal/calculation"
	"github.com/rgehrsitz/netincome/internal/config"
	"github.com/rgehrsitz/netincome/internal/domain"
	"github.com/rgehrsitz/netincome/internal/output"
	"github.com/rgehrsitz/netincome/internal/solver"
)

const (
	fieldIncome = iota
	fieldExpenses
	fieldCount
)

// Model represents the entire application state
type Model struct {
	// Terminal dimensions
	width  int
	height int

	inputs [fieldCount]textinput.Model
	focus  int

	selfEmployed bool
	married      bool
	reverse      bool

	years   []int
	yearIdx int

	calcEngine *calculation.CalculationEngine
	solver     *solver.Solver

	// seq identifies the latest calculation request; older results are dropped
	seq    int
	report *output.Report
	err    error

	keys     keyMap
	help     help.Model
	showHelp bool
}

// NewModel creates a new application model starting with the given year
func NewModel(year int) Model {
	years := config.SupportedYears()
	yearIdx := len(years) - 1
	for i, y := range years {
		if y == year {
			yearIdx = i
		}
	}

	income := newAmountInput("e.g. 80000")
	income.Focus()

	engine := calculation.NewCalculationEngine()
	return Model{
		width:      80,
		height:     24,
		inputs:     [fieldCount]textinput.Model{income, newAmountInput("0")},
		years:      years,
		yearIdx:    yearIdx,
		calcEngine: engine,
		solver:     solver.NewDefaultSolver(engine),
		keys:       defaultKeyMap(),
		help:       help.New(),
	}
}

func newAmountInput(placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 10
	ti.Width = 14
	ti.Prompt = ""
	return ti
}

// Init initializes the model (required by tea.Model interface)
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Year returns the selected tax year
func (m Model) Year() int {
	return m.years[m.yearIdx]
}

// Report returns the result of the latest calculation
func (m Model) Report() *output.Report {
	return m.report
}

// Err returns the error of the latest calculation
func (m Model) Err() error {
	return m.err
}

// taxInput builds the calculation input from the form
func (m Model) taxInput() (domain.TaxInput, error) {
	income, err := parseAmount("income", m.inputs[fieldIncome].Value())
	if err != nil {
		return domain.TaxInput{}, err
	}
	expenses, err := parseAmount("expenses", m.inputs[fieldExpenses].Value())
	if err != nil {
		return domain.TaxInput{}, err
	}

	input := domain.TaxInput{Income: income, Expenses: expenses}
	if m.selfEmployed {
		input.Employment = domain.SelfEmployed
	}
	if m.married {
		input.Marital = domain.Married
	}
	return input, nil
}

func parseAmount(field, value string) (uint32, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, nil
	}
	v, err := strconv.ParseUint(value, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", field, value)
	}
	return uint32(v), nil
}

// calculate returns a command running the forward or reverse calculation
func (m *Model) calculate() tea.Cmd {
	m.seq++
	seq := m.seq

	input, err := m.taxInput()
	if err != nil {
		return func() tea.Msg { return calculatedMsg{seq: seq, err: err} }
	}

	year, reverse := m.Year(), m.reverse
	engine, s := m.calcEngine, m.solver

	return func() tea.Msg {
		cfg, err := config.ForYear(year)
		if err != nil {
			return calculatedMsg{seq: seq, err: err}
		}

		var outcome *domain.TaxOutcome
		iterations := 0
		if reverse {
			result, err := s.Solve(context.Background(), cfg, input)
			if err != nil {
				return calculatedMsg{seq: seq, err: err}
			}
			outcome, iterations = result.Outcome, result.Iterations
		} else if outcome, err = engine.NetIncome(cfg, input); err != nil {
			return calculatedMsg{seq: seq, err: err}
		}

		report, err := output.NewReport(cfg, input, outcome, reverse)
		if err != nil {
			return calculatedMsg{seq: seq, err: err}
		}
		report.Iterations = iterations
		return calculatedMsg{seq: seq, report: report}
	}
}
