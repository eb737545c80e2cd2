package domain

import (
	"fmt"
	"strings"
)

// EmploymentStatus selects which social insurance variant applies
type EmploymentStatus int

const (
	Employed EmploymentStatus = iota
	SelfEmployed
)

func (s EmploymentStatus) String() string {
	switch s {
	case Employed:
		return "employed"
	case SelfEmployed:
		return "self_employed"
	default:
		return fmt.Sprintf("EmploymentStatus(%d)", int(s))
	}
}

// MaritalStatus selects single filing or joint filing with income splitting
type MaritalStatus int

const (
	Single MaritalStatus = iota
	Married
)

func (s MaritalStatus) String() string {
	switch s {
	case Single:
		return "single"
	case Married:
		return "married"
	default:
		return fmt.Sprintf("MaritalStatus(%d)", int(s))
	}
}

// ParseEmploymentStatus parses "employed" or "self_employed" (also "self-employed")
func ParseEmploymentStatus(s string) (EmploymentStatus, error) {
	switch strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_") {
	case "employed", "":
		return Employed, nil
	case "self_employed", "selfemployed":
		return SelfEmployed, nil
	}
	return Employed, fmt.Errorf("unknown employment status %q", s)
}

// ParseMaritalStatus parses "single" or "married"
func ParseMaritalStatus(s string) (MaritalStatus, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "single", "":
		return Single, nil
	case "married":
		return Married, nil
	}
	return Single, fmt.Errorf("unknown marital status %q", s)
}

// TaxInput holds the yearly values for one calculation.
// Income is the gross income for the forward calculation and the target net
// income for the reverse calculation.
type TaxInput struct {
	Income   uint32 `yaml:"income" json:"income"`
	Expenses uint32 `yaml:"expenses" json:"expenses"`
	// FixedRetirementMonthly replaces the percentage based retirement premium when set
	FixedRetirementMonthly *uint32          `yaml:"fixed_retirement_monthly,omitempty" json:"fixed_retirement_monthly,omitempty"`
	Employment             EmploymentStatus `yaml:"employment" json:"employment"`
	Marital                MaritalStatus    `yaml:"marital" json:"marital"`
}

// WithIncome returns a copy of the input with the income replaced
func (in TaxInput) WithIncome(income uint32) TaxInput {
	in.Income = income
	return in
}

// IsSelfEmployed reports whether the self-employed insurance variant applies
func (in TaxInput) IsSelfEmployed() bool {
	return in.Employment == SelfEmployed
}

// IsMarried reports whether income splitting applies
func (in TaxInput) IsMarried() bool {
	return in.Marital == Married
}

// MarshalText implements encoding.TextMarshaler
func (s EmploymentStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (s *EmploymentStatus) UnmarshalText(text []byte) error {
	parsed, err := ParseEmploymentStatus(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler
func (s MaritalStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (s *MaritalStatus) UnmarshalText(text []byte) error {
	parsed, err := ParseMaritalStatus(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
