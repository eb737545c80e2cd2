package domain

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaxBracket_Width(t *testing.T) {
	b := TaxBracket{LowerLimit: 11784, UpperLimit: 17005}
	assert.Equal(t, uint32(5221), b.Width())

	top := TaxBracket{LowerLimit: 277825, UpperLimit: UnboundedLimit}
	assert.Equal(t, UnboundedLimit-277825, top.Width())
}

func TestTaxYearConfig_CloneIsIndependent(t *testing.T) {
	orig := &TaxYearConfig{
		Year: 2025,
		IncomeTax: IncomeTaxConfig{
			Brackets: []TaxBracket{{LowerLimit: 0, UpperLimit: 100}},
		},
		Health: HealthInsuranceConfig{PremiumAdditional: decimal.NewFromFloat(0.0245)},
	}

	clone := orig.Clone()
	clone.IncomeTax.Brackets[0].UpperLimit = 200
	clone.Health.PremiumAdditional = decimal.NewFromFloat(0.01)

	assert.Equal(t, uint32(100), orig.IncomeTax.Brackets[0].UpperLimit)
	assert.True(t, orig.Health.PremiumAdditional.Equal(decimal.NewFromFloat(0.0245)))

	var nilConfig *TaxYearConfig
	assert.Nil(t, nilConfig.Clone())
}

func TestTaxInput_WithIncome(t *testing.T) {
	fixed := uint32(800)
	in := TaxInput{Income: 80000, Expenses: 5300, FixedRetirementMonthly: &fixed, Employment: SelfEmployed, Marital: Married}

	out := in.WithIncome(1234)

	assert.Equal(t, uint32(1234), out.Income)
	assert.Equal(t, uint32(80000), in.Income, "original must not change")
	assert.Equal(t, in.Expenses, out.Expenses)
	assert.True(t, out.IsSelfEmployed())
	assert.True(t, out.IsMarried())
}

func TestParseStatuses(t *testing.T) {
	tests := []struct {
		in       string
		expected EmploymentStatus
		wantErr  bool
	}{
		{"employed", Employed, false},
		{"", Employed, false},
		{"self-employed", SelfEmployed, false},
		{"Self_Employed", SelfEmployed, false},
		{"retired", Employed, true},
	}
	for _, tc := range tests {
		got, err := ParseEmploymentStatus(tc.in)
		if tc.wantErr {
			assert.Error(t, err, tc.in)
			continue
		}
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.expected, got, tc.in)
	}

	m, err := ParseMaritalStatus("Married")
	require.NoError(t, err)
	assert.Equal(t, Married, m)
	_, err = ParseMaritalStatus("widowed")
	assert.Error(t, err)
}

func TestTaxInput_JSONUsesStatusNames(t *testing.T) {
	in := TaxInput{Income: 100, Employment: SelfEmployed, Marital: Married}

	data, err := json.Marshal(in)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"employment":"self_employed"`)
	assert.Contains(t, string(data), `"marital":"married"`)

	var back TaxInput
	require.NoError(t, json.Unmarshal(data, &back))
	assert.Equal(t, in, back)
}

func TestTaxOutcome_Ratios(t *testing.T) {
	o := TaxOutcome{GrossIncome: 1000, NetIncome: 600, SocialInsurance: 200, IncomeTax: 200}
	assert.True(t, o.TaxRatio().Equal(decimal.NewFromFloat(0.4)), o.TaxRatio().String())
	assert.True(t, o.NetRatio().Equal(decimal.NewFromFloat(0.6)), o.NetRatio().String())

	zero := TaxOutcome{}
	assert.True(t, zero.TaxRatio().IsZero())
}
