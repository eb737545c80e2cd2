package calculation

import (
	"math"

	"github.com/shopspring/decimal"
)

// AMOUNT POLICY:
//
// 1. Amounts entering and leaving the calculators are whole currency units.
// 2. Intermediate values are kept as decimals and truncated (never rounded)
//    at each aggregation point: base income tax, surtax, social insurance total.
// 3. Social insurance schemes are summed first and truncated once.

var (
	two    = decimal.NewFromInt(2)
	twelve = decimal.NewFromInt(12)

	maxAmount = decimal.NewFromInt(math.MaxUint32)
)

// amountOf converts a non-negative amount into whole currency units.
// Fractions are discarded; negative values become zero. The second result is
// false when the value does not fit the amount range.
func amountOf(d decimal.Decimal) (uint32, bool) {
	if d.Sign() <= 0 {
		return 0, true
	}
	t := d.Truncate(0)
	if t.GreaterThan(maxAmount) {
		return math.MaxUint32, false
	}
	return uint32(t.IntPart()), true
}

// truncateAmount is amountOf with saturation at the top of the range
func truncateAmount(d decimal.Decimal) uint32 {
	v, _ := amountOf(d)
	return v
}

func amount(v uint32) decimal.Decimal {
	return decimal.NewFromInt(int64(v))
}
