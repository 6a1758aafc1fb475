package numeric

import "github.com/shopspring/decimal"

// RoundTwo rounds v half-up to two decimal places. Plain float math gets tie
// cases like 66.665 wrong, so the rounding goes through a decimal
// representation of the shortest float form.
func RoundTwo(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}
