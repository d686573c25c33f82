// Package projection expands a monthly total into a cumulative series.
package projection

import (
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// Months is the fixed projection horizon
const Months = 12

// Point is one period of the cumulative projection
type Point struct {
	// Month is the period index, 1..12
	Month int

	// Cumulative is the cost accumulated through this month
	Cumulative decimal.Decimal
}

// Series is the ordered 12-point projection
type Series []Point

// Annual projects a monthly total linearly: point m carries total × m.
// Not a compounding forecast; recomputable from the total alone.
func Annual(monthlyTotal decimal.Decimal) Series {
	return lo.Map(lo.RangeFrom(1, Months), func(month int, _ int) Point {
		return Point{
			Month:      month,
			Cumulative: monthlyTotal.Mul(decimal.NewFromInt(int64(month))),
		}
	})
}
