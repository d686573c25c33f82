package projection

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnnualTwelvePoints(t *testing.T) {
	series := Annual(decimal.NewFromFloat(12.78))

	require.Len(t, series, Months)
	for i, point := range series {
		assert.Equal(t, i+1, point.Month)
	}
	assert.Equal(t, "12.78", series[0].Cumulative.String())
	assert.Equal(t, "153.36", series[11].Cumulative.String())
}

// Every point is an exact multiple of the monthly total, with no
// accumulated drift.
func TestAnnualLinearity(t *testing.T) {
	total := decimal.NewFromFloat(7.31)
	series := Annual(total)

	for _, point := range series {
		want := total.Mul(decimal.NewFromInt(int64(point.Month)))
		assert.True(t, point.Cumulative.Equal(want),
			"month %d: got %s, want %s", point.Month, point.Cumulative, want)
	}
}

func TestAnnualRecomputable(t *testing.T) {
	first := Annual(decimal.NewFromFloat(99.99))
	second := Annual(decimal.NewFromFloat(99.99))

	assert.Equal(t, first, second)
}

func TestAnnualZeroTotal(t *testing.T) {
	series := Annual(decimal.Zero)

	require.Len(t, series, Months)
	for _, point := range series {
		assert.True(t, point.Cumulative.IsZero())
	}
}
