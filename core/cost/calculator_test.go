package cost

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"compute-cost/internal/errors"
)

func baseInputs() Inputs {
	return Inputs{
		HourlyPrice:      decimal.NewFromFloat(0.192),
		Nodes:            3,
		HoursPerRun:      2.5,
		UnitsPerNodeHour: 2.75,
		UsageRate:        decimal.NewFromFloat(0.55),
		RunsPerDay:       1,
		DaysPerMonth:     1,
	}
}

// TestCalculateReferenceScenario pins the arithmetic end to end:
// instance 0.192 x 3 x 2.5 = 1.44, usage 2.75 x 3 x 0.55 x 2.5 = 11.34375,
// and the sum rounds once to 12.78.
func TestCalculateReferenceScenario(t *testing.T) {
	breakdown, err := Calculate(baseInputs())
	require.NoError(t, err)

	assert.Equal(t, "1.44", breakdown.InstanceCost.String())
	assert.Equal(t, "11.34375", breakdown.UsageCost.String())
	assert.Equal(t, "12.78", breakdown.Total.String())
	assert.Equal(t, 1, breakdown.MonthlyRuns)
}

func TestMonthlyRunsScale(t *testing.T) {
	in := baseInputs()
	in.RunsPerDay = 2
	in.DaysPerMonth = 20

	breakdown, err := Calculate(in)
	require.NoError(t, err)
	assert.Equal(t, 40, breakdown.MonthlyRuns)
	assert.Equal(t, "511.35", breakdown.Total.String())
}

// TestRoundingHappensOnceOnSum uses terms of 1.444 each: rounding the sum
// gives 2.89, rounding the terms first would give 2.88.
func TestRoundingHappensOnceOnSum(t *testing.T) {
	in := Inputs{
		HourlyPrice:      decimal.NewFromFloat(1.444),
		Nodes:            1,
		HoursPerRun:      1,
		UnitsPerNodeHour: 1,
		UsageRate:        decimal.NewFromFloat(1.444),
		RunsPerDay:       1,
		DaysPerMonth:     1,
	}

	breakdown, err := Calculate(in)
	require.NoError(t, err)

	assert.Equal(t, "2.89", breakdown.Total.String())

	perTerm := breakdown.InstanceCost.Round(2).Add(breakdown.UsageCost.Round(2))
	assert.Equal(t, "2.88", perTerm.String())
}

func TestRoundHalfAwayFromZero(t *testing.T) {
	in := Inputs{
		HourlyPrice:      decimal.NewFromFloat(12.785),
		Nodes:            1,
		HoursPerRun:      1,
		UnitsPerNodeHour: 1,
		UsageRate:        decimal.Zero,
		RunsPerDay:       1,
		DaysPerMonth:     1,
	}

	breakdown, err := Calculate(in)
	require.NoError(t, err)
	assert.Equal(t, "12.79", breakdown.Total.String())
}

// TestTotalMonotonicInEveryFactor bumps one factor at a time and expects a
// strictly larger total.
func TestTotalMonotonicInEveryFactor(t *testing.T) {
	base := Inputs{
		HourlyPrice:      decimal.NewFromFloat(0.10),
		Nodes:            2,
		HoursPerRun:      2,
		UnitsPerNodeHour: 2,
		UsageRate:        decimal.NewFromFloat(0.5),
		RunsPerDay:       2,
		DaysPerMonth:     10,
	}
	baseline, err := Calculate(base)
	require.NoError(t, err)

	tests := []struct {
		name string
		bump func(Inputs) Inputs
	}{
		{"hourly price", func(in Inputs) Inputs {
			in.HourlyPrice = in.HourlyPrice.Add(decimal.NewFromFloat(0.05))
			return in
		}},
		{"nodes", func(in Inputs) Inputs { in.Nodes++; return in }},
		{"hours per run", func(in Inputs) Inputs { in.HoursPerRun += 0.5; return in }},
		{"units per node-hour", func(in Inputs) Inputs { in.UnitsPerNodeHour += 0.5; return in }},
		{"usage rate", func(in Inputs) Inputs {
			in.UsageRate = in.UsageRate.Add(decimal.NewFromFloat(0.1))
			return in
		}},
		{"runs per day", func(in Inputs) Inputs { in.RunsPerDay++; return in }},
		{"days per month", func(in Inputs) Inputs { in.DaysPerMonth++; return in }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bumped, err := Calculate(tt.bump(base))
			require.NoError(t, err)
			assert.True(t, bumped.Total.GreaterThan(baseline.Total),
				"total %s should exceed %s", bumped.Total, baseline.Total)
		})
	}
}

// Doubling a shared factor doubles both terms exactly.
func TestLinearScaling(t *testing.T) {
	in := baseInputs()
	single, err := Calculate(in)
	require.NoError(t, err)

	in.Nodes *= 2
	double, err := Calculate(in)
	require.NoError(t, err)

	two := decimal.NewFromInt(2)
	assert.True(t, double.InstanceCost.Equal(single.InstanceCost.Mul(two)))
	assert.True(t, double.UsageCost.Equal(single.UsageCost.Mul(two)))
}

func TestCalculateDeterministic(t *testing.T) {
	first, err := Calculate(baseInputs())
	require.NoError(t, err)
	second, err := Calculate(baseInputs())
	require.NoError(t, err)

	assert.True(t, first.InstanceCost.Equal(second.InstanceCost))
	assert.True(t, first.UsageCost.Equal(second.UsageCost))
	assert.True(t, first.Total.Equal(second.Total))
}

func TestZeroUsageRateAllowed(t *testing.T) {
	in := baseInputs()
	in.UsageRate = decimal.Zero

	breakdown, err := Calculate(in)
	require.NoError(t, err)
	assert.True(t, breakdown.UsageCost.IsZero())
	assert.Equal(t, "1.44", breakdown.Total.String())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Inputs)
		wantErr string
	}{
		{"negative price", func(in *Inputs) { in.HourlyPrice = decimal.NewFromFloat(-0.01) }, "hourly price cannot be negative"},
		{"zero nodes", func(in *Inputs) { in.Nodes = 0 }, "node count must be at least 1"},
		{"negative nodes", func(in *Inputs) { in.Nodes = -3 }, "node count must be at least 1"},
		{"zero hours", func(in *Inputs) { in.HoursPerRun = 0 }, "hours per run must be positive"},
		{"negative hours", func(in *Inputs) { in.HoursPerRun = -1 }, "hours per run must be positive"},
		{"zero units", func(in *Inputs) { in.UnitsPerNodeHour = 0 }, "usage units per node-hour must be positive"},
		{"negative rate", func(in *Inputs) { in.UsageRate = decimal.NewFromFloat(-0.5) }, "usage rate cannot be negative"},
		{"zero runs", func(in *Inputs) { in.RunsPerDay = 0 }, "runs per day must be at least 1"},
		{"zero days", func(in *Inputs) { in.DaysPerMonth = 0 }, "active days per month must be at least 1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := baseInputs()
			tt.mutate(&in)

			_, err := Calculate(in)
			require.Error(t, err)
			assert.True(t, errors.IsType(err, errors.TypeInput))
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
