// Package cost computes monthly cost breakdowns.
// Pure arithmetic over decimal values: no I/O, no logging, no shared state.
package cost

import (
	"github.com/shopspring/decimal"

	"compute-cost/internal/errors"
)

// Inputs are the factors of one monthly estimate.
// Callers validate selections before building Inputs; Validate re-checks the
// numeric bounds so a contract violation surfaces as a typed error instead
// of a nonsense total.
type Inputs struct {
	// HourlyPrice is the resolved infrastructure price per node-hour
	HourlyPrice decimal.Decimal

	// Nodes is the number of nodes per run, at least 1
	Nodes int

	// HoursPerRun is the runtime of one run in hours, positive
	HoursPerRun float64

	// UnitsPerNodeHour is the usage-unit consumption per node per hour, positive
	UnitsPerNodeHour float64

	// UsageRate is the currency price per usage-unit, non-negative
	UsageRate decimal.Decimal

	// RunsPerDay is the number of runs per active day, at least 1
	RunsPerDay int

	// DaysPerMonth is the number of active days per month, at least 1
	DaysPerMonth int
}

// Validate checks every bound
func (in Inputs) Validate() error {
	if in.HourlyPrice.IsNegative() {
		return errors.Input("hourly price cannot be negative")
	}
	if in.Nodes < 1 {
		return errors.Inputf("node count must be at least 1, got %d", in.Nodes)
	}
	if in.HoursPerRun <= 0 {
		return errors.Inputf("hours per run must be positive, got %g", in.HoursPerRun)
	}
	if in.UnitsPerNodeHour <= 0 {
		return errors.Inputf("usage units per node-hour must be positive, got %g", in.UnitsPerNodeHour)
	}
	if in.UsageRate.IsNegative() {
		return errors.Input("usage rate cannot be negative")
	}
	if in.RunsPerDay < 1 {
		return errors.Inputf("runs per day must be at least 1, got %d", in.RunsPerDay)
	}
	if in.DaysPerMonth < 1 {
		return errors.Inputf("active days per month must be at least 1, got %d", in.DaysPerMonth)
	}
	return nil
}

// Breakdown is the computed result, immutable once produced.
// Total is a pure deterministic function of Inputs.
type Breakdown struct {
	// Inputs are the factors that produced this breakdown
	Inputs Inputs

	// InstanceCost is the unrounded monthly infrastructure cost
	InstanceCost decimal.Decimal

	// UsageCost is the unrounded monthly usage surcharge
	UsageCost decimal.Decimal

	// Total is InstanceCost + UsageCost rounded to 2 decimal places
	Total decimal.Decimal

	// MonthlyRuns is RunsPerDay × DaysPerMonth
	MonthlyRuns int
}

// Calculate computes the monthly breakdown:
//
//	instanceCost = hourlyPrice × nodes × hoursPerRun × runsPerDay × daysPerMonth
//	usageCost    = unitsPerNodeHour × nodes × usageRate × hoursPerRun × runsPerDay × daysPerMonth
//	total        = round(instanceCost + usageCost, 2)
//
// Both terms scale linearly and independently in every factor.
// Rounding happens exactly once, on the sum, never on the terms.
func Calculate(in Inputs) (Breakdown, error) {
	if err := in.Validate(); err != nil {
		return Breakdown{}, err
	}

	monthlyRuns := in.RunsPerDay * in.DaysPerMonth

	nodes := decimal.NewFromInt(int64(in.Nodes))
	hours := decimal.NewFromFloat(in.HoursPerRun)
	units := decimal.NewFromFloat(in.UnitsPerNodeHour)
	runs := decimal.NewFromInt(int64(monthlyRuns))

	instanceCost := in.HourlyPrice.Mul(nodes).Mul(hours).Mul(runs)
	usageCost := units.Mul(nodes).Mul(in.UsageRate).Mul(hours).Mul(runs)

	return Breakdown{
		Inputs:       in,
		InstanceCost: instanceCost,
		UsageCost:    usageCost,
		Total:        instanceCost.Add(usageCost).Round(2),
		MonthlyRuns:  monthlyRuns,
	}, nil
}
