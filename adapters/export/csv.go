// Package export writes estimate records for spreadsheets and charting.
package export

import (
	"encoding/csv"
	"io"
	"strconv"

	"compute-cost/core/engine"
)

var breakdownHeader = []string{
	"Provider",
	"Region",
	"Instance Type",
	"Spot",
	"Tier",
	"Workload Class",
	"Usage Rate ($/unit)",
	"Instance Price ($/hr)",
	"Monthly Runs",
	"Total Monthly Cost ($)",
}

// WriteBreakdowns writes one CSV row per estimate.
// Hourly prices carry 4 decimals, totals 2, matching the record contract.
func WriteBreakdowns(w io.Writer, estimates []*engine.Estimate) error {
	writer := csv.NewWriter(w)

	if err := writer.Write(breakdownHeader); err != nil {
		return err
	}
	for _, estimate := range estimates {
		req := estimate.Request
		row := []string{
			string(req.Provider),
			req.Region,
			req.InstanceType,
			yesNo(req.Spot),
			string(req.Tier),
			string(req.Class),
			estimate.UsageRate.String(),
			estimate.Price.Hourly.StringFixed(4),
			strconv.Itoa(estimate.Breakdown.MonthlyRuns),
			estimate.Breakdown.Total.StringFixed(2),
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

// WriteProjection writes the 12-month cumulative series of one estimate
func WriteProjection(w io.Writer, estimate *engine.Estimate) error {
	writer := csv.NewWriter(w)

	if err := writer.Write([]string{"Month", "Cumulative Cost ($)"}); err != nil {
		return err
	}
	for _, point := range estimate.Projection {
		row := []string{
			strconv.Itoa(point.Month),
			point.Cumulative.StringFixed(2),
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
