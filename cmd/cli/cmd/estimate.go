// Package cmd - estimate command
package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"compute-cost/adapters/export"
	"compute-cost/adapters/workload"
	"compute-cost/api"
	"compute-cost/core/catalog"
	"compute-cost/core/engine"
	"compute-cost/core/pricing"
	"compute-cost/core/projection"
	"compute-cost/internal/logging"
)

var (
	workloadFile   string
	outputFormat   string
	exportFile     string
	projectionFile string
	showDetails    bool
	showProjection bool

	flagProvider     string
	flagInstanceType string
	flagRegion       string
	flagSpot         bool
	flagTier         string
	flagClass        string
	flagNodes        int
	flagHoursPerRun  float64
	flagUnits        float64
	flagRunsPerDay   int
	flagDaysPerMonth int
)

// estimateCmd represents the estimate command
var estimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Estimate the monthly cost of compute workloads",
	Long: `Resolve instance pricing and compute the monthly cost of one or more
compute workloads.

A single workload is described with flags; a set of workloads comes from
an HCL definition file via --file.

Examples:
  compute-cost estimate --provider aws --instance-type m5.xlarge --spot --tier premium --class interactive
  compute-cost estimate --provider gcp --instance-type n2-standard-2 --tier standard --class batch --nodes 4
  compute-cost estimate --file workloads.hcl --export breakdown.csv
  compute-cost estimate --file workloads.hcl --format json`,
	Args: cobra.NoArgs,
	RunE: runEstimate,
}

func init() {
	estimateCmd.Flags().StringVarP(&workloadFile, "file", "f", "", "workload definition file (HCL)")
	estimateCmd.Flags().StringVar(&outputFormat, "format", "", "output format (table, json)")
	estimateCmd.Flags().StringVar(&exportFile, "export", "", "write a breakdown CSV to this file")
	estimateCmd.Flags().StringVar(&projectionFile, "projection-csv", "", "write the 12-month projection CSV to this file")
	estimateCmd.Flags().BoolVarP(&showDetails, "details", "d", true, "show per-term cost breakdown")
	estimateCmd.Flags().BoolVar(&showProjection, "projection", false, "print the 12-month cumulative projection")

	estimateCmd.Flags().StringVarP(&flagProvider, "provider", "p", "", "cloud provider (aws, gcp)")
	estimateCmd.Flags().StringVarP(&flagInstanceType, "instance-type", "i", "", "instance type identifier")
	estimateCmd.Flags().StringVarP(&flagRegion, "region", "r", "", "provider region (default from config)")
	estimateCmd.Flags().BoolVar(&flagSpot, "spot", false, "estimate discounted spot pricing (aws only)")
	estimateCmd.Flags().StringVar(&flagTier, "tier", "", "subscription tier (standard, premium, enterprise)")
	estimateCmd.Flags().StringVar(&flagClass, "class", "", "workload class (batch, interactive, query, accelerated)")
	estimateCmd.Flags().IntVar(&flagNodes, "nodes", 1, "number of nodes")
	estimateCmd.Flags().Float64Var(&flagHoursPerRun, "hours-per-run", 1, "hours per run")
	estimateCmd.Flags().Float64Var(&flagUnits, "units-per-node-hour", 1, "usage units consumed per node-hour")
	estimateCmd.Flags().IntVar(&flagRunsPerDay, "runs-per-day", 1, "runs per day")
	estimateCmd.Flags().IntVar(&flagDaysPerMonth, "days-per-month", 30, "active days per month")
}

// namedRequest pairs an engine request with the workload name it came
// from, empty when the request was assembled from flags.
type namedRequest struct {
	name string
	req  engine.Request
}

func runEstimate(cmd *cobra.Command, args []string) error {
	ctx := context.Background()
	startTime := time.Now()

	requests, err := collectRequests()
	if err != nil {
		return err
	}

	eng, err := buildEngine(ctx)
	if err != nil {
		return err
	}

	logging.Info("Starting cost estimation", zap.Int("workloads", len(requests)))

	estimates := make([]*engine.Estimate, 0, len(requests))
	for _, nr := range requests {
		est, err := eng.Estimate(ctx, nr.req)
		if err != nil {
			if nr.name != "" {
				return fmt.Errorf("workload %q: %w", nr.name, err)
			}
			return err
		}
		estimates = append(estimates, est)
	}

	format := outputFormat
	if format == "" {
		format = appConfig.Output.DefaultFormat
	}

	switch format {
	case "json":
		if err := printJSON(estimates); err != nil {
			return err
		}
	case "table":
		printEstimates(requests, estimates, time.Since(startTime))
		if showProjection {
			for i, est := range estimates {
				printProjection(estimateLabel(requests[i].name, est.Request), est.Projection)
			}
		}
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}

	if exportFile != "" {
		err := writeCSV(exportFile, func(f *os.File) error {
			return export.WriteBreakdowns(f, estimates)
		})
		if err != nil {
			return err
		}
		fmt.Printf("\nBreakdown CSV written to %s\n", exportFile)
	}

	if projectionFile != "" {
		if len(estimates) != 1 {
			return fmt.Errorf("--projection-csv needs exactly one workload, got %d", len(estimates))
		}
		err := writeCSV(projectionFile, func(f *os.File) error {
			return export.WriteProjection(f, estimates[0])
		})
		if err != nil {
			return err
		}
		fmt.Printf("Projection CSV written to %s\n", projectionFile)
	}

	return nil
}

// collectRequests builds the request list from --file or from flags.
func collectRequests() ([]namedRequest, error) {
	if workloadFile != "" {
		definitions, err := workload.LoadFile(workloadFile)
		if err != nil {
			return nil, err
		}
		requests := make([]namedRequest, 0, len(definitions))
		for _, def := range definitions {
			req, err := def.Request()
			if err != nil {
				return nil, err
			}
			requests = append(requests, namedRequest{name: def.Name, req: req})
		}
		return requests, nil
	}

	if flagProvider == "" || flagInstanceType == "" || flagTier == "" || flagClass == "" {
		return nil, fmt.Errorf("either --file or all of --provider, --instance-type, --tier and --class are required")
	}

	provider, err := pricing.ParseProvider(flagProvider)
	if err != nil {
		return nil, err
	}
	tier, err := catalog.ParseTier(flagTier)
	if err != nil {
		return nil, err
	}
	class, err := catalog.ParseClass(flagClass)
	if err != nil {
		return nil, err
	}

	region := flagRegion
	if region == "" {
		region = defaultRegion(provider)
	}

	return []namedRequest{{req: engine.Request{
		Provider:         provider,
		InstanceType:     flagInstanceType,
		Region:           region,
		Spot:             flagSpot,
		Tier:             tier,
		Class:            class,
		Nodes:            flagNodes,
		HoursPerRun:      flagHoursPerRun,
		UnitsPerNodeHour: flagUnits,
		RunsPerDay:       flagRunsPerDay,
		DaysPerMonth:     flagDaysPerMonth,
	}}}, nil
}

func defaultRegion(provider pricing.Provider) string {
	switch provider {
	case pricing.ProviderAWS:
		return appConfig.AWS.DefaultRegion
	case pricing.ProviderGCP:
		return appConfig.GCP.DefaultRegion
	}
	return ""
}

func printJSON(estimates []*engine.Estimate) error {
	responses := make([]*api.EstimateResponse, 0, len(estimates))
	for _, est := range estimates {
		responses = append(responses, api.NewEstimateResponse(est))
	}

	// A single workload prints as one document, matching the API response.
	var out interface{} = responses
	if len(responses) == 1 {
		out = responses[0]
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}

func printEstimates(requests []namedRequest, estimates []*engine.Estimate, elapsed time.Duration) {
	fmt.Println("┌─────────────────────────────────────────────────────────────────────────┐")
	fmt.Println("│                          MONTHLY COST ESTIMATE                          │")
	fmt.Println("├─────────────────────────────────────────────────────────────────────────┤")

	total := decimal.Zero
	for i, est := range estimates {
		label := estimateLabel(requests[i].name, est.Request)
		fmt.Printf("│ %-50s %20s │\n",
			truncate(label, 50),
			fmt.Sprintf("$%s/month", est.Breakdown.Total.StringFixed(2)))

		if showDetails {
			fmt.Printf("│   └─ %-45s %20s │\n",
				truncate(fmt.Sprintf("instance $%s/hr (%s)", est.Price.Hourly.StringFixed(4), est.Price.Source), 45),
				fmt.Sprintf("$%s", est.Breakdown.InstanceCost.StringFixed(2)))
			fmt.Printf("│   └─ %-45s %20s │\n",
				truncate(fmt.Sprintf("usage $%s/unit x %g units/node-hr", est.UsageRate.String(), est.Request.UnitsPerNodeHour), 45),
				fmt.Sprintf("$%s", est.Breakdown.UsageCost.StringFixed(2)))
			fmt.Printf("│   └─ %-45s %20s │\n",
				truncate(fmt.Sprintf("%s/%s, %d nodes, %d runs/month", est.Request.Tier, est.Request.Class, est.Request.Nodes, est.Breakdown.MonthlyRuns), 45),
				"")
		}

		total = total.Add(est.Breakdown.Total)
	}

	fmt.Println("├─────────────────────────────────────────────────────────────────────────┤")
	fmt.Printf("│ %-50s %20s │\n",
		"TOTAL MONTHLY ESTIMATE",
		fmt.Sprintf("$%s", total.StringFixed(2)))
	fmt.Println("└─────────────────────────────────────────────────────────────────────────┘")

	fmt.Printf("\nEstimation completed in %s\n", elapsed.Round(time.Millisecond))
}

func printProjection(label string, series projection.Series) {
	fmt.Println()
	fmt.Println("┌─────────────────────────────────────────────────────────────────────────┐")
	fmt.Println("│                     12-MONTH CUMULATIVE PROJECTION                      │")
	fmt.Println("├─────────────────────────────────────────────────────────────────────────┤")
	fmt.Printf("│ %-71s │\n", truncate(label, 71))
	fmt.Println("├─────────────────────────────────────────────────────────────────────────┤")
	for _, point := range series {
		fmt.Printf("│ %-50s %20s │\n",
			fmt.Sprintf("Month %d", point.Month),
			fmt.Sprintf("$%s", point.Cumulative.StringFixed(2)))
	}
	fmt.Println("└─────────────────────────────────────────────────────────────────────────┘")
}

func estimateLabel(name string, req engine.Request) string {
	desc := fmt.Sprintf("%s %s (%s", req.Provider, req.InstanceType, req.Region)
	if req.Spot {
		desc += ", spot"
	}
	desc += ")"
	if name != "" {
		return fmt.Sprintf("%s: %s", name, desc)
	}
	return desc
}

func writeCSV(path string, write func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	if err := write(f); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
