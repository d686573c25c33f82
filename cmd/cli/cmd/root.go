// Package cmd provides the CLI commands for compute-cost.
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"compute-cost/clouds"
	"compute-cost/clouds/aws"
	"compute-cost/core/catalog"
	"compute-cost/core/engine"
	"compute-cost/internal/config"
	"compute-cost/internal/logging"
)

var (
	cfgFile   string
	verbose   bool
	appConfig *config.Config
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "compute-cost",
	Short: "Estimate monthly costs for managed compute workloads",
	Long: `compute-cost estimates the monthly operating cost of a managed compute
workload: per-hour instance pricing from a cloud provider plus a per-unit
usage fee that varies by subscription tier and workload class.

Examples:
  compute-cost estimate --provider gcp --instance-type n2-standard-2 --tier standard --class batch
  compute-cost estimate --provider aws --instance-type m5.xlarge --spot --tier premium --class interactive --nodes 3
  compute-cost estimate --file workloads.hcl --format json
  compute-cost catalog`,
}

// Execute runs the CLI
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.compute-cost/config.json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	// Add subcommands
	rootCmd.AddCommand(estimateCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(configCmd)
}

func initConfig() {
	path := cfgFile
	if path == "" {
		path = config.DefaultPath()
	}

	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	appConfig = cfg

	if verbose {
		appConfig.Logging.Level = "debug"
	}
	if err := logging.Initialize(appConfig.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
}

// effectiveRates builds the usage-rate table, merging config overrides
// over the built-in defaults.
func effectiveRates() (*catalog.RateTable, error) {
	rates := catalog.Default()
	if len(appConfig.UsageRates) == 0 {
		return rates, nil
	}
	overrides, err := catalog.RatesFromConfig(appConfig.UsageRates)
	if err != nil {
		return nil, err
	}
	return rates.WithRates(overrides), nil
}

// buildEngine wires the resolver set and rate table into an engine.
// A failed AWS client setup is not fatal: spot and GCP estimates work
// without it, and on-demand AWS quotes come back unavailable.
func buildEngine(ctx context.Context) (*engine.Engine, error) {
	rates, err := effectiveRates()
	if err != nil {
		return nil, err
	}

	var pricingAPI aws.PricingAPI
	client, err := aws.NewPricingClient(ctx, appConfig.AWS.Profile)
	if err != nil {
		logging.Warn("AWS pricing client unavailable, on-demand quotes disabled", zap.Error(err))
	} else {
		pricingAPI = client
	}

	set, err := clouds.Default(pricingAPI)
	if err != nil {
		return nil, err
	}
	return engine.New(set, rates), nil
}

// versionCmd prints version information
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("compute-cost version 0.1.0")
	},
}
