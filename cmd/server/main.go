// Package main - Entry point for the compute-cost HTTP server
package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"compute-cost/api"
	"compute-cost/clouds"
	"compute-cost/clouds/aws"
	"compute-cost/core/catalog"
	"compute-cost/core/engine"
	"compute-cost/internal/config"
	"compute-cost/internal/logging"
)

const version = "1.0.0"

func main() {
	addr := flag.String("addr", ":8080", "Server address")
	cfgPath := flag.String("config", "", "Config file (default is $HOME/.compute-cost/config.json)")
	flag.Parse()

	path := *cfgPath
	if path == "" {
		path = config.DefaultPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if err := logging.Initialize(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logging: %v\n", err)
	}
	defer logging.Sync()

	eng, err := buildEngine(context.Background(), cfg)
	if err != nil {
		logging.Fatal("engine setup failed", zap.Error(err))
	}

	server := api.NewServer(version, eng)

	fmt.Printf("compute-cost server v%s listening on %s\n", version, *addr)
	if err := server.ListenAndServe(*addr); err != nil {
		logging.Fatal("server stopped", zap.Error(err))
	}
}

func buildEngine(ctx context.Context, cfg *config.Config) (*engine.Engine, error) {
	rates := catalog.Default()
	if len(cfg.UsageRates) > 0 {
		overrides, err := catalog.RatesFromConfig(cfg.UsageRates)
		if err != nil {
			return nil, err
		}
		rates = rates.WithRates(overrides)
	}

	var pricingAPI aws.PricingAPI
	client, err := aws.NewPricingClient(ctx, cfg.AWS.Profile)
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
