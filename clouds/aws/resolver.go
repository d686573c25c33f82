// Package aws resolves AWS instance prices.
// Spot queries apply a fixed reduction to a static reference table and never
// leave the process; on-demand queries go to the AWS Price List API.
package aws

import (
	"context"
	"fmt"

	awssdk "github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	awspricing "github.com/aws/aws-sdk-go-v2/service/pricing"
	pricingtypes "github.com/aws/aws-sdk-go-v2/service/pricing/types"
	"github.com/shopspring/decimal"

	"compute-cost/core/pricing"
)

const (
	serviceCodeEC2 = "AmazonEC2"

	// The Price List API is only served from us-east-1 (and ap-south-1);
	// this is the client endpoint region, unrelated to the queried location.
	pricingEndpointRegion = "us-east-1"

	// Every on-demand query filters on this location string, whatever region
	// the caller selected.
	pinnedLocation = "US East (N. Virginia)"
)

// spotMultiplier approximates spot pricing as a fixed 30% reduction off the
// on-demand reference price. An approximation, not a live market quote.
var spotMultiplier = decimal.NewFromFloat(0.7)

// DefaultInstances returns the built-in reference price table and regions
func DefaultInstances() pricing.InstanceTable {
	return pricing.NewInstanceTable(map[string]decimal.Decimal{
		"m5.xlarge": decimal.NewFromFloat(0.192),
		"r5.large":  decimal.NewFromFloat(0.126),
		"t3.medium": decimal.NewFromFloat(0.0416),
	}, []string{"us-east-1", "us-west-2"})
}

// PricingAPI is the slice of the Price List client the resolver calls.
// Tests substitute a fake; production passes *pricing.Client from the SDK.
type PricingAPI interface {
	GetProducts(ctx context.Context, params *awspricing.GetProductsInput, optFns ...func(*awspricing.Options)) (*awspricing.GetProductsOutput, error)
}

// NewPricingClient builds the real Price List client from the default
// credential chain. Retries are disabled: one query, one attempt, resilience
// belongs to callers.
func NewPricingClient(ctx context.Context, profile string) (*awspricing.Client, error) {
	loadOpts := []func(*awsconfig.LoadOptions) error{
		awsconfig.WithRegion(pricingEndpointRegion),
	}
	if profile != "" {
		loadOpts = append(loadOpts, awsconfig.WithSharedConfigProfile(profile))
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, loadOpts...)
	if err != nil {
		return nil, err
	}

	return awspricing.NewFromConfig(cfg, func(o *awspricing.Options) {
		o.Retryer = awssdk.NopRetryer{}
	}), nil
}

// Resolver implements pricing.Resolver for AWS
type Resolver struct {
	instances pricing.InstanceTable
	api       PricingAPI
}

// NewResolver builds the AWS resolver.
// A nil api leaves spot estimation working and collapses every on-demand
// query to an unavailable outcome.
func NewResolver(instances pricing.InstanceTable, api PricingAPI) *Resolver {
	return &Resolver{
		instances: instances,
		api:       api,
	}
}

// Provider returns pricing.ProviderAWS
func (r *Resolver) Provider() pricing.Provider {
	return pricing.ProviderAWS
}

// Instances returns the reference table
func (r *Resolver) Instances() pricing.InstanceTable {
	return r.instances
}

// Resolve produces the hourly price for one query
func (r *Resolver) Resolve(ctx context.Context, query pricing.Query) pricing.Resolution {
	if query.Spot {
		return r.resolveSpot(query.InstanceType)
	}
	return r.resolveOnDemand(ctx, query)
}

// resolveSpot prices an identifier from the reference table.
// An identifier outside the table is unavailable; there is no default price.
func (r *Resolver) resolveSpot(instanceType string) pricing.Resolution {
	reference, ok := r.instances.Price(instanceType)
	if !ok {
		return pricing.Unavailable(pricing.ReasonUnknownInstance,
			fmt.Sprintf("no reference price for %q", instanceType))
	}
	return pricing.Resolved(pricing.Price{
		Hourly:   reference.Mul(spotMultiplier).Round(4),
		Currency: pricing.CurrencyUSD,
		Source:   pricing.SourceSpotEstimate,
	})
}

// resolveOnDemand issues one GetProducts call and extracts the first
// on-demand USD price. Every failure mode collapses to unavailable with a
// reason; no retry, no partial price.
//
// TODO: resolve the location filter from query.Region via a region-to-location
// table. Today every on-demand quote is priced against N. Virginia even when
// the caller selected us-west-2.
func (r *Resolver) resolveOnDemand(ctx context.Context, query pricing.Query) pricing.Resolution {
	if r.api == nil {
		return pricing.Unavailable(pricing.ReasonQueryFailed, "no pricing client configured")
	}

	input := &awspricing.GetProductsInput{
		ServiceCode: awssdk.String(serviceCodeEC2),
		Filters: []pricingtypes.Filter{
			termMatch("instanceType", query.InstanceType),
			termMatch("location", pinnedLocation),
			termMatch("operatingSystem", "Linux"),
			termMatch("preInstalledSw", "NA"),
			termMatch("tenancy", "Shared"),
			termMatch("capacitystatus", "Used"),
		},
		MaxResults: awssdk.Int32(1),
	}

	out, err := r.api.GetProducts(ctx, input)
	if err != nil {
		return pricing.Unavailable(pricing.ReasonQueryFailed, err.Error())
	}
	if len(out.PriceList) == 0 {
		return pricing.Unavailable(pricing.ReasonNoListing,
			fmt.Sprintf("no products matched %q", query.InstanceType))
	}

	hourly, err := onDemandUSD([]byte(out.PriceList[0]))
	if err != nil {
		return pricing.Unavailable(pricing.ReasonMalformedListing, err.Error())
	}

	return pricing.Resolved(pricing.Price{
		Hourly:   hourly,
		Currency: pricing.CurrencyUSD,
		Source:   pricing.SourcePriceList,
	})
}

func termMatch(field, value string) pricingtypes.Filter {
	return pricingtypes.Filter{
		Type:  pricingtypes.FilterTypeTermMatch,
		Field: awssdk.String(field),
		Value: awssdk.String(value),
	}
}
