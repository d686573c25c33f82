// Package gcp resolves GCP instance prices from a static table.
package gcp

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"compute-cost/core/pricing"
)

// DefaultInstances returns the built-in price table and regions
func DefaultInstances() pricing.InstanceTable {
	return pricing.NewInstanceTable(map[string]decimal.Decimal{
		"n2-standard-2": decimal.NewFromFloat(0.109),
		"n1-standard-4": decimal.NewFromFloat(0.15),
	}, []string{"us-central1", "us-east4"})
}

// Resolver implements pricing.Resolver for GCP
type Resolver struct {
	instances pricing.InstanceTable
}

// NewResolver builds the GCP resolver over an instance table
func NewResolver(instances pricing.InstanceTable) *Resolver {
	return &Resolver{instances: instances}
}

// Provider returns pricing.ProviderGCP
func (r *Resolver) Provider() pricing.Provider {
	return pricing.ProviderGCP
}

// Instances returns the price table
func (r *Resolver) Instances() pricing.InstanceTable {
	return r.instances
}

// Resolve looks the identifier up in the static table. No remote calls.
// Discounted pricing is not modeled for GCP; the spot flag has no effect.
func (r *Resolver) Resolve(_ context.Context, query pricing.Query) pricing.Resolution {
	price, ok := r.instances.Price(query.InstanceType)
	if !ok {
		return pricing.Unavailable(pricing.ReasonUnknownInstance,
			fmt.Sprintf("no price for %q", query.InstanceType))
	}
	return pricing.Resolved(pricing.Price{
		Hourly:   price,
		Currency: pricing.CurrencyUSD,
		Source:   pricing.SourceStatic,
	})
}
