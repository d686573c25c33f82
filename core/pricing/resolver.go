package pricing

import (
	"context"
)

// Query asks for the hourly price of one instance configuration.
// Queries are built per request and never persisted.
type Query struct {
	// Provider selects the resolver
	Provider Provider

	// InstanceType is a provider-scoped instance identifier
	InstanceType string

	// Region is the caller-selected region, validated against the
	// provider's region set
	Region string

	// Spot requests discounted pricing where the provider models it
	Spot bool
}

// Resolver produces an hourly price for a query.
// Resolution is request-scoped: no caching, no retries, no logging.
// The same query issued twice may legitimately differ in outcome when the
// provider consults a remote service. The only deadline is the one ctx
// carries; there is no timeout knob.
type Resolver interface {
	// Provider returns the provider this resolver serves
	Provider() Provider

	// Resolve produces a price or an explicit unavailable outcome.
	// It never returns an error; every failure mode collapses into
	// the Resolution.
	Resolve(ctx context.Context, query Query) Resolution

	// Instances returns the provider's closed instance and region sets
	Instances() InstanceTable
}

// ResolverSet is a closed lookup of resolvers by provider, built once at
// startup. Implemented by clouds.Set.
type ResolverSet interface {
	// Resolver returns the resolver for a provider
	Resolver(provider Provider) (Resolver, bool)

	// Providers returns all providers in the set
	Providers() []Provider
}
