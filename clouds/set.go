// Package clouds seals the provider resolvers into a closed set.
// Adding a provider is a code change here, not a runtime registration.
package clouds

import (
	"compute-cost/clouds/aws"
	"compute-cost/clouds/gcp"
	"compute-cost/core/pricing"
	"compute-cost/internal/errors"
)

// Set is a sealed provider-to-resolver lookup, built once at startup.
// Nothing mutates it after construction, so concurrent lookups need no
// locking.
type Set struct {
	resolvers map[pricing.Provider]pricing.Resolver
	order     []pricing.Provider
}

// NewSet seals the given resolvers.
// A nil or duplicate resolver is a wiring bug and fails construction.
func NewSet(resolvers ...pricing.Resolver) (*Set, error) {
	set := &Set{
		resolvers: make(map[pricing.Provider]pricing.Resolver, len(resolvers)),
	}
	for _, resolver := range resolvers {
		if resolver == nil {
			return nil, errors.New(errors.TypeInternal, "nil resolver")
		}
		provider := resolver.Provider()
		if _, exists := set.resolvers[provider]; exists {
			return nil, errors.Newf(errors.TypeInternal, "duplicate resolver for provider %s", provider)
		}
		set.resolvers[provider] = resolver
		set.order = append(set.order, provider)
	}
	return set, nil
}

// Default builds the standard set: AWS over the given Price List client,
// GCP static. A nil client keeps AWS spot estimation working and makes
// on-demand queries resolve as unavailable.
func Default(api aws.PricingAPI) (*Set, error) {
	return NewSet(
		aws.NewResolver(aws.DefaultInstances(), api),
		gcp.NewResolver(gcp.DefaultInstances()),
	)
}

// Resolver returns the resolver for a provider
func (s *Set) Resolver(provider pricing.Provider) (pricing.Resolver, bool) {
	resolver, ok := s.resolvers[provider]
	return resolver, ok
}

// Providers returns the providers in construction order
func (s *Set) Providers() []pricing.Provider {
	return append([]pricing.Provider(nil), s.order...)
}
