// Package pricing defines the price resolution contract.
// Resolvers live under clouds/; core packages depend only on the types here.
package pricing

import (
	"compute-cost/internal/errors"
)

// Provider identifies a cloud provider.
// The set is closed: adding a provider means adding a resolver implementation,
// not registering a label at runtime.
type Provider string

const (
	// ProviderAWS resolves prices from a static reference table (spot) or the
	// AWS Price List API (on-demand)
	ProviderAWS Provider = "aws"

	// ProviderGCP resolves prices from a static table only
	ProviderGCP Provider = "gcp"
)

// String returns the provider identifier
func (p Provider) String() string {
	return string(p)
}

// ParseProvider converts a string to a known Provider
func ParseProvider(s string) (Provider, error) {
	switch Provider(s) {
	case ProviderAWS:
		return ProviderAWS, nil
	case ProviderGCP:
		return ProviderGCP, nil
	default:
		return "", errors.NotSupported("provider", s)
	}
}
