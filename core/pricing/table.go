package pricing

import (
	"sort"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// InstanceTable holds a provider's closed set of instance identifiers with
// their reference hourly prices, and the provider's valid regions.
// Identifiers are provider-scoped; one provider's identifier is never valid
// for another. Immutable once built.
type InstanceTable struct {
	prices  map[string]decimal.Decimal
	regions []string
}

// NewInstanceTable copies the given prices and regions into an immutable table
func NewInstanceTable(prices map[string]decimal.Decimal, regions []string) InstanceTable {
	copied := make(map[string]decimal.Decimal, len(prices))
	for instanceType, price := range prices {
		copied[instanceType] = price
	}
	return InstanceTable{
		prices:  copied,
		regions: append([]string(nil), regions...),
	}
}

// Price returns the reference hourly price for an instance identifier
func (t InstanceTable) Price(instanceType string) (decimal.Decimal, bool) {
	price, ok := t.prices[instanceType]
	return price, ok
}

// InstanceTypes returns all instance identifiers, sorted
func (t InstanceTable) InstanceTypes() []string {
	types := lo.Keys(t.prices)
	sort.Strings(types)
	return types
}

// Regions returns the provider's valid regions
func (t InstanceTable) Regions() []string {
	return append([]string(nil), t.regions...)
}

// HasRegion reports whether a region belongs to the provider
func (t InstanceTable) HasRegion(region string) bool {
	return lo.Contains(t.regions, region)
}
