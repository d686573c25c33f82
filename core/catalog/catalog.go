// Package catalog provides the subscription-tier usage-rate table.
// Rates are currency per usage-unit per node-hour. The table is immutable:
// built once at startup and passed explicitly to whoever needs it.
package catalog

import (
	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"compute-cost/internal/errors"
)

// Tier is a subscription pricing plan level
type Tier string

const (
	TierStandard   Tier = "standard"
	TierPremium    Tier = "premium"
	TierEnterprise Tier = "enterprise"
)

// Class is a workload category used as a rate-table key
type Class string

const (
	ClassBatch       Class = "batch"
	ClassInteractive Class = "interactive"
	ClassQuery       Class = "query"
	ClassAccelerated Class = "accelerated"
)

// Canonical listing order for tables and API responses
var (
	tierOrder  = []Tier{TierStandard, TierPremium, TierEnterprise}
	classOrder = []Class{ClassBatch, ClassInteractive, ClassQuery, ClassAccelerated}
)

// ParseTier converts a string to a known Tier
func ParseTier(s string) (Tier, error) {
	if !lo.Contains(tierOrder, Tier(s)) {
		return "", errors.Inputf("unknown tier %q", s)
	}
	return Tier(s), nil
}

// ParseClass converts a string to a known Class
func ParseClass(s string) (Class, error) {
	if !lo.Contains(classOrder, Class(s)) {
		return "", errors.Inputf("unknown workload class %q", s)
	}
	return Class(s), nil
}

// RateTable maps (tier, class) to a usage rate. Lookups return the exact
// stored rate; there is no interpolation and no fallback.
type RateTable struct {
	rates map[Tier]map[Class]decimal.Decimal
}

// New builds an immutable table from the given rates.
// The input is deep-copied; later mutation of it does not reach the table.
func New(rates map[Tier]map[Class]decimal.Decimal) *RateTable {
	copied := make(map[Tier]map[Class]decimal.Decimal, len(rates))
	for tier, classes := range rates {
		inner := make(map[Class]decimal.Decimal, len(classes))
		for class, rate := range classes {
			inner[class] = rate
		}
		copied[tier] = inner
	}
	return &RateTable{rates: copied}
}

// Rate returns the usage rate for a tier and class.
// Callers restrict class choices to the tier beforehand, so a failed lookup
// signals a contract violation, reported as a catalog error.
func (t *RateTable) Rate(tier Tier, class Class) (decimal.Decimal, error) {
	classes, ok := t.rates[tier]
	if !ok {
		return decimal.Zero, errors.Catalog(string(tier), string(class))
	}
	rate, ok := classes[class]
	if !ok {
		return decimal.Zero, errors.Catalog(string(tier), string(class))
	}
	return rate, nil
}

// Tiers returns the tiers present in the table, in canonical order
func (t *RateTable) Tiers() []Tier {
	return lo.Filter(tierOrder, func(tier Tier, _ int) bool {
		_, ok := t.rates[tier]
		return ok
	})
}

// Classes returns the classes defined for a tier, in canonical order
func (t *RateTable) Classes(tier Tier) ([]Class, error) {
	classes, ok := t.rates[tier]
	if !ok {
		return nil, errors.Catalog(string(tier), "")
	}
	return lo.Filter(classOrder, func(class Class, _ int) bool {
		_, ok := classes[class]
		return ok
	}), nil
}

// WithRates returns a new table with the given rates merged over this one.
// The receiver is not modified.
func (t *RateTable) WithRates(overrides map[Tier]map[Class]decimal.Decimal) *RateTable {
	merged := New(t.rates)
	for tier, classes := range overrides {
		if _, ok := merged.rates[tier]; !ok {
			merged.rates[tier] = make(map[Class]decimal.Decimal, len(classes))
		}
		for class, rate := range classes {
			merged.rates[tier][class] = rate
		}
	}
	return merged
}
