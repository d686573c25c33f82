package catalog

import (
	"github.com/shopspring/decimal"

	"compute-cost/internal/errors"
)

// Default returns the built-in usage-rate table.
// Every tier defines every class, which keeps catalog lookups unreachable as
// a failure mode for callers that pick from Tiers() and Classes().
func Default() *RateTable {
	return New(map[Tier]map[Class]decimal.Decimal{
		TierStandard: {
			ClassBatch:       decimal.NewFromFloat(0.40),
			ClassInteractive: decimal.NewFromFloat(0.55),
			ClassQuery:       decimal.NewFromFloat(0.22),
			ClassAccelerated: decimal.NewFromFloat(0.30),
		},
		TierPremium: {
			ClassBatch:       decimal.NewFromFloat(0.50),
			ClassInteractive: decimal.NewFromFloat(0.65),
			ClassQuery:       decimal.NewFromFloat(0.30),
			ClassAccelerated: decimal.NewFromFloat(0.40),
		},
		TierEnterprise: {
			ClassBatch:       decimal.NewFromFloat(0.55),
			ClassInteractive: decimal.NewFromFloat(0.75),
			ClassQuery:       decimal.NewFromFloat(0.35),
			ClassAccelerated: decimal.NewFromFloat(0.40),
		},
	})
}

// RatesFromConfig converts configuration overrides into typed rate keys.
// Tier and class names must belong to the closed enums; overrides adjust
// rates, they do not introduce new tiers or classes.
func RatesFromConfig(raw map[string]map[string]float64) (map[Tier]map[Class]decimal.Decimal, error) {
	rates := make(map[Tier]map[Class]decimal.Decimal, len(raw))
	for tierName, classes := range raw {
		tier, err := ParseTier(tierName)
		if err != nil {
			return nil, errors.Newf(errors.TypeConfig, "usage_rates: unknown tier %q", tierName)
		}
		rates[tier] = make(map[Class]decimal.Decimal, len(classes))
		for className, rate := range classes {
			class, err := ParseClass(className)
			if err != nil {
				return nil, errors.Newf(errors.TypeConfig, "usage_rates: unknown class %q under tier %q", className, tierName)
			}
			if rate < 0 {
				return nil, errors.Newf(errors.TypeConfig, "usage_rates: negative rate for %s/%s", tierName, className)
			}
			rates[tier][class] = decimal.NewFromFloat(rate)
		}
	}
	return rates, nil
}
