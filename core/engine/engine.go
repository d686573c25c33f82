// Package engine orchestrates one estimate end to end:
// resolver lookup → region check → usage rate → price resolution →
// cost calculation → projection.
// One synchronous chain per request. The engine holds only immutable state,
// so concurrent Estimate calls need no locking. The engine never logs.
package engine

import (
	"context"

	"github.com/shopspring/decimal"

	"compute-cost/core/catalog"
	"compute-cost/core/cost"
	"compute-cost/core/pricing"
	"compute-cost/core/projection"
	"compute-cost/internal/errors"
)

// Request carries one estimate's selections.
// Adapters parse and validate raw input into a Request before calling in.
type Request struct {
	// Provider selects the price resolver
	Provider pricing.Provider

	// InstanceType is the provider-scoped instance identifier
	InstanceType string

	// Region must belong to the provider's region set
	Region string

	// Spot requests discounted pricing where the provider models it
	Spot bool

	// Tier is the subscription tier
	Tier catalog.Tier

	// Class is the workload class priced under the tier
	Class catalog.Class

	// Nodes is the node count per run
	Nodes int

	// HoursPerRun is the runtime of one run in hours
	HoursPerRun float64

	// UnitsPerNodeHour is the usage-unit consumption per node per hour
	UnitsPerNodeHour float64

	// RunsPerDay is the number of runs per active day
	RunsPerDay int

	// DaysPerMonth is the number of active days per month
	DaysPerMonth int
}

// Estimate is the complete result handed to presentation layers
type Estimate struct {
	// Request echoes the selections that produced this estimate
	Request Request

	// UsageRate is the catalog rate applied per usage-unit
	UsageRate decimal.Decimal

	// Price is the resolved hourly infrastructure price
	Price pricing.Price

	// Breakdown is the monthly cost computation
	Breakdown cost.Breakdown

	// Projection is the 12-month cumulative series
	Projection projection.Series
}

// Engine wires the resolver set and the rate table
type Engine struct {
	resolvers pricing.ResolverSet
	rates     *catalog.RateTable
}

// New builds an engine over a sealed resolver set and an immutable rate table
func New(resolvers pricing.ResolverSet, rates *catalog.RateTable) *Engine {
	return &Engine{
		resolvers: resolvers,
		rates:     rates,
	}
}

// Resolvers returns the sealed resolver set, for option listings
func (e *Engine) Resolvers() pricing.ResolverSet {
	return e.resolvers
}

// Rates returns the usage-rate table, for option listings
func (e *Engine) Rates() *catalog.RateTable {
	return e.rates
}

// Estimate runs the chain for one request.
// An unavailable price becomes a typed pricing error here: no breakdown is
// ever produced from a partial or default price.
func (e *Engine) Estimate(ctx context.Context, req Request) (*Estimate, error) {
	resolver, ok := e.resolvers.Resolver(req.Provider)
	if !ok {
		return nil, errors.NotSupported("provider", string(req.Provider))
	}
	if !resolver.Instances().HasRegion(req.Region) {
		return nil, errors.Inputf("region %q is not valid for provider %s", req.Region, req.Provider)
	}

	rate, err := e.rates.Rate(req.Tier, req.Class)
	if err != nil {
		return nil, err
	}

	resolution := resolver.Resolve(ctx, pricing.Query{
		Provider:     req.Provider,
		InstanceType: req.InstanceType,
		Region:       req.Region,
		Spot:         req.Spot,
	})
	price, ok := resolution.Price()
	if !ok {
		return nil, errors.PriceUnavailable(
			string(req.Provider), req.InstanceType,
			string(resolution.Reason()), resolution.Detail(),
		)
	}

	breakdown, err := cost.Calculate(cost.Inputs{
		HourlyPrice:      price.Hourly,
		Nodes:            req.Nodes,
		HoursPerRun:      req.HoursPerRun,
		UnitsPerNodeHour: req.UnitsPerNodeHour,
		UsageRate:        rate,
		RunsPerDay:       req.RunsPerDay,
		DaysPerMonth:     req.DaysPerMonth,
	})
	if err != nil {
		return nil, err
	}

	return &Estimate{
		Request:    req,
		UsageRate:  rate,
		Price:      price,
		Breakdown:  breakdown,
		Projection: projection.Annual(breakdown.Total),
	}, nil
}
