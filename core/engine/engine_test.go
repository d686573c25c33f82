package engine

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"compute-cost/core/catalog"
	"compute-cost/core/pricing"
	"compute-cost/internal/errors"
)

// stubResolver serves a canned resolution and counts calls.
type stubResolver struct {
	provider   pricing.Provider
	instances  pricing.InstanceTable
	resolution pricing.Resolution
	calls      int
}

func (r *stubResolver) Provider() pricing.Provider       { return r.provider }
func (r *stubResolver) Instances() pricing.InstanceTable { return r.instances }

func (r *stubResolver) Resolve(_ context.Context, _ pricing.Query) pricing.Resolution {
	r.calls++
	return r.resolution
}

type stubSet map[pricing.Provider]pricing.Resolver

func (s stubSet) Resolver(p pricing.Provider) (pricing.Resolver, bool) {
	r, ok := s[p]
	return r, ok
}

func (s stubSet) Providers() []pricing.Provider {
	providers := make([]pricing.Provider, 0, len(s))
	for p := range s {
		providers = append(providers, p)
	}
	return providers
}

func newTestEngine(resolution pricing.Resolution) (*Engine, *stubResolver) {
	resolver := &stubResolver{
		provider: pricing.ProviderAWS,
		instances: pricing.NewInstanceTable(map[string]decimal.Decimal{
			"m5.xlarge": decimal.NewFromFloat(0.192),
		}, []string{"us-east-1", "us-west-2"}),
		resolution: resolution,
	}
	eng := New(stubSet{pricing.ProviderAWS: resolver}, catalog.Default())
	return eng, resolver
}

func validRequest() Request {
	return Request{
		Provider:         pricing.ProviderAWS,
		InstanceType:     "m5.xlarge",
		Region:           "us-east-1",
		Tier:             catalog.TierStandard,
		Class:            catalog.ClassInteractive,
		Nodes:            3,
		HoursPerRun:      2.5,
		UnitsPerNodeHour: 2.75,
		RunsPerDay:       1,
		DaysPerMonth:     1,
	}
}

func TestEstimate(t *testing.T) {
	eng, resolver := newTestEngine(pricing.Resolved(pricing.Price{
		Hourly:   decimal.NewFromFloat(0.192),
		Currency: pricing.CurrencyUSD,
		Source:   pricing.SourcePriceList,
	}))

	req := validRequest()
	estimate, err := eng.Estimate(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, req, estimate.Request)
	assert.Equal(t, "0.55", estimate.UsageRate.String())
	assert.Equal(t, pricing.SourcePriceList, estimate.Price.Source)
	assert.Equal(t, "12.78", estimate.Breakdown.Total.String())
	require.Len(t, estimate.Projection, 12)
	assert.Equal(t, "153.36", estimate.Projection[11].Cumulative.String())
	assert.Equal(t, 1, resolver.calls)
}

func TestEstimateUnknownProvider(t *testing.T) {
	eng, _ := newTestEngine(pricing.Resolution{})

	req := validRequest()
	req.Provider = pricing.Provider("azure")

	_, err := eng.Estimate(context.Background(), req)
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeNotSupported))
}

func TestEstimateInvalidRegion(t *testing.T) {
	eng, resolver := newTestEngine(pricing.Resolution{})

	req := validRequest()
	req.Region = "eu-central-1"

	_, err := eng.Estimate(context.Background(), req)
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeInput))
	assert.Contains(t, err.Error(), "eu-central-1")
	assert.Equal(t, 0, resolver.calls, "no pricing query for an invalid region")
}

// A catalog miss fails before any pricing query is issued.
func TestEstimateCatalogMissBeforeResolve(t *testing.T) {
	resolver := &stubResolver{
		provider:  pricing.ProviderAWS,
		instances: pricing.NewInstanceTable(nil, []string{"us-east-1"}),
	}
	sparse := catalog.New(map[catalog.Tier]map[catalog.Class]decimal.Decimal{
		catalog.TierStandard: {catalog.ClassBatch: decimal.NewFromFloat(0.40)},
	})
	eng := New(stubSet{pricing.ProviderAWS: resolver}, sparse)

	req := validRequest() // standard/interactive is not in the sparse table
	_, err := eng.Estimate(context.Background(), req)
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeCatalog))
	assert.Equal(t, 0, resolver.calls)
}

func TestEstimateUnavailablePrice(t *testing.T) {
	eng, resolver := newTestEngine(pricing.Unavailable(pricing.ReasonQueryFailed, "connection reset"))

	estimate, err := eng.Estimate(context.Background(), validRequest())
	require.Error(t, err)
	assert.Nil(t, estimate)
	assert.True(t, errors.IsType(err, errors.TypePricing))
	assert.Contains(t, err.Error(), "query-failed")
	assert.Equal(t, 1, resolver.calls)
}

func TestEstimateInvalidBounds(t *testing.T) {
	eng, _ := newTestEngine(pricing.Resolved(pricing.Price{
		Hourly:   decimal.NewFromFloat(0.192),
		Currency: pricing.CurrencyUSD,
		Source:   pricing.SourceStatic,
	}))

	req := validRequest()
	req.Nodes = 0

	_, err := eng.Estimate(context.Background(), req)
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeInput))
}
