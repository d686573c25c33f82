package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"compute-cost/internal/errors"
)

func TestResolvedResolution(t *testing.T) {
	price := Price{
		Hourly:   decimal.NewFromFloat(0.192),
		Currency: CurrencyUSD,
		Source:   SourcePriceList,
	}
	res := Resolved(price)

	got, ok := res.Price()
	require.True(t, ok)
	assert.True(t, got.Hourly.Equal(price.Hourly))
	assert.Equal(t, CurrencyUSD, got.Currency)
	assert.Equal(t, SourcePriceList, got.Source)
	assert.Empty(t, res.Reason())
	assert.Empty(t, res.Detail())
}

func TestUnavailableResolution(t *testing.T) {
	res := Unavailable(ReasonNoListing, "no products matched")

	_, ok := res.Price()
	assert.False(t, ok)
	assert.Equal(t, ReasonNoListing, res.Reason())
	assert.Equal(t, "no products matched", res.Detail())
}

// The zero value must read as unavailable, never as a free price.
func TestZeroResolutionIsUnavailable(t *testing.T) {
	var res Resolution

	price, ok := res.Price()
	assert.False(t, ok)
	assert.True(t, price.Hourly.IsZero())
}

func TestParseProvider(t *testing.T) {
	tests := []struct {
		in      string
		want    Provider
		wantErr bool
	}{
		{"aws", ProviderAWS, false},
		{"gcp", ProviderGCP, false},
		{"azure", "", true},
		{"AWS", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		t.Run("input "+tt.in, func(t *testing.T) {
			got, err := ParseProvider(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsType(err, errors.TypeNotSupported))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
