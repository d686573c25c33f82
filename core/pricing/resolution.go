package pricing

import (
	"github.com/shopspring/decimal"
)

// CurrencyUSD is the only currency prices are quoted in
const CurrencyUSD = "USD"

// Source records how a price was obtained
type Source string

const (
	// SourceStatic is a price read directly from a provider's static table
	SourceStatic Source = "static"

	// SourceSpotEstimate is a discounted approximation of a static reference
	// price, not a live market quote
	SourceSpotEstimate Source = "spot-estimate"

	// SourcePriceList is a price extracted from a remote Price List query
	SourcePriceList Source = "price-list"
)

// Price is a resolved hourly infrastructure price
type Price struct {
	// Hourly is the price per node-hour
	Hourly decimal.Decimal

	// Currency is always USD
	Currency string

	// Source records how the price was obtained
	Source Source
}

// UnavailableReason explains why a query produced no price
type UnavailableReason string

const (
	// ReasonUnknownInstance means the identifier is not in the provider's table
	ReasonUnknownInstance UnavailableReason = "unknown-instance"

	// ReasonQueryFailed means the remote pricing query returned an error
	ReasonQueryFailed UnavailableReason = "query-failed"

	// ReasonNoListing means the remote query matched no products
	ReasonNoListing UnavailableReason = "no-listing"

	// ReasonMalformedListing means the response could not be parsed to a price
	ReasonMalformedListing UnavailableReason = "malformed-listing"
)

// Resolution is the outcome of one price query: a resolved price or an
// explicit unavailable reason. The zero value is unavailable.
// Callers must go through Price() and check the second return; a missing
// price is never surfaced as zero.
type Resolution struct {
	price    Price
	resolved bool
	reason   UnavailableReason
	detail   string
}

// Resolved wraps a price in a successful resolution
func Resolved(price Price) Resolution {
	return Resolution{price: price, resolved: true}
}

// Unavailable builds an unavailable resolution with a reason and
// optional detail for the caller's presentation layer
func Unavailable(reason UnavailableReason, detail string) Resolution {
	return Resolution{reason: reason, detail: detail}
}

// Price returns the resolved price and whether one is present
func (r Resolution) Price() (Price, bool) {
	return r.price, r.resolved
}

// Reason returns the unavailable reason, empty for resolved outcomes
func (r Resolution) Reason() UnavailableReason {
	if r.resolved {
		return ""
	}
	return r.reason
}

// Detail returns supplementary failure detail, empty for resolved outcomes
func (r Resolution) Detail() string {
	if r.resolved {
		return ""
	}
	return r.detail
}
