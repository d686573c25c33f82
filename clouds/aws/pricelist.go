package aws

import (
	"encoding/json"

	"github.com/shopspring/decimal"

	"compute-cost/internal/errors"
)

// Price List documents arrive as JSON strings inside the GetProducts
// response. Only the slice the resolver reads is modeled here: terms →
// OnDemand → priceDimensions → pricePerUnit.
type priceListing struct {
	Product struct {
		SKU        string            `json:"sku"`
		Attributes map[string]string `json:"attributes"`
	} `json:"product"`
	Terms struct {
		OnDemand map[string]priceTerm `json:"OnDemand"`
	} `json:"terms"`
}

type priceTerm struct {
	PriceDimensions map[string]priceDimension `json:"priceDimensions"`
}

type priceDimension struct {
	Unit         string            `json:"unit"`
	Description  string            `json:"description"`
	PricePerUnit map[string]string `json:"pricePerUnit"`
}

// onDemandUSD extracts the first on-demand dimension carrying a parseable
// USD price from one Price List document
func onDemandUSD(doc []byte) (decimal.Decimal, error) {
	var listing priceListing
	if err := json.Unmarshal(doc, &listing); err != nil {
		return decimal.Zero, errors.Parsing("malformed price listing", err)
	}

	for _, term := range listing.Terms.OnDemand {
		for _, dimension := range term.PriceDimensions {
			raw, ok := dimension.PricePerUnit["USD"]
			if !ok {
				continue
			}
			price, err := decimal.NewFromString(raw)
			if err != nil {
				continue
			}
			return price, nil
		}
	}

	return decimal.Zero, errors.New(errors.TypeParsing, "no on-demand USD price dimension")
}
