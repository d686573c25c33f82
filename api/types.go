// Package api - HTTP surface for cost estimation.
// The API only ingests input, calls the engine, and serializes output.
// It never performs cost logic.
package api

// EstimateRequest is the input to POST /estimate
type EstimateRequest struct {
	Provider         string  `json:"provider"`
	InstanceType     string  `json:"instance_type"`
	Region           string  `json:"region"`
	Spot             bool    `json:"spot"`
	Tier             string  `json:"tier"`
	WorkloadClass    string  `json:"workload_class"`
	Nodes            int     `json:"nodes"`
	HoursPerRun      float64 `json:"hours_per_run"`
	UnitsPerNodeHour float64 `json:"units_per_node_hour"`
	RunsPerDay       int     `json:"runs_per_day"`
	DaysPerMonth     int     `json:"days_per_month"`
}

// CostValue carries money as a decimal string for precision
type CostValue struct {
	Amount   string `json:"amount"`
	Currency string `json:"currency"`
}

// ProjectionPoint is one month of the cumulative series
type ProjectionPoint struct {
	Month      int       `json:"month"`
	Cumulative CostValue `json:"cumulative"`
}

// EstimateResponse is the output of POST /estimate
type EstimateResponse struct {
	Provider      string `json:"provider"`
	InstanceType  string `json:"instance_type"`
	Region        string `json:"region"`
	Spot          bool   `json:"spot"`
	Tier          string `json:"tier"`
	WorkloadClass string `json:"workload_class"`

	// UsageRate is the catalog rate per usage-unit
	UsageRate CostValue `json:"usage_rate"`

	// HourlyPrice carries 4 decimal places
	HourlyPrice CostValue `json:"hourly_price"`

	// PriceSource records how the price was obtained
	PriceSource string `json:"price_source"`

	// InstanceCost and UsageCost are the exact unrounded terms
	InstanceCost CostValue `json:"instance_cost"`
	UsageCost    CostValue `json:"usage_cost"`

	MonthlyRuns int `json:"monthly_runs"`

	// TotalMonthlyCost carries 2 decimal places, rounded once on the sum
	TotalMonthlyCost CostValue `json:"total_monthly_cost"`

	// Projection is the 12-month cumulative series
	Projection []ProjectionPoint `json:"projection"`

	Metadata *ResponseMetadata `json:"metadata,omitempty"`
}

// ResponseMetadata traces one request
type ResponseMetadata struct {
	RequestID  string `json:"request_id"`
	InputHash  string `json:"input_hash"`
	Version    string `json:"version"`
	DurationMs int64  `json:"duration_ms"`
}

// CatalogResponse is the output of GET /catalog.
// It lists every valid selection so callers can restrict choices before
// building an estimate request.
type CatalogResponse struct {
	Providers []ProviderInfo `json:"providers"`
	Tiers     []TierInfo     `json:"tiers"`
}

// ProviderInfo lists one provider's closed instance and region sets
type ProviderInfo struct {
	Name          string   `json:"name"`
	InstanceTypes []string `json:"instance_types"`
	Regions       []string `json:"regions"`
}

// TierInfo lists the classes priced under one tier
type TierInfo struct {
	Name    string      `json:"name"`
	Classes []ClassRate `json:"classes"`
}

// ClassRate is one class with its usage rate
type ClassRate struct {
	Name      string    `json:"name"`
	UsageRate CostValue `json:"usage_rate"`
}
