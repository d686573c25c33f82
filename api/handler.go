package api

import (
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"

	"compute-cost/core/catalog"
	"compute-cost/core/engine"
	"compute-cost/core/pricing"
	"compute-cost/internal/errors"
	"compute-cost/internal/logging"
)

// handleEstimate handles POST /estimate
func (s *Server) handleEstimate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	start := time.Now()
	requestID := generateRequestID()

	var req EstimateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, "INVALID_JSON", err.Error(), http.StatusBadRequest)
		return
	}

	engineReq, err := toEngineRequest(&req)
	if err != nil {
		s.writeError(w, "VALIDATION_ERROR", err.Error(), http.StatusBadRequest)
		return
	}

	estimate, err := s.engine.Estimate(ctx, engineReq)
	if err != nil {
		status, code := statusForError(err)
		logging.Warn("estimate failed",
			zap.String("request_id", requestID),
			zap.String("provider", req.Provider),
			zap.String("instance_type", req.InstanceType),
			zap.Error(err))
		s.writeError(w, code, err.Error(), status)
		return
	}

	resp := NewEstimateResponse(estimate)
	resp.Metadata = &ResponseMetadata{
		RequestID:  requestID,
		InputHash:  computeInputHash(&req),
		Version:    s.version,
		DurationMs: time.Since(start).Milliseconds(),
	}

	logging.Info("estimate served",
		zap.String("request_id", requestID),
		zap.String("provider", req.Provider),
		zap.String("instance_type", req.InstanceType),
		zap.String("total", resp.TotalMonthlyCost.Amount))
	s.writeJSON(w, resp, http.StatusOK)
}

// handleCatalog handles GET /catalog
func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	resp := CatalogResponse{}

	resolvers := s.engine.Resolvers()
	for _, provider := range resolvers.Providers() {
		resolver, ok := resolvers.Resolver(provider)
		if !ok {
			continue
		}
		instances := resolver.Instances()
		resp.Providers = append(resp.Providers, ProviderInfo{
			Name:          string(provider),
			InstanceTypes: instances.InstanceTypes(),
			Regions:       instances.Regions(),
		})
	}

	rates := s.engine.Rates()
	for _, tier := range rates.Tiers() {
		classes, err := rates.Classes(tier)
		if err != nil {
			continue
		}
		info := TierInfo{Name: string(tier)}
		for _, class := range classes {
			rate, err := rates.Rate(tier, class)
			if err != nil {
				continue
			}
			info.Classes = append(info.Classes, ClassRate{
				Name:      string(class),
				UsageRate: usd(rate.String()),
			})
		}
		resp.Tiers = append(resp.Tiers, info)
	}

	s.writeJSON(w, resp, http.StatusOK)
}

// toEngineRequest parses the enum fields.
// Numeric bounds stay the calculator's check; violations come back typed.
func toEngineRequest(req *EstimateRequest) (engine.Request, error) {
	provider, err := pricing.ParseProvider(req.Provider)
	if err != nil {
		return engine.Request{}, err
	}
	tier, err := catalog.ParseTier(req.Tier)
	if err != nil {
		return engine.Request{}, err
	}
	class, err := catalog.ParseClass(req.WorkloadClass)
	if err != nil {
		return engine.Request{}, err
	}

	return engine.Request{
		Provider:         provider,
		InstanceType:     req.InstanceType,
		Region:           req.Region,
		Spot:             req.Spot,
		Tier:             tier,
		Class:            class,
		Nodes:            req.Nodes,
		HoursPerRun:      req.HoursPerRun,
		UnitsPerNodeHour: req.UnitsPerNodeHour,
		RunsPerDay:       req.RunsPerDay,
		DaysPerMonth:     req.DaysPerMonth,
	}, nil
}

// NewEstimateResponse converts an engine estimate into the wire shape.
// The CLI reuses it for --format json so both surfaces emit the same document.
func NewEstimateResponse(estimate *engine.Estimate) *EstimateResponse {
	req := estimate.Request
	resp := &EstimateResponse{
		Provider:         string(req.Provider),
		InstanceType:     req.InstanceType,
		Region:           req.Region,
		Spot:             req.Spot,
		Tier:             string(req.Tier),
		WorkloadClass:    string(req.Class),
		UsageRate:        usd(estimate.UsageRate.String()),
		HourlyPrice:      usd(estimate.Price.Hourly.StringFixed(4)),
		PriceSource:      string(estimate.Price.Source),
		InstanceCost:     usd(estimate.Breakdown.InstanceCost.String()),
		UsageCost:        usd(estimate.Breakdown.UsageCost.String()),
		MonthlyRuns:      estimate.Breakdown.MonthlyRuns,
		TotalMonthlyCost: usd(estimate.Breakdown.Total.StringFixed(2)),
	}
	for _, point := range estimate.Projection {
		resp.Projection = append(resp.Projection, ProjectionPoint{
			Month:      point.Month,
			Cumulative: usd(point.Cumulative.StringFixed(2)),
		})
	}
	return resp
}

func usd(amount string) CostValue {
	return CostValue{Amount: amount, Currency: pricing.CurrencyUSD}
}

// statusForError maps the typed taxonomy onto HTTP statuses.
// An unavailable price is an upstream condition, not a caller mistake.
func statusForError(err error) (int, string) {
	switch errors.TypeOf(err) {
	case errors.TypeInput, errors.TypeParsing, errors.TypeCatalog, errors.TypeNotSupported:
		return http.StatusBadRequest, "VALIDATION_ERROR"
	case errors.TypePricing:
		return http.StatusBadGateway, "PRICE_UNAVAILABLE"
	default:
		return http.StatusInternalServerError, "INTERNAL_ERROR"
	}
}
