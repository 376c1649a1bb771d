package http

import (
	"net/http"

	"github.com/rs/zerolog"

	"loan-planner/domain"
	"loan-planner/service"
)

// AnalyzeHandler serves the affordability analysis endpoint.
type AnalyzeHandler struct {
	metrics       *service.MetricsService
	affordability *service.AffordabilityService
	log           zerolog.Logger
}

func NewAnalyzeHandler(
	metrics *service.MetricsService,
	affordability *service.AffordabilityService,
	log zerolog.Logger,
) *AnalyzeHandler {
	return &AnalyzeHandler{metrics: metrics, affordability: affordability, log: log}
}

// Analyze computes financial metrics for a profile and classifies the risk
// tier.
func (h *AnalyzeHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	var profile domain.FinancialProfile
	if !decodeJSON(w, r, &profile, h.log) {
		return
	}

	metrics, err := h.metrics.FinancialMetrics(profile)
	if err != nil {
		h.log.Debug().Err(err).Msg("rejected profile")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	report := h.affordability.Analyze(profile, metrics)
	writeJSON(w, report, h.log)
}
