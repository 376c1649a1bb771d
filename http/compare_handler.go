package http

import (
	"net/http"

	"github.com/rs/zerolog"

	"loan-planner/domain"
	"loan-planner/repository"
	"loan-planner/service"
)

// CompareRequest references two previously generated plans by id, or carries
// them inline. Inline plans take precedence when both are present.
type CompareRequest struct {
	PlanAID string           `json:"plan_a_id,omitempty"`
	PlanBID string           `json:"plan_b_id,omitempty"`
	PlanA   *domain.LoanPlan `json:"plan_a,omitempty"`
	PlanB   *domain.LoanPlan `json:"plan_b,omitempty"`
}

// CompareHandler serves pairwise plan comparisons.
type CompareHandler struct {
	comparison *service.ComparisonService
	repo       repository.PlanRepository
	log        zerolog.Logger
}

func NewCompareHandler(comparison *service.ComparisonService, repo repository.PlanRepository, log zerolog.Logger) *CompareHandler {
	return &CompareHandler{comparison: comparison, repo: repo, log: log}
}

// Compare diffs two plans.
func (h *CompareHandler) Compare(w http.ResponseWriter, r *http.Request) {
	var req CompareRequest
	if !decodeJSON(w, r, &req, h.log) {
		return
	}

	planA, ok := h.resolvePlan(req.PlanA, req.PlanAID)
	if !ok {
		http.Error(w, domain.ErrPlanNotFound.Error(), http.StatusNotFound)
		return
	}
	planB, ok := h.resolvePlan(req.PlanB, req.PlanBID)
	if !ok {
		http.Error(w, domain.ErrPlanNotFound.Error(), http.StatusNotFound)
		return
	}

	result, err := h.comparison.Compare(planA, planB)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeJSON(w, result, h.log)
}

func (h *CompareHandler) resolvePlan(inline *domain.LoanPlan, id string) (domain.LoanPlan, bool) {
	if inline != nil {
		return *inline, true
	}
	if id == "" {
		return domain.LoanPlan{}, false
	}
	return h.repo.FindPlan(id)
}
