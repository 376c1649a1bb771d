package http

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/rs/zerolog"

	"loan-planner/domain"
	"loan-planner/repository"
	"loan-planner/service"
)

// defaultBestCount is how many diverse recommendations a request gets unless
// it asks for a different count.
const defaultBestCount = 2

// PlansRequest is the input for plan generation and ranking.
type PlansRequest struct {
	Profile    domain.FinancialProfile `json:"profile"`
	Category   string                  `json:"category"`
	CustomRate float64                 `json:"custom_rate,omitempty"`
	Count      int                     `json:"count,omitempty"`
}

// PlansResponse carries the full ranking plus the diversity-aware selection.
type PlansResponse struct {
	Category domain.LoanCategory `json:"category"`
	Plans    []domain.RankedPlan `json:"plans"`
	Best     []domain.LoanPlan   `json:"best"`
}

// PlansHandler serves plan generation, ranking and selection.
type PlansHandler struct {
	generator *service.PlanGeneratorService
	ranker    *service.PlanRankerService
	repo      repository.PlanRepository
	cache     repository.CacheRepository
	log       zerolog.Logger
}

func NewPlansHandler(
	generator *service.PlanGeneratorService,
	ranker *service.PlanRankerService,
	repo repository.PlanRepository,
	cache repository.CacheRepository,
	log zerolog.Logger,
) *PlansHandler {
	return &PlansHandler{generator: generator, ranker: ranker, repo: repo, cache: cache, log: log}
}

// GeneratePlans builds the candidate grid for the request, ranks it and
// selects the best subset. Responses are cached by request fingerprint; the
// pipeline is deterministic, so a cache hit is byte-identical to a recompute.
func (h *PlansHandler) GeneratePlans(w http.ResponseWriter, r *http.Request) {
	var req PlansRequest
	if !decodeJSON(w, r, &req, h.log) {
		return
	}

	if key, cached, ok := h.cachedResponse(req); ok {
		w.Header().Set("Content-Type", "application/json")
		if _, err := w.Write([]byte(cached)); err != nil {
			h.log.Debug().Err(err).Str("key", key).Msg("failed to write cached response")
		}
		return
	}

	category := domain.ParseLoanCategory(req.Category)

	plans, err := h.generator.GenerateLoanOptions(
		req.Profile.DesiredLoanAmount,
		category,
		req.Profile.MonthlyIncome,
		req.CustomRate,
	)
	if err != nil {
		h.log.Debug().Err(err).Msg("rejected plan request")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	ranked := h.ranker.RankPlans(plans)

	count := req.Count
	if count <= 0 {
		count = defaultBestCount
	}
	best := h.ranker.SelectBest(ranked, count)

	// Not critical if this fails; comparisons by id just won't find them.
	if err := h.repo.SavePlans(plans); err != nil {
		h.log.Warn().Err(err).Msg("failed to save generated plans")
	}

	resp := PlansResponse{Category: category, Plans: ranked, Best: best}
	h.storeResponse(req, resp)
	writeJSON(w, resp, h.log)
}

// fingerprint derives the cache key from every input that affects the output.
func fingerprint(req PlansRequest) string {
	p := req.Profile
	key := fmt.Sprintf("plans|%.2f|%.2f|%.2f|%.2f|%.2f|%.2f|%s|%.4f|%d",
		p.MonthlyIncome, p.OtherIncome, p.MonthlyExpenses, p.ExistingLoanPayments,
		p.Savings, p.DesiredLoanAmount, req.Category, req.CustomRate, req.Count)
	return fmt.Sprintf("%x", sha256.Sum256([]byte(key)))
}

func (h *PlansHandler) cachedResponse(req PlansRequest) (key, value string, ok bool) {
	key = fingerprint(req)
	value, ok = h.cache.Get(key)
	return key, value, ok
}

func (h *PlansHandler) storeResponse(req PlansRequest, resp PlansResponse) {
	body, err := json.Marshal(resp)
	if err != nil {
		h.log.Warn().Err(err).Msg("failed to marshal response for cache")
		return
	}
	if err := h.cache.Set(fingerprint(req), string(body)+"\n"); err != nil {
		h.log.Warn().Err(err).Msg("failed to cache plan response")
	}
}
