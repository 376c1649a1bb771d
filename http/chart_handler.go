package http

import (
	"fmt"
	"net/http"

	"github.com/rs/zerolog"

	"loan-planner/domain"
	"loan-planner/repository"
	"loan-planner/service"
)

// ChartRequest selects a chart kind and carries its inputs. Schedule-shaped
// kinds take loan parameters; "comparison" and "multi_balance" take plan ids
// of previously generated plans.
type ChartRequest struct {
	Kind       string   `json:"kind"` // amortization, balance, cumulative_interest, breakdown, comparison, multi_balance
	LoanAmount float64  `json:"loan_amount,omitempty"`
	AnnualRate float64  `json:"annual_rate,omitempty"`
	TermYears  int      `json:"term_years,omitempty"`
	Interval   string   `json:"interval,omitempty"`
	Period     int      `json:"period,omitempty"`
	PlanIDs    []string `json:"plan_ids,omitempty"`
}

// ChartHandler reshapes engine output into renderer-ready labeled series.
type ChartHandler struct {
	charts       *service.ChartService
	amortization *service.AmortizationService
	repo         repository.PlanRepository
	log          zerolog.Logger
}

func NewChartHandler(
	charts *service.ChartService,
	amortization *service.AmortizationService,
	repo repository.PlanRepository,
	log zerolog.Logger,
) *ChartHandler {
	return &ChartHandler{charts: charts, amortization: amortization, repo: repo, log: log}
}

// Chart builds the requested chart.
func (h *ChartHandler) Chart(w http.ResponseWriter, r *http.Request) {
	var req ChartRequest
	if !decodeJSON(w, r, &req, h.log) {
		return
	}

	interval := domain.SummaryInterval(req.Interval)
	if req.Interval == "" {
		interval = domain.IntervalYearly
	}

	data, err := h.buildChart(req, interval)
	if err != nil {
		h.log.Debug().Err(err).Str("kind", req.Kind).Msg("rejected chart request")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeJSON(w, data, h.log)
}

func (h *ChartHandler) buildChart(req ChartRequest, interval domain.SummaryInterval) (domain.ChartData, error) {
	switch req.Kind {
	case "comparison":
		plans, err := h.lookupPlans(req.PlanIDs)
		if err != nil {
			return domain.ChartData{}, err
		}
		return h.charts.ComparisonChart(plans)

	case "multi_balance":
		plans, err := h.lookupPlans(req.PlanIDs)
		if err != nil {
			return domain.ChartData{}, err
		}
		schedules := make(map[string]domain.AmortizationSchedule, len(plans))
		for _, plan := range plans {
			schedule, err := h.amortization.Schedule(plan.Amount, plan.InterestRate, plan.TermYears)
			if err != nil {
				return domain.ChartData{}, err
			}
			schedules[plan.ID] = schedule
		}
		return h.charts.MultiPlanBalanceChart(plans, schedules, interval)
	}

	schedule, err := h.amortization.Schedule(req.LoanAmount, req.AnnualRate, req.TermYears)
	if err != nil {
		return domain.ChartData{}, err
	}

	switch req.Kind {
	case "amortization":
		return h.charts.AmortizationChart(schedule, interval)
	case "balance":
		return h.charts.BalanceChart(schedule, interval)
	case "cumulative_interest":
		return h.charts.CumulativeInterestChart(schedule, interval)
	case "breakdown":
		period := req.Period
		if period == 0 {
			period = 1
		}
		return h.charts.PaymentBreakdownChart(schedule, period)
	default:
		return domain.ChartData{}, fmt.Errorf("unknown chart kind %q", req.Kind)
	}
}

func (h *ChartHandler) lookupPlans(ids []string) ([]domain.LoanPlan, error) {
	plans := make([]domain.LoanPlan, 0, len(ids))
	for _, id := range ids {
		plan, ok := h.repo.FindPlan(id)
		if !ok {
			return nil, domain.ErrPlanNotFound
		}
		plans = append(plans, plan)
	}
	if len(plans) == 0 {
		return nil, domain.ErrPlanNotFound
	}
	return plans, nil
}
