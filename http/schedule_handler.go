package http

import (
	"net/http"

	"github.com/rs/zerolog"

	"loan-planner/domain"
	"loan-planner/service"
)

// ScheduleRequest is the input for an amortization schedule.
type ScheduleRequest struct {
	LoanAmount float64 `json:"loan_amount"`
	AnnualRate float64 `json:"annual_rate"`
	TermYears  int     `json:"term_years"`
	Interval   string  `json:"interval,omitempty"` // monthly, quarterly, yearly
}

// ScheduleResponse is the full schedule plus its aggregated summary.
type ScheduleResponse struct {
	Schedule domain.AmortizationSchedule `json:"schedule"`
	Summary  []domain.SchedulePoint      `json:"summary"`
}

// ScheduleHandler serves amortization schedules.
type ScheduleHandler struct {
	amortization *service.AmortizationService
	log          zerolog.Logger
}

func NewScheduleHandler(amortization *service.AmortizationService, log zerolog.Logger) *ScheduleHandler {
	return &ScheduleHandler{amortization: amortization, log: log}
}

// Schedule computes the period-by-period schedule and its summary.
func (h *ScheduleHandler) Schedule(w http.ResponseWriter, r *http.Request) {
	var req ScheduleRequest
	if !decodeJSON(w, r, &req, h.log) {
		return
	}

	schedule, err := h.amortization.Schedule(req.LoanAmount, req.AnnualRate, req.TermYears)
	if err != nil {
		h.log.Debug().Err(err).Msg("rejected schedule request")
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	interval := domain.SummaryInterval(req.Interval)
	if req.Interval == "" {
		interval = domain.IntervalYearly
	}

	summary, err := h.amortization.Summary(schedule, interval)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	writeJSON(w, ScheduleResponse{Schedule: schedule, Summary: summary}, h.log)
}
