package http

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loan-planner/domain"
	"loan-planner/repository"
	"loan-planner/service"
)

func newChartHandler(repo repository.PlanRepository) *ChartHandler {
	metrics := service.NewMetricsService()
	amortization := service.NewAmortizationService(metrics)
	charts := service.NewChartService(amortization)
	return NewChartHandler(charts, amortization, repo, zerolog.Nop())
}

func TestChartHandler_ScheduleShapedKinds(t *testing.T) {
	h := newChartHandler(repository.NewPlanRepositoryMemory())

	for _, kind := range []string{"amortization", "balance", "cumulative_interest", "breakdown"} {
		rec := postJSON(t, h.Chart, ChartRequest{
			Kind:       kind,
			LoanAmount: 50000,
			AnnualRate: 0.05,
			TermYears:  10,
		})
		require.Equal(t, http.StatusOK, rec.Code, "kind %s", kind)

		var data domain.ChartData
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &data))
		require.NotEmpty(t, data.Labels, "kind %s", kind)
		for _, ds := range data.Datasets {
			assert.Len(t, ds.Data, len(data.Labels), "kind %s dataset %q", kind, ds.Label)
		}
	}
}

func TestChartHandler_ComparisonByIDs(t *testing.T) {
	repo := repository.NewPlanRepositoryMemory()
	require.NoError(t, repo.SavePlans([]domain.LoanPlan{
		{ID: "a", Name: "A", Amount: 50000, InterestRate: 0.05, TermYears: 10, MonthlyPayment: 530, TotalInterest: 13600, TotalCost: 63600},
		{ID: "b", Name: "B", Amount: 50000, InterestRate: 0.05, TermYears: 20, MonthlyPayment: 330, TotalInterest: 29200, TotalCost: 79200},
	}))
	h := newChartHandler(repo)

	rec := postJSON(t, h.Chart, ChartRequest{Kind: "comparison", PlanIDs: []string{"a", "b"}})
	require.Equal(t, http.StatusOK, rec.Code)

	var data domain.ChartData
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &data))
	assert.Equal(t, []string{"A", "B"}, data.Labels)
	assert.Equal(t, "bar", data.ChartType)
}

func TestChartHandler_MultiBalanceByIDs(t *testing.T) {
	repo := repository.NewPlanRepositoryMemory()
	require.NoError(t, repo.SavePlans([]domain.LoanPlan{
		{ID: "a", Name: "A", Amount: 50000, InterestRate: 0.05, TermYears: 5},
		{ID: "b", Name: "B", Amount: 50000, InterestRate: 0.05, TermYears: 10},
	}))
	h := newChartHandler(repo)

	rec := postJSON(t, h.Chart, ChartRequest{Kind: "multi_balance", PlanIDs: []string{"a", "b"}})
	require.Equal(t, http.StatusOK, rec.Code)

	var data domain.ChartData
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &data))
	assert.Len(t, data.Labels, 10)
	require.Len(t, data.Datasets, 2)
	for _, ds := range data.Datasets {
		assert.Len(t, ds.Data, len(data.Labels))
	}
}

func TestChartHandler_UnknownPlanID(t *testing.T) {
	h := newChartHandler(repository.NewPlanRepositoryMemory())

	rec := postJSON(t, h.Chart, ChartRequest{Kind: "comparison", PlanIDs: []string{"missing"}})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestChartHandler_UnknownKind(t *testing.T) {
	h := newChartHandler(repository.NewPlanRepositoryMemory())

	rec := postJSON(t, h.Chart, ChartRequest{
		Kind:       "sparkline",
		LoanAmount: 50000,
		AnnualRate: 0.05,
		TermYears:  10,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
