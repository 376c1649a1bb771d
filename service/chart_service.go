package service

import (
	"fmt"

	"loan-planner/domain"
)

// Color hints passed through to external renderers. The engine imposes no
// rendering semantics on them.
const (
	colorPrincipal = "#2E86AB"
	colorInterest  = "#A23B72"
	colorBalance   = "#F18F01"
	colorPlanA     = "#06A77D"
	colorPlanB     = "#D4AF37"
	colorTotalCost = "#C73E1D"
	colorMonthly   = "#6C757D"
)

// ChartService reshapes plans and schedules into the generic labeled-series
// structure consumed by external renderers. Every dataset it emits has
// exactly as many points as the chart has labels.
type ChartService struct {
	amortization *AmortizationService
}

// NewChartService creates a new ChartService.
func NewChartService(amortization *AmortizationService) *ChartService {
	return &ChartService{amortization: amortization}
}

// AmortizationChart shows principal vs interest paid per bucket over the life
// of the loan.
func (s *ChartService) AmortizationChart(schedule domain.AmortizationSchedule, interval domain.SummaryInterval) (domain.ChartData, error) {
	summary, err := s.amortization.Summary(schedule, interval)
	if err != nil {
		return domain.ChartData{}, err
	}

	labels := make([]string, len(summary))
	principal := make([]float64, len(summary))
	interest := make([]float64, len(summary))
	for i, point := range summary {
		labels[i] = point.Label
		principal[i] = point.PrincipalPaid
		interest[i] = point.InterestPaid
	}

	return domain.ChartData{
		Title:  "Loan Amortization Over Time",
		Labels: labels,
		Datasets: []domain.Dataset{
			{Label: "Principal", Data: principal, ColorHint: colorPrincipal},
			{Label: "Interest", Data: interest, ColorHint: colorInterest},
		},
		ChartType: "area",
		XLabel:    "Period",
		YLabel:    "Amount",
	}, nil
}

// BalanceChart shows the remaining balance per bucket.
func (s *ChartService) BalanceChart(schedule domain.AmortizationSchedule, interval domain.SummaryInterval) (domain.ChartData, error) {
	summary, err := s.amortization.Summary(schedule, interval)
	if err != nil {
		return domain.ChartData{}, err
	}

	labels := make([]string, len(summary))
	balance := make([]float64, len(summary))
	for i, point := range summary {
		labels[i] = point.Label
		balance[i] = point.RemainingBalance
	}

	return domain.ChartData{
		Title:  "Remaining Balance Over Time",
		Labels: labels,
		Datasets: []domain.Dataset{
			{Label: "Balance", Data: balance, ColorHint: colorBalance},
		},
		ChartType: "line",
		XLabel:    "Period",
		YLabel:    "Balance",
	}, nil
}

// CumulativeInterestChart shows the running interest total per bucket.
func (s *ChartService) CumulativeInterestChart(schedule domain.AmortizationSchedule, interval domain.SummaryInterval) (domain.ChartData, error) {
	summary, err := s.amortization.Summary(schedule, interval)
	if err != nil {
		return domain.ChartData{}, err
	}

	labels := make([]string, len(summary))
	cumulative := make([]float64, len(summary))
	for i, point := range summary {
		labels[i] = point.Label
		cumulative[i] = point.CumulativeInterest
	}

	return domain.ChartData{
		Title:  "Cumulative Interest Over Time",
		Labels: labels,
		Datasets: []domain.Dataset{
			{Label: "Cumulative Interest", Data: cumulative, ColorHint: colorInterest},
		},
		ChartType: "area",
		XLabel:    "Period",
		YLabel:    "Total Interest",
	}, nil
}

// PaymentBreakdownChart shows the principal/interest split of one payment.
func (s *ChartService) PaymentBreakdownChart(schedule domain.AmortizationSchedule, period int) (domain.ChartData, error) {
	breakdown, err := s.amortization.Breakdown(schedule, period)
	if err != nil {
		return domain.ChartData{}, err
	}

	return domain.ChartData{
		Title:  fmt.Sprintf("Payment Breakdown - Payment %d", breakdown.Period),
		Labels: []string{"Principal", "Interest"},
		Datasets: []domain.Dataset{
			{Label: "Payment Breakdown", Data: []float64{breakdown.Principal, breakdown.Interest}},
		},
		ChartType: "pie",
	}, nil
}

// ComparisonChart puts the selected plans side by side on monthly payment,
// total interest and total cost.
func (s *ChartService) ComparisonChart(plans []domain.LoanPlan) (domain.ChartData, error) {
	if len(plans) == 0 {
		return domain.ChartData{}, domain.ErrPlanNotFound
	}

	labels := make([]string, len(plans))
	payments := make([]float64, len(plans))
	interest := make([]float64, len(plans))
	costs := make([]float64, len(plans))
	for i, plan := range plans {
		labels[i] = plan.Name
		payments[i] = plan.MonthlyPayment
		interest[i] = plan.TotalInterest
		costs[i] = plan.TotalCost
	}

	return domain.ChartData{
		Title:  "Loan Plan Comparison",
		Labels: labels,
		Datasets: []domain.Dataset{
			{Label: "Monthly Payment", Data: payments, ColorHint: colorMonthly},
			{Label: "Total Interest", Data: interest, ColorHint: colorInterest},
			{Label: "Total Cost", Data: costs, ColorHint: colorTotalCost},
		},
		ChartType: "bar",
		XLabel:    "Plan",
		YLabel:    "Amount",
	}, nil
}

// MultiPlanBalanceChart overlays the remaining balance of several plans'
// schedules. Shorter schedules are padded with zeros so every dataset matches
// the label count; a paid-off loan's balance is legitimately zero.
func (s *ChartService) MultiPlanBalanceChart(
	plans []domain.LoanPlan,
	schedules map[string]domain.AmortizationSchedule,
	interval domain.SummaryInterval,
) (domain.ChartData, error) {
	if len(plans) == 0 || len(schedules) == 0 {
		return domain.ChartData{}, domain.ErrPlanNotFound
	}

	colors := []string{colorPlanA, colorPlanB, colorBalance}
	var datasets []domain.Dataset
	maxLen := 0

	for i, plan := range plans {
		schedule, ok := schedules[plan.ID]
		if !ok {
			continue
		}
		summary, err := s.amortization.Summary(schedule, interval)
		if err != nil {
			return domain.ChartData{}, err
		}

		data := make([]float64, len(summary))
		for j, point := range summary {
			data[j] = point.RemainingBalance
		}
		if len(data) > maxLen {
			maxLen = len(data)
		}

		datasets = append(datasets, domain.Dataset{
			Label:     plan.Name,
			Data:      data,
			ColorHint: colors[i%len(colors)],
		})
	}
	if len(datasets) == 0 {
		return domain.ChartData{}, domain.ErrPlanNotFound
	}

	for i := range datasets {
		for len(datasets[i].Data) < maxLen {
			datasets[i].Data = append(datasets[i].Data, 0)
		}
	}

	labels := make([]string, maxLen)
	for i := range labels {
		labels[i] = sequentialLabel(interval, i+1)
	}

	return domain.ChartData{
		Title:     "Balance Comparison Across Plans",
		Labels:    labels,
		Datasets:  datasets,
		ChartType: "line",
		XLabel:    "Period",
		YLabel:    "Balance",
	}, nil
}

func sequentialLabel(interval domain.SummaryInterval, n int) string {
	switch interval {
	case domain.IntervalMonthly:
		return fmt.Sprintf("Month %d", n)
	case domain.IntervalQuarterly:
		return fmt.Sprintf("Q%d", n)
	default:
		return fmt.Sprintf("Year %d", n)
	}
}
