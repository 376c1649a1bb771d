package service

import (
	"fmt"

	"loan-planner/domain"
)

// AmortizationService produces full period-by-period payment schedules and
// aggregated summaries over them.
type AmortizationService struct {
	metrics *MetricsService
}

// NewAmortizationService creates a new AmortizationService.
func NewAmortizationService(metrics *MetricsService) *AmortizationService {
	return &AmortizationService{metrics: metrics}
}

// Schedule computes the complete month-by-month amortization schedule for a
// loan. Numerical drift is folded into the final period so the remaining
// balance lands at exactly 0.
func (s *AmortizationService) Schedule(loanAmount, annualRate float64, termYears int) (domain.AmortizationSchedule, error) {
	if loanAmount <= 0 {
		return domain.AmortizationSchedule{}, domain.ErrInvalidAmount
	}

	payment, err := s.metrics.MonthlyPayment(loanAmount, annualRate, termYears)
	if err != nil {
		return domain.AmortizationSchedule{}, err
	}

	monthlyRate := annualRate / 12
	termMonths := termYears * 12

	periods := make([]domain.PaymentPeriod, 0, termMonths)
	balance := loanAmount
	cumulativeInterest := 0.0

	for month := 1; month <= termMonths; month++ {
		interest := balance * monthlyRate
		principal := payment - interest
		cumulativeInterest += interest
		balance -= principal

		// Fold the rounding residue into the last principal component.
		if month == termMonths {
			principal += balance
			balance = 0
		}
		if balance < 0 {
			balance = 0
		}

		periods = append(periods, domain.PaymentPeriod{
			Period:             month,
			Payment:            payment,
			Principal:          principal,
			Interest:           interest,
			RemainingBalance:   balance,
			CumulativeInterest: cumulativeInterest,
		})
	}

	totalPayments := payment * float64(termMonths)

	return domain.AmortizationSchedule{
		LoanAmount:     loanAmount,
		InterestRate:   annualRate,
		TermMonths:     termMonths,
		MonthlyPayment: payment,
		Periods:        periods,
		TotalInterest:  totalPayments - loanAmount,
		TotalPayments:  totalPayments,
	}, nil
}

// Summary aggregates a schedule into fixed-size buckets of 1, 3 or 12 months.
// Principal and interest are summed per bucket; balance and cumulative
// interest come from the bucket's final period.
func (s *AmortizationService) Summary(schedule domain.AmortizationSchedule, interval domain.SummaryInterval) ([]domain.SchedulePoint, error) {
	var groupSize int
	switch interval {
	case domain.IntervalMonthly:
		groupSize = 1
	case domain.IntervalQuarterly:
		groupSize = 3
	case domain.IntervalYearly:
		groupSize = 12
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidInterval, interval)
	}

	points := make([]domain.SchedulePoint, 0, (len(schedule.Periods)+groupSize-1)/groupSize)

	for i := 0; i < len(schedule.Periods); i += groupSize {
		end := i + groupSize
		if end > len(schedule.Periods) {
			end = len(schedule.Periods)
		}
		group := schedule.Periods[i:end]
		last := group[len(group)-1]

		principalPaid := 0.0
		interestPaid := 0.0
		for _, p := range group {
			principalPaid += p.Principal
			interestPaid += p.Interest
		}

		points = append(points, domain.SchedulePoint{
			Label:              bucketLabel(interval, last.Period),
			PeriodEnd:          last.Period,
			PrincipalPaid:      principalPaid,
			InterestPaid:       interestPaid,
			RemainingBalance:   last.RemainingBalance,
			CumulativeInterest: last.CumulativeInterest,
		})
	}

	return points, nil
}

// Breakdown returns the principal/interest split of a single payment with
// each component as a percentage of the payment.
func (s *AmortizationService) Breakdown(schedule domain.AmortizationSchedule, period int) (domain.PaymentBreakdown, error) {
	if period < 1 || period > len(schedule.Periods) {
		return domain.PaymentBreakdown{}, fmt.Errorf("%w: %d", domain.ErrInvalidPeriod, period)
	}

	p := schedule.Periods[period-1]
	breakdown := domain.PaymentBreakdown{
		Period:           p.Period,
		Payment:          p.Payment,
		Principal:        p.Principal,
		Interest:         p.Interest,
		RemainingBalance: p.RemainingBalance,
	}
	if p.Payment > 0 {
		breakdown.PrincipalPercentage = p.Principal / p.Payment * 100
		breakdown.InterestPercentage = p.Interest / p.Payment * 100
	}
	return breakdown, nil
}

func bucketLabel(interval domain.SummaryInterval, periodEnd int) string {
	switch interval {
	case domain.IntervalMonthly:
		return fmt.Sprintf("Month %d", periodEnd)
	case domain.IntervalQuarterly:
		return fmt.Sprintf("Q%d", (periodEnd-1)/3+1)
	default:
		return fmt.Sprintf("Year %d", (periodEnd-1)/12+1)
	}
}
