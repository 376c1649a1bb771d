package service

import (
	"fmt"
	"math"

	"loan-planner/domain"
)

// roundTo2Decimals rounds a float64 to 2 decimals.
func roundTo2Decimals(value float64) float64 {
	return math.Round(value*100) / 100
}

// MetricsService provides the pure loan arithmetic the rest of the engine is
// built on: the fixed-rate payment formula and profile aggregation.
type MetricsService struct{}

// NewMetricsService creates a new MetricsService.
func NewMetricsService() *MetricsService {
	return &MetricsService{}
}

// MonthlyPayment computes the fixed monthly payment for a loan using the
// standard amortization formula P*[r(1+r)^n]/[(1+r)^n-1]. The formula is
// undefined at r=0, where the payment degrades to an even principal split.
//
// The result is not rounded; callers round at presentation boundaries.
func (s *MetricsService) MonthlyPayment(principal, annualRate float64, years int) (float64, error) {
	if principal < 0 {
		return 0, fmt.Errorf("principal: %w", domain.ErrNegativeAmount)
	}
	if years <= 0 {
		return 0, domain.ErrInvalidTerm
	}
	if years > MaxTermYears {
		return 0, fmt.Errorf("term exceeds the maximum of %d years", MaxTermYears)
	}
	if annualRate < 0 {
		return 0, domain.ErrInvalidRate
	}
	if annualRate > MaxInterestRate {
		return 0, fmt.Errorf("rate exceeds the maximum of %.0f%%", MaxInterestRate*100)
	}

	n := float64(years * 12)
	if principal == 0 {
		return 0, nil
	}
	if annualRate == 0 {
		return principal / n, nil
	}

	monthlyRate := annualRate / 12
	factor := math.Pow(1+monthlyRate, n)
	return principal * (monthlyRate * factor) / (factor - 1), nil
}

// FinancialMetrics derives the first-pass affordability numbers from a
// profile. The estimated payment uses the fixed benchmark rate and term, not
// the per-category tables; the payment ratio is 0 when monthly income is
// absent.
func (s *MetricsService) FinancialMetrics(profile domain.FinancialProfile) (domain.FinancialMetrics, error) {
	if err := validateProfile(profile); err != nil {
		return domain.FinancialMetrics{}, err
	}

	totalIncome := profile.MonthlyIncome + profile.OtherIncome
	totalExpenses := profile.MonthlyExpenses + profile.ExistingLoanPayments

	estimatedPayment, err := s.MonthlyPayment(profile.DesiredLoanAmount, BenchmarkRate, BenchmarkTermYears)
	if err != nil {
		return domain.FinancialMetrics{}, fmt.Errorf("benchmark payment: %w", err)
	}

	return domain.FinancialMetrics{
		TotalIncome:      totalIncome,
		TotalExpenses:    totalExpenses,
		DisposableIncome: totalIncome - totalExpenses,
		EstimatedPayment: estimatedPayment,
		PaymentRatio:     paymentRatio(estimatedPayment, profile.MonthlyIncome),
	}, nil
}

// paymentRatio is the payment as a percentage of monthly income, or 0 when
// income is absent.
func paymentRatio(payment, income float64) float64 {
	if income <= 0 {
		return 0
	}
	return payment / income * 100
}

func validateProfile(p domain.FinancialProfile) error {
	fields := []struct {
		name  string
		value float64
	}{
		{"monthly_income", p.MonthlyIncome},
		{"other_income", p.OtherIncome},
		{"monthly_expenses", p.MonthlyExpenses},
		{"existing_loan_payments", p.ExistingLoanPayments},
		{"savings", p.Savings},
		{"desired_loan_amount", p.DesiredLoanAmount},
	}
	for _, f := range fields {
		if f.value < 0 {
			return fmt.Errorf("%s: %w", f.name, domain.ErrNegativeAmount)
		}
	}
	return nil
}
