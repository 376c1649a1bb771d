package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loan-planner/domain"
)

func TestMonthlyPayment_WithInterest(t *testing.T) {
	s := NewMetricsService()

	// 10,000 at 5% over 5 years is the documented benchmark case.
	payment, err := s.MonthlyPayment(10000, 0.05, 5)

	require.NoError(t, err)
	assert.InDelta(t, 188.71, payment, 0.01)
}

func TestMonthlyPayment_ZeroRateIsEvenSplit(t *testing.T) {
	s := NewMetricsService()

	cases := []struct {
		principal float64
		years     int
	}{
		{1200, 1},
		{10000, 5},
		{250000, 30},
	}

	for _, tc := range cases {
		payment, err := s.MonthlyPayment(tc.principal, 0, tc.years)
		require.NoError(t, err)
		assert.InDelta(t, tc.principal/float64(tc.years*12), payment, 1e-9)
	}
}

func TestMonthlyPayment_ZeroPrincipal(t *testing.T) {
	s := NewMetricsService()

	payment, err := s.MonthlyPayment(0, 0.05, 5)

	require.NoError(t, err)
	assert.Zero(t, payment)
}

func TestMonthlyPayment_ValidationErrors(t *testing.T) {
	s := NewMetricsService()

	_, err := s.MonthlyPayment(-100, 0.05, 5)
	assert.ErrorIs(t, err, domain.ErrNegativeAmount)

	_, err = s.MonthlyPayment(1000, 0.05, 0)
	assert.ErrorIs(t, err, domain.ErrInvalidTerm)

	_, err = s.MonthlyPayment(1000, 0.05, -3)
	assert.ErrorIs(t, err, domain.ErrInvalidTerm)

	_, err = s.MonthlyPayment(1000, -0.01, 5)
	assert.ErrorIs(t, err, domain.ErrInvalidRate)
}

func TestFinancialMetrics_EndToEnd(t *testing.T) {
	s := NewMetricsService()

	profile := domain.FinancialProfile{
		MonthlyIncome:     2000,
		MonthlyExpenses:   800,
		Savings:           5000,
		DesiredLoanAmount: 10000,
	}

	metrics, err := s.FinancialMetrics(profile)
	require.NoError(t, err)

	assert.Equal(t, 2000.0, metrics.TotalIncome)
	assert.Equal(t, 800.0, metrics.TotalExpenses)
	assert.Equal(t, 1200.0, metrics.DisposableIncome)
	assert.InDelta(t, 188.71, metrics.EstimatedPayment, 0.01)
	assert.InDelta(t, 9.44, metrics.PaymentRatio, 0.01)
}

func TestFinancialMetrics_ZeroIncomeRatioIsZero(t *testing.T) {
	s := NewMetricsService()

	// Absent income is a defined degenerate case, not an error.
	metrics, err := s.FinancialMetrics(domain.FinancialProfile{
		DesiredLoanAmount: 10000,
	})

	require.NoError(t, err)
	assert.Zero(t, metrics.PaymentRatio)
	assert.Positive(t, metrics.EstimatedPayment)
}

func TestFinancialMetrics_NegativeFieldRejected(t *testing.T) {
	s := NewMetricsService()

	_, err := s.FinancialMetrics(domain.FinancialProfile{
		MonthlyIncome:   2000,
		MonthlyExpenses: -50,
	})

	assert.ErrorIs(t, err, domain.ErrNegativeAmount)
}
