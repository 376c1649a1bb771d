package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"loan-planner/domain"
)

func TestCompare_Deltas(t *testing.T) {
	s := NewComparisonService()

	planA := domain.LoanPlan{
		ID: "a", Name: "Fast Payoff (10 years) - Moderate",
		TermYears: 10, MonthlyPayment: 500, TotalInterest: 8000, TotalCost: 68000,
		PaymentToIncomeRatio: 25,
	}
	planB := domain.LoanPlan{
		ID: "b", Name: "Long-Term (25 years) - Comfortable",
		TermYears: 25, MonthlyPayment: 280, TotalInterest: 24000, TotalCost: 84000,
		PaymentToIncomeRatio: 14,
	}

	result, err := s.Compare(planA, planB)
	require.NoError(t, err)

	assert.InDelta(t, -220, result.MonthlyPaymentDiff, 1e-9)
	assert.InDelta(t, 16000, result.TotalCostDiff, 1e-9)
	assert.InDelta(t, 16000, result.InterestDiff, 1e-9)
	assert.Equal(t, 15, result.TermDiff)
}

func TestCompare_ProsReflectAdvantages(t *testing.T) {
	s := NewComparisonService()

	planA := domain.LoanPlan{
		ID: "a", Name: "A", TermYears: 10, MonthlyPayment: 500,
		TotalInterest: 8000, TotalCost: 68000, PaymentToIncomeRatio: 25,
	}
	planB := domain.LoanPlan{
		ID: "b", Name: "B", TermYears: 25, MonthlyPayment: 280,
		TotalInterest: 24000, TotalCost: 84000, PaymentToIncomeRatio: 14,
	}

	result, err := s.Compare(planA, planB)
	require.NoError(t, err)

	// A wins on cost, interest and term; B on payment and ratio.
	assert.Contains(t, result.ProsPlanA, "Paid off 15 years sooner")
	assert.Contains(t, result.ProsPlanA, "Lower total cost by 16000")
	assert.Contains(t, result.ProsPlanA, "Saves 16000 in interest")
	assert.Contains(t, result.ProsPlanB, "Lower monthly payment by 220")
	assert.Contains(t, result.ProsPlanB, "Better payment-to-income ratio")
}

func TestCompare_IdenticalPlansTie(t *testing.T) {
	s := NewComparisonService()

	plan := domain.LoanPlan{
		ID: "a", Name: "A", TermYears: 15, MonthlyPayment: 400,
		TotalInterest: 12000, TotalCost: 72000, PaymentToIncomeRatio: 20,
	}

	result, err := s.Compare(plan, plan)
	require.NoError(t, err)

	assert.Equal(t, "tie", result.Winner)
	assert.Equal(t, []string{"Alternative option"}, result.ProsPlanA)
	assert.Contains(t, result.Recommendation, "equally good")
}

func TestCompare_WinnerNamedInRecommendation(t *testing.T) {
	s := NewComparisonService()

	better := domain.LoanPlan{
		ID: "a", Name: "Better Plan", TermYears: 15, MonthlyPayment: 350,
		TotalInterest: 9000, TotalCost: 59000, PaymentToIncomeRatio: 12,
	}
	worse := domain.LoanPlan{
		ID: "b", Name: "Worse Plan", TermYears: 30, MonthlyPayment: 450,
		TotalInterest: 40000, TotalCost: 100000, PaymentToIncomeRatio: 30,
	}

	result, err := s.Compare(better, worse)
	require.NoError(t, err)

	assert.Equal(t, "a", result.Winner)
	assert.Contains(t, result.Recommendation, "Better Plan")
}

func TestCompare_RejectsZeroCost(t *testing.T) {
	s := NewComparisonService()

	_, err := s.Compare(domain.LoanPlan{}, domain.LoanPlan{TotalCost: 1000})
	assert.ErrorIs(t, err, domain.ErrInvalidAmount)
}
