package service

import (
	"fmt"
	"math"

	"loan-planner/domain"
)

// ComparisonService produces a detailed pairwise diff between two plans.
type ComparisonService struct{}

// NewComparisonService creates a new ComparisonService.
func NewComparisonService() *ComparisonService {
	return &ComparisonService{}
}

// Compare diffs two plans. Deltas are plan B minus plan A; the winner
// heuristic favors lower payment-to-income ratio and lower total cost.
func (s *ComparisonService) Compare(planA, planB domain.LoanPlan) (domain.ComparisonResult, error) {
	if planA.TotalCost <= 0 || planB.TotalCost <= 0 {
		return domain.ComparisonResult{}, domain.ErrInvalidAmount
	}

	winner := determineWinner(planA, planB)

	return domain.ComparisonResult{
		PlanA:              planA,
		PlanB:              planB,
		Winner:             winner,
		MonthlyPaymentDiff: roundTo2Decimals(planB.MonthlyPayment - planA.MonthlyPayment),
		TotalCostDiff:      roundTo2Decimals(planB.TotalCost - planA.TotalCost),
		InterestDiff:       roundTo2Decimals(planB.TotalInterest - planA.TotalInterest),
		TermDiff:           planB.TermYears - planA.TermYears,
		ProsPlanA:          planPros(planA, planB),
		ProsPlanB:          planPros(planB, planA),
		Recommendation:     comparisonRecommendation(planA, planB, winner),
	}, nil
}

func determineWinner(planA, planB domain.LoanPlan) string {
	scoreA := (100 - planA.PaymentToIncomeRatio) + 1/planA.TotalCost*100_000
	scoreB := (100 - planB.PaymentToIncomeRatio) + 1/planB.TotalCost*100_000

	if math.Abs(scoreA-scoreB) < 0.1 {
		return "tie"
	}
	if scoreA > scoreB {
		return "a"
	}
	return "b"
}

// planPros lists the concrete advantages of plan over other.
func planPros(plan, other domain.LoanPlan) []string {
	var pros []string

	if plan.MonthlyPayment < other.MonthlyPayment {
		pros = append(pros, fmt.Sprintf("Lower monthly payment by %.0f", other.MonthlyPayment-plan.MonthlyPayment))
	}
	if plan.TotalCost < other.TotalCost {
		pros = append(pros, fmt.Sprintf("Lower total cost by %.0f", other.TotalCost-plan.TotalCost))
	}
	if plan.TotalInterest < other.TotalInterest {
		pros = append(pros, fmt.Sprintf("Saves %.0f in interest", other.TotalInterest-plan.TotalInterest))
	}
	if plan.TermYears < other.TermYears {
		pros = append(pros, fmt.Sprintf("Paid off %d years sooner", other.TermYears-plan.TermYears))
	}
	if plan.PaymentToIncomeRatio < other.PaymentToIncomeRatio {
		pros = append(pros, "Better payment-to-income ratio")
	}

	if len(pros) == 0 {
		return []string{"Alternative option"}
	}
	return pros
}

func comparisonRecommendation(planA, planB domain.LoanPlan, winner string) string {
	switch winner {
	case "a":
		return fmt.Sprintf("%s is the better choice overall.", planA.Name)
	case "b":
		return fmt.Sprintf("%s is the better choice overall.", planB.Name)
	default:
		return "Both plans are equally good choices. Pick based on your preferences."
	}
}
