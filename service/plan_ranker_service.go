package service

import (
	"math"
	"sort"
	"strings"

	"loan-planner/domain"
)

// PlanRankerService scores candidate plans on five weighted criteria, orders
// them and picks a diversity-aware top subset.
type PlanRankerService struct{}

// NewPlanRankerService creates a new PlanRankerService.
func NewPlanRankerService() *PlanRankerService {
	return &PlanRankerService{}
}

// RankPlans scores every plan against the full candidate set and returns them
// ordered by overall score, highest first. Ties break on lower total cost,
// then shorter term, so identical inputs always produce identical ordering.
func (s *PlanRankerService) RankPlans(plans []domain.LoanPlan) []domain.RankedPlan {
	if len(plans) == 0 {
		return nil
	}

	ranked := make([]domain.RankedPlan, 0, len(plans))
	for _, plan := range plans {
		affordability := scoreAffordability(plan.PaymentToIncomeRatio)
		cost := scoreRelative(plan.TotalCost, plans, func(p domain.LoanPlan) float64 { return p.TotalCost })
		payment := scoreRelative(plan.MonthlyPayment, plans, func(p domain.LoanPlan) float64 { return p.MonthlyPayment })
		term := scoreTerm(plan.TermYears)
		flexibility := scoreFlexibility(plan.TermYears, plan.PaymentToIncomeRatio)

		overall := affordability*WeightAffordability +
			cost*WeightCost +
			payment*WeightPayment +
			term*WeightTerm +
			flexibility*WeightFlexibility

		ranked = append(ranked, domain.RankedPlan{
			Plan:                 plan,
			Score:                roundTo2Decimals(overall),
			AffordabilityScore:   roundTo2Decimals(affordability),
			CostScore:            roundTo2Decimals(cost),
			PaymentScore:         roundTo2Decimals(payment),
			TermScore:            roundTo2Decimals(term),
			FlexibilityScore:     roundTo2Decimals(flexibility),
			RecommendationReason: recommendationReason(plan, affordability, cost, payment),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		if ranked[i].Plan.TotalCost != ranked[j].Plan.TotalCost {
			return ranked[i].Plan.TotalCost < ranked[j].Plan.TotalCost
		}
		return ranked[i].Plan.TermYears < ranked[j].Plan.TermYears
	})

	return ranked
}

// SelectBest picks count plans from the ranked list. Rank 1 is always
// included; later candidates are accepted first-fit only when they differ from
// every selected plan by at least DiversityMinTermGapYears years of term AND
// DiversityMinPaymentGap of relative monthly payment. When the list runs out
// before count is reached, remaining slots are backfilled with the next-best
// plans regardless of diversity. Greedy by construction, not globally optimal.
func (s *PlanRankerService) SelectBest(ranked []domain.RankedPlan, count int) []domain.LoanPlan {
	if len(ranked) == 0 || count <= 0 {
		return nil
	}

	selected := []domain.LoanPlan{ranked[0].Plan}
	taken := map[string]bool{ranked[0].Plan.ID: true}

	for _, rp := range ranked[1:] {
		if len(selected) >= count {
			break
		}
		if isDiverseFrom(rp.Plan, selected) {
			selected = append(selected, rp.Plan)
			taken[rp.Plan.ID] = true
		}
	}

	// Backfill in rank order, ignoring the diversity constraint.
	for _, rp := range ranked {
		if len(selected) >= count {
			break
		}
		if !taken[rp.Plan.ID] {
			selected = append(selected, rp.Plan)
			taken[rp.Plan.ID] = true
		}
	}

	return selected
}

// scoreAffordability maps the payment-to-income ratio to 0-100: full marks in
// the safe band, linear 100->50 through the warning band, then a steep decay.
func scoreAffordability(ratio float64) float64 {
	switch {
	case ratio <= SafePaymentRatio:
		return 100
	case ratio <= WarningPaymentRatio:
		return 100 - (ratio-SafePaymentRatio)/(WarningPaymentRatio-SafePaymentRatio)*50
	default:
		return math.Max(0, 50-(ratio-WarningPaymentRatio)*2)
	}
}

// scoreRelative min-max normalizes a value against the candidate set: the
// lowest value scores 100, the highest 0. An all-equal set scores 100.
func scoreRelative(value float64, plans []domain.LoanPlan, field func(domain.LoanPlan) float64) float64 {
	min := field(plans[0])
	max := min
	for _, p := range plans[1:] {
		v := field(p)
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	if max == min {
		return 100
	}
	score := 100 - (value-min)/(max-min)*100
	return math.Max(0, math.Min(100, score))
}

// scoreTerm peaks at 100 for 15-20 year terms and decays linearly outside
// that band.
func scoreTerm(termYears int) float64 {
	t := float64(termYears)
	switch {
	case termYears >= 15 && termYears <= 20:
		return 100
	case termYears < 15:
		return math.Max(0, math.Min(100, 70+(t-10)*6))
	default:
		return math.Max(0, 100-(t-20)*3)
	}
}

// scoreFlexibility blends a term factor and a ratio factor: shorter terms and
// lower payment ratios leave more room to maneuver.
func scoreFlexibility(termYears int, ratio float64) float64 {
	termFactor := math.Max(0, 100-float64(termYears-5)*3)
	ratioFactor := math.Max(0, 100-ratio*2)
	return (termFactor + ratioFactor) / 2
}

func isDiverseFrom(plan domain.LoanPlan, selected []domain.LoanPlan) bool {
	for _, sel := range selected {
		termGap := plan.TermYears - sel.TermYears
		if termGap < 0 {
			termGap = -termGap
		}
		if termGap < DiversityMinTermGapYears {
			return false
		}
		if sel.MonthlyPayment > 0 {
			paymentGap := math.Abs(plan.MonthlyPayment-sel.MonthlyPayment) / sel.MonthlyPayment
			if paymentGap < DiversityMinPaymentGap {
				return false
			}
		}
	}
	return true
}

func recommendationReason(plan domain.LoanPlan, affordability, cost, payment float64) string {
	var reasons []string

	if affordability >= 80 {
		reasons = append(reasons, "Very affordable")
	} else if affordability >= 60 {
		reasons = append(reasons, "Reasonably affordable")
	}
	if cost >= 80 {
		reasons = append(reasons, "Low total cost")
	}
	if payment >= 80 {
		reasons = append(reasons, "Low monthly payment")
	}
	if plan.TermYears <= 15 {
		reasons = append(reasons, "Fast payoff")
	} else if plan.TermYears >= 25 {
		reasons = append(reasons, "Light monthly load")
	}

	if len(reasons) == 0 {
		return "Balanced option"
	}
	return strings.Join(reasons, ", ")
}
