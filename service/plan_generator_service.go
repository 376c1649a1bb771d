package service

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"loan-planner/domain"
)

// PlanGeneratorService enumerates the grid of candidate loan plans for a
// category using the static rate and term tables.
type PlanGeneratorService struct {
	metrics *MetricsService
	log     zerolog.Logger
}

// NewPlanGeneratorService creates a new PlanGeneratorService.
func NewPlanGeneratorService(metrics *MetricsService, log zerolog.Logger) *PlanGeneratorService {
	return &PlanGeneratorService{metrics: metrics, log: log}
}

// GenerateLoanOptions builds every candidate plan for the category: one plan
// per term for single-down-payment categories, terms crossed with the
// down-payment grid for mortgages. A customRate > 0 overrides the category's
// default rate. The result order follows the tables and is deterministic.
func (s *PlanGeneratorService) GenerateLoanOptions(
	totalAmount float64,
	category domain.LoanCategory,
	monthlyIncome float64,
	customRate float64,
) ([]domain.LoanPlan, error) {
	if totalAmount <= 0 {
		return nil, domain.ErrInvalidAmount
	}
	if totalAmount > MaxLoanAmount {
		return nil, fmt.Errorf("amount exceeds the maximum of %.2f", MaxLoanAmount)
	}
	if monthlyIncome < 0 {
		return nil, fmt.Errorf("monthly income: %w", domain.ErrNegativeAmount)
	}
	if customRate < 0 {
		return nil, domain.ErrInvalidRate
	}

	terms, ok := termOptions[category]
	if !ok {
		// Category resolution is best-effort upstream; unrecognised values
		// use the unknown table instead of failing the pipeline.
		s.log.Warn().Str("category", string(category)).Msg("unrecognised loan category, using unknown table")
		category = domain.CategoryUnknown
		terms = termOptions[domain.CategoryUnknown]
	}

	rate := defaultRates[category]
	if customRate > 0 {
		rate = customRate
	}

	downPayments := []float64{0}
	if category == domain.CategoryMortgage {
		downPayments = downPaymentOptions
	}

	plans := make([]domain.LoanPlan, 0, len(terms)*len(downPayments))
	for _, term := range terms {
		for _, downPct := range downPayments {
			plan, err := s.createPlan(totalAmount, category, downPct, rate, term, monthlyIncome)
			if err != nil {
				return nil, fmt.Errorf("plan for term %d: %w", term, err)
			}
			plans = append(plans, plan)
		}
	}

	return plans, nil
}

func (s *PlanGeneratorService) createPlan(
	totalAmount float64,
	category domain.LoanCategory,
	downPaymentPct float64,
	rate float64,
	termYears int,
	monthlyIncome float64,
) (domain.LoanPlan, error) {
	downPayment := totalAmount * downPaymentPct
	loanAmount := totalAmount - downPayment

	payment, err := s.metrics.MonthlyPayment(loanAmount, rate, termYears)
	if err != nil {
		return domain.LoanPlan{}, err
	}

	totalPayments := payment * float64(termYears) * 12
	totalInterest := totalPayments - loanAmount
	totalCost := loanAmount + totalInterest + downPayment
	ratio := paymentRatio(payment, monthlyIncome)

	return domain.LoanPlan{
		ID:                   planID(category, totalAmount, termYears, downPaymentPct),
		Name:                 planName(termYears, ratio),
		Category:             category,
		Amount:               roundTo2Decimals(loanAmount),
		TermYears:            termYears,
		InterestRate:         rate,
		DownPayment:          roundTo2Decimals(downPayment),
		DownPaymentPct:       downPaymentPct * 100,
		MonthlyPayment:       roundTo2Decimals(payment),
		TotalInterest:        roundTo2Decimals(totalInterest),
		TotalCost:            roundTo2Decimals(totalCost),
		PaymentToIncomeRatio: roundTo2Decimals(ratio),
	}, nil
}

// planID derives a short opaque token from the plan coordinates. Name-based
// UUIDs keep repeated runs on identical inputs byte-identical.
func planID(category domain.LoanCategory, totalAmount float64, termYears int, downPct float64) string {
	key := fmt.Sprintf("%s|%.2f|%d|%.2f", category, totalAmount, termYears, downPct)
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(key)).String()[:8]
}

// planName classifies the plan on two axes: payoff speed by term and
// affordability by payment ratio.
func planName(termYears int, ratio float64) string {
	var termDesc string
	switch {
	case termYears <= 10:
		termDesc = "Fast Payoff"
	case termYears <= 20:
		termDesc = "Balanced"
	default:
		termDesc = "Long-Term"
	}

	var affordability string
	switch {
	case ratio <= 25:
		affordability = "Comfortable"
	case ratio <= 35:
		affordability = "Moderate"
	default:
		affordability = "Demanding"
	}

	return fmt.Sprintf("%s (%d years) - %s", termDesc, termYears, affordability)
}
