package service

import "loan-planner/domain"

const (
	MaxLoanAmount   = 1_000_000_000.0 // hard ceiling, keeps the grid arithmetic sane
	MaxTermYears    = 50
	MaxInterestRate = 1.0 // 100% annual, as a decimal fraction

	// Benchmark assumptions for the first-pass affordability estimate.
	// Deliberately decoupled from the per-category tables below.
	BenchmarkRate      = 0.05
	BenchmarkTermYears = 5

	// Affordability thresholds (payment as % of income).
	SafePaymentRatio    = 30.0
	WarningPaymentRatio = 40.0

	// Minimum savings relative to the desired amount before the buffer tip fires.
	MinimumSavingsRatio = 0.10
)

// Ranking weights. Must sum to 1.0.
const (
	WeightAffordability = 0.30
	WeightCost          = 0.25
	WeightPayment       = 0.20
	WeightTerm          = 0.15
	WeightFlexibility   = 0.10
)

// Diversity constraints for best-plan selection.
const (
	DiversityMinTermGapYears = 5
	DiversityMinPaymentGap   = 0.15 // relative to the already selected plan
)

// defaultRates holds the static annual interest rate per category, as a
// decimal fraction.
var defaultRates = map[domain.LoanCategory]float64{
	domain.CategoryMortgage: 0.035,
	domain.CategoryPersonal: 0.07,
	domain.CategoryAuto:     0.05,
	domain.CategoryStudent:  0.04,
	domain.CategoryBusiness: 0.06,
	domain.CategoryUnknown:  0.06,
}

// termOptions holds the ordered term grid per category, in years.
var termOptions = map[domain.LoanCategory][]int{
	domain.CategoryMortgage: {15, 20, 25, 30},
	domain.CategoryPersonal: {3, 5, 7},
	domain.CategoryAuto:     {3, 5, 7},
	domain.CategoryStudent:  {10, 15, 20},
	domain.CategoryBusiness: {5, 10, 15},
	domain.CategoryUnknown:  {5, 10, 15},
}

// downPaymentOptions is the down-payment grid crossed with terms for
// mortgages. Other categories use a single 0% down payment.
var downPaymentOptions = []float64{0.10, 0.15, 0.20}
