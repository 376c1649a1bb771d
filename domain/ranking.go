package domain

// RankedPlan wraps a LoanPlan with its five component scores and the overall
// weighted score, all on a 0-100 scale.
type RankedPlan struct {
	Plan                 LoanPlan `json:"plan"`
	Score                float64  `json:"score"`
	AffordabilityScore   float64  `json:"affordability_score"`
	CostScore            float64  `json:"cost_score"`
	PaymentScore         float64  `json:"payment_score"`
	TermScore            float64  `json:"term_score"`
	FlexibilityScore     float64  `json:"flexibility_score"`
	RecommendationReason string   `json:"recommendation_reason"`
}

// ComparisonResult is a pairwise diff between two loan plans. Deltas are
// plan B minus plan A.
type ComparisonResult struct {
	PlanA              LoanPlan `json:"plan_a"`
	PlanB              LoanPlan `json:"plan_b"`
	Winner             string   `json:"winner"` // "a", "b" or "tie"
	MonthlyPaymentDiff float64  `json:"monthly_payment_diff"`
	TotalCostDiff      float64  `json:"total_cost_diff"`
	InterestDiff       float64  `json:"interest_diff"`
	TermDiff           int      `json:"term_diff"`
	ProsPlanA          []string `json:"pros_plan_a"`
	ProsPlanB          []string `json:"pros_plan_b"`
	Recommendation     string   `json:"recommendation"`
}
