package domain

// FinancialProfile is the household financial snapshot supplied by the caller.
// Values are re-validated by the engine even though the upstream form checks
// them; the profile is treated as immutable once it enters the engine.
type FinancialProfile struct {
	MonthlyIncome        float64 `json:"monthly_income"`
	OtherIncome          float64 `json:"other_income"`
	MonthlyExpenses      float64 `json:"monthly_expenses"`
	ExistingLoanPayments float64 `json:"existing_loan_payments"`
	Savings              float64 `json:"savings"`
	DesiredLoanAmount    float64 `json:"desired_loan_amount"`
}

// FinancialMetrics are the derived first-pass affordability numbers.
//
// EstimatedPayment uses a fixed benchmark rate and term independent of any
// generated plan; PaymentRatio is 0 when monthly income is absent, which is a
// defined degenerate case rather than an error.
type FinancialMetrics struct {
	TotalIncome      float64 `json:"total_income"`
	TotalExpenses    float64 `json:"total_expenses"`
	DisposableIncome float64 `json:"disposable_income"`
	EstimatedPayment float64 `json:"estimated_payment"`
	PaymentRatio     float64 `json:"payment_ratio"`
}

// AffordabilityStatus is the coarse risk tier.
type AffordabilityStatus string

const (
	StatusSafe    AffordabilityStatus = "safe"
	StatusWarning AffordabilityStatus = "warning"
	StatusDanger  AffordabilityStatus = "danger"
)

// AffordabilityReport bundles the tier, the rendered recommendations and the
// metrics they were derived from.
type AffordabilityReport struct {
	Status          AffordabilityStatus `json:"status"`
	Recommendations []string            `json:"recommendations"`
	Metrics         FinancialMetrics    `json:"metrics"`
}
