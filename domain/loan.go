package domain

// LoanCategory is the closed set of loan types the engine knows rate and term
// tables for. Values outside the set parse to CategoryUnknown so a best-effort
// upstream classifier can never fail the pipeline.
type LoanCategory string

const (
	CategoryMortgage LoanCategory = "mortgage"
	CategoryPersonal LoanCategory = "personal"
	CategoryAuto     LoanCategory = "auto"
	CategoryStudent  LoanCategory = "student"
	CategoryBusiness LoanCategory = "business"
	CategoryUnknown  LoanCategory = "unknown"
)

// ParseLoanCategory maps a free-form category tag to the closed enumeration.
func ParseLoanCategory(s string) LoanCategory {
	switch LoanCategory(s) {
	case CategoryMortgage, CategoryPersonal, CategoryAuto, CategoryStudent, CategoryBusiness:
		return LoanCategory(s)
	}
	return CategoryUnknown
}

// LoanPlan is one fully-priced candidate loan structure. All monetary fields
// are computed once at construction and never mutated afterwards.
type LoanPlan struct {
	ID                   string       `json:"id"`
	Name                 string       `json:"name"`
	Category             LoanCategory `json:"category"`
	Amount               float64      `json:"amount"`
	TermYears            int          `json:"term_years"`
	InterestRate         float64      `json:"interest_rate"`
	DownPayment          float64      `json:"down_payment"`
	DownPaymentPct       float64      `json:"down_payment_pct"`
	MonthlyPayment       float64      `json:"monthly_payment"`
	TotalInterest        float64      `json:"total_interest"`
	TotalCost            float64      `json:"total_cost"`
	PaymentToIncomeRatio float64      `json:"payment_to_income_ratio"`
}
