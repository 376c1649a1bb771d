package domain

// PaymentPeriod is a single month in an amortization schedule. The payment
// splits into principal and interest within rounding tolerance, and the
// remaining balance never increases across consecutive periods.
type PaymentPeriod struct {
	Period             int     `json:"period"`
	Payment            float64 `json:"payment"`
	Principal          float64 `json:"principal"`
	Interest           float64 `json:"interest"`
	RemainingBalance   float64 `json:"remaining_balance"`
	CumulativeInterest float64 `json:"cumulative_interest"`
}

// AmortizationSchedule is a complete month-by-month repayment schedule. It is
// owned by the caller that requested it and never cached or shared.
type AmortizationSchedule struct {
	LoanAmount     float64         `json:"loan_amount"`
	InterestRate   float64         `json:"interest_rate"`
	TermMonths     int             `json:"term_months"`
	MonthlyPayment float64         `json:"monthly_payment"`
	Periods        []PaymentPeriod `json:"periods"`
	TotalInterest  float64         `json:"total_interest"`
	TotalPayments  float64         `json:"total_payments"`
}

// SummaryInterval selects the bucket size for schedule aggregation.
type SummaryInterval string

const (
	IntervalMonthly   SummaryInterval = "monthly"
	IntervalQuarterly SummaryInterval = "quarterly"
	IntervalYearly    SummaryInterval = "yearly"
)

// SchedulePoint is an aggregated, read-only view over a slice of consecutive
// schedule periods.
type SchedulePoint struct {
	Label              string  `json:"label"`
	PeriodEnd          int     `json:"period_end"`
	PrincipalPaid      float64 `json:"principal_paid"`
	InterestPaid       float64 `json:"interest_paid"`
	RemainingBalance   float64 `json:"remaining_balance"`
	CumulativeInterest float64 `json:"cumulative_interest"`
}

// PaymentBreakdown is the principal/interest split of one specific payment.
type PaymentBreakdown struct {
	Period              int     `json:"period"`
	Payment             float64 `json:"payment"`
	Principal           float64 `json:"principal"`
	Interest            float64 `json:"interest"`
	PrincipalPercentage float64 `json:"principal_percentage"`
	InterestPercentage  float64 `json:"interest_percentage"`
	RemainingBalance    float64 `json:"remaining_balance"`
}
