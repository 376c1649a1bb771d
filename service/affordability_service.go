package service

import (
	"fmt"

	"loan-planner/domain"
)

// AffordabilityService classifies a financial profile into a risk tier and
// renders the matching recommendations. The classifier is state-free; all
// user-facing text lives in the MessageCatalog.
type AffordabilityService struct {
	catalog *MessageCatalog
}

// NewAffordabilityService creates a new AffordabilityService. A nil catalog
// selects the built-in English messages.
func NewAffordabilityService(catalog *MessageCatalog) *AffordabilityService {
	if catalog == nil {
		catalog = DefaultMessageCatalog()
	}
	return &AffordabilityService{catalog: catalog}
}

// Status determines the affordability tier from the derived metrics.
func (s *AffordabilityService) Status(paymentRatio, disposableIncome, estimatedPayment float64) domain.AffordabilityStatus {
	if disposableIncome <= 0 || paymentRatio > WarningPaymentRatio {
		return domain.StatusDanger
	}
	if disposableIncome < estimatedPayment {
		return domain.StatusDanger
	}
	if paymentRatio > SafePaymentRatio {
		return domain.StatusWarning
	}
	return domain.StatusSafe
}

// Analyze performs the complete affordability analysis for a profile whose
// metrics have already been computed.
func (s *AffordabilityService) Analyze(profile domain.FinancialProfile, metrics domain.FinancialMetrics) domain.AffordabilityReport {
	status := s.Status(metrics.PaymentRatio, metrics.DisposableIncome, metrics.EstimatedPayment)

	return domain.AffordabilityReport{
		Status:          status,
		Recommendations: s.recommendations(profile, metrics, status),
		Metrics:         metrics,
	}
}

// recommendations renders the catalog entries that apply to the situation.
// Tier-specific branches first, then the savings-buffer tip when savings fall
// short of the recommended minimum.
func (s *AffordabilityService) recommendations(
	profile domain.FinancialProfile,
	metrics domain.FinancialMetrics,
	status domain.AffordabilityStatus,
) []string {
	var out []string

	switch status {
	case domain.StatusDanger:
		switch {
		case metrics.DisposableIncome <= 0:
			out = append(out, fmt.Sprintf(s.catalog.DangerDeficit, -metrics.DisposableIncome))
		case metrics.PaymentRatio > 35:
			out = append(out, fmt.Sprintf(s.catalog.DangerHighRatio, metrics.PaymentRatio, SafePaymentRatio))
		case metrics.DisposableIncome < metrics.EstimatedPayment:
			out = append(out, fmt.Sprintf(s.catalog.DangerPaymentExceedsDisposable,
				metrics.EstimatedPayment, metrics.DisposableIncome))
		}
	case domain.StatusWarning:
		out = append(out, fmt.Sprintf(s.catalog.WarningBorderline, metrics.PaymentRatio))
	default:
		out = append(out, s.catalog.SafeHeadroom)
	}

	if minSavings := profile.DesiredLoanAmount * MinimumSavingsRatio; profile.Savings < minSavings {
		out = append(out, fmt.Sprintf(s.catalog.SavingsTip, minSavings))
	}

	return out
}
