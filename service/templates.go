package service

// MessageCatalog holds the recommendation text the affordability analysis
// interpolates. The catalog is content, not control flow: deployments swap it
// out for localization without touching the classifier. Each template is a
// fmt format string; the expected arguments are documented per field.
type MessageCatalog struct {
	// DangerDeficit: expenses exceed income. Args: deficit amount.
	DangerDeficit string
	// DangerHighRatio: payment ratio far above the safe band. Args: ratio,
	// safe ratio threshold.
	DangerHighRatio string
	// DangerPaymentExceedsDisposable: the estimated payment does not fit in
	// the disposable income. Args: estimated payment, disposable income.
	DangerPaymentExceedsDisposable string
	// WarningBorderline: ratio between the safe and warning thresholds.
	// Args: ratio.
	WarningBorderline string
	// SafeHeadroom: all metrics within bounds. No args.
	SafeHeadroom string
	// SavingsTip: savings below the recommended buffer. Args: recommended
	// minimum savings amount.
	SavingsTip string
}

// DefaultMessageCatalog returns the built-in English catalog.
func DefaultMessageCatalog() *MessageCatalog {
	return &MessageCatalog{
		DangerDeficit: "Warning: your expenses exceed your income by %.2f per month. " +
			"Before taking a loan, reduce expenses, increase income, or pay off existing loans.",
		DangerHighRatio: "Warning: the estimated payment is %.1f%% of your income, well above the " +
			"%.0f%% guideline. Consider a smaller amount, a longer term, or waiting until your finances improve.",
		DangerPaymentExceedsDisposable: "Warning: the estimated payment of %.2f exceeds your disposable " +
			"income of %.2f. You would likely struggle to make this payment.",
		WarningBorderline: "Caution: at %.1f%% of your income the payment is at the edge of the safe range. " +
			"Consider a smaller amount or a longer term (lower payment, but more interest overall).",
		SafeHeadroom: "Good news: you appear to have room for this loan. Remember this is an estimate - " +
			"confirm exact figures with a lender, keep a buffer for unexpected expenses, and compare offers.",
		SavingsTip: "Tip: aim for savings of at least %.2f (10%% of the amount) to cover a down payment " +
			"and unexpected costs.",
	}
}
