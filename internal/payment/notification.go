package payment

// Notification is the asynchronous payment-status callback Midtrans
// posts to the webhook endpoint. Fields not needed for the status
// transition are kept for logging.
type Notification struct {
	OrderID           string `json:"order_id"`
	TransactionStatus string `json:"transaction_status"`
	FraudStatus       string `json:"fraud_status"`
	StatusCode        string `json:"status_code"`
	GrossAmount       string `json:"gross_amount"`
	PaymentType       string `json:"payment_type"`
	TransactionID     string `json:"transaction_id"`
	SignatureKey      string `json:"signature_key"`
}

// Outcome is the internal effect of one notification.
type Outcome int

const (
	// OutcomeIgnore means the notification causes no transition.
	OutcomeIgnore Outcome = iota
	OutcomeSuccess
	OutcomeFailed
)

// MapStatus translates a gateway status pair into a donation
// transition. Transitions only happen when the fraud check accepted
// the payment; everything else is silently ignored.
func MapStatus(transactionStatus, fraudStatus string) Outcome {
	if fraudStatus != "accept" {
		return OutcomeIgnore
	}
	switch transactionStatus {
	case "capture", "settlement":
		return OutcomeSuccess
	case "cancel", "deny", "expire":
		return OutcomeFailed
	default:
		return OutcomeIgnore
	}
}
