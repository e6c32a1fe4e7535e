package payment

// GatewayOrder is the order descriptor the payment processor assigns to a
// checkout attempt. Amount is in minor currency units (paise for INR).
type GatewayOrder struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status,omitempty"`
}

// Gateway is the payment processor boundary consumed by the order flow.
type Gateway interface {
	// CreateOrder registers a checkout attempt with the processor and
	// returns its order descriptor.
	CreateOrder(amountMinor int64, currency, receipt string) (GatewayOrder, error)
	// VerifySignature reports whether signature is the processor's keyed
	// hash over the (orderID, paymentID) pair.
	VerifySignature(orderID, paymentID, signature string) bool
}
