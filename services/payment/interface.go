package payment

import "context"

// IntentRequest describes a synchronous payment capture. Amount is in minor
// currency units (cents).
type IntentRequest struct {
	AmountMinor   int64
	Currency      string
	PaymentMethod string
	Metadata      map[string]string
}

// Confirmation is the gateway's acknowledgement of a captured payment. The
// client secret is handed back to the caller for client-side settlement.
type Confirmation struct {
	IntentID     string `json:"intentId"`
	ClientSecret string `json:"clientSecret"`
	Status       string `json:"status"`
}

// Gateway abstracts the external payment provider.
type Gateway interface {
	CreatePaymentIntent(ctx context.Context, req IntentRequest) (*Confirmation, error)
}
