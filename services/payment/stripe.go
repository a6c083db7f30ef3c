package payment

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/paymentintent"
	"go.uber.org/zap"
)

// StripeGateway captures payments through Stripe payment intents.
type StripeGateway struct {
	logger *zap.Logger
}

// NewStripeGateway sets the process-wide Stripe API key and returns a gateway.
func NewStripeGateway(apiKey string, logger *zap.Logger) *StripeGateway {
	stripe.Key = apiKey
	return &StripeGateway{logger: logger}
}

// CreatePaymentIntent creates and confirms a payment intent in one call.
// Redirect-based payment methods are disallowed so confirmation is
// synchronous; a returned confirmation means the charge went through.
func (g *StripeGateway) CreatePaymentIntent(ctx context.Context, req IntentRequest) (*Confirmation, error) {
	params := &stripe.PaymentIntentParams{
		Amount:        stripe.Int64(req.AmountMinor),
		Currency:      stripe.String(req.Currency),
		PaymentMethod: stripe.String(req.PaymentMethod),
		Confirm:       stripe.Bool(true),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled:        stripe.Bool(true),
			AllowRedirects: stripe.String(string(stripe.PaymentIntentAutomaticPaymentMethodsAllowRedirectsNever)),
		},
	}
	params.Context = ctx
	for k, v := range req.Metadata {
		params.AddMetadata(k, v)
	}

	pi, err := paymentintent.New(params)
	if err != nil {
		g.logger.Warn("Stripe payment intent failed", zap.Int64("amountMinor", req.AmountMinor), zap.Error(err))
		return nil, fmt.Errorf("payment capture failed: %w", err)
	}

	g.logger.Info("Stripe payment intent created",
		zap.String("intent", pi.ID),
		zap.Int64("amountMinor", req.AmountMinor),
		zap.String("status", string(pi.Status)),
	)

	return &Confirmation{
		IntentID:     pi.ID,
		ClientSecret: pi.ClientSecret,
		Status:       string(pi.Status),
	}, nil
}
