package campaign

import (
	"context"
	"errors"
	"math"
	"time"

	campaignRepo "pawhaven/database/repository/campaign"
	"pawhaven/models"
	"pawhaven/services/payment"
	"pawhaven/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Donate captures a payment for the given campaign and records it in the
// donor ledger. The capture and the ledger update are two separate steps:
// if the campaign disappears between them, the payment stays captured and
// the call reports not-found (no compensating transaction).
func (s *DefaultCampaignService) Donate(ctx context.Context, id primitive.ObjectID, input DonateInput) (*payment.Confirmation, error) {
	if fieldErrs := ValidateDonation(input); len(fieldErrs) > 0 {
		return nil, ValidationError{Fields: fieldErrs}
	}

	existing, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, StoreError{Err: err}
	}
	if existing == nil {
		return nil, NotFoundError{ID: id.Hex()}
	}

	confirmation, err := s.Gateway.CreatePaymentIntent(ctx, payment.IntentRequest{
		AmountMinor:   int64(math.Round(input.Amount * 100)),
		Currency:      s.Currency,
		PaymentMethod: input.PaymentMethod,
		Metadata: map[string]string{
			"campaignId": id.Hex(),
			"donorEmail": input.DonorEmail,
			"donorName":  input.DonorName,
		},
	})
	if err != nil {
		return nil, GatewayError{Err: err}
	}

	entry := models.DonationEntry{
		Email:      input.DonorEmail,
		Name:       input.DonorName,
		Amount:     input.Amount,
		PaymentRef: confirmation.IntentID,
		DonatedAt:  time.Now(),
	}
	if err := s.Repo.AppendDonation(id, entry); err != nil {
		if errors.Is(err, campaignRepo.ErrNotFound) {
			// Payment is already captured; the ledger cannot absorb it.
			utils.GetLogger().Warn("Campaign vanished after payment capture",
				zap.String("id", id.Hex()),
				zap.String("paymentRef", confirmation.IntentID),
			)
			return nil, NotFoundError{ID: id.Hex()}
		}
		return nil, StoreError{Err: err}
	}

	utils.GetLogger().Info("Donation recorded",
		zap.String("campaign", id.Hex()),
		zap.Float64("amount", input.Amount),
		zap.String("paymentRef", confirmation.IntentID),
	)
	return confirmation, nil
}
