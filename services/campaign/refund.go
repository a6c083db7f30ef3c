package campaign

import (
	"errors"
	"fmt"

	campaignRepo "pawhaven/database/repository/campaign"
	"pawhaven/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Refund removes the first ledger entry matching the donor email and
// decrements raisedAmount by the given amount, as one combined update.
// Bookkeeping only: no money moves back through the gateway.
func (s *DefaultCampaignService) Refund(id primitive.ObjectID, donorEmail string, amount float64) error {
	var fieldErrs []FieldError
	if donorEmail == "" {
		fieldErrs = append(fieldErrs, FieldError{Field: "donorEmail", Message: "must not be empty"})
	}
	if amount <= 0 {
		fieldErrs = append(fieldErrs, FieldError{Field: "amount", Message: "must be greater than zero"})
	}
	if len(fieldErrs) > 0 {
		return ValidationError{Fields: fieldErrs}
	}

	existing, err := s.Repo.GetByID(id)
	if err != nil {
		return StoreError{Err: err}
	}
	if existing == nil {
		return NotFoundError{ID: id.Hex()}
	}

	match := -1
	for i, entry := range existing.Donators {
		if entry.Email == donorEmail {
			match = i
			break
		}
	}
	if match == -1 {
		return ValidationError{Fields: []FieldError{{
			Field:   "donorEmail",
			Message: fmt.Sprintf("no donation from %s on this campaign", donorEmail),
		}}}
	}

	trimmed := append(existing.Donators[:match:match], existing.Donators[match+1:]...)
	if err := s.Repo.ReplaceDonators(id, trimmed, -amount); err != nil {
		if errors.Is(err, campaignRepo.ErrNotFound) {
			return NotFoundError{ID: id.Hex()}
		}
		return StoreError{Err: err}
	}

	utils.GetLogger().Info("Donation refunded",
		zap.String("campaign", id.Hex()),
		zap.String("donor", donorEmail),
		zap.Float64("amount", amount),
	)
	return nil
}
