package campaign

import (
	"errors"
	"time"

	campaignRepo "pawhaven/database/repository/campaign"
	"pawhaven/models"
	"pawhaven/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// CreateCampaign validates and stores a new campaign. raisedAmount always
// starts at zero regardless of the input.
func (s *DefaultCampaignService) CreateCampaign(input *models.Campaign) (*models.Campaign, error) {
	if fieldErrs := ValidateCreate(input); len(fieldErrs) > 0 {
		return nil, ValidationError{Fields: fieldErrs}
	}

	input.ID = primitive.NilObjectID
	input.RaisedAmount = 0
	input.Paused = false
	input.Donators = []models.DonationEntry{}

	if err := s.Repo.Create(input); err != nil {
		return nil, StoreError{Err: err}
	}
	return input, nil
}

// GetCampaignByID fetches a single campaign.
func (s *DefaultCampaignService) GetCampaignByID(id primitive.ObjectID) (*models.Campaign, error) {
	c, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, StoreError{Err: err}
	}
	if c == nil {
		return nil, NotFoundError{ID: id.Hex()}
	}
	return c, nil
}

// ListCampaigns returns one page of campaigns plus the total count. Page
// numbers start at 1; limit falls back to 10.
func (s *DefaultCampaignService) ListCampaigns(page, limit int64) ([]models.Campaign, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	campaigns, total, err := s.Repo.GetPage((page-1)*limit, limit)
	if err != nil {
		return nil, 0, StoreError{Err: err}
	}
	return campaigns, total, nil
}

// UpdateCampaign applies an edit patch and returns the updated campaign.
func (s *DefaultCampaignService) UpdateCampaign(id primitive.ObjectID, updates map[string]interface{}) (*models.Campaign, error) {
	if fieldErrs := ValidateUpdates(updates); len(fieldErrs) > 0 {
		return nil, ValidationError{Fields: fieldErrs}
	}

	updateDoc := bson.M{}
	for field, value := range updates {
		updateDoc[field] = value
	}
	updateDoc["updatedAt"] = time.Now()

	if err := s.Repo.UpdateSetDocument(id, updateDoc); err != nil {
		if errors.Is(err, campaignRepo.ErrNotFound) {
			return nil, NotFoundError{ID: id.Hex()}
		}
		return nil, StoreError{Err: err}
	}
	return s.GetCampaignByID(id)
}

// DeleteCampaign removes a campaign document.
func (s *DefaultCampaignService) DeleteCampaign(id primitive.ObjectID) error {
	if err := s.Repo.Delete(id); err != nil {
		if errors.Is(err, campaignRepo.ErrNotFound) {
			return NotFoundError{ID: id.Hex()}
		}
		return StoreError{Err: err}
	}
	return nil
}

// SetPaused flips the pause flag. Idempotent: re-pausing a paused campaign
// succeeds and leaves the same state.
func (s *DefaultCampaignService) SetPaused(id primitive.ObjectID, paused bool) error {
	err := s.Repo.UpdateSetDocument(id, bson.M{"paused": paused, "updatedAt": time.Now()})
	if err != nil {
		if errors.Is(err, campaignRepo.ErrNotFound) {
			return NotFoundError{ID: id.Hex()}
		}
		return StoreError{Err: err}
	}
	utils.GetLogger().Info("Campaign pause flag set", zap.String("id", id.Hex()), zap.Bool("paused", paused))
	return nil
}

// GetDonators returns the campaign's donor ledger in chronological order.
func (s *DefaultCampaignService) GetDonators(id primitive.ObjectID) ([]models.DonationEntry, error) {
	c, err := s.GetCampaignByID(id)
	if err != nil {
		return nil, err
	}
	if c.Donators == nil {
		return []models.DonationEntry{}, nil
	}
	return c.Donators, nil
}
