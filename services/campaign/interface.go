package campaign

import (
	"context"

	campaignRepo "pawhaven/database/repository/campaign"
	"pawhaven/models"
	"pawhaven/services/payment"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DonateInput carries one donation request.
type DonateInput struct {
	Amount        float64 `json:"amount"`
	PaymentMethod string  `json:"paymentMethod"`
	DonorEmail    string  `json:"donorEmail"`
	DonorName     string  `json:"donorName"`
}

// CampaignService exposes the donation campaign operations.
type CampaignService interface {
	CreateCampaign(input *models.Campaign) (*models.Campaign, error)
	GetCampaignByID(id primitive.ObjectID) (*models.Campaign, error)
	ListCampaigns(page, limit int64) ([]models.Campaign, int64, error)
	UpdateCampaign(id primitive.ObjectID, updates map[string]interface{}) (*models.Campaign, error)
	DeleteCampaign(id primitive.ObjectID) error
	SetPaused(id primitive.ObjectID, paused bool) error
	GetDonators(id primitive.ObjectID) ([]models.DonationEntry, error)

	Donate(ctx context.Context, id primitive.ObjectID, input DonateInput) (*payment.Confirmation, error)
	Refund(id primitive.ObjectID, donorEmail string, amount float64) error
	Recommend(exclude primitive.ObjectID, sampleSize int64) ([]models.Campaign, error)
}

// DefaultCampaignService is the production implementation.
type DefaultCampaignService struct {
	Repo     campaignRepo.CampaignRepository
	Gateway  payment.Gateway
	Currency string
}
