package campaignRepo

import (
	"errors"

	"pawhaven/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrNotFound is returned when a campaign id does not resolve to a document.
var ErrNotFound = errors.New("campaign not found")

// CampaignRepository defines persistence operations for campaigns.
// Every write is a single-document conditional update; the donor ledger is
// embedded in the campaign document and mutated together with raisedAmount.
type CampaignRepository interface {
	Create(campaign *models.Campaign) error
	GetByID(id primitive.ObjectID) (*models.Campaign, error)
	GetPage(skip, limit int64) ([]models.Campaign, int64, error)
	UpdateSetDocument(id primitive.ObjectID, updateDoc bson.M) error
	Delete(id primitive.ObjectID) error

	// AppendDonation increments raisedAmount and pushes the ledger entry in
	// one update request.
	AppendDonation(id primitive.ObjectID, entry models.DonationEntry) error
	// ReplaceDonators sets the full ledger and applies a raisedAmount delta
	// in one update request (refund path).
	ReplaceDonators(id primitive.ObjectID, donators []models.DonationEntry, raisedDelta float64) error
	// RandomSample returns up to n unpaused campaigns excluding the given id.
	RandomSample(exclude primitive.ObjectID, n int64) ([]models.Campaign, error)
}
