package campaignRepo

import (
	"fmt"
	"time"

	"pawhaven/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Create inserts a new campaign document.
func (r *MongoCampaignRepo) Create(campaign *models.Campaign) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	campaign.CreatedAt = now
	campaign.UpdatedAt = now
	if campaign.Donators == nil {
		campaign.Donators = []models.DonationEntry{}
	}

	res, err := r.coll.InsertOne(ctx, campaign)
	if err != nil {
		return fmt.Errorf("failed to create campaign: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		campaign.ID = oid
	}
	return nil
}

// GetByID retrieves a campaign by its unique ID. Returns (nil, nil) when no
// document matches.
func (r *MongoCampaignRepo) GetByID(id primitive.ObjectID) (*models.Campaign, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var campaign models.Campaign
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&campaign); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch campaign with id %s: %w", id.Hex(), err)
	}
	return &campaign, nil
}

// UpdateSetDocument applies a $set patch to a campaign document.
func (r *MongoCampaignRepo) UpdateSetDocument(id primitive.ObjectID, updateDoc bson.M) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": updateDoc}
	result, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, update)
	return matchedOrNotFound(result, err, fmt.Sprintf("failed to update campaign with id %s", id.Hex()))
}

// Delete removes a campaign document by its ID.
func (r *MongoCampaignRepo) Delete(id primitive.ObjectID) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete campaign with id %s: %w", id.Hex(), err)
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// AppendDonation increments raisedAmount and appends the ledger entry as a
// single update request, relying on the store's single-document atomicity.
func (r *MongoCampaignRepo) AppendDonation(id primitive.ObjectID, entry models.DonationEntry) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{
		"$inc":  bson.M{"raisedAmount": entry.Amount},
		"$push": bson.M{"donators": entry},
		"$set":  bson.M{"updatedAt": time.Now()},
	}
	result, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, update)
	return matchedOrNotFound(result, err, fmt.Sprintf("failed to record donation on campaign %s", id.Hex()))
}

// ReplaceDonators sets the full donor ledger and adjusts raisedAmount by
// raisedDelta in one combined update (refund path).
func (r *MongoCampaignRepo) ReplaceDonators(id primitive.ObjectID, donators []models.DonationEntry, raisedDelta float64) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	if donators == nil {
		donators = []models.DonationEntry{}
	}
	update := bson.M{
		"$set": bson.M{"donators": donators, "updatedAt": time.Now()},
		"$inc": bson.M{"raisedAmount": raisedDelta},
	}
	result, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, update)
	return matchedOrNotFound(result, err, fmt.Sprintf("failed to replace donators on campaign %s", id.Hex()))
}
