package campaignRepo

import (
	"fmt"
	"time"

	"pawhaven/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetPage retrieves one page of campaigns (newest first) plus the total count.
func (r *MongoCampaignRepo) GetPage(skip, limit int64) ([]models.Campaign, int64, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	total, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count campaigns: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(skip).
		SetLimit(limit)

	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to retrieve campaigns: %w", err)
	}
	defer cursor.Close(ctx)

	var campaigns []models.Campaign
	for cursor.Next(ctx) {
		var c models.Campaign
		if err := cursor.Decode(&c); err != nil {
			return nil, 0, fmt.Errorf("failed to decode campaign: %w", err)
		}
		campaigns = append(campaigns, c)
	}
	return campaigns, total, nil
}

// RandomSample returns up to n randomly chosen unpaused campaigns excluding
// the given id, using a $match + $sample aggregation.
func (r *MongoCampaignRepo) RandomSample(exclude primitive.ObjectID, n int64) ([]models.Campaign, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"paused": false,
			"_id":    bson.M{"$ne": exclude},
		}}},
		{{Key: "$sample", Value: bson.M{"size": n}}},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("failed to sample campaigns: %w", err)
	}
	defer cursor.Close(ctx)

	var campaigns []models.Campaign
	for cursor.Next(ctx) {
		var c models.Campaign
		if err := cursor.Decode(&c); err != nil {
			return nil, fmt.Errorf("failed to decode sampled campaign: %w", err)
		}
		campaigns = append(campaigns, c)
	}
	return campaigns, nil
}
