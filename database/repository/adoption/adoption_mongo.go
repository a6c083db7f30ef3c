package adoptionRepo

import (
	"context"
	"fmt"
	"time"

	"pawhaven/database"
	"pawhaven/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoAdoptionRepo implements AdoptionRepository using MongoDB.
type MongoAdoptionRepo struct {
	coll *mongo.Collection
}

// NewMongoAdoptionRepo creates a new instance of AdoptionRepository using MongoDB.
func NewMongoAdoptionRepo() AdoptionRepository {
	coll := database.Collection("adoptionRequests")
	repo := &MongoAdoptionRepo{coll: coll}

	if err := repo.ensureIndexes(); err != nil {
		fmt.Printf("failed to create indexes: %v\n", err)
	}
	return repo
}

func newContext(timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), timeout)
}

func (r *MongoAdoptionRepo) ensureIndexes() error {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		{Keys: bson.D{{Key: "petId", Value: 1}}},
		{Keys: bson.D{{Key: "requesterEmail", Value: 1}}},
		{
			Keys:    bson.D{{Key: "petId", Value: 1}, {Key: "requesterEmail", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}
	return nil
}

// Create inserts a new adoption request document.
func (r *MongoAdoptionRepo) Create(req *models.AdoptionRequest) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	now := time.Now()
	req.CreatedAt = now
	req.UpdatedAt = now

	res, err := r.coll.InsertOne(ctx, req)
	if err != nil {
		return fmt.Errorf("failed to create adoption request: %w", err)
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		req.ID = oid
	}
	return nil
}

// GetByID retrieves an adoption request by its unique ID. Returns (nil, nil)
// when no document matches.
func (r *MongoAdoptionRepo) GetByID(id primitive.ObjectID) (*models.AdoptionRequest, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	var req models.AdoptionRequest
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&req); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch adoption request with id %s: %w", id.Hex(), err)
	}
	return &req, nil
}

func (r *MongoAdoptionRepo) findMany(query bson.M) ([]models.AdoptionRequest, error) {
	ctx, cancel := newContext(10 * time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve adoption requests: %w", err)
	}
	defer cursor.Close(ctx)

	var reqs []models.AdoptionRequest
	for cursor.Next(ctx) {
		var a models.AdoptionRequest
		if err := cursor.Decode(&a); err != nil {
			return nil, fmt.Errorf("failed to decode adoption request: %w", err)
		}
		reqs = append(reqs, a)
	}
	return reqs, nil
}

// GetByPet retrieves all adoption requests for a pet, newest first.
func (r *MongoAdoptionRepo) GetByPet(petID primitive.ObjectID) ([]models.AdoptionRequest, error) {
	return r.findMany(bson.M{"petId": petID})
}

// GetByRequester retrieves all adoption requests made by a user, newest first.
func (r *MongoAdoptionRepo) GetByRequester(email string) ([]models.AdoptionRequest, error) {
	return r.findMany(bson.M{"requesterEmail": email})
}

// ExistsForPetAndRequester reports whether the user already requested this pet.
func (r *MongoAdoptionRepo) ExistsForPetAndRequester(petID primitive.ObjectID, email string) (bool, error) {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	count, err := r.coll.CountDocuments(ctx, bson.M{"petId": petID, "requesterEmail": email})
	if err != nil {
		return false, fmt.Errorf("failed to check adoption request existence: %w", err)
	}
	return count > 0, nil
}

// UpdateStatus sets the status of an adoption request.
func (r *MongoAdoptionRepo) UpdateStatus(id primitive.ObjectID, status string) error {
	ctx, cancel := newContext(5 * time.Second)
	defer cancel()

	update := bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now()}}
	result, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return fmt.Errorf("failed to update adoption request %s: %w", id.Hex(), err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
