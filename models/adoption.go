package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Adoption request statuses.
const (
	AdoptionPending  = "pending"
	AdoptionApproved = "approved"
	AdoptionRejected = "rejected"
)

// AdoptionRequest records one user's request to adopt a pet.
type AdoptionRequest struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Reference      string             `bson:"reference" json:"reference"` // human-facing request code
	PetID          primitive.ObjectID `bson:"petId" json:"petId"`
	PetName        string             `bson:"petName" json:"petName"`
	RequesterEmail string             `bson:"requesterEmail" json:"requesterEmail"`
	RequesterName  string             `bson:"requesterName" json:"requesterName"`
	PhoneNumber    string             `bson:"phoneNumber" json:"phoneNumber"`
	Address        string             `bson:"address" json:"address"`
	Status         string             `bson:"status" json:"status"`
	CreatedAt      time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time          `bson:"updatedAt" json:"updatedAt"`
}
