package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Pet is an animal listed for adoption.
type Pet struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name             string             `bson:"name" json:"name"`
	Age              string             `bson:"age" json:"age"`
	Category         string             `bson:"category" json:"category"` // e.g. "dog", "cat", "rabbit"
	Location         string             `bson:"location" json:"location"`
	ShortDescription string             `bson:"shortDescription" json:"shortDescription"`
	LongDescription  string             `bson:"longDescription" json:"longDescription"`
	ImageURL         string             `bson:"imageUrl" json:"imageUrl"`
	Adopted          bool               `bson:"adopted" json:"adopted"`
	UserEmail        string             `bson:"userEmail" json:"userEmail"` // lister, back-reference only
	CreatedAt        time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time          `bson:"updatedAt" json:"updatedAt"`
}
