package petRepo

import (
	"errors"

	"pawhaven/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrNotFound is returned when a pet id does not resolve to a document.
var ErrNotFound = errors.New("pet not found")

// PetFilter narrows pet listings.
type PetFilter struct {
	Category string
	Adopted  *bool
}

// PetRepository defines persistence operations for pets.
type PetRepository interface {
	Create(pet *models.Pet) error
	GetByID(id primitive.ObjectID) (*models.Pet, error)
	GetPage(filter PetFilter, skip, limit int64) ([]models.Pet, int64, error)
	UpdateSetDocument(id primitive.ObjectID, updateDoc bson.M) error
	Delete(id primitive.ObjectID) error
}
