package adoptionRepo

import (
	"errors"

	"pawhaven/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrNotFound is returned when an adoption request id does not resolve.
var ErrNotFound = errors.New("adoption request not found")

// AdoptionRepository defines persistence operations for adoption requests.
type AdoptionRepository interface {
	Create(req *models.AdoptionRequest) error
	GetByID(id primitive.ObjectID) (*models.AdoptionRequest, error)
	GetByPet(petID primitive.ObjectID) ([]models.AdoptionRequest, error)
	GetByRequester(email string) ([]models.AdoptionRequest, error)
	ExistsForPetAndRequester(petID primitive.ObjectID, email string) (bool, error)
	UpdateStatus(id primitive.ObjectID, status string) error
}
