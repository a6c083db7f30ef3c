package pet

import (
	"errors"
	"fmt"
	"time"

	petRepo "pawhaven/database/repository/pet"
	"pawhaven/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrNotFound mirrors the repository sentinel for handler mapping.
var ErrNotFound = petRepo.ErrNotFound

// PetService manages adoption listings.
type PetService interface {
	CreatePet(input *models.Pet) (*models.Pet, error)
	GetPetByID(id primitive.ObjectID) (*models.Pet, error)
	ListPets(filter petRepo.PetFilter, page, limit int64) ([]models.Pet, int64, error)
	UpdatePet(id primitive.ObjectID, updates map[string]interface{}) (*models.Pet, error)
	MarkAdopted(id primitive.ObjectID) error
	DeletePet(id primitive.ObjectID) error
}

// DefaultPetService is the production implementation.
type DefaultPetService struct {
	Repo petRepo.PetRepository
}

// CreatePet validates and stores a new listing.
func (s *DefaultPetService) CreatePet(input *models.Pet) (*models.Pet, error) {
	if input.Name == "" || input.Category == "" {
		return nil, fmt.Errorf("name and category are required")
	}
	input.ID = primitive.NilObjectID
	input.Adopted = false
	if err := s.Repo.Create(input); err != nil {
		return nil, err
	}
	return input, nil
}

// GetPetByID fetches a single listing.
func (s *DefaultPetService) GetPetByID(id primitive.ObjectID) (*models.Pet, error) {
	p, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrNotFound
	}
	return p, nil
}

// ListPets returns one page of listings plus the total matching count.
func (s *DefaultPetService) ListPets(filter petRepo.PetFilter, page, limit int64) ([]models.Pet, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	return s.Repo.GetPage(filter, (page-1)*limit, limit)
}

var editableFields = map[string]bool{
	"name":             true,
	"age":              true,
	"category":         true,
	"location":         true,
	"shortDescription": true,
	"longDescription":  true,
	"imageUrl":         true,
}

// UpdatePet applies allowed listing updates and returns the updated pet.
func (s *DefaultPetService) UpdatePet(id primitive.ObjectID, updates map[string]interface{}) (*models.Pet, error) {
	updateDoc := bson.M{}
	for field, value := range updates {
		if !editableFields[field] {
			continue
		}
		if v, ok := value.(string); ok && v != "" {
			updateDoc[field] = v
		}
	}
	if len(updateDoc) == 0 {
		return nil, fmt.Errorf("no editable fields provided")
	}
	updateDoc["updatedAt"] = time.Now()

	if err := s.Repo.UpdateSetDocument(id, updateDoc); err != nil {
		return nil, err
	}
	return s.GetPetByID(id)
}

// MarkAdopted flags a pet as adopted. Idempotent.
func (s *DefaultPetService) MarkAdopted(id primitive.ObjectID) error {
	return s.Repo.UpdateSetDocument(id, bson.M{"adopted": true, "updatedAt": time.Now()})
}

// DeletePet removes a listing.
func (s *DefaultPetService) DeletePet(id primitive.ObjectID) error {
	err := s.Repo.Delete(id)
	if errors.Is(err, petRepo.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
