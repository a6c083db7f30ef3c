package adoption

import (
	"errors"
	"fmt"

	adoptionRepo "pawhaven/database/repository/adoption"
	"pawhaven/models"
	"pawhaven/services/pet"
	"pawhaven/utils"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

var (
	// ErrNotFound mirrors the repository sentinel for handler mapping.
	ErrNotFound = adoptionRepo.ErrNotFound
	// ErrAlreadyRequested is returned on a duplicate request for the same pet.
	ErrAlreadyRequested = errors.New("you have already requested to adopt this pet")
	// ErrAlreadyAdopted is returned when the pet has been adopted.
	ErrAlreadyAdopted = errors.New("this pet has already been adopted")
)

// AdoptionService manages adoption requests.
type AdoptionService interface {
	RequestAdoption(input *models.AdoptionRequest) (*models.AdoptionRequest, error)
	GetRequestsForPet(petID primitive.ObjectID) ([]models.AdoptionRequest, error)
	GetRequestsByUser(email string) ([]models.AdoptionRequest, error)
	SetStatus(id primitive.ObjectID, status string) (*models.AdoptionRequest, error)
}

// DefaultAdoptionService is the production implementation.
type DefaultAdoptionService struct {
	Repo       adoptionRepo.AdoptionRepository
	PetService pet.PetService
}

// RequestAdoption records a pending adoption request for a pet. One request
// per user and pet.
func (s *DefaultAdoptionService) RequestAdoption(input *models.AdoptionRequest) (*models.AdoptionRequest, error) {
	if input.RequesterEmail == "" || input.PetID.IsZero() {
		return nil, fmt.Errorf("petId and requesterEmail are required")
	}

	petRec, err := s.PetService.GetPetByID(input.PetID)
	if err != nil {
		return nil, err
	}
	if petRec.Adopted {
		return nil, ErrAlreadyAdopted
	}

	exists, err := s.Repo.ExistsForPetAndRequester(input.PetID, input.RequesterEmail)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrAlreadyRequested
	}

	input.ID = primitive.NilObjectID
	input.Reference = uuid.New().String()
	input.PetName = petRec.Name
	input.Status = models.AdoptionPending

	if err := s.Repo.Create(input); err != nil {
		return nil, err
	}
	return input, nil
}

// GetRequestsForPet lists all requests against a pet.
func (s *DefaultAdoptionService) GetRequestsForPet(petID primitive.ObjectID) ([]models.AdoptionRequest, error) {
	return s.Repo.GetByPet(petID)
}

// GetRequestsByUser lists a requester's own requests.
func (s *DefaultAdoptionService) GetRequestsByUser(email string) ([]models.AdoptionRequest, error) {
	return s.Repo.GetByRequester(email)
}

// SetStatus approves or rejects a request. Approval marks the pet adopted;
// the two writes are independent, so a failed pet update is logged and the
// approval stands.
func (s *DefaultAdoptionService) SetStatus(id primitive.ObjectID, status string) (*models.AdoptionRequest, error) {
	if status != models.AdoptionApproved && status != models.AdoptionRejected {
		return nil, fmt.Errorf("status must be %q or %q", models.AdoptionApproved, models.AdoptionRejected)
	}

	req, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, ErrNotFound
	}

	if err := s.Repo.UpdateStatus(id, status); err != nil {
		return nil, err
	}
	req.Status = status

	if status == models.AdoptionApproved {
		if err := s.PetService.MarkAdopted(req.PetID); err != nil {
			utils.GetLogger().Error("Failed to mark pet adopted after approval",
				zap.String("request", id.Hex()),
				zap.String("pet", req.PetID.Hex()),
				zap.Error(err),
			)
		}
	}
	return req, nil
}
