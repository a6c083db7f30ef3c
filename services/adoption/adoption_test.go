package adoption_test

import (
	"testing"

	adoptionRepo "pawhaven/database/repository/adoption"
	petRepo "pawhaven/database/repository/pet"
	"pawhaven/models"
	"pawhaven/services/adoption"
	"pawhaven/services/pet"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ---- fakes -----------------------------------------------------------------

type fakeAdoptionRepo struct {
	requests map[primitive.ObjectID]*models.AdoptionRequest
}

var _ adoptionRepo.AdoptionRepository = (*fakeAdoptionRepo)(nil)

func newFakeAdoptionRepo() *fakeAdoptionRepo {
	return &fakeAdoptionRepo{requests: make(map[primitive.ObjectID]*models.AdoptionRequest)}
}

func (r *fakeAdoptionRepo) Create(req *models.AdoptionRequest) error {
	req.ID = primitive.NewObjectID()
	r.requests[req.ID] = req
	return nil
}

func (r *fakeAdoptionRepo) GetByID(id primitive.ObjectID) (*models.AdoptionRequest, error) {
	req, ok := r.requests[id]
	if !ok {
		return nil, nil
	}
	copied := *req
	return &copied, nil
}

func (r *fakeAdoptionRepo) GetByPet(petID primitive.ObjectID) ([]models.AdoptionRequest, error) {
	var out []models.AdoptionRequest
	for _, req := range r.requests {
		if req.PetID == petID {
			out = append(out, *req)
		}
	}
	return out, nil
}

func (r *fakeAdoptionRepo) GetByRequester(email string) ([]models.AdoptionRequest, error) {
	var out []models.AdoptionRequest
	for _, req := range r.requests {
		if req.RequesterEmail == email {
			out = append(out, *req)
		}
	}
	return out, nil
}

func (r *fakeAdoptionRepo) ExistsForPetAndRequester(petID primitive.ObjectID, email string) (bool, error) {
	for _, req := range r.requests {
		if req.PetID == petID && req.RequesterEmail == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeAdoptionRepo) UpdateStatus(id primitive.ObjectID, status string) error {
	req, ok := r.requests[id]
	if !ok {
		return adoptionRepo.ErrNotFound
	}
	req.Status = status
	return nil
}

type fakePetService struct {
	pets    map[primitive.ObjectID]*models.Pet
	adopted []primitive.ObjectID
}

var _ pet.PetService = (*fakePetService)(nil)

func newFakePetService(pets ...*models.Pet) *fakePetService {
	s := &fakePetService{pets: make(map[primitive.ObjectID]*models.Pet)}
	for _, p := range pets {
		if p.ID.IsZero() {
			p.ID = primitive.NewObjectID()
		}
		s.pets[p.ID] = p
	}
	return s
}

func (s *fakePetService) CreatePet(input *models.Pet) (*models.Pet, error) { return input, nil }

func (s *fakePetService) GetPetByID(id primitive.ObjectID) (*models.Pet, error) {
	p, ok := s.pets[id]
	if !ok {
		return nil, pet.ErrNotFound
	}
	return p, nil
}

func (s *fakePetService) ListPets(filter petRepo.PetFilter, page, limit int64) ([]models.Pet, int64, error) {
	return nil, 0, nil
}

func (s *fakePetService) UpdatePet(id primitive.ObjectID, updates map[string]interface{}) (*models.Pet, error) {
	return s.GetPetByID(id)
}

func (s *fakePetService) MarkAdopted(id primitive.ObjectID) error {
	s.adopted = append(s.adopted, id)
	if p, ok := s.pets[id]; ok {
		p.Adopted = true
	}
	return nil
}

func (s *fakePetService) DeletePet(id primitive.ObjectID) error { return nil }

// ---- tests -----------------------------------------------------------------

func petFixture() *models.Pet {
	return &models.Pet{
		ID:       primitive.NewObjectID(),
		Name:     "Biscuit",
		Category: "dog",
	}
}

func TestRequestAdoptionCreatesPendingRequest(t *testing.T) {
	p := petFixture()
	svc := &adoption.DefaultAdoptionService{
		Repo:       newFakeAdoptionRepo(),
		PetService: newFakePetService(p),
	}

	created, err := svc.RequestAdoption(&models.AdoptionRequest{
		PetID:          p.ID,
		RequesterEmail: "adopter@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, models.AdoptionPending, created.Status)
	assert.Equal(t, "Biscuit", created.PetName)
	assert.NotEmpty(t, created.Reference)
}

func TestRequestAdoptionRejectsDuplicate(t *testing.T) {
	p := petFixture()
	svc := &adoption.DefaultAdoptionService{
		Repo:       newFakeAdoptionRepo(),
		PetService: newFakePetService(p),
	}

	input := &models.AdoptionRequest{PetID: p.ID, RequesterEmail: "adopter@example.com"}
	_, err := svc.RequestAdoption(input)
	require.NoError(t, err)

	_, err = svc.RequestAdoption(&models.AdoptionRequest{PetID: p.ID, RequesterEmail: "adopter@example.com"})
	assert.ErrorIs(t, err, adoption.ErrAlreadyRequested)
}

func TestRequestAdoptionRejectsAdoptedPet(t *testing.T) {
	p := petFixture()
	p.Adopted = true
	svc := &adoption.DefaultAdoptionService{
		Repo:       newFakeAdoptionRepo(),
		PetService: newFakePetService(p),
	}

	_, err := svc.RequestAdoption(&models.AdoptionRequest{PetID: p.ID, RequesterEmail: "adopter@example.com"})
	assert.ErrorIs(t, err, adoption.ErrAlreadyAdopted)
}

func TestApproveMarksPetAdopted(t *testing.T) {
	p := petFixture()
	pets := newFakePetService(p)
	repo := newFakeAdoptionRepo()
	svc := &adoption.DefaultAdoptionService{Repo: repo, PetService: pets}

	created, err := svc.RequestAdoption(&models.AdoptionRequest{PetID: p.ID, RequesterEmail: "adopter@example.com"})
	require.NoError(t, err)

	updated, err := svc.SetStatus(created.ID, models.AdoptionApproved)
	require.NoError(t, err)
	assert.Equal(t, models.AdoptionApproved, updated.Status)
	require.Len(t, pets.adopted, 1)
	assert.Equal(t, p.ID, pets.adopted[0])
}

func TestRejectLeavesPetAvailable(t *testing.T) {
	p := petFixture()
	pets := newFakePetService(p)
	svc := &adoption.DefaultAdoptionService{Repo: newFakeAdoptionRepo(), PetService: pets}

	created, err := svc.RequestAdoption(&models.AdoptionRequest{PetID: p.ID, RequesterEmail: "adopter@example.com"})
	require.NoError(t, err)

	updated, err := svc.SetStatus(created.ID, models.AdoptionRejected)
	require.NoError(t, err)
	assert.Equal(t, models.AdoptionRejected, updated.Status)
	assert.Empty(t, pets.adopted)
}

func TestSetStatusRejectsUnknownStatus(t *testing.T) {
	svc := &adoption.DefaultAdoptionService{Repo: newFakeAdoptionRepo(), PetService: newFakePetService()}

	_, err := svc.SetStatus(primitive.NewObjectID(), "maybe")
	assert.Error(t, err)
}
