package campaign_test

import (
	"context"

	campaignRepo "pawhaven/database/repository/campaign"
	"pawhaven/models"
	"pawhaven/services/campaign"
	"pawhaven/services/payment"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ---- in-memory CampaignRepository ------------------------------------------

type fakeRepo struct {
	campaigns map[primitive.ObjectID]*models.Campaign
	order     []primitive.ObjectID

	// appendNotFound simulates the campaign disappearing between payment
	// capture and the ledger update.
	appendNotFound bool
	failWith       error
}

var _ campaignRepo.CampaignRepository = (*fakeRepo)(nil)

func newFakeRepo(campaigns ...*models.Campaign) *fakeRepo {
	r := &fakeRepo{campaigns: make(map[primitive.ObjectID]*models.Campaign)}
	for _, c := range campaigns {
		if c.ID.IsZero() {
			c.ID = primitive.NewObjectID()
		}
		r.campaigns[c.ID] = c
		r.order = append(r.order, c.ID)
	}
	return r
}

func (r *fakeRepo) Create(c *models.Campaign) error {
	if r.failWith != nil {
		return r.failWith
	}
	if c.ID.IsZero() {
		c.ID = primitive.NewObjectID()
	}
	r.campaigns[c.ID] = c
	r.order = append(r.order, c.ID)
	return nil
}

func (r *fakeRepo) GetByID(id primitive.ObjectID) (*models.Campaign, error) {
	if r.failWith != nil {
		return nil, r.failWith
	}
	c, ok := r.campaigns[id]
	if !ok {
		return nil, nil
	}
	copied := *c
	copied.Donators = append([]models.DonationEntry(nil), c.Donators...)
	return &copied, nil
}

func (r *fakeRepo) GetPage(skip, limit int64) ([]models.Campaign, int64, error) {
	var out []models.Campaign
	for i, id := range r.order {
		if int64(i) < skip {
			continue
		}
		if int64(len(out)) >= limit {
			break
		}
		out = append(out, *r.campaigns[id])
	}
	return out, int64(len(r.order)), nil
}

func (r *fakeRepo) UpdateSetDocument(id primitive.ObjectID, updateDoc bson.M) error {
	c, ok := r.campaigns[id]
	if !ok {
		return campaignRepo.ErrNotFound
	}
	for field, value := range updateDoc {
		switch field {
		case "paused":
			c.Paused = value.(bool)
		case "title":
			c.Title = value.(string)
		case "shortDescription":
			c.ShortDescription = value.(string)
		case "longDescription":
			c.LongDescription = value.(string)
		case "goalAmount":
			c.GoalAmount = value.(float64)
		case "lastDate":
			c.LastDate = value.(string)
		}
	}
	return nil
}

func (r *fakeRepo) Delete(id primitive.ObjectID) error {
	if _, ok := r.campaigns[id]; !ok {
		return campaignRepo.ErrNotFound
	}
	delete(r.campaigns, id)
	for i, oid := range r.order {
		if oid == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *fakeRepo) AppendDonation(id primitive.ObjectID, entry models.DonationEntry) error {
	if r.appendNotFound {
		return campaignRepo.ErrNotFound
	}
	c, ok := r.campaigns[id]
	if !ok {
		return campaignRepo.ErrNotFound
	}
	c.RaisedAmount += entry.Amount
	c.Donators = append(c.Donators, entry)
	return nil
}

func (r *fakeRepo) ReplaceDonators(id primitive.ObjectID, donators []models.DonationEntry, raisedDelta float64) error {
	c, ok := r.campaigns[id]
	if !ok {
		return campaignRepo.ErrNotFound
	}
	c.Donators = donators
	c.RaisedAmount += raisedDelta
	return nil
}

func (r *fakeRepo) RandomSample(exclude primitive.ObjectID, n int64) ([]models.Campaign, error) {
	var out []models.Campaign
	for _, id := range r.order {
		c := r.campaigns[id]
		if c.Paused || c.ID == exclude {
			continue
		}
		if int64(len(out)) >= n {
			break
		}
		out = append(out, *c)
	}
	return out, nil
}

// ---- fake payment gateway ---------------------------------------------------

type fakeGateway struct {
	calls []payment.IntentRequest
	err   error
}

var _ payment.Gateway = (*fakeGateway)(nil)

func (g *fakeGateway) CreatePaymentIntent(_ context.Context, req payment.IntentRequest) (*payment.Confirmation, error) {
	g.calls = append(g.calls, req)
	if g.err != nil {
		return nil, g.err
	}
	return &payment.Confirmation{
		IntentID:     "pi_test_123",
		ClientSecret: "pi_test_123_secret",
		Status:       "succeeded",
	}, nil
}

// ---- fixtures ---------------------------------------------------------------

func campaignFixture(goal float64) *models.Campaign {
	return &models.Campaign{
		ID:               primitive.NewObjectID(),
		UserEmail:        "owner@example.com",
		Title:            "Shelter roof repair",
		ShortDescription: "Fix the kennel roof before winter",
		LongDescription:  "The main kennel roof leaks and needs replacing.",
		GoalAmount:       goal,
		Donators:         []models.DonationEntry{},
	}
}

func newService(repo *fakeRepo, gw *fakeGateway) *campaign.DefaultCampaignService {
	return &campaign.DefaultCampaignService{Repo: repo, Gateway: gw, Currency: "usd"}
}
