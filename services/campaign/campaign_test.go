package campaign_test

import (
	"context"
	"testing"

	"pawhaven/models"
	"pawhaven/services/campaign"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestCreateCampaignRejectsBadInput(t *testing.T) {
	svc := newService(newFakeRepo(), &fakeGateway{})

	_, err := svc.CreateCampaign(&models.Campaign{GoalAmount: -1})
	var validationErr campaign.ValidationError
	require.ErrorAs(t, err, &validationErr)

	fields := make(map[string]bool)
	for _, f := range validationErr.Fields {
		fields[f.Field] = true
	}
	assert.True(t, fields["title"])
	assert.True(t, fields["goalAmount"])
}

func TestCreateCampaignStartsFromZero(t *testing.T) {
	svc := newService(newFakeRepo(), &fakeGateway{})

	input := campaignFixture(1000)
	input.ID = primitive.NilObjectID
	input.RaisedAmount = 999 // must be ignored
	created, err := svc.CreateCampaign(input)
	require.NoError(t, err)

	assert.False(t, created.ID.IsZero())
	assert.Equal(t, 0.0, created.RaisedAmount)
	assert.False(t, created.Paused)
	assert.Empty(t, created.Donators)
}

func TestRefundRemovesOnlyFirstMatchingEntry(t *testing.T) {
	fixture := campaignFixture(1000)
	fixture.RaisedAmount = 300
	fixture.Donators = []models.DonationEntry{
		{Email: "dana@example.com", Amount: 100, PaymentRef: "pi_1"},
		{Email: "dana@example.com", Amount: 200, PaymentRef: "pi_2"},
	}
	repo := newFakeRepo(fixture)
	svc := newService(repo, &fakeGateway{})

	require.NoError(t, svc.Refund(fixture.ID, "dana@example.com", 100))

	updated, err := svc.GetCampaignByID(fixture.ID)
	require.NoError(t, err)
	assert.Equal(t, 200.0, updated.RaisedAmount)
	require.Len(t, updated.Donators, 1)
	assert.Equal(t, "pi_2", updated.Donators[0].PaymentRef)
}

func TestRefundUnknownDonor(t *testing.T) {
	fixture := campaignFixture(1000)
	fixture.Donators = []models.DonationEntry{{Email: "dana@example.com", Amount: 100}}
	svc := newService(newFakeRepo(fixture), &fakeGateway{})

	err := svc.Refund(fixture.ID, "stranger@example.com", 100)
	var validationErr campaign.ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestRefundUnknownCampaign(t *testing.T) {
	svc := newService(newFakeRepo(), &fakeGateway{})

	err := svc.Refund(primitive.NewObjectID(), "dana@example.com", 100)
	var notFoundErr campaign.NotFoundError
	require.ErrorAs(t, err, &notFoundErr)
}

func TestSetPausedIsIdempotent(t *testing.T) {
	fixture := campaignFixture(1000)
	repo := newFakeRepo(fixture)
	svc := newService(repo, &fakeGateway{})

	require.NoError(t, svc.SetPaused(fixture.ID, true))
	require.NoError(t, svc.SetPaused(fixture.ID, true))

	updated, err := svc.GetCampaignByID(fixture.ID)
	require.NoError(t, err)
	assert.True(t, updated.Paused)

	require.NoError(t, svc.SetPaused(fixture.ID, false))
	updated, _ = svc.GetCampaignByID(fixture.ID)
	assert.False(t, updated.Paused)
}

func TestSetPausedUnknownCampaign(t *testing.T) {
	svc := newService(newFakeRepo(), &fakeGateway{})

	err := svc.SetPaused(primitive.NewObjectID(), true)
	var notFoundErr campaign.NotFoundError
	require.ErrorAs(t, err, &notFoundErr)
}

// Donate twice, refund once: raisedAmount and the ledger stay in step.
func TestDonateTwiceThenRefund(t *testing.T) {
	fixture := campaignFixture(1000)
	repo := newFakeRepo(fixture)
	svc := newService(repo, &fakeGateway{})

	input := campaign.DonateInput{
		Amount:        250,
		PaymentMethod: "pm_card_visa",
		DonorEmail:    "dana@example.com",
		DonorName:     "Dana Donor",
	}
	for i := 0; i < 2; i++ {
		_, err := svc.Donate(context.Background(), fixture.ID, input)
		require.NoError(t, err)
	}

	mid, _ := svc.GetCampaignByID(fixture.ID)
	assert.Equal(t, 500.0, mid.RaisedAmount)
	assert.Len(t, mid.Donators, 2)

	require.NoError(t, svc.Refund(fixture.ID, "dana@example.com", 250))

	final, _ := svc.GetCampaignByID(fixture.ID)
	assert.Equal(t, 250.0, final.RaisedAmount)
	assert.Len(t, final.Donators, 1)
}

func TestGetDonatorsReturnsLedgerInOrder(t *testing.T) {
	fixture := campaignFixture(1000)
	fixture.Donators = []models.DonationEntry{
		{Email: "a@example.com", Amount: 10, PaymentRef: "pi_a"},
		{Email: "b@example.com", Amount: 20, PaymentRef: "pi_b"},
	}
	svc := newService(newFakeRepo(fixture), &fakeGateway{})

	donators, err := svc.GetDonators(fixture.ID)
	require.NoError(t, err)
	require.Len(t, donators, 2)
	assert.Equal(t, "pi_a", donators[0].PaymentRef)
	assert.Equal(t, "pi_b", donators[1].PaymentRef)
}

func TestGetCampaignStoreFailureMapsToStoreError(t *testing.T) {
	repo := newFakeRepo()
	repo.failWith = assert.AnError
	svc := newService(repo, &fakeGateway{})

	_, err := svc.GetCampaignByID(primitive.NewObjectID())
	var storeErr campaign.StoreError
	require.ErrorAs(t, err, &storeErr)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestUpdateCampaignRejectsUneditableField(t *testing.T) {
	fixture := campaignFixture(1000)
	svc := newService(newFakeRepo(fixture), &fakeGateway{})

	_, err := svc.UpdateCampaign(fixture.ID, map[string]interface{}{"raisedAmount": 9999.0})
	var validationErr campaign.ValidationError
	require.ErrorAs(t, err, &validationErr)
}

func TestUpdateCampaignAppliesPatch(t *testing.T) {
	fixture := campaignFixture(1000)
	svc := newService(newFakeRepo(fixture), &fakeGateway{})

	updated, err := svc.UpdateCampaign(fixture.ID, map[string]interface{}{
		"title":      "New roof, new hope",
		"goalAmount": 1500.0,
	})
	require.NoError(t, err)
	assert.Equal(t, "New roof, new hope", updated.Title)
	assert.Equal(t, 1500.0, updated.GoalAmount)
}
