package campaign_test

import (
	"testing"

	"pawhaven/models"
	"pawhaven/services/campaign"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateCreateCollectsAllErrors(t *testing.T) {
	errs := campaign.ValidateCreate(&models.Campaign{})
	require.NotEmpty(t, errs)

	fields := make(map[string]bool)
	for _, e := range errs {
		fields[e.Field] = true
	}
	for _, want := range []string{"title", "shortDescription", "longDescription", "goalAmount", "userEmail"} {
		assert.True(t, fields[want], "expected error for %s", want)
	}
}

func TestValidateCreatePassesCompleteCampaign(t *testing.T) {
	c := &models.Campaign{
		UserEmail:        "owner@example.com",
		Title:            "Vet bills for Biscuit",
		ShortDescription: "Emergency surgery",
		LongDescription:  "Biscuit swallowed a sock and needs surgery.",
		GoalAmount:       750,
	}
	assert.Empty(t, campaign.ValidateCreate(c))
}

func TestValidateUpdatesRejectsUnknownAndBadValues(t *testing.T) {
	errs := campaign.ValidateUpdates(map[string]interface{}{
		"raisedAmount": 100.0,
		"goalAmount":   -5.0,
		"title":        "",
	})
	require.Len(t, errs, 3)
}

func TestValidateUpdatesRejectsEmptyPatch(t *testing.T) {
	errs := campaign.ValidateUpdates(map[string]interface{}{})
	require.Len(t, errs, 1)
	assert.Equal(t, "body", errs[0].Field)
}

func TestValidateDonation(t *testing.T) {
	assert.Empty(t, campaign.ValidateDonation(campaign.DonateInput{
		Amount:        10,
		PaymentMethod: "pm_card_visa",
		DonorEmail:    "donor@example.com",
	}))

	errs := campaign.ValidateDonation(campaign.DonateInput{Amount: -1})
	fields := make(map[string]bool)
	for _, e := range errs {
		fields[e.Field] = true
	}
	assert.True(t, fields["amount"])
	assert.True(t, fields["paymentMethod"])
	assert.True(t, fields["donorEmail"])
}
