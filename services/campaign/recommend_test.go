package campaign_test

import (
	"testing"

	"pawhaven/models"
	"pawhaven/services/campaign"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecommendExcludesSelfAndPaused(t *testing.T) {
	self := campaignFixture(1000)
	paused := campaignFixture(500)
	paused.Paused = true
	others := []*models.Campaign{campaignFixture(100), campaignFixture(200), campaignFixture(300), campaignFixture(400)}

	repo := newFakeRepo(append([]*models.Campaign{self, paused}, others...)...)
	svc := newService(repo, &fakeGateway{})

	recommended, err := svc.Recommend(self.ID, 3)
	require.NoError(t, err)
	assert.LessOrEqual(t, len(recommended), 3)
	for _, c := range recommended {
		assert.NotEqual(t, self.ID, c.ID)
		assert.False(t, c.Paused)
	}
}

func TestRecommendReturnsFewerWhenShort(t *testing.T) {
	self := campaignFixture(1000)
	other := campaignFixture(500)
	svc := newService(newFakeRepo(self, other), &fakeGateway{})

	recommended, err := svc.Recommend(self.ID, 3)
	require.NoError(t, err)
	require.Len(t, recommended, 1)
	assert.Equal(t, other.ID, recommended[0].ID)
}

func TestRecommendNoneEligible(t *testing.T) {
	self := campaignFixture(1000)
	paused := campaignFixture(500)
	paused.Paused = true
	svc := newService(newFakeRepo(self, paused), &fakeGateway{})

	_, err := svc.Recommend(self.ID, 3)
	var notFoundErr campaign.NotFoundError
	require.ErrorAs(t, err, &notFoundErr)
}

func TestRecommendDefaultsSampleSize(t *testing.T) {
	self := campaignFixture(1000)
	others := []*models.Campaign{campaignFixture(100), campaignFixture(200), campaignFixture(300), campaignFixture(400)}
	svc := newService(newFakeRepo(append([]*models.Campaign{self}, others...)...), &fakeGateway{})

	recommended, err := svc.Recommend(self.ID, 0)
	require.NoError(t, err)
	assert.Len(t, recommended, campaign.DefaultSampleSize)
}
