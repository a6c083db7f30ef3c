package campaign

import (
	"pawhaven/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DefaultSampleSize is the number of campaigns the recommendation endpoint
// returns when the caller does not ask for a specific count.
const DefaultSampleSize = 3

// Recommend returns a uniform random sample of unpaused campaigns,
// excluding the given id. Fewer than sampleSize eligible campaigns yields
// as many as exist; zero yields not-found.
func (s *DefaultCampaignService) Recommend(exclude primitive.ObjectID, sampleSize int64) ([]models.Campaign, error) {
	if sampleSize < 1 {
		sampleSize = DefaultSampleSize
	}
	campaigns, err := s.Repo.RandomSample(exclude, sampleSize)
	if err != nil {
		return nil, StoreError{Err: err}
	}
	if len(campaigns) == 0 {
		return nil, NotFoundError{Msg: "no eligible campaigns to recommend"}
	}
	return campaigns, nil
}
