package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DonationEntry is one recorded donation against a campaign. Entries are
// embedded in the campaign document in insertion (chronological) order.
// The same email may appear more than once.
type DonationEntry struct {
	Email      string    `bson:"email" json:"email"`
	Name       string    `bson:"name" json:"name"`
	Amount     float64   `bson:"amount" json:"amount"`
	PaymentRef string    `bson:"paymentRef" json:"paymentRef"`
	DonatedAt  time.Time `bson:"donatedAt" json:"donatedAt"`
}

// Campaign is a fundraising effort with a goal amount and a running total.
// RaisedAmount tracks sum(donators[].amount) best-effort; the donate and
// refund paths adjust both in a single document update.
type Campaign struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserEmail        string             `bson:"userEmail" json:"userEmail"` // owning user, back-reference only
	Title            string             `bson:"title" json:"title"`
	ShortDescription string             `bson:"shortDescription" json:"shortDescription"`
	LongDescription  string             `bson:"longDescription" json:"longDescription"`
	GoalAmount       float64            `bson:"goalAmount" json:"goalAmount"`
	RaisedAmount     float64            `bson:"raisedAmount" json:"raisedAmount"`
	Paused           bool               `bson:"paused" json:"paused"`
	Donators         []DonationEntry    `bson:"donators" json:"donators"`
	LastDate         string             `bson:"lastDate" json:"lastDate"` // informational deadline, not enforced
	CreatedAt        time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time          `bson:"updatedAt" json:"updatedAt"`
}
