package userRepo

import (
	"errors"

	"pawhaven/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrNotFound is returned when a user id does not resolve to a document.
var ErrNotFound = errors.New("user not found")

// UserRepository defines persistence operations for users.
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id primitive.ObjectID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	UpdateSetDocument(id primitive.ObjectID, updateDoc bson.M) error
	Delete(id primitive.ObjectID) error
}
