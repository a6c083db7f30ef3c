package user

import (
	"fmt"
	"time"

	userRepo "pawhaven/database/repository/user"
	"pawhaven/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GetUserByID fetches a user profile.
func (s *DefaultUserService) GetUserByID(id primitive.ObjectID) (*models.User, error) {
	userRec, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if userRec == nil {
		return nil, userRepo.ErrNotFound
	}
	return userRec, nil
}

// editable profile fields for PATCH updates.
var editableFields = map[string]bool{
	"name":         true,
	"phoneNumber":  true,
	"address":      true,
	"profileImage": true,
}

// UpdateUser applies allowed profile updates and returns the updated user.
func (s *DefaultUserService) UpdateUser(id primitive.ObjectID, updates map[string]interface{}) (*models.User, error) {
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
	return s.GetUserByID(id)
}

// DeleteUser removes an account.
func (s *DefaultUserService) DeleteUser(id primitive.ObjectID) error {
	return s.Repo.Delete(id)
}
