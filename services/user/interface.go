package user

import (
	"errors"

	userRepo "pawhaven/database/repository/user"
	"pawhaven/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TokenTTLHours is the lifetime of issued session tokens.
const TokenTTLHours = 24

var (
	// ErrInvalidCredentials hides whether the email or the password was wrong.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrEmailTaken is returned when registering an already-used email.
	ErrEmailTaken = errors.New("an account with this email already exists")
)

// AuthResponse is returned on successful registration or login.
type AuthResponse struct {
	User  *models.User `json:"user"`
	Token string       `json:"token"`
}

// UserService manages accounts and login sessions.
type UserService interface {
	RegisterUser(input *models.User) (*AuthResponse, error)
	AuthenticateUser(email, password string) (*AuthResponse, error)
	RevokeToken(token string) error
	GetUserByID(id primitive.ObjectID) (*models.User, error)
	UpdateUser(id primitive.ObjectID, updates map[string]interface{}) (*models.User, error)
	DeleteUser(id primitive.ObjectID) error
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}
