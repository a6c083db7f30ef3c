package user

import (
	"fmt"
	"time"

	"pawhaven/models"
	"pawhaven/utils"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// RegisterUser creates an account and issues a session token.
func (s *DefaultUserService) RegisterUser(input *models.User) (*AuthResponse, error) {
	if input.Email == "" || input.Password == "" || input.Name == "" {
		return nil, fmt.Errorf("name, email and password are required")
	}

	existing, err := s.Repo.GetByEmail(input.Email)
	if err != nil {
		return nil, fmt.Errorf("registration failed: %w", err)
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	input.PasswordHash = string(hash)
	input.Password = ""
	if input.Role == "" {
		input.Role = "user"
	}

	if err := s.Repo.Create(input); err != nil {
		return nil, fmt.Errorf("registration failed: %w", err)
	}

	return s.issueToken(input)
}

// AuthenticateUser verifies credentials and issues a session token.
func (s *DefaultUserService) AuthenticateUser(email, password string) (*AuthResponse, error) {
	userRec, err := s.Repo.GetByEmail(email)
	if err != nil {
		utils.GetLogger().Error("AuthenticateUser: failed to fetch user", zap.Error(err))
		return nil, fmt.Errorf("authentication failed, please try again")
	}
	if userRec == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userRec.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return s.issueToken(userRec)
}

// RevokeToken drops the Redis session for a token (logout).
func (s *DefaultUserService) RevokeToken(token string) error {
	return utils.DropSession(utils.GetSessionCacheClient(), utils.HashToken(token))
}

// issueToken signs a JWT for the user and records the session in Redis so
// the auth middleware can reject revoked tokens.
func (s *DefaultUserService) issueToken(userRec *models.User) (*AuthResponse, error) {
	ttl := TokenTTLHours * time.Hour
	token, err := utils.GenerateToken(userRec.ID.Hex(), userRec.Email, ttl)
	if err != nil {
		return nil, fmt.Errorf("failed to sign token: %w", err)
	}
	if err := utils.SaveSession(utils.GetSessionCacheClient(), utils.HashToken(token), userRec.ID.Hex(), ttl); err != nil {
		return nil, err
	}
	return &AuthResponse{User: userRec, Token: token}, nil
}
