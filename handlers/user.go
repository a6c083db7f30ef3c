package handlers

import (
	"errors"
	"net/http"

	userRepo "pawhaven/database/repository/user"
	"pawhaven/middleware"
	"pawhaven/models"
	"pawhaven/services/user"
	"pawhaven/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// UserHandler exposes the account endpoints.
type UserHandler struct {
	Service user.UserService
}

// NewUserHandler wires a user handler.
func NewUserHandler(svc user.UserService) *UserHandler {
	return &UserHandler{Service: svc}
}

// currentUserID reads the authenticated user's id set by the auth middleware.
func currentUserID(c *gin.Context) (primitive.ObjectID, bool) {
	raw, ok := c.Get("userID")
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return primitive.NilObjectID, false
	}
	idStr, _ := raw.(string)
	id, err := primitive.ObjectIDFromHex(idStr)
	if err != nil {
		utils.GetLogger().Error("Invalid user id in context", zap.String("userID", idStr))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid session"})
		return primitive.NilObjectID, false
	}
	return id, true
}

// setSessionCookie mirrors the issued token into a cookie so browser clients
// can omit the Authorization header.
func setSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookieName, token, user.TokenTTLHours*3600, "/", "", false, true)
}

// RegisterUserHandler handles POST /users/register.
func (h *UserHandler) RegisterUserHandler(c *gin.Context) {
	var input models.User
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	resp, err := h.Service.RegisterUser(&input)
	if err != nil {
		if errors.Is(err, user.ErrEmailTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	setSessionCookie(c, resp.Token)
	c.JSON(http.StatusCreated, resp)
}

// AuthenticateUserHandler handles POST /users/login.
func (h *UserHandler) AuthenticateUserHandler(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	resp, err := h.Service.AuthenticateUser(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	setSessionCookie(c, resp.Token)
	c.JSON(http.StatusOK, resp)
}

// LogoutHandler handles POST /users/logout.
func (h *UserHandler) LogoutHandler(c *gin.Context) {
	if token, ok := c.Get("sessionToken"); ok {
		if tokenStr, ok := token.(string); ok {
			if err := h.Service.RevokeToken(tokenStr); err != nil {
				utils.GetLogger().Error("Failed to revoke session", zap.Error(err))
			}
		}
	}
	c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// GetMeHandler handles GET /users/me.
func (h *UserHandler) GetMeHandler(c *gin.Context) {
	id, ok := currentUserID(c)
	if !ok {
		return
	}
	usr, err := h.Service.GetUserByID(id)
	if err != nil {
		if errors.Is(err, userRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, usr)
}

// UpdateMeHandler handles PATCH /users/me.
func (h *UserHandler) UpdateMeHandler(c *gin.Context) {
	id, ok := currentUserID(c)
	if !ok {
		return
	}
	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	usr, err := h.Service.UpdateUser(id, updates)
	if err != nil {
		if errors.Is(err, userRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, usr)
}

// DeleteMeHandler handles DELETE /users/me.
func (h *UserHandler) DeleteMeHandler(c *gin.Context) {
	id, ok := currentUserID(c)
	if !ok {
		return
	}
	if err := h.Service.DeleteUser(id); err != nil {
		if errors.Is(err, userRepo.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "Account deleted"})
}
