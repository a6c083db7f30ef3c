package handlers

import (
	"errors"
	"net/http"

	"pawhaven/models"
	"pawhaven/services/adoption"
	"pawhaven/services/pet"
	"pawhaven/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AdoptionHandler exposes the adoption request endpoints.
type AdoptionHandler struct {
	Service adoption.AdoptionService
}

// NewAdoptionHandler wires an adoption handler.
func NewAdoptionHandler(svc adoption.AdoptionService) *AdoptionHandler {
	return &AdoptionHandler{Service: svc}
}

func respondAdoptionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, adoption.ErrNotFound), errors.Is(err, pet.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, adoption.ErrAlreadyRequested), errors.Is(err, adoption.ErrAlreadyAdopted):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// RequestAdoptionHandler handles POST /adoptions/add.
func (h *AdoptionHandler) RequestAdoptionHandler(c *gin.Context) {
	var input models.AdoptionRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if email, ok := c.Get("userEmail"); ok {
		input.RequesterEmail, _ = email.(string)
	}
	if input.PetID.IsZero() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "petId is required"})
		return
	}

	created, err := h.Service.RequestAdoption(&input)
	if err != nil {
		respondAdoptionError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetRequestsForPetHandler handles GET /adoptions/pet/:id.
func (h *AdoptionHandler) GetRequestsForPetHandler(c *gin.Context) {
	petID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid pet id", c.Param("id"))
		return
	}
	reqs, err := h.Service.GetRequestsForPet(petID)
	if err != nil {
		respondAdoptionError(c, err)
		return
	}
	if reqs == nil {
		reqs = []models.AdoptionRequest{}
	}
	c.JSON(http.StatusOK, reqs)
}

// GetMyRequestsHandler handles GET /adoptions/mine.
func (h *AdoptionHandler) GetMyRequestsHandler(c *gin.Context) {
	email, _ := c.Get("userEmail")
	emailStr, _ := email.(string)
	if emailStr == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return
	}
	reqs, err := h.Service.GetRequestsByUser(emailStr)
	if err != nil {
		respondAdoptionError(c, err)
		return
	}
	if reqs == nil {
		reqs = []models.AdoptionRequest{}
	}
	c.JSON(http.StatusOK, reqs)
}

// SetStatusHandler handles PATCH /adoptions/status/:id.
func (h *AdoptionHandler) SetStatusHandler(c *gin.Context) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid adoption request id", c.Param("id"))
		return
	}
	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	updated, err := h.Service.SetStatus(id, req.Status)
	if err != nil {
		if errors.Is(err, adoption.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}
