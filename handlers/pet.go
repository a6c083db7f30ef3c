package handlers

import (
	"errors"
	"net/http"
	"strconv"

	petRepo "pawhaven/database/repository/pet"
	"pawhaven/models"
	"pawhaven/services/pet"
	"pawhaven/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PetHandler exposes the adoption listing endpoints.
type PetHandler struct {
	Service pet.PetService
}

// NewPetHandler wires a pet handler.
func NewPetHandler(svc pet.PetService) *PetHandler {
	return &PetHandler{Service: svc}
}

func parsePetID(c *gin.Context) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid pet id", c.Param("id"))
		return primitive.NilObjectID, false
	}
	return id, true
}

func respondPetError(c *gin.Context, err error) {
	if errors.Is(err, pet.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

// CreatePetHandler handles POST /pets/add.
func (h *PetHandler) CreatePetHandler(c *gin.Context) {
	var input models.Pet
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if email, ok := c.Get("userEmail"); ok {
		input.UserEmail, _ = email.(string)
	}

	created, err := h.Service.CreatePet(&input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// ListPetsHandler handles GET /pets?page&limit&category&adopted.
func (h *PetHandler) ListPetsHandler(c *gin.Context) {
	page, _ := strconv.ParseInt(c.DefaultQuery("page", "1"), 10, 64)
	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "10"), 10, 64)

	filter := petRepo.PetFilter{Category: c.Query("category")}
	if adoptedParam := c.Query("adopted"); adoptedParam != "" {
		adopted, err := strconv.ParseBool(adoptedParam)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "adopted must be true or false"})
			return
		}
		filter.Adopted = &adopted
	}

	pets, total, err := h.Service.ListPets(filter, page, limit)
	if err != nil {
		respondPetError(c, err)
		return
	}
	if pets == nil {
		pets = []models.Pet{}
	}
	c.JSON(http.StatusOK, gin.H{"pets": pets, "totalCount": total})
}

// GetPetByIDHandler handles GET /pets/:id.
func (h *PetHandler) GetPetByIDHandler(c *gin.Context) {
	id, ok := parsePetID(c)
	if !ok {
		return
	}
	result, err := h.Service.GetPetByID(id)
	if err != nil {
		respondPetError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// UpdatePetHandler handles PATCH /pets/update/:id.
func (h *PetHandler) UpdatePetHandler(c *gin.Context) {
	id, ok := parsePetID(c)
	if !ok {
		return
	}
	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	updated, err := h.Service.UpdatePet(id, updates)
	if err != nil {
		if errors.Is(err, pet.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeletePetHandler handles DELETE /pets/:id.
func (h *PetHandler) DeletePetHandler(c *gin.Context) {
	id, ok := parsePetID(c)
	if !ok {
		return
	}
	if err := h.Service.DeletePet(id); err != nil {
		respondPetError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Pet deleted"})
}
