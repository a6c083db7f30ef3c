package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"pawhaven/models"
	"pawhaven/services/campaign"
	"pawhaven/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// CampaignHandler exposes the donation campaign endpoints.
type CampaignHandler struct {
	Service campaign.CampaignService
}

// NewCampaignHandler wires a campaign handler.
func NewCampaignHandler(svc campaign.CampaignService) *CampaignHandler {
	return &CampaignHandler{Service: svc}
}

// parseCampaignID validates the :id path parameter before any store call.
// A malformed id is rejected with 400 straight away.
func parseCampaignID(c *gin.Context) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid campaign id", c.Param("id"))
		return primitive.NilObjectID, false
	}
	return id, true
}

// respondCampaignError maps the service error taxonomy onto HTTP statuses.
// Messages are passed through to the caller.
func respondCampaignError(c *gin.Context, err error) {
	var validationErr campaign.ValidationError
	if errors.As(err, &validationErr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error(), "fields": validationErr.Fields})
		return
	}
	var notFoundErr campaign.NotFoundError
	if errors.As(err, &notFoundErr) {
		c.JSON(http.StatusNotFound, gin.H{"error": notFoundErr.Error()})
		return
	}
	var gatewayErr campaign.GatewayError
	if errors.As(err, &gatewayErr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": gatewayErr.Error()})
		return
	}
	utils.GetLogger().Error("Campaign store error", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}

// CreateCampaignHandler handles POST /donations/add.
func (h *CampaignHandler) CreateCampaignHandler(c *gin.Context) {
	var input models.Campaign
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if email, ok := c.Get("userEmail"); ok {
		if emailStr, ok := email.(string); ok && emailStr != "" {
			input.UserEmail = emailStr
		}
	}

	created, err := h.Service.CreateCampaign(&input)
	if err != nil {
		respondCampaignError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// ListCampaignsHandler handles GET /donations?page&limit.
func (h *CampaignHandler) ListCampaignsHandler(c *gin.Context) {
	page, _ := strconv.ParseInt(c.DefaultQuery("page", "1"), 10, 64)
	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "10"), 10, 64)

	campaigns, total, err := h.Service.ListCampaigns(page, limit)
	if err != nil {
		respondCampaignError(c, err)
		return
	}
	if campaigns == nil {
		campaigns = []models.Campaign{}
	}
	c.JSON(http.StatusOK, gin.H{"donations": campaigns, "totalCount": total})
}

// GetCampaignByIDHandler handles GET /donations/:id.
func (h *CampaignHandler) GetCampaignByIDHandler(c *gin.Context) {
	id, ok := parseCampaignID(c)
	if !ok {
		return
	}
	result, err := h.Service.GetCampaignByID(id)
	if err != nil {
		respondCampaignError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// UpdateCampaignHandler handles PATCH /donations/update/:id.
func (h *CampaignHandler) UpdateCampaignHandler(c *gin.Context) {
	id, ok := parseCampaignID(c)
	if !ok {
		return
	}
	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	updated, err := h.Service.UpdateCampaign(id, updates)
	if err != nil {
		respondCampaignError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// PauseCampaignHandler handles PATCH /donations/pause/:id.
func (h *CampaignHandler) PauseCampaignHandler(c *gin.Context) {
	id, ok := parseCampaignID(c)
	if !ok {
		return
	}
	var req struct {
		Paused *bool `json:"paused" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if err := h.Service.SetPaused(id, *req.Paused); err != nil {
		respondCampaignError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Campaign pause flag updated", "paused": *req.Paused})
}

// DeleteCampaignHandler handles DELETE /donations/:id.
func (h *CampaignHandler) DeleteCampaignHandler(c *gin.Context) {
	id, ok := parseCampaignID(c)
	if !ok {
		return
	}
	if err := h.Service.DeleteCampaign(id); err != nil {
		respondCampaignError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Campaign deleted"})
}

// DonateHandler handles POST /donations/:id/donate. On success the gateway's
// client secret is returned for client-side settlement.
func (h *CampaignHandler) DonateHandler(c *gin.Context) {
	id, ok := parseCampaignID(c)
	if !ok {
		return
	}
	var input campaign.DonateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if input.DonorEmail == "" {
		if email, ok := c.Get("userEmail"); ok {
			input.DonorEmail, _ = email.(string)
		}
	}

	confirmation, err := h.Service.Donate(c.Request.Context(), id, input)
	if err != nil {
		respondCampaignError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"clientSecret": confirmation.ClientSecret})
}

// RefundHandler handles POST /donations/refund/:id.
func (h *CampaignHandler) RefundHandler(c *gin.Context) {
	id, ok := parseCampaignID(c)
	if !ok {
		return
	}
	var req struct {
		DonorEmail string  `json:"donorEmail" binding:"required"`
		Amount     float64 `json:"amount" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	if err := h.Service.Refund(id, req.DonorEmail, req.Amount); err != nil {
		respondCampaignError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Donation refunded"})
}

// GetDonatorsHandler handles GET /donations/donators/:id.
func (h *CampaignHandler) GetDonatorsHandler(c *gin.Context) {
	id, ok := parseCampaignID(c)
	if !ok {
		return
	}
	donators, err := h.Service.GetDonators(id)
	if err != nil {
		respondCampaignError(c, err)
		return
	}
	c.JSON(http.StatusOK, donators)
}

// RecommendedHandler handles GET /donations/recommended/:id.
func (h *CampaignHandler) RecommendedHandler(c *gin.Context) {
	id, ok := parseCampaignID(c)
	if !ok {
		return
	}
	size, _ := strconv.ParseInt(c.DefaultQuery("size", "3"), 10, 64)

	recommended, err := h.Service.Recommend(id, size)
	if err != nil {
		respondCampaignError(c, err)
		return
	}
	c.JSON(http.StatusOK, recommended)
}
