package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"estateoffice/internal/models"
	"estateoffice/internal/services"
)

type RestrictionHandler struct {
	Service *services.RestrictionService
}

type createRestrictionRequest struct {
	RealEstateID        int         `json:"real_estate_id" binding:"required"`
	RestrictionTypeCode string      `json:"restriction_type_code" binding:"required"`
	ImposedDate         models.Date `json:"imposed_date" binding:"required"`
	RemovedDate         *models.Date `json:"removed_date"`
	Basis               *string     `json:"basis"`
}

func NewRestrictionHandler(service *services.RestrictionService) *RestrictionHandler {
	return &RestrictionHandler{Service: service}
}

func (h *RestrictionHandler) Create(c *gin.Context) {
	var req createRestrictionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	r := &models.Restriction{
		RealEstateID:        req.RealEstateID,
		RestrictionTypeCode: req.RestrictionTypeCode,
		ImposedDate:         req.ImposedDate,
		RemovedDate:         req.RemovedDate,
		Basis:               req.Basis,
	}
	if err := h.Service.Create(r); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, r)
}

func (h *RestrictionHandler) List(c *gin.Context) {
	skip, limit := pagination(c)
	records, err := h.Service.List(limit, skip)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, records)
}

func (h *RestrictionHandler) GetByID(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	r, err := h.Service.GetByID(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if r == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restriction not found"})
		return
	}
	c.JSON(http.StatusOK, r)
}

func (h *RestrictionHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	var patch models.RestrictionPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	r, err := h.Service.Update(id, &patch)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if r == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restriction not found"})
		return
	}
	c.JSON(http.StatusOK, r)
}

func (h *RestrictionHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	r, err := h.Service.Delete(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if r == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restriction not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Restriction deleted successfully"})
}
