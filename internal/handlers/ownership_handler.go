package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"estateoffice/internal/models"
	"estateoffice/internal/services"
)

type OwnershipHandler struct {
	Service *services.OwnershipService
}

type createOwnershipRequest struct {
	RealEstateID      int         `json:"real_estate_id" binding:"required"`
	OwnershipTypeCode string      `json:"ownership_type_code" binding:"required"`
	OwnerID           int         `json:"owner_id" binding:"required"`
	RegistrationDate  models.Date `json:"registration_date" binding:"required"`
	DocumentReference *string     `json:"document_reference"`
}

func NewOwnershipHandler(service *services.OwnershipService) *OwnershipHandler {
	return &OwnershipHandler{Service: service}
}

func (h *OwnershipHandler) Create(c *gin.Context) {
	var req createOwnershipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	o := &models.Ownership{
		RealEstateID:      req.RealEstateID,
		OwnershipTypeCode: req.OwnershipTypeCode,
		OwnerID:           req.OwnerID,
		RegistrationDate:  req.RegistrationDate,
		DocumentReference: req.DocumentReference,
	}
	if err := h.Service.Create(o); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, o)
}

func (h *OwnershipHandler) List(c *gin.Context) {
	skip, limit := pagination(c)
	records, err := h.Service.List(limit, skip)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, records)
}

func (h *OwnershipHandler) GetByID(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	o, err := h.Service.GetByID(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if o == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Ownership record not found"})
		return
	}
	c.JSON(http.StatusOK, o)
}

func (h *OwnershipHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	var patch models.OwnershipPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	o, err := h.Service.Update(id, &patch)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if o == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Ownership record not found"})
		return
	}
	c.JSON(http.StatusOK, o)
}

func (h *OwnershipHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	o, err := h.Service.Delete(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if o == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Ownership record not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Ownership record deleted successfully"})
}
