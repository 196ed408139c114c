package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"estateoffice/internal/models"
	"estateoffice/internal/services"
)

type RestrictionTypeHandler struct {
	Service *services.RestrictionTypeService
}

type createRestrictionTypeRequest struct {
	Code        string  `json:"code" binding:"required"`
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
}

func NewRestrictionTypeHandler(service *services.RestrictionTypeService) *RestrictionTypeHandler {
	return &RestrictionTypeHandler{Service: service}
}

func (h *RestrictionTypeHandler) Create(c *gin.Context) {
	var req createRestrictionTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	existing, err := h.Service.GetByCode(req.Code)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if existing != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Restriction type already exists"})
		return
	}

	t := &models.RestrictionType{
		Code:        req.Code,
		Name:        req.Name,
		Description: req.Description,
	}
	if err := h.Service.Create(t); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, t)
}

func (h *RestrictionTypeHandler) List(c *gin.Context) {
	skip, limit := pagination(c)
	types, err := h.Service.List(limit, skip)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, types)
}

func (h *RestrictionTypeHandler) GetByCode(c *gin.Context) {
	t, err := h.Service.GetByCode(c.Param("code"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if t == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restriction type not found"})
		return
	}
	c.JSON(http.StatusOK, t)
}

func (h *RestrictionTypeHandler) Update(c *gin.Context) {
	var patch models.RestrictionTypePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	t, err := h.Service.Update(c.Param("code"), &patch)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if t == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restriction type not found"})
		return
	}
	c.JSON(http.StatusOK, t)
}

func (h *RestrictionTypeHandler) Delete(c *gin.Context) {
	t, err := h.Service.Delete(c.Param("code"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if t == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Restriction type not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Restriction type deleted successfully"})
}
