package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"estateoffice/internal/models"
	"estateoffice/internal/services"
)

type RealEstateHandler struct {
	Service *services.RealEstateService
}

type createRealEstateRequest struct {
	Type        string   `json:"type" binding:"required"`
	Address     string   `json:"address" binding:"required"`
	Area        float64  `json:"area" binding:"required"`
	Rooms       *int     `json:"rooms"`
	Floor       *int     `json:"floor"`
	Price       *float64 `json:"price"`
	Description *string  `json:"description"`
	Status      *string  `json:"status"`
}

func NewRealEstateHandler(service *services.RealEstateService) *RealEstateHandler {
	return &RealEstateHandler{Service: service}
}

func (h *RealEstateHandler) Create(c *gin.Context) {
	var req createRealEstateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	obj := &models.RealEstate{
		Type:        req.Type,
		Address:     req.Address,
		Area:        req.Area,
		Rooms:       req.Rooms,
		Floor:       req.Floor,
		Price:       req.Price,
		Description: req.Description,
		Status:      req.Status,
	}
	if err := h.Service.Create(obj); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, obj)
}

func (h *RealEstateHandler) List(c *gin.Context) {
	skip, limit := pagination(c)
	objs, err := h.Service.List(limit, skip)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, objs)
}

func (h *RealEstateHandler) GetByID(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	obj, err := h.Service.GetByID(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if obj == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Real estate object not found"})
		return
	}
	c.JSON(http.StatusOK, obj)
}

func (h *RealEstateHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	var patch models.RealEstatePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	obj, err := h.Service.Update(id, &patch)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if obj == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Real estate object not found"})
		return
	}
	c.JSON(http.StatusOK, obj)
}

func (h *RealEstateHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	obj, err := h.Service.Delete(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if obj == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Real estate object not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Real estate object deleted successfully"})
}
