package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"estateoffice/internal/models"
	"estateoffice/internal/services"
)

type ClientHandler struct {
	Service *services.ClientService
}

type createClientRequest struct {
	FullName   string  `json:"full_name" binding:"required"`
	Phone      string  `json:"phone" binding:"required"`
	Email      *string `json:"email"`
	ClientType string  `json:"client_type"`
}

func NewClientHandler(service *services.ClientService) *ClientHandler {
	return &ClientHandler{Service: service}
}

// @Summary      Register a client
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        client  body      createClientRequest  true  "Client data"
// @Success      200     {object}  models.Client
// @Failure      400     {object}  map[string]string
// @Router       /clients [post]
func (h *ClientHandler) Create(c *gin.Context) {
	var req createClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// pre-checks; the unique constraints remain the backstop under races
	if req.Email != nil {
		existing, err := h.Service.GetByEmail(*req.Email)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		if existing != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email already registered"})
			return
		}
	}
	existing, err := h.Service.GetByPhone(req.Phone)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if existing != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Phone number already registered"})
		return
	}

	client := &models.Client{
		FullName:   req.FullName,
		Phone:      req.Phone,
		Email:      req.Email,
		ClientType: req.ClientType,
	}
	if err := h.Service.Create(client); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, client)
}

// @Summary      List clients
// @Tags         clients
// @Produce      json
// @Param        skip   query     int  false  "Offset"  default(0)
// @Param        limit  query     int  false  "Page size"  default(100)
// @Success      200    {array}   models.Client
// @Router       /clients [get]
func (h *ClientHandler) List(c *gin.Context) {
	skip, limit := pagination(c)
	clients, err := h.Service.List(limit, skip)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, clients)
}

// @Summary      Get a client
// @Tags         clients
// @Produce      json
// @Param        id   path      int  true  "Client id"
// @Success      200  {object}  models.Client
// @Failure      404  {object}  map[string]string
// @Router       /clients/{id} [get]
func (h *ClientHandler) GetByID(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	client, err := h.Service.GetByID(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if client == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Client not found"})
		return
	}
	c.JSON(http.StatusOK, client)
}

// @Summary      Update a client
// @Description  Applies the fields present in the body; absent and null fields stay unchanged
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        id     path      int                 true  "Client id"
// @Param        patch  body      models.ClientPatch  true  "Partial document"
// @Success      200    {object}  models.Client
// @Failure      404    {object}  map[string]string
// @Router       /clients/{id} [patch]
func (h *ClientHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	var patch models.ClientPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	client, err := h.Service.Update(id, &patch)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if client == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Client not found"})
		return
	}
	c.JSON(http.StatusOK, client)
}

// @Summary      Delete a client
// @Tags         clients
// @Produce      json
// @Param        id   path      int  true  "Client id"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /clients/{id} [delete]
func (h *ClientHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	client, err := h.Service.Delete(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if client == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Client not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Client deleted successfully"})
}
