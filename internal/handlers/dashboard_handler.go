package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"estateoffice/internal/services"
)

type DashboardHandler struct {
	Service *services.DashboardService
}

func NewDashboardHandler(service *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{Service: service}
}

// @Summary      Dashboard summary
// @Description  Totals plus the five most recent deals and five newest properties
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  models.DashboardData
// @Failure      500  {object}  map[string]string
// @Router       /dashboard/ [get]
func (h *DashboardHandler) Get(c *gin.Context) {
	data, err := h.Service.GetData()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, data)
}
