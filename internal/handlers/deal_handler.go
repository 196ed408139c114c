package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"estateoffice/internal/models"
	"estateoffice/internal/pdf"
	"estateoffice/internal/services"
)

type DealHandler struct {
	Service *services.DealService
	PDF     pdf.Generator
}

type createDealRequest struct {
	DealType     string      `json:"deal_type" binding:"required"`
	RealEstateID int         `json:"real_estate_id" binding:"required"`
	ClientID     int         `json:"client_id" binding:"required"`
	EmployeeID   int         `json:"employee_id" binding:"required"`
	DealDate     models.Date   `json:"deal_date" binding:"required"`
	Amount       models.Amount `json:"amount" binding:"required"`
	Status       *string       `json:"status"`
}

func NewDealHandler(service *services.DealService, pdfGen pdf.Generator) *DealHandler {
	return &DealHandler{Service: service, PDF: pdfGen}
}

func (h *DealHandler) Create(c *gin.Context) {
	var req createDealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	deal := &models.Deal{
		DealType:     req.DealType,
		RealEstateID: req.RealEstateID,
		ClientID:     req.ClientID,
		EmployeeID:   req.EmployeeID,
		DealDate:     req.DealDate,
		Amount:       req.Amount,
		Status:       req.Status,
	}
	if err := h.Service.Create(deal); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, deal)
}

func (h *DealHandler) List(c *gin.Context) {
	skip, limit := pagination(c)
	deals, err := h.Service.List(limit, skip)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, deals)
}

func (h *DealHandler) GetByID(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	deal, err := h.Service.GetByID(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if deal == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Deal not found"})
		return
	}
	c.JSON(http.StatusOK, deal)
}

func (h *DealHandler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	var patch models.DealPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	deal, err := h.Service.Update(id, &patch)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if deal == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Deal not found"})
		return
	}
	c.JSON(http.StatusOK, deal)
}

func (h *DealHandler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	deal, err := h.Service.Delete(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if deal == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Deal not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Deal deleted successfully"})
}

// DownloadSummary renders the deal as a one-page PDF and serves it as an
// attachment.
func (h *DealHandler) DownloadSummary(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	summary, err := h.Service.GetSummary(id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if summary == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Deal not found"})
		return
	}
	path, err := h.PDF.GenerateDealSummary(*summary)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.FileAttachment(path, fmt.Sprintf("deal_summary_%d.pdf", summary.DealID))
}
