package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"gamyam/internal/services"
)

type ReportHandler struct {
	Service *services.ReportService
}

func NewReportHandler(service *services.ReportService) *ReportHandler {
	return &ReportHandler{Service: service}
}

func (h *ReportHandler) GetSummary(c *gin.Context) {
	data, err := h.Service.GetSummary()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, data)
}

func (h *ReportHandler) DownloadSummaryPDF(c *gin.Context) {
	path, err := h.Service.SummaryPDF()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.FileAttachment(path, "pipeline_report.pdf")
}

type emailSummaryRequest struct {
	To string `json:"to" binding:"required,email"`
}

func (h *ReportHandler) EmailSummary(c *gin.Context) {
	var req emailSummaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Service.EmailSummary(req.To); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "sent"})
}

func (h *ReportHandler) FilterDeals(c *gin.Context) {
	stage := c.Query("stage")
	assignedTo := c.Query("assigned_to")
	from := c.Query("from")
	to := c.Query("to")
	minValue, _ := strconv.ParseFloat(c.DefaultQuery("min_value", "0"), 64)
	maxValue, _ := strconv.ParseFloat(c.DefaultQuery("max_value", "0"), 64)
	limit, offset := parsePaging(c)

	deals, err := h.Service.FilterDeals(stage, assignedTo, from, to, minValue, maxValue, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, deals)
}
