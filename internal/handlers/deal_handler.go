package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"gamyam/internal/models"
	"gamyam/internal/services"
)

type DealHandler struct {
	Service *services.DealService
}

func NewDealHandler(service *services.DealService) *DealHandler {
	return &DealHandler{Service: service}
}

func (h *DealHandler) Create(c *gin.Context) {
	var deal models.Deal
	if err := c.ShouldBindJSON(&deal); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.Service.Create(&deal); err != nil {
		respondError(c, err, "deal not found")
		return
	}
	c.JSON(http.StatusCreated, deal)
}

func (h *DealHandler) GetByID(c *gin.Context) {
	deal, err := h.Service.GetByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if deal == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "deal not found"})
		return
	}
	c.JSON(http.StatusOK, deal)
}

func (h *DealHandler) Update(c *gin.Context) {
	var body models.Deal
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.Service.Update(c.Param("id"), &body)
	if err != nil {
		respondError(c, err, "deal not found")
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *DealHandler) Delete(c *gin.Context) {
	if err := h.Service.Delete(c.Param("id")); err != nil {
		respondError(c, err, "deal not found")
		return
	}
	c.Status(http.StatusNoContent)
}

type updateDealStageRequest struct {
	Stage models.Stage `json:"stage" binding:"required"`
}

func (h *DealHandler) UpdateStage(c *gin.Context) {
	var req updateDealStageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.Service.UpdateStage(c.Param("id"), req.Stage)
	if err != nil {
		respondError(c, err, "deal not found")
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *DealHandler) List(c *gin.Context) {
	deals, err := h.Service.ListAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to retrieve deals"})
		return
	}
	if deals == nil {
		deals = []models.Deal{}
	}
	c.JSON(http.StatusOK, deals)
}
