package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/calo-work-stack/Calo-sub003/services"

	"github.com/gin-gonic/gin"
)

type StatisticsController struct {
	Svc *services.StatisticsService
}

func NewStatisticsController(svc *services.StatisticsService) *StatisticsController {
	return &StatisticsController{Svc: svc}
}

// GET /statistics/monthly?year=2026&month=8
// Defaults to the current month when no params are given.
func (h *StatisticsController) GetMonthlyReport(c *gin.Context) {
	userID, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	now := time.Now()
	year, month := now.Year(), int(now.Month())

	if v := c.Query("year"); v != "" {
		y, err := strconv.Atoi(v)
		if err != nil || y < 1000 || y > 9999 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "year must be a 4-digit number"})
			return
		}
		year = y
	}
	if v := c.Query("month"); v != "" {
		m, err := strconv.Atoi(v)
		if err != nil || m < 1 || m > 12 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "month must be 1-12"})
			return
		}
		month = m
	}

	report, err := h.Svc.ComputeMonthlyReport(c.Request.Context(), userID, year, month)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, report)
}

// --- helpers ---

func userIDFromCtx(c *gin.Context) (uint, bool) {
	v, ok := c.Get("userID")
	if !ok {
		return 0, false
	}
	switch id := v.(type) {
	case uint:
		return id, true
	case int:
		return uint(id), true
	case int64:
		return uint(id), true
	default:
		return 0, false
	}
}
