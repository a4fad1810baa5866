package controllers

import (
	"net/http"
	"time"

	"github.com/calo-work-stack/Calo-sub003/services"

	"github.com/gin-gonic/gin"
)

type WaterController struct {
	Meals *services.MealService
	RT    *services.RealtimeHub
}

func NewWaterController(meals *services.MealService, rt *services.RealtimeHub) *WaterController {
	return &WaterController{Meals: meals, RT: rt}
}

// POST /water
func (wc *WaterController) AddWater(c *gin.Context) {
	uid := c.GetUint("userID")

	var body struct {
		Date     string `json:"date"` // YYYY-MM-DD, defaults to today
		AmountMl int    `json:"amount_ml" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if body.AmountMl <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "amount_ml must be positive"})
		return
	}

	date := time.Now()
	if body.Date != "" {
		d, err := time.Parse("2006-01-02", body.Date)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format. Use YYYY-MM-DD"})
			return
		}
		date = d
	}

	row, err := services.AddWater(uid, date, body.AmountMl)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if totals, err := wc.Meals.TotalsForDay(uid, date); err == nil {
		wc.RT.BroadcastProgress(uid, totals)
	}
	c.JSON(http.StatusOK, row)
}

// GET /water?from=YYYY-MM-DD&to=YYYY-MM-DD
func (wc *WaterController) ListWater(c *gin.Context) {
	uid := c.GetUint("userID")

	from, to, err := parseRangeQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rows, err := services.ListWaterByDateRange(uid, from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, rows)
}
