package controllers

import (
	"net/http"
	"time"

	"github.com/calo-work-stack/Calo-sub003/services"

	"github.com/gin-gonic/gin"
)

// PUT /goals/:date
func UpsertGoal(c *gin.Context) {
	uid := c.GetUint("userID")

	date, err := time.Parse("2006-01-02", c.Param("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format. Use YYYY-MM-DD"})
		return
	}

	var req struct {
		Calories float64  `json:"calories" binding:"required"`
		Protein  float64  `json:"protein"`
		Carbs    float64  `json:"carbs"`
		Fat      *float64 `json:"fat"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// default missing to 0
	fat := 0.0
	if req.Fat != nil {
		fat = *req.Fat
	}

	goal, err := services.UpsertDailyGoal(uid, date, req.Calories, req.Protein, req.Carbs, fat)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, goal)
}

// GET /goals?from=YYYY-MM-DD&to=YYYY-MM-DD
func ListGoals(c *gin.Context) {
	uid := c.GetUint("userID")

	from, to, err := parseRangeQuery(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	goals, err := services.ListGoalsByDateRange(uid, from, to)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, goals)
}

// GET /goals/effective?date=YYYY-MM-DD
func GetEffectiveGoal(c *gin.Context) {
	uid := c.GetUint("userID")

	dateStr := c.Query("date")
	if dateStr == "" {
		dateStr = time.Now().Format("2006-01-02")
	}
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid date format. Use YYYY-MM-DD"})
		return
	}

	goal, err := services.GoalForDate(uid, date)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, goal)
}
