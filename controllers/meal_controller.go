package controllers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/calo-work-stack/Calo-sub003/services"

	"github.com/gin-gonic/gin"
)

type MealController struct {
	Meals *services.MealService
	Stats *services.StatisticsService
	RT    *services.RealtimeHub
	Push  *services.PushService
}

func NewMealController(meals *services.MealService, stats *services.StatisticsService, rt *services.RealtimeHub, push *services.PushService) *MealController {
	return &MealController{Meals: meals, Stats: stats, RT: rt, Push: push}
}

func (mc *MealController) LogMeal(c *gin.Context) {
	uid := c.GetUint("userID")

	var body services.MealRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	meal, err := mc.Meals.AddMeal(uid, body)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}

	mc.afterWrite(uid, meal.AteAt)
	c.JSON(201, meal)
}

func (mc *MealController) ListMeals(c *gin.Context) {
	uid := c.GetUint("userID")

	meals, err := mc.Meals.ListMeals(uid)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, meals)
}

func (mc *MealController) GetMeal(c *gin.Context) {
	uid := c.GetUint("userID")
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(400, gin.H{"error": "invalid meal id"})
		return
	}

	meal, err := mc.Meals.GetMeal(uid, uint(id))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "meal not found"})
		return
	}
	c.JSON(200, meal)
}

func (mc *MealController) UpdateMeal(c *gin.Context) {
	uid := c.GetUint("userID")
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(400, gin.H{"error": "invalid meal id"})
		return
	}

	var body services.MealRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	meal, err := mc.Meals.UpdateMeal(uid, uint(id), body)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}

	mc.afterWrite(uid, meal.AteAt)
	c.JSON(200, meal)
}

func (mc *MealController) DeleteMeal(c *gin.Context) {
	uid := c.GetUint("userID")
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(400, gin.H{"error": "invalid meal id"})
		return
	}

	if err := mc.Meals.DeleteMeal(uid, uint(id)); err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// afterWrite pushes updated totals to open sessions and fires the
// goal-reached and streak-milestone notifications when the day's calories
// cross the target.
func (mc *MealController) afterWrite(uid uint, day time.Time) {
	totals, err := mc.Meals.TotalsForDay(uid, day)
	if err != nil {
		return
	}
	mc.RT.BroadcastProgress(uid, totals)

	if mc.Push == nil {
		return
	}
	goal, err := services.GoalForDate(uid, day)
	if err != nil || goal.Calories <= 0 {
		return
	}
	// only fire while just crossing the target, not on every later meal
	if totals.Calories >= goal.Calories && totals.Calories < goal.Calories*1.25 {
		mc.Push.NotifyGoalReached(uid, day)
		if streak, err := mc.Stats.CurrentStreak(context.Background(), uid); err == nil {
			mc.Push.NotifyStreakMilestone(uid, streak)
		}
	}
}
