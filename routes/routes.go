package routes

import (
	"log"

	"github.com/calo-work-stack/Calo-sub003/config"
	"github.com/calo-work-stack/Calo-sub003/controllers"
	"github.com/calo-work-stack/Calo-sub003/middlewares"
	"github.com/calo-work-stack/Calo-sub003/services"

	"github.com/gin-gonic/gin"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	// services
	mealSvc := services.NewMealService()
	statsSvc := services.NewStatisticsService(services.NewGormStatsSource(config.DB))
	hub := services.NewRealtimeHub()

	pushSvc, err := services.NewPushService(config.DB)
	if err != nil {
		log.Printf("push service unavailable: %v", err)
	}

	rekSvc, err := services.NewRecognitionService()
	if err != nil {
		log.Printf("recognition service unavailable: %v", err)
	}
	foodSvc := services.NewFoodService(rekSvc)

	// controllers
	statsCtl := controllers.NewStatisticsController(statsSvc)
	mealCtl := controllers.NewMealController(mealSvc, statsSvc, hub, pushSvc)
	waterCtl := controllers.NewWaterController(mealSvc, hub)
	scanCtl := controllers.NewScanController(foodSvc)
	deviceCtl := controllers.NewDeviceController(pushSvc)
	rtCtl := controllers.NewRealtimeController(hub)

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.POST("/verify-mfa", controllers.VerifyMFA)
		auth.POST("/forgot-password", controllers.ForgotPassword)
		auth.POST("/reset-password", controllers.ResetPassword)
	}

	// Protected routes
	api := r.Group("/")
	api.Use(middlewares.AuthMiddleware())
	{
		api.GET("/user/profile", controllers.GetProfile)
		api.PUT("/user/profile", controllers.UpdateProfile)
		api.POST("/user/avatar", controllers.UploadAvatar)
		api.DELETE("/user", controllers.DeactivateAccount)
		api.POST("/user/notifications/toggle", controllers.ToggleNotifications)

		api.POST("/meals", mealCtl.LogMeal)
		api.GET("/meals", mealCtl.ListMeals)
		api.GET("/meals/:id", mealCtl.GetMeal)
		api.PUT("/meals/:id", mealCtl.UpdateMeal)
		api.DELETE("/meals/:id", mealCtl.DeleteMeal)

		api.GET("/goals", controllers.ListGoals)
		api.GET("/goals/effective", controllers.GetEffectiveGoal)
		api.PUT("/goals/:date", controllers.UpsertGoal)

		api.POST("/water", waterCtl.AddWater)
		api.GET("/water", waterCtl.ListWater)

		api.POST("/calendar/events", controllers.AddCalendarEvent)
		api.GET("/calendar/events", controllers.ListCalendarEvents)
		api.DELETE("/calendar/events/:id", controllers.DeleteCalendarEvent)

		api.POST("/scan/photo", scanCtl.ScanPhoto)
		api.GET("/foods/search", scanCtl.SearchFoods)

		api.GET("/statistics/monthly", statsCtl.GetMonthlyReport)

		api.POST("/devices/register", deviceCtl.Register)
		api.GET("/ws/progress", rtCtl.ProgressWS)
	}

	return r
}
