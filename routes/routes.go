package routes

import (
	"github.com/ASpurbo/meal-lens-ai-85-sub000/controllers"
	"github.com/ASpurbo/meal-lens-ai-85-sub000/middlewares"
	"github.com/ASpurbo/meal-lens-ai-85-sub000/services"

	"github.com/gin-gonic/gin"
)

func SetupRouter(hub *services.RealtimeHub, push *services.PushService) *gin.Engine {
	r := gin.Default()

	rc := controllers.NewRealtimeController(hub)
	dc := controllers.NewDeviceController(push)

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.POST("/verify-mfa", controllers.VerifyMFA)
	}

	// Protected user routes
	user := r.Group("/user")
	user.Use(middlewares.AuthMiddleware())
	{
		user.GET("/profile", controllers.GetProfile)
		user.PUT("/profile", controllers.UpdateProfile)
		user.POST("/onboarding", controllers.CompleteOnboarding)
		user.DELETE("", controllers.DeleteAccount)
	}

	goals := r.Group("/goals")
	goals.Use(middlewares.AuthMiddleware())
	{
		goals.GET("", controllers.GetGoals)
		goals.PUT("", controllers.OverrideGoals)
		goals.POST("/plan", controllers.ApplyPlan)
		goals.GET("/progress", controllers.GetDailyProgress)
	}

	meals := r.Group("/meals")
	meals.Use(middlewares.AuthMiddleware())
	{
		meals.POST("", controllers.LogMeal)
		meals.POST("/photo", controllers.LogMealPhoto)
		meals.GET("", controllers.ListMeals)
		meals.GET("/:id", controllers.GetMeal)
		meals.DELETE("/:id", controllers.DeleteMeal)
	}

	streak := r.Group("/streak")
	streak.Use(middlewares.AuthMiddleware())
	{
		streak.GET("", controllers.GetStreak)
		streak.GET("/events", controllers.ListProgressEvents)
	}

	devices := r.Group("/devices")
	devices.Use(middlewares.AuthMiddleware())
	{
		devices.POST("", dc.Register)
	}

	ws := r.Group("/ws")
	ws.Use(middlewares.AuthMiddleware())
	{
		ws.GET("/progress", rc.ProgressWS)
	}

	return r
}
