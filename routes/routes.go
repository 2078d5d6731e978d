package routes

import (
	"github.com/OJESH-DHK/SoupMandu/controllers"
	"github.com/OJESH-DHK/SoupMandu/middlewares"

	"github.com/gin-gonic/gin"
)

func SetupRouter(
	authCtl *controllers.AuthController,
	userCtl *controllers.UserController,
	foodCtl *controllers.FoodController,
	mealCtl *controllers.MealController,
) *gin.Engine {
	r := gin.Default()

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/signup", authCtl.Signup)
		auth.POST("/login", authCtl.Login)
	}

	// Protected user routes
	user := r.Group("/user")
	user.Use(middlewares.AuthMiddleware())
	{
		user.GET("/profile", userCtl.GetProfile)
		user.PUT("/profile", userCtl.UpdateProfile)
	}

	// Protected food routes
	food := r.Group("/food")
	food.Use(middlewares.AuthMiddleware())
	{
		food.POST("/recognize", foodCtl.Recognize)
		food.POST("/nutrition", foodCtl.Nutrition)
		food.POST("/eat", mealCtl.Eat)
		food.GET("/logs", mealCtl.ListLogs)
		food.GET("/summary", mealCtl.DailySummary)
	}

	return r
}
