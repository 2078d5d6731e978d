package main

import (
	"log"

	"github.com/OJESH-DHK/SoupMandu/config"
	"github.com/OJESH-DHK/SoupMandu/controllers"
	"github.com/OJESH-DHK/SoupMandu/logger"
	"github.com/OJESH-DHK/SoupMandu/routes"
	"github.com/OJESH-DHK/SoupMandu/services"
	"github.com/OJESH-DHK/SoupMandu/utils"

	"go.uber.org/zap"
)

func main() {
	logger.Init()
	defer logger.Close()

	config.InitDB()
	utils.InitS3()

	// The classifier client is loaded once here and injected; it is never
	// reloaded for the lifetime of the process.
	rekSvc, err := services.NewRekognitionService()
	if err != nil {
		log.Fatalf("Failed to initialize Rekognition client: %v", err)
	}

	budgetSvc := services.NewBudgetService(config.DB)
	foodSvc := services.NewFoodService(config.DB, rekSvc)
	mealSvc := services.NewMealService(config.DB, foodSvc, budgetSvc)
	userSvc := services.NewUserService(config.DB, budgetSvc)

	r := routes.SetupRouter(
		controllers.NewAuthController(userSvc),
		controllers.NewUserController(userSvc),
		controllers.NewFoodController(foodSvc),
		controllers.NewMealController(mealSvc, budgetSvc),
	)

	logger.Info("server listening", zap.String("addr", ":8080"))
	if err := r.Run(":8080"); err != nil {
		log.Fatalf("Server exited: %v", err)
	}
}
