package main

import (
	"log"
	"net/http"
	"os"

	"hms/config"

	"hms/jobs"
	"hms/models"
	"hms/routes"
	"hms/services"
	"hms/services/logger"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func migrateTables() {
	if err := config.DB.AutoMigrate(
		&models.User{}, &models.Hotel{}, &models.Room{}, &models.OutOfOrderBlock{},
		&models.Stay{}, &models.ServiceRequest{}, &models.CheckedOutStay{},
		&models.CorporateClient{}, &models.BilledOrder{},
		&models.TeamMember{}, &models.Shift{}, &models.Department{}, &models.SlaRule{},
		&models.Restaurant{}, &models.MenuItem{}, &models.InventoryItem{},
		&models.AccessRequest{}, &models.Delegate{},
	); err != nil {
		panic("Failed to migrate tables: " + err.Error())
	}
}

func main() {

	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: không load được file .env, sử dụng biến môi trường có sẵn: %v", err)
	}

	router, m, c, err := config.InitApp()
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}

	appLogger := logger.NewDefaultLogger(logger.InfoLevel)

	alertService := services.NewAlertService(services.AlertServiceOptions{
		DB:     config.DB,
		Logger: appLogger,
	})
	alertAdapter := services.NewAlertServiceAdapter(alertService, jobs.BroadcastAlerts)
	jobs.SetSlaChecker(alertAdapter)

	analyticsService := services.NewAnalyticsService(config.DB, appLogger)
	jobs.SetAnalyticsWarmer(analyticsService)

	migrateTables()

	if err := jobs.InitCronJobs(c, m); err != nil {
		log.Fatalf("Failed to initialize cron jobs: %v", err)
	}

	config.InitWebSocket(router, m)

	routes.SetupRoutes(router, config.DB, config.RedisClient, config.Cloudinary, m)

	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8083"
	}

	log.Println("Server starting on port " + port + "...")
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
