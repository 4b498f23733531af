package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/isLah-15/CarDB-Render/config"
	"github.com/isLah-15/CarDB-Render/models"
	"github.com/isLah-15/CarDB-Render/routes"
	"github.com/isLah-15/CarDB-Render/services"
	"github.com/isLah-15/CarDB-Render/utils"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	config.ConnectDB()

	config.DB.AutoMigrate(
		&models.Customer{},
		&models.Car{},
		&models.Location{},
		&models.Reservation{},
		&models.Booking{},
		&models.Payment{},
		&models.Maintenance{},
		&models.Insurance{},
	)

	if os.Getenv("SEED_DB") == "true" {
		utils.SeedDemoData(config.DB)
	}
}

func main() {
	services.NewReminderService(config.DB).StartScheduler()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	r := routes.SetupRouter()
	printRoutes(r)
	r.Run(":" + port)
}

func printRoutes(r *gin.Engine) {
	for _, route := range r.Routes() {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
