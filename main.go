package main

import (
	"log"
	"os"

	"tailorshop-backend/config"
	"tailorshop-backend/models"
	"tailorshop-backend/routes"
	"tailorshop-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	config.ConnectDB()

	config.DB.AutoMigrate(
		&models.User{},
		&models.Permission{},
		&models.UserPermission{},
		&models.Customer{},
		&models.Measurement{},
		&models.Fabric{},
		&models.Order{},
		&models.Task{},
		&models.Employee{},
		&models.Attendance{},
		&models.PayrollRecord{},
		&models.Supplier{},
		&models.PurchaseOrder{},
		&models.PurchaseOrderItem{},
		&models.MaterialUsage{},
		&models.Waste{},
		&models.MessageTemplate{},
		&models.MessageLog{},
		&models.ProviderConfig{},
		&models.Document{},
		&models.DocumentVersion{},
		&models.DocumentApproval{},
		&models.Event{},
		&models.SystemHealth{},
	)

	config.SeedAll()

	if s := os.Getenv("TAILOR_JWT_SECRET"); s != "" {
		utils.SecretKey = []byte(s)
	}

	r := gin.Default()
	r.LoadHTMLGlob("templates/*.html")
	routes.SetupRoutes(r)

	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "TailorShop API is running"})
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	_ = r.Run(":" + port)
}
