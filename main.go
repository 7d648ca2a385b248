package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/factoryhub/factory-management-api/config"
	"github.com/factoryhub/factory-management-api/models"
	"github.com/factoryhub/factory-management-api/seed"
)

func main() {
	// Basic logging
	log.Println("Starting Factory Management API server...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := config.ConnectDatabase(cfg.DatabaseURL, cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Auto-migrate database models
	if err := db.AutoMigrate(
		&models.Employee{},
		&models.Product{},
		&models.Production{},
		&models.Customer{},
		&models.Order{},
		&models.OrderItem{},
	); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed successfully")

	// Reset to the demo dataset
	if err := seed.Reseed(db); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}
	log.Println("Sample data populated successfully")

	router := SetupRouter(db)

	// Start server
	addr := ":" + cfg.Port
	log.Printf("Server is running on http://localhost%s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// healthCheck handles the health check endpoint
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Factory Management API is running",
	})
}
