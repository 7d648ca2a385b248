package main

import (
	"log"

	"github.com/factoryhub/factory-management-api/catalog"
	"github.com/factoryhub/factory-management-api/config"
)

func main() {
	log.Println("Starting Catalog API server...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// The catalog service keeps its own sqlite database file.
	db, err := config.ConnectDatabase("", cfg.CatalogDatabasePath)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(&catalog.Order{}, &catalog.Product{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed successfully")

	if err := catalog.SeedIfEmpty(db); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}

	router := catalog.SetupRouter(db)

	addr := ":" + cfg.CatalogPort
	log.Printf("Server is running on http://localhost%s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
