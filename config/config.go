package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	DatabaseURL         string // optional; switches the factory service to PostgreSQL
	DatabasePath        string // sqlite file for the factory service
	CatalogDatabasePath string // sqlite file for the catalog service
	Port                string // factory service port
	CatalogPort         string // catalog service port
	GoEnv               string
	LogLevel            string
}

// Load loads the configuration from environment variables
// It automatically determines which .env file to load based on GO_ENV
func Load() (*Config, error) {
	// Determine which environment file to load
	env := os.Getenv("GO_ENV")
	if env == "" {
		env = "development"
	}

	// Try to load environment-specific file first
	envFile := fmt.Sprintf(".env.%s", env)
	if err := godotenv.Load(envFile); err != nil {
		// If environment-specific file doesn't exist, try .env
		if err := godotenv.Load(); err != nil {
			// In production, environment variables are set directly
			// so it's okay if .env files don't exist
			log.Printf("No .env file found, using system environment variables")
		}
	} else {
		log.Printf("Loaded configuration from %s", envFile)
	}

	config := &Config{
		DatabaseURL:         getEnv("DATABASE_URL", ""),
		DatabasePath:        getEnv("DATABASE_PATH", "factory_management.db"),
		CatalogDatabasePath: getEnv("CATALOG_DATABASE_PATH", "factory.db"),
		Port:                getEnv("PORT", "8080"),
		CatalogPort:         getEnv("CATALOG_PORT", "8081"),
		GoEnv:               getEnv("GO_ENV", "development"),
		LogLevel:            getEnv("LOG_LEVEL", "info"),
	}

	// Validate required configuration
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks that all required configuration values are set
func (c *Config) Validate() error {
	if c.DatabaseURL == "" && c.DatabasePath == "" {
		return fmt.Errorf("DATABASE_URL or DATABASE_PATH is required")
	}
	if c.CatalogDatabasePath == "" {
		return fmt.Errorf("CATALOG_DATABASE_PATH is required")
	}
	return nil
}

// IsProduction returns true if the application is running in production mode
func (c *Config) IsProduction() bool {
	return c.GoEnv == "production"
}

// IsTest returns true if the application is running in test mode
func (c *Config) IsTest() bool {
	return c.GoEnv == "test"
}

// IsDevelopment returns true if the application is running in development mode
func (c *Config) IsDevelopment() bool {
	return c.GoEnv == "development"
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
