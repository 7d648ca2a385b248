package main

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/factoryhub/factory-management-api/controllers"
)

// SetupRouter registers every endpoint of the factory reporting service.
// Cross-origin requests are allowed from any origin.
func SetupRouter(db *gorm.DB) *gin.Engine {
	router := gin.Default()
	router.Use(cors.Default())

	router.GET("/health", healthCheck)

	employees := controllers.NewEmployeeController(db)
	products := controllers.NewProductController(db)
	productions := controllers.NewProductionController(db)
	customers := controllers.NewCustomerController(db)
	orders := controllers.NewOrderController(db)

	// Entity listings
	router.GET("/employees", employees.List)
	router.GET("/products", products.List)
	router.GET("/productions", productions.List)
	router.GET("/customers", customers.List)
	router.GET("/orders", orders.List)

	// Aggregate reports
	router.GET("/employee-performance", employees.Performance)
	router.GET("/top-selling-products", products.TopSelling)
	router.GET("/customer-lifetime-value", customers.LifetimeValue)
	router.GET("/production-efficiency", productions.Efficiency)

	return router
}
