package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/factoryhub/factory-management-api/models"
)

// ProductionController serves production listings and the per-date efficiency report
type ProductionController struct {
	db *gorm.DB
}

// NewProductionController creates a ProductionController backed by the given database
func NewProductionController(db *gorm.DB) *ProductionController {
	return &ProductionController{db: db}
}

// ProductionEfficiency is one row of the production efficiency report
type ProductionEfficiency struct {
	ProductName   string `json:"product_name"`
	TotalQuantity int    `json:"total_quantity"`
}

// List handles GET /productions - returns every production with its employee
// and product
func (pc *ProductionController) List(c *gin.Context) {
	productions := []models.Production{}
	if err := pc.db.Preload("Employee").Preload("Product").Order("id ASC").Find(&productions).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, productions)
}

// Efficiency handles GET /production-efficiency - sums the quantity produced
// per product on a single date. production_date must be YYYY-MM-DD and
// defaults to today. Products with no production on that date are not
// included.
func (pc *ProductionController) Efficiency(c *gin.Context) {
	dateStr := c.Query("production_date")
	if dateStr == "" {
		dateStr = time.Now().Format("2006-01-02")
	}

	day, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid date format. Use YYYY-MM-DD"})
		return
	}

	// Half-open day range; portable across sqlite and postgres date storage.
	next := day.AddDate(0, 0, 1)

	rows := []ProductionEfficiency{}
	err = pc.db.Model(&models.Production{}).
		Select("products.name AS product_name, SUM(productions.quantity) AS total_quantity").
		Joins("JOIN products ON products.id = productions.product_id").
		Where("productions.production_date >= ? AND productions.production_date < ?", day, next).
		Group("products.name").
		Order("products.name ASC").
		Scan(&rows).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, rows)
}
