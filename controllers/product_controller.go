package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/factoryhub/factory-management-api/models"
)

// ProductController serves product listings and the top-selling report
type ProductController struct {
	db *gorm.DB
}

// NewProductController creates a ProductController backed by the given database
func NewProductController(db *gorm.DB) *ProductController {
	return &ProductController{db: db}
}

// TopSellingProduct is one row of the top-selling products report
type TopSellingProduct struct {
	ProductName  string `json:"product_name"`
	TotalOrdered int    `json:"total_ordered"`
}

// List handles GET /products - returns every product
func (pc *ProductController) List(c *gin.Context) {
	products := []models.Product{}
	if err := pc.db.Order("id ASC").Find(&products).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, products)
}

// TopSelling handles GET /top-selling-products - sums the ordered quantity
// per product and returns the top_n largest (default 5). Products that were
// never ordered are not included. Ties are broken by product name ascending.
func (pc *ProductController) TopSelling(c *gin.Context) {
	topN := 5
	if v := c.Query("top_n"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			topN = n
		}
	}

	rows := []TopSellingProduct{}
	err := pc.db.Model(&models.OrderItem{}).
		Select("products.name AS product_name, SUM(order_items.quantity) AS total_ordered").
		Joins("JOIN products ON products.id = order_items.product_id").
		Group("products.name").
		Order("SUM(order_items.quantity) DESC, products.name ASC").
		Limit(topN).
		Scan(&rows).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, rows)
}
