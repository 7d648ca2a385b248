package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/factoryhub/factory-management-api/models"
)

// CustomerController serves customer listings and the lifetime value report
type CustomerController struct {
	db *gorm.DB
}

// NewCustomerController creates a CustomerController backed by the given database
func NewCustomerController(db *gorm.DB) *CustomerController {
	return &CustomerController{db: db}
}

// CustomerLifetimeValue is one row of the customer lifetime value report
type CustomerLifetimeValue struct {
	CustomerName string  `json:"customer_name"`
	TotalValue   float64 `json:"total_value"`
}

// List handles GET /customers - returns every customer
func (cc *CustomerController) List(c *gin.Context) {
	customers := []models.Customer{}
	if err := cc.db.Order("id ASC").Find(&customers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, customers)
}

// LifetimeValue handles GET /customer-lifetime-value - sums the order total
// per customer and keeps customers whose sum is strictly greater than the
// threshold (default 1000). The filter applies after aggregation, so many
// small orders can add up past the threshold.
func (cc *CustomerController) LifetimeValue(c *gin.Context) {
	threshold := 1000.0
	if v := c.Query("threshold"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			threshold = f
		}
	}

	rows := []CustomerLifetimeValue{}
	err := cc.db.Model(&models.Order{}).
		Select("customers.name AS customer_name, SUM(orders.total_amount) AS total_value").
		Joins("JOIN customers ON customers.id = orders.customer_id").
		Group("customers.name").
		Having("SUM(orders.total_amount) > ?", threshold).
		Order("customers.name ASC").
		Scan(&rows).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, rows)
}
