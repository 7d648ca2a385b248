package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/factoryhub/factory-management-api/models"
)

// OrderController serves order listings
type OrderController struct {
	db *gorm.DB
}

// NewOrderController creates an OrderController backed by the given database
func NewOrderController(db *gorm.DB) *OrderController {
	return &OrderController{db: db}
}

// List handles GET /orders - returns every order with its customer
func (oc *OrderController) List(c *gin.Context) {
	orders := []models.Order{}
	if err := oc.db.Preload("Customer").Order("id ASC").Find(&orders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, orders)
}
