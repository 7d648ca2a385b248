package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/factoryhub/factory-management-api/models"
)

// EmployeeController serves employee listings and the performance report
type EmployeeController struct {
	db *gorm.DB
}

// NewEmployeeController creates an EmployeeController backed by the given database
func NewEmployeeController(db *gorm.DB) *EmployeeController {
	return &EmployeeController{db: db}
}

// EmployeePerformance is one row of the employee performance report
type EmployeePerformance struct {
	EmployeeName  string `json:"employee_name"`
	TotalQuantity int    `json:"total_quantity"`
}

// List handles GET /employees - returns every employee
func (ec *EmployeeController) List(c *gin.Context) {
	employees := []models.Employee{}
	if err := ec.db.Order("id ASC").Find(&employees).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, employees)
}

// Performance handles GET /employee-performance - sums the production
// quantity per employee. Employees with no productions are not included
// (inner join). Rows are ordered by employee name so the output is
// deterministic.
func (ec *EmployeeController) Performance(c *gin.Context) {
	rows := []EmployeePerformance{}
	err := ec.db.Model(&models.Production{}).
		Select("employees.name AS employee_name, SUM(productions.quantity) AS total_quantity").
		Joins("JOIN employees ON employees.id = productions.employee_id").
		Group("employees.name").
		Order("employees.name ASC").
		Scan(&rows).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, rows)
}
