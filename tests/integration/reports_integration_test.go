package integration

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/factoryhub/factory-management-api/controllers"
	"github.com/factoryhub/factory-management-api/models"
	"github.com/factoryhub/factory-management-api/seed"
)

// ReportsIntegrationTestSuite exercises the reporting endpoints end-to-end
// against the seeded demo dataset
type ReportsIntegrationTestSuite struct {
	suite.Suite
	router *gin.Engine
	db     *gorm.DB
}

// SetupSuite runs once before all tests
func (suite *ReportsIntegrationTestSuite) SetupSuite() {
	gin.SetMode(gin.TestMode)
}

// SetupTest runs before each test
func (suite *ReportsIntegrationTestSuite) SetupTest() {
	// Create in-memory database for testing
	db, err := gorm.Open(sqlite.Open(":memory:?_foreign_keys=on"), &gorm.Config{})
	suite.NoError(err)
	suite.db = db

	suite.NoError(db.AutoMigrate(
		&models.Employee{},
		&models.Product{},
		&models.Production{},
		&models.Customer{},
		&models.Order{},
		&models.OrderItem{},
	))

	suite.NoError(seed.Reseed(db))

	// Build the same route table the server uses
	router := gin.New()
	employees := controllers.NewEmployeeController(db)
	products := controllers.NewProductController(db)
	productions := controllers.NewProductionController(db)
	customers := controllers.NewCustomerController(db)
	orders := controllers.NewOrderController(db)

	router.GET("/employees", employees.List)
	router.GET("/products", products.List)
	router.GET("/productions", productions.List)
	router.GET("/customers", customers.List)
	router.GET("/orders", orders.List)
	router.GET("/employee-performance", employees.Performance)
	router.GET("/top-selling-products", products.TopSelling)
	router.GET("/customer-lifetime-value", customers.LifetimeValue)
	router.GET("/production-efficiency", productions.Efficiency)

	suite.router = router
}

func (suite *ReportsIntegrationTestSuite) get(path string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("GET", path, nil)
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *ReportsIntegrationTestSuite) TestEmployeeListing() {
	w := suite.get("/employees")
	suite.Equal(http.StatusOK, w.Code)

	var employees []models.Employee
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &employees))
	suite.Len(employees, 2)
	suite.Equal("John Doe", employees[0].Name)
	suite.Equal("Jane Smith", employees[1].Name)
}

func (suite *ReportsIntegrationTestSuite) TestProductionListingEmbedsRelations() {
	w := suite.get("/productions")
	suite.Equal(http.StatusOK, w.Code)

	var productions []map[string]interface{}
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &productions))
	suite.Len(productions, 2)

	employee := productions[0]["employee"].(map[string]interface{})
	product := productions[0]["product"].(map[string]interface{})
	suite.Equal("John Doe", employee["name"])
	suite.Equal("Laptop", product["name"])
}

func (suite *ReportsIntegrationTestSuite) TestEmployeePerformanceReport() {
	w := suite.get("/employee-performance")
	suite.Equal(http.StatusOK, w.Code)

	var rows []controllers.EmployeePerformance
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &rows))
	suite.Equal([]controllers.EmployeePerformance{
		{EmployeeName: "Jane Smith", TotalQuantity: 75},
		{EmployeeName: "John Doe", TotalQuantity: 50},
	}, rows)
}

func (suite *ReportsIntegrationTestSuite) TestTopSellingProductsReport() {
	w := suite.get("/top-selling-products")
	suite.Equal(http.StatusOK, w.Code)

	var rows []controllers.TopSellingProduct
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &rows))
	// Laptop and Smartphone sold three units each; the tie resolves by name
	suite.Equal([]controllers.TopSellingProduct{
		{ProductName: "Laptop", TotalOrdered: 3},
		{ProductName: "Smartphone", TotalOrdered: 3},
	}, rows)

	w = suite.get("/top-selling-products?top_n=1")
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &rows))
	suite.Len(rows, 1)
	suite.Equal("Laptop", rows[0].ProductName)
}

func (suite *ReportsIntegrationTestSuite) TestCustomerLifetimeValueReport() {
	w := suite.get("/customer-lifetime-value")
	suite.Equal(http.StatusOK, w.Code)

	var rows []controllers.CustomerLifetimeValue
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &rows))
	suite.Equal([]controllers.CustomerLifetimeValue{
		{CustomerName: "Alice Brown", TotalValue: 3000},
		{CustomerName: "Bob Wilson", TotalValue: 1500},
	}, rows)

	// Raising the threshold to 2000 keeps only Alice
	w = suite.get("/customer-lifetime-value?threshold=2000")
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &rows))
	suite.Equal([]controllers.CustomerLifetimeValue{
		{CustomerName: "Alice Brown", TotalValue: 3000},
	}, rows)
}

func (suite *ReportsIntegrationTestSuite) TestProductionEfficiencyReport() {
	w := suite.get("/production-efficiency?production_date=2024-01-15")
	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`[{"product_name": "Laptop", "total_quantity": 50}]`, w.Body.String())

	w = suite.get("/production-efficiency?production_date=2024-13-40")
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.JSONEq(`{"error": "Invalid date format. Use YYYY-MM-DD"}`, w.Body.String())
}

func (suite *ReportsIntegrationTestSuite) TestReseedKeepsReportsStable() {
	before := suite.get("/employee-performance").Body.String()

	suite.NoError(seed.Reseed(suite.db))

	after := suite.get("/employee-performance").Body.String()
	suite.JSONEq(before, after, "Reseeding should leave the reports unchanged")
}

// TestReportsIntegrationTestSuite runs the suite
func TestReportsIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ReportsIntegrationTestSuite))
}

// TestReportsAreReadOnly verifies that hitting every report endpoint leaves
// the row counts untouched
func TestReportsAreReadOnly(t *testing.T) {
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:?_foreign_keys=on"), &gorm.Config{})
	assert.NoError(t, err)
	assert.NoError(t, db.AutoMigrate(
		&models.Employee{},
		&models.Product{},
		&models.Production{},
		&models.Customer{},
		&models.Order{},
		&models.OrderItem{},
	))
	assert.NoError(t, seed.Reseed(db))

	router := gin.New()
	employees := controllers.NewEmployeeController(db)
	products := controllers.NewProductController(db)
	productions := controllers.NewProductionController(db)
	customers := controllers.NewCustomerController(db)
	router.GET("/employee-performance", employees.Performance)
	router.GET("/top-selling-products", products.TopSelling)
	router.GET("/customer-lifetime-value", customers.LifetimeValue)
	router.GET("/production-efficiency", productions.Efficiency)

	countAll := func() map[string]int64 {
		counts := map[string]int64{}
		for name, model := range map[string]interface{}{
			"employees":   &models.Employee{},
			"products":    &models.Product{},
			"productions": &models.Production{},
			"customers":   &models.Customer{},
			"orders":      &models.Order{},
			"order_items": &models.OrderItem{},
		} {
			var count int64
			db.Model(model).Count(&count)
			counts[name] = count
		}
		return counts
	}

	before := countAll()
	for _, path := range []string{"/employee-performance", "/top-selling-products", "/customer-lifetime-value", "/production-efficiency?production_date=2024-01-15"} {
		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", path, nil)
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	}
	assert.Equal(t, before, countAll())
}
