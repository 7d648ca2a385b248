package catalog

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRouter wires the catalog endpoints onto a new Gin engine
func SetupRouter(db *gorm.DB) *gin.Engine {
	router := gin.Default()

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"success": true,
			"message": "Catalog API is running",
		})
	})

	router.GET("/orders", listOrders(db))
	router.GET("/products", listProducts(db))

	return router
}

// listOrders handles GET /orders with page/per_page pagination
func listOrders(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, perPage := pageParams(c)

		var total int64
		if err := db.Model(&Order{}).Count(&total).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		orders := []Order{}
		if err := db.Order("id ASC").Limit(perPage).Offset((page - 1) * perPage).Find(&orders).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"orders":       orders,
			"total":        total,
			"pages":        pageCount(total, perPage),
			"current_page": page,
		})
	}
}

// listProducts handles GET /products with page/per_page pagination
func listProducts(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		page, perPage := pageParams(c)

		var total int64
		if err := db.Model(&Product{}).Count(&total).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		products := []Product{}
		if err := db.Order("id ASC").Limit(perPage).Offset((page - 1) * perPage).Find(&products).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"products":     products,
			"total":        total,
			"pages":        pageCount(total, perPage),
			"current_page": page,
		})
	}
}

// pageParams reads page (default 1) and per_page (default 10) from the query
// string. Values below 1 or unparsable values fall back to the defaults.
// A page past the last one is not an error; it simply selects an empty slice.
func pageParams(c *gin.Context) (page, perPage int) {
	page, perPage = 1, 10
	if v := c.Query("page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 1 {
			page = n
		}
	}
	if v := c.Query("per_page"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 1 {
			perPage = n
		}
	}
	return page, perPage
}

// pageCount returns ceil(total/perPage)
func pageCount(total int64, perPage int) int64 {
	return (total + int64(perPage) - 1) / int64(perPage)
}
