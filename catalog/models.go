// Package catalog is the small demo catalog service: paginated order and
// product listings over its own database. It shares nothing but entity names
// with the factory reporting service; the two schemas are unrelated.
package catalog

// Order is a demo order with a free-form description
type Order struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	Description string `gorm:"size:200" json:"description"`
}

// TableName specifies the table name for the Order model
func (Order) TableName() string {
	return "orders"
}

// Product is a demo product with a name and price
type Product struct {
	ID    uint    `gorm:"primaryKey" json:"id"`
	Name  string  `gorm:"size:100" json:"name"`
	Price float64 `json:"price"`
}

// TableName specifies the table name for the Product model
func (Product) TableName() string {
	return "products"
}
