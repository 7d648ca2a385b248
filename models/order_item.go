package models

// OrderItem represents one line of an order: a product, the quantity bought
// and the unit price at the time of the order
type OrderItem struct {
	ID        uint    `gorm:"primaryKey" json:"id"`
	OrderID   uint    `gorm:"not null;index" json:"order_id"` // foreign key to orders table
	Order     Order   `gorm:"foreignKey:OrderID" json:"-"`    // don't include full order in JSON
	ProductID uint    `gorm:"not null;index" json:"product_id"` // foreign key to products table
	Product   Product `gorm:"foreignKey:ProductID" json:"product"`
	Quantity  int     `gorm:"not null;check:quantity > 0" json:"quantity"`
	Price     float64 `gorm:"not null;check:price >= 0" json:"price"` // unit price when the order was placed
}

// TableName specifies the table name for the OrderItem model
func (OrderItem) TableName() string {
	return "order_items"
}
