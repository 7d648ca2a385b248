package models

// Product represents a manufactured item that can be produced and ordered
type Product struct {
	ID       uint    `gorm:"primaryKey" json:"id"`
	Name     string  `gorm:"size:100;not null" json:"name"`
	Category *string `gorm:"size:50" json:"category"`
	Price    float64 `gorm:"not null;check:price >= 0" json:"price"`
}

// TableName specifies the table name for the Product model
func (Product) TableName() string {
	return "products"
}
