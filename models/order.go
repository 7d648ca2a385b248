package models

import "time"

// Order represents a customer purchase with its total amount
type Order struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	CustomerID  uint      `gorm:"not null;index" json:"customer_id"` // foreign key to customers table
	Customer    Customer  `gorm:"foreignKey:CustomerID" json:"customer"`
	OrderDate   time.Time `gorm:"type:date;not null" json:"order_date"`
	TotalAmount float64   `gorm:"not null;check:total_amount >= 0" json:"total_amount"`
}

// TableName specifies the table name for the Order model
func (Order) TableName() string {
	return "orders"
}
