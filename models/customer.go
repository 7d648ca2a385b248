package models

// Customer represents a buyer who places orders
type Customer struct {
	ID    uint    `gorm:"primaryKey" json:"id"`
	Name  string  `gorm:"size:100;not null" json:"name"`
	Email *string `gorm:"size:100;uniqueIndex" json:"email"` // nullable, unique when present
	Phone *string `gorm:"size:20" json:"phone"`
}

// TableName specifies the table name for the Customer model
func (Customer) TableName() string {
	return "customers"
}
