package models

import "time"

// Production represents one manufacturing event: an employee producing a
// quantity of a product on a given date
type Production struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	EmployeeID     uint      `gorm:"not null;index" json:"employee_id"` // foreign key to employees table
	Employee       Employee  `gorm:"foreignKey:EmployeeID" json:"employee"`
	ProductID      uint      `gorm:"not null;index" json:"product_id"` // foreign key to products table
	Product        Product   `gorm:"foreignKey:ProductID" json:"product"`
	Quantity       int       `gorm:"not null;check:quantity > 0" json:"quantity"`
	ProductionDate time.Time `gorm:"type:date;not null" json:"production_date"`
}

// TableName specifies the table name for the Production model
func (Production) TableName() string {
	return "productions"
}
