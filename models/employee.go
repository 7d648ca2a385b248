package models

// Employee represents a factory worker who performs production runs
type Employee struct {
	ID         uint    `gorm:"primaryKey" json:"id"`
	Name       string  `gorm:"size:100;not null" json:"name"`
	Email      *string `gorm:"size:100;uniqueIndex" json:"email"` // nullable, unique when present
	Department *string `gorm:"size:50" json:"department"`
}

// TableName specifies the table name for the Employee model
func (Employee) TableName() string {
	return "employees"
}
