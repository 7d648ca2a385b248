package seed

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/factoryhub/factory-management-api/models"
)

// Reseed clears every factory table and repopulates it with the fixed demo
// dataset. The whole operation runs in a single transaction so concurrent
// readers never observe a partially cleared database. Running it twice in a
// row leaves identical row counts.
func Reseed(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		// Children before parents to satisfy foreign-key constraints.
		tables := []interface{}{
			&models.OrderItem{},
			&models.Order{},
			&models.Production{},
			&models.Employee{},
			&models.Product{},
			&models.Customer{},
		}
		for _, table := range tables {
			if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(table).Error; err != nil {
				return fmt.Errorf("failed to clear table: %w", err)
			}
		}

		employees := []models.Employee{
			{Name: "John Doe", Email: strptr("john@example.com"), Department: strptr("Production")},
			{Name: "Jane Smith", Email: strptr("jane@example.com"), Department: strptr("Quality Control")},
		}
		if err := tx.Create(&employees).Error; err != nil {
			return fmt.Errorf("failed to seed employees: %w", err)
		}

		products := []models.Product{
			{Name: "Laptop", Category: strptr("Electronics"), Price: 1000},
			{Name: "Smartphone", Category: strptr("Electronics"), Price: 500},
			{Name: "Tablet", Category: strptr("Electronics"), Price: 300},
		}
		if err := tx.Create(&products).Error; err != nil {
			return fmt.Errorf("failed to seed products: %w", err)
		}

		customers := []models.Customer{
			{Name: "Alice Brown", Email: strptr("alice@example.com"), Phone: strptr("123-456-7890")},
			{Name: "Bob Wilson", Email: strptr("bob@example.com"), Phone: strptr("987-654-3210")},
		}
		if err := tx.Create(&customers).Error; err != nil {
			return fmt.Errorf("failed to seed customers: %w", err)
		}

		productions := []models.Production{
			{EmployeeID: employees[0].ID, ProductID: products[0].ID, Quantity: 50, ProductionDate: date(2024, 1, 15)},
			{EmployeeID: employees[1].ID, ProductID: products[1].ID, Quantity: 75, ProductionDate: date(2024, 1, 16)},
		}
		if err := tx.Create(&productions).Error; err != nil {
			return fmt.Errorf("failed to seed productions: %w", err)
		}

		orders := []models.Order{
			{CustomerID: customers[0].ID, OrderDate: date(2024, 1, 20), TotalAmount: 3000},
			{CustomerID: customers[1].ID, OrderDate: date(2024, 1, 21), TotalAmount: 1500},
		}
		if err := tx.Create(&orders).Error; err != nil {
			return fmt.Errorf("failed to seed orders: %w", err)
		}

		orderItems := []models.OrderItem{
			{OrderID: orders[0].ID, ProductID: products[0].ID, Quantity: 3, Price: 1000},
			{OrderID: orders[1].ID, ProductID: products[1].ID, Quantity: 3, Price: 500},
		}
		if err := tx.Create(&orderItems).Error; err != nil {
			return fmt.Errorf("failed to seed order items: %w", err)
		}

		return nil
	})
}

func strptr(s string) *string {
	return &s
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
