package catalog

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

// SeedIfEmpty inserts 50 demo orders and 50 demo products, each only if the
// respective table currently holds no rows at all. The check is an existence
// probe, so a single manually inserted row suppresses seeding for that table.
func SeedIfEmpty(db *gorm.DB) error {
	var order Order
	err := db.Select("id").Take(&order).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		orders := make([]Order, 0, 50)
		for i := 1; i <= 50; i++ {
			orders = append(orders, Order{Description: fmt.Sprintf("Order %d", i)})
		}
		if err := db.Create(&orders).Error; err != nil {
			return fmt.Errorf("failed to seed orders: %w", err)
		}
	} else if err != nil {
		return fmt.Errorf("failed to probe orders: %w", err)
	}

	var product Product
	err = db.Select("id").Take(&product).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		products := make([]Product, 0, 50)
		for i := 1; i <= 50; i++ {
			products = append(products, Product{Name: fmt.Sprintf("Product %d", i), Price: float64(i) * 10.0})
		}
		if err := db.Create(&products).Error; err != nil {
			return fmt.Errorf("failed to seed products: %w", err)
		}
	} else if err != nil {
		return fmt.Errorf("failed to probe products: %w", err)
	}

	return nil
}
