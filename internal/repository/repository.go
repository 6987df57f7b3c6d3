package repository

import (
	"gorm.io/gorm"

	"github.com/intwaza/online-marketplace/internal/domain"
)

// Migrate creates or updates the schema for every marketplace entity.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&domain.User{},
		&domain.Store{},
		&domain.Category{},
		&domain.Product{},
		&domain.Order{},
		&domain.OrderItem{},
		&domain.Payment{},
		&domain.Review{},
	)
}
