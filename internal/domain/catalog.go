package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Category struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"uniqueIndex;not null" json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type Product struct {
	ID            string          `gorm:"primaryKey" json:"id"`
	Name          string          `gorm:"index" json:"name"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `gorm:"type:decimal(10,2)" json:"price"`
	StockQuantity int             `gorm:"not null;default:0" json:"stockQuantity"`
	IsFeatured    bool            `gorm:"not null;default:false" json:"isFeatured"`
	StoreID       string          `gorm:"index" json:"storeId"`
	Store         *Store          `gorm:"foreignKey:StoreID" json:"store,omitempty"`
	CategoryID    string          `gorm:"index" json:"categoryId"`
	Category      *Category       `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
	UpdatedAt     time.Time       `json:"updatedAt"`
}
