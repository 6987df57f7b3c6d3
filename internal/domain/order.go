package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderProcessing OrderStatus = "processing"
	OrderShipped    OrderStatus = "shipped"
	OrderDelivered  OrderStatus = "delivered"
	OrderCancelled  OrderStatus = "cancelled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderPending, OrderProcessing, OrderShipped, OrderDelivered, OrderCancelled:
		return true
	}
	return false
}

type Order struct {
	ID          string          `gorm:"primaryKey" json:"id"`
	UserID      string          `gorm:"index" json:"userId"`
	User        *User           `gorm:"foreignKey:UserID" json:"user,omitempty"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(10,2)" json:"totalAmount"`
	Status      OrderStatus     `gorm:"index" json:"status"`
	Items       []OrderItem     `gorm:"foreignKey:OrderID" json:"items"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// OrderItem carries the product price snapshotted at order time. The snapshot
// never changes after creation, even when the product price does.
type OrderItem struct {
	ID        string          `gorm:"primaryKey" json:"id"`
	OrderID   string          `gorm:"index" json:"orderId"`
	ProductID string          `gorm:"index" json:"productId"`
	Product   *Product        `gorm:"foreignKey:ProductID" json:"product,omitempty"`
	Quantity  int             `gorm:"not null" json:"quantity"`
	Price     decimal.Decimal `gorm:"type:decimal(10,2)" json:"price"`
	CreatedAt time.Time       `json:"createdAt"`
}
