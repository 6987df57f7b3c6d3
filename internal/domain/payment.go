package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
	PaymentRefunded  PaymentStatus = "refunded"
)

type PaymentMethod string

const (
	MethodCard         PaymentMethod = "card"
	MethodMobileMoney  PaymentMethod = "mobile_money"
	MethodBankTransfer PaymentMethod = "bank_transfer"
)

type Payment struct {
	ID        string          `gorm:"primaryKey" json:"id"`
	OrderID   string          `gorm:"index" json:"orderId"`
	Order     *Order          `gorm:"foreignKey:OrderID" json:"order,omitempty"`
	Amount    decimal.Decimal `gorm:"type:decimal(10,2)" json:"amount"`
	Method    PaymentMethod   `json:"method"`
	Status    PaymentStatus   `gorm:"index" json:"status"`
	Reference string          `json:"reference"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}
