package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/intwaza/online-marketplace/internal/apperr"
	"github.com/intwaza/online-marketplace/internal/domain"
)

type PaymentRepo struct{ db *gorm.DB }

func NewPaymentRepo(db *gorm.DB) *PaymentRepo { return &PaymentRepo{db: db} }

func (r *PaymentRepo) Create(ctx context.Context, p *domain.Payment) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *PaymentRepo) ByID(ctx context.Context, id string) (*domain.Payment, error) {
	var p domain.Payment
	err := r.db.WithContext(ctx).Preload("Order").First(&p, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.NotFound, "payment not found")
		}
		return nil, err
	}
	return &p, nil
}

func (r *PaymentRepo) ByOrder(ctx context.Context, orderID string) ([]domain.Payment, error) {
	var out []domain.Payment
	return out, r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		Order("created_at DESC").
		Find(&out).Error
}

// CompletedByOrder returns (nil, nil) when the order has no completed payment.
func (r *PaymentRepo) CompletedByOrder(ctx context.Context, orderID string) (*domain.Payment, error) {
	var p domain.Payment
	err := r.db.WithContext(ctx).
		Where("order_id = ? AND status = ?", orderID, domain.PaymentCompleted).
		First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PaymentRepo) Save(ctx context.Context, p *domain.Payment) error {
	return r.db.WithContext(ctx).Save(p).Error
}
