package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/intwaza/online-marketplace/internal/apperr"
	"github.com/intwaza/online-marketplace/internal/domain"
)

type OrderRepo struct{ db *gorm.DB }

func NewOrderRepo(db *gorm.DB) *OrderRepo { return &OrderRepo{db: db} }

// CreateWithItems persists the order and its items in a single transaction, so
// a partial write never survives.
func (r *OrderRepo) CreateWithItems(ctx context.Context, o *domain.Order) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if o.ID == "" {
			o.ID = uuid.NewString()
		}
		items := o.Items
		o.Items = nil
		if err := tx.Create(o).Error; err != nil {
			return err
		}
		for i := range items {
			if items[i].ID == "" {
				items[i].ID = uuid.NewString()
			}
			items[i].OrderID = o.ID
		}
		if len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				return err
			}
		}
		o.Items = items
		return nil
	})
}

func (r *OrderRepo) ByID(ctx context.Context, id string) (*domain.Order, error) {
	var o domain.Order
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Items").
		Preload("Items.Product").
		Preload("Items.Product.Store").
		First(&o, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.NotFound, "order not found")
		}
		return nil, err
	}
	return &o, nil
}

func (r *OrderRepo) List(ctx context.Context) ([]domain.Order, error) {
	var out []domain.Order
	return out, r.db.WithContext(ctx).
		Preload("User").
		Preload("Items").
		Preload("Items.Product").
		Order("created_at DESC").
		Find(&out).Error
}

func (r *OrderRepo) ByUser(ctx context.Context, userID string) ([]domain.Order, error) {
	var out []domain.Order
	return out, r.db.WithContext(ctx).
		Preload("Items").
		Preload("Items.Product").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&out).Error
}

// ByStore returns orders containing at least one item whose product belongs to
// the given store.
func (r *OrderRepo) ByStore(ctx context.Context, storeID string) ([]domain.Order, error) {
	var out []domain.Order
	err := r.db.WithContext(ctx).
		Distinct("orders.*").
		Joins("JOIN order_items ON order_items.order_id = orders.id").
		Joins("JOIN products ON products.id = order_items.product_id").
		Where("products.store_id = ?", storeID).
		Preload("User").
		Preload("Items").
		Preload("Items.Product").
		Order("orders.created_at DESC").
		Find(&out).Error
	return out, err
}

func (r *OrderRepo) UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) error {
	return r.db.WithContext(ctx).Model(&domain.Order{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *OrderRepo) Delete(ctx context.Context, o *domain.Order) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("order_id = ?", o.ID).Delete(&domain.OrderItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(o).Error
	})
}
