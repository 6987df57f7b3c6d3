package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/intwaza/online-marketplace/internal/apperr"
	"github.com/intwaza/online-marketplace/internal/domain"
)

type ProductRepo struct{ db *gorm.DB }

func NewProductRepo(db *gorm.DB) *ProductRepo { return &ProductRepo{db: db} }

func (r *ProductRepo) Create(ctx context.Context, p *domain.Product) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *ProductRepo) ByID(ctx context.Context, id string) (*domain.Product, error) {
	var p domain.Product
	err := r.db.WithContext(ctx).
		Preload("Store").
		Preload("Category").
		First(&p, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.NotFound, "product not found")
		}
		return nil, err
	}
	return &p, nil
}

// List returns products of approved stores only, newest first, with optional
// name/description search and category filter.
func (r *ProductRepo) List(ctx context.Context, page, limit int, search, categoryID string) ([]domain.Product, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit <= 0 {
		limit = 10
	}
	qb := r.db.WithContext(ctx).Model(&domain.Product{}).
		Joins("JOIN stores ON stores.id = products.store_id").
		Where("stores.is_approved = ?", true)
	if search != "" {
		qb = qb.Where("products.name ILIKE ? OR products.description ILIKE ?", "%"+search+"%", "%"+search+"%")
	}
	if categoryID != "" {
		qb = qb.Where("products.category_id = ?", categoryID)
	}
	var total int64
	if err := qb.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var out []domain.Product
	err := qb.Preload("Store").Preload("Category").
		Order("products.created_at DESC").
		Limit(limit).Offset((page - 1) * limit).
		Find(&out).Error
	return out, total, err
}

func (r *ProductRepo) ByStore(ctx context.Context, storeID string) ([]domain.Product, error) {
	var out []domain.Product
	return out, r.db.WithContext(ctx).Preload("Category").
		Where("store_id = ?", storeID).Find(&out).Error
}

func (r *ProductRepo) Featured(ctx context.Context) ([]domain.Product, error) {
	var out []domain.Product
	return out, r.db.WithContext(ctx).Preload("Store").Preload("Category").
		Where("is_featured = ?", true).Find(&out).Error
}

func (r *ProductRepo) Save(ctx context.Context, p *domain.Product) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *ProductRepo) Delete(ctx context.Context, p *domain.Product) error {
	return r.db.WithContext(ctx).Delete(p).Error
}

// DecrementStock applies the stock check and the decrement in one conditional
// update, so two concurrent orders cannot both pass a separate pre-check.
// Returns false when the remaining stock was insufficient.
func (r *ProductRepo) DecrementStock(ctx context.Context, id string, qty int) (bool, error) {
	res := r.db.WithContext(ctx).Model(&domain.Product{}).
		Where("id = ? AND stock_quantity >= ?", id, qty).
		UpdateColumn("stock_quantity", gorm.Expr("stock_quantity - ?", qty))
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
