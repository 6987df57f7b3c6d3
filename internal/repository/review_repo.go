package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/intwaza/online-marketplace/internal/apperr"
	"github.com/intwaza/online-marketplace/internal/domain"
)

type ReviewRepo struct{ db *gorm.DB }

func NewReviewRepo(db *gorm.DB) *ReviewRepo { return &ReviewRepo{db: db} }

func (r *ReviewRepo) Create(ctx context.Context, rv *domain.Review) error {
	if rv.ID == "" {
		rv.ID = uuid.NewString()
	}
	if err := r.db.WithContext(ctx).Create(rv).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperr.New(apperr.BadRequest, "you have already reviewed this product")
		}
		return err
	}
	return nil
}

func (r *ReviewRepo) ByID(ctx context.Context, id string) (*domain.Review, error) {
	var rv domain.Review
	err := r.db.WithContext(ctx).Preload("User").Preload("Product").First(&rv, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.NotFound, "review not found")
		}
		return nil, err
	}
	return &rv, nil
}

// ByUserAndProduct returns (nil, nil) when the user has not reviewed the product.
func (r *ReviewRepo) ByUserAndProduct(ctx context.Context, userID, productID string) (*domain.Review, error) {
	var rv domain.Review
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		First(&rv).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rv, nil
}

func (r *ReviewRepo) ByProduct(ctx context.Context, productID string) ([]domain.Review, error) {
	var out []domain.Review
	return out, r.db.WithContext(ctx).
		Preload("User").
		Where("product_id = ?", productID).
		Order("created_at DESC").
		Find(&out).Error
}

func (r *ReviewRepo) RatingsByProduct(ctx context.Context, productID string) ([]int, error) {
	var ratings []int
	err := r.db.WithContext(ctx).Model(&domain.Review{}).
		Where("product_id = ?", productID).
		Pluck("rating", &ratings).Error
	return ratings, err
}

func (r *ReviewRepo) Save(ctx context.Context, rv *domain.Review) error {
	return r.db.WithContext(ctx).Save(rv).Error
}

func (r *ReviewRepo) Delete(ctx context.Context, rv *domain.Review) error {
	return r.db.WithContext(ctx).Delete(rv).Error
}
