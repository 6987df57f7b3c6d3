package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/intwaza/online-marketplace/internal/apperr"
	"github.com/intwaza/online-marketplace/internal/domain"
)

type StoreRepo struct{ db *gorm.DB }

func NewStoreRepo(db *gorm.DB) *StoreRepo { return &StoreRepo{db: db} }

func (r *StoreRepo) Create(ctx context.Context, s *domain.Store) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	if err := r.db.WithContext(ctx).Create(s).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperr.New(apperr.Conflict, "seller can only have one store")
		}
		return err
	}
	return nil
}

func (r *StoreRepo) ByID(ctx context.Context, id string) (*domain.Store, error) {
	var s domain.Store
	if err := r.db.WithContext(ctx).Preload("Owner").First(&s, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.NotFound, "store not found")
		}
		return nil, err
	}
	return &s, nil
}

// ByOwner returns (nil, nil) when the seller has no store yet.
func (r *StoreRepo) ByOwner(ctx context.Context, ownerID string) (*domain.Store, error) {
	var s domain.Store
	err := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *StoreRepo) List(ctx context.Context) ([]domain.Store, error) {
	var out []domain.Store
	return out, r.db.WithContext(ctx).Preload("Owner").Order("created_at ASC").Find(&out).Error
}

func (r *StoreRepo) Save(ctx context.Context, s *domain.Store) error {
	return r.db.WithContext(ctx).Save(s).Error
}

func (r *StoreRepo) Delete(ctx context.Context, s *domain.Store) error {
	return r.db.WithContext(ctx).Delete(s).Error
}
