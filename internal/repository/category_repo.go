package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/intwaza/online-marketplace/internal/apperr"
	"github.com/intwaza/online-marketplace/internal/domain"
)

type CategoryRepo struct{ db *gorm.DB }

func NewCategoryRepo(db *gorm.DB) *CategoryRepo { return &CategoryRepo{db: db} }

func (r *CategoryRepo) Create(ctx context.Context, c *domain.Category) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	if err := r.db.WithContext(ctx).Create(c).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apperr.New(apperr.Conflict, "category with this name already exists")
		}
		return err
	}
	return nil
}

func (r *CategoryRepo) ByID(ctx context.Context, id string) (*domain.Category, error) {
	var c domain.Category
	if err := r.db.WithContext(ctx).First(&c, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.New(apperr.NotFound, "category not found")
		}
		return nil, err
	}
	return &c, nil
}

func (r *CategoryRepo) ByName(ctx context.Context, name string) (*domain.Category, error) {
	var c domain.Category
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *CategoryRepo) List(ctx context.Context) ([]domain.Category, error) {
	var out []domain.Category
	return out, r.db.WithContext(ctx).Order("name ASC").Find(&out).Error
}

func (r *CategoryRepo) Save(ctx context.Context, c *domain.Category) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *CategoryRepo) Delete(ctx context.Context, c *domain.Category) error {
	return r.db.WithContext(ctx).Delete(c).Error
}
