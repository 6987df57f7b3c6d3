package service

import (
	"context"

	"github.com/intwaza/online-marketplace/internal/apperr"
	"github.com/intwaza/online-marketplace/internal/domain"
)

type categoryStore interface {
	Create(ctx context.Context, c *domain.Category) error
	ByID(ctx context.Context, id string) (*domain.Category, error)
	ByName(ctx context.Context, name string) (*domain.Category, error)
	List(ctx context.Context) ([]domain.Category, error)
	Save(ctx context.Context, c *domain.Category) error
	Delete(ctx context.Context, c *domain.Category) error
}

type CategorySvc struct{ categories categoryStore }

func NewCategorySvc(categories categoryStore) *CategorySvc {
	return &CategorySvc{categories: categories}
}

type CategoryInput struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

func (s *CategorySvc) Create(ctx context.Context, in CategoryInput) (*domain.Category, error) {
	existing, err := s.categories.ByName(ctx, in.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.New(apperr.Conflict, "category with this name already exists")
	}
	c := &domain.Category{Name: in.Name, Description: in.Description}
	if err := s.categories.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CategorySvc) List(ctx context.Context) ([]domain.Category, error) {
	return s.categories.List(ctx)
}

func (s *CategorySvc) Get(ctx context.Context, id string) (*domain.Category, error) {
	return s.categories.ByID(ctx, id)
}

func (s *CategorySvc) Update(ctx context.Context, id string, in CategoryInput) (*domain.Category, error) {
	c, err := s.categories.ByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Name != c.Name {
		existing, err := s.categories.ByName(ctx, in.Name)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, apperr.New(apperr.Conflict, "category with this name already exists")
		}
	}
	c.Name = in.Name
	c.Description = in.Description
	if err := s.categories.Save(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *CategorySvc) Delete(ctx context.Context, id string) error {
	c, err := s.categories.ByID(ctx, id)
	if err != nil {
		return err
	}
	return s.categories.Delete(ctx, c)
}
