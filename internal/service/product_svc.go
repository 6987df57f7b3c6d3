package service

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/intwaza/online-marketplace/internal/apperr"
	"github.com/intwaza/online-marketplace/internal/authz"
	"github.com/intwaza/online-marketplace/internal/domain"
)

type productStore interface {
	Create(ctx context.Context, p *domain.Product) error
	ByID(ctx context.Context, id string) (*domain.Product, error)
	List(ctx context.Context, page, limit int, search, categoryID string) ([]domain.Product, int64, error)
	ByStore(ctx context.Context, storeID string) ([]domain.Product, error)
	Featured(ctx context.Context) ([]domain.Product, error)
	Save(ctx context.Context, p *domain.Product) error
	Delete(ctx context.Context, p *domain.Product) error
}

type storeReader interface {
	ByOwner(ctx context.Context, ownerID string) (*domain.Store, error)
}

type categoryReader interface {
	ByID(ctx context.Context, id string) (*domain.Category, error)
}

type ProductSvc struct {
	products   productStore
	stores     storeReader
	categories categoryReader
}

func NewProductSvc(products productStore, stores storeReader, categories categoryReader) *ProductSvc {
	return &ProductSvc{products: products, stores: stores, categories: categories}
}

type ProductInput struct {
	Name          string          `json:"name" binding:"required"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price"`
	StockQuantity int             `json:"stockQuantity"`
	CategoryID    string          `json:"categoryId" binding:"required"`
}

func (s *ProductSvc) Create(ctx context.Context, actor *domain.User, in ProductInput) (*domain.Product, error) {
	if actor.Role != domain.RoleSeller {
		return nil, apperr.New(apperr.Forbidden, "only sellers can create products")
	}
	store, err := s.stores.ByOwner(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, apperr.New(apperr.BadRequest, "you need to create a store first")
	}
	if !store.IsApproved {
		return nil, apperr.New(apperr.BadRequest, "your store needs to be approved first")
	}
	if in.Price.IsNegative() {
		return nil, apperr.New(apperr.BadRequest, "price must not be negative")
	}
	if in.StockQuantity < 0 {
		return nil, apperr.New(apperr.BadRequest, "stock quantity must not be negative")
	}
	if _, err := s.categories.ByID(ctx, in.CategoryID); err != nil {
		return nil, err
	}

	p := &domain.Product{
		Name:          in.Name,
		Description:   in.Description,
		Price:         in.Price,
		StockQuantity: in.StockQuantity,
		StoreID:       store.ID,
		CategoryID:    in.CategoryID,
	}
	if err := s.products.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *ProductSvc) List(ctx context.Context, page, limit int, search, categoryID string) ([]domain.Product, int64, error) {
	return s.products.List(ctx, page, limit, search, categoryID)
}

func (s *ProductSvc) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.products.ByID(ctx, id)
}

func (s *ProductSvc) ByStore(ctx context.Context, storeID string) ([]domain.Product, error) {
	return s.products.ByStore(ctx, storeID)
}

func (s *ProductSvc) Featured(ctx context.Context) ([]domain.Product, error) {
	return s.products.Featured(ctx)
}

func (s *ProductSvc) Update(ctx context.Context, actor *domain.User, id string, in ProductInput) (*domain.Product, error) {
	p, err := s.products.ByID(ctx, id)
	if err != nil {
		return nil, err
	}
	sellerStoreID, err := s.sellerStoreID(ctx, actor)
	if err != nil {
		return nil, err
	}
	if !authz.CanManageProduct(actor, p, sellerStoreID) {
		return nil, apperr.New(apperr.Forbidden, "you can only update your own products")
	}
	if in.Price.IsNegative() {
		return nil, apperr.New(apperr.BadRequest, "price must not be negative")
	}
	if in.StockQuantity < 0 {
		return nil, apperr.New(apperr.BadRequest, "stock quantity must not be negative")
	}
	if in.CategoryID != "" && in.CategoryID != p.CategoryID {
		if _, err := s.categories.ByID(ctx, in.CategoryID); err != nil {
			return nil, err
		}
		p.CategoryID = in.CategoryID
	}
	p.Name = in.Name
	p.Description = in.Description
	p.Price = in.Price
	p.StockQuantity = in.StockQuantity
	if err := s.products.Save(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// Feature toggles the featured flag.
func (s *ProductSvc) Feature(ctx context.Context, id string) (*domain.Product, error) {
	p, err := s.products.ByID(ctx, id)
	if err != nil {
		return nil, err
	}
	p.IsFeatured = !p.IsFeatured
	if err := s.products.Save(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *ProductSvc) UpdateStock(ctx context.Context, actor *domain.User, id string, quantity int) (*domain.Product, error) {
	if quantity < 0 {
		return nil, apperr.New(apperr.BadRequest, "stock quantity must not be negative")
	}
	p, err := s.products.ByID(ctx, id)
	if err != nil {
		return nil, err
	}
	sellerStoreID, err := s.sellerStoreID(ctx, actor)
	if err != nil {
		return nil, err
	}
	if !authz.CanManageProduct(actor, p, sellerStoreID) {
		return nil, apperr.New(apperr.Forbidden, "you can only update your own products")
	}
	p.StockQuantity = quantity
	if err := s.products.Save(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *ProductSvc) Delete(ctx context.Context, actor *domain.User, id string) error {
	p, err := s.products.ByID(ctx, id)
	if err != nil {
		return err
	}
	sellerStoreID, err := s.sellerStoreID(ctx, actor)
	if err != nil {
		return err
	}
	if !authz.CanManageProduct(actor, p, sellerStoreID) {
		return apperr.New(apperr.Forbidden, "you can only delete your own products")
	}
	return s.products.Delete(ctx, p)
}

func (s *ProductSvc) sellerStoreID(ctx context.Context, actor *domain.User) (string, error) {
	if actor.Role != domain.RoleSeller {
		return "", nil
	}
	store, err := s.stores.ByOwner(ctx, actor.ID)
	if err != nil {
		return "", err
	}
	if store == nil {
		return "", nil
	}
	return store.ID, nil
}
