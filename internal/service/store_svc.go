package service

import (
	"context"

	"github.com/intwaza/online-marketplace/internal/apperr"
	"github.com/intwaza/online-marketplace/internal/authz"
	"github.com/intwaza/online-marketplace/internal/domain"
)

type storeStore interface {
	Create(ctx context.Context, s *domain.Store) error
	ByID(ctx context.Context, id string) (*domain.Store, error)
	ByOwner(ctx context.Context, ownerID string) (*domain.Store, error)
	List(ctx context.Context) ([]domain.Store, error)
	Save(ctx context.Context, s *domain.Store) error
	Delete(ctx context.Context, s *domain.Store) error
}

type StoreSvc struct{ stores storeStore }

func NewStoreSvc(stores storeStore) *StoreSvc { return &StoreSvc{stores: stores} }

type CreateStoreInput struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

// Create opens a storefront for a seller. IsApproved stays false until an
// admin approves the store.
func (s *StoreSvc) Create(ctx context.Context, actor *domain.User, in CreateStoreInput) (*domain.Store, error) {
	if actor.Role != domain.RoleSeller {
		return nil, apperr.New(apperr.Forbidden, "only sellers can create stores")
	}
	existing, err := s.stores.ByOwner(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.New(apperr.Conflict, "seller can only have one store")
	}
	st := &domain.Store{Name: in.Name, Description: in.Description, OwnerID: actor.ID}
	if err := s.stores.Create(ctx, st); err != nil {
		return nil, err
	}
	return st, nil
}

func (s *StoreSvc) List(ctx context.Context) ([]domain.Store, error) {
	return s.stores.List(ctx)
}

func (s *StoreSvc) Get(ctx context.Context, id string) (*domain.Store, error) {
	return s.stores.ByID(ctx, id)
}

func (s *StoreSvc) Update(ctx context.Context, actor *domain.User, id string, in CreateStoreInput) (*domain.Store, error) {
	st, err := s.stores.ByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !authz.CanManageStore(actor, st) {
		return nil, apperr.New(apperr.Forbidden, "you can only update your own store")
	}
	st.Name = in.Name
	st.Description = in.Description
	if err := s.stores.Save(ctx, st); err != nil {
		return nil, err
	}
	return st, nil
}

func (s *StoreSvc) Approve(ctx context.Context, id string) (*domain.Store, error) {
	st, err := s.stores.ByID(ctx, id)
	if err != nil {
		return nil, err
	}
	st.IsApproved = true
	if err := s.stores.Save(ctx, st); err != nil {
		return nil, err
	}
	return st, nil
}

func (s *StoreSvc) Delete(ctx context.Context, actor *domain.User, id string) error {
	st, err := s.stores.ByID(ctx, id)
	if err != nil {
		return err
	}
	if !authz.CanManageStore(actor, st) {
		return apperr.New(apperr.Forbidden, "you can only delete your own store")
	}
	return s.stores.Delete(ctx, st)
}
