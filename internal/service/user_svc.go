package service

import (
	"context"

	"github.com/intwaza/online-marketplace/internal/apperr"
	"github.com/intwaza/online-marketplace/internal/domain"
)

type userStore interface {
	ByID(ctx context.Context, id string) (*domain.User, error)
	ByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Save(ctx context.Context, u *domain.User) error
	Delete(ctx context.Context, u *domain.User) error
}

type UserSvc struct{ users userStore }

func NewUserSvc(users userStore) *UserSvc { return &UserSvc{users: users} }

func (s *UserSvc) List(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

// Get returns a profile to its owner or an admin. Profiles carry email and
// verification state, so other users never see them.
func (s *UserSvc) Get(ctx context.Context, actor *domain.User, id string) (*domain.User, error) {
	if actor.Role != domain.RoleAdmin && actor.ID != id {
		return nil, apperr.New(apperr.Forbidden, "you can only view your own profile")
	}
	return s.users.ByID(ctx, id)
}

type UpdateUserInput struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

func (s *UserSvc) Update(ctx context.Context, actor *domain.User, id string, in UpdateUserInput) (*domain.User, error) {
	if actor.Role != domain.RoleAdmin && actor.ID != id {
		return nil, apperr.New(apperr.Forbidden, "you can only update your own profile")
	}
	u, err := s.users.ByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Name != nil {
		u.Name = *in.Name
	}
	if in.Email != nil && *in.Email != u.Email {
		taken, err := s.users.ByEmail(ctx, *in.Email)
		if err != nil {
			return nil, err
		}
		if taken != nil {
			return nil, apperr.New(apperr.Conflict, "user with this email already exists")
		}
		u.Email = *in.Email
	}
	if err := s.users.Save(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *UserSvc) Delete(ctx context.Context, id string) error {
	u, err := s.users.ByID(ctx, id)
	if err != nil {
		return err
	}
	return s.users.Delete(ctx, u)
}
