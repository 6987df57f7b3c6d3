package service

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/intwaza/online-marketplace/internal/apperr"
	"github.com/intwaza/online-marketplace/internal/domain"
	"github.com/intwaza/online-marketplace/internal/mailer"
	"github.com/intwaza/online-marketplace/pkg/token"
)

type authUserStore interface {
	Create(ctx context.Context, u *domain.User) error
	ByEmail(ctx context.Context, email string) (*domain.User, error)
	ByVerificationToken(ctx context.Context, tok string) (*domain.User, error)
	Save(ctx context.Context, u *domain.User) error
}

type AuthSvc struct {
	users      authUserStore
	mail       mailer.Mailer
	adminEmail string
	tokenTTL   time.Duration
}

func NewAuthSvc(users authUserStore, mail mailer.Mailer, adminEmail string, tokenTTL time.Duration) *AuthSvc {
	return &AuthSvc{users: users, mail: mail, adminEmail: adminEmail, tokenTTL: tokenTTL}
}

func (s *AuthSvc) Register(ctx context.Context, email, password, name string) (*domain.User, error) {
	if len(password) < 6 {
		return nil, apperr.New(apperr.BadRequest, "password must be at least 6 characters")
	}
	existing, err := s.users.ByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.New(apperr.Conflict, "user with this email already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	verifyTok := uuid.NewString()
	u := &domain.User{
		Email:             email,
		PasswordHash:      string(hash),
		Name:              name,
		Role:              domain.RoleShopper,
		VerificationToken: &verifyTok,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, err
	}

	s.mail.SendVerificationEmail(u.Email, verifyTok)
	return u, nil
}

func (s *AuthSvc) VerifyEmail(ctx context.Context, tok string) error {
	u, err := s.users.ByVerificationToken(ctx, tok)
	if err != nil {
		return err
	}
	u.IsVerified = true
	u.VerificationToken = nil
	return s.users.Save(ctx, u)
}

type LoginResult struct {
	AccessToken string      `json:"access_token"`
	User        UserSummary `json:"user"`
}

type UserSummary struct {
	ID    string      `json:"id"`
	Email string      `json:"email"`
	Name  string      `json:"name"`
	Role  domain.Role `json:"role"`
}

func (s *AuthSvc) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	u, err := s.users.ByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, apperr.New(apperr.Unauthorized, "invalid credentials")
	}
	if !u.IsVerified {
		return nil, apperr.New(apperr.Unauthorized, "please verify your email before logging in")
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return nil, apperr.New(apperr.Unauthorized, "invalid credentials")
	}

	tok, err := token.Create(u.ID, string(u.Role), u.Email, s.tokenTTL)
	if err != nil {
		return nil, err
	}
	return &LoginResult{
		AccessToken: tok,
		User:        UserSummary{ID: u.ID, Email: u.Email, Name: u.Name, Role: u.Role},
	}, nil
}

// ApplyAsSeller records a seller application. An existing shopper applies for
// an upgrade; an unknown email applies for a fresh seller account. Either way
// the application lands in the admin's mailbox.
func (s *AuthSvc) ApplyAsSeller(ctx context.Context, email, storeName, storeDescription string) (string, error) {
	existing, err := s.users.ByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if existing != nil {
		switch existing.Role {
		case domain.RoleSeller:
			return "", apperr.New(apperr.Conflict, "user is already a seller")
		case domain.RoleAdmin:
			return "", apperr.New(apperr.Conflict, "admin users cannot apply as sellers")
		case domain.RoleShopper:
			s.mail.SendSellerApplicationEmail(s.adminEmail, email, storeName, storeDescription, true)
			return "upgrade", nil
		default:
			return "", apperr.New(apperr.Conflict, "invalid user role for seller application")
		}
	}
	s.mail.SendSellerApplicationEmail(s.adminEmail, email, storeName, storeDescription, false)
	return "new_application", nil
}

// ApproveSeller upgrades an existing shopper to seller, or creates a verified
// seller account with a temporary password for an unknown email.
func (s *AuthSvc) ApproveSeller(ctx context.Context, email string) (*domain.User, string, error) {
	existing, err := s.users.ByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}

	if existing != nil {
		if existing.Role != domain.RoleShopper {
			return nil, "", apperr.New(apperr.Conflict, "user already exists and cannot be upgraded")
		}
		existing.Role = domain.RoleSeller
		if err := s.users.Save(ctx, existing); err != nil {
			return nil, "", err
		}
		s.mail.SendSellerUpgradeEmail(email)
		return existing, "upgrade", nil
	}

	tempPassword := uuid.NewString()[:8]
	hash, err := bcrypt.GenerateFromPassword([]byte(tempPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}
	u := &domain.User{
		Email:        email,
		PasswordHash: string(hash),
		Name:         "Seller",
		Role:         domain.RoleSeller,
		IsVerified:   true,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, "", err
	}
	s.mail.SendSellerApprovalEmail(email, tempPassword)
	return u, "new_account", nil
}

// SeedAdmin ensures the bootstrap admin account exists.
func (s *AuthSvc) SeedAdmin(ctx context.Context, email, name, password string) error {
	existing, err := s.users.ByEmail(ctx, email)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u := &domain.User{
		Email:        email,
		PasswordHash: string(hash),
		Name:         name,
		Role:         domain.RoleAdmin,
		IsVerified:   true,
	}
	if err := s.users.Create(ctx, u); err != nil {
		return err
	}
	log.Printf("[auth] seeded admin account %s", email)
	return nil
}
