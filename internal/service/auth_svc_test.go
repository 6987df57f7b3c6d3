package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/intwaza/online-marketplace/internal/apperr"
	"github.com/intwaza/online-marketplace/internal/domain"
)

func newAuthSvc(t *testing.T) (*AuthSvc, *userStoreFake, *mailSpy) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	users := newUserStoreFake()
	mail := &mailSpy{}
	return NewAuthSvc(users, mail, "admin@marketplace.com", time.Hour), users, mail
}

func TestRegisterRejectsShortPassword(t *testing.T) {
	svc, _, _ := newAuthSvc(t)

	_, err := svc.Register(context.Background(), "a@b.com", "12345", "A")
	assert.True(t, apperr.IsKind(err, apperr.BadRequest))
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	svc, _, _ := newAuthSvc(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "a@b.com", "secret123", "A")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "a@b.com", "secret123", "B")
	assert.True(t, apperr.IsKind(err, apperr.Conflict))
}

func TestLoginRequiresVerifiedEmail(t *testing.T) {
	svc, users, mail := newAuthSvc(t)
	ctx := context.Background()

	u, err := svc.Register(ctx, "shopper@b.com", "secret123", "Shopper")
	require.NoError(t, err)
	assert.Equal(t, domain.RoleShopper, u.Role)
	assert.False(t, u.IsVerified)
	assert.Contains(t, mail.calls, "verification:shopper@b.com")

	_, err = svc.Login(ctx, "shopper@b.com", "secret123")
	assert.True(t, apperr.IsKind(err, apperr.Unauthorized))

	stored := users.users[u.ID]
	require.NotNil(t, stored.VerificationToken)
	require.NoError(t, svc.VerifyEmail(ctx, *stored.VerificationToken))

	res, err := svc.Login(ctx, "shopper@b.com", "secret123")
	require.NoError(t, err)
	assert.NotEmpty(t, res.AccessToken)
	assert.Equal(t, "shopper@b.com", res.User.Email)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	svc, users, _ := newAuthSvc(t)
	ctx := context.Background()

	u, err := svc.Register(ctx, "a@b.com", "secret123", "A")
	require.NoError(t, err)
	users.users[u.ID].IsVerified = true

	_, err = svc.Login(ctx, "a@b.com", "wrong-password")
	assert.True(t, apperr.IsKind(err, apperr.Unauthorized))

	_, err = svc.Login(ctx, "nobody@b.com", "secret123")
	assert.True(t, apperr.IsKind(err, apperr.Unauthorized))
}

func TestApplyAsSeller(t *testing.T) {
	svc, users, mail := newAuthSvc(t)
	ctx := context.Background()

	outcome, err := svc.ApplyAsSeller(ctx, "new@b.com", "New Store", "things")
	require.NoError(t, err)
	assert.Equal(t, "new_application", outcome)

	u, err := svc.Register(ctx, "shopper@b.com", "secret123", "Shopper")
	require.NoError(t, err)

	outcome, err = svc.ApplyAsSeller(ctx, "shopper@b.com", "Shop", "stuff")
	require.NoError(t, err)
	assert.Equal(t, "upgrade", outcome)
	assert.Contains(t, mail.calls, "application:shopper@b.com:upgrade=true")

	users.users[u.ID].Role = domain.RoleSeller
	_, err = svc.ApplyAsSeller(ctx, "shopper@b.com", "Shop", "stuff")
	assert.True(t, apperr.IsKind(err, apperr.Conflict))
}

func TestApproveSellerUpgradesExistingShopper(t *testing.T) {
	svc, users, mail := newAuthSvc(t)
	ctx := context.Background()

	u, err := svc.Register(ctx, "shopper@b.com", "secret123", "Shopper")
	require.NoError(t, err)

	approved, outcome, err := svc.ApproveSeller(ctx, "shopper@b.com")
	require.NoError(t, err)
	assert.Equal(t, "upgrade", outcome)
	assert.Equal(t, domain.RoleSeller, approved.Role)
	assert.Equal(t, domain.RoleSeller, users.users[u.ID].Role)
	assert.Contains(t, mail.calls, "upgrade:shopper@b.com")
}

func TestApproveSellerCreatesAccountForUnknownEmail(t *testing.T) {
	svc, _, mail := newAuthSvc(t)

	approved, outcome, err := svc.ApproveSeller(context.Background(), "new@b.com")
	require.NoError(t, err)
	assert.Equal(t, "new_account", outcome)
	assert.Equal(t, domain.RoleSeller, approved.Role)
	assert.True(t, approved.IsVerified)
	assert.Contains(t, mail.calls, "approval:new@b.com")
}

func TestApproveSellerRejectsNonShopperAccounts(t *testing.T) {
	svc, _, _ := newAuthSvc(t)
	ctx := context.Background()

	require.NoError(t, svc.SeedAdmin(ctx, "admin@marketplace.com", "Admin", "admin123"))

	_, _, err := svc.ApproveSeller(ctx, "admin@marketplace.com")
	assert.True(t, apperr.IsKind(err, apperr.Conflict))
}

func TestSeedAdminIsIdempotent(t *testing.T) {
	svc, users, _ := newAuthSvc(t)
	ctx := context.Background()

	require.NoError(t, svc.SeedAdmin(ctx, "admin@marketplace.com", "Admin", "admin123"))
	require.NoError(t, svc.SeedAdmin(ctx, "admin@marketplace.com", "Admin", "admin123"))
	assert.Len(t, users.users, 1)
}
