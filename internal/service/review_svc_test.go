package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/intwaza/online-marketplace/internal/apperr"
	"github.com/intwaza/online-marketplace/internal/domain"
)

func newReviewFixture(purchased bool) (*ReviewSvc, *reviewStoreFake) {
	reviews := newReviewStoreFake()
	products := &productReaderFake{products: map[string]*domain.Product{
		"laptop": {ID: "laptop", Name: "Laptop"},
	}}
	orders := newOrderStoreFake()
	if purchased {
		orders.orders["order-1"] = &domain.Order{
			ID:     "order-1",
			UserID: shopper.ID,
			Status: domain.OrderDelivered,
			Items:  []domain.OrderItem{{ProductID: "laptop", Quantity: 1}},
		}
	}
	return NewReviewSvc(reviews, products, orders), reviews
}

func TestCreateReviewShopperOnly(t *testing.T) {
	svc, _ := newReviewFixture(true)

	seller := &domain.User{ID: "seller-1", Role: domain.RoleSeller}
	_, err := svc.Create(context.Background(), seller, ReviewInput{ProductID: "laptop", Rating: 5})
	assert.True(t, apperr.IsKind(err, apperr.Forbidden))
}

func TestCreateReviewRequiresPurchase(t *testing.T) {
	svc, _ := newReviewFixture(false)

	_, err := svc.Create(context.Background(), shopper, ReviewInput{ProductID: "laptop", Rating: 5})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "you can only review products you have purchased")
}

func TestCreateReviewOncePerProduct(t *testing.T) {
	svc, _ := newReviewFixture(true)
	ctx := context.Background()

	_, err := svc.Create(ctx, shopper, ReviewInput{ProductID: "laptop", Rating: 5})
	require.NoError(t, err)

	_, err = svc.Create(ctx, shopper, ReviewInput{ProductID: "laptop", Rating: 3})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "you have already reviewed this product")
}

func TestCreateReviewValidatesRating(t *testing.T) {
	svc, _ := newReviewFixture(true)

	for _, rating := range []int{0, 6} {
		_, err := svc.Create(context.Background(), shopper, ReviewInput{ProductID: "laptop", Rating: rating})
		assert.True(t, apperr.IsKind(err, apperr.BadRequest))
	}
}

func TestReviewUpdateAuthorOnly(t *testing.T) {
	svc, reviews := newReviewFixture(true)
	ctx := context.Background()

	rv, err := svc.Create(ctx, shopper, ReviewInput{ProductID: "laptop", Rating: 5})
	require.NoError(t, err)

	other := &domain.User{ID: "shopper-2", Role: domain.RoleShopper}
	_, err = svc.Update(ctx, other, rv.ID, ReviewUpdateInput{Rating: 1})
	assert.True(t, apperr.IsKind(err, apperr.Forbidden))

	// Admins may delete but not edit someone else's review.
	admin := &domain.User{ID: "admin-1", Role: domain.RoleAdmin}
	_, err = svc.Update(ctx, admin, rv.ID, ReviewUpdateInput{Rating: 1})
	assert.True(t, apperr.IsKind(err, apperr.Forbidden))
	require.NoError(t, svc.Delete(ctx, admin, rv.ID))
	assert.Empty(t, reviews.reviews)
}

func TestReviewUpdateKeepsProduct(t *testing.T) {
	svc, reviews := newReviewFixture(true)
	ctx := context.Background()

	rv, err := svc.Create(ctx, shopper, ReviewInput{ProductID: "laptop", Rating: 5})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, shopper, rv.ID, ReviewUpdateInput{Rating: 2, Comment: strptr("meh")})
	require.NoError(t, err)
	assert.Equal(t, "laptop", updated.ProductID)
	assert.Equal(t, 2, updated.Rating)
	assert.Equal(t, "laptop", reviews.reviews[rv.ID].ProductID)
}

func TestRatingStatsRoundsToOneDecimal(t *testing.T) {
	svc, reviews := newReviewFixture(true)
	ctx := context.Background()

	for i, rating := range []int{4, 5, 5} {
		reviews.reviews[string(rune('a'+i))] = &domain.Review{
			ID:        string(rune('a' + i)),
			UserID:    "u",
			ProductID: "laptop",
			Rating:    rating,
		}
	}

	stats, err := svc.Stats(ctx, "laptop")
	require.NoError(t, err)
	assert.Equal(t, 4.7, stats.AverageRating)
	assert.Equal(t, 3, stats.TotalReviews)
}

func TestRatingStatsEmptyProduct(t *testing.T) {
	svc, _ := newReviewFixture(true)

	stats, err := svc.Stats(context.Background(), "laptop")
	require.NoError(t, err)
	assert.Zero(t, stats.AverageRating)
	assert.Zero(t, stats.TotalReviews)
}
