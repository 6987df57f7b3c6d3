package service

import (
	"context"
	"math"

	"github.com/intwaza/online-marketplace/internal/apperr"
	"github.com/intwaza/online-marketplace/internal/authz"
	"github.com/intwaza/online-marketplace/internal/domain"
)

type reviewStore interface {
	Create(ctx context.Context, rv *domain.Review) error
	ByID(ctx context.Context, id string) (*domain.Review, error)
	ByUserAndProduct(ctx context.Context, userID, productID string) (*domain.Review, error)
	ByProduct(ctx context.Context, productID string) ([]domain.Review, error)
	RatingsByProduct(ctx context.Context, productID string) ([]int, error)
	Save(ctx context.Context, rv *domain.Review) error
	Delete(ctx context.Context, rv *domain.Review) error
}

type orderReader interface {
	ByUser(ctx context.Context, userID string) ([]domain.Order, error)
}

type ReviewSvc struct {
	reviews  reviewStore
	products productReader
	orders   orderReader
}

func NewReviewSvc(reviews reviewStore, products productReader, orders orderReader) *ReviewSvc {
	return &ReviewSvc{reviews: reviews, products: products, orders: orders}
}

type ReviewInput struct {
	ProductID string  `json:"productId" binding:"required"`
	Rating    int     `json:"rating" binding:"required,min=1,max=5"`
	Comment   *string `json:"comment"`
}

// Create is gated by purchase history: the shopper must have a past order,
// any status, containing the product, and at most one review per
// (user, product) pair exists.
func (s *ReviewSvc) Create(ctx context.Context, actor *domain.User, in ReviewInput) (*domain.Review, error) {
	if actor.Role != domain.RoleShopper {
		return nil, apperr.New(apperr.Forbidden, "only shoppers can leave reviews")
	}
	if in.Rating < 1 || in.Rating > 5 {
		return nil, apperr.New(apperr.BadRequest, "rating must be between 1 and 5")
	}
	if _, err := s.products.ByID(ctx, in.ProductID); err != nil {
		return nil, err
	}

	orders, err := s.orders.ByUser(ctx, actor.ID)
	if err != nil {
		return nil, err
	}
	purchased := false
	for _, o := range orders {
		for _, it := range o.Items {
			if it.ProductID == in.ProductID {
				purchased = true
				break
			}
		}
	}
	if !purchased {
		return nil, apperr.New(apperr.BadRequest, "you can only review products you have purchased")
	}

	existing, err := s.reviews.ByUserAndProduct(ctx, actor.ID, in.ProductID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.New(apperr.BadRequest, "you have already reviewed this product")
	}

	rv := &domain.Review{
		UserID:    actor.ID,
		ProductID: in.ProductID,
		Rating:    in.Rating,
		Comment:   in.Comment,
	}
	if err := s.reviews.Create(ctx, rv); err != nil {
		return nil, err
	}
	return rv, nil
}

func (s *ReviewSvc) Get(ctx context.Context, id string) (*domain.Review, error) {
	return s.reviews.ByID(ctx, id)
}

func (s *ReviewSvc) ByProduct(ctx context.Context, productID string) ([]domain.Review, error) {
	return s.reviews.ByProduct(ctx, productID)
}

// ReviewUpdateInput edits an existing review. The product is fixed at creation
// and cannot be changed.
type ReviewUpdateInput struct {
	Rating  int     `json:"rating" binding:"required,min=1,max=5"`
	Comment *string `json:"comment"`
}

func (s *ReviewSvc) Update(ctx context.Context, actor *domain.User, id string, in ReviewUpdateInput) (*domain.Review, error) {
	rv, err := s.reviews.ByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !authz.CanEditReview(actor, rv) {
		return nil, apperr.New(apperr.Forbidden, "you can only update your own reviews")
	}
	if in.Rating < 1 || in.Rating > 5 {
		return nil, apperr.New(apperr.BadRequest, "rating must be between 1 and 5")
	}
	rv.Rating = in.Rating
	rv.Comment = in.Comment
	if err := s.reviews.Save(ctx, rv); err != nil {
		return nil, err
	}
	return rv, nil
}

func (s *ReviewSvc) Delete(ctx context.Context, actor *domain.User, id string) error {
	rv, err := s.reviews.ByID(ctx, id)
	if err != nil {
		return err
	}
	if !authz.CanDeleteReview(actor, rv) {
		return apperr.New(apperr.Forbidden, "you can only delete your own reviews")
	}
	return s.reviews.Delete(ctx, rv)
}

type RatingStats struct {
	AverageRating float64 `json:"averageRating"`
	TotalReviews  int     `json:"totalReviews"`
}

// Stats averages all ratings for a product, rounded to one decimal place.
func (s *ReviewSvc) Stats(ctx context.Context, productID string) (RatingStats, error) {
	ratings, err := s.reviews.RatingsByProduct(ctx, productID)
	if err != nil {
		return RatingStats{}, err
	}
	if len(ratings) == 0 {
		return RatingStats{}, nil
	}
	sum := 0
	for _, r := range ratings {
		sum += r
	}
	avg := float64(sum) / float64(len(ratings))
	return RatingStats{
		AverageRating: math.Round(avg*10) / 10,
		TotalReviews:  len(ratings),
	}, nil
}
