package usecase

import (
	"context"

	"critique/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateReviewInput defines the data required to post a review on an item.
// The owner is not part of the input; it always comes from the authenticated
// identity.
type CreateReviewInput struct {
	Content string `json:"content" validate:"required"`
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
}

// UpdateReviewInput defines the data a review owner may change.
type UpdateReviewInput struct {
	Content string `json:"content" validate:"required"`
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
}

// ReviewUsecase defines the review operations. Mutations take the
// authenticated user id and only touch rows that user owns.
type ReviewUsecase interface {
	CreateReview(ctx context.Context, itemID, authUserID uuid.UUID, input *CreateReviewInput) (*entity.Review, error)
	GetReview(ctx context.Context, reviewID uuid.UUID) (*entity.Review, error)
	ListReviewsByItem(ctx context.Context, itemID uuid.UUID) ([]*entity.Review, error)
	ListMyReviews(ctx context.Context, authUserID uuid.UUID) ([]*entity.Review, error)
	UpdateReview(ctx context.Context, reviewID, authUserID uuid.UUID, input *UpdateReviewInput) (*entity.Review, error)
	DeleteReview(ctx context.Context, reviewID, authUserID uuid.UUID) error
}
