package usecase

import (
	"context"

	"critique/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateCommentInput defines the data required to comment on a review.
type CreateCommentInput struct {
	Content string `json:"content" validate:"required"`
}

// UpdateCommentInput defines the data a comment owner may change.
type UpdateCommentInput struct {
	Content string `json:"content" validate:"required"`
}

// CommentUsecase defines the comment operations, with the same ownership
// semantics as ReviewUsecase.
type CommentUsecase interface {
	CreateComment(ctx context.Context, reviewID, authUserID uuid.UUID, input *CreateCommentInput) (*entity.Comment, error)
	ListMyComments(ctx context.Context, authUserID uuid.UUID) ([]*entity.Comment, error)
	UpdateComment(ctx context.Context, commentID, authUserID uuid.UUID, input *UpdateCommentInput) (*entity.Comment, error)
	DeleteComment(ctx context.Context, commentID, authUserID uuid.UUID) error
}
