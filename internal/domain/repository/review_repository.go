package repository

import (
	"context"

	"critique/internal/domain/entity"

	"github.com/google/uuid"
)

// ReviewRepository defines the standard operations for review persistence.
//
// Update and Delete take the owner's user id and match on
// (review id AND owner id) in a single conditional statement. Zero affected
// rows means "not found or not owned" and surfaces as ErrReviewNotFound; the
// two causes are deliberately indistinguishable.
type ReviewRepository interface {
	// Create persists a new review. UserID must already be stamped from the
	// authenticated identity by the caller.
	Create(ctx context.Context, review *entity.Review) error

	// FindByID retrieves a single review by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error)

	// ListByItem retrieves all reviews for an item.
	ListByItem(ctx context.Context, itemID uuid.UUID) ([]*entity.Review, error)

	// ListByUser retrieves all reviews written by a user.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Review, error)

	// Update rewrites content and rating of the review owned by ownerID.
	Update(ctx context.Context, id, ownerID uuid.UUID, content string, rating int) (*entity.Review, error)

	// Delete removes the review owned by ownerID.
	Delete(ctx context.Context, id, ownerID uuid.UUID) error
}
