package repository

import (
	"context"

	"critique/internal/domain/entity"

	"github.com/google/uuid"
)

// CommentRepository defines the standard operations for comment persistence.
// Ownership semantics on Update and Delete mirror ReviewRepository.
type CommentRepository interface {
	// Create persists a new comment with UserID already stamped by the caller.
	Create(ctx context.Context, comment *entity.Comment) error

	// ListByUser retrieves all comments written by a user.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Comment, error)

	// Update rewrites the content of the comment owned by ownerID.
	Update(ctx context.Context, id, ownerID uuid.UUID, content string) (*entity.Comment, error)

	// Delete removes the comment owned by ownerID.
	Delete(ctx context.Context, id, ownerID uuid.UUID) error
}
