// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"critique/internal/domain/entity"

	"github.com/google/uuid"
)

// Sentinel not-found errors. Repositories translate the store's "no rows"
// outcome into these so the application layer never depends on GORM errors.
var (
	ErrUserNotFound    = errors.New("user not found")
	ErrItemNotFound    = errors.New("item not found")
	ErrReviewNotFound  = errors.New("review not found")
	ErrCommentNotFound = errors.New("comment not found")
)

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// Create persists a new user. The backing store enforces username
	// uniqueness; a violation surfaces as a conflict error.
	Create(ctx context.Context, user *entity.User) error

	// FindByUsername retrieves a user including the password hash.
	// This is the only read path that returns credential material.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// FindByID retrieves a user's public fields (id, username). The password
	// hash is never selected on this path.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
}
