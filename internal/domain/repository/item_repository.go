package repository

import (
	"context"

	"critique/internal/domain/entity"

	"github.com/google/uuid"
)

// ItemRepository exposes the read-only catalog. Items are provisioned out of
// band, so there are no mutation operations here.
type ItemRepository interface {
	// List retrieves all items.
	List(ctx context.Context) ([]*entity.Item, error)

	// FindByID retrieves a single item by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Item, error)
}
