package usecase

import (
	"context"

	"critique/internal/domain/entity"

	"github.com/google/uuid"
)

// ItemUsecase defines the read-only catalog operations.
type ItemUsecase interface {
	ListItems(ctx context.Context) ([]*entity.Item, error)
	GetItem(ctx context.Context, itemID uuid.UUID) (*entity.Item, error)
}
