package impl

import (
	"context"
	"log/slog"

	deliverycontext "critique/internal/delivery/context"
	"critique/internal/domain/entity"
	domainerrors "critique/internal/domain/errors"
	"critique/internal/domain/repository"
	"critique/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// itemService implements the ItemUsecase interface.
type itemService struct {
	itemRepo repository.ItemRepository
	logger   *slog.Logger
}

// ItemServiceParams holds dependencies for itemService, injected by Fx.
type ItemServiceParams struct {
	fx.In

	ItemRepo repository.ItemRepository
	Logger   *slog.Logger
}

// NewItemService is the constructor for itemService.
func NewItemService(params ItemServiceParams) usecase.ItemUsecase {
	return &itemService{
		itemRepo: params.ItemRepo,
		logger:   params.Logger,
	}
}

func (srv *itemService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListItems returns the full catalog.
func (srv *itemService) ListItems(ctx context.Context) ([]*entity.Item, error) {
	items, err := srv.itemRepo.List(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list items", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list items")
	}

	return items, nil
}

// GetItem returns a single catalog item by id.
func (srv *itemService) GetItem(ctx context.Context, itemID uuid.UUID) (*entity.Item, error) {
	item, err := srv.itemRepo.FindByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			return nil, errors.Wrap(domainerrors.ErrItemNotFound, "item not found")
		}
		srv.log(ctx).Error("Failed to get item", slog.Any("itemID", itemID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to find item by id")
	}

	return item, nil
}
