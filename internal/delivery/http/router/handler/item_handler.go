package handler

import (
	"log/slog"
	"net/http"

	"critique/internal/delivery/http/response"
	domainerrors "critique/internal/domain/errors"
	"critique/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ItemHandler holds dependencies for the public catalog handlers.
type ItemHandler struct {
	uc     usecase.ItemUsecase
	logger *slog.Logger
}

// NewItemHandler is the constructor for ItemHandler, injected by Fx.
func NewItemHandler(uc usecase.ItemUsecase, logger *slog.Logger) *ItemHandler {
	return &ItemHandler{
		uc:     uc,
		logger: logger,
	}
}

// parseID parses a path parameter as a UUID. An unparseable id answers the
// same way as a well-formed id that matches nothing.
func parseID(c echo.Context, name string, notFound domainerrors.AppError) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, errors.Wrap(notFound, "malformed id in path")
	}

	return id, nil
}

// ListItems handles the public catalog listing.
func (h *ItemHandler) ListItems(c echo.Context) error {
	items, err := h.uc.ListItems(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, items, "Items retrieved successfully")
}

// GetItem handles fetching a single catalog item.
func (h *ItemHandler) GetItem(c echo.Context) error {
	itemID, err := parseID(c, "itemId", domainerrors.ErrItemNotFound)
	if err != nil {
		return err
	}

	item, err := h.uc.GetItem(c.Request().Context(), itemID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, item, "Item retrieved successfully")
}
