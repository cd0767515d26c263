package handler

import (
	"log/slog"
	"net/http"

	"critique/internal/delivery/http/middleware"
	"critique/internal/delivery/http/response"
	domainerrors "critique/internal/domain/errors"
	"critique/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ReviewHandler holds dependencies for review handlers.
type ReviewHandler struct {
	uc     usecase.ReviewUsecase
	logger *slog.Logger
}

// NewReviewHandler is the constructor for ReviewHandler, injected by Fx.
func NewReviewHandler(uc usecase.ReviewUsecase, logger *slog.Logger) *ReviewHandler {
	return &ReviewHandler{
		uc:     uc,
		logger: logger,
	}
}

// CreateReview posts a review on an item. The owner is taken from the
// authenticated identity, not from the request body.
func (h *ReviewHandler) CreateReview(c echo.Context) error {
	itemID, err := parseID(c, "itemId", domainerrors.ErrItemNotFound)
	if err != nil {
		return err
	}

	var input *usecase.CreateReviewInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid review input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	identity := middleware.Identity(c)

	review, err := h.uc.CreateReview(c.Request().Context(), itemID, identity.ID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, review, "Review created successfully")
}

// GetReview fetches a single review. Reads are public.
func (h *ReviewHandler) GetReview(c echo.Context) error {
	reviewID, err := parseID(c, "reviewId", domainerrors.ErrReviewNotFound)
	if err != nil {
		return err
	}

	review, err := h.uc.GetReview(c.Request().Context(), reviewID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, review, "Review retrieved successfully")
}

// ListReviewsByItem lists all reviews on an item, newest first.
func (h *ReviewHandler) ListReviewsByItem(c echo.Context) error {
	itemID, err := parseID(c, "itemId", domainerrors.ErrItemNotFound)
	if err != nil {
		return err
	}

	reviews, err := h.uc.ListReviewsByItem(c.Request().Context(), itemID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, reviews, "Reviews retrieved successfully")
}

// ListMyReviews lists the authenticated user's own reviews.
func (h *ReviewHandler) ListMyReviews(c echo.Context) error {
	identity := middleware.Identity(c)

	reviews, err := h.uc.ListMyReviews(c.Request().Context(), identity.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, reviews, "Reviews retrieved successfully")
}

// UpdateReview rewrites a review the authenticated user owns.
func (h *ReviewHandler) UpdateReview(c echo.Context) error {
	reviewID, err := parseID(c, "reviewId", domainerrors.ErrReviewNotFound)
	if err != nil {
		return err
	}

	var input *usecase.UpdateReviewInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid review input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	identity := middleware.Identity(c)

	review, err := h.uc.UpdateReview(c.Request().Context(), reviewID, identity.ID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, review, "Review updated successfully")
}

// DeleteReview removes a review the authenticated user owns.
func (h *ReviewHandler) DeleteReview(c echo.Context) error {
	reviewID, err := parseID(c, "reviewId", domainerrors.ErrReviewNotFound)
	if err != nil {
		return err
	}

	identity := middleware.Identity(c)

	if err := h.uc.DeleteReview(c.Request().Context(), reviewID, identity.ID); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}
