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

// CommentHandler holds dependencies for comment handlers.
type CommentHandler struct {
	uc     usecase.CommentUsecase
	logger *slog.Logger
}

// NewCommentHandler is the constructor for CommentHandler, injected by Fx.
func NewCommentHandler(uc usecase.CommentUsecase, logger *slog.Logger) *CommentHandler {
	return &CommentHandler{
		uc:     uc,
		logger: logger,
	}
}

// CreateComment posts a comment on a review. The owner is taken from the
// authenticated identity.
func (h *CommentHandler) CreateComment(c echo.Context) error {
	reviewID, err := parseID(c, "reviewId", domainerrors.ErrReviewNotFound)
	if err != nil {
		return err
	}

	var input *usecase.CreateCommentInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid comment input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	identity := middleware.Identity(c)

	comment, err := h.uc.CreateComment(c.Request().Context(), reviewID, identity.ID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, comment, "Comment created successfully")
}

// ListMyComments lists the authenticated user's own comments.
func (h *CommentHandler) ListMyComments(c echo.Context) error {
	identity := middleware.Identity(c)

	comments, err := h.uc.ListMyComments(c.Request().Context(), identity.ID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, comments, "Comments retrieved successfully")
}

// UpdateComment rewrites a comment the authenticated user owns.
func (h *CommentHandler) UpdateComment(c echo.Context) error {
	commentID, err := parseID(c, "commentId", domainerrors.ErrCommentNotFound)
	if err != nil {
		return err
	}

	var input *usecase.UpdateCommentInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid comment input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	identity := middleware.Identity(c)

	comment, err := h.uc.UpdateComment(c.Request().Context(), commentID, identity.ID, input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, comment, "Comment updated successfully")
}

// DeleteComment removes a comment the authenticated user owns.
func (h *CommentHandler) DeleteComment(c echo.Context) error {
	commentID, err := parseID(c, "commentId", domainerrors.ErrCommentNotFound)
	if err != nil {
		return err
	}

	identity := middleware.Identity(c)

	if err := h.uc.DeleteComment(c.Request().Context(), commentID, identity.ID); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}
