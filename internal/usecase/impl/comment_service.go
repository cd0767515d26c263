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

// commentService implements the CommentUsecase interface.
type commentService struct {
	commentRepo repository.CommentRepository
	logger      *slog.Logger
}

// CommentServiceParams holds dependencies for commentService, injected by Fx.
type CommentServiceParams struct {
	fx.In

	CommentRepo repository.CommentRepository
	Logger      *slog.Logger
}

// NewCommentService is the constructor for commentService.
func NewCommentService(params CommentServiceParams) usecase.CommentUsecase {
	return &commentService{
		commentRepo: params.CommentRepo,
		logger:      params.Logger,
	}
}

func (srv *commentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateComment posts a comment on a review. The comment's owner is always
// the authenticated user.
func (srv *commentService) CreateComment(ctx context.Context, reviewID, authUserID uuid.UUID, input *usecase.CreateCommentInput) (*entity.Comment, error) {
	srv.log(ctx).Debug("Creating comment", slog.Any("reviewID", reviewID), slog.Any("userID", authUserID))

	comment := &entity.Comment{
		ReviewID: reviewID,
		UserID:   authUserID,
		Content:  input.Content,
	}

	if err := srv.commentRepo.Create(ctx, comment); err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return nil, errors.Wrap(domainerrors.ErrReviewNotFound, "review not found")
		}
		srv.log(ctx).Error("Failed to create comment", slog.Any("reviewID", reviewID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create comment")
	}

	return comment, nil
}

// ListMyComments returns the authenticated user's comments, newest first.
func (srv *commentService) ListMyComments(ctx context.Context, authUserID uuid.UUID) ([]*entity.Comment, error) {
	comments, err := srv.commentRepo.ListByUser(ctx, authUserID)
	if err != nil {
		srv.log(ctx).Error("Failed to list comments by user", slog.Any("userID", authUserID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list comments by user")
	}

	return comments, nil
}

// UpdateComment rewrites a comment's content. The repository only matches
// rows owned by authUserID, so someone else's comment looks exactly like a
// missing one.
func (srv *commentService) UpdateComment(ctx context.Context, commentID, authUserID uuid.UUID, input *usecase.UpdateCommentInput) (*entity.Comment, error) {
	srv.log(ctx).Debug("Updating comment", slog.Any("commentID", commentID), slog.Any("userID", authUserID))

	comment, err := srv.commentRepo.Update(ctx, commentID, authUserID, input.Content)
	if err != nil {
		if errors.Is(err, repository.ErrCommentNotFound) {
			return nil, errors.Wrap(domainerrors.ErrCommentNotFound, "comment not found")
		}
		srv.log(ctx).Error("Failed to update comment", slog.Any("commentID", commentID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update comment")
	}

	return comment, nil
}

// DeleteComment removes a comment the authenticated user owns.
func (srv *commentService) DeleteComment(ctx context.Context, commentID, authUserID uuid.UUID) error {
	srv.log(ctx).Debug("Deleting comment", slog.Any("commentID", commentID), slog.Any("userID", authUserID))

	if err := srv.commentRepo.Delete(ctx, commentID, authUserID); err != nil {
		if errors.Is(err, repository.ErrCommentNotFound) {
			return errors.Wrap(domainerrors.ErrCommentNotFound, "comment not found")
		}
		srv.log(ctx).Error("Failed to delete comment", slog.Any("commentID", commentID), slog.Any("error", err))

		return errors.Wrap(err, "failed to delete comment")
	}

	return nil
}
