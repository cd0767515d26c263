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

// reviewService implements the ReviewUsecase interface.
type reviewService struct {
	reviewRepo repository.ReviewRepository
	itemRepo   repository.ItemRepository
	logger     *slog.Logger
}

// ReviewServiceParams holds dependencies for reviewService, injected by Fx.
type ReviewServiceParams struct {
	fx.In

	ReviewRepo repository.ReviewRepository
	ItemRepo   repository.ItemRepository
	Logger     *slog.Logger
}

// NewReviewService is the constructor for reviewService.
func NewReviewService(params ReviewServiceParams) usecase.ReviewUsecase {
	return &reviewService{
		reviewRepo: params.ReviewRepo,
		itemRepo:   params.ItemRepo,
		logger:     params.Logger,
	}
}

func (srv *reviewService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateReview posts a review on an item. The review's owner is always the
// authenticated user, never anything the client sent.
func (srv *reviewService) CreateReview(ctx context.Context, itemID, authUserID uuid.UUID, input *usecase.CreateReviewInput) (*entity.Review, error) {
	srv.log(ctx).Debug("Creating review", slog.Any("itemID", itemID), slog.Any("userID", authUserID))

	review := &entity.Review{
		ItemID:  itemID,
		UserID:  authUserID,
		Content: input.Content,
		Rating:  input.Rating,
	}

	if err := srv.reviewRepo.Create(ctx, review); err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			return nil, errors.Wrap(domainerrors.ErrItemNotFound, "item not found")
		}
		srv.log(ctx).Error("Failed to create review", slog.Any("itemID", itemID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create review")
	}

	return review, nil
}

// GetReview returns a single review. Reads are public.
func (srv *reviewService) GetReview(ctx context.Context, reviewID uuid.UUID) (*entity.Review, error) {
	review, err := srv.reviewRepo.FindByID(ctx, reviewID)
	if err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return nil, errors.Wrap(domainerrors.ErrReviewNotFound, "review not found")
		}
		srv.log(ctx).Error("Failed to get review", slog.Any("reviewID", reviewID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to find review by id")
	}

	return review, nil
}

// ListReviewsByItem returns all reviews on an item, newest first. Listing an
// unknown item fails the same way as fetching it directly.
func (srv *reviewService) ListReviewsByItem(ctx context.Context, itemID uuid.UUID) ([]*entity.Review, error) {
	if _, err := srv.itemRepo.FindByID(ctx, itemID); err != nil {
		if errors.Is(err, repository.ErrItemNotFound) {
			return nil, errors.Wrap(domainerrors.ErrItemNotFound, "item not found")
		}

		return nil, errors.Wrap(err, "failed to find item by id")
	}

	reviews, err := srv.reviewRepo.ListByItem(ctx, itemID)
	if err != nil {
		srv.log(ctx).Error("Failed to list reviews by item", slog.Any("itemID", itemID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list reviews by item")
	}

	return reviews, nil
}

// ListMyReviews returns the authenticated user's reviews, newest first.
func (srv *reviewService) ListMyReviews(ctx context.Context, authUserID uuid.UUID) ([]*entity.Review, error) {
	reviews, err := srv.reviewRepo.ListByUser(ctx, authUserID)
	if err != nil {
		srv.log(ctx).Error("Failed to list reviews by user", slog.Any("userID", authUserID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list reviews by user")
	}

	return reviews, nil
}

// UpdateReview rewrites a review's content and rating. The repository only
// matches rows owned by authUserID, so a review that exists but belongs to
// someone else is indistinguishable from one that does not exist.
func (srv *reviewService) UpdateReview(ctx context.Context, reviewID, authUserID uuid.UUID, input *usecase.UpdateReviewInput) (*entity.Review, error) {
	srv.log(ctx).Debug("Updating review", slog.Any("reviewID", reviewID), slog.Any("userID", authUserID))

	review, err := srv.reviewRepo.Update(ctx, reviewID, authUserID, input.Content, input.Rating)
	if err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return nil, errors.Wrap(domainerrors.ErrReviewNotFound, "review not found")
		}
		srv.log(ctx).Error("Failed to update review", slog.Any("reviewID", reviewID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update review")
	}

	return review, nil
}

// DeleteReview removes a review the authenticated user owns, with the same
// collapsed not-found semantics as UpdateReview.
func (srv *reviewService) DeleteReview(ctx context.Context, reviewID, authUserID uuid.UUID) error {
	srv.log(ctx).Debug("Deleting review", slog.Any("reviewID", reviewID), slog.Any("userID", authUserID))

	if err := srv.reviewRepo.Delete(ctx, reviewID, authUserID); err != nil {
		if errors.Is(err, repository.ErrReviewNotFound) {
			return errors.Wrap(domainerrors.ErrReviewNotFound, "review not found")
		}
		srv.log(ctx).Error("Failed to delete review", slog.Any("reviewID", reviewID), slog.Any("error", err))

		return errors.Wrap(err, "failed to delete review")
	}

	return nil
}
