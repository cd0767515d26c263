package postgres

import (
	"context"

	"critique/internal/domain/entity"
	domainerrors "critique/internal/domain/errors"
	"critique/internal/domain/repository"
	"critique/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// reviewRepository implements the repository.ReviewRepository interface using GORM.
type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository is the constructor for reviewRepository.
func NewReviewRepository(db *gorm.DB) repository.ReviewRepository {
	return &reviewRepository{db: db}
}

// Create persists a new review. The caller stamps UserID from the
// authenticated identity before this is reached.
func (repo *reviewRepository) Create(ctx context.Context, review *entity.Review) error {
	reviewM := fromReviewDomain(review)

	if err := repo.db.WithContext(ctx).Create(reviewM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrItemNotFound.WrapMessage("invalid item or user reference")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required review information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create review")
	}

	review.ID = reviewM.ID
	review.CreatedAt = reviewM.CreatedAt
	review.UpdatedAt = reviewM.UpdatedAt

	return nil
}

// FindByID retrieves a single review by its unique ID.
func (repo *reviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Review, error) {
	var reviewM model.ReviewModel
	if err := repo.db.WithContext(ctx).
		Where("id = ?", id).
		First(&reviewM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrReviewNotFound
		}

		return nil, errors.Wrap(err, "failed to find review by id")
	}

	return toReviewDomain(&reviewM), nil
}

// ListByItem retrieves all reviews for an item, newest first.
func (repo *reviewRepository) ListByItem(ctx context.Context, itemID uuid.UUID) ([]*entity.Review, error) {
	return repo.list(ctx, "item_id = ?", itemID)
}

// ListByUser retrieves all reviews written by a user, newest first.
func (repo *reviewRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Review, error) {
	return repo.list(ctx, "user_id = ?", userID)
}

func (repo *reviewRepository) list(ctx context.Context, query string, arg uuid.UUID) ([]*entity.Review, error) {
	var reviewMs []model.ReviewModel
	if err := repo.db.WithContext(ctx).
		Where(query, arg).
		Order("created_at DESC").
		Find(&reviewMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list reviews")
	}

	reviews := make([]*entity.Review, 0, len(reviewMs))
	for i := range reviewMs {
		reviews = append(reviews, toReviewDomain(&reviewMs[i]))
	}

	return reviews, nil
}

// Update rewrites content and rating in a single statement conditioned on
// both the review id and the owner id. Zero affected rows collapses
// "no such review" and "owned by someone else" into one outcome.
func (repo *reviewRepository) Update(ctx context.Context, id, ownerID uuid.UUID, content string, rating int) (*entity.Review, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.ReviewModel{}).
		Where("id = ? AND user_id = ?", id, ownerID).
		Updates(map[string]any{"content": content, "rating": rating})
	if result.Error != nil {
		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to update review")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrReviewNotFound
	}

	return repo.FindByID(ctx, id)
}

// Delete removes the review owned by ownerID, with the same collapsed
// zero-rows outcome as Update.
func (repo *reviewRepository) Delete(ctx context.Context, id, ownerID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		Delete(&model.ReviewModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete review")
	}
	if result.RowsAffected == 0 {
		return repository.ErrReviewNotFound
	}

	return nil
}

// --- Mapper Functions ---

// toReviewDomain converts a GORM ReviewModel to a domain Review entity.
func toReviewDomain(data *model.ReviewModel) *entity.Review {
	if data == nil {
		return nil
	}

	return &entity.Review{
		ID:        data.ID,
		ItemID:    data.ItemID,
		UserID:    data.UserID,
		Content:   data.Content,
		Rating:    data.Rating,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromReviewDomain converts a domain Review entity to a GORM ReviewModel for persistence.
func fromReviewDomain(data *entity.Review) *model.ReviewModel {
	if data == nil {
		return nil
	}

	return &model.ReviewModel{
		ID:      data.ID,
		ItemID:  data.ItemID,
		UserID:  data.UserID,
		Content: data.Content,
		Rating:  data.Rating,
	}
}
