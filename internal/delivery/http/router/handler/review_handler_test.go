package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	deliverycontext "critique/internal/delivery/context"
	"critique/internal/delivery/http/validator"
	"critique/internal/domain/entity"
	"critique/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockReviewUsecase struct {
	mock.Mock
}

func (m *mockReviewUsecase) CreateReview(ctx context.Context, itemID, authUserID uuid.UUID, input *usecase.CreateReviewInput) (*entity.Review, error) {
	args := m.Called(ctx, itemID, authUserID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Review), args.Error(1)
}

func (m *mockReviewUsecase) GetReview(ctx context.Context, reviewID uuid.UUID) (*entity.Review, error) {
	args := m.Called(ctx, reviewID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Review), args.Error(1)
}

func (m *mockReviewUsecase) ListReviewsByItem(ctx context.Context, itemID uuid.UUID) ([]*entity.Review, error) {
	args := m.Called(ctx, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Review), args.Error(1)
}

func (m *mockReviewUsecase) ListMyReviews(ctx context.Context, authUserID uuid.UUID) ([]*entity.Review, error) {
	args := m.Called(ctx, authUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).([]*entity.Review), args.Error(1)
}

func (m *mockReviewUsecase) UpdateReview(ctx context.Context, reviewID, authUserID uuid.UUID, input *usecase.UpdateReviewInput) (*entity.Review, error) {
	args := m.Called(ctx, reviewID, authUserID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Review), args.Error(1)
}

func (m *mockReviewUsecase) DeleteReview(ctx context.Context, reviewID, authUserID uuid.UUID) error {
	return m.Called(ctx, reviewID, authUserID).Error(0)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newEchoContext(t *testing.T, method, target string, body string, identity *entity.Identity) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	e.Validator = validator.New()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if identity != nil {
		c.Set(string(deliverycontext.KeyIdentity), identity)
	}

	return c, rec
}

func TestReviewHandler_CreateReview_OwnerComesFromToken(t *testing.T) {
	uc := new(mockReviewUsecase)
	h := NewReviewHandler(uc, testLogger())

	itemID := uuid.New()
	authUserID := uuid.New()
	created := &entity.Review{ID: uuid.New(), ItemID: itemID, UserID: authUserID, Content: "solid", Rating: 4}

	// The handler must pass the identity's id, no matter what the body says.
	uc.On("CreateReview", mock.Anything, itemID, authUserID, mock.AnythingOfType("*usecase.CreateReviewInput")).
		Return(created, nil)

	body := `{"content":"solid","rating":4,"userId":"` + uuid.New().String() + `"}`
	c, rec := newEchoContext(t, http.MethodPost, "/items/"+itemID.String()+"/reviews", body, &entity.Identity{ID: authUserID, Username: "alice"})
	c.SetParamNames("itemId")
	c.SetParamValues(itemID.String())

	require.NoError(t, h.CreateReview(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), created.ID.String())
	uc.AssertExpectations(t)
}

func TestReviewHandler_CreateReview_RejectsBadRating(t *testing.T) {
	uc := new(mockReviewUsecase)
	h := NewReviewHandler(uc, testLogger())

	itemID := uuid.New()
	c, _ := newEchoContext(t, http.MethodPost, "/items/"+itemID.String()+"/reviews", `{"content":"x","rating":9}`, &entity.Identity{ID: uuid.New()})
	c.SetParamNames("itemId")
	c.SetParamValues(itemID.String())

	err := h.CreateReview(c)

	require.Error(t, err)
	uc.AssertNotCalled(t, "CreateReview", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestReviewHandler_DeleteReview_NoContent(t *testing.T) {
	uc := new(mockReviewUsecase)
	h := NewReviewHandler(uc, testLogger())

	reviewID := uuid.New()
	authUserID := uuid.New()

	uc.On("DeleteReview", mock.Anything, reviewID, authUserID).Return(nil)

	c, rec := newEchoContext(t, http.MethodDelete, "/reviews/"+reviewID.String(), "", &entity.Identity{ID: authUserID})
	c.SetParamNames("reviewId")
	c.SetParamValues(reviewID.String())

	require.NoError(t, h.DeleteReview(c))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestReviewHandler_UpdateReview_MalformedIDLooksLikeNotFound(t *testing.T) {
	uc := new(mockReviewUsecase)
	h := NewReviewHandler(uc, testLogger())

	c, _ := newEchoContext(t, http.MethodPut, "/reviews/not-a-uuid", `{"content":"x","rating":3}`, &entity.Identity{ID: uuid.New()})
	c.SetParamNames("reviewId")
	c.SetParamValues("not-a-uuid")

	err := h.UpdateReview(c)

	require.Error(t, err)

	var appErr interface{ HTTPCode() int }
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode())
	uc.AssertNotCalled(t, "UpdateReview", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestReviewHandler_ListMyReviews(t *testing.T) {
	uc := new(mockReviewUsecase)
	h := NewReviewHandler(uc, testLogger())

	authUserID := uuid.New()
	stored := []*entity.Review{{ID: uuid.New(), UserID: authUserID, Content: "mine"}}

	uc.On("ListMyReviews", mock.Anything, authUserID).Return(stored, nil)

	c, rec := newEchoContext(t, http.MethodGet, "/reviews/me", "", &entity.Identity{ID: authUserID})

	require.NoError(t, h.ListMyReviews(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), stored[0].ID.String())
}
