package handler

import (
	"context"
	"net/http"
	"testing"

	"critique/internal/domain/entity"
	domainerrors "critique/internal/domain/errors"
	"critique/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockUserUsecase struct {
	mock.Mock
}

func (m *mockUserUsecase) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.AuthOutput), args.Error(1)
}

func (m *mockUserUsecase) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*usecase.AuthOutput), args.Error(1)
}

func (m *mockUserUsecase) Me(ctx context.Context, userID uuid.UUID) (*entity.Identity, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}

	return args.Get(0).(*entity.Identity), args.Error(1)
}

func TestUserHandler_Register_Created(t *testing.T) {
	uc := new(mockUserUsecase)
	h := NewUserHandler(uc, testLogger())

	userID := uuid.New()
	output := &usecase.AuthOutput{
		Token: "signed-token",
		User:  &entity.Identity{ID: userID, Username: "alice"},
	}

	uc.On("Register", mock.Anything, &usecase.RegisterInput{Username: "alice", Password: "hunter2hunter2"}).
		Return(output, nil)

	c, rec := newEchoContext(t, http.MethodPost, "/auth/register", `{"username":"alice","password":"hunter2hunter2"}`, nil)

	require.NoError(t, h.Register(c))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), "signed-token")
	assert.Contains(t, rec.Body.String(), userID.String())
	// The stored hash must never appear in a response.
	assert.NotContains(t, rec.Body.String(), "PasswordHash")
}

func TestUserHandler_Register_ShortPasswordRejected(t *testing.T) {
	uc := new(mockUserUsecase)
	h := NewUserHandler(uc, testLogger())

	c, _ := newEchoContext(t, http.MethodPost, "/auth/register", `{"username":"alice","password":"short"}`, nil)

	err := h.Register(c)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	uc.AssertNotCalled(t, "Register", mock.Anything, mock.Anything)
}

func TestUserHandler_Login_PropagatesOpaqueFailure(t *testing.T) {
	uc := new(mockUserUsecase)
	h := NewUserHandler(uc, testLogger())

	uc.On("Login", mock.Anything, mock.AnythingOfType("*usecase.LoginInput")).
		Return(nil, errors.Wrap(domainerrors.ErrNotAuthorized, "login failed"))

	c, _ := newEchoContext(t, http.MethodPost, "/auth/login", `{"username":"alice","password":"wrong"}`, nil)

	err := h.Login(c)

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrNotAuthorized)
}

func TestUserHandler_Me(t *testing.T) {
	uc := new(mockUserUsecase)
	h := NewUserHandler(uc, testLogger())

	userID := uuid.New()
	uc.On("Me", mock.Anything, userID).Return(&entity.Identity{ID: userID, Username: "alice"}, nil)

	c, rec := newEchoContext(t, http.MethodGet, "/auth/me", "", &entity.Identity{ID: userID, Username: "alice"})

	require.NoError(t, h.Me(c))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "alice")
}
