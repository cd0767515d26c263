package middleware

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"critique/config"
	"critique/internal/domain/entity"
	"critique/internal/domain/repository"
	"critique/internal/infra/auth"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubUserRepository resolves FindByID from a fixed map. The write and
// username paths are never reached by the gate.
type stubUserRepository struct {
	users map[uuid.UUID]*entity.User
}

func (s *stubUserRepository) Create(_ context.Context, _ *entity.User) error {
	return nil
}

func (s *stubUserRepository) FindByUsername(_ context.Context, _ string) (*entity.User, error) {
	return nil, repository.ErrUserNotFound
}

func (s *stubUserRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	user, ok := s.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}

	return user, nil
}

func newGatedEcho(t *testing.T, userRepo repository.UserRepository) (*echo.Echo, func(userID uuid.UUID) string) {
	t.Helper()

	cfg := &config.Config{Auth: &config.AuthConfig{Secret: "test-secret", TokenTTL: time.Hour}}
	tokenSvc, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	e := echo.New()
	e.HTTPErrorHandler = NewErrorMiddleware(logger).HandleHTTPError

	gate := NewAuthMiddleware(tokenSvc, userRepo)
	e.GET("/protected", func(c echo.Context) error {
		identity := Identity(c)

		return c.String(http.StatusOK, identity.Username)
	}, gate.Authenticate)

	issue := func(userID uuid.UUID) string {
		token, err := tokenSvc.Issue(userID)
		require.NoError(t, err)

		return token
	}

	return e, issue
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	userID := uuid.New()
	userRepo := &stubUserRepository{users: map[uuid.UUID]*entity.User{
		userID: {ID: userID, Username: "alice"},
	}}
	e, issue := newGatedEcho(t, userRepo)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+issue(userID))
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "alice", rec.Body.String())
}

func TestAuthMiddleware_FailuresAreOpaque(t *testing.T) {
	knownID := uuid.New()
	userRepo := &stubUserRepository{users: map[uuid.UUID]*entity.User{
		knownID: {ID: knownID, Username: "alice"},
	}}
	e, issue := newGatedEcho(t, userRepo)

	// Every rejection must produce the exact same status and body so a
	// caller cannot probe which check failed.
	tests := []struct {
		name   string
		header string
	}{
		{name: "missing header", header: ""},
		{name: "not a bearer token", header: "Basic abc123"},
		{name: "garbage token", header: "Bearer not.a.token"},
		{name: "token for a deleted account", header: "Bearer " + issue(uuid.New())},
	}

	var firstBody string
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			e.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Contains(t, rec.Body.String(), "NOT_AUTHORIZED")

			if firstBody == "" {
				firstBody = rec.Body.String()
			} else {
				assert.Equal(t, firstBody, rec.Body.String())
			}
		})
	}
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	userID := uuid.New()
	userRepo := &stubUserRepository{users: map[uuid.UUID]*entity.User{
		userID: {ID: userID, Username: "alice"},
	}}

	e, _ := newGatedEcho(t, userRepo)

	// Craft a token signed with the same secret whose expiry is in the past.
	claims := jwt.RegisteredClaims{
		Subject:   userID.String(),
		IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+expired)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "NOT_AUTHORIZED")
}
