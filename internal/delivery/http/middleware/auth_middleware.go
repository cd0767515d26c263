// Package middleware contains echo middleware specific to the HTTP delivery.
package middleware

import (
	"strings"

	deliverycontext "critique/internal/delivery/context"
	"critique/internal/domain/entity"
	domainerrors "critique/internal/domain/errors"
	"critique/internal/domain/repository"
	"critique/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthMiddleware is the gate in front of every protected route. It verifies
// the bearer token and resolves the account it names before the handler runs.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	userRepo repository.UserRepository
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, userRepo repository.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, userRepo: userRepo}
}

// Authenticate validates the Authorization header and attaches the resolved
// identity to the context. Every failure mode returns the same opaque 401:
// a missing header, a malformed header, a bad or expired token and a token
// whose account no longer exists are indistinguishable to the client.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return errors.Wrap(domainerrors.ErrNotAuthorized, "missing authorization header")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return errors.Wrap(domainerrors.ErrNotAuthorized, "authorization header is not a bearer token")
		}

		userID, err := m.tokenSvc.Verify(tokenString)
		if err != nil {
			return errors.Wrap(domainerrors.ErrNotAuthorized, "token verification failed")
		}

		user, err := m.userRepo.FindByID(c.Request().Context(), userID)
		if err != nil {
			return errors.Wrap(domainerrors.ErrNotAuthorized, "token subject does not resolve to an account")
		}

		c.Set(string(deliverycontext.KeyIdentity), &entity.Identity{ID: user.ID, Username: user.Username})

		return next(c)
	}
}

// Identity returns the authenticated identity attached by Authenticate, or
// nil when the route was not gated.
func Identity(c echo.Context) *entity.Identity {
	identity, _ := c.Get(string(deliverycontext.KeyIdentity)).(*entity.Identity)

	return identity
}
