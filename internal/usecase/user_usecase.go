// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"critique/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new user.
type RegisterInput struct {
	Username string `json:"username" validate:"required,min=3,max=64"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginInput defines the data required for a user to log in.
type LoginInput struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// --- Output DTOs ---

// AuthOutput returns a bearer token plus the public view of the account.
// Registration logs the user straight in, so both paths share this shape.
type AuthOutput struct {
	Token string           `json:"token"`
	User  *entity.Identity `json:"user"`
}

// UserUsecase defines the interface for account and authentication operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	// Register creates an account and returns a token for it. A taken
	// username fails with a conflict.
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)

	// Login exchanges credentials for a token. An unknown username and a
	// wrong password fail with the identical opaque error.
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)

	// Me resolves the public view of the authenticated user.
	Me(ctx context.Context, userID uuid.UUID) (*entity.Identity, error)
}
