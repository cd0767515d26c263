package service

import (
	"github.com/google/uuid"
)

// TokenService defines the interface for issuing and verifying bearer tokens.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// Issue creates a signed, time-limited token embedding the user id.
	Issue(userID uuid.UUID) (string, error)

	// Verify decodes a presented token and returns the embedded user id.
	// Every failure — bad signature, malformed payload, expiry — collapses
	// into the single opaque not-authorized error.
	Verify(tokenString string) (uuid.UUID, error)
}
