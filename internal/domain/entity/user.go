// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the account record behind every authenticated request.
// It is created once at registration and never updated or deleted;
// the username is unique across the system.
type User struct {
	ID           uuid.UUID // The unique identifier for the user, generated by the database.
	Username     string    // Unique login name chosen at registration.
	PasswordHash string    // Bcrypt hash of the password. Empty on read paths that must not expose it.
	CreatedAt    time.Time // Timestamp of when the account was created.
}

// Identity is the result of resolving a bearer token: the minimal public
// view of a user that gets attached to the request context by the auth
// middleware. It deliberately carries no credential material.
type Identity struct {
	ID       uuid.UUID
	Username string
}
