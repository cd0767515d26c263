package entity

import (
	"time"

	"github.com/google/uuid"
)

// Item is a product in the catalog. Items are read-only from this service's
// perspective; they are provisioned out of band.
type Item struct {
	ID          uuid.UUID
	Name        string
	Description string
	CreatedAt   time.Time
}

// Review is an authenticated user's rating of an item. UserID is stamped from
// the authenticated identity at creation and is immutable afterwards;
// ownership cannot be transferred.
type Review struct {
	ID        uuid.UUID
	ItemID    uuid.UUID // The item this review is about.
	UserID    uuid.UUID // The owning user. Only this user may update or delete the review.
	Content   string
	Rating    int // 1 through 5.
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Comment is a reply on a review, with the same ownership rule as Review.
type Comment struct {
	ID        uuid.UUID
	ReviewID  uuid.UUID
	UserID    uuid.UUID
	Content   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
