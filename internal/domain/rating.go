package domain

import (
	"time"

	"github.com/google/uuid"
)

const (
	RatingMin         = 1
	RatingMax         = 5
	CommentMaxLength  = 255
	DefaultPageSize   = 10
	MaxPageSize       = 100
)

// HostRating is a guest-authored score against a host. The guest name
// fields are a denormalized snapshot taken at the last write, so listings
// never join against the user service.
type HostRating struct {
	ID             uuid.UUID  `db:"id" json:"id"`
	HostID         uuid.UUID  `db:"host_id" json:"host_id"`
	GuestID        uuid.UUID  `db:"guest_id" json:"guest_id"`
	Rating         int        `db:"rating" json:"rating"`
	Comment        string     `db:"comment" json:"comment"`
	GuestFirstName string     `db:"guest_first_name" json:"-"`
	GuestLastName  string     `db:"guest_last_name" json:"-"`
	GuestUsername  string     `db:"guest_username" json:"-"`
	CreatedAt      time.Time  `db:"created_at" json:"created_at"`
	LastChangedAt  *time.Time `db:"last_changed_at" json:"last_changed_at,omitempty"`
}

// AccommodationRating mirrors HostRating but targets an accommodation.
type AccommodationRating struct {
	ID              uuid.UUID  `db:"id" json:"id"`
	AccommodationID uuid.UUID  `db:"accommodation_id" json:"accommodation_id"`
	GuestID         uuid.UUID  `db:"guest_id" json:"guest_id"`
	Rating          int        `db:"rating" json:"rating"`
	Comment         string     `db:"comment" json:"comment"`
	GuestFirstName  string     `db:"guest_first_name" json:"-"`
	GuestLastName   string     `db:"guest_last_name" json:"-"`
	GuestUsername   string     `db:"guest_username" json:"-"`
	CreatedAt       time.Time  `db:"created_at" json:"created_at"`
	LastChangedAt   *time.Time `db:"last_changed_at" json:"last_changed_at,omitempty"`
}

// RatingPage is one page of matching ratings together with aggregates
// computed over the whole matching set, not the page.
type RatingPage[T any] struct {
	Items         []T
	TotalCount    int
	Page          int
	PageSize      int
	AverageRating *float64
}

type PageRequest struct {
	Page     int
	PageSize int
}

// Normalize clamps a client-supplied page request to sane bounds. Pages are
// 1-based.
func (p PageRequest) Normalize() PageRequest {
	out := p
	if out.Page < 1 {
		out.Page = 1
	}
	if out.PageSize < 1 {
		out.PageSize = DefaultPageSize
	}
	if out.PageSize > MaxPageSize {
		out.PageSize = MaxPageSize
	}
	return out
}

func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.PageSize
}
