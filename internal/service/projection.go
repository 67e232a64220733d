package service

import (
	"time"

	"github.com/google/uuid"

	"github.com/stayhub-app/rating-service/internal/domain"
)

// RatingResponse is the list projection: no identifiers beyond the rating's
// own, guest identity collapsed to a display name.
type RatingResponse struct {
	ID            uuid.UUID  `json:"id"`
	Rating        int        `json:"rating"`
	Comment       string     `json:"comment"`
	GuestFullName string     `json:"guest_full_name"`
	CreatedAt     time.Time  `json:"created_at"`
	LastChangedAt *time.Time `json:"last_changed_at,omitempty"`
}

// HostRatingDetailResponse is the detail projection; unlike the list shape
// it exposes the guest and target identifiers.
type HostRatingDetailResponse struct {
	ID            uuid.UUID  `json:"id"`
	HostID        uuid.UUID  `json:"host_id"`
	GuestID       uuid.UUID  `json:"guest_id"`
	Rating        int        `json:"rating"`
	Comment       string     `json:"comment"`
	GuestFullName string     `json:"guest_full_name"`
	CreatedAt     time.Time  `json:"created_at"`
	LastChangedAt *time.Time `json:"last_changed_at,omitempty"`
}

type AccommodationRatingDetailResponse struct {
	ID              uuid.UUID  `json:"id"`
	AccommodationID uuid.UUID  `json:"accommodation_id"`
	GuestID         uuid.UUID  `json:"guest_id"`
	Rating          int        `json:"rating"`
	Comment         string     `json:"comment"`
	GuestFullName   string     `json:"guest_full_name"`
	CreatedAt       time.Time  `json:"created_at"`
	LastChangedAt   *time.Time `json:"last_changed_at,omitempty"`
}

// guestFullName keeps the separating space even when a part is empty, so
// the rendered name is stable regardless of which parts the snapshot holds.
func guestFullName(first, last string) string {
	return first + " " + last
}

func toHostRatingResponse(r domain.HostRating) RatingResponse {
	return RatingResponse{
		ID:            r.ID,
		Rating:        r.Rating,
		Comment:       r.Comment,
		GuestFullName: guestFullName(r.GuestFirstName, r.GuestLastName),
		CreatedAt:     r.CreatedAt,
		LastChangedAt: r.LastChangedAt,
	}
}

func toAccommodationRatingResponse(r domain.AccommodationRating) RatingResponse {
	return RatingResponse{
		ID:            r.ID,
		Rating:        r.Rating,
		Comment:       r.Comment,
		GuestFullName: guestFullName(r.GuestFirstName, r.GuestLastName),
		CreatedAt:     r.CreatedAt,
		LastChangedAt: r.LastChangedAt,
	}
}

func toHostRatingDetail(r domain.HostRating) HostRatingDetailResponse {
	return HostRatingDetailResponse{
		ID:            r.ID,
		HostID:        r.HostID,
		GuestID:       r.GuestID,
		Rating:        r.Rating,
		Comment:       r.Comment,
		GuestFullName: guestFullName(r.GuestFirstName, r.GuestLastName),
		CreatedAt:     r.CreatedAt,
		LastChangedAt: r.LastChangedAt,
	}
}

func toAccommodationRatingDetail(r domain.AccommodationRating) AccommodationRatingDetailResponse {
	return AccommodationRatingDetailResponse{
		ID:              r.ID,
		AccommodationID: r.AccommodationID,
		GuestID:         r.GuestID,
		Rating:          r.Rating,
		Comment:         r.Comment,
		GuestFullName:   guestFullName(r.GuestFirstName, r.GuestLastName),
		CreatedAt:       r.CreatedAt,
		LastChangedAt:   r.LastChangedAt,
	}
}
