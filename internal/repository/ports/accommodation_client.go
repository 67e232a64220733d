package ports

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

var (
	ErrAccommodationNotFound = errors.New("accommodation not found")
	ErrAccommodationService  = errors.New("accommodation service error")
)

// AccommodationInfo is the slice of the accommodation service's record the
// rating workflow needs: the owning host and a display name for events.
type AccommodationInfo struct {
	ID     uuid.UUID `json:"id"`
	HostID uuid.UUID `json:"host_id"`
	Name   string    `json:"name"`
}

type AccommodationClient interface {
	GetInfo(ctx context.Context, accommodationID uuid.UUID) (*AccommodationInfo, error)
}
