package events

import (
	"context"

	"github.com/google/uuid"
)

// IntegrationEvent is an asynchronous notification published after a
// successful mutation. Name doubles as the routing key on the exchange so
// consumers can bind per event type.
type IntegrationEvent interface {
	Name() string
}

// Bus delivers integration events with at-least-once semantics. Publishers
// do not retry; a failed publish after a committed write is logged and left
// to downstream reconciliation.
type Bus interface {
	Publish(ctx context.Context, event IntegrationEvent) error
}

type HostRatedEvent struct {
	HostID        uuid.UUID `json:"host_id"`
	GuestUsername string    `json:"guest_username"`
	Rating        int       `json:"rating"`
}

func (HostRatedEvent) Name() string { return "HostRatedIntegrationEvent" }

type AccommodationRatedEvent struct {
	HostID            uuid.UUID `json:"host_id"`
	AccommodationID   uuid.UUID `json:"accommodation_id"`
	GuestUsername     string    `json:"guest_username"`
	AccommodationName string    `json:"accommodation_name"`
	Rating            int       `json:"rating"`
}

func (AccommodationRatedEvent) Name() string { return "AccommodationRatedIntegrationEvent" }
