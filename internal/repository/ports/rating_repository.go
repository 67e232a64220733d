package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/stayhub-app/rating-service/internal/domain"
)

// RatingAggregate carries the aggregates computed over every row matching a
// target, independent of pagination. Average is nil when Total is zero.
type RatingAggregate struct {
	Total   int
	Average *float64
}

type HostRatingRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*domain.HostRating, error)
	Insert(ctx context.Context, rating *domain.HostRating) error
	Update(ctx context.Context, rating *domain.HostRating) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListByHost(ctx context.Context, hostID uuid.UUID, page domain.PageRequest) ([]domain.HostRating, error)
	AggregateByHost(ctx context.Context, hostID uuid.UUID) (RatingAggregate, error)
}

type AccommodationRatingRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*domain.AccommodationRating, error)
	Insert(ctx context.Context, rating *domain.AccommodationRating) error
	Update(ctx context.Context, rating *domain.AccommodationRating) error
	Delete(ctx context.Context, id uuid.UUID) error
	ListByAccommodation(ctx context.Context, accommodationID uuid.UUID, page domain.PageRequest) ([]domain.AccommodationRating, error)
	AggregateByAccommodation(ctx context.Context, accommodationID uuid.UUID) (RatingAggregate, error)
}

// UnitOfWork runs fn inside a single database transaction. Repository calls
// made with the context passed to fn join that transaction; the whole batch
// commits or rolls back together.
type UnitOfWork interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}
