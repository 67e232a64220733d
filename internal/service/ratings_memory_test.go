package service

import (
	"context"
	"database/sql"
	"errors"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/stayhub-app/rating-service/internal/domain"
	"github.com/stayhub-app/rating-service/internal/events"
	"github.com/stayhub-app/rating-service/internal/repository/ports"
)

type memoryHostRatingRepo struct {
	mu    sync.Mutex
	items map[uuid.UUID]domain.HostRating
}

func newMemoryHostRatingRepo() *memoryHostRatingRepo {
	return &memoryHostRatingRepo{items: map[uuid.UUID]domain.HostRating{}}
}

func (r *memoryHostRatingRepo) FindByID(_ context.Context, id uuid.UUID) (*domain.HostRating, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rating, ok := r.items[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	copied := rating
	return &copied, nil
}

func (r *memoryHostRatingRepo) Insert(_ context.Context, rating *domain.HostRating) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[rating.ID] = *rating
	return nil
}

func (r *memoryHostRatingRepo) Update(_ context.Context, rating *domain.HostRating) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[rating.ID]; !ok {
		return sql.ErrNoRows
	}
	r.items[rating.ID] = *rating
	return nil
}

func (r *memoryHostRatingRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return sql.ErrNoRows
	}
	delete(r.items, id)
	return nil
}

func (r *memoryHostRatingRepo) ListByHost(_ context.Context, hostID uuid.UUID, page domain.PageRequest) ([]domain.HostRating, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var matching []domain.HostRating
	for _, rating := range r.items {
		if rating.HostID == hostID {
			matching = append(matching, rating)
		}
	}
	sort.Slice(matching, func(i, j int) bool {
		if !matching[i].CreatedAt.Equal(matching[j].CreatedAt) {
			return matching[i].CreatedAt.After(matching[j].CreatedAt)
		}
		return matching[i].ID.String() > matching[j].ID.String()
	})

	start := page.Offset()
	if start >= len(matching) {
		return nil, nil
	}
	end := start + page.PageSize
	if end > len(matching) {
		end = len(matching)
	}
	return matching[start:end], nil
}

func (r *memoryHostRatingRepo) AggregateByHost(_ context.Context, hostID uuid.UUID) (ports.RatingAggregate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	total := 0
	sum := 0
	for _, rating := range r.items {
		if rating.HostID == hostID {
			total++
			sum += rating.Rating
		}
	}
	agg := ports.RatingAggregate{Total: total}
	if total > 0 {
		avg := float64(sum) / float64(total)
		agg.Average = &avg
	}
	return agg, nil
}

type memoryAccommodationRatingRepo struct {
	mu    sync.Mutex
	items map[uuid.UUID]domain.AccommodationRating
}

func newMemoryAccommodationRatingRepo() *memoryAccommodationRatingRepo {
	return &memoryAccommodationRatingRepo{items: map[uuid.UUID]domain.AccommodationRating{}}
}

func (r *memoryAccommodationRatingRepo) FindByID(_ context.Context, id uuid.UUID) (*domain.AccommodationRating, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rating, ok := r.items[id]
	if !ok {
		return nil, sql.ErrNoRows
	}
	copied := rating
	return &copied, nil
}

func (r *memoryAccommodationRatingRepo) Insert(_ context.Context, rating *domain.AccommodationRating) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items[rating.ID] = *rating
	return nil
}

func (r *memoryAccommodationRatingRepo) Update(_ context.Context, rating *domain.AccommodationRating) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[rating.ID]; !ok {
		return sql.ErrNoRows
	}
	r.items[rating.ID] = *rating
	return nil
}

func (r *memoryAccommodationRatingRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[id]; !ok {
		return sql.ErrNoRows
	}
	delete(r.items, id)
	return nil
}

func (r *memoryAccommodationRatingRepo) ListByAccommodation(_ context.Context, accommodationID uuid.UUID, page domain.PageRequest) ([]domain.AccommodationRating, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var matching []domain.AccommodationRating
	for _, rating := range r.items {
		if rating.AccommodationID == accommodationID {
			matching = append(matching, rating)
		}
	}
	sort.Slice(matching, func(i, j int) bool {
		if !matching[i].CreatedAt.Equal(matching[j].CreatedAt) {
			return matching[i].CreatedAt.After(matching[j].CreatedAt)
		}
		return matching[i].ID.String() > matching[j].ID.String()
	})

	start := page.Offset()
	if start >= len(matching) {
		return nil, nil
	}
	end := start + page.PageSize
	if end > len(matching) {
		end = len(matching)
	}
	return matching[start:end], nil
}

func (r *memoryAccommodationRatingRepo) AggregateByAccommodation(_ context.Context, accommodationID uuid.UUID) (ports.RatingAggregate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	total := 0
	sum := 0
	for _, rating := range r.items {
		if rating.AccommodationID == accommodationID {
			total++
			sum += rating.Rating
		}
	}
	agg := ports.RatingAggregate{Total: total}
	if total > 0 {
		avg := float64(sum) / float64(total)
		agg.Average = &avg
	}
	return agg, nil
}

// passthroughUnitOfWork runs the callback directly; commitErr simulates a
// transaction the store rejects.
type passthroughUnitOfWork struct {
	commitErr error
	calls     int
}

func (u *passthroughUnitOfWork) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	u.calls++
	if err := fn(ctx); err != nil {
		return err
	}
	return u.commitErr
}

type recordingBus struct {
	published  []events.IntegrationEvent
	publishErr error
}

func (b *recordingBus) Publish(_ context.Context, event events.IntegrationEvent) error {
	if b.publishErr != nil {
		return b.publishErr
	}
	b.published = append(b.published, event)
	return nil
}

type stubAccommodationClient struct {
	info  *ports.AccommodationInfo
	err   error
	calls int
}

func (c *stubAccommodationClient) GetInfo(_ context.Context, _ uuid.UUID) (*ports.AccommodationInfo, error) {
	c.calls++
	if c.err != nil {
		return nil, c.err
	}
	return c.info, nil
}

var errCommitRejected = errors.New("commit rejected")
