package service

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/stayhub-app/rating-service/internal/domain"
	"github.com/stayhub-app/rating-service/internal/events"
	"github.com/stayhub-app/rating-service/internal/repository/ports"
)

type HostRatingRequest struct {
	ID      *uuid.UUID
	HostID  uuid.UUID
	Rating  int
	Comment string
}

type HostRatingService struct {
	ratings ports.HostRatingRepository
	uow     ports.UnitOfWork
	bus     events.Bus
	now     func() time.Time
}

func NewHostRatingService(ratings ports.HostRatingRepository, uow ports.UnitOfWork, bus events.Bus) *HostRatingService {
	return &HostRatingService{
		ratings: ratings,
		uow:     uow,
		bus:     bus,
		now:     time.Now,
	}
}

// CreateOrUpdate upserts the guest's rating of a host. A request without an
// ID creates a new record owned by the principal; a request with an ID
// mutates the existing record after an ownership check. On a committed
// write exactly one HostRated event is published.
func (s *HostRatingService) CreateOrUpdate(ctx context.Context, principal domain.Principal, req HostRatingRequest) error {
	if principal.UserID == nil {
		return ErrUnauthorized
	}
	if err := validateRating(req.Rating); err != nil {
		return err
	}
	if err := validateComment(req.Comment); err != nil {
		return err
	}

	var stored *domain.HostRating
	err := s.uow.WithinTx(ctx, func(ctx context.Context) error {
		if req.ID != nil {
			rating, err := s.ratings.FindByID(ctx, *req.ID)
			if err != nil {
				if isNotFound(err) {
					return ErrRatingNotFound
				}
				return err
			}
			if rating.GuestID != *principal.UserID {
				return ErrUnauthorized
			}

			now := s.now()
			rating.Rating = req.Rating
			rating.Comment = req.Comment
			rating.GuestFirstName = principal.FirstName
			rating.GuestLastName = principal.LastName
			rating.GuestUsername = principal.Username
			rating.LastChangedAt = &now

			if err := s.ratings.Update(ctx, rating); err != nil {
				return err
			}
			stored = rating
			return nil
		}

		now := s.now()
		rating := &domain.HostRating{
			ID:             uuid.New(),
			HostID:         req.HostID,
			GuestID:        *principal.UserID,
			Rating:         req.Rating,
			Comment:        req.Comment,
			GuestFirstName: principal.FirstName,
			GuestLastName:  principal.LastName,
			GuestUsername:  principal.Username,
			CreatedAt:      now,
			LastChangedAt:  &now,
		}
		if err := s.ratings.Insert(ctx, rating); err != nil {
			return err
		}
		stored = rating
		return nil
	})
	if err != nil {
		return err
	}

	event := events.HostRatedEvent{
		HostID:        stored.HostID,
		GuestUsername: stored.GuestUsername,
		Rating:        stored.Rating,
	}
	if err := s.bus.Publish(ctx, event); err != nil {
		// The row is already committed; dropping the event here is the
		// documented at-least-once gap, not a request failure.
		log.Printf("host rating %s committed but event publish failed: %v", stored.ID, err)
	}
	return nil
}

// Delete removes the rating. Only the authoring guest may delete; no event
// is published for deletions.
func (s *HostRatingService) Delete(ctx context.Context, principal domain.Principal, id uuid.UUID) error {
	if principal.UserID == nil {
		return ErrUnauthorized
	}

	return s.uow.WithinTx(ctx, func(ctx context.Context) error {
		rating, err := s.ratings.FindByID(ctx, id)
		if err != nil {
			if isNotFound(err) {
				return ErrRatingNotFound
			}
			return err
		}
		if rating.GuestID != *principal.UserID {
			return ErrUnauthorized
		}
		return s.ratings.Delete(ctx, id)
	})
}

// GetRatings returns one page of a host's ratings plus the average over the
// whole matching set. The average is nil when the host has no ratings.
func (s *HostRatingService) GetRatings(ctx context.Context, hostID uuid.UUID, page domain.PageRequest) (*domain.RatingPage[RatingResponse], error) {
	page = page.Normalize()

	agg, err := s.ratings.AggregateByHost(ctx, hostID)
	if err != nil {
		return nil, err
	}

	ratings, err := s.ratings.ListByHost(ctx, hostID, page)
	if err != nil {
		return nil, err
	}

	items := make([]RatingResponse, 0, len(ratings))
	for _, rating := range ratings {
		items = append(items, toHostRatingResponse(rating))
	}

	return &domain.RatingPage[RatingResponse]{
		Items:         items,
		TotalCount:    agg.Total,
		Page:          page.Page,
		PageSize:      page.PageSize,
		AverageRating: agg.Average,
	}, nil
}

func (s *HostRatingService) GetRating(ctx context.Context, id uuid.UUID) (*HostRatingDetailResponse, error) {
	rating, err := s.ratings.FindByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrRatingNotFound
		}
		return nil, err
	}
	detail := toHostRatingDetail(*rating)
	return &detail, nil
}
