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

type AccommodationRatingRequest struct {
	ID              *uuid.UUID
	AccommodationID uuid.UUID
	Rating          int
	Comment         string
}

type AccommodationRatingService struct {
	ratings        ports.AccommodationRatingRepository
	accommodations ports.AccommodationClient
	uow            ports.UnitOfWork
	bus            events.Bus
	now            func() time.Time
}

func NewAccommodationRatingService(
	ratings ports.AccommodationRatingRepository,
	accommodations ports.AccommodationClient,
	uow ports.UnitOfWork,
	bus events.Bus,
) *AccommodationRatingService {
	return &AccommodationRatingService{
		ratings:        ratings,
		accommodations: accommodations,
		uow:            uow,
		bus:            bus,
		now:            time.Now,
	}
}

// CreateOrUpdate upserts the guest's rating of an accommodation. The
// accommodation service is consulted first to resolve the owning host and
// display name; those values feed the published event, not the stored row.
func (s *AccommodationRatingService) CreateOrUpdate(ctx context.Context, principal domain.Principal, req AccommodationRatingRequest) error {
	if principal.UserID == nil {
		return ErrUnauthorized
	}
	if err := validateRating(req.Rating); err != nil {
		return err
	}
	if err := validateComment(req.Comment); err != nil {
		return err
	}

	info, err := s.accommodations.GetInfo(ctx, req.AccommodationID)
	if err != nil {
		return err
	}

	var stored *domain.AccommodationRating
	err = s.uow.WithinTx(ctx, func(ctx context.Context) error {
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
		rating := &domain.AccommodationRating{
			ID:              uuid.New(),
			AccommodationID: req.AccommodationID,
			GuestID:         *principal.UserID,
			Rating:          req.Rating,
			Comment:         req.Comment,
			GuestFirstName:  principal.FirstName,
			GuestLastName:   principal.LastName,
			GuestUsername:   principal.Username,
			CreatedAt:       now,
			LastChangedAt:   &now,
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

	event := events.AccommodationRatedEvent{
		HostID:            info.HostID,
		AccommodationID:   stored.AccommodationID,
		GuestUsername:     stored.GuestUsername,
		AccommodationName: info.Name,
		Rating:            stored.Rating,
	}
	if err := s.bus.Publish(ctx, event); err != nil {
		log.Printf("accommodation rating %s committed but event publish failed: %v", stored.ID, err)
	}
	return nil
}

func (s *AccommodationRatingService) Delete(ctx context.Context, principal domain.Principal, id uuid.UUID) error {
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

func (s *AccommodationRatingService) GetRatings(ctx context.Context, accommodationID uuid.UUID, page domain.PageRequest) (*domain.RatingPage[RatingResponse], error) {
	page = page.Normalize()

	agg, err := s.ratings.AggregateByAccommodation(ctx, accommodationID)
	if err != nil {
		return nil, err
	}

	ratings, err := s.ratings.ListByAccommodation(ctx, accommodationID, page)
	if err != nil {
		return nil, err
	}

	items := make([]RatingResponse, 0, len(ratings))
	for _, rating := range ratings {
		items = append(items, toAccommodationRatingResponse(rating))
	}

	return &domain.RatingPage[RatingResponse]{
		Items:         items,
		TotalCount:    agg.Total,
		Page:          page.Page,
		PageSize:      page.PageSize,
		AverageRating: agg.Average,
	}, nil
}

func (s *AccommodationRatingService) GetRating(ctx context.Context, id uuid.UUID) (*AccommodationRatingDetailResponse, error) {
	rating, err := s.ratings.FindByID(ctx, id)
	if err != nil {
		if isNotFound(err) {
			return nil, ErrRatingNotFound
		}
		return nil, err
	}
	detail := toAccommodationRatingDetail(*rating)
	return &detail, nil
}
