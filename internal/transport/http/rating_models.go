package http

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/stayhub-app/rating-service/internal/domain"
	"github.com/stayhub-app/rating-service/internal/repository/ports"
	"github.com/stayhub-app/rating-service/internal/service"
	"github.com/stayhub-app/rating-service/internal/util"
)

type HostRatingUpsertRequest struct {
	ID      *uuid.UUID `json:"id,omitempty"`
	HostID  uuid.UUID  `json:"host_id"`
	Rating  int        `json:"rating"`
	Comment string     `json:"comment"`
}

type AccommodationRatingUpsertRequest struct {
	ID              *uuid.UUID `json:"id,omitempty"`
	AccommodationID uuid.UUID  `json:"accommodation_id"`
	Rating          int        `json:"rating"`
	Comment         string     `json:"comment"`
}

type PagedRatingsResponse struct {
	Items         []service.RatingResponse `json:"items"`
	TotalCount    int                      `json:"total_count"`
	Page          int                      `json:"page"`
	PageSize      int                      `json:"page_size"`
	AverageRating *float64                 `json:"average_rating,omitempty"`
}

func toPagedResponse(page *domain.RatingPage[service.RatingResponse]) PagedRatingsResponse {
	return PagedRatingsResponse{
		Items:         page.Items,
		TotalCount:    page.TotalCount,
		Page:          page.Page,
		PageSize:      page.PageSize,
		AverageRating: page.AverageRating,
	}
}

func parsePageRequest(c echo.Context) (domain.PageRequest, error) {
	page := domain.PageRequest{}
	if pageStr := strings.TrimSpace(c.QueryParam("page")); pageStr != "" {
		val, err := strconv.Atoi(pageStr)
		if err != nil {
			return domain.PageRequest{}, errors.New("page must be an integer")
		}
		page.Page = val
	}
	if sizeStr := strings.TrimSpace(c.QueryParam("page_size")); sizeStr != "" {
		val, err := strconv.Atoi(sizeStr)
		if err != nil {
			return domain.PageRequest{}, errors.New("page_size must be an integer")
		}
		page.PageSize = val
	}
	return page, nil
}

// ratingErrorResponse maps the service error taxonomy onto HTTP statuses.
// Upstream rejections from the accommodation service are a gateway problem,
// never attributed to the caller as 401.
func ratingErrorResponse(c echo.Context, err error, fallback string) error {
	switch {
	case errors.Is(err, service.ErrUnauthorized):
		return c.JSON(http.StatusUnauthorized, util.Error(err.Error()))
	case errors.Is(err, service.ErrRatingNotFound), errors.Is(err, ports.ErrAccommodationNotFound):
		return c.JSON(http.StatusNotFound, util.Error(err.Error()))
	case errors.Is(err, service.ErrRatingValidation):
		return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
	case errors.Is(err, ports.ErrAccommodationService):
		return c.JSON(http.StatusBadGateway, util.Error(err.Error()))
	default:
		return c.JSON(http.StatusInternalServerError, util.Error(fallback))
	}
}
