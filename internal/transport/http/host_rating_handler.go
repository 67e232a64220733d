package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/stayhub-app/rating-service/internal/service"
	"github.com/stayhub-app/rating-service/internal/util"
)

type HostRatingHandler struct {
	ratings *service.HostRatingService
}

func RegisterHostRatings(e *echo.Echo, jwtManager *util.JWTManager, ratings *service.HostRatingService) {
	handler := &HostRatingHandler{ratings: ratings}

	public := e.Group("/api/v1/host-ratings")
	public.GET("", handler.listRatings)
	public.GET("/:id", handler.getRating)

	guests := e.Group("/api/v1/host-ratings", RequireAuth(jwtManager), RequireGuest())
	guests.POST("", handler.createOrUpdate)
	guests.DELETE("/:id", handler.deleteRating)
}

// createOrUpdate handles POST /api/v1/host-ratings
func (h *HostRatingHandler) createOrUpdate(c echo.Context) error {
	principal, ok := CurrentPrincipal(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, util.Error("authentication required"))
	}

	var req HostRatingUpsertRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid request payload"))
	}
	if req.HostID == uuid.Nil {
		return c.JSON(http.StatusBadRequest, util.Error("host_id required"))
	}

	err := h.ratings.CreateOrUpdate(c.Request().Context(), principal, service.HostRatingRequest{
		ID:      req.ID,
		HostID:  req.HostID,
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		return ratingErrorResponse(c, err, "unable to save rating")
	}
	return c.NoContent(http.StatusCreated)
}

// deleteRating handles DELETE /api/v1/host-ratings/{id}
func (h *HostRatingHandler) deleteRating(c echo.Context) error {
	principal, ok := CurrentPrincipal(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, util.Error("authentication required"))
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid rating id"))
	}

	if err := h.ratings.Delete(c.Request().Context(), principal, id); err != nil {
		return ratingErrorResponse(c, err, "unable to delete rating")
	}
	return c.NoContent(http.StatusNoContent)
}

// listRatings handles GET /api/v1/host-ratings?host_id=...&page=...&page_size=...
func (h *HostRatingHandler) listRatings(c echo.Context) error {
	hostID, err := uuid.Parse(c.QueryParam("host_id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("host_id required"))
	}

	page, err := parsePageRequest(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error(err.Error()))
	}

	result, err := h.ratings.GetRatings(c.Request().Context(), hostID, page)
	if err != nil {
		return ratingErrorResponse(c, err, "unable to list ratings")
	}
	return c.JSON(http.StatusOK, toPagedResponse(result))
}

// getRating handles GET /api/v1/host-ratings/{id}
func (h *HostRatingHandler) getRating(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, util.Error("invalid rating id"))
	}

	detail, err := h.ratings.GetRating(c.Request().Context(), id)
	if err != nil {
		return ratingErrorResponse(c, err, "unable to fetch rating")
	}
	return c.JSON(http.StatusOK, detail)
}
