package http

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/stayhub-app/rating-service/internal/repository/ports"
	"github.com/stayhub-app/rating-service/internal/service"
)

func TestParsePageRequest(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/host-ratings?page=2&page_size=25", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	page, err := parsePageRequest(c)
	if err != nil {
		t.Fatalf("parsePageRequest: %v", err)
	}
	if page.Page != 2 || page.PageSize != 25 {
		t.Fatalf("page = %d/%d, want 2/25", page.Page, page.PageSize)
	}
}

func TestParsePageRequestDefaultsAndErrors(t *testing.T) {
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/host-ratings", nil)
	c := e.NewContext(req, httptest.NewRecorder())
	page, err := parsePageRequest(c)
	if err != nil {
		t.Fatalf("parsePageRequest: %v", err)
	}
	if page.Page != 0 || page.PageSize != 0 {
		t.Fatalf("absent params must stay zero for Normalize, got %d/%d", page.Page, page.PageSize)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/host-ratings?page=abc", nil)
	c = e.NewContext(req, httptest.NewRecorder())
	if _, err := parsePageRequest(c); err == nil {
		t.Fatal("expected error for non-integer page")
	}

	req = httptest.NewRequest(http.MethodGet, "/api/v1/host-ratings?page_size=x", nil)
	c = e.NewContext(req, httptest.NewRecorder())
	if _, err := parsePageRequest(c); err == nil {
		t.Fatal("expected error for non-integer page_size")
	}
}

func TestRatingErrorResponseMapping(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{service.ErrUnauthorized, http.StatusUnauthorized},
		{service.ErrRatingNotFound, http.StatusNotFound},
		{ports.ErrAccommodationNotFound, http.StatusNotFound},
		{fmt.Errorf("%w: rating must be between 1 and 5", service.ErrRatingValidation), http.StatusBadRequest},
		{fmt.Errorf("%w: status 500", ports.ErrAccommodationService), http.StatusBadGateway},
		{fmt.Errorf("connection reset"), http.StatusInternalServerError},
	}

	e := echo.New()
	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/host-ratings", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		if err := ratingErrorResponse(c, tc.err, "fallback"); err != nil {
			t.Fatalf("ratingErrorResponse(%v): %v", tc.err, err)
		}
		if rec.Code != tc.want {
			t.Fatalf("err %v mapped to %d, want %d", tc.err, rec.Code, tc.want)
		}
	}
}

func TestBrowserFamily(t *testing.T) {
	cases := []struct {
		agent string
		want  string
	}{
		{"Mozilla/5.0 (Windows NT 10.0) Chrome/120.0 Safari/537.36 Edg/120.0", "Edge"},
		{"Mozilla/5.0 (X11; Linux x86_64) Chrome/120.0 Safari/537.36", "Chrome"},
		{"Mozilla/5.0 (X11; Linux x86_64; rv:121.0) Gecko/20100101 Firefox/121.0", "Firefox"},
		{"Mozilla/5.0 (Macintosh) AppleWebKit/605.1.15 Version/17.0 Safari/605.1.15", "Safari"},
		{"curl/8.4.0", "Other"},
	}
	for _, tc := range cases {
		if got := browserFamily(tc.agent); got != tc.want {
			t.Fatalf("browserFamily(%q) = %q, want %q", tc.agent, got, tc.want)
		}
	}
}
