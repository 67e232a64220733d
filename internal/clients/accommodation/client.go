package accommodation

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/stayhub-app/rating-service/internal/repository/ports"
)

// Client talks to the accommodation service to resolve the owning host and
// display name of a rated accommodation. Calls carry a service-to-service
// bearer token; upstream auth failures surface as a service error, never as
// the caller's own unauthorized.
type Client struct {
	httpClient   *http.Client
	baseURL      string
	serviceToken string
	limiter      *rate.Limiter
}

func NewClient(baseURL, serviceToken string, rps int) *Client {
	if rps <= 0 {
		rps = 10
	}
	return &Client{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		baseURL:      baseURL,
		serviceToken: serviceToken,
		limiter:      rate.NewLimiter(rate.Every(time.Second/time.Duration(rps)), 1),
	}
}

func (c *Client) GetInfo(ctx context.Context, accommodationID uuid.UUID) (*ports.AccommodationInfo, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/api/v1/accommodations/%s", c.baseURL, accommodationID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if c.serviceToken != "" {
		req.Header.Set("Authorization", "Bearer "+c.serviceToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ports.ErrAccommodationService, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK:
		var info ports.AccommodationInfo
		if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
			return nil, fmt.Errorf("%w: decode response: %v", ports.ErrAccommodationService, err)
		}
		return &info, nil
	case resp.StatusCode == http.StatusNotFound:
		return nil, ports.ErrAccommodationNotFound
	case resp.StatusCode == http.StatusUnauthorized, resp.StatusCode == http.StatusForbidden:
		return nil, fmt.Errorf("%w: rejected service credentials (%d)", ports.ErrAccommodationService, resp.StatusCode)
	default:
		return nil, fmt.Errorf("%w: unexpected status %d", ports.ErrAccommodationService, resp.StatusCode)
	}
}

var _ ports.AccommodationClient = (*Client)(nil)
