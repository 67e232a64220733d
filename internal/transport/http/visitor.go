package http

import (
	"log"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

// VisitorTracking counts unique visitors per day, keyed by ip and browser
// family. A Redis hiccup never fails the request.
func VisitorTracking(rdb *redis.Client) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ip := c.RealIP()
			if ip == "" {
				ip = "unknown"
			}
			browser := browserFamily(c.Request().UserAgent())
			date := time.Now().UTC().Format("2006-01-02")
			key := "visitor:" + date + ":" + ip + ":" + browser

			ctx := c.Request().Context()
			set, err := rdb.SetNX(ctx, key, "1", 48*time.Hour).Result()
			if err != nil {
				log.Printf("visitor tracking unavailable: %v", err)
			} else if set {
				log.Printf(`{"event":"unique_visitor","date":%q,"browser":%q}`, date, browser)
			}

			return next(c)
		}
	}
}

func browserFamily(userAgent string) string {
	switch {
	case strings.Contains(userAgent, "Edg"):
		return "Edge"
	case strings.Contains(userAgent, "Chrome"):
		return "Chrome"
	case strings.Contains(userAgent, "Firefox"):
		return "Firefox"
	case strings.Contains(userAgent, "Safari"):
		return "Safari"
	default:
		return "Other"
	}
}
