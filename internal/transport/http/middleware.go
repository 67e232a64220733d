package http

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/stayhub-app/rating-service/internal/domain"
	"github.com/stayhub-app/rating-service/internal/util"
)

const contextPrincipalKey = "principal"

// RequireAuth resolves the caller's identity from the bearer token and
// attaches it as an immutable Principal. Handlers and services never read
// the raw claims themselves.
func RequireAuth(jwtManager *util.JWTManager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if strings.TrimSpace(authHeader) == "" {
				return c.JSON(http.StatusUnauthorized, util.Error("missing authorization header"))
			}
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return c.JSON(http.StatusUnauthorized, util.Error("invalid authorization header"))
			}
			claims, err := jwtManager.Parse(strings.TrimSpace(parts[1]))
			if err != nil {
				return c.JSON(http.StatusUnauthorized, util.Error("invalid or expired token"))
			}

			userID := claims.UserID
			c.Set(contextPrincipalKey, domain.Principal{
				UserID:    &userID,
				FirstName: claims.FirstName,
				LastName:  claims.LastName,
				Username:  claims.Username,
				Role:      claims.Role,
			})
			return next(c)
		}
	}
}

// RequireGuest gates the mutating rating endpoints to guest accounts.
func RequireGuest() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal, ok := CurrentPrincipal(c)
			if !ok || !principal.IsAuthenticated() {
				return c.JSON(http.StatusUnauthorized, util.Error("authentication required"))
			}
			if principal.Role != "Guest" {
				return c.JSON(http.StatusForbidden, util.Error("guest role required"))
			}
			return next(c)
		}
	}
}

func CurrentPrincipal(c echo.Context) (domain.Principal, bool) {
	principal, ok := c.Get(contextPrincipalKey).(domain.Principal)
	return principal, ok
}
