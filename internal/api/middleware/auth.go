package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/recordstack/records-api/internal/core/ports"
)

// userContextKey is where the resolved user is stored on the echo context.
const userContextKey = "current_user"

// UserContextKey exposes the context key for handlers.
func UserContextKey() string { return userContextKey }

// Auth validates the bearer token and injects the resolved user into the
// request context. Every failure mode yields the same 401 with a challenge
// header; the cause is never exposed.
func Auth(authService ports.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return unauthorized(c)
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return unauthorized(c)
			}

			user, err := authService.CurrentUser(c.Request().Context(), parts[1])
			if err != nil {
				return unauthorized(c)
			}

			c.Set(userContextKey, user)
			return next(c)
		}
	}
}

func unauthorized(c echo.Context) error {
	c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")
	return echo.NewHTTPError(http.StatusUnauthorized, "could not validate credentials")
}
