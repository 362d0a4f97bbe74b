package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/recordstack/records-api/internal/api/metrics"
	"github.com/recordstack/records-api/internal/api/middleware"
	"github.com/recordstack/records-api/internal/core/domain"
	"github.com/recordstack/records-api/internal/core/ports"
)

// AuthHandler handles the token exchange and the current-user lookup.
type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Token exchanges a username (the account email) and password for a bearer
// token. The request body is form-encoded, matching the OAuth2 password flow.
//
// @Summary      Exchange credentials for a bearer token
// @Tags         auth
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        username  formData  string  true  "Account email"
// @Param        password  formData  string  true  "Password"
// @Success      200  {object}  tokenResponse
// @Failure      401  {object}  errorResponse
// @Router       /token [post]
func (h *AuthHandler) Token(c echo.Context) error {
	email := c.FormValue("username")
	password := c.FormValue("password")

	user, err := h.authService.Authenticate(c.Request().Context(), email, password)
	if err != nil {
		metrics.LoginAttemptsTotal.WithLabelValues("failure").Inc()
		c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")
		return echo.NewHTTPError(http.StatusUnauthorized, "incorrect username or password")
	}

	token, err := h.authService.IssueToken(user.Email)
	if err != nil {
		return err
	}

	metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, tokenResponse{AccessToken: token, TokenType: "bearer"})
}

// Me returns the user resolved from the presented bearer token.
//
// @Summary      Get the authenticated user
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.User
// @Failure      401  {object}  errorResponse
// @Router       /users/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	user, ok := c.Get(middleware.UserContextKey()).(*domain.User)
	if !ok || user == nil {
		c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")
		return echo.NewHTTPError(http.StatusUnauthorized, "could not validate credentials")
	}
	return c.JSON(http.StatusOK, user)
}
