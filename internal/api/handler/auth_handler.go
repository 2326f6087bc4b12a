package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/memberhub/members-portal/internal/api/metrics"
	"github.com/memberhub/members-portal/internal/api/middleware"
	"github.com/memberhub/members-portal/internal/core/domain"
	"github.com/memberhub/members-portal/internal/core/ports"
	"github.com/memberhub/members-portal/internal/core/session"
)

// AuthHandler drives the signup, login, and logout flows.
type AuthHandler struct {
	authService ports.AuthService
	sessions    *session.Manager
}

func NewAuthHandler(authService ports.AuthService, sessions *session.Manager) *AuthHandler {
	return &AuthHandler{authService: authService, sessions: sessions}
}

// Signup handles POST /submitUser. A missing field renders a 404 page naming
// the field; any shape violation bounces back to the signup form without
// detail; a duplicate identity re-renders the form with a registration error.
// Success auto-logs the new user in.
func (h *AuthHandler) Signup(c echo.Context) error {
	username := c.FormValue("username")
	email := c.FormValue("email")
	password := c.FormValue("password")

	user, err := h.authService.Signup(c.Request().Context(), username, email, password)
	if err != nil {
		var missing *domain.MissingFieldError
		switch {
		case errors.As(err, &missing):
			metrics.SignupsTotal.WithLabelValues("rejected").Inc()
			return c.Render(http.StatusNotFound, "missing_field", map[string]any{
				"Field": missing.Field,
			})
		case errors.Is(err, domain.ErrValidationFailed):
			metrics.SignupsTotal.WithLabelValues("rejected").Inc()
			return c.Redirect(http.StatusSeeOther, "/signup")
		case errors.Is(err, domain.ErrDuplicateUser):
			metrics.SignupsTotal.WithLabelValues("duplicate").Inc()
			return c.Render(http.StatusConflict, "signup", map[string]any{
				"Error": "That username or email is already taken.",
			})
		}
		return err
	}

	metrics.SignupsTotal.WithLabelValues("created").Inc()
	if err := h.establishSession(c, user); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/members")
}

// Login handles POST /loggingin. Unknown email and wrong password share one
// code path and one response; nothing in the reply reveals which it was.
func (h *AuthHandler) Login(c echo.Context) error {
	email := c.FormValue("email")
	password := c.FormValue("password")

	user, err := h.authService.Login(c.Request().Context(), email, password)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrValidationFailed):
			return c.Redirect(http.StatusSeeOther, "/login")
		case errors.Is(err, domain.ErrAuthenticationFailed):
			metrics.LoginsTotal.WithLabelValues("failed").Inc()
			return c.Render(http.StatusUnauthorized, "login", map[string]any{
				"Error": "Invalid email/password combination.",
			})
		}
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	if err := h.establishSession(c, user); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/members")
}

// Logout handles GET /logout: the session is destroyed server-side, so the
// id becomes useless even if the cookie survives on the client.
func (h *AuthHandler) Logout(c echo.Context) error {
	if cookie, err := c.Cookie(middleware.CookieName); err == nil && cookie.Value != "" {
		if err := h.sessions.Destroy(c.Request().Context(), cookie.Value); err != nil {
			return err
		}
	}
	middleware.ClearSessionCookie(c)
	metrics.LogoutsTotal.Inc()
	return c.Render(http.StatusOK, "logout", map[string]any{})
}

func (h *AuthHandler) establishSession(c echo.Context, user *domain.User) error {
	id, err := h.sessions.Create(c.Request().Context(), session.Identity{
		Username: user.Username,
		Email:    user.Email,
		Role:     user.Role,
	})
	if err != nil {
		return err
	}
	middleware.SetSessionCookie(c, id, h.sessions.TTL())
	return nil
}
