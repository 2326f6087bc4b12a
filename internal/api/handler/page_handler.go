package handler

import (
	"math/rand"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/memberhub/members-portal/internal/api/middleware"
)

// PageHandler serves the plain pages: home, the two forms, and the members
// area.
type PageHandler struct{}

func NewPageHandler() *PageHandler {
	return &PageHandler{}
}

// Home branches on session state: signed-in users get a greeting and the
// members link, everyone else gets the signup/login buttons.
func (h *PageHandler) Home(c echo.Context) error {
	sess := middleware.CurrentSession(c)
	if sess == nil {
		return c.Render(http.StatusOK, "home", map[string]any{"SignedIn": false})
	}
	return c.Render(http.StatusOK, "home", map[string]any{
		"SignedIn": true,
		"Username": sess.Username,
	})
}

func (h *PageHandler) LoginForm(c echo.Context) error {
	return c.Render(http.StatusOK, "login", map[string]any{})
}

func (h *PageHandler) SignupForm(c echo.Context) error {
	return c.Render(http.StatusOK, "signup", map[string]any{})
}

// Members requires an authenticated session (enforced by the gate). One of
// three images is picked at random per request.
func (h *PageHandler) Members(c echo.Context) error {
	sess := middleware.CurrentSession(c)
	return c.Render(http.StatusOK, "members", map[string]any{
		"Username": sess.Username,
		"Random":   rand.Intn(3) + 1,
	})
}
