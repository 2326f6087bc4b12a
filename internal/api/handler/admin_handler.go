package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/memberhub/members-portal/internal/api/metrics"
	"github.com/memberhub/members-portal/internal/core/ports"
)

// AdminHandler serves the admin listing and the promote/demote operations.
// All three routes sit behind the same session + admin-role gate chain.
type AdminHandler struct {
	accounts ports.AccountService
}

func NewAdminHandler(accounts ports.AccountService) *AdminHandler {
	return &AdminHandler{accounts: accounts}
}

// List handles GET /admin: every user with role and a promote/demote link.
func (h *AdminHandler) List(c echo.Context) error {
	users, err := h.accounts.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "admin", map[string]any{"Users": users})
}

// Promote handles GET /promote?username=<name>.
func (h *AdminHandler) Promote(c echo.Context) error {
	username := c.QueryParam("username")
	if username == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "username is required")
	}
	if err := h.accounts.Promote(c.Request().Context(), username); err != nil {
		return err
	}
	metrics.RoleChangesTotal.WithLabelValues("promote").Inc()
	return c.Redirect(http.StatusSeeOther, "/admin")
}

// Demote handles GET /demote?username=<name>.
func (h *AdminHandler) Demote(c echo.Context) error {
	username := c.QueryParam("username")
	if username == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "username is required")
	}
	if err := h.accounts.Demote(c.Request().Context(), username); err != nil {
		return err
	}
	metrics.RoleChangesTotal.WithLabelValues("demote").Inc()
	return c.Redirect(http.StatusSeeOther, "/admin")
}
