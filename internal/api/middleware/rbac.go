package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/memberhub/members-portal/internal/core/domain"
)

// RequireRole enforces role-based access control. It runs strictly after
// RequireSession: an authenticated caller with the wrong role gets an
// explicit 403 page, never the login redirect.
func RequireRole(allowedRoles ...domain.Role) echo.MiddlewareFunc {
	allowed := make(map[domain.Role]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess := CurrentSession(c)
			if sess == nil {
				return c.Redirect(http.StatusSeeOther, "/login")
			}
			if _, ok := allowed[sess.Role]; !ok {
				return c.Render(http.StatusForbidden, "error", map[string]any{
					"Message": "403 - Not Authorized",
				})
			}
			return next(c)
		}
	}
}
