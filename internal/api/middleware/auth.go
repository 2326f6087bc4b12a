package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RequireSession gates routes that need an authenticated caller. Anonymous
// requests are redirected to the login page rather than served an error: the
// typical caller is a browser holding no session or an expired one.
func RequireSession() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if CurrentSession(c) == nil {
				return c.Redirect(http.StatusSeeOther, "/login")
			}
			return next(c)
		}
	}
}
