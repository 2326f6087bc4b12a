package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/memberhub/members-portal/internal/core/session"
)

// CookieName is the cookie carrying the opaque session identifier.
const CookieName = "session_id"

const sessionContextKey = "session"

// LoadSession resolves the session cookie on every request and places the
// result in the echo context for the gates and handlers downstream. Requests
// without a usable session proceed with no session set; session store
// failures propagate to the top-level error handler.
func LoadSession(sessions *session.Manager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(CookieName)
			if err != nil || cookie.Value == "" {
				return next(c)
			}

			sess, err := sessions.Read(c.Request().Context(), cookie.Value)
			if err != nil {
				return err
			}
			if sess != nil {
				c.Set(sessionContextKey, sess)
			}
			return next(c)
		}
	}
}

// CurrentSession returns the session loaded for this request, or nil when the
// caller is unauthenticated.
func CurrentSession(c echo.Context) *session.Session {
	sess, _ := c.Get(sessionContextKey).(*session.Session)
	return sess
}

// SetSessionCookie delivers the opaque session id to the client. The cookie
// is HTTP-only and lives as long as the session itself.
func SetSessionCookie(c echo.Context, id string, ttl time.Duration) {
	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    id,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// ClearSessionCookie expires the session cookie immediately.
func ClearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
