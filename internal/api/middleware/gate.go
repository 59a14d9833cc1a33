package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/marketbay/storefront/internal/core/domain"
)

// Gate guards protected routes. It evaluates the access decision in fixed
// priority order: an unresolved session answers 503 with a Retry-After
// rather than guessing, a missing session redirects to the login view, and
// an authenticated non-admin hitting an admin route gets a denied notice
// instead of a redirect.
func Gate(requireAdmin bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			state := SessionState(c)
			session := CurrentSession(c)

			switch domain.DecideAccess(state, session, requireAdmin) {
			case domain.DecisionWait:
				c.Response().Header().Set("Retry-After", "1")
				return c.JSON(http.StatusServiceUnavailable, map[string]string{
					"error": "session not yet resolved",
				})
			case domain.DecisionRedirectLogin:
				return c.Redirect(http.StatusSeeOther, "/login")
			case domain.DecisionDeny:
				return c.JSON(http.StatusForbidden, map[string]string{
					"error": "admin access required",
				})
			}
			return next(c)
		}
	}
}
