package middleware

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/marketbay/storefront/internal/core/domain"
	"github.com/marketbay/storefront/internal/core/ports"
)

// Context keys set by the session middleware and read by handlers.
const (
	KeySID          = "sid"
	KeySessionState = "session_state"
	KeySession      = "session"
)

const sidCookie = "sid"

// Session identifies the browser and resolves its stored session on every
// request. A visitor without a sid cookie gets one; resolution failures are
// carried as StateResolving so the gate can answer "try again" instead of
// silently signing the visitor out.
func Session(sessions ports.SessionService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sid := readSID(c)
			if sid == "" {
				sid = uuid.NewString()
				c.SetCookie(&http.Cookie{
					Name:     sidCookie,
					Value:    sid,
					Path:     "/",
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			state, session, _ := sessions.Resolve(c.Request().Context(), sid)

			c.Set(KeySID, sid)
			c.Set(KeySessionState, state)
			c.Set(KeySession, session)
			return next(c)
		}
	}
}

func readSID(c echo.Context) string {
	cookie, err := c.Cookie(sidCookie)
	if err != nil || cookie.Value == "" {
		return ""
	}
	return cookie.Value
}

// SID returns the browser id injected by the Session middleware.
func SID(c echo.Context) string {
	sid, _ := c.Get(KeySID).(string)
	return sid
}

// CurrentSession returns the resolved session, which may be nil.
func CurrentSession(c echo.Context) *domain.Session {
	s, _ := c.Get(KeySession).(*domain.Session)
	return s
}

// SessionState returns the resolution state injected by the Session
// middleware.
func SessionState(c echo.Context) domain.SessionState {
	state, ok := c.Get(KeySessionState).(domain.SessionState)
	if !ok {
		return domain.StateResolving
	}
	return state
}
