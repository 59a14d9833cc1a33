package domain

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Role is an enumerated authority granted by the backend. Roles arrive as
// free-form strings in the login payload and are normalized through ParseRole
// so a typo can never silently grant access.
type Role string

const (
	RoleUser  Role = "ROLE_USER"
	RoleAdmin Role = "ROLE_ADMIN"
)

// ParseRole maps a backend role string onto a known Role. Unknown values are
// preserved as-is; they compare equal to nothing in the known set.
func ParseRole(s string) Role {
	switch s {
	case string(RoleAdmin):
		return RoleAdmin
	case string(RoleUser):
		return RoleUser
	default:
		return Role(s)
	}
}

// Session is the authenticated identity held by the console on behalf of one
// browser. It carries the backend-issued bearer token and the role set that
// came with it.
type Session struct {
	Username  string    `json:"username"`
	Roles     []Role    `json:"roles"`
	Token     string    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

// IsAuthenticated reports whether the session holds a usable credential.
// A session without a token grants nothing, regardless of its role set.
// When the token is a parseable JWT, an expired `exp` claim also counts as
// unauthenticated; the token is issued and signed by the backend, so the
// signature is not (and cannot be) verified here.
func (s *Session) IsAuthenticated() bool {
	if s == nil || s.Token == "" {
		return false
	}
	exp, ok := tokenExpiry(s.Token)
	if ok && time.Now().After(exp) {
		return false
	}
	return true
}

// HasRole reports whether the session is authenticated and holds role.
func (s *Session) HasRole(role Role) bool {
	if !s.IsAuthenticated() {
		return false
	}
	for _, r := range s.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// IsAdmin is shorthand for HasRole(RoleAdmin).
func (s *Session) IsAdmin() bool {
	return s.HasRole(RoleAdmin)
}

// tokenExpiry extracts the exp claim from a JWT without verifying its
// signature. Returns ok=false for opaque (non-JWT) tokens.
func tokenExpiry(token string) (time.Time, bool) {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	expAt, err := claims.GetExpirationTime()
	if err != nil || expAt == nil {
		return time.Time{}, false
	}
	return expAt.Time, true
}
