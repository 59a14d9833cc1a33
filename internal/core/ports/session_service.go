package ports

import (
	"context"

	"github.com/marketbay/storefront/internal/core/domain"
)

// SessionService owns the console's authenticated identity. Login and Logout
// are its only mutators; everything else reads.
type SessionService interface {
	// Login authenticates against the backend and durably stores the
	// resulting session under sid. Invalid credentials surface as
	// domain.ErrInvalidCredentials.
	Login(ctx context.Context, sid, username, password string) (*domain.Session, error)
	// Register passes a new-account request through to the backend.
	Register(ctx context.Context, in RegisterInput) (*RegisterResult, error)
	// Logout clears the stored session unconditionally; idempotent.
	Logout(ctx context.Context, sid string) error
	// Resolve loads the session for sid. State is StateResolving when the
	// store cannot answer, StateAnonymous when nothing is stored.
	Resolve(ctx context.Context, sid string) (domain.SessionState, *domain.Session, error)
}
