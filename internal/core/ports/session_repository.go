package ports

import (
	"context"

	"github.com/marketbay/storefront/internal/core/domain"
)

// SessionRepository durably persists one session per browser sid so a page
// reload does not force re-authentication. Implementations store the
// credential token and the serialized identity under fixed field names.
type SessionRepository interface {
	// Save stores (or replaces) the session for sid.
	Save(ctx context.Context, sid string, s *domain.Session) error
	// Load returns the stored session, or (nil, nil) when none exists.
	// A non-nil error means the store could not answer, not that the
	// visitor is signed out.
	Load(ctx context.Context, sid string) (*domain.Session, error)
	// Delete removes the session for sid. Deleting an absent session is not
	// an error.
	Delete(ctx context.Context, sid string) error
}
