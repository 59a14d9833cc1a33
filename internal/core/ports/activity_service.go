package ports

import (
	"context"

	"github.com/marketbay/storefront/internal/core/domain"
)

// ActivityService processes recorded activity entries and serves the feed.
type ActivityService interface {
	// Process persists one entry. Called from dispatcher workers, never from
	// a request path.
	Process(ctx context.Context, a domain.Activity) error
	// Recent returns up to limit entries, newest first.
	Recent(ctx context.Context, limit int) ([]domain.Activity, error)
}
