package ports

import (
	"context"

	"github.com/marketbay/storefront/internal/core/domain"
)

// ActivityRepository persists the capped activity feed.
type ActivityRepository interface {
	Append(ctx context.Context, a domain.Activity) error
	Recent(ctx context.Context, limit int) ([]domain.Activity, error)
}

// ActivityRecorder accepts activity entries for asynchronous recording.
// Record never blocks the caller on persistence.
type ActivityRecorder interface {
	Record(a domain.Activity)
}
