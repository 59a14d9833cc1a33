package ports

import (
	"context"

	"github.com/marketbay/storefront/internal/core/domain"
)

// OrderService backs the read-only order views.
type OrderService interface {
	// MyOrders lists the signed-in user's own order history.
	MyOrders(ctx context.Context, session *domain.Session) ([]domain.Order, error)
	// Get fetches one order by id.
	Get(ctx context.Context, session *domain.Session, id int64) (*domain.Order, error)
	// All lists every order, paginated, newest first. Admin only.
	All(ctx context.Context, session *domain.Session, page, size int) (*OrderPage, error)
}
