package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/marketbay/storefront/internal/core/domain"
	"github.com/marketbay/storefront/internal/core/ports"
)

// OrderService backs the read-only order views. Orders are server-owned and
// immutable from here; nothing in the console stages or edits them.
type OrderService struct {
	orders ports.OrderAPI
	log    zerolog.Logger
}

func NewOrderService(orders ports.OrderAPI, log zerolog.Logger) *OrderService {
	return &OrderService{orders: orders, log: log}
}

// MyOrders lists the signed-in user's own order history.
func (s *OrderService) MyOrders(ctx context.Context, session *domain.Session) ([]domain.Order, error) {
	return s.orders.MyOrders(ctx, session.Token)
}

// Get fetches one order by id.
func (s *OrderService) Get(ctx context.Context, session *domain.Session, id int64) (*domain.Order, error) {
	return s.orders.GetOrder(ctx, session.Token, id)
}

// All lists every order, paginated, newest first. The admin gate guards the
// route; the backend enforces the role a second time.
func (s *OrderService) All(ctx context.Context, session *domain.Session, page, size int) (*ports.OrderPage, error) {
	if page < 0 {
		page = 0
	}
	if size <= 0 || size > 100 {
		size = 10
	}
	return s.orders.ListOrders(ctx, session.Token, page, size)
}
