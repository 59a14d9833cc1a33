package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/marketbay/storefront/internal/api/metrics"
	"github.com/marketbay/storefront/internal/core/domain"
	"github.com/marketbay/storefront/internal/core/ports"
)

// CartService holds every visitor's cart in one process-wide registry. A
// mutex serializes mutations: one at a time, many readers between them.
// Carts are ephemeral; a restart empties them all.
type CartService struct {
	catalog  ports.CatalogAPI
	orders   ports.OrderAPI
	recorder ports.ActivityRecorder
	log      zerolog.Logger

	mu    sync.Mutex
	carts map[string]*domain.Cart
}

func NewCartService(catalog ports.CatalogAPI, orders ports.OrderAPI, recorder ports.ActivityRecorder, log zerolog.Logger) *CartService {
	return &CartService{
		catalog:  catalog,
		orders:   orders,
		recorder: recorder,
		log:      log,
		carts:    make(map[string]*domain.Cart),
	}
}

// cart returns the cart for sid, creating it on first use. Caller must hold mu.
func (s *CartService) cart(sid string) *domain.Cart {
	c, ok := s.carts[sid]
	if !ok {
		c = domain.NewCart()
		s.carts[sid] = c
	}
	return c
}

func view(c *domain.Cart) *ports.CartView {
	return &ports.CartView{
		Lines:   c.Lines(),
		Total:   c.Total().StringFixed(2),
		Count:   c.Len(),
		Visible: c.Visible,
	}
}

// View returns the current cart state without mutating it.
func (s *CartService) View(sid string) *ports.CartView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return view(s.cart(sid))
}

// Add fetches the product snapshot from the backend and merges one unit into
// the cart. The panel opens as a side effect of every add.
func (s *CartService) Add(ctx context.Context, session *domain.Session, sid string, productID int64) (*ports.CartView, error) {
	product, err := s.catalog.GetProduct(ctx, session.Token, productID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.cart(sid)
	c.AddItem(*product)
	return view(c), nil
}

// SetQuantity overwrites a line's quantity; values below 1 remove the line.
func (s *CartService) SetQuantity(sid string, productID int64, quantity int) *ports.CartView {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.cart(sid)
	c.SetQuantity(productID, quantity)
	return view(c)
}

// Remove deletes a line; removing an absent product is a no-op.
func (s *CartService) Remove(sid string, productID int64) *ports.CartView {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.cart(sid)
	c.RemoveItem(productID)
	return view(c)
}

// SetPanel shows or hides the cart side panel.
func (s *CartService) SetPanel(sid string, visible bool) *ports.CartView {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.cart(sid)
	c.Visible = visible
	return view(c)
}

// Checkout submits the cart as an order. An empty cart is rejected before any
// network call; a second submission while one is in flight is rejected too.
// On success the cart is cleared and the panel hidden; on failure the cart is
// left exactly as it was.
func (s *CartService) Checkout(ctx context.Context, session *domain.Session, sid, paymentMethod string) (*ports.CheckoutResult, error) {
	if paymentMethod == "" {
		paymentMethod = domain.DefaultPaymentMethod
	}

	s.mu.Lock()
	c := s.cart(sid)
	if c.IsEmpty() {
		s.mu.Unlock()
		return nil, domain.ErrEmptyCart
	}
	if !c.BeginSubmit() {
		s.mu.Unlock()
		return nil, domain.ErrOrderInFlight
	}
	lines := c.Lines()
	s.mu.Unlock()

	items := make([]ports.OrderItemInput, 0, len(lines))
	for _, l := range lines {
		items = append(items, ports.OrderItemInput{ProductID: l.ProductID, Quantity: l.Quantity})
	}

	order, err := s.orders.PlaceOrder(ctx, session.Token, ports.PlaceOrderInput{
		Items:         items,
		PaymentMethod: paymentMethod,
	})

	s.mu.Lock()
	defer s.mu.Unlock()
	c.EndSubmit()

	if err != nil {
		metrics.OrdersFailedTotal.WithLabelValues(failureReason(err)).Inc()
		return nil, err
	}

	c.Clear()
	metrics.OrdersPlacedTotal.WithLabelValues(paymentMethod).Inc()
	s.log.Info().Str("username", session.Username).Int64("order_id", order.ID).Msg("order placed")
	s.recorder.Record(domain.Activity{
		Kind:      domain.ActivityOrderPlaced,
		Username:  session.Username,
		Detail:    fmt.Sprintf("order %d, total %s", order.ID, order.TotalAmount.StringFixed(2)),
		Timestamp: time.Now().UTC(),
	})

	return &ports.CheckoutResult{Order: order}, nil
}

// Drop discards the cart for sid.
func (s *CartService) Drop(sid string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, sid)
}

func failureReason(err error) string {
	switch {
	case err == nil:
		return "none"
	case errors.Is(err, domain.ErrBackendUnavailable):
		return "backend_unavailable"
	default:
		return "rejected"
	}
}
