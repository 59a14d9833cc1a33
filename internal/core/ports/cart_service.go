package ports

import (
	"context"

	"github.com/marketbay/storefront/internal/core/domain"
)

// CartView is the rendered state of one cart: its lines, the display total,
// and whether the side panel is open.
type CartView struct {
	Lines   []domain.CartLine `json:"lines"`
	Total   string            `json:"total"`
	Count   int               `json:"count"`
	Visible bool              `json:"visible"`
}

// CheckoutResult reports a successfully placed order.
type CheckoutResult struct {
	Order *domain.Order `json:"order"`
}

// CartService drives the per-visitor shopping cart state machine. All
// mutations are serialized internally; carts are ephemeral and vanish with
// the process.
type CartService interface {
	// View returns the current cart state for sid (an empty cart when none
	// exists yet).
	View(sid string) *CartView
	// Add merges one unit of the product into the cart and opens the panel.
	// The product snapshot is fetched from the backend.
	Add(ctx context.Context, session *domain.Session, sid string, productID int64) (*CartView, error)
	// SetQuantity overwrites a line's quantity; below 1 removes the line.
	SetQuantity(sid string, productID int64, quantity int) *CartView
	// Remove deletes a line; absent lines are a no-op.
	Remove(sid string, productID int64) *CartView
	// SetPanel shows or hides the cart side panel.
	SetPanel(sid string, visible bool) *CartView
	// Checkout submits the cart as an order. An empty cart fails with
	// domain.ErrEmptyCart before any network call; a concurrent submission
	// fails with domain.ErrOrderInFlight. On success the cart is cleared
	// and hidden; on failure it is left untouched.
	Checkout(ctx context.Context, session *domain.Session, sid, paymentMethod string) (*CheckoutResult, error)
	// Drop discards the cart for sid (used on logout).
	Drop(sid string)
}
