package domain

import "github.com/shopspring/decimal"

// CartLine is one product/quantity pairing in a cart. Quantity is always >= 1;
// a line that would drop below 1 is removed from the cart instead.
type CartLine struct {
	ProductID int64   `json:"productId"`
	Quantity  int     `json:"quantity"`
	Product   Product `json:"product"`
}

// Subtotal returns price * quantity for this line.
func (l CartLine) Subtotal() decimal.Decimal {
	return l.Product.Price.Mul(decimal.NewFromInt(int64(l.Quantity)))
}

// Cart accumulates selected products pending order submission. It is
// client-local and ephemeral; it keeps at most one line per product, in
// insertion order. Cart is not safe for concurrent use; callers serialize
// access (CartService holds the lock).
type Cart struct {
	lines []CartLine

	// Visible tracks whether the cart side panel is shown. AddItem always
	// reveals it; a successful checkout hides it again.
	Visible bool

	// submitting guards against a second checkout while one is in flight.
	submitting bool
}

// NewCart returns an empty, hidden cart.
func NewCart() *Cart {
	return &Cart{}
}

// AddItem merges product into the cart: an existing line gains one unit, a
// new product gets a fresh line with quantity 1. The cart panel becomes
// visible as a side effect.
func (c *Cart) AddItem(p Product) {
	defer func() { c.Visible = true }()
	for i := range c.lines {
		if c.lines[i].ProductID == p.ID {
			c.lines[i].Quantity++
			return
		}
	}
	c.lines = append(c.lines, CartLine{ProductID: p.ID, Quantity: 1, Product: p})
}

// RemoveItem deletes the line for productID. Removing an absent product is a
// no-op, not an error.
func (c *Cart) RemoveItem(productID int64) {
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// SetQuantity overwrites the quantity of the line for productID. A quantity
// below 1 is normalized to removal; it is never stored.
func (c *Cart) SetQuantity(productID int64, quantity int) {
	if quantity < 1 {
		c.RemoveItem(productID)
		return
	}
	for i := range c.lines {
		if c.lines[i].ProductID == productID {
			c.lines[i].Quantity = quantity
			return
		}
	}
}

// Total sums price*quantity over all lines, rounded half-up to 2 decimal
// places to match currency display.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, l := range c.lines {
		total = total.Add(l.Subtotal())
	}
	return total.Round(2)
}

// Lines returns a copy of the cart lines in insertion order.
func (c *Cart) Lines() []CartLine {
	out := make([]CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

// Len returns the number of distinct lines.
func (c *Cart) Len() int {
	return len(c.lines)
}

// IsEmpty reports whether the cart holds no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// Clear empties the cart and hides the panel.
func (c *Cart) Clear() {
	c.lines = nil
	c.Visible = false
}

// BeginSubmit marks a checkout as in flight. It reports false when another
// submission is already running.
func (c *Cart) BeginSubmit() bool {
	if c.submitting {
		return false
	}
	c.submitting = true
	return true
}

// EndSubmit clears the in-flight marker.
func (c *Cart) EndSubmit() {
	c.submitting = false
}
