package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus represents the lifecycle state of an order, owned by the backend.
type OrderStatus string

const (
	OrderPending   OrderStatus = "PENDING"
	OrderConfirmed OrderStatus = "CONFIRMED"
	OrderCancelled OrderStatus = "CANCELLED"
	OrderDelivered OrderStatus = "DELIVERED"
)

// PaymentStatus represents the payment state reported by the backend.
type PaymentStatus string

const (
	PaymentPending PaymentStatus = "PENDING"
	PaymentSuccess PaymentStatus = "SUCCESS"
	PaymentFailed  PaymentStatus = "FAILED"
)

// DefaultPaymentMethod is used when a checkout does not name one.
const DefaultPaymentMethod = "CREDIT_CARD"

// OrderLine is one product/quantity pairing within a placed order.
type OrderLine struct {
	ProductID   int64           `json:"productId"`
	ProductName string          `json:"productName"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
}

// Order is a server-owned record, immutable from the console's perspective
// once placed.
type Order struct {
	ID            int64           `json:"id"`
	Lines         []OrderLine     `json:"items"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	Status        OrderStatus     `json:"status"`
	PaymentStatus PaymentStatus   `json:"paymentStatus"`
	PaymentMethod string          `json:"paymentMethod"`
	CreatedAt     time.Time       `json:"createdAt"`
}
