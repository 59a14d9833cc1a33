package ports

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/marketbay/storefront/internal/core/domain"
)

// LoginResult is the backend's answer to a successful login.
type LoginResult struct {
	Token    string
	Username string
	Roles    []string
}

// RegisterInput carries a new account request, passed through to the backend.
type RegisterInput struct {
	Username string
	Password string
	Email    string
}

// RegisterResult is the created-user payload echoed back by the backend.
type RegisterResult struct {
	ID       int64
	Username string
}

// ListProductsQuery carries catalog pagination and the optional filter set.
// Page is 0-based; the backend owns sorting and filtering semantics.
type ListProductsQuery struct {
	Page     int
	Size     int
	SortBy   string // id | name | price
	SortDir  string // ASC | DESC
	Category *int64
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
}

// ProductPage is one server-driven page of catalog results. TotalPages is
// trusted as-is; the console never recounts.
type ProductPage struct {
	Content    []domain.Product
	TotalPages int
}

// ProductInput carries a product create/update form, staged client-side until
// submission.
type ProductInput struct {
	Name          string
	Description   string
	Price         decimal.Decimal
	StockQuantity int
	CategoryID    int64
	ImageURL      string
}

// CategoryInput carries a new category form.
type CategoryInput struct {
	Name        string
	Description string
}

// OrderItemInput is one line of an order submission.
type OrderItemInput struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

// PlaceOrderInput is the order-submission payload.
type PlaceOrderInput struct {
	Items         []OrderItemInput `json:"items"`
	PaymentMethod string           `json:"paymentMethod"`
}

// OrderPage is one server-driven page of orders.
type OrderPage struct {
	Content    []domain.Order
	TotalPages int
}

// AuthAPI is the backend's authentication surface.
type AuthAPI interface {
	Login(ctx context.Context, username, password string) (*LoginResult, error)
	Register(ctx context.Context, in RegisterInput) (*RegisterResult, error)
}

// CatalogAPI is the backend's product and category surface. Every call
// attaches the session's bearer token.
type CatalogAPI interface {
	ListProducts(ctx context.Context, token string, q ListProductsQuery) (*ProductPage, error)
	GetProduct(ctx context.Context, token string, id int64) (*domain.Product, error)
	CreateProduct(ctx context.Context, token string, in ProductInput) (*domain.Product, error)
	UpdateProduct(ctx context.Context, token string, id int64, in ProductInput) (*domain.Product, error)
	DeleteProduct(ctx context.Context, token string, id int64) error
	ListCategories(ctx context.Context, token string) ([]domain.Category, error)
	CreateCategory(ctx context.Context, token string, in CategoryInput) (*domain.Category, error)
}

// OrderAPI is the backend's order surface.
type OrderAPI interface {
	PlaceOrder(ctx context.Context, token string, in PlaceOrderInput) (*domain.Order, error)
	MyOrders(ctx context.Context, token string) ([]domain.Order, error)
	GetOrder(ctx context.Context, token string, id int64) (*domain.Order, error)
	ListOrders(ctx context.Context, token string, page, size int) (*OrderPage, error)
}

// InventoryAPI is the backend's stock surface.
type InventoryAPI interface {
	LowStock(ctx context.Context, token string) ([]domain.Product, error)
	UpdateStock(ctx context.Context, token string, productID int64, stockQuantity int) (*domain.Product, error)
}

// BackendPinger reports whether the commerce backend answers at all, for the
// readiness probe.
type BackendPinger interface {
	Ping(ctx context.Context) error
}
