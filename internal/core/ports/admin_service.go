package ports

import (
	"context"

	"github.com/marketbay/storefront/internal/core/domain"
)

// InventoryItem pairs a server-owned product with the locally staged stock
// draft, when one exists. Draft is nil until StageStock is called and again
// after a successful commit; it never overwrites the server value in place.
type InventoryItem struct {
	Product domain.Product `json:"product"`
	Draft   *int           `json:"draft,omitempty"`
}

// InventoryView is the admin inventory screen: all products with drafts
// merged in, plus the backend's low-stock list.
type InventoryView struct {
	Items    []InventoryItem  `json:"items"`
	LowStock []domain.Product `json:"lowStock"`
}

// DashboardView is the admin landing screen.
type DashboardView struct {
	LowStockCount  int               `json:"lowStockCount"`
	RecentOrders   []domain.Order    `json:"recentOrders"`
	RecentActivity []domain.Activity `json:"recentActivity"`
}

// AdminService drives the management views: product/category CRUD and
// inventory staging. Every submission is a single atomic backend call.
type AdminService interface {
	CreateProduct(ctx context.Context, session *domain.Session, in ProductInput) (*domain.Product, error)
	UpdateProduct(ctx context.Context, session *domain.Session, id int64, in ProductInput) (*domain.Product, error)
	// DeleteProduct fails with domain.ErrConfirmationRequired unless
	// confirmed is true; the backend call only fires after confirmation.
	DeleteProduct(ctx context.Context, session *domain.Session, id int64, confirmed bool) error
	CreateCategory(ctx context.Context, session *domain.Session, in CategoryInput) (*domain.Category, error)

	// StageStock records a draft stock value for a product without touching
	// the backend. Negative values fail with domain.ErrNegativeStock.
	StageStock(sid string, productID int64, quantity int) error
	// CommitStock submits the staged draft for productID and clears it only
	// on success. Missing drafts fail with domain.ErrNoStagedStock.
	CommitStock(ctx context.Context, session *domain.Session, sid string, productID int64) (*domain.Product, error)
	// Inventory renders the inventory screen for sid, drafts included.
	Inventory(ctx context.Context, session *domain.Session, sid string) (*InventoryView, error)

	Dashboard(ctx context.Context, session *domain.Session) (*DashboardView, error)
}
