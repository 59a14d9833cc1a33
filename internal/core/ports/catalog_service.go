package ports

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/marketbay/storefront/internal/core/domain"
)

// ProductFilters is the browse filter set. A change in any field resets the
// page index to 0.
type ProductFilters struct {
	Category *int64
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
	SortBy   string // id | name | price
	SortDir  string // ASC | DESC
}

// Equal reports whether two filter sets select the same listing.
func (f ProductFilters) Equal(other ProductFilters) bool {
	return equalInt64Ptr(f.Category, other.Category) &&
		equalDecimalPtr(f.MinPrice, other.MinPrice) &&
		equalDecimalPtr(f.MaxPrice, other.MaxPrice) &&
		f.SortBy == other.SortBy &&
		f.SortDir == other.SortDir
}

func equalInt64Ptr(a, b *int64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func equalDecimalPtr(a, b *decimal.Decimal) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}

// BrowseQuery is one catalog browse request. Page is 0-based.
type BrowseQuery struct {
	Page    int
	Filters ProductFilters
}

// BrowsePage is the rendered product listing. HasPrevious/HasNext drive the
// pagination controls at the boundaries; TotalPages comes from the backend
// untouched.
type BrowsePage struct {
	Products    []domain.Product `json:"products"`
	Page        int              `json:"page"`
	TotalPages  int              `json:"totalPages"`
	HasPrevious bool             `json:"hasPrevious"`
	HasNext     bool             `json:"hasNext"`
}

// CatalogService drives paginated, filterable catalog browsing.
type CatalogService interface {
	Browse(ctx context.Context, session *domain.Session, sid string, q BrowseQuery) (*BrowsePage, error)
	Get(ctx context.Context, session *domain.Session, id int64) (*domain.Product, error)
	Categories(ctx context.Context, session *domain.Session) ([]domain.Category, error)
	// Forget drops the remembered browse state for sid (used on logout).
	Forget(sid string)
}
