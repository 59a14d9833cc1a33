package service

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/marketbay/storefront/internal/core/domain"
	"github.com/marketbay/storefront/internal/core/ports"
)

// CatalogService drives the paginated product listing. It remembers each
// visitor's last filter set so that any filter change resets the page index
// to 0, the way the original listing did. Pagination itself is server-driven:
// totalPages comes from the backend and is trusted as-is.
type CatalogService struct {
	catalog  ports.CatalogAPI
	pageSize int
	log      zerolog.Logger

	mu        sync.Mutex
	lastQuery map[string]ports.ProductFilters
}

func NewCatalogService(catalog ports.CatalogAPI, pageSize int, log zerolog.Logger) *CatalogService {
	if pageSize <= 0 {
		pageSize = 12
	}
	return &CatalogService{
		catalog:   catalog,
		pageSize:  pageSize,
		log:       log,
		lastQuery: make(map[string]ports.ProductFilters),
	}
}

// Browse fetches one page of products. The requested page is forced back to 0
// whenever the filter set differs from the visitor's previous one.
func (s *CatalogService) Browse(ctx context.Context, session *domain.Session, sid string, q ports.BrowseQuery) (*ports.BrowsePage, error) {
	f := q.Filters
	if f.SortBy == "" {
		f.SortBy = "id"
	}
	if f.SortDir == "" {
		f.SortDir = "ASC"
	}

	page := q.Page
	if page < 0 {
		page = 0
	}

	s.mu.Lock()
	if last, seen := s.lastQuery[sid]; seen && !last.Equal(f) {
		page = 0
	}
	s.lastQuery[sid] = f
	s.mu.Unlock()

	result, err := s.catalog.ListProducts(ctx, session.Token, ports.ListProductsQuery{
		Page:     page,
		Size:     s.pageSize,
		SortBy:   f.SortBy,
		SortDir:  f.SortDir,
		Category: f.Category,
		MinPrice: f.MinPrice,
		MaxPrice: f.MaxPrice,
	})
	if err != nil {
		return nil, err
	}

	return &ports.BrowsePage{
		Products:    result.Content,
		Page:        page,
		TotalPages:  result.TotalPages,
		HasPrevious: page > 0,
		HasNext:     page < result.TotalPages-1,
	}, nil
}

// Get fetches one product by id for the detail view.
func (s *CatalogService) Get(ctx context.Context, session *domain.Session, id int64) (*domain.Product, error) {
	return s.catalog.GetProduct(ctx, session.Token, id)
}

// Categories lists the catalog's categories.
func (s *CatalogService) Categories(ctx context.Context, session *domain.Session) ([]domain.Category, error) {
	return s.catalog.ListCategories(ctx, session.Token)
}

// Forget drops the remembered filter state for sid (used on logout).
func (s *CatalogService) Forget(sid string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.lastQuery, sid)
}
