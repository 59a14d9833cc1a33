package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/marketbay/storefront/internal/core/domain"
	"github.com/marketbay/storefront/internal/core/ports"
)

// adminListSize is the page size used when the management views need the
// whole catalog rather than a browse page.
const adminListSize = 100

type stockDraftKey struct {
	sid       string
	productID int64
}

// AdminService drives the management views. Product and category submissions
// are single atomic backend calls; the only locally mutable state is the
// staged inventory drafts, kept strictly apart from the server-owned values.
type AdminService struct {
	catalog   ports.CatalogAPI
	inventory ports.InventoryAPI
	orders    ports.OrderAPI
	activity  ports.ActivityService
	recorder  ports.ActivityRecorder
	log       zerolog.Logger

	mu     sync.Mutex
	drafts map[stockDraftKey]int
}

func NewAdminService(
	catalog ports.CatalogAPI,
	inventory ports.InventoryAPI,
	orders ports.OrderAPI,
	activity ports.ActivityService,
	recorder ports.ActivityRecorder,
	log zerolog.Logger,
) *AdminService {
	return &AdminService{
		catalog:   catalog,
		inventory: inventory,
		orders:    orders,
		activity:  activity,
		recorder:  recorder,
		log:       log,
		drafts:    make(map[stockDraftKey]int),
	}
}

func (s *AdminService) CreateProduct(ctx context.Context, session *domain.Session, in ports.ProductInput) (*domain.Product, error) {
	product, err := s.catalog.CreateProduct(ctx, session.Token, in)
	if err != nil {
		return nil, err
	}
	s.record(domain.ActivityProductCreated, session, fmt.Sprintf("product %d (%s)", product.ID, product.Name))
	return product, nil
}

func (s *AdminService) UpdateProduct(ctx context.Context, session *domain.Session, id int64, in ports.ProductInput) (*domain.Product, error) {
	product, err := s.catalog.UpdateProduct(ctx, session.Token, id, in)
	if err != nil {
		return nil, err
	}
	s.record(domain.ActivityProductUpdated, session, fmt.Sprintf("product %d (%s)", product.ID, product.Name))
	return product, nil
}

// DeleteProduct requires the explicit confirmation step before the backend
// call fires.
func (s *AdminService) DeleteProduct(ctx context.Context, session *domain.Session, id int64, confirmed bool) error {
	if !confirmed {
		return domain.ErrConfirmationRequired
	}
	if err := s.catalog.DeleteProduct(ctx, session.Token, id); err != nil {
		return err
	}
	s.record(domain.ActivityProductDeleted, session, fmt.Sprintf("product %d", id))
	return nil
}

func (s *AdminService) CreateCategory(ctx context.Context, session *domain.Session, in ports.CategoryInput) (*domain.Category, error) {
	return s.catalog.CreateCategory(ctx, session.Token, in)
}

// StageStock stores a draft stock value locally. The server-owned quantity is
// untouched until CommitStock.
func (s *AdminService) StageStock(sid string, productID int64, quantity int) error {
	if quantity < 0 {
		return domain.ErrNegativeStock
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.drafts[stockDraftKey{sid: sid, productID: productID}] = quantity
	return nil
}

// CommitStock submits the staged draft as one atomic backend call and clears
// the draft only when the backend accepts it.
func (s *AdminService) CommitStock(ctx context.Context, session *domain.Session, sid string, productID int64) (*domain.Product, error) {
	key := stockDraftKey{sid: sid, productID: productID}

	s.mu.Lock()
	quantity, ok := s.drafts[key]
	s.mu.Unlock()
	if !ok {
		return nil, domain.ErrNoStagedStock
	}

	product, err := s.inventory.UpdateStock(ctx, session.Token, productID, quantity)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	delete(s.drafts, key)
	s.mu.Unlock()

	s.record(domain.ActivityStockUpdated, session, fmt.Sprintf("product %d -> %d units", productID, quantity))
	return product, nil
}

// Inventory merges the product list, this admin's staged drafts, and the
// backend's low-stock report into one view.
func (s *AdminService) Inventory(ctx context.Context, session *domain.Session, sid string) (*ports.InventoryView, error) {
	page, err := s.catalog.ListProducts(ctx, session.Token, ports.ListProductsQuery{
		Page: 0, Size: adminListSize, SortBy: "id", SortDir: "ASC",
	})
	if err != nil {
		return nil, err
	}

	lowStock, err := s.inventory.LowStock(ctx, session.Token)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	items := make([]ports.InventoryItem, 0, len(page.Content))
	for _, p := range page.Content {
		item := ports.InventoryItem{Product: p}
		if draft, ok := s.drafts[stockDraftKey{sid: sid, productID: p.ID}]; ok {
			d := draft
			item.Draft = &d
		}
		items = append(items, item)
	}
	s.mu.Unlock()

	return &ports.InventoryView{Items: items, LowStock: lowStock}, nil
}

// Dashboard assembles the admin landing view: low-stock count, the newest
// orders, and the recent activity feed. A failing activity store degrades to
// an empty feed rather than failing the whole view.
func (s *AdminService) Dashboard(ctx context.Context, session *domain.Session) (*ports.DashboardView, error) {
	lowStock, err := s.inventory.LowStock(ctx, session.Token)
	if err != nil {
		return nil, err
	}

	orders, err := s.orders.ListOrders(ctx, session.Token, 0, 5)
	if err != nil {
		return nil, err
	}

	feed, err := s.activity.Recent(ctx, 20)
	if err != nil {
		s.log.Warn().Err(err).Msg("activity feed unavailable")
		feed = nil
	}

	return &ports.DashboardView{
		LowStockCount:  len(lowStock),
		RecentOrders:   orders.Content,
		RecentActivity: feed,
	}, nil
}

func (s *AdminService) record(kind domain.ActivityKind, session *domain.Session, detail string) {
	s.recorder.Record(domain.Activity{
		Kind:      kind,
		Username:  session.Username,
		Detail:    detail,
		Timestamp: time.Now().UTC(),
	})
}
