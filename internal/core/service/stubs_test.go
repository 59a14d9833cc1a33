package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/marketbay/storefront/internal/core/domain"
	"github.com/marketbay/storefront/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory backend stub (implements AuthAPI, CatalogAPI, OrderAPI,
// InventoryAPI the way the remote commerce API would answer)
// ---------------------------------------------------------------------------

type stubBackend struct {
	mu sync.Mutex

	users    map[string]string // username -> password
	roles    map[string][]string
	products map[int64]domain.Product
	nextID   int64

	orders      []domain.Order
	placeErr    error // if set, PlaceOrder fails with this
	placeCalls  int
	listCalls   int
	lastListQ   ports.ListProductsQuery
	totalPages  int
	lowStock    []domain.Product
	updateCalls int

	lastOrderPage int
	lastOrderSize int
}

func newStubBackend() *stubBackend {
	return &stubBackend{
		users:      map[string]string{"alice": "secret", "root": "secret"},
		roles:      map[string][]string{"alice": {"ROLE_USER"}, "root": {"ROLE_USER", "ROLE_ADMIN"}},
		products:   make(map[int64]domain.Product),
		nextID:     1,
		totalPages: 1,
	}
}

func (b *stubBackend) addProduct(name, price string, stock int) domain.Product {
	b.mu.Lock()
	defer b.mu.Unlock()
	p := domain.Product{
		ID:            b.nextID,
		Name:          name,
		Price:         decimal.RequireFromString(price),
		StockQuantity: stock,
	}
	b.products[p.ID] = p
	b.nextID++
	return p
}

func (b *stubBackend) Login(_ context.Context, username, password string) (*ports.LoginResult, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if pw, ok := b.users[username]; !ok || pw != password {
		return nil, domain.ErrInvalidCredentials
	}
	return &ports.LoginResult{Token: "token-" + username, Username: username, Roles: b.roles[username]}, nil
}

func (b *stubBackend) Register(_ context.Context, in ports.RegisterInput) (*ports.RegisterResult, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.users[in.Username] = in.Password
	b.roles[in.Username] = []string{"ROLE_USER"}
	return &ports.RegisterResult{ID: 99, Username: in.Username}, nil
}

func (b *stubBackend) ListProducts(_ context.Context, _ string, q ports.ListProductsQuery) (*ports.ProductPage, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.listCalls++
	b.lastListQ = q
	out := make([]domain.Product, 0, len(b.products))
	for _, p := range b.products {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return &ports.ProductPage{Content: out, TotalPages: b.totalPages}, nil
}

func (b *stubBackend) GetProduct(_ context.Context, _ string, id int64) (*domain.Product, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	p, ok := b.products[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := p
	return &clone, nil
}

func (b *stubBackend) CreateProduct(_ context.Context, _ string, in ports.ProductInput) (*domain.Product, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	p := domain.Product{
		ID: b.nextID, Name: in.Name, Description: in.Description,
		Price: in.Price, StockQuantity: in.StockQuantity, CategoryID: in.CategoryID,
	}
	b.products[p.ID] = p
	b.nextID++
	clone := p
	return &clone, nil
}

func (b *stubBackend) UpdateProduct(_ context.Context, _ string, id int64, in ports.ProductInput) (*domain.Product, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	p, ok := b.products[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	p.Name, p.Description, p.Price, p.StockQuantity = in.Name, in.Description, in.Price, in.StockQuantity
	b.products[id] = p
	clone := p
	return &clone, nil
}

func (b *stubBackend) DeleteProduct(_ context.Context, _ string, id int64) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.products[id]; !ok {
		return domain.ErrNotFound
	}
	delete(b.products, id)
	return nil
}

func (b *stubBackend) ListCategories(_ context.Context, _ string) ([]domain.Category, error) {
	return []domain.Category{{ID: 1, Name: "Books"}}, nil
}

func (b *stubBackend) CreateCategory(_ context.Context, _ string, in ports.CategoryInput) (*domain.Category, error) {
	return &domain.Category{ID: 2, Name: in.Name, Description: in.Description}, nil
}

func (b *stubBackend) PlaceOrder(_ context.Context, _ string, in ports.PlaceOrderInput) (*domain.Order, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.placeCalls++
	if b.placeErr != nil {
		return nil, b.placeErr
	}
	total := decimal.Zero
	lines := make([]domain.OrderLine, 0, len(in.Items))
	for _, it := range in.Items {
		p := b.products[it.ProductID]
		lines = append(lines, domain.OrderLine{
			ProductID: it.ProductID, ProductName: p.Name, Quantity: it.Quantity, Price: p.Price,
		})
		total = total.Add(p.Price.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	order := domain.Order{
		ID:            int64(len(b.orders) + 1),
		Lines:         lines,
		TotalAmount:   total.Round(2),
		Status:        domain.OrderPending,
		PaymentStatus: domain.PaymentPending,
		PaymentMethod: in.PaymentMethod,
		CreatedAt:     time.Now().UTC(),
	}
	b.orders = append(b.orders, order)
	return &order, nil
}

func (b *stubBackend) MyOrders(_ context.Context, _ string) ([]domain.Order, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]domain.Order, len(b.orders))
	copy(out, b.orders)
	return out, nil
}

func (b *stubBackend) GetOrder(_ context.Context, _ string, id int64) (*domain.Order, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, o := range b.orders {
		if o.ID == id {
			clone := o
			return &clone, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (b *stubBackend) ListOrders(_ context.Context, _ string, page, size int) (*ports.OrderPage, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.lastOrderPage, b.lastOrderSize = page, size
	out := make([]domain.Order, len(b.orders))
	copy(out, b.orders)
	return &ports.OrderPage{Content: out, TotalPages: 1}, nil
}

func (b *stubBackend) LowStock(_ context.Context, _ string) ([]domain.Product, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]domain.Product, len(b.lowStock))
	copy(out, b.lowStock)
	return out, nil
}

func (b *stubBackend) UpdateStock(_ context.Context, _ string, productID int64, stockQuantity int) (*domain.Product, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.updateCalls++
	p, ok := b.products[productID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	p.StockQuantity = stockQuantity
	b.products[productID] = p
	clone := p
	return &clone, nil
}

// ---------------------------------------------------------------------------
// Session repository stub
// ---------------------------------------------------------------------------

type stubSessionRepo struct {
	mu       sync.Mutex
	sessions map[string]*domain.Session
	loadErr  error // if set, Load fails (store outage)
	saveErr  error
}

func newStubSessionRepo() *stubSessionRepo {
	return &stubSessionRepo{sessions: make(map[string]*domain.Session)}
}

func (r *stubSessionRepo) Save(_ context.Context, sid string, s *domain.Session) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	clone := *s
	r.sessions[sid] = &clone
	return nil
}

func (r *stubSessionRepo) Load(_ context.Context, sid string) (*domain.Session, error) {
	if r.loadErr != nil {
		return nil, r.loadErr
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.sessions[sid]
	if !ok {
		return nil, nil
	}
	clone := *s
	return &clone, nil
}

func (r *stubSessionRepo) Delete(_ context.Context, sid string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, sid)
	return nil
}

// ---------------------------------------------------------------------------
// Activity stubs
// ---------------------------------------------------------------------------

// captureRecorder records synchronously so tests can assert on entries.
type captureRecorder struct {
	mu      sync.Mutex
	entries []domain.Activity
}

func (r *captureRecorder) Record(a domain.Activity) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, a)
}

func (r *captureRecorder) kinds() []domain.ActivityKind {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.ActivityKind, 0, len(r.entries))
	for _, e := range r.entries {
		out = append(out, e.Kind)
	}
	return out
}

type stubActivityRepo struct {
	mu      sync.Mutex
	entries []domain.Activity
	err     error
}

func (r *stubActivityRepo) Append(_ context.Context, a domain.Activity) error {
	if r.err != nil {
		return r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append([]domain.Activity{a}, r.entries...)
	return nil
}

func (r *stubActivityRepo) Recent(_ context.Context, limit int) ([]domain.Activity, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if limit > len(r.entries) {
		limit = len(r.entries)
	}
	out := make([]domain.Activity, limit)
	copy(out, r.entries[:limit])
	return out, nil
}
