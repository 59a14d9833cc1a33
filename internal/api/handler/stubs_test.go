package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/marketbay/storefront/internal/api/middleware"
	"github.com/marketbay/storefront/internal/core/domain"
	"github.com/marketbay/storefront/internal/core/ports"
)

// newTestContext builds an echo context with the validator installed and the
// session middleware's keys pre-populated, the way a gated request arrives.
func newTestContext(method, target, body string, session *domain.Session) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}

	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(middleware.KeySID, "sid-1")
	c.Set(middleware.KeySession, session)
	state := domain.StateAnonymous
	if session != nil {
		state = domain.StateAuthenticated
	}
	c.Set(middleware.KeySessionState, state)
	return c, rec
}

func userSession() *domain.Session {
	return &domain.Session{
		Username: "alice",
		Roles:    []domain.Role{domain.RoleUser},
		Token:    "opaque-token",
	}
}

func adminSession() *domain.Session {
	return &domain.Session{
		Username: "root",
		Roles:    []domain.Role{domain.RoleUser, domain.RoleAdmin},
		Token:    "opaque-token",
	}
}

// ---- session service stub ----

type stubSessionService struct {
	session    *domain.Session
	loginErr   error
	loggedOut  []string
	registered []ports.RegisterInput
}

func (s *stubSessionService) Login(ctx context.Context, sid, username, password string) (*domain.Session, error) {
	if s.loginErr != nil {
		return nil, s.loginErr
	}
	return s.session, nil
}

func (s *stubSessionService) Register(ctx context.Context, in ports.RegisterInput) (*ports.RegisterResult, error) {
	s.registered = append(s.registered, in)
	return &ports.RegisterResult{ID: 1, Username: in.Username}, nil
}

func (s *stubSessionService) Logout(ctx context.Context, sid string) error {
	s.loggedOut = append(s.loggedOut, sid)
	return nil
}

func (s *stubSessionService) Resolve(ctx context.Context, sid string) (domain.SessionState, *domain.Session, error) {
	if s.session == nil {
		return domain.StateAnonymous, nil, nil
	}
	return domain.StateAuthenticated, s.session, nil
}

// ---- cart service stub ----

type stubCartService struct {
	view          *ports.CartView
	addErr        error
	checkoutErr   error
	dropped       []string
	addedProducts []int64
	paymentMethod string
}

func (s *stubCartService) cartView() *ports.CartView {
	if s.view != nil {
		return s.view
	}
	return &ports.CartView{Lines: []domain.CartLine{}, Total: "0.00"}
}

func (s *stubCartService) View(sid string) *ports.CartView { return s.cartView() }

func (s *stubCartService) Add(ctx context.Context, session *domain.Session, sid string, productID int64) (*ports.CartView, error) {
	if s.addErr != nil {
		return nil, s.addErr
	}
	s.addedProducts = append(s.addedProducts, productID)
	return s.cartView(), nil
}

func (s *stubCartService) SetQuantity(sid string, productID int64, quantity int) *ports.CartView {
	return s.cartView()
}

func (s *stubCartService) Remove(sid string, productID int64) *ports.CartView { return s.cartView() }

func (s *stubCartService) SetPanel(sid string, visible bool) *ports.CartView { return s.cartView() }

func (s *stubCartService) Checkout(ctx context.Context, session *domain.Session, sid, paymentMethod string) (*ports.CheckoutResult, error) {
	if s.checkoutErr != nil {
		return nil, s.checkoutErr
	}
	s.paymentMethod = paymentMethod
	return &ports.CheckoutResult{Order: &domain.Order{ID: 42}}, nil
}

func (s *stubCartService) Drop(sid string) { s.dropped = append(s.dropped, sid) }

// ---- catalog service stub ----

type stubCatalogService struct {
	page      *ports.BrowsePage
	product   *domain.Product
	forgotten []string
	lastQuery ports.BrowseQuery
}

func (s *stubCatalogService) Browse(ctx context.Context, session *domain.Session, sid string, q ports.BrowseQuery) (*ports.BrowsePage, error) {
	s.lastQuery = q
	if s.page != nil {
		return s.page, nil
	}
	return &ports.BrowsePage{Products: []domain.Product{}}, nil
}

func (s *stubCatalogService) Get(ctx context.Context, session *domain.Session, id int64) (*domain.Product, error) {
	if s.product == nil {
		return nil, domain.ErrNotFound
	}
	return s.product, nil
}

func (s *stubCatalogService) Categories(ctx context.Context, session *domain.Session) ([]domain.Category, error) {
	return []domain.Category{}, nil
}

func (s *stubCatalogService) Forget(sid string) { s.forgotten = append(s.forgotten, sid) }

// ---- admin service stub ----

type stubAdminService struct {
	deleteCalls []struct {
		id        int64
		confirmed bool
	}
	staged map[int64]int
}

func (s *stubAdminService) CreateProduct(ctx context.Context, session *domain.Session, in ports.ProductInput) (*domain.Product, error) {
	return &domain.Product{ID: 1, Name: in.Name, Price: in.Price}, nil
}

func (s *stubAdminService) UpdateProduct(ctx context.Context, session *domain.Session, id int64, in ports.ProductInput) (*domain.Product, error) {
	return &domain.Product{ID: id, Name: in.Name, Price: in.Price}, nil
}

func (s *stubAdminService) DeleteProduct(ctx context.Context, session *domain.Session, id int64, confirmed bool) error {
	s.deleteCalls = append(s.deleteCalls, struct {
		id        int64
		confirmed bool
	}{id, confirmed})
	if !confirmed {
		return domain.ErrConfirmationRequired
	}
	return nil
}

func (s *stubAdminService) CreateCategory(ctx context.Context, session *domain.Session, in ports.CategoryInput) (*domain.Category, error) {
	return &domain.Category{ID: 1, Name: in.Name}, nil
}

func (s *stubAdminService) StageStock(sid string, productID int64, quantity int) error {
	if quantity < 0 {
		return domain.ErrNegativeStock
	}
	if s.staged == nil {
		s.staged = make(map[int64]int)
	}
	s.staged[productID] = quantity
	return nil
}

func (s *stubAdminService) CommitStock(ctx context.Context, session *domain.Session, sid string, productID int64) (*domain.Product, error) {
	qty, ok := s.staged[productID]
	if !ok {
		return nil, domain.ErrNoStagedStock
	}
	return &domain.Product{ID: productID, StockQuantity: qty}, nil
}

func (s *stubAdminService) Inventory(ctx context.Context, session *domain.Session, sid string) (*ports.InventoryView, error) {
	return &ports.InventoryView{}, nil
}

func (s *stubAdminService) Dashboard(ctx context.Context, session *domain.Session) (*ports.DashboardView, error) {
	return &ports.DashboardView{}, nil
}

// ---- activity service stub ----

type stubActivityService struct {
	entries []domain.Activity
}

func (s *stubActivityService) Process(ctx context.Context, a domain.Activity) error {
	s.entries = append(s.entries, a)
	return nil
}

func (s *stubActivityService) Recent(ctx context.Context, limit int) ([]domain.Activity, error) {
	if limit < len(s.entries) {
		return s.entries[:limit], nil
	}
	return s.entries, nil
}
