package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/marketbay/storefront/internal/api/middleware"
	"github.com/marketbay/storefront/internal/core/ports"
)

// AdminHandler serves the management views: product and category CRUD,
// inventory staging, the dashboard and the activity feed.
type AdminHandler struct {
	admin    ports.AdminService
	activity ports.ActivityService
}

func NewAdminHandler(admin ports.AdminService, activity ports.ActivityService) *AdminHandler {
	return &AdminHandler{admin: admin, activity: activity}
}

// CreateProduct handles POST /admin/products.
func (h *AdminHandler) CreateProduct(c echo.Context) error {
	in, err := bindProductInput(c)
	if err != nil {
		return err
	}
	product, err := h.admin.CreateProduct(c.Request().Context(), middleware.CurrentSession(c), in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, product)
}

// UpdateProduct handles PUT /admin/products/:id.
func (h *AdminHandler) UpdateProduct(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	in, err := bindProductInput(c)
	if err != nil {
		return err
	}
	product, err := h.admin.UpdateProduct(c.Request().Context(), middleware.CurrentSession(c), id, in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

// DeleteProduct handles DELETE /admin/products/:id. The call only reaches the
// backend when ?confirm=true is present; anything else answers 422, which is
// how the two-step confirmation dialog is enforced server-side.
func (h *AdminHandler) DeleteProduct(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	confirmed := c.QueryParam("confirm") == "true"
	if err := h.admin.DeleteProduct(c.Request().Context(), middleware.CurrentSession(c), id, confirmed); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// CreateCategory handles POST /admin/categories.
func (h *AdminHandler) CreateCategory(c echo.Context) error {
	var req categoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}
	category, err := h.admin.CreateCategory(c.Request().Context(), middleware.CurrentSession(c), ports.CategoryInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, category)
}

// StageStock handles PUT /admin/inventory/:id/draft. Drafts live client-side
// only; nothing reaches the backend until commit.
func (h *AdminHandler) StageStock(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req stageStockRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := h.admin.StageStock(middleware.SID(c), id, req.Quantity); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// CommitStock handles POST /admin/inventory/:id/commit, submitting the staged
// draft. The draft survives a failed commit so the admin can retry.
func (h *AdminHandler) CommitStock(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	product, err := h.admin.CommitStock(c.Request().Context(), middleware.CurrentSession(c), middleware.SID(c), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

// Inventory handles GET /admin/inventory.
func (h *AdminHandler) Inventory(c echo.Context) error {
	view, err := h.admin.Inventory(c.Request().Context(), middleware.CurrentSession(c), middleware.SID(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, view)
}

// Dashboard handles GET /admin/dashboard.
func (h *AdminHandler) Dashboard(c echo.Context) error {
	view, err := h.admin.Dashboard(c.Request().Context(), middleware.CurrentSession(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, view)
}

// Activity handles GET /admin/activity.
func (h *AdminHandler) Activity(c echo.Context) error {
	entries, err := h.activity.Recent(c.Request().Context(), intParam(c, "limit", 20))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, entries)
}

// bindProductInput binds and validates a product form, parsing the price into
// an exact decimal.
func bindProductInput(c echo.Context) (ports.ProductInput, error) {
	var req productRequest
	if err := c.Bind(&req); err != nil {
		return ports.ProductInput{}, echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return ports.ProductInput{}, echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}
	price, err := decimal.NewFromString(req.Price)
	if err != nil || price.IsNegative() {
		return ports.ProductInput{}, echo.NewHTTPError(http.StatusUnprocessableEntity, "price must be a non-negative decimal")
	}
	return ports.ProductInput{
		Name:          req.Name,
		Description:   req.Description,
		Price:         price,
		StockQuantity: req.StockQuantity,
		CategoryID:    req.CategoryID,
		ImageURL:      req.ImageURL,
	}, nil
}
