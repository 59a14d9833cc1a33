package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/marketbay/storefront/internal/api/middleware"
	"github.com/marketbay/storefront/internal/core/ports"
)

// OrderHandler serves the read-only order history views.
type OrderHandler struct {
	orders ports.OrderService
}

func NewOrderHandler(orders ports.OrderService) *OrderHandler {
	return &OrderHandler{orders: orders}
}

// Mine handles GET /orders, the signed-in user's own history.
func (h *OrderHandler) Mine(c echo.Context) error {
	orders, err := h.orders.MyOrders(c.Request().Context(), middleware.CurrentSession(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, orders)
}

// Get handles GET /orders/:id.
func (h *OrderHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	order, err := h.orders.Get(c.Request().Context(), middleware.CurrentSession(c), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, order)
}

// All handles GET /admin/orders, every order in the system, paginated.
func (h *OrderHandler) All(c echo.Context) error {
	page, err := h.orders.All(c.Request().Context(), middleware.CurrentSession(c),
		intParam(c, "page", 0), intParam(c, "size", 10))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, page)
}
