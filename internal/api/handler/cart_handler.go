package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/marketbay/storefront/internal/api/middleware"
	"github.com/marketbay/storefront/internal/core/domain"
	"github.com/marketbay/storefront/internal/core/ports"
)

// CartHandler serves the cart panel. Every mutation answers with the full
// cart view so the client never has to reconcile partial updates.
type CartHandler struct {
	carts ports.CartService
}

func NewCartHandler(carts ports.CartService) *CartHandler {
	return &CartHandler{carts: carts}
}

// View handles GET /cart.
func (h *CartHandler) View(c echo.Context) error {
	return c.JSON(http.StatusOK, h.carts.View(middleware.SID(c)))
}

// AddItem handles POST /cart/items. Adding a product already in the cart
// bumps its quantity; either way the panel opens.
func (h *CartHandler) AddItem(c echo.Context) error {
	var req addItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	view, err := h.carts.Add(c.Request().Context(), middleware.CurrentSession(c), middleware.SID(c), req.ProductID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, view)
}

// SetQuantity handles PUT /cart/items/:id. A quantity below 1 removes the
// line.
func (h *CartHandler) SetQuantity(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req quantityRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	return c.JSON(http.StatusOK, h.carts.SetQuantity(middleware.SID(c), id, req.Quantity))
}

// RemoveItem handles DELETE /cart/items/:id. Removing an absent line is a
// no-op.
func (h *CartHandler) RemoveItem(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, h.carts.Remove(middleware.SID(c), id))
}

// SetPanel handles PUT /cart/panel, toggling the side panel.
func (h *CartHandler) SetPanel(c echo.Context) error {
	var req panelRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	return c.JSON(http.StatusOK, h.carts.SetPanel(middleware.SID(c), req.Visible))
}

// Checkout handles POST /cart/checkout. The backend owns stock validation
// and final pricing; on success the cart is already cleared.
func (h *CartHandler) Checkout(c echo.Context) error {
	var req checkoutRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}
	if req.PaymentMethod == "" {
		req.PaymentMethod = domain.DefaultPaymentMethod
	}

	result, err := h.carts.Checkout(c.Request().Context(), middleware.CurrentSession(c), middleware.SID(c), req.PaymentMethod)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, result)
}
