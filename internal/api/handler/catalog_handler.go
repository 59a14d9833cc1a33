package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/marketbay/storefront/internal/api/middleware"
	"github.com/marketbay/storefront/internal/core/ports"
)

// CatalogHandler serves the product listing, the product detail view and the
// category list.
type CatalogHandler struct {
	catalog ports.CatalogService
}

func NewCatalogHandler(catalog ports.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// Browse handles GET /products. Filters and the page index arrive as query
// parameters; a filter change since the visitor's previous request resets the
// page to 0 service-side.
func (h *CatalogHandler) Browse(c echo.Context) error {
	sortBy := c.QueryParam("sortBy")
	switch sortBy {
	case "", "id", "name", "price":
	default:
		return echo.NewHTTPError(http.StatusBadRequest, "sortBy must be one of: id, name, price")
	}
	sortDir := c.QueryParam("sortDir")
	switch sortDir {
	case "", "ASC", "DESC":
	default:
		return echo.NewHTTPError(http.StatusBadRequest, "sortDir must be ASC or DESC")
	}

	q := ports.BrowseQuery{
		Page: intParam(c, "page", 0),
		Filters: ports.ProductFilters{
			SortBy:  sortBy,
			SortDir: sortDir,
		},
	}

	if raw := c.QueryParam("category"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid category")
		}
		q.Filters.Category = &id
	}
	if raw := c.QueryParam("minPrice"); raw != "" {
		min, err := decimal.NewFromString(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid minPrice")
		}
		q.Filters.MinPrice = &min
	}
	if raw := c.QueryParam("maxPrice"); raw != "" {
		max, err := decimal.NewFromString(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid maxPrice")
		}
		q.Filters.MaxPrice = &max
	}

	page, err := h.catalog.Browse(c.Request().Context(), middleware.CurrentSession(c), middleware.SID(c), q)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, page)
}

// Get handles GET /products/:id.
func (h *CatalogHandler) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	product, err := h.catalog.Get(c.Request().Context(), middleware.CurrentSession(c), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}

// Categories handles GET /categories.
func (h *CatalogHandler) Categories(c echo.Context) error {
	categories, err := h.catalog.Categories(c.Request().Context(), middleware.CurrentSession(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, categories)
}

// intParam reads an integer query parameter, falling back when absent or
// malformed.
func intParam(c echo.Context, name string, fallback int) int {
	raw := c.QueryParam(name)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}

// pathID parses the :id path parameter.
func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}
