package handler

import (
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
)

func TestBrowseParsesFilters(t *testing.T) {
	catalog := &stubCatalogService{}
	h := NewCatalogHandler(catalog)

	c, rec := newTestContext(http.MethodGet,
		"/products?page=2&category=3&minPrice=10.00&maxPrice=99.99&sortBy=price&sortDir=DESC",
		"", userSession())
	if err := h.Browse(c); err != nil {
		t.Fatalf("Browse: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	q := catalog.lastQuery
	if q.Page != 2 {
		t.Errorf("page = %d, want 2", q.Page)
	}
	if q.Filters.Category == nil || *q.Filters.Category != 3 {
		t.Errorf("category = %v, want 3", q.Filters.Category)
	}
	if q.Filters.MinPrice == nil || q.Filters.MinPrice.String() != "10" {
		t.Errorf("minPrice = %v", q.Filters.MinPrice)
	}
	if q.Filters.MaxPrice == nil || q.Filters.MaxPrice.String() != "99.99" {
		t.Errorf("maxPrice = %v", q.Filters.MaxPrice)
	}
	if q.Filters.SortBy != "price" || q.Filters.SortDir != "DESC" {
		t.Errorf("sort = %s/%s", q.Filters.SortBy, q.Filters.SortDir)
	}
}

func TestBrowseRejectsMalformedPrice(t *testing.T) {
	h := NewCatalogHandler(&stubCatalogService{})

	c, _ := newTestContext(http.MethodGet, "/products?minPrice=cheap", "", userSession())
	err := h.Browse(c)

	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("err = %v, want 400 HTTPError", err)
	}
}

func TestBrowseRejectsUnknownSort(t *testing.T) {
	h := NewCatalogHandler(&stubCatalogService{})

	for _, target := range []string{
		"/products?sortBy=bogus",
		"/products?sortDir=sideways",
	} {
		c, _ := newTestContext(http.MethodGet, target, "", userSession())
		err := h.Browse(c)

		var he *echo.HTTPError
		if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
			t.Errorf("%s: err = %v, want 400 HTTPError", target, err)
		}
	}
}

func TestBrowseIgnoresMalformedPage(t *testing.T) {
	catalog := &stubCatalogService{}
	h := NewCatalogHandler(catalog)

	c, _ := newTestContext(http.MethodGet, "/products?page=two", "", userSession())
	if err := h.Browse(c); err != nil {
		t.Fatalf("Browse: %v", err)
	}
	if catalog.lastQuery.Page != 0 {
		t.Errorf("page = %d, want fallback 0", catalog.lastQuery.Page)
	}
}
