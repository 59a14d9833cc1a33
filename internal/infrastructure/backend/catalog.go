package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/marketbay/storefront/internal/core/domain"
	"github.com/marketbay/storefront/internal/core/ports"
)

type productRequest struct {
	Name          string `json:"name"`
	Description   string `json:"description"`
	Price         string `json:"price"`
	StockQuantity int    `json:"stockQuantity"`
	CategoryID    int64  `json:"categoryId"`
	ImageURL      string `json:"imageUrl,omitempty"`
}

type categoryRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type productPageResponse struct {
	Content    []domain.Product `json:"content"`
	TotalPages int              `json:"totalPages"`
}

func toProductRequest(in ports.ProductInput) productRequest {
	return productRequest{
		Name:          in.Name,
		Description:   in.Description,
		Price:         in.Price.String(),
		StockQuantity: in.StockQuantity,
		CategoryID:    in.CategoryID,
		ImageURL:      in.ImageURL,
	}
}

// ListProducts fetches one page of catalog results. Pagination, sorting and
// filtering are all resolved server-side; the query is forwarded as-is.
func (c *Client) ListProducts(ctx context.Context, token string, q ports.ListProductsQuery) (*ports.ProductPage, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(q.Page))
	query.Set("size", strconv.Itoa(q.Size))
	if q.SortBy != "" {
		query.Set("sortBy", q.SortBy)
	}
	if q.SortDir != "" {
		query.Set("sortDir", q.SortDir)
	}
	if q.Category != nil {
		query.Set("categoryId", strconv.FormatInt(*q.Category, 10))
	}
	if q.MinPrice != nil {
		query.Set("minPrice", q.MinPrice.String())
	}
	if q.MaxPrice != nil {
		query.Set("maxPrice", q.MaxPrice.String())
	}

	var out productPageResponse
	if err := c.do(ctx, "list_products", http.MethodGet, "/products", query, token, nil, &out); err != nil {
		return nil, err
	}
	return &ports.ProductPage{Content: out.Content, TotalPages: out.TotalPages}, nil
}

func (c *Client) GetProduct(ctx context.Context, token string, id int64) (*domain.Product, error) {
	var out domain.Product
	if err := c.do(ctx, "get_product", http.MethodGet, fmt.Sprintf("/products/%d", id), nil, token, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateProduct(ctx context.Context, token string, in ports.ProductInput) (*domain.Product, error) {
	var out domain.Product
	if err := c.do(ctx, "create_product", http.MethodPost, "/products", nil, token, toProductRequest(in), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateProduct(ctx context.Context, token string, id int64, in ports.ProductInput) (*domain.Product, error) {
	var out domain.Product
	if err := c.do(ctx, "update_product", http.MethodPut, fmt.Sprintf("/products/%d", id), nil, token, toProductRequest(in), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) DeleteProduct(ctx context.Context, token string, id int64) error {
	return c.do(ctx, "delete_product", http.MethodDelete, fmt.Sprintf("/products/%d", id), nil, token, nil, nil)
}

func (c *Client) ListCategories(ctx context.Context, token string) ([]domain.Category, error) {
	var out []domain.Category
	if err := c.do(ctx, "list_categories", http.MethodGet, "/categories", nil, token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateCategory(ctx context.Context, token string, in ports.CategoryInput) (*domain.Category, error) {
	var out domain.Category
	if err := c.do(ctx, "create_category", http.MethodPost, "/categories", nil, token, categoryRequest{
		Name:        in.Name,
		Description: in.Description,
	}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
