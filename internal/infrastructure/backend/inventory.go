package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/marketbay/storefront/internal/core/domain"
)

type stockRequest struct {
	StockQuantity int `json:"stockQuantity"`
}

func (c *Client) LowStock(ctx context.Context, token string) ([]domain.Product, error) {
	var out []domain.Product
	if err := c.do(ctx, "low_stock", http.MethodGet, "/inventory/low-stock", nil, token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UpdateStock writes an absolute stock level. Drafts are validated client-side
// before this call, so a rejection here means the backend disagreed.
func (c *Client) UpdateStock(ctx context.Context, token string, productID int64, stockQuantity int) (*domain.Product, error) {
	var out domain.Product
	if err := c.do(ctx, "update_stock", http.MethodPut, fmt.Sprintf("/inventory/%d", productID), nil, token, stockRequest{
		StockQuantity: stockQuantity,
	}, &out); err != nil {
		return nil, err
	}
	return &out, nil
}
