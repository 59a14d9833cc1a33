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

type orderPageResponse struct {
	Content    []domain.Order `json:"content"`
	TotalPages int            `json:"totalPages"`
}

// PlaceOrder submits the cart contents. The backend validates stock, computes
// the final total and answers with the persisted order.
func (c *Client) PlaceOrder(ctx context.Context, token string, in ports.PlaceOrderInput) (*domain.Order, error) {
	var out domain.Order
	if err := c.do(ctx, "place_order", http.MethodPost, "/orders", nil, token, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) MyOrders(ctx context.Context, token string) ([]domain.Order, error) {
	var out []domain.Order
	if err := c.do(ctx, "my_orders", http.MethodGet, "/orders/my-orders", nil, token, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetOrder(ctx context.Context, token string, id int64) (*domain.Order, error) {
	var out domain.Order
	if err := c.do(ctx, "get_order", http.MethodGet, fmt.Sprintf("/orders/%d", id), nil, token, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ListOrders(ctx context.Context, token string, page, size int) (*ports.OrderPage, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("size", strconv.Itoa(size))

	var out orderPageResponse
	if err := c.do(ctx, "list_orders", http.MethodGet, "/orders", query, token, nil, &out); err != nil {
		return nil, err
	}
	return &ports.OrderPage{Content: out.Content, TotalPages: out.TotalPages}, nil
}
