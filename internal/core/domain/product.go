package domain

import "github.com/shopspring/decimal"

// Product is a server-owned catalog record. The console only ever holds
// read-only copies; edits are staged in the admin views and submitted back to
// the backend as a whole.
type Product struct {
	ID            int64           `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Price         decimal.Decimal `json:"price"`
	StockQuantity int             `json:"stockQuantity"`
	CategoryID    int64           `json:"categoryId"`
	CategoryName  string          `json:"categoryName"`
	ImageURL      string          `json:"imageUrl,omitempty"`
}

// Category groups products in the catalog.
type Category struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}
