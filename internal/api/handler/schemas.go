package handler

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type registerRequest struct {
	Username string `json:"username" validate:"required,min=3"`
	Password string `json:"password" validate:"required,min=6"`
	Email    string `json:"email"    validate:"required,email"`
}

type sessionResponse struct {
	Username string   `json:"username"`
	Roles    []string `json:"roles"`
	Admin    bool     `json:"admin"`
}

type registerResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

type addItemRequest struct {
	ProductID int64 `json:"productId" validate:"required,gt=0"`
}

type quantityRequest struct {
	Quantity int `json:"quantity"`
}

type panelRequest struct {
	Visible bool `json:"visible"`
}

type checkoutRequest struct {
	PaymentMethod string `json:"paymentMethod" validate:"omitempty,oneof=CREDIT_CARD DEBIT_CARD PAYPAL"`
}

type productRequest struct {
	Name          string `json:"name"          validate:"required"`
	Description   string `json:"description"`
	Price         string `json:"price"         validate:"required"`
	StockQuantity int    `json:"stockQuantity" validate:"gte=0"`
	CategoryID    int64  `json:"categoryId"    validate:"required,gt=0"`
	ImageURL      string `json:"imageUrl"      validate:"omitempty,url"`
}

type categoryRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
}

type stageStockRequest struct {
	Quantity int `json:"quantity"`
}
