package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/marketbay/storefront/internal/api/handler"
	"github.com/marketbay/storefront/internal/api/middleware"
	"github.com/marketbay/storefront/internal/core/ports"
)

// Deps carries the wired services the router exposes.
type Deps struct {
	Sessions ports.SessionService
	Carts    ports.CartService
	Catalog  ports.CatalogService
	Orders   ports.OrderService
	Admin    ports.AdminService
	Activity ports.ActivityService
	Redis    *redis.Client
	Backend  ports.BackendPinger
	Log      zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(d Deps) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(d.Log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("storefront"))
	e.Use(middleware.Session(d.Sessions))

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(d.Sessions, d.Carts, d.Catalog)
	catalogHandler := handler.NewCatalogHandler(d.Catalog)
	cartHandler := handler.NewCartHandler(d.Carts)
	orderHandler := handler.NewOrderHandler(d.Orders)
	adminHandler := handler.NewAdminHandler(d.Admin, d.Activity)
	healthHandler := handler.NewHealthHandler(d.Redis, d.Backend)

	// --- Public routes ---
	e.GET("/login", authHandler.LoginView)
	e.POST("/login", authHandler.Login)
	e.POST("/register", authHandler.Register)
	e.POST("/logout", authHandler.Logout)
	e.GET("/me", authHandler.Me)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	// --- Signed-in routes ---
	signedIn := e.Group("", middleware.Gate(false))
	signedIn.GET("/products", catalogHandler.Browse)
	signedIn.GET("/products/:id", catalogHandler.Get)
	signedIn.GET("/categories", catalogHandler.Categories)

	signedIn.GET("/cart", cartHandler.View)
	signedIn.POST("/cart/items", cartHandler.AddItem)
	signedIn.PUT("/cart/items/:id", cartHandler.SetQuantity)
	signedIn.DELETE("/cart/items/:id", cartHandler.RemoveItem)
	signedIn.PUT("/cart/panel", cartHandler.SetPanel)
	signedIn.POST("/cart/checkout", cartHandler.Checkout)

	signedIn.GET("/orders", orderHandler.Mine)
	signedIn.GET("/orders/:id", orderHandler.Get)

	// --- Admin routes ---
	admin := e.Group("/admin", middleware.Gate(true))
	admin.GET("/dashboard", adminHandler.Dashboard)
	admin.GET("/activity", adminHandler.Activity)
	admin.GET("/orders", orderHandler.All)

	admin.POST("/products", adminHandler.CreateProduct)
	admin.PUT("/products/:id", adminHandler.UpdateProduct)
	admin.DELETE("/products/:id", adminHandler.DeleteProduct)
	admin.POST("/categories", adminHandler.CreateCategory)

	admin.GET("/inventory", adminHandler.Inventory)
	admin.PUT("/inventory/:id/draft", adminHandler.StageStock)
	admin.POST("/inventory/:id/commit", adminHandler.CommitStock)

	return e
}
