package handler

import (
	"log/slog"
	"net/http"

	"github.com/TwinkleStar5/Rabbit-Doughnut-Server/internal/auth"
	"github.com/TwinkleStar5/Rabbit-Doughnut-Server/internal/middleware"
	"github.com/labstack/echo/v4"
)

// RouterConfig bundles everything the router needs.
type RouterConfig struct {
	Logger    *slog.Logger
	Tokens    *auth.TokenIssuer
	Metrics   *middleware.Metrics
	Users     *UserHandler
	Products  *ProductHandler
	Carts     *CartHandler
	Orders    *OrderHandler
	StaticDir string
	StaticURL string
}

// NewRouter wires middleware and routes onto a fresh echo instance.
func NewRouter(cfg RouterConfig) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = NewValidator()
	e.HTTPErrorHandler = NewErrorHandler(cfg.Logger)

	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLogger(cfg.Logger))
	e.Use(middleware.Recover())
	if cfg.Metrics != nil {
		e.Use(cfg.Metrics.Middleware())
		e.GET("/metrics", cfg.Metrics.Handler())
	}

	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	// Uploaded product images.
	if cfg.StaticDir != "" {
		e.Static(cfg.StaticURL, cfg.StaticDir)
	}

	requireAuth := middleware.RequireAuth(cfg.Tokens)
	customerOnly := middleware.RequireCustomer()
	adminOnly := middleware.RequireAdmin()

	users := e.Group("/users")
	users.POST("/register", cfg.Users.Register)
	users.POST("/login", cfg.Users.Login)

	products := e.Group("/products")
	products.GET("", cfg.Products.List)
	products.GET("/:id", cfg.Products.Get)
	products.POST("", cfg.Products.Create, requireAuth, adminOnly)
	products.PUT("/:id", cfg.Products.Update, requireAuth, adminOnly)
	products.DELETE("/:id", cfg.Products.Delete, requireAuth, adminOnly)
	products.PATCH("/:id", cfg.Products.ToggleActive, requireAuth, adminOnly)

	cart := e.Group("/cart", requireAuth, customerOnly)
	cart.GET("", cfg.Carts.Get)
	cart.POST("/items", cfg.Carts.AddItem)
	cart.DELETE("/items/:productId", cfg.Carts.RemoveItem)
	cart.PATCH("/items/:productId/decrement", cfg.Carts.DecrementItem)
	cart.DELETE("", cfg.Carts.Clear)

	orders := e.Group("/orders")
	orders.POST("", cfg.Orders.Checkout, requireAuth, customerOnly)
	orders.GET("", cfg.Orders.GetMine, requireAuth, customerOnly)
	orders.GET("/all", cfg.Orders.ListAll, requireAuth, adminOnly)
	orders.PATCH("/:id", cfg.Orders.ToggleStatus, requireAuth, adminOnly)

	return e
}
