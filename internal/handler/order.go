package handler

import (
	"net/http"

	"github.com/TwinkleStar5/Rabbit-Doughnut-Server/internal/domain"
	"github.com/TwinkleStar5/Rabbit-Doughnut-Server/internal/service"
	"github.com/labstack/echo/v4"
)

// OrderHandler handles checkout and order management routes.
type OrderHandler struct {
	checkout service.CheckoutService
	orders   service.OrderService
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(checkout service.CheckoutService, orders service.OrderService) *OrderHandler {
	return &OrderHandler{checkout: checkout, orders: orders}
}

type checkoutRequest struct {
	FirstName   string `json:"firstName" validate:"required"`
	LastName    string `json:"lastName" validate:"required"`
	PhoneNumber string `json:"phoneNumber"`
	Email       string `json:"email" validate:"omitempty,email"`
	Mode        string `json:"mode" validate:"required,oneof=pickup delivery"`
	CollectDate string `json:"collectDate"`
	CollectTime string `json:"collectTime"`
	Company     string `json:"company"`
	Address     string `json:"address"`
	City        string `json:"city"`
	State       string `json:"state"`
	PostalCode  string `json:"postalCode"`
	EmailNews   bool   `json:"emailNews"`
}

// Checkout handles POST /orders: snapshot the caller's cart into an order.
func (h *OrderHandler) Checkout(c echo.Context) error {
	ctx := c.Request().Context()
	identity := domain.IdentityFromContext(ctx)

	var req checkoutRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	shipping := domain.ShippingDetails{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PhoneNumber: req.PhoneNumber,
		Email:       req.Email,
		Mode:        domain.FulfillmentMode(req.Mode),
		CollectDate: req.CollectDate,
		CollectTime: req.CollectTime,
		Company:     req.Company,
		Address:     req.Address,
		City:        req.City,
		State:       req.State,
		PostalCode:  req.PostalCode,
		EmailNews:   req.EmailNews,
	}
	if shipping.Email == "" {
		shipping.Email = identity.Email
	}

	order, err := h.checkout.Checkout(ctx, identity.UserID, shipping)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"msg":   "Cart has been emptied and order has been created",
		"order": order,
	})
}

// GetMine handles GET /orders: the caller's order history.
func (h *OrderHandler) GetMine(c echo.Context) error {
	ctx := c.Request().Context()
	ownerID := domain.OwnerIDFromContext(ctx)

	orders, err := h.orders.GetMyOrders(ctx, ownerID)
	if err != nil {
		return err
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	return c.JSON(http.StatusOK, orders)
}

// ListAll handles GET /orders/all (admin).
func (h *OrderHandler) ListAll(c echo.Context) error {
	orders, err := h.orders.ListAllOrders(c.Request().Context())
	if err != nil {
		return err
	}
	if orders == nil {
		orders = []domain.Order{}
	}
	return c.JSON(http.StatusOK, orders)
}

// ToggleStatus handles PATCH /orders/:id (admin): flip pending/fulfilled.
func (h *OrderHandler) ToggleStatus(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	order, err := h.orders.ToggleStatus(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"msg":   "Order status has been updated",
		"order": order,
	})
}
