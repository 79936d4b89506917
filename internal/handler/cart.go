package handler

import (
	"net/http"

	"github.com/TwinkleStar5/Rabbit-Doughnut-Server/internal/domain"
	"github.com/TwinkleStar5/Rabbit-Doughnut-Server/internal/service"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// CartHandler handles the shopping cart routes. All routes sit behind the
// customer middleware; the owner is always the authenticated caller.
type CartHandler struct {
	carts service.CartService
}

// NewCartHandler creates a new cart handler.
func NewCartHandler(carts service.CartService) *CartHandler {
	return &CartHandler{carts: carts}
}

// Get handles GET /cart. An absent cart renders as an explicit empty cart,
// never an error.
func (h *CartHandler) Get(c echo.Context) error {
	ownerID := domain.OwnerIDFromContext(c.Request().Context())

	view, err := h.carts.GetCart(c.Request().Context(), ownerID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, view)
}

type addItemRequest struct {
	ProductID uuid.UUID `json:"productId" validate:"required"`
	Quantity  int32     `json:"quantity" validate:"required,gt=0"`
}

// AddItem handles POST /cart/items.
func (h *CartHandler) AddItem(c echo.Context) error {
	ownerID := domain.OwnerIDFromContext(c.Request().Context())

	var req addItemRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	result, err := h.carts.AddItem(c.Request().Context(), ownerID, req.ProductID, req.Quantity)
	if err != nil {
		return err
	}

	msg := "Product added to cart successfully"
	status := http.StatusOK
	if result.CreatedCart {
		msg = "First product added to cart successfully"
		status = http.StatusCreated
	}
	return c.JSON(status, map[string]interface{}{
		"msg":  msg,
		"cart": result.Cart,
	})
}

// RemoveItem handles DELETE /cart/items/:productId. The whole line is
// removed regardless of quantity.
func (h *CartHandler) RemoveItem(c echo.Context) error {
	ownerID := domain.OwnerIDFromContext(c.Request().Context())

	productID, err := parseID(c, "productId")
	if err != nil {
		return err
	}

	view, err := h.carts.RemoveItem(c.Request().Context(), ownerID, productID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"msg":  "This item has successfully been removed",
		"cart": view,
	})
}

// DecrementItem handles PATCH /cart/items/:productId/decrement, the
// explicit decrement-by-one variant of removal.
func (h *CartHandler) DecrementItem(c echo.Context) error {
	ownerID := domain.OwnerIDFromContext(c.Request().Context())

	productID, err := parseID(c, "productId")
	if err != nil {
		return err
	}

	view, err := h.carts.DecrementItem(c.Request().Context(), ownerID, productID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"msg":  "Quantity updated successfully",
		"cart": view,
	})
}

// Clear handles DELETE /cart. Always succeeds, even with no cart.
func (h *CartHandler) Clear(c echo.Context) error {
	ownerID := domain.OwnerIDFromContext(c.Request().Context())

	if err := h.carts.ClearCart(c.Request().Context(), ownerID); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"msg": "Cart has been cleared"})
}
