package domain

import (
	"time"

	"github.com/google/uuid"
)

// Cart-related domain errors.
var (
	ErrCartNotFound      = &Error{Code: ENOTFOUND, Message: "Cart not found"}
	ErrItemNotInCart     = &Error{Code: ENOTFOUND, Message: "Item not in cart"}
	ErrInsufficientStock = &Error{Code: ECONFLICT, Message: "This product has sold out"}
	ErrInvalidQuantity   = &Error{Code: EINVALID, Message: "Quantity must be greater than 0"}
	ErrCartTooLarge      = &Error{Code: EINVALID, Message: "Cart total is too large"}
	ErrCustomersOnly     = &Error{Code: EFORBIDDEN, Message: "Customers only can shop"}
)

// Cart holds a customer's pending line items. Exactly one live cart exists
// per owner; the store enforces this with a unique index on owner_id.
type Cart struct {
	ID         uuid.UUID
	OwnerID    uuid.UUID
	Items      []CartItem
	TotalCents int32
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// CartItem is one product-quantity pairing within a cart. At most one line
// exists per product. The unit price is captured when the line is touched;
// the subtotal is always quantity times that price.
type CartItem struct {
	ProductID      uuid.UUID
	Quantity       int32
	UnitPriceCents int32
	SubtotalCents  int32
}

// FindItem returns the line for productID, or nil if the cart has none.
func (c *Cart) FindItem(productID uuid.UUID) *CartItem {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			return &c.Items[i]
		}
	}
	return nil
}

// RecomputeTotal sets TotalCents to the sum of line subtotals. The total is
// never adjusted incrementally, so it cannot drift from the lines.
func (c *Cart) RecomputeTotal() {
	var total int32
	for i := range c.Items {
		total += c.Items[i].SubtotalCents
	}
	c.TotalCents = total
}

// IsEmpty reports whether the cart has no line items.
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// CartView is the read model returned to callers: line items resolved
// against the live catalog for display, plus the computed total.
type CartView struct {
	Items      []CartViewItem `json:"items"`
	TotalCents int32          `json:"totalCents"`
}

// CartViewItem resolves a line's product reference to current product
// details without mutating the captured subtotal.
type CartViewItem struct {
	ProductID      uuid.UUID `json:"productId"`
	Name           string    `json:"name"`
	Description    string    `json:"description,omitempty"`
	ImageKey       string    `json:"image,omitempty"`
	Quantity       int32     `json:"quantity"`
	UnitPriceCents int32     `json:"unitPriceCents"`
	SubtotalCents  int32     `json:"subtotalCents"`
}
