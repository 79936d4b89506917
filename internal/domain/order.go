package domain

import (
	"time"

	"github.com/google/uuid"
)

// Order-related domain errors.
var (
	ErrOrderNotFound       = &Error{Code: ENOTFOUND, Message: "This order does not exist"}
	ErrNoActiveCart        = &Error{Code: EINVALID, Message: "You have no cart"}
	ErrOrderCreationFailed = &Error{Code: EINTERNAL, Message: "Error in creating an order"}
)

// OrderStatus is the fulfillment state of an order.
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusFulfilled OrderStatus = "fulfilled"
)

// Toggle returns the opposite status.
func (s OrderStatus) Toggle() OrderStatus {
	if s == OrderStatusPending {
		return OrderStatusFulfilled
	}
	return OrderStatusPending
}

// FulfillmentMode says how the customer collects the order.
type FulfillmentMode string

const (
	FulfillmentPickup   FulfillmentMode = "pickup"
	FulfillmentDelivery FulfillmentMode = "delivery"
)

// ShippingDetails is the contact and collection information captured at
// checkout.
type ShippingDetails struct {
	FirstName   string          `json:"firstName"`
	LastName    string          `json:"lastName"`
	PhoneNumber string          `json:"phoneNumber"`
	Email       string          `json:"email"`
	Mode        FulfillmentMode `json:"mode"`
	CollectDate string          `json:"collectDate"`
	CollectTime string          `json:"collectTime"`
	Company     string          `json:"company,omitempty"`
	Address     string          `json:"address,omitempty"`
	City        string          `json:"city,omitempty"`
	State       string          `json:"state,omitempty"`
	PostalCode  string          `json:"postalCode,omitempty"`
	EmailNews   bool            `json:"emailNews"`
}

// Order is an immutable snapshot of a cart at checkout time, decoupled from
// live product state. Only the status changes afterwards, and only by an
// admin.
type Order struct {
	ID              uuid.UUID       `json:"id"`
	OwnerID         uuid.UUID       `json:"ownerId"`
	Shipping        ShippingDetails `json:"shipping"`
	Items           []OrderItem     `json:"items"`
	GrandTotalCents int32           `json:"grandTotalCents"`
	Status          OrderStatus     `json:"status"`
	CreatedAt       time.Time       `json:"createdAt"`
}

// OrderItem is a frozen copy of a cart line, including the product name at
// capture time so the order still renders if the product is later deleted.
type OrderItem struct {
	ProductID      uuid.UUID `json:"productId"`
	ProductName    string    `json:"productName"`
	Quantity       int32     `json:"quantity"`
	UnitPriceCents int32     `json:"unitPriceCents"`
	SubtotalCents  int32     `json:"subtotalCents"`
}
