package domain

import (
	"time"

	"github.com/google/uuid"
)

// Product-related domain errors.
var (
	ErrProductNotFound = &Error{Code: ENOTFOUND, Message: "Product not found"}
)

// Product is a catalog entry. Stock is informative until checkout; adding to
// a cart does not reserve or decrement it.
type Product struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Allergens     string    `json:"allergens"`
	Ingredients   string    `json:"ingredients"`
	Vegan         bool      `json:"vegan"`
	GlutenFree    bool      `json:"glutenFree"`
	PriceCents    int32     `json:"priceCents"`
	StockQuantity int32     `json:"stockQuantity"`
	IsActive      bool      `json:"isActive"`
	ImageKey      string    `json:"image,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// CreateProductParams holds the allow-listed fields for creating a product.
// Request bodies are never spread into records wholesale.
type CreateProductParams struct {
	Name          string
	Description   string
	Allergens     string
	Ingredients   string
	Vegan         bool
	GlutenFree    bool
	PriceCents    int32
	StockQuantity int32
	IsActive      bool
	ImageKey      string
}

// UpdateProductParams holds the allow-listed fields for updating a product.
// Nil pointers leave the stored value untouched.
type UpdateProductParams struct {
	Name          *string
	Description   *string
	Allergens     *string
	Ingredients   *string
	Vegan         *bool
	GlutenFree    *bool
	PriceCents    *int32
	StockQuantity *int32
	IsActive      *bool
	ImageKey      *string
}
