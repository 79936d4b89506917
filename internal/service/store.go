// Package service holds the business logic of the storefront. Services
// consume the narrow store interfaces below; internal/postgres implements
// them. Absent rows surface as pgx.ErrNoRows so services decide what a miss
// means for their operation.
package service

import (
	"context"

	"github.com/TwinkleStar5/Rabbit-Doughnut-Server/internal/domain"
	"github.com/google/uuid"
)

// ProductStore is the catalog access the services need.
type ProductStore interface {
	GetProduct(ctx context.Context, id uuid.UUID) (*domain.Product, error)
	ListProducts(ctx context.Context) ([]domain.Product, error)
	CreateProduct(ctx context.Context, params domain.CreateProductParams) (*domain.Product, error)
	UpdateProduct(ctx context.Context, id uuid.UUID, params domain.UpdateProductParams) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error
}

// CartStore persists carts. SaveCart must apply the cart row, its line items
// and the total in one transaction so concurrent readers never observe
// updated lines with a stale total.
type CartStore interface {
	// GetCartByOwner loads the owner's cart with all line items.
	GetCartByOwner(ctx context.Context, ownerID uuid.UUID) (*domain.Cart, error)

	// SaveCart upserts the cart and replaces its line items atomically.
	// A zero cart ID means create; the generated ID is written back.
	SaveCart(ctx context.Context, cart *domain.Cart) error

	// DeleteCartByOwner removes the owner's cart and lines. Deleting an
	// absent cart is a no-op.
	DeleteCartByOwner(ctx context.Context, ownerID uuid.UUID) error
}

// OrderStore persists immutable order snapshots.
type OrderStore interface {
	CreateOrder(ctx context.Context, order *domain.Order) error
	GetOrder(ctx context.Context, id uuid.UUID) (*domain.Order, error)
	ListOrdersByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Order, error)
	ListOrders(ctx context.Context) ([]domain.Order, error)
	UpdateOrderStatus(ctx context.Context, id uuid.UUID, status domain.OrderStatus) error
}

// UserStore persists accounts.
type UserStore interface {
	CreateUser(ctx context.Context, user *domain.User) error
	GetUserByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
	GetUserByEmail(ctx context.Context, email string) (*domain.User, error)
}
