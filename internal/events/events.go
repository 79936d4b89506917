// Package events publishes storefront lifecycle events for downstream
// consumers (kitchen dashboard, catalog search refresh). Publishing is
// best-effort: callers log failures and carry on.
package events

import (
	"context"

	"github.com/TwinkleStar5/Rabbit-Doughnut-Server/internal/domain"
)

// Product event names.
const (
	ProductCreated = "product.created"
	ProductUpdated = "product.updated"
	ProductDeleted = "product.deleted"
)

// Publisher emits domain events.
type Publisher interface {
	// OrderCreated announces a freshly checked-out order.
	OrderCreated(ctx context.Context, order *domain.Order) error

	// ProductEvent announces a catalog change.
	ProductEvent(ctx context.Context, event string, product *domain.Product) error
}

// NoopPublisher discards all events. Used when no broker is configured and
// in tests.
type NoopPublisher struct{}

func (NoopPublisher) OrderCreated(ctx context.Context, order *domain.Order) error {
	return nil
}

func (NoopPublisher) ProductEvent(ctx context.Context, event string, product *domain.Product) error {
	return nil
}
