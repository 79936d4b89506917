package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/TwinkleStar5/Rabbit-Doughnut-Server/internal/domain"
	"github.com/TwinkleStar5/Rabbit-Doughnut-Server/internal/events"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// CheckoutService converts a cart into a durable order.
type CheckoutService interface {
	// Checkout snapshots the owner's cart into a pending order and deletes
	// the cart. The order is persisted before the cart is touched: a failure
	// between the two steps leaves the cart intact and re-checkout safe.
	Checkout(ctx context.Context, ownerID uuid.UUID, shipping domain.ShippingDetails) (*domain.Order, error)
}

type checkoutService struct {
	carts     CartStore
	products  ProductStore
	orders    OrderStore
	publisher events.Publisher
	logger    *slog.Logger
}

// NewCheckoutService creates a new CheckoutService instance.
func NewCheckoutService(carts CartStore, products ProductStore, orders OrderStore, publisher events.Publisher, logger *slog.Logger) CheckoutService {
	return &checkoutService{
		carts:     carts,
		products:  products,
		orders:    orders,
		publisher: publisher,
		logger:    logger,
	}
}

func (s *checkoutService) Checkout(ctx context.Context, ownerID uuid.UUID, shipping domain.ShippingDetails) (*domain.Order, error) {
	const op = "checkout.create_order"

	cart, err := s.carts.GetCartByOwner(ctx, ownerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNoActiveCart
		}
		return nil, domain.Internal(err, op, "failed to load cart")
	}
	// An emptied-but-kept cart is equivalent to no cart here.
	if cart.IsEmpty() {
		return nil, domain.ErrNoActiveCart
	}

	order := &domain.Order{
		OwnerID:  ownerID,
		Shipping: shipping,
		Status:   domain.OrderStatusPending,
	}

	var grandTotal int32
	for _, line := range cart.Items {
		item := domain.OrderItem{
			ProductID:      line.ProductID,
			Quantity:       line.Quantity,
			UnitPriceCents: line.UnitPriceCents,
			SubtotalCents:  line.SubtotalCents,
		}

		// Snapshot the product name so the order survives catalog deletions.
		// Stock is deliberately not re-validated here; quantities were
		// checked at add-time.
		product, err := s.products.GetProduct(ctx, line.ProductID)
		if err == nil {
			item.ProductName = product.Name
		} else if !errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.Internal(err, op, "failed to load product")
		}

		grandTotal += item.SubtotalCents
		order.Items = append(order.Items, item)
	}
	order.GrandTotalCents = grandTotal

	if err := s.orders.CreateOrder(ctx, order); err != nil {
		return nil, domain.WrapError(err, domain.EINTERNAL, op, domain.ErrOrderCreationFailed.Message)
	}

	// The order is the source of truth once persisted. If cart cleanup
	// fails the checkout still succeeded; the leftover cart is reconciled
	// by a later clear or re-checkout.
	if err := s.carts.DeleteCartByOwner(ctx, ownerID); err != nil {
		s.logger.Warn("order created but cart cleanup failed",
			slog.String("op", op),
			slog.String("order_id", order.ID.String()),
			slog.String("owner_id", ownerID.String()),
			slog.String("error", err.Error()),
		)
	}

	if err := s.publisher.OrderCreated(ctx, order); err != nil {
		s.logger.Warn("failed to publish order event",
			slog.String("order_id", order.ID.String()),
			slog.String("error", err.Error()),
		)
	}

	return order, nil
}
