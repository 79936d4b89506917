package service

import (
	"context"
	"errors"

	"github.com/TwinkleStar5/Rabbit-Doughnut-Server/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// OrderService provides order browsing and fulfillment management.
// Orders are immutable snapshots; only the status ever changes.
type OrderService interface {
	// GetMyOrders returns the caller's orders, newest first.
	GetMyOrders(ctx context.Context, ownerID uuid.UUID) ([]domain.Order, error)

	// ListAllOrders returns every order. Admin only, enforced at the route.
	ListAllOrders(ctx context.Context) ([]domain.Order, error)

	// ToggleStatus flips an order between pending and fulfilled.
	ToggleStatus(ctx context.Context, orderID uuid.UUID) (*domain.Order, error)
}

type orderService struct {
	orders OrderStore
}

// NewOrderService creates a new OrderService instance.
func NewOrderService(orders OrderStore) OrderService {
	return &orderService{orders: orders}
}

func (s *orderService) GetMyOrders(ctx context.Context, ownerID uuid.UUID) ([]domain.Order, error) {
	const op = "order.get_mine"

	orders, err := s.orders.ListOrdersByOwner(ctx, ownerID)
	if err != nil {
		return nil, domain.Internal(err, op, "failed to list orders")
	}
	return orders, nil
}

func (s *orderService) ListAllOrders(ctx context.Context) ([]domain.Order, error) {
	const op = "order.list_all"

	orders, err := s.orders.ListOrders(ctx)
	if err != nil {
		return nil, domain.Internal(err, op, "failed to list orders")
	}
	return orders, nil
}

func (s *orderService) ToggleStatus(ctx context.Context, orderID uuid.UUID) (*domain.Order, error) {
	const op = "order.toggle_status"

	order, err := s.orders.GetOrder(ctx, orderID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrOrderNotFound
		}
		return nil, domain.Internal(err, op, "failed to load order")
	}

	order.Status = order.Status.Toggle()
	if err := s.orders.UpdateOrderStatus(ctx, orderID, order.Status); err != nil {
		return nil, domain.Internal(err, op, "failed to update order status")
	}

	return order, nil
}
