package postgres

import (
	"context"
	"fmt"

	"github.com/TwinkleStar5/Rabbit-Doughnut-Server/internal/domain"
	"github.com/google/uuid"
)

const orderColumns = `id, owner_id, first_name, last_name, phone_number,
	email, fulfillment_mode, collect_date, collect_time, company, address,
	city, state, postal_code, email_news, grand_total_cents, status,
	created_at`

func scanOrder(row interface{ Scan(dest ...any) error }) (*domain.Order, error) {
	var o domain.Order
	err := row.Scan(
		&o.ID, &o.OwnerID, &o.Shipping.FirstName, &o.Shipping.LastName,
		&o.Shipping.PhoneNumber, &o.Shipping.Email, &o.Shipping.Mode,
		&o.Shipping.CollectDate, &o.Shipping.CollectTime,
		&o.Shipping.Company, &o.Shipping.Address, &o.Shipping.City,
		&o.Shipping.State, &o.Shipping.PostalCode, &o.Shipping.EmailNews,
		&o.GrandTotalCents, &o.Status, &o.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// CreateOrder persists the order and its items in one transaction. The
// generated ID and timestamp are written back to the order.
func (s *Store) CreateOrder(ctx context.Context, order *domain.Order) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx, `
		INSERT INTO orders (
			owner_id, first_name, last_name, phone_number, email,
			fulfillment_mode, collect_date, collect_time, company, address,
			city, state, postal_code, email_news, grand_total_cents, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING id, created_at`,
		order.OwnerID, order.Shipping.FirstName, order.Shipping.LastName,
		order.Shipping.PhoneNumber, order.Shipping.Email, order.Shipping.Mode,
		order.Shipping.CollectDate, order.Shipping.CollectTime,
		order.Shipping.Company, order.Shipping.Address, order.Shipping.City,
		order.Shipping.State, order.Shipping.PostalCode,
		order.Shipping.EmailNews, order.GrandTotalCents, order.Status,
	).Scan(&order.ID, &order.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}

	for _, item := range order.Items {
		_, err := tx.Exec(ctx, `
			INSERT INTO order_items (order_id, product_id, product_name, quantity, unit_price_cents, subtotal_cents)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			order.ID, item.ProductID, item.ProductName, item.Quantity,
			item.UnitPriceCents, item.SubtotalCents)
		if err != nil {
			return fmt.Errorf("failed to insert order item: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit order: %w", err)
	}
	return nil
}

func (s *Store) GetOrder(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	row := s.pool.QueryRow(ctx, `SELECT `+orderColumns+` FROM orders WHERE id = $1`, id)
	order, err := scanOrder(row)
	if err != nil {
		return nil, err
	}
	if err := s.loadOrderItems(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

func (s *Store) ListOrdersByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Order, error) {
	return s.listOrders(ctx,
		`SELECT `+orderColumns+` FROM orders WHERE owner_id = $1 ORDER BY created_at DESC`, ownerID)
}

func (s *Store) ListOrders(ctx context.Context) ([]domain.Order, error) {
	return s.listOrders(ctx,
		`SELECT `+orderColumns+` FROM orders ORDER BY created_at DESC`)
}

func (s *Store) UpdateOrderStatus(ctx context.Context, id uuid.UUID, status domain.OrderStatus) error {
	if _, err := s.pool.Exec(ctx, `UPDATE orders SET status = $2 WHERE id = $1`, id, status); err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}
	return nil
}

func (s *Store) listOrders(ctx context.Context, query string, args ...any) ([]domain.Order, error) {
	rows, err := s.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	var orders []domain.Order
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		orders = append(orders, *order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range orders {
		if err := s.loadOrderItems(ctx, &orders[i]); err != nil {
			return nil, err
		}
	}
	return orders, nil
}

func (s *Store) loadOrderItems(ctx context.Context, order *domain.Order) error {
	rows, err := s.pool.Query(ctx, `
		SELECT product_id, product_name, quantity, unit_price_cents, subtotal_cents
		FROM order_items WHERE order_id = $1`, order.ID)
	if err != nil {
		return fmt.Errorf("failed to query order items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item domain.OrderItem
		if err := rows.Scan(&item.ProductID, &item.ProductName, &item.Quantity, &item.UnitPriceCents, &item.SubtotalCents); err != nil {
			return fmt.Errorf("failed to scan order item: %w", err)
		}
		order.Items = append(order.Items, item)
	}
	return rows.Err()
}
