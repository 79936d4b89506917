package postgres

import (
	"context"
	"fmt"

	"github.com/TwinkleStar5/Rabbit-Doughnut-Server/internal/domain"
	"github.com/google/uuid"
)

func (s *Store) GetCartByOwner(ctx context.Context, ownerID uuid.UUID) (*domain.Cart, error) {
	var cart domain.Cart
	err := s.pool.QueryRow(ctx, `
		SELECT id, owner_id, total_cents, created_at, updated_at
		FROM carts WHERE owner_id = $1`, ownerID,
	).Scan(&cart.ID, &cart.OwnerID, &cart.TotalCents, &cart.CreatedAt, &cart.UpdatedAt)
	if err != nil {
		return nil, err
	}

	rows, err := s.pool.Query(ctx, `
		SELECT product_id, quantity, unit_price_cents, subtotal_cents
		FROM cart_items WHERE cart_id = $1`, cart.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to query cart items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item domain.CartItem
		if err := rows.Scan(&item.ProductID, &item.Quantity, &item.UnitPriceCents, &item.SubtotalCents); err != nil {
			return nil, fmt.Errorf("failed to scan cart item: %w", err)
		}
		cart.Items = append(cart.Items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &cart, nil
}

// SaveCart upserts the cart row and replaces its line items in one
// transaction, so readers never see updated lines paired with a stale
// total. Concurrent saves of the same cart resolve last-write-wins.
func (s *Store) SaveCart(ctx context.Context, cart *domain.Cart) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if cart.ID == uuid.Nil {
		err = tx.QueryRow(ctx, `
			INSERT INTO carts (owner_id, total_cents)
			VALUES ($1, $2)
			ON CONFLICT (owner_id) DO UPDATE
				SET total_cents = EXCLUDED.total_cents, updated_at = now()
			RETURNING id, created_at, updated_at`,
			cart.OwnerID, cart.TotalCents,
		).Scan(&cart.ID, &cart.CreatedAt, &cart.UpdatedAt)
	} else {
		_, err = tx.Exec(ctx, `
			UPDATE carts SET total_cents = $2, updated_at = now()
			WHERE id = $1`,
			cart.ID, cart.TotalCents)
	}
	if err != nil {
		return fmt.Errorf("failed to upsert cart: %w", err)
	}

	if _, err := tx.Exec(ctx, `DELETE FROM cart_items WHERE cart_id = $1`, cart.ID); err != nil {
		return fmt.Errorf("failed to clear cart items: %w", err)
	}

	for _, item := range cart.Items {
		_, err := tx.Exec(ctx, `
			INSERT INTO cart_items (cart_id, product_id, quantity, unit_price_cents, subtotal_cents)
			VALUES ($1, $2, $3, $4, $5)`,
			cart.ID, item.ProductID, item.Quantity, item.UnitPriceCents, item.SubtotalCents)
		if err != nil {
			return fmt.Errorf("failed to insert cart item: %w", err)
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit cart: %w", err)
	}
	return nil
}

func (s *Store) DeleteCartByOwner(ctx context.Context, ownerID uuid.UUID) error {
	if _, err := s.pool.Exec(ctx, `DELETE FROM carts WHERE owner_id = $1`, ownerID); err != nil {
		return fmt.Errorf("failed to delete cart: %w", err)
	}
	return nil
}
