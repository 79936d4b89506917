package postgres

import (
	"context"
	"fmt"

	"github.com/TwinkleStar5/Rabbit-Doughnut-Server/internal/domain"
	"github.com/google/uuid"
)

const productColumns = `id, name, description, allergens, ingredients, vegan,
	gluten_free, price_cents, stock_quantity, is_active, image_key,
	created_at, updated_at`

func scanProduct(row interface{ Scan(dest ...any) error }) (*domain.Product, error) {
	var p domain.Product
	err := row.Scan(
		&p.ID, &p.Name, &p.Description, &p.Allergens, &p.Ingredients,
		&p.Vegan, &p.GlutenFree, &p.PriceCents, &p.StockQuantity,
		&p.IsActive, &p.ImageKey, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *Store) GetProduct(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT `+productColumns+` FROM products WHERE id = $1`, id)
	return scanProduct(row)
}

func (s *Store) ListProducts(ctx context.Context) ([]domain.Product, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT `+productColumns+` FROM products ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("failed to query products: %w", err)
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, *p)
	}
	return products, rows.Err()
}

func (s *Store) CreateProduct(ctx context.Context, params domain.CreateProductParams) (*domain.Product, error) {
	row := s.pool.QueryRow(ctx, `
		INSERT INTO products (
			name, description, allergens, ingredients, vegan, gluten_free,
			price_cents, stock_quantity, is_active, image_key
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING `+productColumns,
		params.Name, params.Description, params.Allergens, params.Ingredients,
		params.Vegan, params.GlutenFree, params.PriceCents,
		params.StockQuantity, params.IsActive, params.ImageKey,
	)
	return scanProduct(row)
}

func (s *Store) UpdateProduct(ctx context.Context, id uuid.UUID, params domain.UpdateProductParams) (*domain.Product, error) {
	row := s.pool.QueryRow(ctx, `
		UPDATE products SET
			name = COALESCE($2::text, name),
			description = COALESCE($3::text, description),
			allergens = COALESCE($4::text, allergens),
			ingredients = COALESCE($5::text, ingredients),
			vegan = COALESCE($6::boolean, vegan),
			gluten_free = COALESCE($7::boolean, gluten_free),
			price_cents = COALESCE($8::integer, price_cents),
			stock_quantity = COALESCE($9::integer, stock_quantity),
			is_active = COALESCE($10::boolean, is_active),
			image_key = COALESCE($11::text, image_key),
			updated_at = now()
		WHERE id = $1
		RETURNING `+productColumns,
		id, params.Name, params.Description, params.Allergens,
		params.Ingredients, params.Vegan, params.GlutenFree,
		params.PriceCents, params.StockQuantity, params.IsActive,
		params.ImageKey,
	)
	return scanProduct(row)
}

func (s *Store) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	if _, err := s.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	return nil
}
