// Package postgres implements the service store interfaces on PostgreSQL
// via pgx. Absent rows are reported as pgx.ErrNoRows; the service layer
// decides what a miss means.
package postgres

import (
	"github.com/TwinkleStar5/Rabbit-Doughnut-Server/internal/service"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store bundles all persistence operations over one connection pool.
type Store struct {
	pool *pgxpool.Pool
}

// Compile-time checks that Store implements the service store interfaces.
var (
	_ service.ProductStore = (*Store)(nil)
	_ service.CartStore    = (*Store)(nil)
	_ service.OrderStore   = (*Store)(nil)
	_ service.UserStore    = (*Store)(nil)
)

// NewStore creates a Store backed by the given pool.
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}
