// Package domain provides core business types and context helpers for the
// Rabbit Doughnut storefront.
//
// Context helpers centralize request-scoped identity access so handlers and
// services read the verified caller the same way everywhere.
package domain

import (
	"context"

	"github.com/google/uuid"
)

// contextKey is an unexported type for context keys to prevent collisions.
type contextKey int

const (
	// identityContextKey stores the verified caller in context.
	identityContextKey contextKey = iota
)

// Identity is the verified caller resolved by the auth middleware.
// This is a minimal struct for context storage - the full user record can be
// fetched from the database if needed.
type Identity struct {
	UserID   uuid.UUID
	Username string
	Email    string
	Role     Role
}

// NewContextWithIdentity returns a new context with the identity attached.
func NewContextWithIdentity(ctx context.Context, id *Identity) context.Context {
	return context.WithValue(ctx, identityContextKey, id)
}

// IdentityFromContext retrieves the identity from context.
// Returns nil if the request was not authenticated.
func IdentityFromContext(ctx context.Context) *Identity {
	id, _ := ctx.Value(identityContextKey).(*Identity)
	return id
}

// OwnerIDFromContext retrieves the caller's user ID from context.
// Returns uuid.Nil if the request was not authenticated.
func OwnerIDFromContext(ctx context.Context) uuid.UUID {
	if id := IdentityFromContext(ctx); id != nil {
		return id.UserID
	}
	return uuid.Nil
}
