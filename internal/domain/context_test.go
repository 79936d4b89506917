package domain

import (
	"context"
	"testing"

	"github.com/google/uuid"
)

func TestIdentityContext(t *testing.T) {
	t.Run("IdentityFromContext returns nil when unauthenticated", func(t *testing.T) {
		if id := IdentityFromContext(context.Background()); id != nil {
			t.Errorf("expected nil identity, got %+v", id)
		}
	})

	t.Run("IdentityFromContext returns identity when set", func(t *testing.T) {
		expected := &Identity{
			UserID:   uuid.New(),
			Username: "junebaker",
			Email:    "june@example.com",
			Role:     RoleCustomer,
		}
		ctx := NewContextWithIdentity(context.Background(), expected)

		id := IdentityFromContext(ctx)
		if id == nil {
			t.Fatal("expected identity, got nil")
		}
		if id.UserID != expected.UserID {
			t.Errorf("expected UserID %v, got %v", expected.UserID, id.UserID)
		}
		if id.Role != expected.Role {
			t.Errorf("expected Role %q, got %q", expected.Role, id.Role)
		}
	})

	t.Run("OwnerIDFromContext returns uuid.Nil when unauthenticated", func(t *testing.T) {
		if id := OwnerIDFromContext(context.Background()); id != uuid.Nil {
			t.Errorf("expected uuid.Nil, got %v", id)
		}
	})

	t.Run("OwnerIDFromContext returns the caller's ID", func(t *testing.T) {
		expected := &Identity{UserID: uuid.New()}
		ctx := NewContextWithIdentity(context.Background(), expected)

		if id := OwnerIDFromContext(ctx); id != expected.UserID {
			t.Errorf("expected %v, got %v", expected.UserID, id)
		}
	})
}
