package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/TwinkleStar5/Rabbit-Doughnut-Server/internal/domain"
	"github.com/google/uuid"
)

func TestOrderHandler_Checkout(t *testing.T) {
	var gotShipping domain.ShippingDetails
	svcs := newTestServices()
	svcs.checkout.CheckoutFunc = func(ctx context.Context, ownerID uuid.UUID, shipping domain.ShippingDetails) (*domain.Order, error) {
		gotShipping = shipping
		return &domain.Order{
			ID:              uuid.New(),
			OwnerID:         ownerID,
			Shipping:        shipping,
			GrandTotalCents: 4000,
			Status:          domain.OrderStatusPending,
		}, nil
	}
	e := newTestRouter(t, svcs)

	body := `{"firstName":"June","lastName":"Baker","mode":"pickup","collectDate":"2026-09-05","collectTime":"10:30"}`
	rec := doRequest(t, e, http.MethodPost, "/orders", requestOpts{
		token: issueTestToken(t, domain.RoleCustomer),
		body:  body,
	})

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want %d: %s", rec.Code, http.StatusCreated, rec.Body.String())
	}
	if gotShipping.Mode != domain.FulfillmentPickup {
		t.Errorf("mode = %q, want pickup", gotShipping.Mode)
	}
	// Body had no email, so the token identity's email fills in.
	if gotShipping.Email != "june@example.com" {
		t.Errorf("email = %q, want fallback to identity email", gotShipping.Email)
	}

	var resp struct {
		Msg string `json:"msg"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Msg != "Cart has been emptied and order has been created" {
		t.Errorf("msg = %q", resp.Msg)
	}
}

func TestOrderHandler_Checkout_InvalidMode(t *testing.T) {
	e := newTestRouter(t, newTestServices())

	body := `{"firstName":"June","lastName":"Baker","mode":"teleport"}`
	rec := doRequest(t, e, http.MethodPost, "/orders", requestOpts{
		token: issueTestToken(t, domain.RoleCustomer),
		body:  body,
	})

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestOrderHandler_Checkout_NoCart(t *testing.T) {
	svcs := newTestServices()
	svcs.checkout.CheckoutFunc = func(ctx context.Context, ownerID uuid.UUID, shipping domain.ShippingDetails) (*domain.Order, error) {
		return nil, domain.ErrNoActiveCart
	}
	e := newTestRouter(t, svcs)

	body := `{"firstName":"June","lastName":"Baker","mode":"pickup"}`
	rec := doRequest(t, e, http.MethodPost, "/orders", requestOpts{
		token: issueTestToken(t, domain.RoleCustomer),
		body:  body,
	})

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
	var resp struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Error.Message != "You have no cart" {
		t.Errorf("message = %q", resp.Error.Message)
	}
}

func TestOrderHandler_GetMine_EmptyHistoryIsArray(t *testing.T) {
	e := newTestRouter(t, newTestServices())

	rec := doRequest(t, e, http.MethodGet, "/orders", requestOpts{
		token: issueTestToken(t, domain.RoleCustomer),
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusOK)
	}
	if body := rec.Body.String(); body != "[]\n" {
		t.Errorf("body = %q, want empty JSON array", body)
	}
}

func TestOrderHandler_ToggleStatus(t *testing.T) {
	orderID := uuid.MustParse("44444444-4444-4444-4444-444444444444")
	svcs := newTestServices()
	svcs.orders.ToggleStatusFunc = func(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
		return &domain.Order{ID: id, Status: domain.OrderStatusFulfilled}, nil
	}
	e := newTestRouter(t, svcs)

	rec := doRequest(t, e, http.MethodPatch, "/orders/"+orderID.String(), requestOpts{
		token: issueTestToken(t, domain.RoleAdmin),
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d: %s", rec.Code, http.StatusOK, rec.Body.String())
	}

	var resp struct {
		Order domain.Order `json:"order"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Order.Status != domain.OrderStatusFulfilled {
		t.Errorf("status = %q, want fulfilled", resp.Order.Status)
	}
}
