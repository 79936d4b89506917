package service

import (
	"context"
	"errors"
	"math"

	"github.com/TwinkleStar5/Rabbit-Doughnut-Server/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// CartService provides business logic for shopping cart operations.
// Every mutation is all-or-nothing: a failure mid-algorithm leaves the
// persisted cart exactly as it was.
type CartService interface {
	// AddItem merges the requested quantity into the owner's cart, creating
	// the cart lazily on first add. The result says whether a brand-new cart
	// was created.
	AddItem(ctx context.Context, ownerID, productID uuid.UUID, quantity int32) (*CartMutation, error)

	// RemoveItem deletes the product's line entirely.
	RemoveItem(ctx context.Context, ownerID, productID uuid.UUID) (*domain.CartView, error)

	// DecrementItem lowers the product's line by one, removing the line when
	// it reaches zero.
	DecrementItem(ctx context.Context, ownerID, productID uuid.UUID) (*domain.CartView, error)

	// ClearCart deletes the owner's cart outright. Idempotent: clearing an
	// absent cart succeeds as a no-op.
	ClearCart(ctx context.Context, ownerID uuid.UUID) error

	// GetCart returns the cart resolved against the live catalog, or an
	// explicit empty view when no cart exists.
	GetCart(ctx context.Context, ownerID uuid.UUID) (*domain.CartView, error)
}

// CartMutation is the outcome of a successful cart change.
type CartMutation struct {
	Cart        *domain.CartView `json:"cart"`
	CreatedCart bool             `json:"createdCart"`
}

type cartService struct {
	carts    CartStore
	products ProductStore
}

// NewCartService creates a new CartService instance.
func NewCartService(carts CartStore, products ProductStore) CartService {
	return &cartService{carts: carts, products: products}
}

func (s *cartService) AddItem(ctx context.Context, ownerID, productID uuid.UUID, quantity int32) (*CartMutation, error) {
	const op = "cart.add_item"

	if quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}

	product, err := s.products.GetProduct(ctx, productID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProductNotFound
		}
		return nil, domain.Internal(err, op, "failed to load product")
	}
	// Inactive products are not purchasable and indistinguishable from
	// absent ones to shoppers.
	if !product.IsActive {
		return nil, domain.ErrProductNotFound
	}

	created := false
	cart, err := s.carts.GetCartByOwner(ctx, ownerID)
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.Internal(err, op, "failed to load cart")
		}
		cart = &domain.Cart{OwnerID: ownerID}
		created = true
	}

	// Quantities and prices are int32 cents; widen before multiplying so a
	// huge order cannot wrap a subtotal or the total negative.
	line := cart.FindItem(productID)
	newQty := int64(quantity)
	if line != nil {
		newQty += int64(line.Quantity)
	}
	if newQty > int64(product.StockQuantity) {
		return nil, domain.ErrInsufficientStock
	}
	subtotal := newQty * int64(product.PriceCents)
	if subtotal > math.MaxInt32 {
		return nil, domain.ErrCartTooLarge
	}
	total := subtotal
	for i := range cart.Items {
		if cart.Items[i].ProductID != productID {
			total += int64(cart.Items[i].SubtotalCents)
		}
	}
	if total > math.MaxInt32 {
		return nil, domain.ErrCartTooLarge
	}

	if line != nil {
		line.Quantity = int32(newQty)
		line.UnitPriceCents = product.PriceCents
		line.SubtotalCents = int32(subtotal)
	} else {
		cart.Items = append(cart.Items, domain.CartItem{
			ProductID:      productID,
			Quantity:       int32(newQty),
			UnitPriceCents: product.PriceCents,
			SubtotalCents:  int32(subtotal),
		})
	}
	cart.RecomputeTotal()

	if err := s.carts.SaveCart(ctx, cart); err != nil {
		return nil, domain.Internal(err, op, "failed to save cart")
	}

	view, err := s.resolve(ctx, cart)
	if err != nil {
		return nil, err
	}
	return &CartMutation{Cart: view, CreatedCart: created}, nil
}

func (s *cartService) RemoveItem(ctx context.Context, ownerID, productID uuid.UUID) (*domain.CartView, error) {
	const op = "cart.remove_item"

	cart, err := s.carts.GetCartByOwner(ctx, ownerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCartNotFound
		}
		return nil, domain.Internal(err, op, "failed to load cart")
	}

	if cart.FindItem(productID) == nil {
		return nil, domain.ErrItemNotInCart
	}

	kept := cart.Items[:0]
	for _, line := range cart.Items {
		if line.ProductID != productID {
			kept = append(kept, line)
		}
	}
	cart.Items = kept
	cart.RecomputeTotal()

	// An emptied cart stays around; only checkout or an explicit clear
	// removes the record.
	if err := s.carts.SaveCart(ctx, cart); err != nil {
		return nil, domain.Internal(err, op, "failed to save cart")
	}

	return s.resolve(ctx, cart)
}

func (s *cartService) DecrementItem(ctx context.Context, ownerID, productID uuid.UUID) (*domain.CartView, error) {
	const op = "cart.decrement_item"

	cart, err := s.carts.GetCartByOwner(ctx, ownerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCartNotFound
		}
		return nil, domain.Internal(err, op, "failed to load cart")
	}

	line := cart.FindItem(productID)
	if line == nil {
		return nil, domain.ErrItemNotInCart
	}

	if line.Quantity > 1 {
		line.Quantity--
		line.SubtotalCents = line.Quantity * line.UnitPriceCents
	} else {
		kept := cart.Items[:0]
		for _, l := range cart.Items {
			if l.ProductID != productID {
				kept = append(kept, l)
			}
		}
		cart.Items = kept
	}
	cart.RecomputeTotal()

	if err := s.carts.SaveCart(ctx, cart); err != nil {
		return nil, domain.Internal(err, op, "failed to save cart")
	}

	return s.resolve(ctx, cart)
}

func (s *cartService) ClearCart(ctx context.Context, ownerID uuid.UUID) error {
	const op = "cart.clear"

	if err := s.carts.DeleteCartByOwner(ctx, ownerID); err != nil {
		return domain.Internal(err, op, "failed to clear cart")
	}
	return nil
}

func (s *cartService) GetCart(ctx context.Context, ownerID uuid.UUID) (*domain.CartView, error) {
	const op = "cart.get"

	cart, err := s.carts.GetCartByOwner(ctx, ownerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &domain.CartView{Items: []domain.CartViewItem{}}, nil
		}
		return nil, domain.Internal(err, op, "failed to load cart")
	}

	return s.resolve(ctx, cart)
}

// resolve builds the display view for a cart, looking up current product
// details per line. Captured subtotals are never recomputed here; a product
// deleted since add-time still renders from its line.
func (s *cartService) resolve(ctx context.Context, cart *domain.Cart) (*domain.CartView, error) {
	const op = "cart.resolve"

	items := make([]domain.CartViewItem, 0, len(cart.Items))
	for _, line := range cart.Items {
		item := domain.CartViewItem{
			ProductID:      line.ProductID,
			Quantity:       line.Quantity,
			UnitPriceCents: line.UnitPriceCents,
			SubtotalCents:  line.SubtotalCents,
		}

		product, err := s.products.GetProduct(ctx, line.ProductID)
		if err != nil {
			if !errors.Is(err, pgx.ErrNoRows) {
				return nil, domain.Internal(err, op, "failed to load product")
			}
		} else {
			item.Name = product.Name
			item.Description = product.Description
			item.ImageKey = product.ImageKey
		}

		items = append(items, item)
	}

	return &domain.CartView{
		Items:      items,
		TotalCents: cart.TotalCents,
	}, nil
}
