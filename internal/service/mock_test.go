package service

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/TwinkleStar5/Rabbit-Doughnut-Server/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ============================================================================
// Mock Implementations
// ============================================================================

// mockProductStore is a test implementation of ProductStore. Unset functions
// behave like an empty catalog.
type mockProductStore struct {
	GetProductFunc    func(ctx context.Context, id uuid.UUID) (*domain.Product, error)
	ListProductsFunc  func(ctx context.Context) ([]domain.Product, error)
	CreateProductFunc func(ctx context.Context, params domain.CreateProductParams) (*domain.Product, error)
	UpdateProductFunc func(ctx context.Context, id uuid.UUID, params domain.UpdateProductParams) (*domain.Product, error)
	DeleteProductFunc func(ctx context.Context, id uuid.UUID) error
}

func (m *mockProductStore) GetProduct(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	if m.GetProductFunc != nil {
		return m.GetProductFunc(ctx, id)
	}
	return nil, pgx.ErrNoRows
}

func (m *mockProductStore) ListProducts(ctx context.Context) ([]domain.Product, error) {
	if m.ListProductsFunc != nil {
		return m.ListProductsFunc(ctx)
	}
	return nil, nil
}

func (m *mockProductStore) CreateProduct(ctx context.Context, params domain.CreateProductParams) (*domain.Product, error) {
	if m.CreateProductFunc != nil {
		return m.CreateProductFunc(ctx, params)
	}
	return nil, errors.New("CreateProduct not configured in mock")
}

func (m *mockProductStore) UpdateProduct(ctx context.Context, id uuid.UUID, params domain.UpdateProductParams) (*domain.Product, error) {
	if m.UpdateProductFunc != nil {
		return m.UpdateProductFunc(ctx, id, params)
	}
	return nil, errors.New("UpdateProduct not configured in mock")
}

func (m *mockProductStore) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	if m.DeleteProductFunc != nil {
		return m.DeleteProductFunc(ctx, id)
	}
	return nil
}

// catalogOf builds a mockProductStore serving the given products by ID.
func catalogOf(products ...domain.Product) *mockProductStore {
	byID := make(map[uuid.UUID]domain.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	return &mockProductStore{
		GetProductFunc: func(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
			p, ok := byID[id]
			if !ok {
				return nil, pgx.ErrNoRows
			}
			return &p, nil
		},
		ListProductsFunc: func(ctx context.Context) ([]domain.Product, error) {
			return products, nil
		},
	}
}

// memCartStore keeps carts in memory per owner. Error fields force the next
// matching call to fail, which lets tests assert that failed mutations leave
// the persisted cart untouched.
type memCartStore struct {
	carts map[uuid.UUID]*domain.Cart

	saveErr   error
	deleteErr error

	saveCalls   int
	deleteCalls int
}

func newMemCartStore() *memCartStore {
	return &memCartStore{carts: make(map[uuid.UUID]*domain.Cart)}
}

func (m *memCartStore) GetCartByOwner(ctx context.Context, ownerID uuid.UUID) (*domain.Cart, error) {
	cart, ok := m.carts[ownerID]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *cart
	copied.Items = append([]domain.CartItem(nil), cart.Items...)
	return &copied, nil
}

func (m *memCartStore) SaveCart(ctx context.Context, cart *domain.Cart) error {
	m.saveCalls++
	if m.saveErr != nil {
		return m.saveErr
	}
	if cart.ID == uuid.Nil {
		cart.ID = uuid.New()
	}
	stored := *cart
	stored.Items = append([]domain.CartItem(nil), cart.Items...)
	m.carts[cart.OwnerID] = &stored
	return nil
}

func (m *memCartStore) DeleteCartByOwner(ctx context.Context, ownerID uuid.UUID) error {
	m.deleteCalls++
	if m.deleteErr != nil {
		return m.deleteErr
	}
	delete(m.carts, ownerID)
	return nil
}

// mockOrderStore is a test implementation of OrderStore.
type mockOrderStore struct {
	CreateOrderFunc       func(ctx context.Context, order *domain.Order) error
	GetOrderFunc          func(ctx context.Context, id uuid.UUID) (*domain.Order, error)
	ListOrdersByOwnerFunc func(ctx context.Context, ownerID uuid.UUID) ([]domain.Order, error)
	ListOrdersFunc        func(ctx context.Context) ([]domain.Order, error)
	UpdateOrderStatusFunc func(ctx context.Context, id uuid.UUID, status domain.OrderStatus) error

	createdOrders []*domain.Order
}

func (m *mockOrderStore) CreateOrder(ctx context.Context, order *domain.Order) error {
	if m.CreateOrderFunc != nil {
		if err := m.CreateOrderFunc(ctx, order); err != nil {
			return err
		}
	}
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	m.createdOrders = append(m.createdOrders, order)
	return nil
}

func (m *mockOrderStore) GetOrder(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	if m.GetOrderFunc != nil {
		return m.GetOrderFunc(ctx, id)
	}
	return nil, pgx.ErrNoRows
}

func (m *mockOrderStore) ListOrdersByOwner(ctx context.Context, ownerID uuid.UUID) ([]domain.Order, error) {
	if m.ListOrdersByOwnerFunc != nil {
		return m.ListOrdersByOwnerFunc(ctx, ownerID)
	}
	return nil, nil
}

func (m *mockOrderStore) ListOrders(ctx context.Context) ([]domain.Order, error) {
	if m.ListOrdersFunc != nil {
		return m.ListOrdersFunc(ctx)
	}
	return nil, nil
}

func (m *mockOrderStore) UpdateOrderStatus(ctx context.Context, id uuid.UUID, status domain.OrderStatus) error {
	if m.UpdateOrderStatusFunc != nil {
		return m.UpdateOrderStatusFunc(ctx, id, status)
	}
	return nil
}

// mockUserStore is a test implementation of UserStore.
type mockUserStore struct {
	CreateUserFunc        func(ctx context.Context, user *domain.User) error
	GetUserByIDFunc       func(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetUserByUsernameFunc func(ctx context.Context, username string) (*domain.User, error)
	GetUserByEmailFunc    func(ctx context.Context, email string) (*domain.User, error)

	createdUsers []*domain.User
}

func (m *mockUserStore) CreateUser(ctx context.Context, user *domain.User) error {
	if m.CreateUserFunc != nil {
		if err := m.CreateUserFunc(ctx, user); err != nil {
			return err
		}
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	m.createdUsers = append(m.createdUsers, user)
	return nil
}

func (m *mockUserStore) GetUserByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	if m.GetUserByIDFunc != nil {
		return m.GetUserByIDFunc(ctx, id)
	}
	return nil, pgx.ErrNoRows
}

func (m *mockUserStore) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	if m.GetUserByUsernameFunc != nil {
		return m.GetUserByUsernameFunc(ctx, username)
	}
	return nil, pgx.ErrNoRows
}

func (m *mockUserStore) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.GetUserByEmailFunc != nil {
		return m.GetUserByEmailFunc(ctx, email)
	}
	return nil, pgx.ErrNoRows
}

// mockPublisher records published events.
type mockPublisher struct {
	orderCreatedErr error

	orders        []*domain.Order
	productEvents []string
}

func (m *mockPublisher) OrderCreated(ctx context.Context, order *domain.Order) error {
	if m.orderCreatedErr != nil {
		return m.orderCreatedErr
	}
	m.orders = append(m.orders, order)
	return nil
}

func (m *mockPublisher) ProductEvent(ctx context.Context, event string, product *domain.Product) error {
	m.productEvents = append(m.productEvents, event)
	return nil
}

// mockStorage is a test implementation of storage.Storage.
type mockStorage struct {
	putErr error

	putKeys     []string
	deletedKeys []string
}

func (m *mockStorage) Put(ctx context.Context, key string, content io.Reader, contentType string) (string, error) {
	if m.putErr != nil {
		return "", m.putErr
	}
	m.putKeys = append(m.putKeys, key)
	return "/public/" + key, nil
}

func (m *mockStorage) Get(ctx context.Context, key string) (io.ReadCloser, error) {
	return nil, errors.New("Get not configured in mock")
}

func (m *mockStorage) Delete(ctx context.Context, key string) error {
	m.deletedKeys = append(m.deletedKeys, key)
	return nil
}

func (m *mockStorage) URL(key string) string {
	return "/public/" + key
}

func (m *mockStorage) Exists(ctx context.Context, key string) (bool, error) {
	return false, nil
}

// ============================================================================
// Test Fixtures
// ============================================================================

func mustParseUUID(s string) uuid.UUID {
	return uuid.MustParse(s)
}

func makeTestOwnerID() uuid.UUID {
	return mustParseUUID("11111111-1111-1111-1111-111111111111")
}

func makeTestProduct(id string, priceCents, stock int32) domain.Product {
	return domain.Product{
		ID:            mustParseUUID(id),
		Name:          "Glazed Doughnut",
		Description:   "Classic glazed",
		PriceCents:    priceCents,
		StockQuantity: stock,
		IsActive:      true,
	}
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
