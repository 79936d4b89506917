package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"

	"github.com/TwinkleStar5/Rabbit-Doughnut-Server/internal/domain"
	"github.com/TwinkleStar5/Rabbit-Doughnut-Server/internal/events"
	"github.com/TwinkleStar5/Rabbit-Doughnut-Server/internal/storage"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ProductService provides catalog management. Reads are public; writes are
// admin operations enforced at the route.
type ProductService interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*domain.Product, error)

	// CreateProduct stores a new product, saving the image (if any) first.
	CreateProduct(ctx context.Context, params domain.CreateProductParams, image *ImageUpload) (*domain.Product, error)

	// UpdateProduct applies the allow-listed fields. A new image replaces
	// and deletes the previous file.
	UpdateProduct(ctx context.Context, id uuid.UUID, params domain.UpdateProductParams, image *ImageUpload) (*domain.Product, error)

	// DeleteProduct removes the product and its stored image.
	DeleteProduct(ctx context.Context, id uuid.UUID) error

	// ToggleActive flips the product's active flag.
	ToggleActive(ctx context.Context, id uuid.UUID) (*domain.Product, error)
}

// ImageUpload is an incoming product image.
type ImageUpload struct {
	Filename    string
	ContentType string
	Content     io.Reader
}

type productService struct {
	products  ProductStore
	files     storage.Storage
	publisher events.Publisher
	logger    *slog.Logger
}

// NewProductService creates a new ProductService instance.
func NewProductService(products ProductStore, files storage.Storage, publisher events.Publisher, logger *slog.Logger) ProductService {
	return &productService{
		products:  products,
		files:     files,
		publisher: publisher,
		logger:    logger,
	}
}

func (s *productService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	const op = "product.list"

	products, err := s.products.ListProducts(ctx)
	if err != nil {
		return nil, domain.Internal(err, op, "failed to list products")
	}
	return products, nil
}

func (s *productService) GetProduct(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	const op = "product.get"

	product, err := s.products.GetProduct(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProductNotFound
		}
		return nil, domain.Internal(err, op, "failed to load product")
	}
	return product, nil
}

func (s *productService) CreateProduct(ctx context.Context, params domain.CreateProductParams, image *ImageUpload) (*domain.Product, error) {
	const op = "product.create"

	if params.Name == "" {
		return nil, domain.Invalid(op, "name is required")
	}
	if params.PriceCents < 0 {
		return nil, domain.Invalid(op, "price must not be negative")
	}
	if params.StockQuantity < 0 {
		return nil, domain.Invalid(op, "stock quantity must not be negative")
	}

	if image != nil {
		key, err := s.storeImage(ctx, image)
		if err != nil {
			return nil, domain.Internal(err, op, "failed to store image")
		}
		params.ImageKey = key
	}

	product, err := s.products.CreateProduct(ctx, params)
	if err != nil {
		return nil, domain.Internal(err, op, "failed to create product")
	}

	s.publish(ctx, events.ProductCreated, product)
	return product, nil
}

func (s *productService) UpdateProduct(ctx context.Context, id uuid.UUID, params domain.UpdateProductParams, image *ImageUpload) (*domain.Product, error) {
	const op = "product.update"

	existing, err := s.products.GetProduct(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProductNotFound
		}
		return nil, domain.Internal(err, op, "failed to load product")
	}

	if params.PriceCents != nil && *params.PriceCents < 0 {
		return nil, domain.Invalid(op, "price must not be negative")
	}
	if params.StockQuantity != nil && *params.StockQuantity < 0 {
		return nil, domain.Invalid(op, "stock quantity must not be negative")
	}

	if image != nil {
		key, err := s.storeImage(ctx, image)
		if err != nil {
			return nil, domain.Internal(err, op, "failed to store image")
		}
		params.ImageKey = &key

		if existing.ImageKey != "" {
			if err := s.files.Delete(ctx, existing.ImageKey); err != nil {
				s.logger.Warn("failed to delete replaced product image",
					slog.String("key", existing.ImageKey),
					slog.String("error", err.Error()),
				)
			}
		}
	}

	product, err := s.products.UpdateProduct(ctx, id, params)
	if err != nil {
		return nil, domain.Internal(err, op, "failed to update product")
	}

	s.publish(ctx, events.ProductUpdated, product)
	return product, nil
}

func (s *productService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	const op = "product.delete"

	product, err := s.products.GetProduct(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrProductNotFound
		}
		return domain.Internal(err, op, "failed to load product")
	}

	if err := s.products.DeleteProduct(ctx, id); err != nil {
		return domain.Internal(err, op, "failed to delete product")
	}

	if product.ImageKey != "" {
		if err := s.files.Delete(ctx, product.ImageKey); err != nil {
			s.logger.Warn("failed to delete product image",
				slog.String("key", product.ImageKey),
				slog.String("error", err.Error()),
			)
		}
	}

	s.publish(ctx, events.ProductDeleted, product)
	return nil
}

func (s *productService) ToggleActive(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	const op = "product.toggle_active"

	existing, err := s.products.GetProduct(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProductNotFound
		}
		return nil, domain.Internal(err, op, "failed to load product")
	}

	active := !existing.IsActive
	product, err := s.products.UpdateProduct(ctx, id, domain.UpdateProductParams{IsActive: &active})
	if err != nil {
		return nil, domain.Internal(err, op, "failed to update product")
	}

	s.publish(ctx, events.ProductUpdated, product)
	return product, nil
}

// storeImage saves an upload under a fresh key derived from its filename.
func (s *productService) storeImage(ctx context.Context, image *ImageUpload) (string, error) {
	name := strings.ReplaceAll(image.Filename, "/", "_")
	key := uuid.NewString() + "-" + name
	if _, err := s.files.Put(ctx, key, image.Content, image.ContentType); err != nil {
		return "", err
	}
	return key, nil
}

func (s *productService) publish(ctx context.Context, event string, product *domain.Product) {
	if err := s.publisher.ProductEvent(ctx, event, product); err != nil {
		s.logger.Warn("failed to publish product event",
			slog.String("event", event),
			slog.String("product_id", product.ID.String()),
			slog.String("error", err.Error()),
		)
	}
}
