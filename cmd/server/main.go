package main

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"

	"github.com/TwinkleStar5/Rabbit-Doughnut-Server/internal"
	"github.com/TwinkleStar5/Rabbit-Doughnut-Server/internal/auth"
	"github.com/TwinkleStar5/Rabbit-Doughnut-Server/internal/bootstrap"
	"github.com/TwinkleStar5/Rabbit-Doughnut-Server/internal/events"
	"github.com/TwinkleStar5/Rabbit-Doughnut-Server/internal/handler"
	"github.com/TwinkleStar5/Rabbit-Doughnut-Server/internal/middleware"
	"github.com/TwinkleStar5/Rabbit-Doughnut-Server/internal/postgres"
	"github.com/TwinkleStar5/Rabbit-Doughnut-Server/internal/service"
	"github.com/TwinkleStar5/Rabbit-Doughnut-Server/internal/storage"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
)

func run() error {
	ctx := context.Background()

	// Load configuration
	cfg, err := internal.NewConfig()
	if err != nil {
		return fmt.Errorf("config initialization failed: %w", err)
	}

	// Configure logger
	logger := internal.NewLogger(os.Stdout, cfg.Env, cfg.LogLevel)

	// Initialize database/sql connection for migrations
	logger.Info("Connecting to database...")
	sqlDB, err := sql.Open("pgx", cfg.DatabaseUrl)
	if err != nil {
		return fmt.Errorf("database connection failed: %w", err)
	}
	defer sqlDB.Close()

	if err := sqlDB.Ping(); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	logger.Info("Database connection established")

	// Run migrations
	logger.Info("Running database migrations...")
	if err := internal.RunMigrations(sqlDB); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	logger.Info("Database migrations completed successfully")

	// Initialize pgx connection pool for application
	pool, err := pgxpool.New(ctx, cfg.DatabaseUrl)
	if err != nil {
		return fmt.Errorf("failed to create connection pool: %w", err)
	}
	defer pool.Close()

	store := postgres.NewStore(pool)

	// Seed the admin account on first startup
	if err := bootstrap.EnsureAdmin(ctx, store, cfg.Admin, logger); err != nil {
		return fmt.Errorf("admin bootstrap failed: %w", err)
	}

	// Token issuer for login and the auth middleware
	tokens, err := auth.NewTokenIssuer(cfg.JWTSecret)
	if err != nil {
		return fmt.Errorf("failed to initialize token issuer: %w", err)
	}

	// Product image storage
	files, err := storage.NewLocalStorage(cfg.Storage.LocalPath, cfg.Storage.LocalURL)
	if err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}

	// Event publisher (no-op unless NATS is configured)
	var publisher events.Publisher = events.NoopPublisher{}
	if cfg.Nats.Enabled {
		natsPublisher, err := events.NewNatsPublisher(cfg.Nats.URL)
		if err != nil {
			return fmt.Errorf("failed to connect event publisher: %w", err)
		}
		defer natsPublisher.Close()
		publisher = natsPublisher
		logger.Info("Event publisher connected", "url", cfg.Nats.URL)
	}

	// Initialize services
	cartService := service.NewCartService(store, store)
	checkoutService := service.NewCheckoutService(store, store, store, publisher, logger)
	orderService := service.NewOrderService(store)
	productService := service.NewProductService(store, files, publisher, logger)
	userService := service.NewUserService(store, tokens)

	metrics := middleware.NewMetrics("rabbit_doughnut")

	e := handler.NewRouter(handler.RouterConfig{
		Logger:    logger,
		Tokens:    tokens,
		Metrics:   metrics,
		Users:     handler.NewUserHandler(userService),
		Products:  handler.NewProductHandler(productService),
		Carts:     handler.NewCartHandler(cartService),
		Orders:    handler.NewOrderHandler(checkoutService, orderService),
		StaticDir: cfg.Storage.LocalPath,
		StaticURL: cfg.Storage.LocalURL,
	})

	addr := fmt.Sprintf(":%d", cfg.Port)
	logger.Info("Starting server", "addr", addr, "env", cfg.Env)
	return e.Start(addr)
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}
