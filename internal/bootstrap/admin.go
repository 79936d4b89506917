// Package bootstrap handles one-time initialization tasks for the application.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/TwinkleStar5/Rabbit-Doughnut-Server/internal"
	"github.com/TwinkleStar5/Rabbit-Doughnut-Server/internal/auth"
	"github.com/TwinkleStar5/Rabbit-Doughnut-Server/internal/domain"
	"github.com/TwinkleStar5/Rabbit-Doughnut-Server/internal/service"
	"github.com/jackc/pgx/v5"
)

// EnsureAdmin creates the shop admin account if it doesn't exist.
// This function is idempotent - safe to call on every startup.
//
// If the admin already exists (by username), it returns without error.
// If the config has no admin credentials, it logs a warning and skips,
// which allows running without an admin in dev.
func EnsureAdmin(ctx context.Context, users service.UserStore, cfg internal.AdminConfig, logger *slog.Logger) error {
	if cfg.Username == "" || cfg.Password == "" {
		logger.Warn("bootstrap: skipping admin creation - ADMIN_USERNAME or ADMIN_PASSWORD not set",
			"hint", "Set these environment variables to create an admin account on first startup",
		)
		return nil
	}
	if len(cfg.Password) < 12 {
		return errors.New("admin password must be at least 12 characters")
	}

	_, err := users.GetUserByUsername(ctx, cfg.Username)
	if err == nil {
		logger.Info("bootstrap: admin account already exists", "username", cfg.Username)
		return nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("failed to check for existing admin: %w", err)
	}

	hash, err := auth.HashPassword(cfg.Password)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := &domain.User{
		FullName:     cfg.FullName,
		Username:     cfg.Username,
		Email:        cfg.Email,
		PasswordHash: hash,
		IsAdmin:      true,
	}
	if err := users.CreateUser(ctx, admin); err != nil {
		return fmt.Errorf("failed to create admin account: %w", err)
	}

	logger.Info("bootstrap: admin account created", "username", cfg.Username)
	return nil
}
