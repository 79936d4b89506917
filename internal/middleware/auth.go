// Package middleware provides the echo middleware chain: authentication,
// role checks, request-scoped logging, and Prometheus metrics.
package middleware

import (
	"strings"

	"github.com/TwinkleStar5/Rabbit-Doughnut-Server/internal/auth"
	"github.com/TwinkleStar5/Rabbit-Doughnut-Server/internal/domain"
	"github.com/labstack/echo/v4"
)

// TokenHeader is the request header carrying the access token.
const TokenHeader = "x-auth-token"

// RequireAuth verifies the access token and stores the identity in the
// request context. Requests without a valid token are rejected.
func RequireAuth(tokens *auth.TokenIssuer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := c.Request().Header.Get(TokenHeader)
			if raw == "" {
				// Fall back to the standard Authorization header.
				bearer := c.Request().Header.Get(echo.HeaderAuthorization)
				raw = strings.TrimPrefix(bearer, "bearer ")
				raw = strings.TrimPrefix(raw, "Bearer ")
			}
			if raw == "" {
				return domain.Unauthorized("auth.require", "Unauthorized")
			}

			identity, err := tokens.Verify(raw)
			if err != nil {
				return domain.Unauthorized("auth.require", "Unauthorized")
			}

			ctx := domain.NewContextWithIdentity(c.Request().Context(), identity)
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}

// RequireCustomer rejects non-customer callers. Admin accounts manage the
// shop; they do not own carts or place orders.
func RequireCustomer() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity := domain.IdentityFromContext(c.Request().Context())
			if identity == nil {
				return domain.Unauthorized("auth.customer", "Unauthorized")
			}
			if identity.Role != domain.RoleCustomer {
				return domain.ErrCustomersOnly
			}
			return next(c)
		}
	}
}

// RequireAdmin rejects non-admin callers.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity := domain.IdentityFromContext(c.Request().Context())
			if identity == nil {
				return domain.Unauthorized("auth.admin", "Unauthorized")
			}
			if identity.Role != domain.RoleAdmin {
				return domain.Forbidden("auth.admin", "Only Admin")
			}
			return next(c)
		}
	}
}
