package middleware

import (
	"context"
	"log/slog"
	"time"

	"github.com/TwinkleStar5/Rabbit-Doughnut-Server/internal/domain"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

type contextKey string

// loggerContextKey is the context key for storing the request-scoped logger.
const loggerContextKey contextKey = "logger"

// RequestLogger injects a request-scoped logger into the context and logs
// request completion. Place it after echo's RequestID middleware so the
// request ID attribute is available.
func RequestLogger(baseLogger *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			req := c.Request()

			requestLogger := baseLogger.With(
				slog.String("method", req.Method),
				slog.String("path", req.URL.Path),
			)
			if requestID := c.Response().Header().Get(echo.HeaderXRequestID); requestID != "" {
				requestLogger = requestLogger.With(slog.String("request_id", requestID))
			}

			ctx := context.WithValue(req.Context(), loggerContextKey, requestLogger)
			c.SetRequest(req.WithContext(ctx))

			err := next(c)

			attrs := []any{
				slog.Int("status", c.Response().Status),
				slog.Duration("duration", time.Since(start)),
			}
			if identity := domain.IdentityFromContext(c.Request().Context()); identity != nil {
				attrs = append(attrs, slog.String("user_id", identity.UserID.String()))
			}
			if err != nil {
				attrs = append(attrs, slog.String("error", err.Error()))
				requestLogger.Warn("request failed", attrs...)
			} else {
				requestLogger.Info("request completed", attrs...)
			}

			return err
		}
	}
}

// GetLogger retrieves the request-scoped logger from the context.
// If no logger is found, returns slog.Default().
func GetLogger(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerContextKey).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// RequestID returns echo's request ID middleware with defaults.
func RequestID() echo.MiddlewareFunc {
	return echomw.RequestID()
}

// Recover returns echo's panic recovery middleware with defaults.
func Recover() echo.MiddlewareFunc {
	return echomw.Recover()
}
