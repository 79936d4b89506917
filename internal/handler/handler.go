// Package handler exposes the storefront over HTTP with echo. Handlers
// translate requests into service calls and domain errors into stable JSON
// error responses.
package handler

import (
	"log/slog"
	"net/http"

	"github.com/TwinkleStar5/Rabbit-Doughnut-Server/internal/domain"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// ErrorCodeToHTTPStatus maps a domain error code to an HTTP status code.
func ErrorCodeToHTTPStatus(code string) int {
	switch code {
	case domain.EINVALID:
		return http.StatusBadRequest
	case domain.EUNAUTHORIZED:
		return http.StatusUnauthorized
	case domain.EFORBIDDEN:
		return http.StatusForbidden
	case domain.ENOTFOUND:
		return http.StatusNotFound
	case domain.ECONFLICT:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// ErrorResponse is the JSON body returned for every failed request. The
// code is stable; the message is safe to show to users.
type ErrorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// NewErrorHandler builds echo's central error handler. Domain errors map to
// their status and user-facing message; anything else becomes an opaque 500
// so internals never leak to callers.
func NewErrorHandler(logger *slog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var resp ErrorResponse
		status := http.StatusInternalServerError

		if he, ok := err.(*echo.HTTPError); ok {
			status = he.Code
			resp.Error.Code = http.StatusText(he.Code)
			if msg, ok := he.Message.(string); ok {
				resp.Error.Message = msg
			} else {
				resp.Error.Message = http.StatusText(he.Code)
			}
		} else {
			code := domain.ErrorCode(err)
			status = ErrorCodeToHTTPStatus(code)
			resp.Error.Code = code
			resp.Error.Message = domain.ErrorMessage(err)
		}

		if status >= http.StatusInternalServerError {
			logger.Error("request error",
				slog.String("op", domain.ErrorOp(err)),
				slog.String("error", err.Error()),
			)
		}

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(status)
			return
		}
		_ = c.JSON(status, resp)
	}
}

// Validator adapts go-playground/validator to echo's Validator interface.
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates the request validator.
func NewValidator() *Validator {
	return &Validator{validate: validator.New()}
}

// Validate implements echo.Validator. Failures surface as EINVALID domain
// errors so they render through the central error handler.
func (v *Validator) Validate(i interface{}) error {
	if err := v.validate.Struct(i); err != nil {
		if fields, ok := err.(validator.ValidationErrors); ok && len(fields) > 0 {
			f := fields[0]
			return domain.Errorf(domain.EINVALID, "request.validate",
				"invalid field %s: failed on %s", f.Field(), f.Tag())
		}
		return domain.Invalid("request.validate", "invalid request body")
	}
	return nil
}

// bindAndValidate decodes the request body and runs struct validation.
func bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return domain.Invalid("request.bind", "invalid request body")
	}
	return c.Validate(req)
}
