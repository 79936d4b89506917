package domain

import (
	"errors"
	"fmt"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		expected string
	}{
		{
			name: "message only",
			err: &Error{
				Code:    EINVALID,
				Message: "invalid input",
			},
			expected: "invalid input",
		},
		{
			name: "with operation",
			err: &Error{
				Code:    EINVALID,
				Op:      "cart.add_item",
				Message: "invalid input",
			},
			expected: "cart.add_item: invalid input",
		},
		{
			name: "with wrapped error",
			err: &Error{
				Code:    EINTERNAL,
				Op:      "cart.add_item",
				Message: "failed to save",
				Err:     errors.New("database connection failed"),
			},
			expected: "cart.add_item: failed to save: database connection failed",
		},
		{
			name: "wrapped error without op",
			err: &Error{
				Code:    EINTERNAL,
				Message: "failed to save",
				Err:     errors.New("database connection failed"),
			},
			expected: "failed to save: database connection failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.expected {
				t.Errorf("Error.Error() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	underlying := errors.New("underlying error")
	err := &Error{
		Code:    EINTERNAL,
		Message: "wrapped",
		Err:     underlying,
	}

	if unwrapped := err.Unwrap(); unwrapped != underlying {
		t.Errorf("Error.Unwrap() = %v, want %v", unwrapped, underlying)
	}

	if !errors.Is(err, underlying) {
		t.Error("errors.Is should find underlying error")
	}
}

func TestErrorCode(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"nil error", nil, ""},
		{"domain error", &Error{Code: ENOTFOUND, Message: "missing"}, ENOTFOUND},
		{"wrapped domain error", fmt.Errorf("outer: %w", &Error{Code: ECONFLICT}), ECONFLICT},
		{"plain error", errors.New("plain"), EINTERNAL},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ErrorCode(tt.err); got != tt.expected {
				t.Errorf("ErrorCode() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestErrorMessage(t *testing.T) {
	generic := "An internal error occurred. Please try again later."

	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"nil error", nil, ""},
		{"user-facing error", ErrInsufficientStock, "This product has sold out"},
		{"internal error is hidden", Internal(errors.New("pg: connection refused"), "db", "query failed"), generic},
		{"plain error is hidden", errors.New("pg: connection refused"), generic},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ErrorMessage(tt.err); got != tt.expected {
				t.Errorf("ErrorMessage() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestIsCode(t *testing.T) {
	if !IsCode(ErrCartNotFound, ENOTFOUND) {
		t.Error("expected ErrCartNotFound to match ENOTFOUND")
	}
	if IsCode(ErrCartNotFound, ECONFLICT) {
		t.Error("ErrCartNotFound should not match ECONFLICT")
	}
}

func TestWrapError(t *testing.T) {
	if WrapError(nil, EINTERNAL, "op", "msg") != nil {
		t.Error("wrapping nil should return nil")
	}

	underlying := errors.New("boom")
	err := WrapError(underlying, ECONFLICT, "cart.save", "save failed")
	if !errors.Is(err, underlying) {
		t.Error("wrapped error should unwrap to the underlying error")
	}
	if ErrorCode(err) != ECONFLICT {
		t.Errorf("code = %q, want %q", ErrorCode(err), ECONFLICT)
	}
	if ErrorOp(err) != "cart.save" {
		t.Errorf("op = %q, want %q", ErrorOp(err), "cart.save")
	}
}
