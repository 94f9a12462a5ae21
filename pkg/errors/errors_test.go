package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeNotFound, "no hwmon directory found")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if err.Code != ErrCodeNotFound {
		t.Errorf("expected code %s, got %s", ErrCodeNotFound, err.Code)
	}
	if err.Message != "no hwmon directory found" {
		t.Errorf("expected message 'no hwmon directory found', got %s", err.Message)
	}
	if err.Cause != nil {
		t.Errorf("expected nil cause, got %v", err.Cause)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := Wrap(ErrCodeIO, "operation failed", cause)

	if err.Code != ErrCodeIO {
		t.Errorf("expected code %s, got %s", ErrCodeIO, err.Code)
	}
	if !errors.Is(err, cause) {
		t.Errorf("expected cause to be wrapped")
	}
}

func TestWrapWithContext(t *testing.T) {
	cause := errors.New("invalid syntax")
	ctx := map[string]interface{}{
		"path":   "/sys/class/drm/card0/device/gpu_busy_percent",
		"device": "card0",
	}

	err := WrapWithContext(ErrCodeParse, "metric parse failed", cause, ctx)

	if err.Code != ErrCodeParse {
		t.Errorf("expected code %s, got %s", ErrCodeParse, err.Code)
	}
	if err.Context == nil {
		t.Fatal("expected context to be set")
	}
	if err.Context["device"] != "card0" {
		t.Errorf("expected device to be card0")
	}
}

func TestError(t *testing.T) {
	tests := []struct {
		name     string
		err      *StructuredError
		expected string
	}{
		{
			name:     "error without cause",
			err:      New(ErrCodeNotFound, "not found"),
			expected: "[NOT_FOUND] not found",
		},
		{
			name:     "error with cause",
			err:      Wrap(ErrCodeInternal, "failed", errors.New("root cause")),
			expected: "[INTERNAL] failed: root cause",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.err.Error()
			if got != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, got)
			}
		})
	}
}

func TestUnwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := Wrap(ErrCodeInternal, "wrapped", cause)

	unwrapped := err.Unwrap()
	if !errors.Is(unwrapped, cause) {
		t.Errorf("expected unwrapped error to be original cause")
	}

	if !errors.Is(err, cause) {
		t.Errorf("errors.Is should work with Unwrap")
	}
}

func TestHasCode(t *testing.T) {
	err := New(ErrCodeParse, "bad value")

	if !HasCode(err, ErrCodeParse) {
		t.Error("expected HasCode to match the error's own code")
	}
	if HasCode(err, ErrCodeIO) {
		t.Error("expected HasCode to reject a different code")
	}

	wrapped := fmt.Errorf("reading device: %w", err)
	if !HasCode(wrapped, ErrCodeParse) {
		t.Error("expected HasCode to see through fmt.Errorf wrapping")
	}

	if HasCode(errors.New("plain"), ErrCodeParse) {
		t.Error("expected HasCode to reject non-structured errors")
	}
}

func TestErrorCodes(t *testing.T) {
	codes := []ErrorCode{
		ErrCodeNotFound,
		ErrCodeIO,
		ErrCodeParse,
		ErrCodeInternal,
	}

	for _, code := range codes {
		if string(code) == "" {
			t.Errorf("error code should not be empty: %v", code)
		}
	}
}
