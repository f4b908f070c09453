package testutil

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	apperrors "finagent/internal/errors"
)

// AssertAppError checks that err is an *AppError with the expected error code.
func AssertAppError(t *testing.T, err error, expectedCode string) {
	t.Helper()

	var appErr *apperrors.AppError
	switch {
	case err == nil:
		t.Fatalf("expected AppError with code %q, got nil", expectedCode)
	case !errors.As(err, &appErr):
		t.Fatalf("expected *AppError, got %T: %v", err, err)
	case appErr.Code != expectedCode:
		t.Errorf("expected error code %q, got %q (message: %s)", expectedCode, appErr.Code, appErr.Message)
	}
}

// AssertNoError fails the test if err is not nil.
func AssertNoError(t *testing.T, err error) {
	t.Helper()

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// AssertDecimal compares by value, so "10.50" matches "10.5".
func AssertDecimal(t *testing.T, label string, got decimal.Decimal, want string) {
	t.Helper()

	if !got.Equal(decimal.RequireFromString(want)) {
		t.Errorf("%s: expected %s, got %s", label, want, got)
	}
}

// AssertDecimalPtr is AssertDecimal for optional values. An empty want
// expects nil.
func AssertDecimalPtr(t *testing.T, label string, got *decimal.Decimal, want string) {
	t.Helper()

	switch {
	case want == "" && got != nil:
		t.Errorf("%s: expected nil, got %s", label, got)
	case want != "" && got == nil:
		t.Errorf("%s: expected %s, got nil", label, want)
	case got != nil:
		AssertDecimal(t, label, *got, want)
	}
}
