// AngelaMos | 2026
// validation_test.go

package core

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
)

func TestFormatValidationError(t *testing.T) {
	type payload struct {
		Email string  `validate:"required,email"`
		Price float64 `validate:"gt=0"`
	}

	v := validator.New(validator.WithRequiredStructEnabled())
	err := v.Struct(payload{Email: "", Price: 0})
	if err == nil {
		t.Fatal("expected validation error")
	}

	want := "email: required; price: gt=0"
	if got := FormatValidationError(err); got != want {
		t.Errorf("FormatValidationError = %q, want %q", got, want)
	}

	if got := FormatValidationError(errors.New("x")); got != "invalid request" {
		t.Errorf("non-validation error = %q", got)
	}
}

func TestIsValidID(t *testing.T) {
	if !IsValidID("6f1c2b7e-4d1a-4b0f-9a51-2f0e3b1c9d10") {
		t.Error("valid uuid rejected")
	}
	for _, id := range []string{"", "64a1f0c2e4b0a1b2c3d4e5f6", "not-an-id"} {
		if IsValidID(id) {
			t.Errorf("IsValidID(%q) = true", id)
		}
	}
}
