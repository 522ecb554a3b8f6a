package service

import (
	"errors"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation"
)

func TestValidationFailure(t *testing.T) {
	if validationFailure(nil) != nil {
		t.Fatalf("nil input must stay nil")
	}

	err := validationFailure(validation.Errors{
		"email":    errors.New("cannot be blank"),
		"password": errors.New("cannot be blank"),
	})
	var ve *ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
	if ve.Fields["email"] != "cannot be blank" || len(ve.Fields) != 2 {
		t.Fatalf("unexpected fields: %v", ve.Fields)
	}
	want := "validation failed: email: cannot be blank; password: cannot be blank"
	if ve.Error() != want {
		t.Fatalf("message: got %q, want %q", ve.Error(), want)
	}

	other := validationFailure(errors.New("rule misconfigured"))
	if errors.As(other, &ve) {
		t.Fatalf("non-validation errors must not become ValidationError")
	}
}
