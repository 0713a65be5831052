package widget

import (
	"errors"
	"fmt"
	"testing"
)

func TestDomainError_Error(t *testing.T) {
	err := &DomainError{Code: ErrCodeValidation, Message: "invalid"}
	want := "VALIDATION_ERROR: invalid"
	if err.Error() != want {
		t.Fatalf("expected %q, got %q", want, err.Error())
	}

	wrapped := &DomainError{Code: ErrCodeNotFound, Message: "missing", Cause: err}
	wantWrapped := "NOT_FOUND: missing: VALIDATION_ERROR: invalid"
	if wrapped.Error() != wantWrapped {
		t.Fatalf("expected %q, got %q", wantWrapped, wrapped.Error())
	}
}

func TestDomainError_IsMatchesSentinelThroughContext(t *testing.T) {
	err := ErrExhausted.WithContext(map[string]interface{}{"generated": 100})

	if !errors.Is(err, ErrExhausted) {
		t.Fatal("expected errors.Is to match ErrExhausted")
	}
	if !errors.Is(fmt.Errorf("add number: %w", err), ErrExhausted) {
		t.Fatal("expected errors.Is to see through fmt wrapping")
	}
	if errors.Is(err, fmt.Errorf("other")) {
		t.Fatal("expected non-domain errors to return false")
	}
}

func TestDomainError_WithContextCopies(t *testing.T) {
	base := &DomainError{Code: ErrCodeNotFound, Message: "entry not found", Context: map[string]interface{}{"id": 1}}
	updated := base.WithContext(map[string]interface{}{"value": 7})

	if updated == base {
		t.Fatal("WithContext should return a new instance")
	}
	if updated.Context["id"] != 1 || updated.Context["value"] != 7 {
		t.Fatalf("context merge failed: %+v", updated.Context)
	}
	if _, leaked := base.Context["value"]; leaked {
		t.Fatal("WithContext mutated the receiver")
	}
}

func TestDomainError_NilReceiver(t *testing.T) {
	var err *DomainError
	if got := err.Error(); got != "<nil>" {
		t.Fatalf("expected <nil>, got %q", got)
	}
	if err.Unwrap() != nil {
		t.Fatal("expected nil cause")
	}
	if err.WithContext(nil) != nil {
		t.Fatal("expected nil clone")
	}
}

func TestHasCode(t *testing.T) {
	wrapped := fmt.Errorf("select: %w", newEntryNotFoundError(nil))
	if !HasCode(wrapped, ErrCodeNotFound) {
		t.Fatal("expected NOT_FOUND code")
	}
	if HasCode(wrapped, ErrCodeExhausted) {
		t.Fatal("unexpected EXHAUSTED code")
	}
	if HasCode(errors.New("plain"), ErrCodeNotFound) {
		t.Fatal("plain errors carry no code")
	}
}
