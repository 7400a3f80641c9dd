package integrity

import (
	"errors"
	"fmt"
	"testing"

	"promana-go/pkg/optional"
)

func TestViolationWrapsConstraintViolation(t *testing.T) {
	err := fmt.Errorf("create project: %w", Violate("budget", "must be greater than or equal to 0"))

	if !errors.Is(err, ErrConstraintViolation) {
		t.Fatalf("expected ErrConstraintViolation, got %v", err)
	}

	var violation *Violation
	if !errors.As(err, &violation) {
		t.Fatalf("expected *Violation in chain")
	}
	if violation.Field != "budget" {
		t.Fatalf("expected budget field, got %q", violation.Field)
	}
}

func TestNonNegative(t *testing.T) {
	negative := -0.5
	zero := 0.0

	if err := NonNegative("time", nil); err != nil {
		t.Fatalf("nil must be accepted, got %v", err)
	}
	if err := NonNegative("time", &zero); err != nil {
		t.Fatalf("zero must be accepted, got %v", err)
	}
	if err := NonNegative("time", &negative); !errors.Is(err, ErrConstraintViolation) {
		t.Fatalf("expected constraint violation, got %v", err)
	}
}

func TestAssignName(t *testing.T) {
	name := "old"

	if err := AssignName(optional.Value[string]{}, &name); err != nil || name != "old" {
		t.Fatalf("absent name must be ignored, got %q err=%v", name, err)
	}
	if err := AssignName(optional.Of("  new  "), &name); err != nil || name != "new" {
		t.Fatalf("expected trimmed name, got %q err=%v", name, err)
	}
	if err := AssignName(optional.Of("   "), &name); !errors.Is(err, ErrConstraintViolation) {
		t.Fatalf("expected violation for blank name, got %v", err)
	}
	if err := AssignName(optional.Null[string](), &name); !errors.Is(err, ErrConstraintViolation) {
		t.Fatalf("expected violation for null name, got %v", err)
	}
	if name != "new" {
		t.Fatalf("rejected names must not be assigned, got %q", name)
	}
}
