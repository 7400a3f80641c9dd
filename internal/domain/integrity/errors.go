// Package integrity holds the errors shared by every domain package when a
// write would break a store invariant.
package integrity

import (
	"errors"
	"fmt"
	"strings"

	"promana-go/pkg/optional"
)

var (
	ErrAlreadyExists       = errors.New("already exists")
	ErrConstraintViolation = errors.New("constraint violation")
)

// Violation describes a single rejected field.
type Violation struct {
	Field  string
	Reason string
}

func (v *Violation) Error() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Reason)
}

func (v *Violation) Unwrap() error {
	return ErrConstraintViolation
}

func Violate(field, reason string) error {
	return &Violation{Field: field, Reason: reason}
}

// NonNegative rejects negative values. nil is allowed.
func NonNegative(field string, value *float64) error {
	if value != nil && *value < 0 {
		return Violate(field, "must be greater than or equal to 0")
	}
	return nil
}

// AssignName copies a present name into dst. Null and blank names are rejected.
func AssignName(value optional.Value[string], dst *string) error {
	if !value.Set {
		return nil
	}
	name := strings.TrimSpace(value.V)
	if value.Null || name == "" {
		return Violate("name", "is required")
	}
	*dst = name
	return nil
}

// Reference names a nullable foreign key column that must be cleared when the
// row it points at is deleted.
type Reference struct {
	Table  string
	Column string
}
