// Package optional holds a JSON field wrapper that tells apart a missing key,
// an explicit null and a value.
package optional

import (
	"bytes"
	"encoding/json"
)

// Value is the zero value when the key was absent from the payload.
type Value[T any] struct {
	Set  bool
	Null bool
	V    T
}

func Of[T any](v T) Value[T] {
	return Value[T]{Set: true, V: v}
}

func Null[T any]() Value[T] {
	return Value[T]{Set: true, Null: true}
}

// UnmarshalJSON is only invoked by encoding/json when the key is present.
func (v *Value[T]) UnmarshalJSON(data []byte) error {
	v.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		v.Null = true
		var zero T
		v.V = zero
		return nil
	}
	v.Null = false
	return json.Unmarshal(data, &v.V)
}

// Ptr returns nil for absent or null values.
func (v Value[T]) Ptr() *T {
	if !v.Set || v.Null {
		return nil
	}
	out := v.V
	return &out
}

// Apply writes the value into dst when the key was present. A null clears dst.
func (v Value[T]) Apply(dst **T) {
	if !v.Set {
		return
	}
	*dst = v.Ptr()
}

// Map converts a present value, keeping the absent and null states.
func Map[T, U any](v Value[T], fn func(T) (U, error)) (Value[U], error) {
	if !v.Set {
		return Value[U]{}, nil
	}
	if v.Null {
		return Null[U](), nil
	}
	out, err := fn(v.V)
	if err != nil {
		return Value[U]{}, err
	}
	return Of(out), nil
}
