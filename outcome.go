package notation

import (
	"errors"
	"fmt"
)

// ErrNotFound is reported when the value of a NotFound outcome is read.
var ErrNotFound = errors.New("notation: value not found")

// Outcome records whether a value was located. A found outcome may wrap a
// nil value; that still counts as found. The zero Outcome is NotFound.
type Outcome[T any] struct {
	value T
	found bool
}

// Found returns an outcome holding v.
func Found[T any](v T) Outcome[T] { return Outcome[T]{value: v, found: true} }

// NotFound returns the outcome for a missing value.
func NotFound[T any]() Outcome[T] { return Outcome[T]{} }

// IsFound reports whether a value was located.
func (o Outcome[T]) IsFound() bool { return o.found }

// Value returns the located value. It panics on a NotFound outcome; callers
// must check IsFound first or use Get/TryValue.
func (o Outcome[T]) Value() T {
	if !o.found {
		panic(fmt.Errorf("invalid state: %w", ErrNotFound))
	}
	return o.value
}

// Get returns the value and whether it was found.
func (o Outcome[T]) Get() (T, bool) { return o.value, o.found }

// TryValue returns the value, or ErrNotFound.
func (o Outcome[T]) TryValue() (T, error) {
	if !o.found {
		var zero T
		return zero, ErrNotFound
	}
	return o.value, nil
}

// String renders the outcome for diagnostics.
func (o Outcome[T]) String() string {
	if !o.found {
		return "NotFound"
	}
	return fmt.Sprintf("Found(%v)", o.value)
}

// Lookup returns Found(m[key]) when key is present in m, even if the stored
// value is nil, and NotFound otherwise.
func Lookup(m map[string]any, key string) Outcome[any] {
	v, ok := m[key]
	if !ok {
		return NotFound[any]()
	}
	return Found(v)
}
