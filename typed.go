package notation

import (
	"context"
	"reflect"
)

// TypeConverter converts notations that are already of the Go type N.
type TypeConverter[N, T any] interface {
	ConvertType(ctx context.Context, n N) (T, error)
	Describer
}

// TypeConverterFunc adapts a function to a TypeConverter described as
// "Instances of N".
type TypeConverterFunc[N, T any] func(ctx context.Context, n N) (T, error)

func (f TypeConverterFunc[N, T]) ConvertType(ctx context.Context, n N) (T, error) { return f(ctx, n) }

func (f TypeConverterFunc[N, T]) Describe(d *Diagnostics) { d.Candidate(InstancesOf[N]()) }

// Described overrides the description of c.
func Described[N, T any](c TypeConverter[N, T], label string, examples ...string) TypeConverter[N, T] {
	return &describedConverter[N, T]{inner: c, label: label, examples: examples}
}

type describedConverter[N, T any] struct {
	inner    TypeConverter[N, T]
	label    string
	examples []string
}

func (c *describedConverter[N, T]) ConvertType(ctx context.Context, n N) (T, error) {
	return c.inner.ConvertType(ctx, n)
}

func (c *describedConverter[N, T]) Describe(d *Diagnostics) {
	s := d.Candidate(c.label)
	for _, ex := range c.examples {
		s = s.Example(ex)
	}
}

// Typed restricts c to notations of type N. The type check is a plain type
// assertion; a nil notation never matches, and neither does a nil pointer,
// map, slice, func or channel of type N.
func Typed[N, T any](c TypeConverter[N, T]) Converter[T] {
	return &typedConverter[N, T]{inner: c}
}

type typedConverter[N, T any] struct {
	inner TypeConverter[N, T]
}

func (c *typedConverter[N, T]) Accepts(notation any) bool {
	_, ok := notation.(N)
	return ok && !isNilValue(notation)
}

func (c *typedConverter[N, T]) Convert(ctx context.Context, notation any) (T, error) {
	n, ok := notation.(N)
	if !ok || isNilValue(notation) {
		var zero T
		return zero, &UnsupportedNotationError{
			Target:     TypeName[T](),
			Notation:   notation,
			Candidates: Describe(c).candidates,
		}
	}
	return c.inner.ConvertType(ctx, n)
}

func (c *typedConverter[N, T]) Describe(d *Diagnostics) { c.inner.Describe(d) }

// isNilValue reports whether v holds a nil of a nillable kind, such as
// (*Dependency)(nil).
func isNilValue(v any) bool {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return rv.IsNil()
	}
	return false
}
