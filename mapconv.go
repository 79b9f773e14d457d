package notation

import (
	"context"
	"fmt"
	"slices"
)

// MapFunc converts a structured notation. The map is never nil-typed.
type MapFunc[T any] func(ctx context.Context, m map[string]any) (T, error)

// MapConverter is a converter for key/value shaped notations. It accepts
// map[string]any, map[string]string and map[any]any (keys stringified) and
// hands the routine a map[string]any.
//
// A failure returned by the routine, typically from CheckMandatoryKeys, is a
// genuine user error: the composite parser reports it and does not try the
// remaining candidates.
type MapConverter[T any] struct {
	parse    MapFunc[T]
	label    string
	examples []string
}

// NewMapConverter returns a MapConverter described as "Maps".
func NewMapConverter[T any](parse MapFunc[T]) *MapConverter[T] {
	if parse == nil {
		panic("notation: nil MapFunc")
	}
	return &MapConverter[T]{parse: parse, label: "Maps"}
}

// Described returns a copy of c with a custom description.
func (c *MapConverter[T]) Described(label string, examples ...string) *MapConverter[T] {
	return &MapConverter[T]{parse: c.parse, label: label, examples: slices.Clone(examples)}
}

func (c *MapConverter[T]) Accepts(notation any) bool {
	_, ok := AsStringMap(notation)
	return ok
}

func (c *MapConverter[T]) Convert(ctx context.Context, notation any) (T, error) {
	m, ok := AsStringMap(notation)
	if !ok {
		var zero T
		return zero, &UnsupportedNotationError{
			Target:     TypeName[T](),
			Notation:   notation,
			Candidates: Describe(c).candidates,
		}
	}
	return c.parse(ctx, m)
}

func (c *MapConverter[T]) Describe(d *Diagnostics) {
	s := d.Candidate(c.label)
	for _, ex := range c.examples {
		s = s.Example(ex)
	}
}

// AsStringMap views v as a string-keyed map when it has a supported map type.
func AsStringMap(v any) (map[string]any, bool) {
	switch m := v.(type) {
	case map[string]any:
		if m == nil {
			return map[string]any{}, true
		}
		return m, true
	case map[string]string:
		out := make(map[string]any, len(m))
		for k, val := range m {
			out[k] = val
		}
		return out, true
	case map[any]any:
		out := make(map[string]any, len(m))
		for k, val := range m {
			out[fmt.Sprint(k)] = val
		}
		return out, true
	default:
		return nil, false
	}
}

// GetString returns the value at key rendered as text. It reports absent when
// the key is missing, the value is nil, or the rendered text is exactly "".
// Whitespace-only text is returned unchanged.
func GetString(m map[string]any, key string) (string, bool) {
	v, ok := Lookup(m, key).Get()
	if !ok || v == nil {
		return "", false
	}
	s := fmt.Sprint(v)
	if s == "" {
		return "", false
	}
	return s, true
}

// GetStringPtr is GetString returning nil for absent values.
func GetStringPtr(m map[string]any, key string) *string {
	s, ok := GetString(m, key)
	if !ok {
		return nil
	}
	return &s
}

// CheckMandatoryKeys fails with a ValidationError naming every key of keys
// that is not present in m. A key mapped to nil counts as present.
func CheckMandatoryKeys(m map[string]any, keys ...string) error {
	var missing []string
	for _, k := range keys {
		if _, ok := m[k]; !ok {
			missing = append(missing, k)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	slices.Sort(missing)
	missing = slices.Compact(missing)
	return &ValidationError{Missing: missing, Notation: m}
}
