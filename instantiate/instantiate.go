// Package instantiate provides the object construction collaborator used by
// converters: something that turns named constructor arguments into a value.
package instantiate

import (
	"github.com/go-viper/mapstructure/v2"

	"github.com/reoring/notation"
)

// Instantiator creates T from named arguments. Absent optional arguments are
// simply omitted from args.
type Instantiator[T any] interface {
	NewInstance(args map[string]any) (T, error)
}

// Func adapts a function to an Instantiator.
type Func[T any] func(args map[string]any) (T, error)

func (f Func[T]) NewInstance(args map[string]any) (T, error) { return f(args) }

// Option configures the Struct instantiator.
type Option func(*mapstructure.DecoderConfig)

// WithTagName sets the struct tag used to match argument names (default "notation").
func WithTagName(name string) Option {
	return func(c *mapstructure.DecoderConfig) { c.TagName = name }
}

// AllowUnused accepts arguments that match no field instead of failing.
func AllowUnused() Option {
	return func(c *mapstructure.DecoderConfig) { c.ErrorUnused = false }
}

// WithDecodeHook installs a mapstructure decode hook, for example to turn
// strings into custom field types.
func WithDecodeHook(h mapstructure.DecodeHookFunc) Option {
	return func(c *mapstructure.DecoderConfig) { c.DecodeHook = h }
}

// Struct returns an Instantiator that decodes the arguments into a new T.
// T must be a struct type or a pointer to one. By default an argument
// without a matching field is a construction failure.
func Struct[T any](opts ...Option) Instantiator[T] {
	return structInstantiator[T]{opts: opts}
}

type structInstantiator[T any] struct {
	opts []Option
}

func (s structInstantiator[T]) NewInstance(args map[string]any) (T, error) {
	var out T
	cfg := &mapstructure.DecoderConfig{
		TagName:     "notation",
		ErrorUnused: true,
		Result:      &out,
	}
	for _, o := range s.opts {
		o(cfg)
	}
	dec, err := mapstructure.NewDecoder(cfg)
	if err != nil {
		var zero T
		return zero, err
	}
	if err := dec.Decode(args); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

// New calls inst and wraps any failure in a *notation.ConstructionError that
// preserves the cause.
func New[T any](inst Instantiator[T], args map[string]any) (T, error) {
	v, err := inst.NewInstance(args)
	if err != nil {
		var zero T
		return zero, &notation.ConstructionError{Target: notation.TypeName[T](), Cause: err}
	}
	return v, nil
}
