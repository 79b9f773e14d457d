package notation

import (
	"context"
	"reflect"
)

// Converter turns notations of the shapes it accepts into T.
//
// Accepts must be a cheap, side-effect free shape check. It never fails: a
// false result only means "try the next candidate". Convert is called only
// after Accepts returned true for the same notation.
type Converter[T any] interface {
	Accepts(notation any) bool
	Convert(ctx context.Context, notation any) (T, error)
	Describer
}

// Func assembles a Converter from an acceptance predicate, a conversion
// routine and a description. All three fields are required.
type Func[T any] struct {
	AcceptsFunc  func(notation any) bool
	ConvertFunc  func(ctx context.Context, notation any) (T, error)
	DescribeFunc func(d *Diagnostics)
}

func (f Func[T]) Accepts(notation any) bool { return f.AcceptsFunc(notation) }

func (f Func[T]) Convert(ctx context.Context, notation any) (T, error) {
	return f.ConvertFunc(ctx, notation)
}

func (f Func[T]) Describe(d *Diagnostics) { f.DescribeFunc(d) }

// TypeName returns the unqualified name of T, dereferencing pointers
// ("*maven.ArchiveTask" becomes "ArchiveTask"). Only used for messages.
func TypeName[T any]() string {
	t := reflect.TypeFor[T]()
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if n := t.Name(); n != "" {
		return n
	}
	return t.String()
}

// InstancesOf returns the default candidate label for notations of type N.
func InstancesOf[N any]() string { return "Instances of " + TypeName[N]() }
