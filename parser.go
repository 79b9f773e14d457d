package notation

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
)

// Builder assembles the ordered candidate list of a Parser. A Builder is a
// configuration-time value and is not safe for concurrent use.
type Builder[T any] struct {
	displayName string
	candidates  []Converter[T]
	logger      *slog.Logger
}

// ToType starts a builder for parsers producing T.
func ToType[T any]() *Builder[T] {
	return &Builder[T]{displayName: TypeName[T]()}
}

// TypeDisplayName sets the target name used in error messages.
func (b *Builder[T]) TypeDisplayName(name string) *Builder[T] {
	b.displayName = name
	return b
}

// Converter registers a pre-built converter. Candidates are tried in
// registration order.
func (b *Builder[T]) Converter(c Converter[T]) *Builder[T] {
	if c == nil {
		panic("notation: nil converter")
	}
	b.candidates = append(b.candidates, c)
	return b
}

// Passthrough registers, at the current position, a converter that returns
// notations already of type T unchanged.
func (b *Builder[T]) Passthrough() *Builder[T] {
	identity := TypeConverterFunc[T, T](func(_ context.Context, v T) (T, error) { return v, nil })
	return b.Converter(Typed(Described[T, T](identity, "Instances of "+b.displayName)))
}

// Logger sets the logger used by the parser instead of the context logger.
func (b *Builder[T]) Logger(l *slog.Logger) *Builder[T] {
	b.logger = l
	return b
}

// ToComposite freezes the builder into a Parser. Later changes to the
// builder do not affect the returned parser.
func (b *Builder[T]) ToComposite() *Parser[T] {
	return &Parser[T]{
		displayName: b.displayName,
		candidates:  slices.Clone(b.candidates),
		logger:      b.logger,
	}
}

// FromType registers c for notations of type N.
func FromType[N, T any](b *Builder[T], c TypeConverter[N, T]) *Builder[T] {
	return b.Converter(Typed(c))
}

// FromString registers c for string notations.
func FromString[T any](b *Builder[T], c TypeConverter[string, T]) *Builder[T] {
	return FromType(b, c)
}

// Parser converts notations into T by trying its candidates in order.
// Parsers are immutable and safe for concurrent use. A Parser is itself a
// Converter, so parsers nest.
type Parser[T any] struct {
	displayName string
	candidates  []Converter[T]
	logger      *slog.Logger
}

// DisplayName returns the target name used in error messages.
func (p *Parser[T]) DisplayName() string { return p.displayName }

// Len returns the number of candidates.
func (p *Parser[T]) Len() int { return len(p.candidates) }

// Accepts reports whether any candidate accepts the notation.
func (p *Parser[T]) Accepts(notation any) bool {
	for _, c := range p.candidates {
		if c.Accepts(notation) {
			return true
		}
	}
	return false
}

// Convert is Parse; it lets a Parser be registered as a candidate.
func (p *Parser[T]) Convert(ctx context.Context, notation any) (T, error) {
	return p.Parse(ctx, notation)
}

// Parse converts the notation with the first candidate that accepts it. The
// result or failure of that candidate is final. When no candidate accepts the
// notation Parse returns an *UnsupportedNotationError.
func (p *Parser[T]) Parse(ctx context.Context, notation any) (T, error) {
	var zero T
	out, err := p.TryParse(ctx, notation)
	if err != nil {
		return zero, err
	}
	v, ok := out.Get()
	if !ok {
		return zero, &UnsupportedNotationError{
			Target:     p.displayName,
			Notation:   notation,
			Candidates: p.Diagnostics().candidates,
		}
	}
	return v, nil
}

// TryParse is Parse without the aggregated diagnostic: it returns NotFound
// and a nil error when no candidate accepts the notation.
func (p *Parser[T]) TryParse(ctx context.Context, notation any) (Outcome[T], error) {
	logger := p.loggerFor(ctx)
	for i, c := range p.candidates {
		if !c.Accepts(notation) {
			continue
		}
		if logger.Enabled(ctx, slog.LevelDebug) {
			logger.DebugContext(ctx, "notation accepted",
				"target", p.displayName,
				"candidate", i,
				"shape", firstLabel(c),
				"notation_type", fmt.Sprintf("%T", notation))
		}
		v, err := c.Convert(ctx, notation)
		if err != nil {
			return NotFound[T](), err
		}
		return Found(v), nil
	}
	logger.DebugContext(ctx, "no candidate accepted notation",
		"target", p.displayName,
		"candidates", len(p.candidates),
		"notation_type", fmt.Sprintf("%T", notation))
	return NotFound[T](), nil
}

// Describe visits every candidate in registration order.
func (p *Parser[T]) Describe(d *Diagnostics) {
	for _, c := range p.candidates {
		c.Describe(d)
	}
}

// Diagnostics returns a fresh Diagnostics listing every accepted shape.
func (p *Parser[T]) Diagnostics() *Diagnostics { return Describe(p) }

func (p *Parser[T]) loggerFor(ctx context.Context) *slog.Logger {
	if p.logger != nil {
		return p.logger
	}
	return LoggerFrom(ctx)
}

func firstLabel(d Describer) string {
	x := Describe(d)
	if x.Len() == 0 {
		return ""
	}
	return x.candidates[0].Label
}
