// Package notation resolves loosely typed input values ("notations") into
// strongly typed domain objects.
//
// A Parser holds an ordered list of converters. Parse asks each converter in
// registration order whether it accepts the notation; the first one that does
// performs the conversion and its result (or failure) is returned as is. When
// no converter accepts the notation, Parse fails with an
// UnsupportedNotationError listing every supported input shape.
//
// Design policy:
//   - Keep the engine in the root package; collaborators (instantiate,
//     fileresolve) and domain parsers (dependency, maven) live in subpackages.
//   - Acceptance is a plain type check. "Not applicable" is never an error.
//   - Parsers are immutable after ToComposite and safe for concurrent use.
//
// Typical usage:
//
//	b := notation.ToType[Artifact]()
//	notation.FromType[*ArchiveTask](b, archiveTaskConverter)
//	b.Converter(mapConverter).Converter(fileConverter)
//	p := b.ToComposite()
//
//	a, err := p.Parse(ctx, map[string]any{"source": "/path/to/file.zip"})
package notation
