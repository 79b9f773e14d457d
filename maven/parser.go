package maven

import (
	"context"

	"github.com/reoring/notation"
	"github.com/reoring/notation/fileresolve"
	"github.com/reoring/notation/instantiate"
)

// ParserFactory builds the artifact notation parser.
type ParserFactory struct {
	Instantiator instantiate.Instantiator[*Artifact]
	Resolver     *fileresolve.Resolver
}

// NewParserFactory returns a factory; a nil instantiator selects DefaultInstantiator.
func NewParserFactory(inst instantiate.Instantiator[*Artifact], resolver *fileresolve.Resolver) *ParserFactory {
	if inst == nil {
		inst = DefaultInstantiator()
	}
	if resolver == nil {
		resolver = fileresolve.NewResolver("")
	}
	return &ParserFactory{Instantiator: inst, Resolver: resolver}
}

// DefaultInstantiator decodes the named arguments file, extension and
// classifier into an *Artifact.
func DefaultInstantiator() instantiate.Instantiator[*Artifact] {
	return instantiate.Struct[*Artifact]()
}

// Create returns the artifact parser. Candidates, in order: archive tasks,
// publish artifacts, maps with a 'source' entry, files. The 'source' entry
// is resolved by a nested parser made of the same task, artifact and file
// candidates.
func (f *ParserFactory) Create() *notation.Parser[*Artifact] {
	task := f.archiveTaskConverter()
	published := f.publishArtifactConverter()
	file := f.fileConverter()

	source := notation.ToType[*Artifact]().
		TypeDisplayName("MavenArtifact").
		Converter(task).
		Converter(published).
		Converter(file).
		ToComposite()

	return notation.ToType[*Artifact]().
		TypeDisplayName("MavenArtifact").
		Converter(task).
		Converter(published).
		Converter(mapConverter(source)).
		Converter(file).
		ToComposite()
}

func (f *ParserFactory) newArtifact(file string, ext string, classifier *string) (*Artifact, error) {
	args := map[string]any{"file": fileresolve.Path(file), "extension": ext}
	if classifier != nil {
		args["classifier"] = *classifier
	}
	return instantiate.New(f.Instantiator, args)
}

func (f *ParserFactory) archiveTaskConverter() notation.Converter[*Artifact] {
	c := notation.TypeConverterFunc[*ArchiveTask, *Artifact](func(_ context.Context, t *ArchiveTask) (*Artifact, error) {
		a, err := f.newArtifact(t.ArchivePath, t.Extension, nonEmpty(t.Classifier))
		if err != nil {
			return nil, err
		}
		a.AddBuiltBy(t.Name)
		return a, nil
	})
	return notation.Typed(notation.Described[*ArchiveTask, *Artifact](c, "Instances of ArchiveTask", "'jar'"))
}

func (f *ParserFactory) publishArtifactConverter() notation.Converter[*Artifact] {
	c := notation.TypeConverterFunc[PublishArtifact, *Artifact](func(_ context.Context, p PublishArtifact) (*Artifact, error) {
		a, err := f.newArtifact(p.File(), p.Extension(), nonEmpty(p.Classifier()))
		if err != nil {
			return nil, err
		}
		a.AddBuiltBy(p.BuildDependencies()...)
		return a, nil
	})
	return notation.Typed(notation.Described[PublishArtifact, *Artifact](c, "Instances of PublishArtifact"))
}

// fileConverter accepts whatever the file resolver accepts and describes
// itself with the resolver's own candidates.
func (f *ParserFactory) fileConverter() notation.Converter[*Artifact] {
	files := f.Resolver.AsParser()
	return notation.Func[*Artifact]{
		AcceptsFunc: files.Accepts,
		ConvertFunc: func(ctx context.Context, n any) (*Artifact, error) {
			p, err := files.Parse(ctx, n)
			if err != nil {
				return nil, err
			}
			return f.newArtifact(p.String(), p.Ext(), nil)
		},
		DescribeFunc: files.Describe,
	}
}

func mapConverter(source *notation.Parser[*Artifact]) notation.Converter[*Artifact] {
	return notation.NewMapConverter[*Artifact](func(ctx context.Context, m map[string]any) (*Artifact, error) {
		if err := notation.CheckMandatoryKeys(m, "source"); err != nil {
			return nil, err
		}
		a, err := source.Parse(ctx, m["source"])
		if err != nil {
			return nil, &notation.ConversionError{Field: "source", Cause: err}
		}
		if ext, ok := notation.GetString(m, "extension"); ok {
			a.Extension = ext
		}
		if c := notation.GetStringPtr(m, "classifier"); c != nil {
			a.Classifier = c
		}
		return a, nil
	}).Described("Maps containing a 'source' entry", "[source: '/path/to/file', extension: 'zip']")
}

func nonEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
